package handler

import (
	"net/http"
	"testing"

	apihandler "github.com/datarhei/sitesrv/http/handler/api"
	"github.com/datarhei/sitesrv/http/mock"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func getDummySiteRouter(t *testing.T) *echo.Echo {
	router := mock.DummyEcho()

	files := NewFile(mock.DummyFilesystem(t, map[string]string{
		"index.html":   "index",
		"api/foo.html": "shadowed",
	}))

	handler := NewSite(files, apihandler.NewEndpoint(nil))

	router.Any("/*", handler.Handle)

	return router
}

func TestSiteFile(t *testing.T) {
	router := getDummySiteRouter(t)

	response := mock.Request(t, http.StatusOK, router, "GET", "/index.html", nil)

	require.Equal(t, "index", string(response.Raw))
}

func TestSiteAPI(t *testing.T) {
	router := getDummySiteRouter(t)

	response := mock.Request(t, http.StatusOK, router, "GET", "/api/foo.html", nil)

	require.Equal(t, "application/json", response.Header.Get(echo.HeaderContentType))
	require.Equal(t, "/api/foo.html", response.Data.(map[string]interface{})["path"])
}

func TestSiteAPIPrefix(t *testing.T) {
	router := getDummySiteRouter(t)

	response := mock.Request(t, http.StatusNotFound, router, "GET", "/api", nil)

	require.Equal(t, "text/html", response.Header.Get(echo.HeaderContentType))
}

func TestSiteMethodNotAllowed(t *testing.T) {
	router := getDummySiteRouter(t)

	for _, method := range []string{"POST", "PUT", "DELETE", "PATCH", "HEAD", "OPTIONS"} {
		response := mock.Request(t, http.StatusMethodNotAllowed, router, method, "/index.html", nil)

		require.Equal(t, "text/plain", response.Header.Get(echo.HeaderContentType), method)
		require.Empty(t, response.Header.Get(echo.HeaderAllow), method)

		if method != "HEAD" {
			require.Equal(t, "Method Not Allowed", string(response.Raw), method)
		}
	}
}
