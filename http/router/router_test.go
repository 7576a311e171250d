package router

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultRoutes(t *testing.T) {
	r, err := New([]string{"/api/"}, DefaultRoutes)
	require.NoError(t, err)

	require.Equal(t, "/index.html", r.Route("GET", "/"))
	require.Equal(t, "/index.html", r.Route("GET", "/home"))
	require.Equal(t, "/about.html", r.Route("GET", "/about"))
	require.Equal(t, "/contact.html", r.Route("GET", "/contact"))
}

func TestUnlistedPath(t *testing.T) {
	r, err := New(nil, DefaultRoutes)
	require.NoError(t, err)

	for _, p := range []string{"/index.html", "/home/", "/About", "/contact/me", "/api/home", "", "/../etc/passwd"} {
		require.Equal(t, p, r.Route("GET", p))
	}
}

func TestNonGetMethods(t *testing.T) {
	r, err := New(nil, DefaultRoutes)
	require.NoError(t, err)

	methods := []string{
		http.MethodHead,
		http.MethodPost,
		http.MethodPut,
		http.MethodPatch,
		http.MethodDelete,
		http.MethodOptions,
		"get",
		"PROPFIND",
	}

	for _, method := range methods {
		for route := range DefaultRoutes {
			require.Equal(t, route, r.Route(method, route), method)
		}
	}
}

func TestBlockedPrefix(t *testing.T) {
	_, err := New([]string{"/api/"}, map[string]string{
		"/api/foo": "/foo.html",
	})
	require.Error(t, err)
}

func TestInvalidRoutes(t *testing.T) {
	_, err := New(nil, map[string]string{
		"foo": "/foo.html",
	})
	require.Error(t, err)

	_, err = New(nil, map[string]string{
		"/foo": "foo.html",
	})
	require.Error(t, err)

	_, err = New(nil, map[string]string{
		"/foo": "/bar/../foo.html",
	})
	require.Error(t, err)
}

func TestRoutesIsCopy(t *testing.T) {
	r, err := New(nil, DefaultRoutes)
	require.NoError(t, err)

	routes := r.Routes()
	require.Equal(t, DefaultRoutes, routes)

	routes["/"] = "/other.html"

	require.Equal(t, "/index.html", r.Route("GET", "/"))
}
