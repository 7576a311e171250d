package mock

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/datarhei/sitesrv/encoding/json"
	"github.com/datarhei/sitesrv/http/errorhandler"
	"github.com/datarhei/sitesrv/http/middleware/requestid"
	"github.com/datarhei/sitesrv/io/fs"

	"github.com/invopop/jsonschema"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"github.com/xeipuuv/gojsonschema"
)

// DummyFilesystem writes the files into a temporary directory and returns a
// filesystem rooted there.
func DummyFilesystem(t *testing.T, files map[string]string) fs.ReadFilesystem {
	dir := t.TempDir()

	for name, data := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))

		err := os.MkdirAll(filepath.Dir(path), 0755)
		require.NoError(t, err)

		err = os.WriteFile(path, []byte(data), 0644)
		require.NoError(t, err)
	}

	filesystem, err := fs.NewDiskFilesystem(fs.DiskConfig{
		Dir: dir,
	})
	require.NoError(t, err)

	return filesystem
}

func DummyEcho() *echo.Echo {
	router := echo.New()
	router.HideBanner = true
	router.HidePort = true
	router.HTTPErrorHandler = errorhandler.HTTPErrorHandler
	router.Logger.SetOutput(io.Discard)
	router.Pre(requestid.New())

	return router
}

type Response struct {
	Code   int
	Header http.Header
	Raw    []byte
	Data   interface{}
}

func Request(t require.TestingT, httpstatus int, router http.Handler, method, path string, data io.Reader) *Response {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, data)
	router.ServeHTTP(w, req)

	response := CheckResponse(t, w.Result())

	require.Equal(t, httpstatus, w.Code, string(response.Raw))

	return response
}

func CheckResponse(t require.TestingT, res *http.Response) *Response {
	response := &Response{
		Code:   res.StatusCode,
		Header: res.Header,
	}

	body, err := io.ReadAll(res.Body)
	require.Equal(t, nil, err)

	res.Body.Close()

	response.Raw = body

	if strings.Contains(res.Header.Get("Content-Type"), "application/json") {
		err := json.Unmarshal(body, &response.Data)
		require.Equal(t, nil, err)
	} else {
		response.Data = body
	}

	return response
}

func Validate(t require.TestingT, datatype, data interface{}) bool {
	schema, err := jsonschema.Reflect(datatype).MarshalJSON()
	require.NoError(t, err)

	schemaLoader := gojsonschema.NewStringLoader(string(schema))
	documentLoader := gojsonschema.NewGoLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	require.Equal(t, nil, err)
	require.Equal(t, true, result.Valid(), result.Errors())

	return true
}
