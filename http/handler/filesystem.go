package handler

import (
	"fmt"
	"html"
	"net/http"
	"path"
	"strconv"

	"github.com/datarhei/sitesrv/http/middleware/requestid"
	"github.com/datarhei/sitesrv/http/mime"
	"github.com/datarhei/sitesrv/io/fs"

	"github.com/labstack/echo/v4"
)

// NotFoundFile is the page that is sent if a file can't be found.
const NotFoundFile = "/404.html"

const notFoundPage = `<!DOCTYPE html>
<html>
<head>
  <title>404 - Page Not Found</title>
  <style>
    body { font-family: Arial, sans-serif; text-align: center; margin-top: 50px; }
    h1 { color: #e74c3c; }
  </style>
</head>
<body>
  <h1>404 - Page Not Found</h1>
  <p>The requested resource could not be found.</p>
  <p>Request ID: %s</p>
</body>
</html>
`

// The FileHandler type provides handlers for reading files from a filesystem
type FileHandler struct {
	fs fs.ReadFilesystem
}

// NewFile returns a new FileHandler type. You have to provide a filesystem to read from.
func NewFile(fs fs.ReadFilesystem) *FileHandler {
	return &FileHandler{
		fs: fs,
	}
}

// ServeFile sends the file at the request path. The content type is derived from
// the file extension. Any file that can't be read is answered with the not found page.
func (h *FileHandler) ServeFile(c echo.Context) error {
	p := c.Request().URL.Path

	data, err := h.fs.ReadFile(p)
	if err != nil {
		return h.NotFound(c)
	}

	c.Response().Header().Set(echo.HeaderContentLength, strconv.Itoa(len(data)))

	return c.Blob(http.StatusOK, mime.Lookup(path.Ext(p)), data)
}

// NotFound sends the 404 page from the filesystem or a built-in page if there is none.
func (h *FileHandler) NotFound(c echo.Context) error {
	data, err := h.fs.ReadFile(NotFoundFile)
	if err != nil {
		data = []byte(fmt.Sprintf(notFoundPage, html.EscapeString(requestid.Get(c))))
	}

	c.Response().Header().Set(echo.HeaderContentLength, strconv.Itoa(len(data)))

	return c.Blob(http.StatusNotFound, echo.MIMETextHTML, data)
}
