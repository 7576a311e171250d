package handler

import (
	"net/http"
	"strings"

	"github.com/datarhei/sitesrv/http/api"
	apihandler "github.com/datarhei/sitesrv/http/handler/api"

	"github.com/labstack/echo/v4"
)

// APIPrefix is the path prefix of the API.
const APIPrefix = "/api/"

// The SiteHandler type dispatches every request either to the API or to the files.
type SiteHandler struct {
	files    *FileHandler
	endpoint *apihandler.EndpointHandler
}

// NewSite returns a new SiteHandler type.
func NewSite(files *FileHandler, endpoint *apihandler.EndpointHandler) *SiteHandler {
	return &SiteHandler{
		files:    files,
		endpoint: endpoint,
	}
}

// Handle only accepts GET requests. Paths below APIPrefix are answered by the
// API, all others by the files.
func (h *SiteHandler) Handle(c echo.Context) error {
	req := c.Request()

	if req.Method != http.MethodGet {
		return api.Err(http.StatusMethodNotAllowed, "")
	}

	if strings.HasPrefix(req.URL.Path, APIPrefix) {
		return h.endpoint.Get(c)
	}

	return h.files.ServeFile(c)
}
