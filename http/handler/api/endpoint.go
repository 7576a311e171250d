package api

import (
	"net/http"
	"strconv"

	"github.com/datarhei/sitesrv/encoding/json"
	"github.com/datarhei/sitesrv/http/api"
	"github.com/datarhei/sitesrv/http/middleware/requestid"
	timesrc "github.com/datarhei/sitesrv/time"

	"github.com/labstack/echo/v4"
)

// The EndpointHandler type provides the handler for the API stub.
type EndpointHandler struct {
	time timesrc.Source
}

// NewEndpoint returns a new EndpointHandler type. If no time source is given, the
// system clock is used.
func NewEndpoint(time timesrc.Source) *EndpointHandler {
	if time == nil {
		time = &timesrc.StdSource{}
	}

	return &EndpointHandler{
		time: time,
	}
}

// Get answers with the path, the request ID, and the current time.
func (h *EndpointHandler) Get(c echo.Context) error {
	data, err := json.Marshal(api.Endpoint{
		Message:   "API endpoint",
		Path:      c.Request().URL.EscapedPath(),
		RequestID: requestid.Get(c),
		Timestamp: timesrc.Format(h.time.Now()),
	})
	if err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderContentLength, strconv.Itoa(len(data)))

	return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, data)
}
