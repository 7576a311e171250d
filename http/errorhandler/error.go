package errorhandler

import (
	"net/http"
	"strconv"

	"github.com/datarhei/sitesrv/http/api"

	"github.com/labstack/echo/v4"
)

// HTTPErrorHandler is a general handler for echo handler errors. The error is
// answered with the status text as plain text.
func HTTPErrorHandler(err error, c echo.Context) {
	var code int = 0
	message := ""

	if he, ok := err.(api.Error); ok {
		code = he.Code
		message = he.Message
	} else if he, ok := err.(*echo.HTTPError); ok {
		if he.Internal != nil {
			if herr, ok := he.Internal.(*echo.HTTPError); ok {
				he = herr
			}
		}

		code = he.Code
		message = http.StatusText(he.Code)
	} else {
		code = http.StatusInternalServerError
		message = http.StatusText(http.StatusInternalServerError)
	}

	if len(message) == 0 {
		message = http.StatusText(code)
	}

	// Send response
	if !c.Response().Committed {
		c.Response().Header().Del(echo.HeaderAllow)
		c.Response().Header().Set(echo.HeaderContentLength, strconv.Itoa(len(message)))
		c.Blob(code, echo.MIMETextPlain, []byte(message))
	}
}
