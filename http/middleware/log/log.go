// Package log implements a logging middleware
package log

import (
	"net/http"
	"time"

	"github.com/datarhei/sitesrv/http/accesslog"
	"github.com/datarhei/sitesrv/http/middleware/requestid"
	"github.com/datarhei/sitesrv/log"
	timesrc "github.com/datarhei/sitesrv/time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type Config struct {
	// Skipper defines a function to skip middleware.
	Skipper   middleware.Skipper
	Logger    log.Logger
	AccessLog accesslog.Logger
	Time      timesrc.Source
}

var DefaultConfig = Config{
	Skipper:   middleware.DefaultSkipper,
	Logger:    log.New("HTTP"),
	AccessLog: accesslog.New(accesslog.Config{}),
	Time:      &timesrc.StdSource{},
}

func New() echo.MiddlewareFunc {
	return NewWithConfig(DefaultConfig)
}

// NewWithConfig returns a middleware for logging HTTP requests. Each request is
// announced on the logger before it is handled and written to the access log
// with its original path after the response has been sent.
func NewWithConfig(config Config) echo.MiddlewareFunc {
	if config.Skipper == nil {
		config.Skipper = DefaultConfig.Skipper
	}

	if config.Logger == nil {
		config.Logger = DefaultConfig.Logger
	}

	if config.AccessLog == nil {
		config.AccessLog = DefaultConfig.AccessLog
	}

	if config.Time == nil {
		config.Time = DefaultConfig.Time
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if config.Skipper(c) {
				return next(c)
			}

			start := time.Now()

			req := c.Request()
			res := c.Response()

			id := requestid.Get(c)
			method := req.Method
			path := req.URL.EscapedPath()

			config.Logger.Info().WithFields(log.Fields{
				"request_id":   id,
				"method":       method,
				"path":         path,
				"query_params": len(req.URL.Query()),
			}).Log("[%s] %s %s", id, method, path)

			if err := next(c); err != nil {
				c.Error(err)
			}

			if res.Committed {
				if f, ok := res.Writer.(http.Flusher); ok {
					f.Flush()
				}
			}

			config.AccessLog.Log(accesslog.Entry{
				Time:      config.Time.Now(),
				RequestID: id,
				Method:    method,
				Path:      path,
				Status:    res.Status,
			})

			logger := config.Logger.WithFields(log.Fields{
				"request_id":  id,
				"client":      c.RealIP(),
				"method":      method,
				"path":        path,
				"proto":       req.Proto,
				"status":      res.Status,
				"status_text": http.StatusText(res.Status),
				"size_bytes":  res.Size,
				"latency_ms":  time.Since(start).Milliseconds(),
				"user_agent":  req.Header.Get("User-Agent"),
			})

			if res.Status >= 500 {
				logger.Warn().Log("")
			} else {
				logger.Debug().Log("")
			}

			return nil
		}
	}
}
