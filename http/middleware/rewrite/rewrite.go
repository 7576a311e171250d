// Package rewrite is an echo middleware that rewrites the request path with a router
package rewrite

import (
	"github.com/datarhei/sitesrv/http/router"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type Config struct {
	// Skipper defines a function to skip middleware.
	Skipper middleware.Skipper
	Router  router.Router
}

var DefaultConfig = Config{
	Skipper: middleware.DefaultSkipper,
	Router:  nil,
}

func New() echo.MiddlewareFunc {
	return NewWithConfig(DefaultConfig)
}

// NewWithConfig returns a middleware that replaces the request path by the
// target of its route. The escaped path is matched against the routes.
// Without a router the path is left alone.
func NewWithConfig(config Config) echo.MiddlewareFunc {
	if config.Skipper == nil {
		config.Skipper = DefaultConfig.Skipper
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if config.Skipper(c) || config.Router == nil {
				return next(c)
			}

			req := c.Request()

			// Routes match the path as it was sent, escapes included
			path := req.URL.EscapedPath()

			target := config.Router.Route(req.Method, path)
			if target != path {
				req.URL.Path = target
				req.URL.RawPath = ""
			}

			return next(c)
		}
	}
}
