// Package requestid is an echo middleware that assigns an identifier to each request
package requestid

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// ContextKey is the key for the request ID in the echo context.
const ContextKey = "requestid"

type Config struct {
	// Skipper defines a function to skip middleware.
	Skipper middleware.Skipper

	// Generator returns a new request ID.
	Generator func() string
}

var DefaultConfig = Config{
	Skipper:   middleware.DefaultSkipper,
	Generator: uuid.NewString,
}

func New() echo.MiddlewareFunc {
	return NewWithConfig(DefaultConfig)
}

// NewWithConfig returns a middleware that stores a new request ID in the context.
// The ID is not sent to the client.
func NewWithConfig(config Config) echo.MiddlewareFunc {
	if config.Skipper == nil {
		config.Skipper = DefaultConfig.Skipper
	}

	if config.Generator == nil {
		config.Generator = DefaultConfig.Generator
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if config.Skipper(c) {
				return next(c)
			}

			c.Set(ContextKey, config.Generator())

			return next(c)
		}
	}
}

// Get returns the request ID of the request or an empty string.
func Get(c echo.Context) string {
	id, _ := c.Get(ContextKey).(string)

	return id
}
