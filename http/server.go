// Package http assembles the HTTP handler of the site server.
package http

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/datarhei/sitesrv/http/accesslog"
	"github.com/datarhei/sitesrv/http/errorhandler"
	"github.com/datarhei/sitesrv/http/handler"
	apihandler "github.com/datarhei/sitesrv/http/handler/api"
	httplog "github.com/datarhei/sitesrv/http/log"
	mwlog "github.com/datarhei/sitesrv/http/middleware/log"
	mwrequestid "github.com/datarhei/sitesrv/http/middleware/requestid"
	mwrewrite "github.com/datarhei/sitesrv/http/middleware/rewrite"
	"github.com/datarhei/sitesrv/http/router"
	"github.com/datarhei/sitesrv/io/fs"
	"github.com/datarhei/sitesrv/log"
	timesrc "github.com/datarhei/sitesrv/time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type Config struct {
	Logger     log.Logger
	Filesystem fs.ReadFilesystem
	Router     router.Router
	AccessLog  accesslog.Logger
	Time       timesrc.Source
}

type Server interface {
	ServeHTTP(w http.ResponseWriter, r *http.Request)
}

type server struct {
	logger log.Logger

	handler struct {
		site *handler.SiteHandler
	}

	middleware struct {
		requestid echo.MiddlewareFunc
		log       echo.MiddlewareFunc
		rewrite   echo.MiddlewareFunc
	}

	router *echo.Echo
}

func NewServer(config Config) (Server, error) {
	s := &server{
		logger: config.Logger,
	}

	if s.logger == nil {
		s.logger = log.New("HTTP")
	}

	if config.Filesystem == nil {
		return nil, fmt.Errorf("a filesystem is required")
	}

	if config.Router == nil {
		return nil, fmt.Errorf("a router is required")
	}

	if config.AccessLog == nil {
		config.AccessLog = accesslog.New(accesslog.Config{})
	}

	if config.Time == nil {
		config.Time = &timesrc.StdSource{}
	}

	s.handler.site = handler.NewSite(
		handler.NewFile(config.Filesystem),
		apihandler.NewEndpoint(config.Time),
	)

	s.middleware.requestid = mwrequestid.New()
	s.middleware.log = mwlog.NewWithConfig(mwlog.Config{
		Logger:    s.logger,
		AccessLog: config.AccessLog,
		Time:      config.Time,
	})
	s.middleware.rewrite = mwrewrite.NewWithConfig(mwrewrite.Config{
		Router: config.Router,
	})

	s.router = echo.New()
	s.router.HTTPErrorHandler = errorhandler.HTTPErrorHandler
	s.router.Pre(s.middleware.requestid)
	s.router.Pre(s.middleware.log)
	s.router.Pre(s.middleware.rewrite)
	s.router.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			rows := strings.Split(string(stack), "\n")
			s.logger.Error().WithField("stack", rows).Log("recovered from a panic")
			return err
		},
	}))

	s.router.HideBanner = true
	s.router.HidePort = true

	s.router.Logger.SetOutput(httplog.NewWrapper(s.logger))

	s.setRoutes()

	return s, nil
}

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *server) setRoutes() {
	// Every path and method ends up in the site handler which decides
	// about files, the API, and rejected methods.
	s.router.Any("/*", s.handler.site.Handle)
}
