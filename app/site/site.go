// Package site wires the configuration, the filesystem, and the HTTP server together.
package site

import (
	"context"
	"fmt"
	"io"
	golog "log"
	gonet "net"
	gohttp "net/http"
	"strings"
	"sync"
	"time"

	"github.com/datarhei/sitesrv/app"
	"github.com/datarhei/sitesrv/config"
	configvars "github.com/datarhei/sitesrv/config/vars"
	"github.com/datarhei/sitesrv/http"
	"github.com/datarhei/sitesrv/http/accesslog"
	"github.com/datarhei/sitesrv/http/handler"
	"github.com/datarhei/sitesrv/http/mime"
	"github.com/datarhei/sitesrv/http/router"
	"github.com/datarhei/sitesrv/io/fs"
	"github.com/datarhei/sitesrv/log"

	"github.com/fatih/color"
	"github.com/google/gops/agent"
	"go.uber.org/automaxprocs/maxprocs"
)

// The Site interface is the running static site server.
type Site interface {
	// Listen binds the listener. It is called by Start if it hasn't been
	// called before.
	Listen() error

	// Start serves requests. This is blocking until Stop() has been called
	// or the server failed. In the former case a nil error is returned.
	Start() error

	// Address returns the address the server is listening on.
	Address() string

	// Stop shuts the server down gracefully.
	Stop()
}

type site struct {
	config  *config.Config
	logger  log.Logger
	console io.Writer

	filesystem fs.ReadFilesystem
	server     *gohttp.Server
	listener   gonet.Listener

	undoMaxprocs func()

	lock sync.Mutex
}

// LoadConfig returns the configuration from the defaults and the environment. The
// messages of the validation are written to the logger.
func LoadConfig(logger log.Logger) (*config.Config, error) {
	if logger == nil {
		logger = log.New("")
	}

	cfg := config.New()
	cfg.Merge()
	cfg.Validate(true)

	configlogger := logger.WithComponent("Config")

	cfg.Messages(func(level string, v configvars.Variable, message string) {
		configlogger = configlogger.WithFields(log.Fields{
			"variable":    v.Name,
			"value":       v.Value,
			"env":         v.EnvName,
			"description": v.Description,
			"override":    v.Merged,
		})
		configlogger.Debug().Log(message)

		switch level {
		case "warn":
			configlogger.Warn().Log(message)
		case "error":
			configlogger.Error().WithField("error", message).Log("")
		default:
			break
		}
	})

	if cfg.HasErrors() {
		logger.Error().WithField("error", "Not all variables are set or are valid. Check the error messages above. Bailing out.").Log("")
		return nil, fmt.Errorf("not all variables are set or valid")
	}

	if overrides := cfg.Overrides(); len(overrides) != 0 {
		logger.WithComponent("Config").Info().WithField("variables", overrides).Log("Overridden by environment")
	}

	return cfg, nil
}

// New returns a new Site for the configuration. The banner is written to console.
func New(cfg *config.Config, logger log.Logger, console io.Writer) (Site, error) {
	if cfg == nil {
		return nil, fmt.Errorf("no configuration provided")
	}

	if logger == nil {
		logger = log.New("")
	}

	if console == nil {
		console = io.Discard
	}

	s := &site{
		config:  cfg,
		logger:  logger.WithField("name", cfg.Name),
		console: console,
	}

	filesystem, err := fs.NewDiskFilesystem(fs.DiskConfig{
		Dir:    cfg.PublicDir,
		Logger: s.logger.WithComponent("Filesystem"),
	})
	if err != nil {
		return nil, fmt.Errorf("public directory: %w", err)
	}

	s.filesystem = filesystem

	if _, err := filesystem.Stat(handler.NotFoundFile); err != nil {
		s.logger.Info().WithField("file", handler.NotFoundFile).Log("No custom 404 page found, using the built-in page")
	}

	mimelogger := s.logger.WithComponent("MIME")
	for ext, mimeType := range mime.Types() {
		mimelogger.Debug().WithFields(log.Fields{
			"extension": ext,
			"type":      mimeType,
		}).Log("Content type")
	}

	r, err := router.New([]string{handler.APIPrefix}, router.DefaultRoutes)
	if err != nil {
		return nil, fmt.Errorf("router: %w", err)
	}

	routerlogger := s.logger.WithComponent("Router")
	for route, target := range r.Routes() {
		routerlogger.Debug().WithFields(log.Fields{
			"route":  route,
			"target": target,
		}).Log("Route")
	}

	httplogger := s.logger.WithComponent("HTTP")

	server, err := http.NewServer(http.Config{
		Logger:     httplogger,
		Filesystem: filesystem,
		Router:     r,
		AccessLog: accesslog.New(accesslog.Config{
			Path:   cfg.LogFile,
			Logger: s.logger.WithComponent("AccessLog"),
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("unable to create server: %w", err)
	}

	s.server = &gohttp.Server{
		Handler:           server,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 20,
		ErrorLog:          golog.New(httplogger.Debug(), "", 0),
	}

	return s, nil
}

func (s *site) Listen() error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if s.listener != nil {
		return nil
	}

	if s.config.Debug.AutoMaxProcs {
		undoMaxprocs, err := maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			format = strings.TrimPrefix(format, "maxprocs: ")
			s.logger.Debug().Log(format, args...)
		}))
		if err != nil {
			s.logger.Warn().Log("%s", err.Error())
		}

		s.undoMaxprocs = undoMaxprocs
	}

	if len(s.config.Debug.AgentAddress) != 0 {
		if err := agent.Listen(agent.Options{
			Addr:                   s.config.Debug.AgentAddress,
			ReuseSocketAddrAndPort: true,
		}); err != nil {
			s.logger.Error().WithError(err).Log("")
		}
	}

	listener, err := gonet.Listen("tcp", s.config.Address())
	if err != nil {
		return fmt.Errorf("HTTP server: %w", err)
	}

	s.listener = listener

	s.logger.Info().WithFields(log.Fields{
		"address":    listener.Addr().String(),
		"public_dir": s.filesystem.Base(),
		"log_file":   s.config.LogFile,
		"version":    app.Version.String(),
	}).Log("Server listening")

	s.banner()

	return nil
}

func (s *site) banner() {
	host := s.config.Host
	if len(host) == 0 {
		host = "localhost"
	}

	_, port, _ := gonet.SplitHostPort(s.listener.Addr().String())

	url := color.New(color.FgGreen, color.Bold).SprintFunc()
	value := color.New(color.FgCyan).SprintFunc()

	fmt.Fprintf(s.console, "Server running at %s\n", url("http://"+gonet.JoinHostPort(host, port)+"/"))
	fmt.Fprintf(s.console, "Serving files from: %s\n", value(s.config.PublicDir))
	fmt.Fprintf(s.console, "Logging to: %s\n", value(s.config.LogFile))
}

func (s *site) Start() error {
	if err := s.Listen(); err != nil {
		return err
	}

	s.lock.Lock()
	listener := s.listener
	s.lock.Unlock()

	err := s.server.Serve(listener)
	if err != nil && err != gohttp.ErrServerClosed {
		return fmt.Errorf("HTTP server: %w", err)
	}

	return nil
}

func (s *site) Address() string {
	s.lock.Lock()
	defer s.lock.Unlock()

	if s.listener == nil {
		return s.config.Address()
	}

	return s.listener.Addr().String()
}

func (s *site) Stop() {
	s.lock.Lock()
	defer s.lock.Unlock()

	logger := s.logger.WithField("action", "shutdown")

	logger.Info().Log("Stopping ...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.server.Shutdown(ctx); err != nil {
		logger.Error().WithError(err).Log("")
	}

	if s.listener != nil {
		s.listener.Close()
	}

	if len(s.config.Debug.AgentAddress) != 0 {
		agent.Close()
	}

	if s.undoMaxprocs != nil {
		s.undoMaxprocs()
		s.undoMaxprocs = nil
	}

	logger.Info().Log("Complete")
}
