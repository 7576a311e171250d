package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/datarhei/sitesrv/app/site"
	"github.com/datarhei/sitesrv/log"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	logger := log.New("Site").WithOutput(log.NewConsoleWriter(os.Stderr, log.Linfo, true))

	cfg, err := site.LoadConfig(logger)
	if err != nil {
		logger.Error().WithError(err).Log("Failed to load config")
		os.Exit(1)
	}

	logger = log.New("Site").WithOutput(newWriter(cfg.Log.Level, cfg.Log.Format))
	defer logger.Close()

	app, err := site.New(cfg, logger, os.Stdout)
	if err != nil {
		logger.Error().WithError(err).Log("Failed to create site")
		os.Exit(1)
	}

	errChan := make(chan error, 1)

	go func() {
		errChan <- app.Start()
	}()

	// Wait for interrupt signal to gracefully shutdown the app
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	select {
	case <-quit:
		app.Stop()
	case err := <-errChan:
		if err != nil {
			logger.Error().WithError(err).Log("Failed to start server")
			app.Stop()
			os.Exit(1)
		}
	}
}

// newWriter returns the writer for the console logs according to the configured
// level and format.
func newWriter(level, format string) log.Writer {
	l, err := log.ParseLevel(level)
	if err != nil {
		l = log.Linfo
	}

	if format == "json" {
		return log.NewJSONWriter(os.Stderr, l)
	}

	return log.NewConsoleWriter(os.Stderr, l, true)
}
