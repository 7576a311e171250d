// Package accesslog appends one line per handled request to a log file.
package accesslog

import (
	"fmt"
	"time"

	"github.com/datarhei/sitesrv/io/file"
	"github.com/datarhei/sitesrv/log"
	timesrc "github.com/datarhei/sitesrv/time"
)

// Entry describes a handled request.
type Entry struct {
	Time      time.Time
	RequestID string
	Method    string
	Path      string
	Status    int
}

// String returns the log line for the entry without a trailing newline.
func (e Entry) String() string {
	return fmt.Sprintf("[%s] %s - %s %s - Status: %d", timesrc.Format(e.Time), e.RequestID, e.Method, e.Path, e.Status)
}

type Logger interface {
	// Log appends the entry to the log file. Errors are reported to
	// the operational log and are not returned.
	Log(e Entry)
}

type Config struct {
	// Path is the path of the log file. It will be created if it
	// doesn't exist. Leave empty to disable writing.
	Path string

	// Logger receives the errors that occur while writing, optional
	Logger log.Logger
}

type logger struct {
	path   string
	logger log.Logger
}

func New(config Config) Logger {
	l := &logger{
		path:   config.Path,
		logger: config.Logger,
	}

	if l.logger == nil {
		l.logger = log.New("")
	}

	l.logger = l.logger.WithField("path", l.path)

	return l
}

func (l *logger) Log(e Entry) {
	if len(l.path) == 0 {
		return
	}

	if err := file.Append(l.path, []byte(e.String()+"\n")); err != nil {
		l.logger.Error().WithError(err).WithField("request_id", e.RequestID).Log("Error writing to log file")
	}
}
