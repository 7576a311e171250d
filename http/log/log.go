// Package log forwards the output of echo's internal logger to a log.Logger
package log

import (
	"strings"

	"github.com/datarhei/sitesrv/encoding/json"
	"github.com/datarhei/sitesrv/log"
)

type logwrapper struct {
	logger log.Logger
}

type logentry struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

func NewWrapper(logger log.Logger) *logwrapper {
	if logger == nil {
		logger = log.New("")
	}

	return &logwrapper{
		logger: logger,
	}
}

func (b *logwrapper) Write(p []byte) (int, error) {
	entry := logentry{}
	if err := json.Unmarshal(p, &entry); err != nil || len(entry.Message) == 0 {
		entry.Level = "INFO"
		entry.Message = string(p)
	}

	var logger log.Logger

	switch strings.ToUpper(entry.Level) {
	case "DEBUG":
		logger = b.logger.Debug()
	case "WARN":
		logger = b.logger.Warn()
	case "ERROR", "FATAL", "PANIC":
		logger = b.logger.Error()
	default:
		logger = b.logger.Info()
	}

	for _, line := range strings.Split(strings.TrimSpace(entry.Message), "\n") {
		if len(line) == 0 {
			continue
		}

		logger.Log(line)
	}

	return len(p), nil
}
