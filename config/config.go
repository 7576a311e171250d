// Package config implements types for handling the configuation for the app.
package config

import (
	"net"
	"os"
	"strconv"

	"github.com/datarhei/sitesrv/config/value"
	"github.com/datarhei/sitesrv/config/vars"

	haikunator "github.com/atrox/haikunatorgo/v2"
)

// Data is the actual configuration data for the app
type Data struct {
	Name      string `json:"name"`
	Host      string `json:"host"`
	Port      int    `json:"port"`
	LogFile   string `json:"log_file"`
	PublicDir string `json:"public_dir"`
	Log       struct {
		Level  string `json:"level" enums:"debug,info,warn,error,silent"`
		Format string `json:"format" enums:"console,json"`
	} `json:"log"`
	Debug struct {
		AutoMaxProcs bool   `json:"auto_max_procs"`
		AgentAddress string `json:"agent_address"`
	} `json:"debug"`
}

// Config is a wrapper for Data
type Config struct {
	vars vars.Variables

	Data
}

// New returns a Config which is initialized with its default values
func New() *Config {
	cfg := &Config{}

	cfg.init()

	return cfg
}

func (d *Config) init() {
	d.vars.Register(value.NewString(&d.Name, haikunator.New().Haikunate()), "name", "SITESRV_NAME", nil, "A human readable name for this instance", false)
	d.vars.Register(value.NewHost(&d.Host, "localhost"), "host", "HOST", nil, "Listening host or IP address, empty for all interfaces", false)
	d.vars.Register(value.NewPort(&d.Port, 3000), "port", "PORT", nil, "Listening TCP port", false)
	d.vars.Register(value.NewString(&d.LogFile, "server.log"), "log_file", "LOG_FILE", nil, "Path to the request log file", true)
	d.vars.Register(value.NewString(&d.PublicDir, "public"), "public_dir", "PUBLIC_DIR", nil, "Directory with the files to serve and the custom 404.html", true)

	// Log
	d.vars.Register(value.NewStringEnum(&d.Log.Level, "info", []string{"silent", "error", "warn", "info", "debug"}), "log.level", "SITESRV_LOG_LEVEL", nil, "Loglevel: silent, error, warn, info, debug", false)
	d.vars.Register(value.NewStringEnum(&d.Log.Format, "console", []string{"console", "json"}), "log.format", "SITESRV_LOG_FORMAT", nil, "Log format: console, json", false)

	// Debug
	d.vars.Register(value.NewBool(&d.Debug.AutoMaxProcs, false), "debug.auto_max_procs", "SITESRV_DEBUG_AUTOMAXPROCS", nil, "Set GOMAXPROCS automatically according to the CPU quota", false)
	d.vars.Register(value.NewAddress(&d.Debug.AgentAddress, ""), "debug.agent_address", "SITESRV_DEBUG_AGENTADDRESS", nil, "Listening address for the gops agent, empty to disable", false)
}

// Merge applies the values of the environment variables.
func (d *Config) Merge() {
	d.vars.Merge()
}

// Validate validates the current state of the Config for completeness and sanity. Errors are
// collected as messages. Use resetLogs to indicate to reset the messages prior validation.
func (d *Config) Validate(resetLogs bool) {
	if resetLogs {
		d.vars.ResetLogs()
	}

	d.vars.Validate()

	// A missing public directory is not fatal, every request will get the 404 page
	if finfo, err := os.Stat(d.PublicDir); err != nil {
		d.vars.Log("warn", "public_dir", "%s does not exist", d.PublicDir)
	} else if !finfo.IsDir() {
		d.vars.Log("warn", "public_dir", "%s is not a directory", d.PublicDir)
	}
}

// Address returns the listening address composed of host and port.
func (d *Config) Address() string {
	return net.JoinHostPort(d.Host, strconv.Itoa(d.Port))
}

func (d *Config) Messages(logger func(level string, v vars.Variable, message string)) {
	d.vars.Messages(logger)
}

func (d *Config) HasErrors() bool {
	return d.vars.HasErrors()
}

func (d *Config) Overrides() []string {
	return d.vars.Overrides()
}
