// Package vars keeps track of the configuration variables, their corresponding
// environment variables, and the messages produced while merging and validating
// them.
package vars

import (
	"fmt"
	"os"

	"github.com/datarhei/sitesrv/config/value"
)

type variable struct {
	value       value.Value // The actual value
	name        string      // A name for this value
	envName     string      // The environment variable that corresponds to this value
	envAltNames []string    // Alternative environment variable names
	description string      // A desriptions for this value
	required    bool        // Whether a non-empty value is required
	merged      bool        // Whether this value has been replaced by its corresponding environment variable
}

type Variable struct {
	Value       string
	Name        string
	EnvName     string
	Description string
	Merged      bool
}

type message struct {
	message  string   // The log message
	variable Variable // The config field this message refers to
	level    string   // The loglevel for this message
}

type Variables struct {
	vars []*variable
	logs []message
}

func (vs *Variables) Register(val value.Value, name, envName string, envAltNames []string, description string, required bool) {
	vs.vars = append(vs.vars, &variable{
		value:       val,
		name:        name,
		envName:     envName,
		envAltNames: envAltNames,
		description: description,
		required:    required,
	})
}

func (vs *Variables) Log(level, name string, format string, args ...interface{}) {
	v := vs.findVariable(name)
	if v == nil {
		return
	}

	l := message{
		message: fmt.Sprintf(format, args...),
		variable: Variable{
			Value:       v.value.String(),
			Name:        v.name,
			EnvName:     v.envName,
			Description: v.description,
			Merged:      v.merged,
		},
		level: level,
	}

	vs.logs = append(vs.logs, l)
}

// lookupEnv returns the value of the environment variable. An empty
// value counts as not set.
func lookupEnv(name string) (string, bool) {
	val, ok := os.LookupEnv(name)
	if !ok || len(val) == 0 {
		return "", false
	}

	return val, true
}

// Merge replaces the values with the values of their environment variables, if set.
// An alternative name is only considered if the primary name is not set.
func (vs *Variables) Merge() {
	for _, v := range vs.vars {
		if len(v.envName) == 0 {
			continue
		}

		envval, ok := lookupEnv(v.envName)
		if !ok {
			for _, envName := range v.envAltNames {
				envval, ok = lookupEnv(envName)
				if ok {
					vs.Log("warn", v.name, "deprecated name, please use %s", v.envName)
					break
				}
			}

			if !ok {
				continue
			}
		}

		if err := v.value.Set(envval); err != nil {
			vs.Log("error", v.name, "%s", err.Error())
		}

		v.merged = true
	}
}

func (vs *Variables) Validate() {
	for _, v := range vs.vars {
		vs.Log("info", v.name, "%s", "")

		if err := v.value.Validate(); err != nil {
			vs.Log("error", v.name, "%s", err.Error())
		}

		if v.required && v.value.IsEmpty() {
			vs.Log("error", v.name, "a value is required")
		}
	}
}

func (vs *Variables) ResetLogs() {
	vs.logs = nil
}

func (vs *Variables) Messages(logger func(level string, v Variable, message string)) {
	for _, l := range vs.logs {
		logger(l.level, l.variable, l.message)
	}
}

func (vs *Variables) HasErrors() bool {
	for _, l := range vs.logs {
		if l.level == "error" {
			return true
		}
	}

	return false
}

func (vs *Variables) Overrides() []string {
	overrides := []string{}

	for _, v := range vs.vars {
		if v.merged {
			overrides = append(overrides, v.name)
		}
	}

	return overrides
}

func (vs *Variables) findVariable(name string) *variable {
	for _, v := range vs.vars {
		if v.name == name {
			return v
		}
	}

	return nil
}
