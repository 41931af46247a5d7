// Package config reads tweak rules files and the tool's environment
// settings.
package config

import "fmt"

// ConfigError points at the section and option a rules file problem
// belongs to. Either may be empty.
type ConfigError struct {
	Section string
	Option  string
	Message string
}

func (e *ConfigError) Error() string {
	switch {
	case e.Option != "":
		return fmt.Sprintf("[%s] %s: %s", e.Section, e.Option, e.Message)
	case e.Section != "":
		return fmt.Sprintf("[%s]: %s", e.Section, e.Message)
	}
	return e.Message
}

// NewConfigError creates a ConfigError.
func NewConfigError(section, option, message string) *ConfigError {
	return &ConfigError{Section: section, Option: option, Message: message}
}

func missingSection(section string) *ConfigError {
	return NewConfigError(section, "", "no such section")
}

func missingOption(section, option string) *ConfigError {
	return NewConfigError(section, option, "not set")
}

func invalidValue(section, option, value string) *ConfigError {
	return NewConfigError(section, option, fmt.Sprintf("%q is not a number", value))
}
