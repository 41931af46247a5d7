package config

import (
	"sort"
	"strconv"
	"strings"
)

// Section is one [name] block. Option names are case-insensitive, and
// every option read through it is remembered so leftovers can be reported.
type Section struct {
	name    string
	options map[string]string
	read    map[string]bool
}

func newSection(name string, options map[string]string) *Section {
	s := &Section{
		name:    name,
		options: make(map[string]string, len(options)),
		read:    make(map[string]bool),
	}
	for k, v := range options {
		s.options[strings.ToLower(k)] = v
	}
	return s
}

// Name returns the section name with its whitespace normalized.
func (s *Section) Name() string {
	return s.name
}

// Has reports whether option is set.
func (s *Section) Has(option string) bool {
	_, ok := s.options[strings.ToLower(option)]
	return ok
}

// Get returns the raw value of option.
func (s *Section) Get(option string) (string, error) {
	key := strings.ToLower(option)
	v, ok := s.options[key]
	if !ok {
		return "", missingOption(s.name, option)
	}
	s.read[key] = true
	return v, nil
}

// Float returns option as a number.
func (s *Section) Float(option string) (float64, error) {
	v, err := s.Get(option)
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0, invalidValue(s.name, option, v)
	}
	return f, nil
}

// NonNegative is Float for options that may not drop below zero.
func (s *Section) NonNegative(option string) (float64, error) {
	f, err := s.Float(option)
	if err != nil {
		return 0, err
	}
	if f < 0 {
		return 0, NewConfigError(s.name, option, "value "+strconv.FormatFloat(f, 'f', -1, 64)+" is negative")
	}
	return f, nil
}

// Unread returns the options nobody asked for, sorted.
func (s *Section) Unread() []string {
	var result []string
	for opt := range s.options {
		if !s.read[opt] {
			result = append(result, opt)
		}
	}
	sort.Strings(result)
	return result
}
