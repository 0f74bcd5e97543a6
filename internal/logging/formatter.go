// Package logging selects the logrus formatter shared by the dragon4
// command and the C library.
package logging

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
)

// ErrFormat is returned for an unknown formatter name.
var ErrFormat = errors.New("unsupported log format")

// FormatterType names a logrus formatter.
type FormatterType string

const (
	FormatterTypePrefixed FormatterType = "prefixed"
	FormatterTypeText     FormatterType = "text"
	FormatterTypeJSON     FormatterType = "json"
)

// NewFormatter returns the formatter with the given name.
// An empty name selects the prefixed formatter.
func NewFormatter(name string) (log.Formatter, error) {
	switch FormatterType(name) {
	case FormatterTypePrefixed, "":
		return &prefixed.TextFormatter{}, nil
	case FormatterTypeText:
		return &log.TextFormatter{}, nil
	case FormatterTypeJSON:
		return &log.JSONFormatter{}, nil
	}
	return nil, errors.Wrapf(ErrFormat, "%q", name)
}
