package cli

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/govalues/dragon4"
)

// parseValue converts a command line argument to float64.
// With bits set, s is a 64-bit pattern in hexadecimal, with or without
// the "0x" prefix.
// Otherwise s is any literal accepted by strconv.ParseFloat, including
// "inf", "nan" and hexadecimal floats.
func parseValue(s string, bits bool) (float64, error) {
	if bits {
		h := strings.TrimPrefix(strings.ToLower(s), "0x")
		u, err := strconv.ParseUint(h, 16, 64)
		if err != nil {
			return 0, errors.Wrapf(err, "invalid bit pattern %q", s)
		}
		return math.Float64frombits(u), nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid value %q", s)
	}
	return f, nil
}

// parseValues converts all arguments, logging their exact representation.
func parseValues(args []string, bits bool) ([]float64, error) {
	values := make([]float64, 0, len(args))
	for _, s := range args {
		f, err := parseValue(s, bits)
		if err != nil {
			return nil, err
		}
		d := dragon4.Decode(f)
		log.WithFields(log.Fields{
			"input":    s,
			"bits":     strconv.FormatUint(math.Float64bits(f), 16),
			"category": d.Category.String(),
			"neg":      d.Neg,
			"mant":     d.Mant,
			"exp":      d.Exp,
		}).Debug("decoded")
		values = append(values, f)
	}
	return values, nil
}
