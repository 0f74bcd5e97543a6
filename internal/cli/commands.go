package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/govalues/dragon4"
)

// record is a single line of output.
type record struct {
	Input    string `json:"input"`
	Category string `json:"category,omitempty"`
	Neg      bool   `json:"neg,omitempty"`
	Mant     uint64 `json:"mant,omitempty"`
	Exp      int    `json:"exp,omitempty"`
	Digits   string `json:"digits"`
	K        int    `json:"k"`
}

// printer writes records in the configured output format.
type printer struct {
	w    io.Writer
	json bool
}

func newPrinter(cmd *cobra.Command, v *viper.Viper) *printer {
	return &printer{w: cmd.OutOrStdout(), json: v.GetString("output") == "json"}
}

func (p *printer) digits(input string, d dragon4.Digits) error {
	r := record{Input: input, Digits: string(d.Bytes()), K: d.Exp()}
	if p.json {
		return p.encode(r)
	}
	digits := r.Digits
	if digits == "" {
		digits = "-"
	}
	_, err := fmt.Fprintf(p.w, "%s\t%s\t%d\n", input, digits, r.K)
	return errors.Wrap(err, "failed to write output")
}

func (p *printer) decoded(input string, d dragon4.Decoded) error {
	sign := "+"
	if d.Neg {
		sign = "-"
	}
	if p.json {
		return p.encode(record{
			Input:    input,
			Category: d.Category.String(),
			Neg:      d.Neg,
			Mant:     d.Mant,
			Exp:      d.Exp,
		})
	}
	_, err := fmt.Fprintf(p.w, "%s\t%s\t%s\t%d\t%d\n", input, d.Category, sign, d.Mant, d.Exp)
	return errors.Wrap(err, "failed to write output")
}

func (p *printer) encode(r record) error {
	return errors.Wrap(json.NewEncoder(p.w).Encode(r), "failed to encode output")
}

// convertCommand returns a command that applies conv to every argument.
func convertCommand(v *viper.Viper, use, short string, conv func(float64) dragon4.Digits) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <value>...",
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseValues(args, v.GetBool("bits"))
			if err != nil {
				return err
			}
			p := newPrinter(cmd, v)
			for i, f := range values {
				if err := p.digits(args[i], conv(f)); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newDecodeCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "decode <value>...",
		Short: "print category, sign, mantissa and binary exponent",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseValues(args, v.GetBool("bits"))
			if err != nil {
				return err
			}
			p := newPrinter(cmd, v)
			for i, f := range values {
				if err := p.decoded(args[i], dragon4.Decode(f)); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newShortestCommand(v *viper.Viper) *cobra.Command {
	return convertCommand(v, "shortest", "print the shortest round-trip digits", dragon4.Shortest)
}

func newFixedCommand(v *viper.Viper) *cobra.Command {
	cmd := convertCommand(v, "fixed", "print digits rounded to --precision digits after the decimal point",
		func(f float64) dragon4.Digits {
			return dragon4.Fixed(f, v.GetInt("precision"))
		})
	cmd.Flags().Int16P("precision", "p", 0, "number of digits after the decimal point, negative rounds to tens, hundreds, ...")
	return cmd
}

func newExponentCommand(v *viper.Viper) *cobra.Command {
	cmd := convertCommand(v, "exponent", "print digits rounded to --limit significant digits",
		func(f float64) dragon4.Digits {
			return dragon4.Exponent(f, v.GetInt("limit"))
		})
	cmd.Flags().Int16P("limit", "l", 17, "number of significant digits")
	return cmd
}
