// Package cli implements the dragon4 command, a tool for replaying single
// conversions reported by a differential testing harness.
package cli

import (
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/govalues/dragon4/internal/logging"
)

var errOutputFormat = errors.New("unsupported output format")

// NewRootCommand returns the dragon4 command with all its subcommands.
// Flags can also be set from DRAGON4_* environment variables,
// for example DRAGON4_OUTPUT=json.
func NewRootCommand() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("dragon4")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	root := &cobra.Command{
		Use:   "dragon4",
		Short: "exact float64 to decimal conversion",
		Long: `dragon4 prints the exact decimal digits of float64 values.

Values are Go float literals, or 64-bit patterns in hexadecimal with --bits.
Put "--" before negative values, so that they are not taken for flags.`,

		// SilenceUsage is an option to silence usage when an error occurs.
		SilenceUsage: true,

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Once the flags are parsed, we can bind config keys with flags.
			if err := bindFlags(v, cmd.Flags()); err != nil {
				return err
			}
			formatter, err := logging.NewFormatter(v.GetString("log-format"))
			if err != nil {
				return err
			}
			log.SetFormatter(formatter)
			if v.GetBool("debug") {
				log.SetLevel(log.DebugLevel)
			}
			switch format := v.GetString("output"); format {
			case "text", "json":
			default:
				return errors.Wrapf(errOutputFormat, "%q", format)
			}
			return nil
		},
	}

	root.PersistentFlags().Bool("debug", false, "log decoded inputs")
	root.PersistentFlags().String("log-format", "prefixed", "log format, prefixed, text or json")
	root.PersistentFlags().StringP("output", "o", "text", "output format, text or json")
	root.PersistentFlags().Bool("bits", false, "read values as hexadecimal bit patterns, e.g. 0x3fb999999999999a")

	root.AddCommand(
		newDecodeCommand(v),
		newShortestCommand(v),
		newFixedCommand(v),
		newExponentCommand(v),
	)
	return root
}

// bindFlags binds config keys of v with the parsed flags.
// The flags of a subcommand include the persistent flags of its parents.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	return errors.Wrap(v.BindPFlags(flags), "failed to bind flags")
}
