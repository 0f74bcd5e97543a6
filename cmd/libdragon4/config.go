package main

import (
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/govalues/dragon4/internal/logging"
)

// The library is configured from the environment of the host process:
//
//	DRAGON4_LOG_LEVEL   logrus level, "warn" by default
//	DRAGON4_LOG_FORMAT  "text" (default), "prefixed" or "json"
func init() {
	configure(viper.New())
}

func configure(v *viper.Viper) {
	v.SetEnvPrefix("dragon4")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	v.SetDefault("log-level", "warn")
	v.SetDefault("log-format", "text")

	log.SetOutput(os.Stderr)
	formatter, err := logging.NewFormatter(v.GetString("log-format"))
	if err != nil {
		log.WithError(err).Warn("invalid DRAGON4_LOG_FORMAT, using text")
		formatter = &log.TextFormatter{}
	}
	log.SetFormatter(formatter)

	level, err := log.ParseLevel(v.GetString("log-level"))
	if err != nil {
		log.WithError(err).Warn("invalid DRAGON4_LOG_LEVEL, using warn")
		level = log.WarnLevel
	}
	log.SetLevel(level)
}
