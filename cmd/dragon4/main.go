// Command dragon4 prints exact decimal conversions of float64 values.
//
//	go run ./cmd/dragon4 fixed --precision 40 0.1
//	go run ./cmd/dragon4 --bits decode 0x0010000000000000
package main

import (
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/govalues/dragon4/internal/cli"
)

func main() {
	log.SetOutput(os.Stderr)
	if err := cli.NewRootCommand().Execute(); err != nil {
		log.WithError(err).Error("cannot execute command")
		os.Exit(1)
	}
}
