package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/git-tools/git-util/cmd/git-util/internal"
	"github.com/git-tools/git-util/pkg/config"
)

func main() {
	os.Exit(run())
}

func run() int {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	logger := zerolog.New(output).With().Timestamp().Logger().Level(zerolog.InfoLevel)

	conf := config.New()
	conf.Load()

	if conf.Debug {
		logger = logger.Level(zerolog.DebugLevel)
	}

	if err := internal.NewRootCmd(logger, conf).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)

		return 1
	}

	return 0
}
