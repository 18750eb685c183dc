package main

import (
	"os"

	"github.com/trunov/nuban/internal/app/config"
	"github.com/trunov/nuban/logger"
)

func main() {
	l := logger.Get()

	cfg, err := config.ReadConfig(os.Args[1:])
	if err != nil {
		l.Fatal().
			Err(err).
			Msgf("Failed to read the config.")
	}

	valid, err := Run(cfg, os.Stdout, l)
	if err != nil {
		l.Fatal().
			Err(err).
			Msg("Failed to validate account number.")
	}

	if !valid {
		os.Exit(1)
	}
}
