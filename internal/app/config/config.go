package config

import (
	"flag"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	BankCode      string `env:"NUBAN_BANK_CODE"`
	AccountNumber string `env:"NUBAN_ACCOUNT_NUMBER"`
	ListBanks     bool   `env:"NUBAN_LIST_BANKS" envDefault:"false"`
}

// ReadConfig reads the environment first, then lets command line flags in
// args override it.
func ReadConfig(args []string) (Config, error) {
	cfgEnv := Config{}

	if err := env.Parse(&cfgEnv); err != nil {
		return cfgEnv, err
	}

	cfgFlag := Config{}

	fs := flag.NewFlagSet("nuban", flag.ContinueOnError)
	fs.StringVar(&cfgFlag.BankCode, "b", cfgEnv.BankCode, "3-digit bank code")
	fs.StringVar(&cfgFlag.AccountNumber, "a", cfgEnv.AccountNumber, "10-digit account number")
	fs.BoolVar(&cfgFlag.ListBanks, "l", cfgEnv.ListBanks, "list known banks")

	if err := fs.Parse(args); err != nil {
		return cfgFlag, err
	}

	return cfgFlag, nil
}
