package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/trunov/nuban/internal/app/config"
	"github.com/trunov/nuban/internal/app/nuban"
)

// Run executes the command described by cfg, writing results to w. It
// reports false when an account number was checked and found invalid.
func Run(cfg config.Config, w io.Writer, l zerolog.Logger) (bool, error) {
	if cfg.ListBanks {
		return true, listBanks(w)
	}

	n, err := nuban.New(cfg.BankCode, cfg.AccountNumber)
	if err != nil {
		return false, err
	}

	valid, err := n.IsValid()
	if err != nil {
		return false, err
	}

	verdict := "invalid"
	if valid {
		verdict = "valid"
	}
	if _, err := fmt.Fprintf(w, "%s %s (expected check digit %d)\n", n, verdict, n.CheckDigit()); err != nil {
		return false, err
	}

	name, err := n.BankName()
	switch {
	case errors.Is(err, nuban.ErrBankNotFound):
		l.Warn().Object("nuban", n).Msg("Bank code is not in the directory")
		name = "unknown bank"
	case err != nil:
		return false, err
	}
	if _, err := fmt.Fprintln(w, name); err != nil {
		return false, err
	}

	l.Info().
		Object("nuban", n).
		Bool("valid", valid).
		Msg("Account number checked")

	return valid, nil
}

func listBanks(w io.Writer) error {
	banks := nuban.Banks()

	codes := make([]string, 0, len(banks))
	for code := range banks {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	for _, code := range codes {
		if _, err := fmt.Fprintf(w, "%s\t%s\n", code, banks[code]); err != nil {
			return err
		}
	}
	return nil
}
