// Package nuban validates Nigerian Uniform Bank Account Numbers as defined by
// the Central Bank of Nigeria: a 3-digit bank code plus a 10-digit account
// number whose last digit is a weighted check digit over the other twelve.
package nuban

import (
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

const (
	bankCodeLen      = 3
	accountNumberLen = 10
	serialLen        = accountNumberLen - 1
)

var (
	ErrInvalidBankCode      = errors.New("bank code must be exactly 3 digits")
	ErrInvalidAccountNumber = errors.New("account number must be exactly 10 digits")
	ErrBankNotFound         = errors.New("bank not found")
)

// weights is applied positionally to bank code followed by the serial.
var weights = [bankCodeLen + serialLen]int{3, 7, 3, 3, 7, 3, 3, 7, 3, 3, 7, 3}

var validate = validator.New()

type input struct {
	BankCode      string `validate:"len=3,number"`
	AccountNumber string `validate:"len=10,number"`
}

// Nuban is a well-formed bank code and account number pair. The zero value
// is not usable; build one with New.
type Nuban struct {
	bankCode      string
	accountNumber string
}

// New validates the format of bankCode and accountNumber and returns a Nuban
// holding them verbatim. A bad bank code is reported before a bad account
// number. New does not check the check digit, see IsValid.
func New(bankCode, accountNumber string) (Nuban, error) {
	err := validate.Struct(input{BankCode: bankCode, AccountNumber: accountNumber})
	if err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return Nuban{}, err
		}
		for _, fe := range fieldErrs {
			if fe.Field() == "BankCode" {
				return Nuban{}, errors.Wrapf(ErrInvalidBankCode, "bank code %q", bankCode)
			}
		}
		return Nuban{}, errors.Wrapf(ErrInvalidAccountNumber, "account number %q", accountNumber)
	}

	return Nuban{bankCode: bankCode, accountNumber: accountNumber}, nil
}

// Compute returns the check digit for a 3-digit bank code and the 9-digit
// serial that precedes the check digit in an account number.
func Compute(bankCode, serial string) (int, error) {
	if len(bankCode) != bankCodeLen {
		return 0, errors.Wrapf(ErrInvalidBankCode, "bank code %q", bankCode)
	}
	if len(serial) != serialLen {
		return 0, errors.Wrapf(ErrInvalidAccountNumber, "serial %q must be exactly 9 digits", serial)
	}

	payload := bankCode + serial
	var sum int
	for i := 0; i < len(payload); i++ {
		d, err := digit(payload[i])
		if err != nil {
			if i < bankCodeLen {
				return 0, errors.Wrapf(ErrInvalidBankCode, "bank code %q", bankCode)
			}
			return 0, errors.Wrapf(ErrInvalidAccountNumber, "serial %q", serial)
		}
		sum += d * weights[i]
	}

	return (10 - sum%10) % 10, nil
}

// CheckDigit returns the check digit expected for n. The stored last digit
// of the account number plays no part in it.
func (n Nuban) CheckDigit() int {
	d, err := n.checkDigit()
	if err != nil {
		// only reachable for a Nuban not built by New
		return 0
	}
	return d
}

func (n Nuban) checkDigit() (int, error) {
	if len(n.accountNumber) != accountNumberLen {
		return 0, errors.Wrapf(ErrInvalidAccountNumber, "account number %q", n.accountNumber)
	}
	return Compute(n.bankCode, n.accountNumber[:serialLen])
}

// IsValid reports whether the last digit of the account number matches the
// computed check digit. An error is returned only when n does not hold a
// well-formed pair, which cannot happen for values returned by New.
func (n Nuban) IsValid() (bool, error) {
	expected, err := n.checkDigit()
	if err != nil {
		return false, err
	}

	actual, err := digit(n.accountNumber[serialLen])
	if err != nil {
		return false, errors.Wrapf(ErrInvalidAccountNumber, "account number %q", n.accountNumber)
	}

	return actual == expected, nil
}

func (n Nuban) AccountNumber() string {
	return n.accountNumber
}

func (n Nuban) BankCode() string {
	return n.bankCode
}

// BankName resolves the bank code through the bank directory.
func (n Nuban) BankName() (string, error) {
	name, ok := LookupBank(n.bankCode)
	if !ok {
		return "", errors.Wrapf(ErrBankNotFound, "bank code %q", n.bankCode)
	}
	return name, nil
}

// Banks returns a copy of the bank directory.
func (n Nuban) Banks() map[string]string {
	return Banks()
}

func (n Nuban) String() string {
	return n.bankCode + "-" + n.accountNumber
}

func (n Nuban) MarshalZerologObject(e *zerolog.Event) {
	e.Str("bank_code", n.bankCode).Str("account_number", n.accountNumber)
}

func digit(c byte) (int, error) {
	if c < '0' || c > '9' {
		return 0, errors.Errorf("invalid digit %q", c)
	}
	return int(c - '0'), nil
}
