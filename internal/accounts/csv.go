package accounts

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/bankist-dev/bankist/internal/model"
	"github.com/bankist-dev/bankist/internal/numeric"
)

const (
	numFields       = 4
	colOwner        = 0
	colPIN          = 1
	colInterestRate = 2
	colMovements    = 3

	movementSep = ";"
)

// Header is the CSV header of a seed file.
var Header = []string{"owner", "pin", "interest_rate", "movements"}

// ReadAccounts reads a seed file.
func ReadAccounts(r io.Reader) ([]model.Account, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading accounts CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	var accounts []model.Account
	for i, rec := range records[1:] {
		acct, err := UnmarshalAccount(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		accounts = append(accounts, acct)
	}
	return accounts, nil
}

// WriteAccounts writes a seed file.
func WriteAccounts(w io.Writer, accounts []model.Account) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, acct := range accounts {
		if err := cw.Write(MarshalAccount(acct)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// MarshalAccount converts an Account to a CSV row.
func MarshalAccount(acct model.Account) []string {
	movs := make([]string, len(acct.Movements))
	for i, m := range acct.Movements {
		movs[i] = m.String()
	}

	row := make([]string, numFields)
	row[colOwner] = acct.Owner
	row[colPIN] = strconv.Itoa(acct.PIN)
	row[colInterestRate] = acct.InterestRate.String()
	row[colMovements] = strings.Join(movs, movementSep)
	return row
}

// UnmarshalAccount converts a CSV row to an Account. The username is
// derived from the owner, never read from the file.
func UnmarshalAccount(record []string) (model.Account, error) {
	if len(record) != numFields {
		return model.Account{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	owner := strings.TrimSpace(record[colOwner])
	if owner == "" {
		return model.Account{}, fmt.Errorf("owner is empty")
	}

	pin, err := strconv.Atoi(strings.TrimSpace(record[colPIN]))
	if err != nil {
		return model.Account{}, fmt.Errorf("parsing pin %q: %w", record[colPIN], err)
	}

	rate, err := decimal.NewFromString(strings.TrimSpace(record[colInterestRate]))
	if err != nil {
		return model.Account{}, fmt.Errorf("parsing interest_rate %q: %w", record[colInterestRate], err)
	}
	if !numeric.InRange(rate) {
		return model.Account{}, fmt.Errorf("interest_rate %q is out of range", record[colInterestRate])
	}
	if rate.IsNegative() {
		return model.Account{}, fmt.Errorf("interest_rate %s is negative", rate)
	}

	var movs []decimal.Decimal
	if s := strings.TrimSpace(record[colMovements]); s != "" {
		for _, field := range strings.Split(s, movementSep) {
			m, err := decimal.NewFromString(strings.TrimSpace(field))
			if err != nil {
				return model.Account{}, fmt.Errorf("parsing movement %q: %w", field, err)
			}
			if !numeric.InRange(m) {
				return model.Account{}, fmt.Errorf("movement %q is out of range", field)
			}
			movs = append(movs, m)
		}
	}

	return model.NewAccount(owner, pin, rate, movs...), nil
}

// LoadSeed reads a seed file from disk.
func LoadSeed(path string) ([]model.Account, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening seed file: %w", err)
	}
	defer f.Close()

	accts, err := ReadAccounts(f)
	if err != nil {
		return nil, fmt.Errorf("reading seed file %s: %w", path, err)
	}
	return accts, nil
}

// SaveSeed writes accounts to a seed file on disk.
func SaveSeed(path string, accounts []model.Account) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating seed file: %w", err)
	}
	defer f.Close()

	if err := WriteAccounts(f, accounts); err != nil {
		return fmt.Errorf("writing seed file: %w", err)
	}
	return nil
}
