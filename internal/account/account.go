// Package account loads the monitored account list from a CSV source.
package account

import (
	"encoding/csv"
	"io"
	"os"
	"strings"

	"github.com/sabir1919/Hednet-node/internal/errors"
)

// Account is one monitored identity. Immutable once loaded.
type Account struct {
	Email    string
	Password string
}

// ID returns the opaque identity string used to key session state and
// status records.
func (a Account) ID() string {
	return a.Email
}

// Load reads accounts from a CSV file of email,password rows.
// A header row whose first column is "email" (any case) is skipped,
// as are blank rows and rows with an empty first column.
func Load(path string) ([]Account, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.WrapWithCode(err, errors.ErrConfig,
				"Accounts file not found: "+path,
				"Create a CSV file with one email,password row per account")
		}
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Cannot read accounts file: "+path,
			"Check file permissions")
	}
	defer f.Close()

	return Parse(f)
}

// Parse reads accounts from CSV data.
func Parse(r io.Reader) ([]Account, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var accounts []Account
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.WrapWithCode(err, errors.ErrConfig,
				"Malformed accounts CSV",
				"Each row should be email,password")
		}

		if len(row) == 0 {
			continue
		}
		email := strings.TrimSpace(row[0])
		if email == "" || strings.EqualFold(email, "email") {
			continue
		}

		password := ""
		if len(row) > 1 {
			password = strings.TrimSpace(row[1])
		}
		accounts = append(accounts, Account{Email: email, Password: password})
	}

	return accounts, nil
}

// IDs returns the identity strings in load order.
func IDs(accounts []Account) []string {
	ids := make([]string, len(accounts))
	for i, a := range accounts {
		ids[i] = a.ID()
	}
	return ids
}
