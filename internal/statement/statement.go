// Package statement renders an account's history as CSV.
package statement

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/moneybank/moneybank/internal/account"
)

// Header is the CSV header row.
const Header = "account_id,seq,description"

const (
	numFields = 3
	colID     = 0
	colSeq    = 1
	colDesc   = 2
)

// MarshalRecord converts a history record to a CSV row.
func MarshalRecord(accountID string, r account.Record) []string {
	row := make([]string, numFields)
	row[colID] = accountID
	row[colSeq] = strconv.Itoa(r.Seq)
	row[colDesc] = r.Description
	return row
}

// Write writes the header and one row per history record of acct.
func Write(w io.Writer, acct *account.Account) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	id := acct.ID().String()
	for i, r := range acct.History() {
		if err := cw.Write(MarshalRecord(id, r)); err != nil {
			return fmt.Errorf("writing record %d: %w", i+1, err)
		}
	}

	cw.Flush()
	return cw.Error()
}
