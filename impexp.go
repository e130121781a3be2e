package btcbasis

import (
	"encoding/csv"
	"errors"
	"io"
	"regexp"

	"github.com/etnz/btcbasis/date"
	"github.com/shopspring/decimal"
)

// this file handles the exchange history import format.
//
// The history is the concatenation of the account CSV exports. Each row is
// `index,"date time",action,description,amount,...`; the description embeds
// the transaction id as "tid:<digits>". Rows that do not carry a well-formed
// entry (header rows, unrelated categories, truncated rows) are skipped
// silently, matching the tolerance the exports require.

var tidRe = regexp.MustCompile(`tid:([0-9]+)`)

// parseEntry extracts one Entry from a raw record, or reports ok=false when
// the record does not carry one.
func parseEntry(record []string) (e Entry, ok bool) {
	if len(record) < 5 {
		return Entry{}, false
	}
	// column 1 is "YYYY-MM-DD HH:MM:SS"; only the day matters.
	stamp := record[1]
	if len(stamp) < len(date.DateFormat) {
		return Entry{}, false
	}
	on, err := date.Parse(stamp[:len(date.DateFormat)])
	if err != nil {
		return Entry{}, false
	}
	m := tidRe.FindStringSubmatch(record[3])
	if m == nil {
		return Entry{}, false
	}
	amount, err := decimal.NewFromString(record[4])
	if err != nil {
		return Entry{}, false
	}
	return Entry{Date: on, ID: m[1], Action: ParseAction(record[2]), Amount: amount}, true
}

// ImportEntries reads entries from 'r' in the exchange history format.
// Malformed rows are skipped; only a broken reader is an error.
func ImportEntries(r io.Reader) ([]Entry, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // exports disagree on trailing columns

	var entries []Entry
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return entries, nil
		}
		if err != nil {
			// a malformed row, not a broken reader: skip it.
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				continue
			}
			return nil, err
		}
		if e, ok := parseEntry(record); ok {
			entries = append(entries, e)
		}
	}
}
