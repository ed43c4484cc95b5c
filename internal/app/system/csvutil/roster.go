// internal/app/system/csvutil/roster.go
package csvutil

import (
	"encoding/csv"
	"fmt"
	"html/template"
	"io"
	"strconv"
	"strings"

	"github.com/dalemusser/coursefaces/internal/app/system/authutil"
)

// RosterCSVRow is the normalized row produced by PreScanRosterCSV.
//
// Expected columns: user id, first name, last name, email, group (optional).
// The user id is the id the source LMS assigned; imports are idempotent
// because every write is keyed on it.
type RosterCSVRow struct {
	UserID    int64
	FirstName string
	LastName  string
	Email     string // lower-cased
	GroupName string // empty when the row carries no group
}

// PreScanRosterCSV reads all rows from r, skips a header if present,
// validates each row, and either returns normalized rows OR a formatted
// HTML error message (template.HTML) describing the first few bad lines.
// It never writes to a DB; it's safe to call before any mutations.
func PreScanRosterCSV(r io.Reader) (rows []RosterCSVRow, htmlErr template.HTML, err error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	// Pull first row to check header
	first, ferr := reader.Read()
	if ferr == io.EOF {
		first = nil
	} else if ferr != nil {
		return nil, template.HTML(template.HTMLEscapeString(ferr.Error())), nil
	}
	var raw [][]string
	if len(first) >= 4 &&
		(strings.EqualFold(strings.TrimSpace(first[0]), "user id") ||
			strings.EqualFold(strings.TrimSpace(first[0]), "id")) &&
		strings.EqualFold(strings.TrimSpace(first[3]), "email") {
		// header detected → skip
	} else if first != nil {
		raw = append(raw, first)
	}
	for {
		rec, e := reader.Read()
		if e == io.EOF {
			break
		}
		if e != nil || len(rec) == 0 {
			continue
		}
		raw = append(raw, rec)
		if len(raw) > MaxRows {
			return nil, template.HTML(fmt.Sprintf("Upload rejected: more than %d rows.", MaxRows)), nil
		}
	}

	type rowErr struct{ Line, Reason string }
	var errs []rowErr

	field := func(rec []string, i int) string {
		if i < len(rec) {
			return strings.TrimSpace(rec[i])
		}
		return ""
	}

	for _, rec := range raw {
		id := field(rec, 0)
		firstName := field(rec, 1)
		lastName := field(rec, 2)
		email := strings.ToLower(field(rec, 3))
		group := field(rec, 4)

		if id == "" && firstName == "" && lastName == "" && email == "" {
			continue
		}

		line := strings.Join(rec, ",")
		uid, perr := strconv.ParseInt(id, 10, 64)
		if perr != nil || uid <= 0 {
			errs = append(errs, rowErr{Line: line, Reason: "invalid user id"})
		}
		if firstName == "" || lastName == "" {
			errs = append(errs, rowErr{Line: line, Reason: "missing name"})
		}
		if !authutil.ValidEmail(email) {
			errs = append(errs, rowErr{Line: line, Reason: "invalid email"})
		}

		rows = append(rows, RosterCSVRow{
			UserID:    uid,
			FirstName: firstName,
			LastName:  lastName,
			Email:     email,
			GroupName: group,
		})
	}

	if len(errs) > 0 {
		var b strings.Builder
		b.WriteString("Upload rejected: one or more rows are invalid.<br>")
		b.WriteString("Each row must have a numeric User ID, a First Name, a Last Name, and an Email. Group is optional.<br>")

		max := 5
		if len(errs) < max {
			max = len(errs)
		}
		b.WriteString("Examples:<br>")
		for i := 0; i < max; i++ {
			e := errs[i]
			b.WriteString(template.HTMLEscapeString(e.Line))
			b.WriteString(" &mdash; ")
			b.WriteString(template.HTMLEscapeString(e.Reason))
			b.WriteString("<br>")
		}
		return nil, template.HTML(b.String()), nil
	}

	return rows, "", nil
}
