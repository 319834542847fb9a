// Package csvimport parses member bulk-import files. The format is a header
// row followed by one member per line; logical columns are email, name,
// role and phoneNumber, matched case-insensitively. Rows missing required
// fields are skipped and reported, not fatal.
package csvimport

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"dues_tracker/internal/models"
)

// Row is one parsed member candidate. Line is 1-based and counts the header.
type Row struct {
	Line  int
	Email string
	Name  string
	Role  string
	Phone string
}

// SkippedRow reports why a line was not imported.
type SkippedRow struct {
	Line   int    `json:"line"`
	Reason string `json:"reason"`
}

type Result struct {
	Rows    []Row
	Skipped []SkippedRow
}

// Parse reads the whole file. Only a missing/garbled header or an unreadable
// stream is an error; bad data rows land in Skipped.
func Parse(r io.Reader) (*Result, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	cols := map[string]int{}
	for i, name := range header {
		cols[normalizeHeader(name)] = i
	}
	emailCol, okEmail := cols["email"]
	nameCol, okName := cols["name"]
	if !okEmail || !okName {
		return nil, fmt.Errorf("csv header must include email and name columns")
	}
	roleCol, okRole := cols["role"]
	phoneCol, okPhone := cols["phonenumber"]

	result := &Result{}
	line := 1
	for {
		record, err := reader.Read()
		line++
		if err == io.EOF {
			break
		}
		if err != nil {
			result.Skipped = append(result.Skipped, SkippedRow{Line: line, Reason: "unreadable row"})
			continue
		}

		row := Row{Line: line}
		row.Email = field(record, emailCol)
		row.Name = field(record, nameCol)
		if okRole {
			row.Role = field(record, roleCol)
		}
		if okPhone {
			row.Phone = field(record, phoneCol)
		}

		if row.Email == "" {
			result.Skipped = append(result.Skipped, SkippedRow{Line: line, Reason: "missing email"})
			continue
		}
		if row.Name == "" {
			result.Skipped = append(result.Skipped, SkippedRow{Line: line, Reason: "missing name"})
			continue
		}

		// Anything other than ADMIN (any casing) imports as MEMBER.
		if strings.EqualFold(row.Role, models.RoleAdmin) {
			row.Role = models.RoleAdmin
		} else {
			row.Role = models.RoleMember
		}

		result.Rows = append(result.Rows, row)
	}
	return result, nil
}

func normalizeHeader(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.ReplaceAll(name, "_", "")
	name = strings.ReplaceAll(name, " ", "")
	if name == "phone" {
		name = "phonenumber"
	}
	return name
}

func field(record []string, i int) string {
	if i < 0 || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}
