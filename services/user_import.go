package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"eyedea-api/models"
	"eyedea-api/utils"
)

// Template columns for the bulk user upload. Multi-value columns
// (approved_pillars, approved_departments) are semicolon-delimited.
var userImportRequiredColumns = []string{"username", "email", "password"}

// UserImportRow is one parsed, validated row of the bulk upload CSV.
// Password is still plain text; the caller hashes it before insert.
type UserImportRow struct {
	Line     int
	User     models.User
	Password string
}

// ParseUserCSV reads the bulk-upload CSV and returns the importable rows
// plus per-row error messages for everything that was skipped. A malformed
// file (unreadable, or missing required header columns) fails outright.
func ParseUserCSV(r io.Reader) ([]UserImportRow, []string, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range userImportRequiredColumns {
		if _, ok := columns[required]; !ok {
			return nil, nil, fmt.Errorf("missing required column %q", required)
		}
	}

	field := func(record []string, name string) string {
		idx, ok := columns[name]
		if !ok || idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	var rows []UserImportRow
	var rowErrors []string

	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			rowErrors = append(rowErrors, fmt.Sprintf("Row %d: %v", line, err))
			continue
		}

		username := field(record, "username")
		email := field(record, "email")
		password := field(record, "password")
		if username == "" || email == "" || password == "" {
			rowErrors = append(rowErrors, fmt.Sprintf("Row %d: missing required fields (username, email, password)", line))
			continue
		}
		if !utils.ValidateEmail(email) {
			rowErrors = append(rowErrors, fmt.Sprintf("Row %d: invalid email %q", line, email))
			continue
		}

		role := field(record, "role")
		if role == "" {
			role = models.RoleUser
		}
		if !models.ValidRole(role) {
			rowErrors = append(rowErrors, fmt.Sprintf("Row %d: invalid role %q", line, role))
			continue
		}

		user := models.User{
			Username:            username,
			Email:               email,
			Role:                role,
			Department:          optionalField(field(record, "department")),
			Team:                optionalField(field(record, "team")),
			Pillar:              optionalField(field(record, "pillar")),
			Manager:             optionalField(field(record, "manager")),
			ApprovedPillars:     splitMultiValue(field(record, "approved_pillars")),
			ApprovedDepartments: splitMultiValue(field(record, "approved_departments")),
		}

		rows = append(rows, UserImportRow{Line: line, User: user, Password: password})
	}

	return rows, rowErrors, nil
}

func optionalField(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

func splitMultiValue(value string) []string {
	if value == "" {
		return []string{}
	}
	parts := strings.Split(value, ";")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
