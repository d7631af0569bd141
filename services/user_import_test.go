package services

import (
	"strings"
	"testing"

	"eyedea-api/models"
)

func TestParseUserCSV(t *testing.T) {
	csv := strings.Join([]string{
		"username,email,password,role,pillar,department,team,manager,approved_pillars,approved_departments",
		"jsmith,jsmith@example.com,secret123,user,GBS,Order Management,Order Entry,M. Lee,,",
		"rlopez,rlopez@example.com,secret456,approver,GBS,Procurement,,,GBS;Technology,Procurement",
	}, "\n")

	rows, rowErrors, err := ParseUserCSV(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("ParseUserCSV failed: %v", err)
	}
	if len(rowErrors) != 0 {
		t.Fatalf("unexpected row errors: %v", rowErrors)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}

	first := rows[0]
	if first.Line != 2 {
		t.Errorf("first row line = %d, want 2", first.Line)
	}
	if first.User.Username != "jsmith" || first.User.Email != "jsmith@example.com" {
		t.Errorf("first row identity wrong: %+v", first.User)
	}
	if first.Password != "secret123" {
		t.Errorf("first row password = %q", first.Password)
	}
	if first.User.Role != models.RoleUser {
		t.Errorf("first row role = %q", first.User.Role)
	}
	if first.User.Pillar == nil || *first.User.Pillar != "GBS" {
		t.Error("first row pillar not parsed")
	}
	if len(first.User.ApprovedPillars) != 0 {
		t.Errorf("first row approved pillars = %v, want empty", first.User.ApprovedPillars)
	}

	second := rows[1]
	if second.User.Role != models.RoleApprover {
		t.Errorf("second row role = %q", second.User.Role)
	}
	if got := second.User.ApprovedPillars; len(got) != 2 || got[0] != "GBS" || got[1] != "Technology" {
		t.Errorf("second row approved pillars = %v", got)
	}
	if got := second.User.ApprovedDepartments; len(got) != 1 || got[0] != "Procurement" {
		t.Errorf("second row approved departments = %v", got)
	}
}

func TestParseUserCSVDefaultsRole(t *testing.T) {
	csv := "username,email,password\njsmith,jsmith@example.com,secret123\n"

	rows, rowErrors, err := ParseUserCSV(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("ParseUserCSV failed: %v", err)
	}
	if len(rowErrors) != 0 {
		t.Fatalf("unexpected row errors: %v", rowErrors)
	}
	if len(rows) != 1 || rows[0].User.Role != models.RoleUser {
		t.Fatalf("role should default to user: %+v", rows)
	}
}

func TestParseUserCSVRowErrors(t *testing.T) {
	csv := strings.Join([]string{
		"username,email,password,role",
		",missing@example.com,secret123,user",
		"badmail,not-an-email,secret123,user",
		"badrole,badrole@example.com,secret123,superadmin",
		"ok,ok@example.com,secret123,user",
	}, "\n")

	rows, rowErrors, err := ParseUserCSV(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("ParseUserCSV failed: %v", err)
	}
	if len(rows) != 1 || rows[0].User.Username != "ok" {
		t.Fatalf("only the valid row should survive: %+v", rows)
	}
	if len(rowErrors) != 3 {
		t.Fatalf("got %d row errors, want 3: %v", len(rowErrors), rowErrors)
	}
	for i, want := range []string{"Row 2", "Row 3", "Row 4"} {
		if !strings.HasPrefix(rowErrors[i], want) {
			t.Errorf("rowErrors[%d] = %q, want prefix %q", i, rowErrors[i], want)
		}
	}
}

func TestParseUserCSVMissingColumns(t *testing.T) {
	csv := "username,email\njsmith,jsmith@example.com\n"
	if _, _, err := ParseUserCSV(strings.NewReader(csv)); err == nil {
		t.Fatal("expected error for missing password column")
	}

	if _, _, err := ParseUserCSV(strings.NewReader("")); err == nil {
		t.Fatal("expected error for empty file")
	}
}

func TestParseUserCSVHeaderCaseInsensitive(t *testing.T) {
	csv := "Username,Email,Password\njsmith,jsmith@example.com,secret123\n"

	rows, _, err := ParseUserCSV(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("ParseUserCSV failed: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
}
