package csvutil

import (
	"strings"
	"testing"
)

func TestPreScanRosterCSV_HeaderSkipped(t *testing.T) {
	in := "User ID,First Name,Last Name,Email,Group\n" +
		"10,Ana,Mori,ana.mori@test.com,Team A\n"

	rows, htmlErr, err := PreScanRosterCSV(strings.NewReader(in))
	if err != nil {
		t.Fatalf("PreScanRosterCSV failed: %v", err)
	}
	if htmlErr != "" {
		t.Fatalf("unexpected html error: %s", htmlErr)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0].UserID != 10 || rows[0].FirstName != "Ana" || rows[0].GroupName != "Team A" {
		t.Errorf("unexpected row: %+v", rows[0])
	}
}

func TestPreScanRosterCSV_NoHeader(t *testing.T) {
	in := "10,Ana,Mori,ana.mori@test.com\n11,Ben,Young,ben.young@test.com,Team B\n"

	rows, htmlErr, err := PreScanRosterCSV(strings.NewReader(in))
	if err != nil {
		t.Fatalf("PreScanRosterCSV failed: %v", err)
	}
	if htmlErr != "" {
		t.Fatalf("unexpected html error: %s", htmlErr)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].GroupName != "" {
		t.Errorf("expected empty group for first row, got %q", rows[0].GroupName)
	}
	if rows[1].GroupName != "Team B" {
		t.Errorf("expected Team B, got %q", rows[1].GroupName)
	}
}

func TestPreScanRosterCSV_EmailLowercased(t *testing.T) {
	in := "10,Ana,Mori,Ana.Mori@Test.COM\n"

	rows, htmlErr, _ := PreScanRosterCSV(strings.NewReader(in))
	if htmlErr != "" {
		t.Fatalf("unexpected html error: %s", htmlErr)
	}
	if rows[0].Email != "ana.mori@test.com" {
		t.Errorf("expected lowercased email, got %q", rows[0].Email)
	}
}

func TestPreScanRosterCSV_BadID(t *testing.T) {
	in := "abc,Ana,Mori,ana.mori@test.com\n"

	rows, htmlErr, err := PreScanRosterCSV(strings.NewReader(in))
	if err != nil {
		t.Fatalf("PreScanRosterCSV failed: %v", err)
	}
	if htmlErr == "" {
		t.Fatal("expected html error for bad user id")
	}
	if rows != nil {
		t.Error("expected no rows when any row is invalid")
	}
}

func TestPreScanRosterCSV_BadEmail(t *testing.T) {
	in := "10,Ana,Mori,not-an-email\n"

	_, htmlErr, err := PreScanRosterCSV(strings.NewReader(in))
	if err != nil {
		t.Fatalf("PreScanRosterCSV failed: %v", err)
	}
	if htmlErr == "" {
		t.Fatal("expected html error for bad email")
	}
}

func TestPreScanRosterCSV_BlankLinesIgnored(t *testing.T) {
	in := "10,Ana,Mori,ana.mori@test.com\n\n,,,\n11,Ben,Young,ben.young@test.com\n"

	rows, htmlErr, err := PreScanRosterCSV(strings.NewReader(in))
	if err != nil {
		t.Fatalf("PreScanRosterCSV failed: %v", err)
	}
	if htmlErr != "" {
		t.Fatalf("unexpected html error: %s", htmlErr)
	}
	if len(rows) != 2 {
		t.Errorf("expected 2 rows, got %d", len(rows))
	}
}

func TestPreScanRosterCSV_Empty(t *testing.T) {
	rows, htmlErr, err := PreScanRosterCSV(strings.NewReader(""))
	if err != nil {
		t.Fatalf("PreScanRosterCSV failed: %v", err)
	}
	if htmlErr != "" {
		t.Fatalf("unexpected html error: %s", htmlErr)
	}
	if len(rows) != 0 {
		t.Errorf("expected no rows, got %d", len(rows))
	}
}
