package authutil

import (
	"testing"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if !CheckPassword("correct horse battery", hash) {
		t.Error("expected matching password to verify")
	}
	if CheckPassword("wrong password", hash) {
		t.Error("expected non-matching password to fail")
	}
}

func TestCheckPassword_EmptyHash(t *testing.T) {
	if CheckPassword("anything", "") {
		t.Error("expected empty hash to never verify")
	}
}

func TestValidatePassword_TooShort(t *testing.T) {
	if err := ValidatePassword("short"); err == nil {
		t.Error("expected short password to be rejected")
	}
}

func TestValidatePassword_LeadingSpace(t *testing.T) {
	if err := ValidatePassword(" padded-password"); err == nil {
		t.Error("expected leading space to be rejected")
	}
}

func TestValidatePassword_Valid(t *testing.T) {
	if err := ValidatePassword("a valid password"); err != nil {
		t.Errorf("expected password to be accepted, got %v", err)
	}
}

func TestValidEmail_Valid(t *testing.T) {
	validEmails := []string{
		"test@example.com",
		"user@domain.org",
		"name.surname@company.co.uk",
		"a@b.co",
	}

	for _, email := range validEmails {
		if !ValidEmail(email) {
			t.Errorf("expected %q to be valid", email)
		}
	}
}

func TestValidEmail_MissingAt(t *testing.T) {
	if ValidEmail("testexample.com") {
		t.Error("expected email without @ to be invalid")
	}
}

func TestValidEmail_MultipleAt(t *testing.T) {
	if ValidEmail("test@@example.com") {
		t.Error("expected email with multiple @ to be invalid")
	}
}

func TestValidEmail_EmptyLocalPart(t *testing.T) {
	if ValidEmail("@example.com") {
		t.Error("expected email with empty local part to be invalid")
	}
}

func TestValidEmail_NoDomainDot(t *testing.T) {
	if ValidEmail("test@example") {
		t.Error("expected email without domain dot to be invalid")
	}
}

func TestValidEmail_DotAtEnd(t *testing.T) {
	if ValidEmail("test@example.") {
		t.Error("expected email with dot at end to be invalid")
	}
}
