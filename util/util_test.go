package util

import (
	"context"
	"net/http"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pooller/pooller-api/util/values"
)

func TestStatusCode(t *testing.T) {
	testCases := []struct {
		status string
		want   int
	}{
		{values.Success, http.StatusOK},
		{values.Created, http.StatusCreated},
		{values.Error, http.StatusInternalServerError},
		{values.BadRequestBody, http.StatusBadRequest},
		{values.Unprocessable, http.StatusUnprocessableEntity},
		{values.NotAllowed, http.StatusForbidden},
		{values.Conflict, http.StatusConflict},
		{values.NotFound, http.StatusNotFound},
		{values.NotAuthorised, http.StatusUnauthorized},
		{values.TokenExpired, http.StatusUnauthorized},
		{values.ActiveLogin, http.StatusForbidden},
		{"something-unknown", http.StatusOK},
	}

	for _, tc := range testCases {
		if got := StatusCode(tc.status); got != tc.want {
			t.Errorf("StatusCode(%q) = %d; want %d", tc.status, got, tc.want)
		}
	}
}

func TestNotBlank(t *testing.T) {
	testCases := []struct {
		value string
		want  bool
	}{
		{"hello", true},
		{"  hello  ", true},
		{"", false},
		{"   ", false},
		{"\t\n", false},
	}

	for _, tc := range testCases {
		if got := NotBlank(tc.value); got != tc.want {
			t.Errorf("NotBlank(%q) = %v; want %v", tc.value, got, tc.want)
		}
	}
}

func TestIsEmail(t *testing.T) {
	testCases := []struct {
		value string
		want  bool
	}{
		{"alice@example.com", true},
		{"first.last+tag@sub.example.co", true},
		{"no-at-sign", false},
		{"@example.com", false},
		{"alice@", false},
		{"", false},
	}

	for _, tc := range testCases {
		if got := IsEmail(tc.value); got != tc.want {
			t.Errorf("IsEmail(%q) = %v; want %v", tc.value, got, tc.want)
		}
	}
}

func TestGenerateVerificationCode(t *testing.T) {
	rgx := regexp.MustCompile(`^\d{4}$`)
	for i := 0; i < 20; i++ {
		code := GenerateVerificationCode()
		if !rgx.MatchString(code) {
			t.Fatalf("GenerateVerificationCode() = %q; want four digits", code)
		}
	}
}

func TestGenerateOptionID(t *testing.T) {
	createdAt := time.UnixMilli(1748531200123)

	if got, want := GenerateOptionID(1, createdAt), "option_1_1748531200123"; got != want {
		t.Errorf("GenerateOptionID(1, ...) = %q; want %q", got, want)
	}
	if got, want := GenerateOptionID(10, createdAt), "option_10_1748531200123"; got != want {
		t.Errorf("GenerateOptionID(10, ...) = %q; want %q", got, want)
	}
}

func TestGetUserIDFromContext(t *testing.T) {
	id := uuid.New()

	ctx := context.WithValue(context.Background(), "user_id", id.String())
	got, err := GetUserIDFromContext(ctx)
	if err != nil {
		t.Fatalf("GetUserIDFromContext: %v", err)
	}
	if got != id {
		t.Errorf("GetUserIDFromContext = %v; want %v", got, id)
	}

	if _, err := GetUserIDFromContext(context.Background()); err == nil {
		t.Error("expected error when user_id is missing from context")
	}

	bad := context.WithValue(context.Background(), "user_id", "not-a-uuid")
	if _, err := GetUserIDFromContext(bad); err == nil {
		t.Error("expected error for malformed user_id")
	}
}

func TestValidEmail(t *testing.T) {
	if err := ValidEmail("alice@example.com"); err != nil {
		t.Errorf("ValidEmail(valid) = %v; want nil", err)
	}
	if err := ValidEmail(""); err == nil {
		t.Error("ValidEmail(\"\") = nil; want error")
	}
	if err := ValidEmail("nope"); err == nil {
		t.Error("ValidEmail(\"nope\") = nil; want error")
	}
}
