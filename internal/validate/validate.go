package validate

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	reEmail = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	reDigit = regexp.MustCompile(`\d`)
)

// FieldError is a per-field validation failure surfaced in 400 responses.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Email trims, lowercases and checks the address shape.
func Email(s string) (string, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) == 0 || len(s) > 254 {
		return "", false
	}
	return s, reEmail.MatchString(s)
}

// Password requires at least 8 characters including a digit (registration rule).
func Password(s string) bool {
	return len(s) >= 8 && reDigit.MatchString(s)
}

// Name requires at least 2 characters after trimming.
func Name(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, len(s) >= 2
}

// ProductID parses a positive integer identifier.
func ProductID(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// Register validates a registration body and returns the normalized email.
func Register(name, email, password string) (string, []FieldError) {
	var errs []FieldError
	if _, ok := Name(name); !ok {
		errs = append(errs, FieldError{Field: "name", Message: "Name is required"})
	}
	norm, ok := Email(email)
	if !ok {
		errs = append(errs, FieldError{Field: "email", Message: "Valid email required"})
	}
	if len(password) < 8 {
		errs = append(errs, FieldError{Field: "password", Message: "Password must be at least 8 characters"})
	} else if !reDigit.MatchString(password) {
		errs = append(errs, FieldError{Field: "password", Message: "Password must contain a number"})
	}
	return norm, errs
}

// Login validates a login body: shape only, never which field failed later.
func Login(email, password string) (string, bool) {
	norm, ok := Email(email)
	if !ok || password == "" {
		return "", false
	}
	return norm, true
}
