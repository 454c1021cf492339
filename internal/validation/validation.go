// Package validation checks client input against field constraints.
package validation

import (
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/dtroode/gophfeed-server/internal/model"
)

// MinLength is the minimum length of passwords, titles and contents.
const MinLength = 5

var (
	validate     = validator.New()
	minLengthTag = "required,min=" + strconv.Itoa(MinLength)
)

// ValidateUser checks signup credentials.
func ValidateUser(email, password string) []model.Violation {
	var violations []model.Violation
	if !IsEmail(email) {
		violations = append(violations, model.Violation{Field: "email", Message: "Email is invalid"})
	}
	if !hasMinLength(password) {
		violations = append(violations, model.Violation{Field: "password", Message: "Password too short"})
	}
	return violations
}

// ValidatePost checks post title and content.
func ValidatePost(title, content string) []model.Violation {
	var violations []model.Violation
	if !hasMinLength(title) {
		violations = append(violations, model.Violation{Field: "title", Message: "Title is invalid"})
	}
	if !hasMinLength(content) {
		violations = append(violations, model.Violation{Field: "content", Message: "Content is invalid"})
	}
	return violations
}

// IsEmail reports whether s is a well-formed email address.
func IsEmail(s string) bool {
	return validate.Var(s, "required,email") == nil
}

// hasMinLength counts runes, as validator's min does for strings.
func hasMinLength(s string) bool {
	return validate.Var(s, minLengthTag) == nil
}
