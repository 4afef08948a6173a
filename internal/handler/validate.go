package handler

import (
	"regexp"
	"strings"

	"github.com/zenova/gamehub-backend/internal/model"
)

// Field patterns of the public API: names are alphanumeric, text
// fields allow basic punctuation, price is a plain decimal string.
var (
	emailRx    = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	nameRx     = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
	gameNameRx = regexp.MustCompile(`^[a-zA-Z0-9 ]+$`)
	textRx     = regexp.MustCompile(`^[a-zA-Z0-9 ,.]*$`)
	priceRx    = regexp.MustCompile(`^[0-9]+(\.[0-9]{1,2})?$`)
)

// adminDomain grants ADMIN at registration. Everyone else starts USER.
const adminDomain = "@zplay.com"

// validateRegistration returns a field→message map, empty when valid.
func validateRegistration(email, password, name string) map[string]string {
	errs := map[string]string{}
	if !emailRx.MatchString(email) {
		errs["email"] = "Email should be valid"
	}
	if len(password) < 6 {
		errs["password"] = "Password should be at least 6 characters"
	}
	if len(name) < 3 || len(name) > 20 {
		errs["name"] = "Name should be between 3 and 20 characters"
	} else if !nameRx.MatchString(name) {
		errs["name"] = "Name should be alphanumeric"
	}
	return errs
}

// validateGame checks the mutable fields of a game payload.
func validateGame(name, description, rules, price string) map[string]string {
	errs := map[string]string{}
	if strings.TrimSpace(name) == "" || !gameNameRx.MatchString(name) {
		errs["name"] = "Name should be alphanumeric and spaces are allowed"
	}
	if !textRx.MatchString(description) {
		errs["description"] = "Description should be alphanumeric and can include commas and periods"
	}
	if !textRx.MatchString(rules) {
		errs["rules"] = "Rules should be alphanumeric and can include commas and periods"
	}
	if price != "" && !priceRx.MatchString(price) {
		errs["price"] = "Price should be numeric"
	}
	return errs
}

// registrationRole derives the initial role from the email domain.
func registrationRole(email string) string {
	if strings.HasSuffix(strings.ToLower(email), adminDomain) {
		return model.RoleAdmin
	}
	return model.RoleUser
}
