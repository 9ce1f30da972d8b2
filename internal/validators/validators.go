package validators

import (
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// CheckQuantity - order and stock quantities must be positive
func CheckQuantity(quantity int64) bool {
	return quantity > 0
}

// CheckEmail - basic shape check for a client e-mail address
func CheckEmail(email string) bool {
	return emailPattern.MatchString(strings.TrimSpace(email))
}

// CheckStockKind - a stock movement is either an intake or a removal
func CheckStockKind(kind string) bool {
	return kind == "in" || kind == "out"
}
