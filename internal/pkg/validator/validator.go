package validator

import (
	"regexp"
	"strings"
	"time"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Pay months are always the two-digit-month form "MM-YYYY", e.g. "03-2025".
// Every aggregation keys on this string verbatim.
var monthRegex = regexp.MustCompile(`^(0[1-9]|1[0-2])-\d{4}$`)

func IsValidMonth(month string) bool {
	return monthRegex.MatchString(month)
}

// Date validation
func IsValidDate(dateStr string) (time.Time, bool) {
	date, err := time.Parse("2006-01-02", dateStr)
	return date, err == nil
}

// Slice contains check
func IsInSlice(value string, slice []string) bool {
	for _, item := range slice {
		if item == value {
			return true
		}
	}
	return false
}

var empIDRegex = regexp.MustCompile(`^[A-Za-z0-9._-]{1,50}$`)

func IsValidEmpID(empID string) bool {
	return empIDRegex.MatchString(empID)
}
