package utils

import (
	"strings"
	"time"
)

// FieldValidationError represents a validation error for a specific field
type FieldValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidateCampaignTitle checks that a campaign title is present and non-blank
func ValidateCampaignTitle(title string) *FieldValidationError {
	if strings.TrimSpace(title) == "" {
		return &FieldValidationError{Field: "title", Message: "Title is required"}
	}
	return nil
}

/// ValidateDiscountSpec checks the campaign discount specification: at most one
// of percent/amount may be set, percent within [0,100], amount non-negative.
// Both nil is valid - the campaign then exists for display purposes only.
func ValidateDiscountSpec(percent, amount *float64) *FieldValidationError {
	if percent != nil && amount != nil {
		return &FieldValidationError{
			Field:   "discount",
			Message: "Choose either a percent or a fixed amount discount, not both",
		}
	}
	if percent != nil && (*percent < 0 || *percent > 100) {
		return &FieldValidationError{
			Field:   "discount_percent",
			Message: "Discount percentage must be between 0 and 100",
		}
	}
	if amount != nil && *amount < 0 {
		return &FieldValidationError{
			Field:   "discount_amount",
			Message: "Discount amount cannot be negative",
		}
	}
	return nil
}

// ValidateCampaignWindow checks that the end of the active window does not
// precede its start. Either bound may be nil (unbounded).
func ValidateCampaignWindow(start, end *time.Time) *FieldValidationError {
	if start != nil && end != nil && end.Before(*start) {
		return &FieldValidationError{
			Field:   "end_date",
			Message: "End date cannot be before start date",
		}
	}
	return nil
}
