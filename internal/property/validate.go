package property

import (
	"fmt"
	"strings"
)

// ValidationError carries the ordered list of violations that blocked a
// submission. Submission is all-or-nothing: any violation blocks the whole
// payload.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", strings.Join(e.Violations, "; "))
}

// CheckBasicInfo gates leaving the basic-info step. It returns the violations
// in a fixed order; an empty list means the step may advance.
func CheckBasicInfo(r *Record) []string {
	var v []string
	if r.OrganizationID == "" {
		v = append(v, "Organization is required")
	}
	if r.Type == "" {
		v = append(v, "Property type is required")
	}
	if !r.TotalValueUSDT.IsPositive() {
		v = append(v, "Total value must be greater than zero")
	}
	if r.TotalTokens <= 0 {
		v = append(v, "Total tokens must be greater than zero")
	}
	return v
}

// CheckSubmission gates the final submission. It repeats the basic-info rules
// and adds the status, descriptive, and document requirements.
func CheckSubmission(r *Record) []string {
	var v []string
	if r.OrganizationID == "" {
		v = append(v, "Organization is required")
	}
	if r.Type == "" {
		v = append(v, "Property type is required")
	}
	if r.Status == "" {
		v = append(v, "Status is required")
	}
	if !r.TotalValueUSDT.IsPositive() {
		v = append(v, "Total value must be greater than zero")
	}
	if r.TotalTokens <= 0 {
		v = append(v, "Total tokens must be greater than zero")
	}
	if r.ExpectedROI.IsZero() && r.PricingExpectedROI == "" {
		v = append(v, "Expected ROI is required")
	}
	if strings.TrimSpace(r.Title) == "" {
		v = append(v, "Title is required")
	}
	if strings.TrimSpace(r.Description) == "" {
		v = append(v, "Description is required")
	}
	if strings.TrimSpace(r.LocationCity) == "" {
		v = append(v, "City is required")
	}
	if strings.TrimSpace(r.LocationCountry) == "" {
		v = append(v, "Country is required")
	}
	if r.Documents.Empty() {
		v = append(v, "At least one document (brochure, floor plan, or compliance) is required")
	}
	return v
}
