package property

import (
	"reflect"
	"testing"

	"github.com/shopspring/decimal"
)

func validRecord() *Record {
	r := New()
	r.OrganizationID = "org-1"
	r.Type = TypeResidential
	r.Status = "active"
	r.Title = "Marina Heights"
	r.Description = "Waterfront towers."
	r.LocationCity = "Dubai"
	r.LocationCountry = "United Arab Emirates"
	r.TotalValueUSDT = decimal.NewFromInt(1_000_000)
	r.TotalTokens = 1000
	r.ExpectedROI = decimal.NewFromInt(8)
	r.Documents.Brochure = &BrochureDoc{URL: "https://cdn.example.com/brochure.pdf"}
	return r
}

func TestCheckBasicInfoPasses(t *testing.T) {
	if v := CheckBasicInfo(validRecord()); len(v) != 0 {
		t.Errorf("violations = %v, want none", v)
	}
}

func TestCheckBasicInfoOrder(t *testing.T) {
	v := CheckBasicInfo(New())
	want := []string{
		"Organization is required",
		"Property type is required",
		"Total value must be greater than zero",
		"Total tokens must be greater than zero",
	}
	if !reflect.DeepEqual(v, want) {
		t.Errorf("violations = %v, want %v", v, want)
	}
}

func TestCheckSubmissionPasses(t *testing.T) {
	if v := CheckSubmission(validRecord()); len(v) != 0 {
		t.Errorf("violations = %v, want none", v)
	}
}

func TestCheckSubmissionOrder(t *testing.T) {
	v := CheckSubmission(New())
	want := []string{
		"Organization is required",
		"Property type is required",
		"Status is required",
		"Total value must be greater than zero",
		"Total tokens must be greater than zero",
		"Expected ROI is required",
		"Title is required",
		"Description is required",
		"City is required",
		"Country is required",
		"At least one document (brochure, floor plan, or compliance) is required",
	}
	if !reflect.DeepEqual(v, want) {
		t.Errorf("violations = %v, want %v", v, want)
	}
}

func TestCheckSubmissionAnyDocumentSuffices(t *testing.T) {
	r := validRecord()
	r.Documents = Documents{FloorPlan: &FloorPlanDoc{URL: "https://cdn.example.com/plan.pdf"}}
	if v := CheckSubmission(r); len(v) != 0 {
		t.Errorf("floor plan only: violations = %v", v)
	}

	r.Documents = Documents{Compliance: []ComplianceDoc{{URL: "https://cdn.example.com/permit.pdf"}}}
	if v := CheckSubmission(r); len(v) != 0 {
		t.Errorf("compliance only: violations = %v", v)
	}

	r.Documents = Documents{}
	v := CheckSubmission(r)
	if len(v) != 1 || v[0] != "At least one document (brochure, floor plan, or compliance) is required" {
		t.Errorf("no documents: violations = %v", v)
	}
}

func TestCheckSubmissionBlankStrings(t *testing.T) {
	r := validRecord()
	r.Title = "   "
	r.LocationCity = "\t"

	v := CheckSubmission(r)
	want := []string{"Title is required", "City is required"}
	if !reflect.DeepEqual(v, want) {
		t.Errorf("violations = %v, want %v", v, want)
	}
}
