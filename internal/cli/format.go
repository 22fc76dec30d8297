package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/RobasAhmedShah/hmr-dashboard-sub002/internal/property"
)

// printJSON marshals v as indented JSON and writes it to stdout.
func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printRecord prints the record summary in text format.
func printRecord(r *property.Record) {
	title := r.Title
	if title == "" {
		title = "(untitled)"
	}
	fmt.Printf("%s\n", title)
	if r.ID != "" {
		fmt.Printf("  ID:           %s\n", r.ID)
	}
	if r.OrganizationID != "" {
		fmt.Printf("  Organization: %s\n", r.OrganizationID)
	}
	if r.Type != "" {
		fmt.Printf("  Type:         %s\n", r.Type)
	}
	if r.Status != "" {
		fmt.Printf("  Status:       %s\n", r.Status)
	}
	if r.LocationCity != "" || r.LocationCountry != "" {
		fmt.Printf("  Location:     %s, %s\n", r.LocationCity, r.LocationCountry)
	}
	if r.TotalValueUSDT.IsPositive() {
		fmt.Printf("  Value:        %s USDT\n", r.TotalValueUSDT)
	}
	if r.TotalTokens > 0 {
		fmt.Printf("  Tokens:       %d total, %d available\n", r.TotalTokens, r.AvailableTokens)
	}
	if r.PricePerToken != "" {
		fmt.Printf("  Token price:  %s USDT\n", r.PricePerToken)
	}
	if !r.ExpectedROI.IsZero() {
		fmt.Printf("  Expected ROI: %s%%\n", r.ExpectedROI)
	}
	if !r.FullROI.IsZero() {
		fmt.Printf("  Full ROI:     %s%%\n", r.FullROI)
	}
	fmt.Printf("  Construction: %d%%\n", r.ConstructionProgress)
	if len(r.UnitTypes) > 0 {
		fmt.Printf("  Units:\n")
		for _, u := range r.UnitTypes {
			fmt.Printf("    %-12s %-12s x%d\n", u.Type, u.Size, u.Count)
		}
	}
	if len(r.Images) > 0 {
		fmt.Printf("  Images:       %d\n", len(r.Images))
	}
	if !r.Documents.Empty() {
		var docs []string
		if r.Documents.Brochure != nil {
			docs = append(docs, "brochure")
		}
		if r.Documents.FloorPlan != nil {
			docs = append(docs, "floor plan")
		}
		if n := len(r.Documents.Compliance); n > 0 {
			docs = append(docs, fmt.Sprintf("%d compliance", n))
		}
		fmt.Printf("  Documents:    %v\n", docs)
	}
}

// printViolations lists validation violations in order.
func printViolations(violations []string) {
	for _, v := range violations {
		fmt.Printf("  ✗ %s\n", v)
	}
}
