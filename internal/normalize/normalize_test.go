package normalize

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/RobasAhmedShah/hmr-dashboard-sub002/internal/api"
	"github.com/RobasAhmedShah/hmr-dashboard-sub002/internal/property"
)

func rawFixture(t *testing.T, body string) *api.RawProperty {
	t.Helper()
	var raw api.RawProperty
	dec := json.NewDecoder(strings.NewReader(body))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		t.Fatalf("decoding fixture: %v", err)
	}
	return &raw
}

func TestFromRawCanonicalRecord(t *testing.T) {
	raw := rawFixture(t, `{
		"id": "prop-1",
		"organizationId": "HMR-01",
		"type": "residential",
		"status": "active",
		"title": "Marina Heights",
		"description": "Waterfront towers.",
		"totalValueUSDT": 1000000,
		"totalTokens": 1000,
		"availableTokens": 800,
		"expectedROI": "8.5",
		"fullROI": 10,
		"location": {"city": "Dubai", "country": "United Arab Emirates"},
		"constructionProgress": 85,
		"totalUnits": 2,
		"unitTypes": [{"type": "1 Bedroom", "size": "1200 sq ft", "count": 1}],
		"images": ["https://a.jpg"],
		"documents": [{"type": "brochure", "url": "https://b.pdf"}]
	}`)

	orgs := []api.Organization{{ID: "org-1", DisplayCode: "HMR-01", Name: "HMR Builders"}}

	r, err := FromRaw(raw, orgs)
	if err != nil {
		t.Fatalf("from raw: %v", err)
	}

	if r.OrganizationID != "org-1" {
		t.Errorf("organization = %q, want resolved %q", r.OrganizationID, "org-1")
	}
	if !r.TotalValueUSDT.Equal(decimal.NewFromInt(1_000_000)) {
		t.Errorf("total value = %s", r.TotalValueUSDT)
	}
	if r.TotalTokens != 1000 || r.AvailableTokens != 800 {
		t.Errorf("tokens = %d/%d", r.AvailableTokens, r.TotalTokens)
	}
	if r.TokenizationTotalTokens != 1000 {
		t.Errorf("tokenization total tokens = %d, want mirror of 1000", r.TokenizationTotalTokens)
	}
	if r.PricingTotalValue != "1000000" {
		t.Errorf("pricing total value = %q", r.PricingTotalValue)
	}
	if r.Slug != "marina-heights" {
		t.Errorf("slug = %q, want derived from title", r.Slug)
	}
	if len(r.Images) != 1 || r.Images[0] != "https://a.jpg" {
		t.Errorf("images = %v", r.Images)
	}
	if r.Documents.Brochure == nil {
		t.Error("brochure lost in normalization")
	}
	if len(r.UnitTypes) != 1 || r.UnitTypes[0].Count != 1 {
		t.Errorf("unit types = %+v", r.UnitTypes)
	}
}

func TestFromRawLegacyStringNumbers(t *testing.T) {
	raw := rawFixture(t, `{
		"id": "prop-2",
		"totalValueUSDT": "750000.50",
		"totalTokens": "3000",
		"constructionProgress": "50.0"
	}`)

	r, err := FromRaw(raw, nil)
	if err != nil {
		t.Fatalf("from raw: %v", err)
	}
	if !r.TotalValueUSDT.Equal(decimal.RequireFromString("750000.50")) {
		t.Errorf("total value = %s", r.TotalValueUSDT)
	}
	if r.TotalTokens != 3000 {
		t.Errorf("total tokens = %d", r.TotalTokens)
	}
	if r.ConstructionProgress != 50 {
		t.Errorf("progress = %d", r.ConstructionProgress)
	}
}

func TestResolveOrganization(t *testing.T) {
	orgs := []api.Organization{
		{ID: "org-1", DisplayCode: "HMR-01"},
		{ID: "org-2", DisplayCode: "HMR-02"},
	}

	if got := ResolveOrganization("org-2", orgs); got != "org-2" {
		t.Errorf("by id: %q", got)
	}
	if got := ResolveOrganization("HMR-01", orgs); got != "org-1" {
		t.Errorf("by display code: %q", got)
	}
	if got := ResolveOrganization("mystery", orgs); got != "mystery" {
		t.Errorf("unresolved fallback: %q", got)
	}
	if got := ResolveOrganization("", orgs); got != "" {
		t.Errorf("empty input: %q", got)
	}
}

func submittableRecord() *property.Record {
	r := property.New()
	r.ID = "prop-1"
	r.OrganizationID = "org-1"
	r.Type = property.TypeResidential
	r.Status = "active"
	r.Title = "Marina Heights"
	r.Slug = "marina-heights"
	r.Description = "Waterfront towers."
	r.LocationCity = "Dubai"
	r.LocationCountry = "United Arab Emirates"
	r.TotalValueUSDT = decimal.NewFromInt(1_000_000)
	r.TotalTokens = 1000
	r.ExpectedROI = decimal.RequireFromString("8.5")
	return r
}

func TestToPayloadOmitsEmptyDocuments(t *testing.T) {
	p := ToPayload(submittableRecord())
	if p.Documents != nil {
		t.Errorf("documents = %+v, want omitted", p.Documents)
	}

	data, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(data), `"documents"`) {
		t.Error("documents key serialized despite being empty")
	}
}

func TestToPayloadImagesAlwaysObject(t *testing.T) {
	p := ToPayload(submittableRecord())
	data, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(data), `"images":{}`) {
		t.Errorf("empty images should serialize as {}: %s", data)
	}

	r := submittableRecord()
	r.Images = []string{"https://a.jpg"}
	data, err = json.Marshal(ToPayload(r))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(data), `"images":{"urls":["https://a.jpg"]}`) {
		t.Errorf("images wrapper missing: %s", data)
	}
}

func TestToPayloadDocumentsDropEmptySubKeys(t *testing.T) {
	r := submittableRecord()
	r.Documents.Brochure = &property.BrochureDoc{URL: "https://b.pdf"}
	r.Documents.Compliance = []property.ComplianceDoc{{URL: "https://c.pdf", Type: "NOC"}}

	p := ToPayload(r)
	if p.Documents == nil {
		t.Fatal("documents block missing")
	}
	if _, ok := p.Documents.Brochure["name"]; ok {
		t.Error("empty brochure name serialized")
	}
	if p.Documents.Brochure["url"] != "https://b.pdf" {
		t.Errorf("brochure = %v", p.Documents.Brochure)
	}
	if p.Documents.FloorPlan != nil {
		t.Errorf("floor plan = %v, want omitted", p.Documents.FloorPlan)
	}
	if len(p.Documents.Compliance) != 1 || p.Documents.Compliance[0]["type"] != "NOC" {
		t.Errorf("compliance = %v", p.Documents.Compliance)
	}
}

func TestToPayloadDerivesTokenDefaults(t *testing.T) {
	r := submittableRecord()
	// 1_000_000 / 1000, neither availableTokens nor price set.
	p := ToPayload(r)

	if p.AvailableTokens != 1000 {
		t.Errorf("available tokens = %d, want defaulted to supply", p.AvailableTokens)
	}
	if p.PricePerTokenUSDT != "1000" {
		t.Errorf("price per token = %q, want %q", p.PricePerTokenUSDT, "1000")
	}

	// Six decimal places when the division is uneven.
	r.TotalTokens = 3000
	p = ToPayload(r)
	if p.PricePerTokenUSDT != "333.333333" {
		t.Errorf("price per token = %q, want %q", p.PricePerTokenUSDT, "333.333333")
	}

	// An explicit price wins over the derived one.
	r.PricePerToken = "250.00"
	p = ToPayload(r)
	if p.PricePerTokenUSDT != "250.00" {
		t.Errorf("price per token = %q, want explicit %q", p.PricePerTokenUSDT, "250.00")
	}
}

func TestToPayloadRoundTripsThroughValidator(t *testing.T) {
	p := ToPayload(submittableRecord())
	if err := p.Validate(); err != nil {
		t.Errorf("payload validation: %v", err)
	}

	p.Type = "castle"
	if err := p.Validate(); err == nil {
		t.Error("expected validation error for unknown type")
	}
}
