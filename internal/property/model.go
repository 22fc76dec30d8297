// Package property provides the property record model and the derivation,
// generation, fill, and validation logic that keeps it internally consistent
// while it is being edited.
package property

import (
	"strings"

	"github.com/shopspring/decimal"
)

// PropertyType classifies a property listing.
type PropertyType string

const (
	TypeResidential PropertyType = "residential"
	TypeCommercial  PropertyType = "commercial"
)

// ValidType returns true if s is a known property type.
func ValidType(s string) bool {
	switch PropertyType(s) {
	case TypeResidential, TypeCommercial:
		return true
	}
	return false
}

// Field names the mutable fields of a Record that can be set through Apply.
// The names match the persisted schema's keys.
type Field string

const (
	FieldOrganizationID  Field = "organizationId"
	FieldType            Field = "type"
	FieldStatus          Field = "status"
	FieldTitle           Field = "title"
	FieldDescription     Field = "description"
	FieldLocationCity    Field = "location_city"
	FieldLocationCountry Field = "location_country"
	FieldLocationAddress Field = "location_address"
	FieldLocationState   Field = "location_state"
	FieldLocationLat     Field = "location_lat"
	FieldLocationLng     Field = "location_lng"

	FieldTotalValueUSDT  Field = "totalValueUSDT"
	FieldTotalTokens     Field = "totalTokens"
	FieldExpectedROI     Field = "expectedROI"
	FieldFullROI         Field = "fullROI"
	FieldAvailableTokens Field = "tokenization_available_tokens"

	FieldPricingTotalValue       Field = "pricing_total_value"
	FieldPricingExpectedROI      Field = "pricing_expected_roi"
	FieldTokenizationTotalTokens Field = "tokenization_total_tokens"

	FieldConstructionProgress Field = "construction_progress"
	FieldStartDate            Field = "start_date"
	FieldExpectedCompletion   Field = "expected_completion"
	FieldHandoverDate         Field = "handover_date"
	FieldFloors               Field = "floors"
	FieldTotalUnits           Field = "total_units"
	FieldBedrooms             Field = "bedrooms"
	FieldBathrooms            Field = "bathrooms"
	FieldAreaSqm              Field = "area_sqm"

	FieldFeatures         Field = "features"
	FieldAmenities        Field = "amenities"
	FieldPropertyFeatures Field = "property_features"
)

// UnitType is one entry in the generated unit breakdown.
type UnitType struct {
	Type  string `json:"type"`
	Size  string `json:"size"`
	Count int    `json:"count"`
}

// BrochureDoc is the brochure attachment of a property.
type BrochureDoc struct {
	URL   string `json:"url"`
	Name  string `json:"name,omitempty"`
	Notes string `json:"notes,omitempty"`
}

// FloorPlanDoc is the floor plan attachment of a property.
type FloorPlanDoc struct {
	URL      string `json:"url"`
	Version  string `json:"version,omitempty"`
	MimeType string `json:"mimeType,omitempty"`
}

// ComplianceDoc is one regulatory attachment of a property.
type ComplianceDoc struct {
	URL      string `json:"url"`
	Type     string `json:"type,omitempty"`
	IssuedAt string `json:"issuedAt,omitempty"`
	IssuedBy string `json:"issuedBy,omitempty"`
}

// Documents is the canonical document shape: one optional brochure, one
// optional floor plan, and any number of compliance attachments.
type Documents struct {
	Brochure   *BrochureDoc    `json:"brochure,omitempty"`
	FloorPlan  *FloorPlanDoc   `json:"floorPlan,omitempty"`
	Compliance []ComplianceDoc `json:"compliance,omitempty"`
}

// Empty returns true if no document of any kind is attached.
func (d Documents) Empty() bool {
	return d.Brochure == nil && d.FloorPlan == nil && len(d.Compliance) == 0
}

// Record is the single mutable property aggregate owned by one edit session.
// Money and ROI fields are decimals; the pricing_* and tokenization_* mirror
// fields shadow form inputs and are kept in sync by the derivation rules.
type Record struct {
	ID             string
	OrganizationID string
	Type           PropertyType
	Status         string

	TotalValueUSDT decimal.Decimal
	TotalTokens    int64
	ExpectedROI    decimal.Decimal
	FullROI        decimal.Decimal

	AvailableTokens int64
	PricePerToken   string
	TokenPrice      string

	PricingTotalValue       string
	PricingExpectedROI      string
	TokenizationTotalTokens int64

	Title       string
	Slug        string
	Description string

	LocationCity    string
	LocationCountry string
	LocationAddress string
	LocationState   string
	LocationLat     string
	LocationLng     string

	ConstructionProgress int64
	StartDate            string
	ExpectedCompletion   string
	HandoverDate         string
	Floors               int64
	TotalUnits           int64
	Bedrooms             int64
	Bathrooms            int64
	AreaSqm              float64

	UnitTypes        []UnitType
	Features         []string
	Amenities        []string
	PropertyFeatures []string
	Images           []string
	Documents        Documents
}

// New returns an empty record for create mode.
func New() *Record {
	return &Record{}
}

// Clone returns a deep copy of the record.
func (r *Record) Clone() *Record {
	c := *r
	c.UnitTypes = append([]UnitType(nil), r.UnitTypes...)
	c.Features = append([]string(nil), r.Features...)
	c.Amenities = append([]string(nil), r.Amenities...)
	c.PropertyFeatures = append([]string(nil), r.PropertyFeatures...)
	c.Images = append([]string(nil), r.Images...)
	if r.Documents.Brochure != nil {
		b := *r.Documents.Brochure
		c.Documents.Brochure = &b
	}
	if r.Documents.FloorPlan != nil {
		f := *r.Documents.FloorPlan
		c.Documents.FloorPlan = &f
	}
	c.Documents.Compliance = append([]ComplianceDoc(nil), r.Documents.Compliance...)
	return &c
}

// Slugify turns a title into a URL slug: lowercase, non-alphanumerics
// collapsed into single hyphens.
func Slugify(title string) string {
	var b strings.Builder
	lastHyphen := true
	for _, c := range strings.ToLower(title) {
		switch {
		case c >= 'a' && c <= 'z' || c >= '0' && c <= '9':
			b.WriteRune(c)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
