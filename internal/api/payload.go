package api

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// SubmissionPayload is the JSON body for createProperty and updateProperty.
// The validate tags are a last line of defense against an obviously-invalid
// payload leaving the process; the real checks live in the property validator.
type SubmissionPayload struct {
	OrganizationID string          `json:"organizationId" validate:"required"`
	Type           string          `json:"type" validate:"required,oneof=residential commercial"`
	Status         string          `json:"status" validate:"required"`
	Title          string          `json:"title" validate:"required"`
	Slug           string          `json:"slug,omitempty"`
	Description    string          `json:"description" validate:"required"`
	Location       PayloadLocation `json:"location"`

	TotalValueUSDT    string `json:"totalValueUSDT" validate:"required"`
	TotalTokens       int64  `json:"totalTokens" validate:"gt=0"`
	AvailableTokens   int64  `json:"availableTokens" validate:"gte=0"`
	PricePerTokenUSDT string `json:"pricePerTokenUSDT,omitempty"`
	ExpectedROI       string `json:"expectedROI,omitempty"`
	FullROI           string `json:"fullROI,omitempty"`

	ConstructionProgress int64   `json:"constructionProgress" validate:"gte=0,lte=100"`
	StartDate            string  `json:"startDate,omitempty"`
	ExpectedCompletion   string  `json:"expectedCompletion,omitempty"`
	HandoverDate         string  `json:"handoverDate,omitempty"`
	Floors               int64   `json:"floors,omitempty"`
	TotalUnits           int64   `json:"totalUnits,omitempty"`
	Bedrooms             int64   `json:"bedrooms,omitempty"`
	Bathrooms            int64   `json:"bathrooms,omitempty"`
	AreaSqm              float64 `json:"areaSqm,omitempty"`

	UnitTypes        []PayloadUnitType `json:"unitTypes,omitempty"`
	Features         []string          `json:"features,omitempty"`
	Amenities        []string          `json:"amenities,omitempty"`
	PropertyFeatures []string          `json:"propertyFeatures,omitempty"`

	// Images is always serialized as an object wrapper, {} when empty. The
	// backend schema rejects a bare array here.
	Images    ImagesPayload     `json:"images"`
	Documents *DocumentsPayload `json:"documents,omitempty"`
}

// PayloadLocation is the nested location block of the persisted schema.
type PayloadLocation struct {
	City    string `json:"city"`
	Country string `json:"country"`
	Address string `json:"address,omitempty"`
	State   string `json:"state,omitempty"`
	Lat     string `json:"lat,omitempty"`
	Lng     string `json:"lng,omitempty"`
}

// PayloadUnitType mirrors one unit breakdown entry on the wire.
type PayloadUnitType struct {
	Type  string `json:"type"`
	Size  string `json:"size"`
	Count int    `json:"count"`
}

// ImagesPayload wraps the image URL list. With no URLs it marshals as {}.
type ImagesPayload struct {
	URLs []string `json:"urls,omitempty"`
}

// DocumentsPayload holds only the document keys that carry real data; the
// normalizer omits empty sub-keys and drops the whole block when nothing is
// attached.
type DocumentsPayload struct {
	Brochure   map[string]string   `json:"brochure,omitempty"`
	FloorPlan  map[string]string   `json:"floorPlan,omitempty"`
	Compliance []map[string]string `json:"compliance,omitempty"`
}

var payloadValidate = validator.New()

// Validate reports a structurally invalid payload before any network write.
func (p *SubmissionPayload) Validate() error {
	if err := payloadValidate.Struct(p); err != nil {
		return fmt.Errorf("invalid submission payload: %w", err)
	}
	return nil
}
