package api

import "encoding/json"

// Organization is one entry of the organization directory.
type Organization struct {
	ID          string `json:"id"`
	DisplayCode string `json:"displayCode"`
	Name        string `json:"name"`
}

// RawProperty is a property as the backend returns it. Records have been
// persisted under several historical schemas, so the polymorphic parts
// (images, documents) stay raw JSON until the normalizer reconciles them, and
// numeric fields arrive as Number because older records stored strings.
type RawProperty struct {
	ID             string          `json:"id"`
	OrganizationID string          `json:"organizationId"`
	Organization   json.RawMessage `json:"organization,omitempty"`
	Type           string          `json:"type"`
	Status         string          `json:"status"`
	Title          string          `json:"title"`
	Slug           string          `json:"slug"`
	Description    string          `json:"description"`

	TotalValueUSDT    Number `json:"totalValueUSDT"`
	TotalTokens       Number `json:"totalTokens"`
	AvailableTokens   Number `json:"availableTokens"`
	PricePerTokenUSDT Number `json:"pricePerTokenUSDT"`
	ExpectedROI       Number `json:"expectedROI"`
	FullROI           Number `json:"fullROI"`

	Location struct {
		City    string `json:"city"`
		Country string `json:"country"`
		Address string `json:"address"`
		State   string `json:"state"`
		Lat     string `json:"lat"`
		Lng     string `json:"lng"`
	} `json:"location"`

	ConstructionProgress Number `json:"constructionProgress"`
	StartDate            string `json:"startDate"`
	ExpectedCompletion   string `json:"expectedCompletion"`
	HandoverDate         string `json:"handoverDate"`
	Floors               Number `json:"floors"`
	TotalUnits           Number `json:"totalUnits"`
	Bedrooms             Number `json:"bedrooms"`
	Bathrooms            Number `json:"bathrooms"`
	AreaSqm              Number `json:"areaSqm"`

	UnitTypes []struct {
		Type  string `json:"type"`
		Size  string `json:"size"`
		Count Number `json:"count"`
	} `json:"unitTypes"`
	Features         []string `json:"features"`
	Amenities        []string `json:"amenities"`
	PropertyFeatures []string `json:"propertyFeatures"`

	Images    json.RawMessage `json:"images"`
	Documents json.RawMessage `json:"documents"`
}
