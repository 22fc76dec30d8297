package normalize

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/RobasAhmedShah/hmr-dashboard-sub002/internal/api"
	"github.com/RobasAhmedShah/hmr-dashboard-sub002/internal/property"
)

// FromRaw converts a fetched property in any historical schema into the
// canonical record. The organization directory resolves the record's
// organization by either identifier; an unresolved value is kept as-is.
func FromRaw(raw *api.RawProperty, orgs []api.Organization) (*property.Record, error) {
	r := property.New()
	r.ID = raw.ID
	r.OrganizationID = ResolveOrganization(raw.OrganizationID, orgs)
	r.Type = property.PropertyType(raw.Type)
	r.Status = raw.Status
	r.Title = raw.Title
	r.Slug = raw.Slug
	if r.Slug == "" && r.Title != "" {
		r.Slug = property.Slugify(r.Title)
	}
	r.Description = raw.Description

	r.TotalValueUSDT = num(raw.TotalValueUSDT)
	r.TotalTokens = count(raw.TotalTokens)
	r.AvailableTokens = count(raw.AvailableTokens)
	r.ExpectedROI = num(raw.ExpectedROI)
	r.FullROI = num(raw.FullROI)

	if p := num(raw.PricePerTokenUSDT); p.IsPositive() {
		r.PricePerToken = p.Round(2).StringFixed(2)
		r.TokenPrice = r.PricePerToken
	}
	if r.TotalValueUSDT.IsPositive() {
		r.PricingTotalValue = r.TotalValueUSDT.String()
	}
	if !r.ExpectedROI.IsZero() {
		r.PricingExpectedROI = r.ExpectedROI.String()
	}
	r.TokenizationTotalTokens = r.TotalTokens

	r.LocationCity = raw.Location.City
	r.LocationCountry = raw.Location.Country
	r.LocationAddress = raw.Location.Address
	r.LocationState = raw.Location.State
	r.LocationLat = raw.Location.Lat
	r.LocationLng = raw.Location.Lng

	r.ConstructionProgress = count(raw.ConstructionProgress)
	r.StartDate = raw.StartDate
	r.ExpectedCompletion = raw.ExpectedCompletion
	r.HandoverDate = raw.HandoverDate
	r.Floors = count(raw.Floors)
	r.TotalUnits = count(raw.TotalUnits)
	r.Bedrooms = count(raw.Bedrooms)
	r.Bathrooms = count(raw.Bathrooms)
	r.AreaSqm, _ = num(raw.AreaSqm).Float64()

	for _, u := range raw.UnitTypes {
		r.UnitTypes = append(r.UnitTypes, property.UnitType{
			Type:  u.Type,
			Size:  u.Size,
			Count: int(count(u.Count)),
		})
	}
	r.Features = append([]string(nil), raw.Features...)
	r.Amenities = append([]string(nil), raw.Amenities...)
	r.PropertyFeatures = append([]string(nil), raw.PropertyFeatures...)

	images, err := NormalizeImages(raw.Images)
	if err != nil {
		return nil, fmt.Errorf("normalizing images: %w", err)
	}
	r.Images = images

	docs, err := NormalizeDocuments(raw.Documents)
	if err != nil {
		return nil, fmt.Errorf("normalizing documents: %w", err)
	}
	r.Documents = docs

	return r, nil
}

// ResolveOrganization matches id against either identifier of a directory
// entry and returns the entry's canonical id; unresolved values pass through.
func ResolveOrganization(id string, orgs []api.Organization) string {
	if id == "" {
		return ""
	}
	for _, org := range orgs {
		if org.ID == id || org.DisplayCode == id {
			return org.ID
		}
	}
	return id
}

// ToPayload strips the record down to the persisted schema. Images always
// serialize as an object wrapper ({} when empty); the documents block is
// omitted entirely when nothing is attached; availableTokens defaults to the
// full supply and pricePerTokenUSDT is derived at six decimal places when not
// already set.
func ToPayload(r *property.Record) *api.SubmissionPayload {
	p := &api.SubmissionPayload{
		OrganizationID: r.OrganizationID,
		Type:           string(r.Type),
		Status:         r.Status,
		Title:          r.Title,
		Slug:           r.Slug,
		Description:    r.Description,
		Location: api.PayloadLocation{
			City:    r.LocationCity,
			Country: r.LocationCountry,
			Address: r.LocationAddress,
			State:   r.LocationState,
			Lat:     r.LocationLat,
			Lng:     r.LocationLng,
		},
		TotalValueUSDT:       r.TotalValueUSDT.String(),
		TotalTokens:          r.TotalTokens,
		AvailableTokens:      r.AvailableTokens,
		PricePerTokenUSDT:    r.PricePerToken,
		ConstructionProgress: r.ConstructionProgress,
		StartDate:            r.StartDate,
		ExpectedCompletion:   r.ExpectedCompletion,
		HandoverDate:         r.HandoverDate,
		Floors:               r.Floors,
		TotalUnits:           r.TotalUnits,
		Bedrooms:             r.Bedrooms,
		Bathrooms:            r.Bathrooms,
		AreaSqm:              r.AreaSqm,
		Features:             append([]string(nil), r.Features...),
		Amenities:            append([]string(nil), r.Amenities...),
		PropertyFeatures:     append([]string(nil), r.PropertyFeatures...),
		Images:               api.ImagesPayload{URLs: append([]string(nil), r.Images...)},
	}

	if !r.ExpectedROI.IsZero() {
		p.ExpectedROI = r.ExpectedROI.String()
	} else {
		p.ExpectedROI = r.PricingExpectedROI
	}
	if !r.FullROI.IsZero() {
		p.FullROI = r.FullROI.String()
	}

	if p.AvailableTokens == 0 {
		p.AvailableTokens = r.TotalTokens
	}
	if p.PricePerTokenUSDT == "" && r.TotalValueUSDT.IsPositive() && r.TotalTokens > 0 {
		p.PricePerTokenUSDT = r.TotalValueUSDT.
			Div(decimal.NewFromInt(r.TotalTokens)).
			Round(6).String()
	}

	for _, u := range r.UnitTypes {
		p.UnitTypes = append(p.UnitTypes, api.PayloadUnitType{Type: u.Type, Size: u.Size, Count: u.Count})
	}

	p.Documents = documentsPayload(r.Documents)
	return p
}

// documentsPayload builds the documents block, dropping every empty sub-key.
// Nothing attached means no block at all.
func documentsPayload(d property.Documents) *api.DocumentsPayload {
	if d.Empty() {
		return nil
	}
	out := &api.DocumentsPayload{}
	if d.Brochure != nil && d.Brochure.URL != "" {
		out.Brochure = stripEmpty(map[string]string{
			"url":   d.Brochure.URL,
			"name":  d.Brochure.Name,
			"notes": d.Brochure.Notes,
		})
	}
	if d.FloorPlan != nil && d.FloorPlan.URL != "" {
		out.FloorPlan = stripEmpty(map[string]string{
			"url":      d.FloorPlan.URL,
			"version":  d.FloorPlan.Version,
			"mimeType": d.FloorPlan.MimeType,
		})
	}
	for _, c := range d.Compliance {
		if c.URL == "" {
			continue
		}
		out.Compliance = append(out.Compliance, stripEmpty(map[string]string{
			"url":      c.URL,
			"type":     c.Type,
			"issuedAt": c.IssuedAt,
			"issuedBy": c.IssuedBy,
		}))
	}
	if out.Brochure == nil && out.FloorPlan == nil && len(out.Compliance) == 0 {
		return nil
	}
	return out
}

func stripEmpty(m map[string]string) map[string]string {
	for k, v := range m {
		if v == "" {
			delete(m, k)
		}
	}
	return m
}

func num(n api.Number) decimal.Decimal {
	if n == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(n.String())
	if err != nil {
		return decimal.Zero
	}
	return d
}

// count reads an integer field; older records stored counts as floats.
func count(n api.Number) int64 {
	return num(n).IntPart()
}
