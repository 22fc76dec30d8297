package property

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/shopspring/decimal"
)

// Fill heuristics: generate plausible sample values for fields the user has
// not filled in yet. A field is eligible when it is empty (zero value, blank
// string, empty collection) or still holds a known placeholder default. Image
// and document data is never eligible, and neither are the identity fields
// (organization, status) that drive workflow.

// placeholders maps a field to the default sentinel the form seeds it with.
// A field holding its sentinel counts as untouched.
var placeholders = map[Field]int64{
	FieldBedrooms:   2,
	FieldBathrooms:  2,
	FieldAreaSqm:    100,
	FieldFloors:     1,
	FieldTotalUnits: 1,
}

var (
	sampleCities = []struct{ city, country string }{
		{"Dubai", "United Arab Emirates"},
		{"Abu Dhabi", "United Arab Emirates"},
		{"Karachi", "Pakistan"},
		{"Islamabad", "Pakistan"},
		{"Riyadh", "Saudi Arabia"},
		{"Doha", "Qatar"},
	}
	sampleTitles = []string{
		"Marina Heights Tower",
		"Palm View Residences",
		"Skyline Business Bay",
		"Harbor Point Towers",
		"Crescent Garden Apartments",
	}
	sampleFeatures  = []string{"Balcony", "Smart Home", "Sea View", "Private Parking", "Storage Room"}
	sampleAmenities = []string{"Gym", "Swimming Pool", "Concierge", "Kids Play Area", "Rooftop Lounge"}
)

// FillDefaults overwrites every eligible field of r with a generated sample
// value and returns the fields it changed, in a fixed order. The rng is
// injected so callers can make the output deterministic. Derivation rules run
// for each filled driver field, so the returned record satisfies the same
// invariants a hand-edited one would.
func FillDefaults(r *Record, rng *rand.Rand) []Field {
	var changed []Field
	fill := func(f Field, apply func()) {
		apply()
		changed = append(changed, f)
	}

	if r.Title == "" {
		fill(FieldTitle, func() {
			r.Title = fmt.Sprintf("%s %d", sampleTitles[rng.Intn(len(sampleTitles))], 1+rng.Intn(99))
			deriveSlug(r)
		})
	}
	if r.Description == "" {
		fill(FieldDescription, func() {
			r.Description = fmt.Sprintf(
				"A premium %s development offering tokenized fractional ownership with strong projected returns.",
				sampleType(r, rng))
		})
	}
	if r.Type == "" {
		fill(FieldType, func() {
			if rng.Intn(4) == 0 {
				r.Type = TypeCommercial
			} else {
				r.Type = TypeResidential
			}
		})
	}
	if r.LocationCity == "" {
		loc := sampleCities[rng.Intn(len(sampleCities))]
		fill(FieldLocationCity, func() { r.LocationCity = loc.city })
		if r.LocationCountry == "" {
			fill(FieldLocationCountry, func() { r.LocationCountry = loc.country })
		}
	} else if r.LocationCountry == "" {
		fill(FieldLocationCountry, func() {
			r.LocationCountry = sampleCities[rng.Intn(len(sampleCities))].country
		})
	}

	if r.TotalValueUSDT.IsZero() {
		fill(FieldTotalValueUSDT, func() {
			r.TotalValueUSDT = decimal.NewFromInt(int64(50+rng.Intn(450)) * 10_000)
			deriveFromTotalValue(r)
		})
	}
	if r.TotalTokens == 0 {
		fill(FieldTotalTokens, func() {
			r.TotalTokens = int64(10+rng.Intn(490)) * 100
			deriveFromTotalTokens(r)
		})
	}
	if r.AvailableTokens == 0 {
		fill(FieldAvailableTokens, func() { r.AvailableTokens = r.TotalTokens })
	}
	if r.FullROI.IsZero() {
		fill(FieldFullROI, func() {
			r.FullROI = decimal.New(int64(80+rng.Intn(70)), -1) // 8.0 .. 15.0
			deriveROIFromProgress(r)
		})
	}
	if r.ConstructionProgress == 0 {
		fill(FieldConstructionProgress, func() {
			r.ConstructionProgress = int64(1+rng.Intn(19)) * 5
			deriveROIFromProgress(r)
		})
	}

	if r.StartDate == "" {
		fill(FieldStartDate, func() { r.StartDate = sampleDate(rng, -18, -6) })
	}
	if r.ExpectedCompletion == "" {
		fill(FieldExpectedCompletion, func() { r.ExpectedCompletion = sampleDate(rng, 6, 30) })
	}
	if r.HandoverDate == "" {
		fill(FieldHandoverDate, func() { r.HandoverDate = sampleDate(rng, 31, 40) })
	}

	if fillable(FieldBedrooms, r.Bedrooms) {
		fill(FieldBedrooms, func() { r.Bedrooms = int64(1 + rng.Intn(5)) })
	}
	if fillable(FieldBathrooms, r.Bathrooms) {
		fill(FieldBathrooms, func() { r.Bathrooms = int64(1 + rng.Intn(4)) })
	}
	if r.AreaSqm == 0 || r.AreaSqm == float64(placeholders[FieldAreaSqm]) {
		fill(FieldAreaSqm, func() { r.AreaSqm = float64(60 + rng.Intn(340)) })
	}
	if fillable(FieldFloors, r.Floors) {
		fill(FieldFloors, func() { r.Floors = int64(2 + rng.Intn(38)) })
	}
	if fillable(FieldTotalUnits, r.TotalUnits) {
		fill(FieldTotalUnits, func() {
			r.TotalUnits = int64(1 + rng.Intn(10))
			regenerateUnitTypes(r)
		})
	}

	if len(r.Features) == 0 {
		fill(FieldFeatures, func() { r.Features = sampleSubset(rng, sampleFeatures) })
	}
	if len(r.Amenities) == 0 {
		fill(FieldAmenities, func() { r.Amenities = sampleSubset(rng, sampleAmenities) })
	}
	if len(r.PropertyFeatures) == 0 {
		fill(FieldPropertyFeatures, func() { r.PropertyFeatures = sampleSubset(rng, sampleFeatures) })
	}

	return changed
}

// fillable reports whether an integer field is empty or holds its placeholder.
func fillable(f Field, v int64) bool {
	if v == 0 {
		return true
	}
	sentinel, ok := placeholders[f]
	return ok && v == sentinel
}

func sampleType(r *Record, rng *rand.Rand) string {
	if r.Type != "" {
		return string(r.Type)
	}
	if rng.Intn(4) == 0 {
		return string(TypeCommercial)
	}
	return string(TypeResidential)
}

// sampleDate picks a date between minMonths and maxMonths from now.
func sampleDate(rng *rand.Rand, minMonths, maxMonths int) string {
	months := minMonths + rng.Intn(maxMonths-minMonths+1)
	return time.Now().AddDate(0, months, rng.Intn(28)).Format("2006-01-02")
}

// sampleSubset returns 2-4 distinct entries of pool in pool order.
func sampleSubset(rng *rand.Rand, pool []string) []string {
	want := 2 + rng.Intn(3)
	out := make([]string, 0, want)
	for i, s := range pool {
		if len(out) >= want {
			break
		}
		if rng.Intn(len(pool)-i) < want-len(out) {
			out = append(out, s)
		}
	}
	return out
}
