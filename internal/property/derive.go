package property

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// The derivation rules keep the record's interdependent fields consistent.
// Each rule is keyed by the field that just changed and carries its full
// cascade in one pass: a rule may write other fields but never re-fires, and
// never writes its own trigger. Writes inside a rule happen in a fixed order
// so the same edit always produces the same record.

var billion = decimal.NewFromInt(1_000_000_000)

// round2 rounds to two decimal places.
func round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// rules maps a trigger field to its cascade. Fields without an entry have no
// dependents.
var rules = map[Field]func(*Record) []Field{
	FieldTotalValueUSDT:          deriveFromTotalValue,
	FieldTotalTokens:             deriveFromTotalTokens,
	FieldAvailableTokens:         clampAvailableTokens,
	FieldConstructionProgress:    deriveROIFromProgress,
	FieldFullROI:                 deriveROIFromProgress,
	FieldExpectedROI:             deriveFromExpectedROI,
	FieldPricingTotalValue:       deriveFromPricingValue,
	FieldTokenizationTotalTokens: derivePriceFromPricingValue,
	FieldTotalUnits:              regenerateUnitTypes,
	FieldTitle:                   deriveSlug,
}

// Apply parses a raw form value into the named field and runs that field's
// derivation rule. It returns every field written, trigger included. On a
// parse error the record is left untouched.
func Apply(r *Record, field Field, raw string) ([]Field, error) {
	if err := setField(r, field, raw); err != nil {
		return nil, err
	}
	changed := []Field{field}
	if rule, ok := rules[field]; ok {
		changed = append(changed, rule(r)...)
	}
	return changed, nil
}

func deriveFromTotalValue(r *Record) []Field {
	r.PricingTotalValue = r.TotalValueUSDT.String()
	changed := []Field{FieldPricingTotalValue}
	if r.TotalTokens > 0 {
		changed = append(changed, setTokenPrice(r, r.TotalValueUSDT, r.TotalTokens)...)
	}
	return changed
}

func deriveFromTotalTokens(r *Record) []Field {
	r.TokenizationTotalTokens = r.TotalTokens
	changed := []Field{FieldTokenizationTotalTokens}
	if r.AvailableTokens > r.TotalTokens {
		r.AvailableTokens = r.TotalTokens
		changed = append(changed, FieldAvailableTokens)
	}
	if r.TotalValueUSDT.IsPositive() {
		changed = append(changed, setTokenPrice(r, r.TotalValueUSDT, r.TotalTokens)...)
	}
	return changed
}

func clampAvailableTokens(r *Record) []Field {
	limit := r.TotalTokens
	if r.TokenizationTotalTokens > limit {
		limit = r.TokenizationTotalTokens
	}
	switch {
	case r.AvailableTokens < 0:
		r.AvailableTokens = 0
	case r.AvailableTokens > limit:
		r.AvailableTokens = limit
	}
	return nil
}

// deriveROIFromProgress ramps expectedROI linearly toward fullROI as
// construction progresses, reaching fullROI exactly at 100%.
func deriveROIFromProgress(r *Record) []Field {
	if !r.FullROI.IsPositive() {
		return nil
	}
	progress := decimal.NewFromInt(r.ConstructionProgress)
	r.ExpectedROI = round2(r.FullROI.Mul(progress).Div(decimal.NewFromInt(100)))
	if r.ConstructionProgress == 100 {
		r.ExpectedROI = r.FullROI
	}
	r.PricingExpectedROI = r.ExpectedROI.String()
	return []Field{FieldExpectedROI, FieldPricingExpectedROI}
}

func deriveFromExpectedROI(r *Record) []Field {
	r.PricingExpectedROI = r.ExpectedROI.String()
	changed := []Field{FieldPricingExpectedROI}
	if r.ConstructionProgress == 100 {
		r.FullROI = r.ExpectedROI
		changed = append(changed, FieldFullROI)
	}
	return changed
}

// deriveFromPricingValue applies the valuation-banding ROI estimate. This is
// a second, independent ROI formula: it can disagree with the progress ramp
// when both a valuation field and a progress field were edited in the same
// session, and that disagreement is intentional (see DESIGN.md).
func deriveFromPricingValue(r *Record) []Field {
	v, err := decimal.NewFromString(r.PricingTotalValue)
	if err != nil {
		return nil
	}
	roi := v.Div(billion).Mul(decimal.NewFromInt(2)).Add(decimal.NewFromInt(8))
	low, high := decimal.NewFromInt(5), decimal.NewFromInt(25)
	if roi.LessThan(low) {
		roi = low
	}
	if roi.GreaterThan(high) {
		roi = high
	}
	r.PricingExpectedROI = roi.Round(1).StringFixed(1)
	changed := []Field{FieldPricingExpectedROI}
	if r.TokenizationTotalTokens > 0 {
		changed = append(changed, setTokenPrice(r, v, r.TokenizationTotalTokens)...)
	}
	return changed
}

func derivePriceFromPricingValue(r *Record) []Field {
	v, err := decimal.NewFromString(r.PricingTotalValue)
	if err != nil || r.TokenizationTotalTokens <= 0 {
		return nil
	}
	return setTokenPrice(r, v, r.TokenizationTotalTokens)
}

func regenerateUnitTypes(r *Record) []Field {
	units, ok := GenerateUnitTypes(int(r.TotalUnits))
	if !ok {
		return nil
	}
	r.UnitTypes = units
	return []Field{Field("unit_types")}
}

func deriveSlug(r *Record) []Field {
	r.Slug = Slugify(r.Title)
	return []Field{Field("slug")}
}

// setTokenPrice writes both token price fields from value/tokens.
func setTokenPrice(r *Record, value decimal.Decimal, tokens int64) []Field {
	price := round2(value.Div(decimal.NewFromInt(tokens))).StringFixed(2)
	r.PricePerToken = price
	r.TokenPrice = price
	return []Field{Field("tokenization_price_per_token"), Field("tokenization_token_price")}
}

// setField parses raw into the named field. Money and ROI fields must parse
// as decimals and may not be negative; token and unit counts must parse as
// non-negative integers; construction progress is clamped to 0..100.
func setField(r *Record, field Field, raw string) error {
	raw = strings.TrimSpace(raw)
	switch field {
	case FieldOrganizationID:
		r.OrganizationID = raw
	case FieldType:
		if raw != "" && !ValidType(raw) {
			return fmt.Errorf("unknown property type %q", raw)
		}
		r.Type = PropertyType(raw)
	case FieldStatus:
		r.Status = raw
	case FieldTitle:
		r.Title = raw
	case FieldDescription:
		r.Description = raw
	case FieldLocationCity:
		r.LocationCity = raw
	case FieldLocationCountry:
		r.LocationCountry = raw
	case FieldLocationAddress:
		r.LocationAddress = raw
	case FieldLocationState:
		r.LocationState = raw
	case FieldLocationLat:
		r.LocationLat = raw
	case FieldLocationLng:
		r.LocationLng = raw
	case FieldStartDate:
		r.StartDate = raw
	case FieldExpectedCompletion:
		r.ExpectedCompletion = raw
	case FieldHandoverDate:
		r.HandoverDate = raw

	case FieldTotalValueUSDT:
		d, err := parseMoney(field, raw)
		if err != nil {
			return err
		}
		r.TotalValueUSDT = d
	case FieldExpectedROI:
		d, err := parseMoney(field, raw)
		if err != nil {
			return err
		}
		r.ExpectedROI = d
	case FieldFullROI:
		d, err := parseMoney(field, raw)
		if err != nil {
			return err
		}
		r.FullROI = d
	case FieldPricingTotalValue:
		r.PricingTotalValue = raw
	case FieldPricingExpectedROI:
		r.PricingExpectedROI = raw

	case FieldTotalTokens:
		n, err := parseCount(field, raw)
		if err != nil {
			return err
		}
		r.TotalTokens = n
	case FieldAvailableTokens:
		// Negative input is allowed through; the clamp rule floors it at 0.
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %q is not an integer", field, raw)
		}
		r.AvailableTokens = n
	case FieldTokenizationTotalTokens:
		n, err := parseCount(field, raw)
		if err != nil {
			return err
		}
		r.TokenizationTotalTokens = n
	case FieldConstructionProgress:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %q is not an integer", field, raw)
		}
		if n < 0 {
			n = 0
		}
		if n > 100 {
			n = 100
		}
		r.ConstructionProgress = n
	case FieldFloors:
		n, err := parseCount(field, raw)
		if err != nil {
			return err
		}
		r.Floors = n
	case FieldTotalUnits:
		n, err := parseCount(field, raw)
		if err != nil {
			return err
		}
		r.TotalUnits = n
	case FieldBedrooms:
		n, err := parseCount(field, raw)
		if err != nil {
			return err
		}
		r.Bedrooms = n
	case FieldBathrooms:
		n, err := parseCount(field, raw)
		if err != nil {
			return err
		}
		r.Bathrooms = n
	case FieldAreaSqm:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil || f < 0 {
			return fmt.Errorf("%s: %q is not a valid area", field, raw)
		}
		r.AreaSqm = f

	case FieldFeatures:
		r.Features = splitList(raw)
	case FieldAmenities:
		r.Amenities = splitList(raw)
	case FieldPropertyFeatures:
		r.PropertyFeatures = splitList(raw)

	default:
		return fmt.Errorf("unknown field %q", field)
	}
	return nil
}

func parseMoney(field Field, raw string) (decimal.Decimal, error) {
	if raw == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s: %q is not a number", field, raw)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("%s: must not be negative", field)
	}
	return d, nil
}

func parseCount(field Field, raw string) (int64, error) {
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%s: %q is not a non-negative integer", field, raw)
	}
	return n, nil
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
