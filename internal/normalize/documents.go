package normalize

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/RobasAhmedShah/hmr-dashboard-sub002/internal/property"
)

// DocumentShape is one of the two shapes document data has been persisted
// under: the legacy flat attachment list or the canonical object.
type DocumentShape interface {
	documentShape()
	// Canonical reduces the shape to {brochure, floorPlan, compliance[]}.
	Canonical() property.Documents
}

// LegacyDocumentList is the old flat list of typed attachments. Entries are
// classified by substring match on their type and name.
type LegacyDocumentList []LegacyDocument

// LegacyDocument is one attachment of the legacy list.
type LegacyDocument struct {
	URL      string `json:"url"`
	Type     string `json:"type"`
	Name     string `json:"name"`
	Notes    string `json:"notes"`
	IssuedAt string `json:"issuedAt"`
	IssuedBy string `json:"issuedBy"`
}

// CanonicalDocumentObject is the current {brochure, floorPlan, compliance[]}
// shape.
type CanonicalDocumentObject property.Documents

func (LegacyDocumentList) documentShape()      {}
func (CanonicalDocumentObject) documentShape() {}

// Canonical classifies each legacy entry: "brochure" anywhere in type or name
// wins the brochure slot, "floor" or "plan" wins the floor plan slot, and
// everything else lands in compliance. First match keeps a singleton slot.
func (l LegacyDocumentList) Canonical() property.Documents {
	var docs property.Documents
	for _, d := range l {
		if d.URL == "" {
			continue
		}
		label := strings.ToLower(d.Type + " " + d.Name)
		switch {
		case strings.Contains(label, "brochure"):
			if docs.Brochure == nil {
				docs.Brochure = &property.BrochureDoc{URL: d.URL, Name: d.Name, Notes: d.Notes}
				continue
			}
		case strings.Contains(label, "floor") || strings.Contains(label, "plan"):
			if docs.FloorPlan == nil {
				docs.FloorPlan = &property.FloorPlanDoc{URL: d.URL}
				continue
			}
		}
		docs.Compliance = append(docs.Compliance, property.ComplianceDoc{
			URL:      d.URL,
			Type:     d.Type,
			IssuedAt: d.IssuedAt,
			IssuedBy: d.IssuedBy,
		})
	}
	return docs
}

func (c CanonicalDocumentObject) Canonical() property.Documents {
	return property.Documents(c)
}

// DetectDocumentShape classifies raw document JSON. Null or absent data is an
// empty canonical object.
func DetectDocumentShape(raw json.RawMessage) (DocumentShape, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return CanonicalDocumentObject{}, nil
	}

	var list LegacyDocumentList
	if err := json.Unmarshal(raw, &list); err == nil {
		return list, nil
	}

	var obj CanonicalDocumentObject
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, fmt.Errorf("unrecognized document shape: %w", err)
	}
	return obj, nil
}

// NormalizeDocuments reduces any persisted document shape to the canonical
// form.
func NormalizeDocuments(raw json.RawMessage) (property.Documents, error) {
	shape, err := DetectDocumentShape(raw)
	if err != nil {
		return property.Documents{}, err
	}
	return shape.Canonical(), nil
}
