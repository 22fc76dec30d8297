package normalize

import (
	"encoding/json"
	"testing"
)

func TestNormalizeDocumentsLegacyList(t *testing.T) {
	raw := json.RawMessage(`[
		{"type": "Brochure", "name": "marketing.pdf", "url": "https://d.example/brochure.pdf", "notes": "2024 edition"},
		{"type": "Floor Plan", "url": "https://d.example/plan.pdf"},
		{"type": "NOC", "url": "https://d.example/noc.pdf", "issuedBy": "DLD"},
		{"type": "Title Deed", "url": "https://d.example/deed.pdf"}
	]`)

	docs, err := NormalizeDocuments(raw)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}

	if docs.Brochure == nil || docs.Brochure.URL != "https://d.example/brochure.pdf" {
		t.Errorf("brochure = %+v", docs.Brochure)
	}
	if docs.Brochure != nil && docs.Brochure.Notes != "2024 edition" {
		t.Errorf("brochure notes = %q", docs.Brochure.Notes)
	}
	if docs.FloorPlan == nil || docs.FloorPlan.URL != "https://d.example/plan.pdf" {
		t.Errorf("floor plan = %+v", docs.FloorPlan)
	}
	if len(docs.Compliance) != 2 {
		t.Fatalf("compliance = %d entries, want 2", len(docs.Compliance))
	}
	if docs.Compliance[0].IssuedBy != "DLD" {
		t.Errorf("compliance issuer = %q", docs.Compliance[0].IssuedBy)
	}
}

func TestNormalizeDocumentsClassifiesByName(t *testing.T) {
	// No type field; the name decides the slot.
	raw := json.RawMessage(`[
		{"name": "tower-brochure-final", "url": "https://d.example/b.pdf"},
		{"name": "floorplan_v3", "url": "https://d.example/f.pdf"}
	]`)

	docs, err := NormalizeDocuments(raw)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if docs.Brochure == nil {
		t.Error("expected brochure classified from name")
	}
	if docs.FloorPlan == nil {
		t.Error("expected floor plan classified from name")
	}
	if len(docs.Compliance) != 0 {
		t.Errorf("compliance = %+v, want empty", docs.Compliance)
	}
}

func TestNormalizeDocumentsDuplicateSlotsOverflow(t *testing.T) {
	// A second brochure can't take the singleton slot; it lands in compliance.
	raw := json.RawMessage(`[
		{"type": "brochure", "url": "https://d.example/b1.pdf"},
		{"type": "brochure", "url": "https://d.example/b2.pdf"}
	]`)

	docs, err := NormalizeDocuments(raw)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if docs.Brochure == nil || docs.Brochure.URL != "https://d.example/b1.pdf" {
		t.Errorf("brochure = %+v", docs.Brochure)
	}
	if len(docs.Compliance) != 1 || docs.Compliance[0].URL != "https://d.example/b2.pdf" {
		t.Errorf("compliance = %+v", docs.Compliance)
	}
}

func TestNormalizeDocumentsCanonicalObject(t *testing.T) {
	raw := json.RawMessage(`{
		"brochure": {"url": "https://d.example/b.pdf", "name": "b.pdf"},
		"compliance": [{"url": "https://d.example/c.pdf", "type": "NOC"}]
	}`)

	docs, err := NormalizeDocuments(raw)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if docs.Brochure == nil || docs.Brochure.Name != "b.pdf" {
		t.Errorf("brochure = %+v", docs.Brochure)
	}
	if docs.FloorPlan != nil {
		t.Errorf("floor plan = %+v, want nil", docs.FloorPlan)
	}
	if len(docs.Compliance) != 1 || docs.Compliance[0].Type != "NOC" {
		t.Errorf("compliance = %+v", docs.Compliance)
	}
}

func TestNormalizeDocumentsEmpty(t *testing.T) {
	for _, raw := range []string{"", "null", "[]", "{}"} {
		docs, err := NormalizeDocuments(json.RawMessage(raw))
		if err != nil {
			t.Fatalf("normalize %q: %v", raw, err)
		}
		if !docs.Empty() {
			t.Errorf("normalize %q: docs = %+v, want empty", raw, docs)
		}
	}
}

func TestNormalizeDocumentsSkipsEntriesWithoutURL(t *testing.T) {
	raw := json.RawMessage(`[{"type": "brochure"}, {"type": "NOC", "url": "https://d.example/c.pdf"}]`)

	docs, err := NormalizeDocuments(raw)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if docs.Brochure != nil {
		t.Errorf("brochure = %+v, want nil for URL-less entry", docs.Brochure)
	}
	if len(docs.Compliance) != 1 {
		t.Errorf("compliance = %+v", docs.Compliance)
	}
}
