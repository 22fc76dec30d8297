package record

import (
	"encoding/json"
	"testing"

	"github.com/RobasAhmedShah/hmr-dashboard-sub002/internal/api"
	"github.com/RobasAhmedShah/hmr-dashboard-sub002/internal/property"
)

func fetchedProperty(t *testing.T, title string) *api.RawProperty {
	t.Helper()
	var raw api.RawProperty
	body := `{
		"id": "prop-1",
		"organizationId": "org-1",
		"type": "residential",
		"title": "` + title + `",
		"totalValueUSDT": 1000000,
		"totalTokens": 1000
	}`
	if err := json.Unmarshal([]byte(body), &raw); err != nil {
		t.Fatalf("fixture: %v", err)
	}
	return &raw
}

func TestLoadNormalizesAndMarks(t *testing.T) {
	s := New()

	took, err := s.Load("prop-1", fetchedProperty(t, "Marina Heights"), nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !took {
		t.Fatal("first load should take the data")
	}
	if !s.Loaded("prop-1") {
		t.Error("identity not marked loaded")
	}
	if got := s.Snapshot().Title; got != "Marina Heights" {
		t.Errorf("title = %q", got)
	}
}

// A second fetch response for an already-loaded identity must never clobber
// local edits.
func TestRepeatLoadPreservesLocalEdits(t *testing.T) {
	s := New()
	if _, err := s.Load("prop-1", fetchedProperty(t, "Marina Heights"), nil); err != nil {
		t.Fatalf("load: %v", err)
	}

	if _, err := s.Apply(property.FieldTitle, "Renamed By Operator"); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if _, err := s.Apply(property.FieldTotalTokens, "2000"); err != nil {
		t.Fatalf("apply: %v", err)
	}

	took, err := s.Load("prop-1", fetchedProperty(t, "Stale Server Copy"), nil)
	if err != nil {
		t.Fatalf("second load: %v", err)
	}
	if took {
		t.Fatal("second load for same identity should be a no-op")
	}

	rec := s.Snapshot()
	if rec.Title != "Renamed By Operator" {
		t.Errorf("title = %q, local edit clobbered", rec.Title)
	}
	if rec.TotalTokens != 2000 {
		t.Errorf("total tokens = %d, local edit clobbered", rec.TotalTokens)
	}
}

func TestResetClearsGuard(t *testing.T) {
	s := New()
	if _, err := s.Load("prop-1", fetchedProperty(t, "Marina Heights"), nil); err != nil {
		t.Fatalf("load: %v", err)
	}

	s.Reset()
	if s.Loaded("prop-1") {
		t.Error("guard should be cleared by reset")
	}
	if got := s.Snapshot().Title; got != "" {
		t.Errorf("record not reset, title = %q", got)
	}

	took, err := s.Load("prop-1", fetchedProperty(t, "Fresh Fetch"), nil)
	if err != nil || !took {
		t.Fatalf("load after reset: took=%v err=%v", took, err)
	}
}

// A snapshot taken before an edit must not see the edit: Apply works on the
// stored record, and snapshots are deep copies.
func TestSnapshotIsolation(t *testing.T) {
	s := New()
	if _, err := s.Apply(property.FieldTotalUnits, "3"); err != nil {
		t.Fatalf("apply: %v", err)
	}

	snap := s.Snapshot()
	snap.UnitTypes[0].Size = "mutated"
	snap.Images = append(snap.Images, "https://x.jpg")

	rec := s.Snapshot()
	if rec.UnitTypes[0].Size == "mutated" {
		t.Error("snapshot shares unit type backing array with store")
	}
	if len(rec.Images) != 0 {
		t.Error("snapshot shares image slice with store")
	}
}

func TestApplyCascadeVisibleAtomically(t *testing.T) {
	s := New()
	if _, err := s.Apply(property.FieldTotalValueUSDT, "1000000"); err != nil {
		t.Fatalf("apply: %v", err)
	}
	changed, err := s.Apply(property.FieldTotalTokens, "1000")
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if len(changed) < 2 {
		t.Fatalf("changed = %v, expected cascade", changed)
	}

	rec := s.Snapshot()
	if rec.PricePerToken != "1000.00" {
		t.Errorf("price per token = %q after cascade", rec.PricePerToken)
	}
	if rec.TokenizationTotalTokens != 1000 {
		t.Errorf("mirror = %d after cascade", rec.TokenizationTotalTokens)
	}
}

func TestReplaceMarksIdentityLoaded(t *testing.T) {
	s := New()
	rec := property.New()
	rec.Title = "Draft Copy"
	s.Replace("prop-9", rec)

	if !s.Loaded("prop-9") {
		t.Error("replace should mark identity loaded")
	}
	took, err := s.Load("prop-9", fetchedProperty(t, "Late Fetch"), nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if took {
		t.Error("late fetch applied over replaced draft")
	}
	if got := s.Snapshot().Title; got != "Draft Copy" {
		t.Errorf("title = %q", got)
	}
}
