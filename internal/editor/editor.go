// Package editor orchestrates one property edit session: loading, field
// edits, sample fill, uploads, and submission.
package editor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/RobasAhmedShah/hmr-dashboard-sub002/internal/api"
	"github.com/RobasAhmedShah/hmr-dashboard-sub002/internal/draft"
	"github.com/RobasAhmedShah/hmr-dashboard-sub002/internal/normalize"
	"github.com/RobasAhmedShah/hmr-dashboard-sub002/internal/property"
	"github.com/RobasAhmedShah/hmr-dashboard-sub002/internal/record"
	"github.com/RobasAhmedShah/hmr-dashboard-sub002/internal/upload"
)

// DocumentSlot names where an uploaded document lands on the record.
type DocumentSlot string

const (
	SlotBrochure   DocumentSlot = "brochure"
	SlotFloorPlan  DocumentSlot = "floorplan"
	SlotCompliance DocumentSlot = "compliance"
)

// Editor owns one edit session. Exactly one record is being edited at a time;
// opening another identity abandons the previous one, and a fetch that lands
// after its identity was abandoned is discarded.
type Editor struct {
	store   *record.Store
	client  *api.Client
	uploads *upload.Client
	drafts  *draft.Repository
	log     *slog.Logger
	rng     *rand.Rand

	mu         sync.Mutex
	identity   string
	gen        uint64
	createMode bool
	orgs       []api.Organization
}

// New creates an editor.
func New(client *api.Client, uploads *upload.Client, drafts *draft.Repository, log *slog.Logger) *Editor {
	return &Editor{
		store:   record.New(),
		client:  client,
		uploads: uploads,
		drafts:  drafts,
		log:     log,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// WithRand overrides the fill RNG for deterministic output.
func (e *Editor) WithRand(rng *rand.Rand) *Editor {
	e.rng = rng
	return e
}

// NewDraft starts a create-mode session with an empty record and a fresh
// local identity. The previous session's load guard is cleared.
func (e *Editor) NewDraft() string {
	e.mu.Lock()
	e.identity = uuid.NewString()
	e.gen++
	e.createMode = true
	e.mu.Unlock()

	e.store.Reset()
	return e.Identity()
}

// Open starts an edit-mode session for an existing property. The record fetch
// and the organization-directory fetch run concurrently; the load guard keeps
// whichever lands last from clobbering what is already in place. A failed
// record fetch degrades to an existing draft or a stub record and is reported
// through the returned *api.LoadError-wrapping log entry, not as a fatal
// error.
func (e *Editor) Open(ctx context.Context, id string) (*property.Record, error) {
	e.mu.Lock()
	e.identity = id
	e.gen++
	gen := e.gen
	e.createMode = false
	e.mu.Unlock()

	e.store.Reset()

	var (
		wg      sync.WaitGroup
		raw     *api.RawProperty
		rawErr  error
		orgs    []api.Organization
		orgsErr error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		raw, rawErr = e.client.GetProperty(ctx, id)
	}()
	go func() {
		defer wg.Done()
		orgs, orgsErr = e.client.ListOrganizations(ctx, 100)
	}()
	wg.Wait()

	if orgsErr != nil {
		e.log.Warn("organization directory unavailable", "error", orgsErr)
	} else {
		e.mu.Lock()
		e.orgs = orgs
		e.mu.Unlock()
	}

	if rawErr != nil {
		var loadErr *api.LoadError
		if !errors.As(rawErr, &loadErr) {
			loadErr = &api.LoadError{ID: id, Err: rawErr}
		}
		e.log.Warn("record fetch failed, falling back to stub", "id", id, "error", loadErr)
		if rec, err := e.drafts.Get(id); err == nil {
			e.store.Replace(id, rec)
		} else {
			e.store.Replace(id, &property.Record{ID: id})
		}
		return e.store.Snapshot(), nil
	}

	if !e.completeLoad(gen, id, raw, orgs) {
		return e.store.Snapshot(), nil
	}

	rec := e.store.Snapshot()
	e.saveDraft(rec)
	return rec, nil
}

// completeLoad applies a finished fetch. A fetch for an abandoned identity —
// the editor has moved on since the fetch started — is discarded outright,
// and the per-identity load guard makes any repeat load a no-op. The lock is
// held across both the staleness check and the load so a session switch
// cannot slip between them.
func (e *Editor) completeLoad(gen uint64, id string, raw *api.RawProperty, orgs []api.Organization) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if gen != e.gen || id != e.identity {
		e.log.Debug("discarding fetch for abandoned identity", "id", id)
		return false
	}

	took, err := e.store.Load(id, raw, orgs)
	if err != nil {
		e.log.Warn("normalizing fetched record failed", "id", id, "error", err)
		return false
	}
	return took
}

// Resume loads a stored draft into the session.
func (e *Editor) Resume(id string) (*property.Record, error) {
	rec, err := e.drafts.Get(id)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	e.identity = id
	e.gen++
	e.createMode = rec.ID == ""
	e.mu.Unlock()

	e.store.Replace(id, rec)
	return e.store.Snapshot(), nil
}

// Identity returns the current session's record identity.
func (e *Editor) Identity() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.identity
}

// Organizations returns the directory entries fetched for this session.
func (e *Editor) Organizations() []api.Organization {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]api.Organization(nil), e.orgs...)
}

// Set applies one field edit, runs its derivation cascade, and persists the
// draft. It returns every field the edit changed.
func (e *Editor) Set(field property.Field, raw string) ([]property.Field, error) {
	changed, err := e.store.Apply(field, raw)
	if err != nil {
		return nil, err
	}
	e.saveDraft(e.store.Snapshot())
	return changed, nil
}

// Fill generates sample data for every still-empty field and persists the
// draft. Image and document data is never touched.
func (e *Editor) Fill() []property.Field {
	var changed []property.Field
	e.store.Mutate(func(r *property.Record) {
		changed = property.FillDefaults(r, e.rng)
	})
	e.saveDraft(e.store.Snapshot())
	return changed
}

// Record returns a snapshot of the session's record.
func (e *Editor) Record() *property.Record {
	return e.store.Snapshot()
}

// CheckBasicInfo returns the step-advance violations for the current record.
func (e *Editor) CheckBasicInfo() []string {
	return property.CheckBasicInfo(e.store.Snapshot())
}

// CheckSubmission returns the submission violations for the current record.
func (e *Editor) CheckSubmission() []string {
	return property.CheckSubmission(e.store.Snapshot())
}

// AddImage uploads an image and appends its URL to the record.
func (e *Editor) AddImage(ctx context.Context, name string, size int64, r io.Reader) (string, error) {
	result, err := e.uploads.UploadImage(ctx, name, size, r)
	if err != nil {
		return "", err
	}
	e.store.Mutate(func(rec *property.Record) {
		rec.Images = append(rec.Images, result.URL)
	})
	e.saveDraft(e.store.Snapshot())
	return result.URL, nil
}

// AddDocument uploads a document into the given slot.
func (e *Editor) AddDocument(ctx context.Context, slot DocumentSlot, name string, size int64, r io.Reader) (string, error) {
	result, err := e.uploads.UploadDocument(ctx, name, size, r)
	if err != nil {
		return "", err
	}
	e.store.Mutate(func(rec *property.Record) {
		switch slot {
		case SlotBrochure:
			rec.Documents.Brochure = &property.BrochureDoc{URL: result.URL, Name: name}
		case SlotFloorPlan:
			rec.Documents.FloorPlan = &property.FloorPlanDoc{URL: result.URL}
		case SlotCompliance:
			rec.Documents.Compliance = append(rec.Documents.Compliance, property.ComplianceDoc{URL: result.URL, Type: name})
		}
	})
	e.saveDraft(e.store.Snapshot())
	return result.URL, nil
}

// Submit validates the record and sends it to the backend. Submission is
// all-or-nothing: any validation violation blocks the call entirely, and a
// failed persistence call leaves the local record and draft intact for retry.
func (e *Editor) Submit(ctx context.Context) (*api.RawProperty, error) {
	rec := e.store.Snapshot()
	if violations := property.CheckSubmission(rec); len(violations) > 0 {
		return nil, &property.ValidationError{Violations: violations}
	}

	payload := normalize.ToPayload(rec)

	e.mu.Lock()
	createMode := e.createMode
	identity := e.identity
	e.mu.Unlock()

	var persisted *api.RawProperty
	var err error
	if createMode || rec.ID == "" {
		persisted, err = e.client.CreateProperty(ctx, payload)
	} else {
		persisted, err = e.client.UpdateProperty(ctx, rec.ID, payload)
	}
	if err != nil {
		return nil, err
	}

	if delErr := e.drafts.Delete(identity); delErr != nil {
		e.log.Warn("removing submitted draft", "id", identity, "error", delErr)
	}
	return persisted, nil
}

// Cancel discards the session: the draft is deleted and the record reset.
func (e *Editor) Cancel() error {
	e.mu.Lock()
	identity := e.identity
	e.identity = ""
	e.gen++
	e.mu.Unlock()

	e.store.Reset()
	if identity == "" {
		return nil
	}
	if err := e.drafts.Delete(identity); err != nil {
		return fmt.Errorf("discarding draft: %w", err)
	}
	return nil
}

func (e *Editor) saveDraft(rec *property.Record) {
	e.mu.Lock()
	identity := e.identity
	e.mu.Unlock()
	if identity == "" || e.drafts == nil {
		return
	}
	if err := e.drafts.Save(identity, rec); err != nil {
		e.log.Warn("saving draft", "id", identity, "error", err)
	}
}
