// Strategist - Conference Schedule Recommendation Engine
// Copyright 2026 Summitry
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/summitry/strategist

// Package api exposes the recommendation engine over HTTP using the Chi
// router. Every endpoint returns the APIResponse envelope; plan handlers
// persist the slim saved form and rehydrate it against the live catalog
// snapshot on every read.
package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/summitry/strategist/internal/catalog"
	"github.com/summitry/strategist/internal/engine"
	"github.com/summitry/strategist/internal/profile"
	"github.com/summitry/strategist/internal/store"
)

// Handler owns the HTTP surface. The catalog provider hands out the current
// immutable snapshot; plan persistence goes through the configured store.
type Handler struct {
	engine  *engine.Engine
	catalog catalog.Provider
	store   store.PlanStore
	logger  zerolog.Logger
}

// NewHandler wires the engine, catalog provider, and plan store.
func NewHandler(eng *engine.Engine, provider catalog.Provider, planStore store.PlanStore, logger zerolog.Logger) *Handler {
	return &Handler{
		engine:  eng,
		catalog: provider,
		store:   planStore,
		logger:  logger.With().Str("component", "api").Logger(),
	}
}

// planResponse is the data payload of every plan endpoint.
type planResponse struct {
	ID    string       `json:"id"`
	Plan  *engine.Plan `json:"plan"`
	Stale bool         `json:"stale"`

	// MissingEventIDs lists persisted event ids absent from the current
	// catalog. Non-empty implies Stale.
	MissingEventIDs []int `json:"missing_event_ids,omitempty"`
}

// catalogSummary is the data payload of the catalog endpoint.
type catalogSummary struct {
	Fingerprint     string   `json:"fingerprint"`
	Dates           []string `json:"dates"`
	TotalEvents     int      `json:"total_events"`
	TotalExhibitors int      `json:"total_exhibitors"`
}

// requireSnapshot returns the current catalog snapshot, or nil after sending
// a 503 when no catalog has been loaded yet.
func (h *Handler) requireSnapshot(w http.ResponseWriter) *catalog.Snapshot {
	snap := h.catalog.Current()
	if snap == nil {
		respondError(w, http.StatusServiceUnavailable, "CATALOG_UNAVAILABLE", "Catalog not loaded", nil)
	}
	return snap
}

// loadRecord fetches the plan record for the {id} URL param, or nil after
// sending the appropriate error response.
func (h *Handler) loadRecord(w http.ResponseWriter, r *http.Request) *store.PlanRecord {
	id := chi.URLParam(r, "id")
	if id == "" {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Plan id required", nil)
		return nil
	}

	record, err := h.store.LoadPlan(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrPlanNotFound) {
			respondError(w, http.StatusNotFound, "PLAN_NOT_FOUND", "No plan exists under this id", nil)
		} else {
			respondError(w, http.StatusInternalServerError, "STORE_ERROR", "Failed to load plan", err)
		}
		return nil
	}
	return record
}

// savePlanRecord persists a record best-effort. Plan generation never fails
// because persistence did; a failed write is logged and the caller still
// returns the in-memory plan.
func (h *Handler) savePlanRecord(r *http.Request, record *store.PlanRecord) {
	if err := h.store.SavePlan(r.Context(), record); err != nil {
		h.logger.Warn().Err(err).Str("plan_id", record.ID).Msg("plan save failed, responding with unpersisted plan")
	}
}

// CreatePlan builds a recommendation plan from an attendee profile.
//
// Method: POST
// Path: /api/v1/plans
//
// Response:
//   - 201: Plan built; body carries the plan and its new id
//   - 400: Malformed body or invalid profile
//   - 422: Profile has no usable conference dates
//   - 503: Catalog not loaded
func (h *Handler) CreatePlan(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var prof profile.UserProfile
	if err := decodeJSON(w, r, &prof); err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Malformed profile payload", err)
		return
	}
	if err := prof.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
		return
	}

	snap := h.requireSnapshot(w)
	if snap == nil {
		return
	}

	plan, err := h.engine.BuildPlan(snap, &prof)
	if err != nil {
		if errors.Is(err, engine.ErrNoAvailableDates) {
			respondError(w, http.StatusUnprocessableEntity, "NO_AVAILABLE_DATES", "Profile lists no conference dates", nil)
			return
		}
		respondError(w, http.StatusInternalServerError, "ENGINE_ERROR", "Failed to build plan", err)
		return
	}

	record := &store.PlanRecord{
		ID:                 uuid.NewString(),
		Profile:            &prof,
		Events:             engine.ToSaved(plan),
		CatalogFingerprint: plan.CatalogFingerprint,
	}
	h.savePlanRecord(r, record)

	respondSuccess(w, http.StatusCreated, &planResponse{
		ID:   record.ID,
		Plan: plan,
	}, start)
}

// GetPlan rehydrates a persisted plan against the current catalog, reapplies
// the attendee's accumulated edits, and reports staleness.
//
// Method: GET
// Path: /api/v1/plans/{id}
//
// Response:
//   - 200: Plan retrieved; data.stale flags catalog drift
//   - 404: Unknown plan id
//   - 503: Catalog not loaded
func (h *Handler) GetPlan(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	record := h.loadRecord(w, r)
	if record == nil {
		return
	}
	snap := h.requireSnapshot(w)
	if snap == nil {
		return
	}

	report := engine.CheckStaleness(record.Events, record.CatalogFingerprint, snap)
	plan, missing := h.engine.Rehydrate(record.Events, snap, record.Profile)
	h.engine.ApplyEdits(plan, &record.Edits, snap)

	respondSuccess(w, http.StatusOK, &planResponse{
		ID:              record.ID,
		Plan:            plan,
		Stale:           report.Stale,
		MissingEventIDs: missing,
	}, start)
}

// EditPlan merges an edit delta into the plan's accumulated edits, persists
// the merged record, and returns the plan with all edits applied.
//
// Method: POST
// Path: /api/v1/plans/{id}/edits
//
// Response:
//   - 200: Edits merged and applied
//   - 400: Malformed delta
//   - 404: Unknown plan id
//   - 500: Persisting the merged edits failed
//   - 503: Catalog not loaded
func (h *Handler) EditPlan(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var delta engine.PlanEdits
	if err := decodeJSON(w, r, &delta); err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Malformed edits payload", err)
		return
	}

	record := h.loadRecord(w, r)
	if record == nil {
		return
	}
	snap := h.requireSnapshot(w)
	if snap == nil {
		return
	}

	mergeEdits(&record.Edits, &delta)

	// Unlike plan generation, this endpoint exists to persist intent, so a
	// failed write is an error rather than a warning.
	if err := h.store.SavePlan(r.Context(), record); err != nil {
		respondError(w, http.StatusInternalServerError, "STORE_ERROR", "Failed to persist edits", err)
		return
	}

	report := engine.CheckStaleness(record.Events, record.CatalogFingerprint, snap)
	plan, missing := h.engine.Rehydrate(record.Events, snap, record.Profile)
	h.engine.ApplyEdits(plan, &record.Edits, snap)

	respondSuccess(w, http.StatusOK, &planResponse{
		ID:              record.ID,
		Plan:            plan,
		Stale:           report.Stale,
		MissingEventIDs: missing,
	}, start)
}

// RegeneratePlan rebuilds a plan against the current catalog, carrying
// pinned and manually inserted events over and clearing accumulated edits.
//
// Method: POST
// Path: /api/v1/plans/{id}/regenerate
//
// Response:
//   - 200: Plan rebuilt under the same id
//   - 404: Unknown plan id
//   - 422: Stored record carries no profile to rebuild from
//   - 503: Catalog not loaded
func (h *Handler) RegeneratePlan(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	record := h.loadRecord(w, r)
	if record == nil {
		return
	}
	snap := h.requireSnapshot(w)
	if snap == nil {
		return
	}

	old, _ := h.engine.Rehydrate(record.Events, snap, record.Profile)
	h.engine.ApplyEdits(old, &record.Edits, snap)

	plan, err := h.engine.Regenerate(old, snap, record.Profile)
	if err != nil {
		if errors.Is(err, engine.ErrNoAvailableDates) {
			respondError(w, http.StatusUnprocessableEntity, "NO_AVAILABLE_DATES", "Profile lists no conference dates", nil)
			return
		}
		respondError(w, http.StatusUnprocessableEntity, "REGENERATION_FAILED", err.Error(), nil)
		return
	}

	record.Events = engine.ToSaved(plan)
	record.CatalogFingerprint = plan.CatalogFingerprint
	record.Edits = engine.PlanEdits{}
	h.savePlanRecord(r, record)

	respondSuccess(w, http.StatusOK, &planResponse{
		ID:   record.ID,
		Plan: plan,
	}, start)
}

// DeletePlan removes a persisted plan. Deleting an unknown id succeeds.
//
// Method: DELETE
// Path: /api/v1/plans/{id}
func (h *Handler) DeletePlan(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	id := chi.URLParam(r, "id")
	if id == "" {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Plan id required", nil)
		return
	}

	if err := h.store.DeletePlan(r.Context(), id); err != nil {
		respondError(w, http.StatusInternalServerError, "STORE_ERROR", "Failed to delete plan", err)
		return
	}

	respondSuccess(w, http.StatusOK, map[string]string{"deleted": id}, start)
}

// Catalog reports the current catalog version and size.
//
// Method: GET
// Path: /api/v1/catalog
func (h *Handler) Catalog(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	snap := h.requireSnapshot(w)
	if snap == nil {
		return
	}

	respondSuccess(w, http.StatusOK, &catalogSummary{
		Fingerprint:     snap.Fingerprint,
		Dates:           snap.Dates(),
		TotalEvents:     len(snap.Events),
		TotalExhibitors: len(snap.Exhibitors),
	}, start)
}

// HealthLive reports process liveness.
//
// Method: GET
// Path: /api/v1/health/live
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, http.StatusOK, map[string]string{"state": "live"}, time.Now())
}

// HealthReady reports readiness: the server can serve plans once a catalog
// snapshot has been loaded.
//
// Method: GET
// Path: /api/v1/health/ready
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	if h.catalog.Current() == nil {
		respondError(w, http.StatusServiceUnavailable, "CATALOG_UNAVAILABLE", "Catalog not loaded", nil)
		return
	}
	respondSuccess(w, http.StatusOK, map[string]string{"state": "ready"}, time.Now())
}

// mergeEdits folds a delta into accumulated edits. Pins and dismissals
// accumulate without duplicates; a swap on an already swapped slot replaces
// the earlier choice.
func mergeEdits(dst, delta *engine.PlanEdits) {
	dst.Pinned = appendUnique(dst.Pinned, delta.Pinned)
	dst.Dismissed = appendUnique(dst.Dismissed, delta.Dismissed)
	if len(delta.Swapped) > 0 {
		if dst.Swapped == nil {
			dst.Swapped = make(map[string]string, len(delta.Swapped))
		}
		for slot, eventID := range delta.Swapped {
			dst.Swapped[slot] = eventID
		}
	}
}

func appendUnique(dst, src []string) []string {
	for _, s := range src {
		seen := false
		for _, d := range dst {
			if d == s {
				seen = true
				break
			}
		}
		if !seen {
			dst = append(dst, s)
		}
	}
	return dst
}
