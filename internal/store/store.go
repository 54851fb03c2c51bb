// Strategist - Conference Schedule Recommendation Engine
// Copyright 2026 Summitry
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/summitry/strategist

// Package store persists recommendation plans in their slim saved form.
// The engine never blocks on persistence: writes are fire-and-forget from
// the session's perspective and a failed write leaves the in-memory plan
// untouched.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/summitry/strategist/internal/engine"
	"github.com/summitry/strategist/internal/profile"
)

// ErrPlanNotFound is returned when no plan exists under the requested id.
var ErrPlanNotFound = errors.New("plan not found")

// PlanRecord is the persisted form of a plan: the slim event projection,
// the profile inputs needed for regeneration, the catalog fingerprint the
// plan was built against, and the attendee's accumulated edits.
type PlanRecord struct {
	ID                 string                  `json:"id"`
	Profile            *profile.UserProfile    `json:"profile"`
	Events             []engine.SavedPlanEvent `json:"events"`
	CatalogFingerprint string                  `json:"catalog_fingerprint"`
	Edits              engine.PlanEdits        `json:"edits"`
	CreatedAt          time.Time               `json:"created_at"`
	UpdatedAt          time.Time               `json:"updated_at"`
}

// PlanStore persists and retrieves plan records.
type PlanStore interface {
	// SavePlan writes a record, creating or replacing it.
	SavePlan(ctx context.Context, record *PlanRecord) error

	// LoadPlan retrieves the record under id, or ErrPlanNotFound.
	LoadPlan(ctx context.Context, id string) (*PlanRecord, error)

	// DeletePlan removes the record under id. Deleting an absent record
	// is not an error.
	DeletePlan(ctx context.Context, id string) error
}
