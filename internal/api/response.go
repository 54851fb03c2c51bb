// Strategist - Conference Schedule Recommendation Engine
// Copyright 2026 Summitry
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/summitry/strategist

package api

import (
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/summitry/strategist/internal/logging"
)

// APIResponse is the envelope every endpoint returns.
//
// Example success response:
//
//	{
//	  "status": "success",
//	  "data": {"id": "...", "plan": {...}},
//	  "metadata": {"timestamp": "2026-02-10T12:00:00Z", "query_time_ms": 4}
//	}
//
// Example error response:
//
//	{
//	  "status": "error",
//	  "error": {"code": "PLAN_NOT_FOUND", "message": "No plan exists under this id"},
//	  "metadata": {"timestamp": "2026-02-10T12:00:00Z"}
//	}
type APIResponse struct {
	Status   string    `json:"status"`
	Data     any       `json:"data"`
	Metadata Metadata  `json:"metadata"`
	Error    *APIError `json:"error,omitempty"`
}

// Metadata carries per-response observability fields.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
}

// APIError is a structured error payload with a machine-readable code.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// maxRequestBody bounds request payload size. Profiles and edit deltas are
// small; anything near this limit is malformed or hostile.
const maxRequestBody = 1 << 20

// respondJSON sends a JSON response with proper headers.
func respondJSON(w http.ResponseWriter, status int, response *APIResponse) {
	w.Header().Set("Content-Type", "application/json")

	data, err := json.Marshal(response)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("Failed to write JSON response")
	}
}

// respondError sends an error response.
func respondError(w http.ResponseWriter, status int, code, message string, err error) {
	if err != nil {
		logging.Error().Str("code", code).Err(err).Msg("API error")
	}

	respondJSON(w, status, &APIResponse{
		Status: "error",
		Data:   nil,
		Metadata: Metadata{
			Timestamp: time.Now(),
		},
		Error: &APIError{
			Code:    code,
			Message: message,
		},
	})
}

// respondSuccess sends a success response, stamping query time from start.
func respondSuccess(w http.ResponseWriter, status int, data any, start time.Time) {
	respondJSON(w, status, &APIResponse{
		Status: "success",
		Data:   data,
		Metadata: Metadata{
			Timestamp:   time.Now(),
			QueryTimeMS: time.Since(start).Milliseconds(),
		},
	})
}

// decodeJSON decodes a request body into v, rejecting oversized payloads.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)
	return json.NewDecoder(r.Body).Decode(v)
}
