package services

import (
	"errors"
	"fmt"
	"net/http"
)

// InputError reports that the request content failed validation before any
// generation was attempted. Surfaced as a 400.
type InputError struct {
	Reason string
}

func (e *InputError) Error() string { return e.Reason }

// StageParseError reports that a generation stage's output was not valid
// structured data. The raw output is carried for diagnostics only; the
// pipeline never retries. Surfaced as a 500.
type StageParseError struct {
	Feature   string
	Stage     string
	RawOutput string
	Err       error
}

func (e *StageParseError) Error() string {
	return fmt.Sprintf("invalid model output for %s %s stage: %v", e.Feature, e.Stage, e.Err)
}

func (e *StageParseError) Unwrap() error { return e.Err }

// PersistenceError reports that the atomic batch commit failed. No partial
// reviewer exists; the caller must re-issue the whole request. Surfaced as
// a 500.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("failed to persist reviewer: %v", e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// HTTPStatus maps a Process error onto the response status class: stage and
// persistence failures are server errors, everything else (validation,
// unknown feature, completion failures) is reported as a caller error with
// the underlying message.
func HTTPStatus(err error) int {
	var stageErr *StageParseError
	var persistErr *PersistenceError
	if errors.As(err, &stageErr) || errors.As(err, &persistErr) {
		return http.StatusInternalServerError
	}
	return http.StatusBadRequest
}
