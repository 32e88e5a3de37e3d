package catalog

import "errors"

var (
	// ErrProductNotFound is returned when an operation names an id that is not in the catalog.
	ErrProductNotFound = errors.New("product not found")
	// ErrInvalidInput is returned when submitted form data breaks a product invariant.
	ErrInvalidInput = errors.New("invalid product input")
	// ErrSubmitInProgress is returned while another submission is pending.
	ErrSubmitInProgress = errors.New("submit already in progress")
	// ErrEditorClosed is returned when submitting without an open editor.
	ErrEditorClosed = errors.New("product editor is not open")
	// ErrSubmitCanceled is the result of a submission dropped by closing the editor.
	ErrSubmitCanceled = errors.New("submit canceled")
	// ErrEditorBusy is returned when a one-step create or update would take
	// over an editor already open on something else.
	ErrEditorBusy = errors.New("product editor is open on another product")
	// ErrTokenReused is returned when an idempotency token is replayed for a
	// different operation than the one that first used it.
	ErrTokenReused = errors.New("idempotency key was used for a different request")
	// ErrSubmissionNotFound is returned for unknown submission ids.
	ErrSubmissionNotFound = errors.New("submission not found")
)
