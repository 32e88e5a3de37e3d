package catalog

import "github.com/javajoker/shopsmart-admin/internal/models"

// EditorMode is the state of the product editor surface.
type EditorMode string

const (
	EditorClosed EditorMode = "closed"
	EditorCreate EditorMode = "create"
	EditorEdit   EditorMode = "edit"
)

// ClosePolicy decides what closing the editor does to a pending submission.
type ClosePolicy string

const (
	// CancelOnClose drops the pending mutation.
	CancelOnClose ClosePolicy = "cancel"
	// FinishOnClose closes the editor and lets the pending mutation apply.
	FinishOnClose ClosePolicy = "finish"
)

// EditorState is a snapshot of the editor. Selected is set in edit mode;
// SubmissionID names the pending submission while Submitting is true.
type EditorState struct {
	Mode         EditorMode          `json:"mode"`
	Submitting   bool                `json:"submitting"`
	Selected     *models.ProductView `json:"selected,omitempty"`
	SubmissionID string              `json:"submission_id,omitempty"`
}
