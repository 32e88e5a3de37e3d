package catalog

import (
	"context"
	"time"

	"github.com/javajoker/shopsmart-admin/internal/models"
)

// SubmissionState tracks a submission from pending to its final outcome.
type SubmissionState string

const (
	SubmissionPending   SubmissionState = "pending"
	SubmissionCompleted SubmissionState = "completed"
	SubmissionCanceled  SubmissionState = "canceled"
	SubmissionFailed    SubmissionState = "failed"
)

// Submission is a product save scheduled by Store.Submit. It settles exactly
// once: completed, failed or canceled.
type Submission struct {
	id       string
	token    string
	origin   string
	mode     EditorMode
	targetID string
	form     models.ProductFormData
	imageURL string
	timer    *time.Timer
	done     chan struct{}

	// Written under Store.mu; safe to read without it once done is closed.
	state   SubmissionState
	product models.Product
	err     error
}

// SubmissionView is the read-only snapshot returned to callers polling a
// submission. Product is set only once the submission has completed.
type SubmissionView struct {
	ID        string              `json:"id"`
	State     SubmissionState     `json:"state"`
	Mode      EditorMode          `json:"mode"`
	ProductID string              `json:"product_id,omitempty"`
	Product   *models.ProductView `json:"product,omitempty"`
	Error     string              `json:"error,omitempty"`
}

func (s *Submission) ID() string {
	return s.id
}

// Done is closed when the submission settles.
func (s *Submission) Done() <-chan struct{} {
	return s.done
}

// Wait blocks until the submission settles or ctx ends. Giving up on ctx
// does not cancel the submission.
func (s *Submission) Wait(ctx context.Context) (models.Product, error) {
	select {
	case <-s.done:
		return s.product, s.err
	case <-ctx.Done():
		return models.Product{}, ctx.Err()
	}
}

func (s *Submission) settle(state SubmissionState, product models.Product, err error) {
	s.state = state
	s.product = product
	s.err = err
	s.form.Image = nil
	close(s.done)
}

func (s *Submission) view() SubmissionView {
	v := SubmissionView{
		ID:        s.id,
		State:     s.state,
		Mode:      s.mode,
		ProductID: s.targetID,
	}
	if s.state == SubmissionCompleted {
		pv := s.product.View()
		v.Product = &pv
		v.ProductID = s.product.ID
	}
	if s.err != nil {
		v.Error = s.err.Error()
	}
	return v
}
