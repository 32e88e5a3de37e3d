// Package catalog holds the in-memory product catalog and the editor
// workflow that mutates it.
package catalog

import (
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/javajoker/shopsmart-admin/internal/models"
	"github.com/javajoker/shopsmart-admin/internal/utils"
)

const (
	DefaultSubmitDelay         = time.Second
	DefaultPlaceholderImageURL = "https://placehold.co/100x100?text=No+Image"

	idPrefix      = "prod-"
	keptSubmitted = 64

	originEditor = "editor"
	originCreate = "create"
	originUpdate = "update:"
)

// ImageStore turns uploaded images into display URLs.
type ImageStore interface {
	Put(img *models.ImageUpload) (string, error)
	// Release drops a URL previously returned by Put. Other URLs are ignored.
	Release(url string)
}

// Options configures a Store. Zero values fall back to the defaults noted.
type Options struct {
	// SubmitDelay is how long a submission waits before it applies.
	SubmitDelay time.Duration
	// PlaceholderImageURL is used for created products without an image.
	// Defaults to DefaultPlaceholderImageURL.
	PlaceholderImageURL string
	// ClosePolicy decides the fate of a pending submission when the editor
	// closes. Defaults to CancelOnClose.
	ClosePolicy ClosePolicy
	// Images stores uploaded images; nil disables uploads.
	Images ImageStore
	Logger *logrus.Entry
	// Now is the clock used for new product ids. Defaults to time.Now.
	Now func() time.Time
}

// Store owns the product list and mediates every mutation of it. All
// operations are serialized; the only deferred work is the submit timer.
type Store struct {
	mu       sync.Mutex
	products []models.Product

	mode       EditorMode
	selectedID string
	pending    *Submission

	submissions map[string]*Submission
	tokens      map[string]*Submission
	history     []string
	lastID      int64

	opts Options
	log  *logrus.Entry
}

// New builds a store seeded with a copy of seed.
func New(seed []models.Product, opts Options) (*Store, error) {
	if opts.PlaceholderImageURL == "" {
		opts.PlaceholderImageURL = DefaultPlaceholderImageURL
	}
	if opts.ClosePolicy == "" {
		opts.ClosePolicy = CancelOnClose
	}
	if opts.ClosePolicy != CancelOnClose && opts.ClosePolicy != FinishOnClose {
		return nil, fmt.Errorf("unknown close policy %q", opts.ClosePolicy)
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = logrus.NewEntry(logrus.StandardLogger())
	}

	seen := make(map[string]struct{}, len(seed))
	for _, p := range seed {
		if p.ID == "" {
			return nil, fmt.Errorf("seed product %q has no id", p.Name)
		}
		if _, dup := seen[p.ID]; dup {
			return nil, fmt.Errorf("duplicate seed product id %s", p.ID)
		}
		if p.Price < 0 || math.IsNaN(p.Price) || math.IsInf(p.Price, 0) || p.Stock < 0 {
			return nil, fmt.Errorf("seed product %s: %w", p.ID, ErrInvalidInput)
		}
		seen[p.ID] = struct{}{}
	}

	return &Store{
		products:    append([]models.Product(nil), seed...),
		mode:        EditorClosed,
		submissions: make(map[string]*Submission),
		tokens:      make(map[string]*Submission),
		opts:        opts,
		log:         opts.Logger.WithField("component", "catalog"),
	}, nil
}

// List returns the products in display order.
func (s *Store) List() []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]models.Product(nil), s.products...)
}

// Get returns the product with id, or ErrProductNotFound.
func (s *Store) Get(id string) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return models.Product{}, ErrProductNotFound
	}
	return s.products[i], nil
}

// Editor reports the editor surface and submitting flag.
func (s *Store) Editor() EditorState {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := EditorState{Mode: s.mode, Submitting: s.pending != nil}
	if s.pending != nil {
		state.SubmissionID = s.pending.id
	}
	if i := s.indexOf(s.selectedID); i >= 0 && s.mode == EditorEdit {
		view := s.products[i].View()
		state.Selected = &view
	}
	return state
}

// BeginCreate opens the editor for a new product.
func (s *Store) BeginCreate() (EditorState, error) {
	s.mu.Lock()
	if s.pending != nil {
		s.mu.Unlock()
		return EditorState{}, ErrSubmitInProgress
	}
	s.selectedID = ""
	s.mode = EditorCreate
	s.mu.Unlock()

	return s.Editor(), nil
}

// BeginEdit opens the editor on an existing product.
func (s *Store) BeginEdit(id string) (EditorState, error) {
	s.mu.Lock()
	if s.pending != nil {
		s.mu.Unlock()
		return EditorState{}, ErrSubmitInProgress
	}
	if s.indexOf(id) < 0 {
		s.mu.Unlock()
		return EditorState{}, ErrProductNotFound
	}
	s.selectedID = id
	s.mode = EditorEdit
	s.mu.Unlock()

	return s.Editor(), nil
}

// Cancel closes the editor. A pending submission is dropped or left to
// finish according to the close policy.
func (s *Store) Cancel() EditorState {
	s.mu.Lock()
	if s.pending != nil && s.opts.ClosePolicy == CancelOnClose {
		s.cancelPending()
	}
	s.mode = EditorClosed
	s.selectedID = ""
	s.mu.Unlock()

	return s.Editor()
}

// Remove deletes a product. An unknown id leaves the catalog untouched and
// reports ErrProductNotFound.
func (s *Store) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return ErrProductNotFound
	}

	removed := s.products[i]
	s.products = append(s.products[:i], s.products[i+1:]...)
	s.releaseImage(removed.ImageURL)

	if s.selectedID == id && s.pending == nil {
		s.mode = EditorClosed
		s.selectedID = ""
	}

	s.log.WithField("product_id", id).Info("Product removed")
	return nil
}

// Submit validates form and schedules it to be applied after the submit
// delay. A non-empty token makes retries idempotent: a token seen before
// returns the submission it started.
//
// A token is bound to the call that first used it: replaying it through
// Create, or through Update on any product, returns ErrTokenReused.
func (s *Store) Submit(form models.ProductFormData, token string) (*Submission, error) {
	return s.submit(form, token, originEditor, nil)
}

// Create opens the editor for a new product and submits form in one step.
// An editor already open on an existing product is not taken over:
// Create returns ErrEditorBusy instead.
func (s *Store) Create(form models.ProductFormData, token string) (*Submission, error) {
	return s.submit(form, token, originCreate, func() error {
		if s.mode == EditorEdit {
			return ErrEditorBusy
		}
		s.selectedID = ""
		s.mode = EditorCreate
		return nil
	})
}

// Update opens the editor on id and submits form in one step. It returns
// ErrEditorBusy when the editor is open in create mode or on another product.
func (s *Store) Update(id string, form models.ProductFormData, token string) (*Submission, error) {
	return s.submit(form, token, originUpdate+id, func() error {
		if s.indexOf(id) < 0 {
			return ErrProductNotFound
		}
		if s.mode == EditorCreate || (s.mode == EditorEdit && s.selectedID != id) {
			return ErrEditorBusy
		}
		s.selectedID = id
		s.mode = EditorEdit
		return nil
	})
}

// submit runs open, if given, under the lock after the token and pending
// checks and before the editor checks. origin names the calling operation
// and scopes the idempotency token.
func (s *Store) submit(form models.ProductFormData, token, origin string, open func() error) (*Submission, error) {
	form.Name = strings.TrimSpace(form.Name)
	if err := utils.ValidateStruct(&form); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if token != "" {
		if sub, ok := s.tokens[token]; ok {
			if sub.origin != origin {
				return nil, ErrTokenReused
			}
			return sub, nil
		}
	}
	if s.pending != nil {
		return nil, ErrSubmitInProgress
	}
	if open != nil {
		if err := open(); err != nil {
			return nil, err
		}
	}
	if s.mode == EditorClosed {
		return nil, ErrEditorClosed
	}
	if s.mode == EditorEdit && s.indexOf(s.selectedID) < 0 {
		return nil, ErrProductNotFound
	}

	var imageURL string
	if form.Image != nil {
		if s.opts.Images == nil {
			return nil, fmt.Errorf("%w: image uploads are not enabled", ErrInvalidInput)
		}
		url, err := s.opts.Images.Put(form.Image)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
		imageURL = url
	}

	sub := &Submission{
		id:       uuid.NewString(),
		token:    token,
		origin:   origin,
		mode:     s.mode,
		targetID: s.selectedID,
		form:     form,
		imageURL: imageURL,
		done:     make(chan struct{}),
		state:    SubmissionPending,
	}
	s.pending = sub
	s.remember(sub)
	sub.timer = time.AfterFunc(s.opts.SubmitDelay, func() { s.complete(sub) })

	s.log.WithFields(logrus.Fields{
		"submission_id": sub.id,
		"mode":          sub.mode,
		"product_id":    sub.targetID,
	}).Debug("Submit scheduled")

	return sub, nil
}

// Submission looks up a submission by id.
func (s *Store) Submission(id string) (SubmissionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sub, ok := s.submissions[id]
	if !ok {
		return SubmissionView{}, ErrSubmissionNotFound
	}
	return sub.view(), nil
}

// Close cancels a pending submission regardless of the close policy.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pending != nil {
		s.cancelPending()
	}
}

func (s *Store) complete(sub *Submission) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sub.state != SubmissionPending {
		return
	}
	s.pending = nil
	s.mode = EditorClosed
	s.selectedID = ""

	entry := s.log.WithField("submission_id", sub.id)

	if sub.mode == EditorCreate {
		product := models.Product{
			ID:          s.nextID(),
			Name:        sub.form.Name,
			Description: sub.form.Description,
			Price:       sub.form.Price,
			Stock:       sub.form.Stock,
			ImageURL:    sub.imageURL,
		}
		if product.ImageURL == "" {
			product.ImageURL = s.opts.PlaceholderImageURL
		}
		s.products = append([]models.Product{product}, s.products...)
		sub.settle(SubmissionCompleted, product, nil)
		entry.WithField("product_id", product.ID).Info("Product added")
		return
	}

	i := s.indexOf(sub.targetID)
	if i < 0 {
		s.releaseImage(sub.imageURL)
		sub.settle(SubmissionFailed, models.Product{}, ErrProductNotFound)
		entry.WithField("product_id", sub.targetID).Warn("Edited product was removed before the save applied")
		return
	}

	product := s.products[i]
	product.Name = sub.form.Name
	product.Description = sub.form.Description
	product.Price = sub.form.Price
	product.Stock = sub.form.Stock
	if sub.imageURL != "" {
		s.releaseImage(product.ImageURL)
		product.ImageURL = sub.imageURL
	}
	s.products[i] = product
	sub.settle(SubmissionCompleted, product, nil)
	entry.WithField("product_id", product.ID).Info("Product updated")
}

// cancelPending must be called with s.mu held.
func (s *Store) cancelPending() {
	sub := s.pending
	s.pending = nil
	sub.timer.Stop()
	s.releaseImage(sub.imageURL)
	sub.settle(SubmissionCanceled, models.Product{}, ErrSubmitCanceled)
	s.log.WithField("submission_id", sub.id).Info("Submit canceled")
}

// nextID derives an id from the current time, bumped past any id already
// issued so that two creates in the same millisecond stay distinct.
func (s *Store) nextID() string {
	n := s.opts.Now().UnixMilli()
	if n <= s.lastID {
		n = s.lastID + 1
	}
	for s.indexOf(fmt.Sprintf("%s%d", idPrefix, n)) >= 0 {
		n++
	}
	s.lastID = n
	return fmt.Sprintf("%s%d", idPrefix, n)
}

func (s *Store) remember(sub *Submission) {
	s.submissions[sub.id] = sub
	if sub.token != "" {
		s.tokens[sub.token] = sub
	}
	s.history = append(s.history, sub.id)

	for len(s.history) > keptSubmitted {
		old := s.submissions[s.history[0]]
		s.history = s.history[1:]
		delete(s.submissions, old.id)
		if old.token != "" && s.tokens[old.token] == old {
			delete(s.tokens, old.token)
		}
	}
}

func (s *Store) releaseImage(url string) {
	if url != "" && s.opts.Images != nil {
		s.opts.Images.Release(url)
	}
}

func (s *Store) indexOf(id string) int {
	if id == "" {
		return -1
	}
	for i, p := range s.products {
		if p.ID == id {
			return i
		}
	}
	return -1
}
