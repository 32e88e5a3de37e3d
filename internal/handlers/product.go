// internal/handlers/product.go
package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/javajoker/shopsmart-admin/internal/catalog"
	"github.com/javajoker/shopsmart-admin/internal/i18n"
	"github.com/javajoker/shopsmart-admin/internal/models"
	"github.com/javajoker/shopsmart-admin/internal/services"
	"github.com/javajoker/shopsmart-admin/internal/utils"
)

const IdempotencyKeyHeader = "Idempotency-Key"

var errImageUpload = errors.New("image upload failed")

type ProductHandler struct {
	store *catalog.Store
}

func NewProductHandler(store *catalog.Store) *ProductHandler {
	return &ProductHandler{
		store: store,
	}
}

// GET /products
func (h *ProductHandler) GetProducts(c *gin.Context) {
	params := utils.GetPaginationParams(c)
	search := strings.ToLower(strings.TrimSpace(params.Search))

	views := []models.ProductView{}
	for _, product := range h.store.List() {
		if search != "" && !strings.Contains(strings.ToLower(product.Name), search) {
			continue
		}
		views = append(views, product.View())
	}

	page, from, to := utils.Paginate(views, params)
	result := utils.CreatePaginationResult(page, int64(len(views)), from, to, params)
	utils.PaginatedResponse(c, result)
}

// GET /products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	product, err := h.store.Get(c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	utils.SuccessResponse(c, product.View())
}

// POST /products
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	form, err := bindProductForm(c)
	if err != nil {
		badForm(c, err)
		return
	}

	sub, err := h.store.Create(form, c.GetHeader(IdempotencyKeyHeader))
	if err != nil {
		h.respondError(c, err)
		return
	}

	product, err := sub.Wait(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyProductCreated),
		"product": product.View(),
	})
}

// PUT /products/:id
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	form, err := bindProductForm(c)
	if err != nil {
		badForm(c, err)
		return
	}

	sub, err := h.store.Update(c.Param("id"), form, c.GetHeader(IdempotencyKeyHeader))
	if err != nil {
		h.respondError(c, err)
		return
	}

	product, err := sub.Wait(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyProductUpdated),
		"product": product.View(),
	})
}

// DELETE /products/:id
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	if err := h.store.Remove(c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyProductDeleted),
		"editor":  h.store.Editor(),
	})
}

// GET /products/editor
func (h *ProductHandler) GetEditor(c *gin.Context) {
	utils.SuccessResponse(c, h.store.Editor())
}

// POST /products/editor/create
func (h *ProductHandler) BeginCreate(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	state, err := h.store.BeginCreate()
	if err != nil {
		h.respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyEditorOpened),
		"editor":  state,
	})
}

// POST /products/:id/edit
func (h *ProductHandler) BeginEdit(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	state, err := h.store.BeginEdit(c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyEditorOpened),
		"editor":  state,
	})
}

// POST /products/editor/cancel
func (h *ProductHandler) CancelEditor(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyEditorClosed),
		"editor":  h.store.Cancel(),
	})
}

// POST /products/editor/submit
func (h *ProductHandler) SubmitEditor(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	form, err := bindProductForm(c)
	if err != nil {
		badForm(c, err)
		return
	}

	sub, err := h.store.Submit(form, c.GetHeader(IdempotencyKeyHeader))
	if err != nil {
		h.respondError(c, err)
		return
	}

	view, err := h.store.Submission(sub.ID())
	if err != nil {
		h.respondError(c, err)
		return
	}

	utils.AcceptedResponse(c, gin.H{
		"message":    i18n.T(lang, i18n.KeyEditorSubmitAccepted),
		"submission": view,
	})
}

// GET /products/submissions/:id
func (h *ProductHandler) GetSubmission(c *gin.Context) {
	view, err := h.store.Submission(c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	utils.SuccessResponse(c, view)
}

func (h *ProductHandler) respondError(c *gin.Context, err error) {
	lang := utils.GetLangFromContext(c)

	switch {
	case errors.Is(err, catalog.ErrProductNotFound):
		utils.NotFoundResponse(c, i18n.KeyProductNotFound)
	case errors.Is(err, catalog.ErrSubmissionNotFound):
		utils.NotFoundResponse(c, i18n.KeySubmissionNotFound)
	case errors.Is(err, catalog.ErrSubmitInProgress):
		utils.ConflictResponse(c, "SUBMIT_IN_PROGRESS", i18n.T(lang, i18n.KeyEditorSubmitPending))
	case errors.Is(err, catalog.ErrEditorClosed):
		utils.ConflictResponse(c, "EDITOR_CLOSED", i18n.T(lang, i18n.KeyEditorNotOpen))
	case errors.Is(err, catalog.ErrEditorBusy):
		utils.ConflictResponse(c, "EDITOR_BUSY", i18n.T(lang, i18n.KeyEditorBusy))
	case errors.Is(err, catalog.ErrTokenReused):
		utils.ConflictResponse(c, "IDEMPOTENCY_KEY_REUSED", i18n.T(lang, i18n.KeyIdempotencyKeyReused))
	case errors.Is(err, catalog.ErrSubmitCanceled):
		utils.ConflictResponse(c, "SUBMIT_CANCELED", i18n.T(lang, i18n.KeyEditorSubmitCanceled))
	case errors.Is(err, services.ErrFileTooLarge):
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyFileTooLarge), err.Error())
	case errors.Is(err, services.ErrFileInvalidType), errors.Is(err, services.ErrFileEmpty):
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyFileInvalidType), err.Error())
	case errors.Is(err, catalog.ErrInvalidInput):
		if validationErrors := utils.GetValidationErrors(err); len(validationErrors) > 0 {
			utils.ValidationErrorResponse(c, validationErrors)
			return
		}
		utils.BadRequestResponse(c, err.Error(), nil)
	case errors.Is(err, context.DeadlineExceeded):
		utils.ErrorResponse(c, http.StatusGatewayTimeout, "TIMEOUT", err.Error(), nil)
	case errors.Is(err, context.Canceled):
		c.Status(499)
	default:
		utils.InternalErrorResponse(c, err.Error())
	}
}

func badForm(c *gin.Context, err error) {
	lang := utils.GetLangFromContext(c)
	if errors.Is(err, errImageUpload) {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyFileUploadFailed), err.Error())
		return
	}
	utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
}

// bindProductForm reads the product form from a JSON body or, for
// multipart requests, from form fields plus an optional "image" file.
func bindProductForm(c *gin.Context) (models.ProductFormData, error) {
	var form models.ProductFormData

	if !strings.HasPrefix(c.ContentType(), gin.MIMEMultipartPOSTForm) {
		if err := c.ShouldBindJSON(&form); err != nil {
			return form, err
		}
		return form, nil
	}

	if err := c.ShouldBind(&form); err != nil {
		return form, err
	}

	fileHeader, err := c.FormFile("image")
	if errors.Is(err, http.ErrMissingFile) {
		return form, nil
	}
	if err != nil {
		return form, fmt.Errorf("%w: %w", errImageUpload, err)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return form, fmt.Errorf("%w: %w", errImageUpload, err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return form, fmt.Errorf("%w: %w", errImageUpload, err)
	}

	form.Image = &models.ImageUpload{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Data:        data,
	}
	return form, nil
}
