package router

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"

	"github.com/javajoker/shopsmart-admin/internal/config"
	"github.com/javajoker/shopsmart-admin/internal/i18n"
	"github.com/javajoker/shopsmart-admin/internal/utils"
)

var pngBytes = append([]byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1A, '\n'}, []byte("lamp-pixels")...)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *utils.APIError `json:"error"`
	Meta    json.RawMessage `json:"meta"`
}

type productBody struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Stock    int    `json:"stock"`
	ImageURL string `json:"image_url"`
	Status   string `json:"status"`
}

type RouterTestSuite struct {
	suite.Suite
	cfg   *config.Config
	app   *App
	token string
}

func (s *RouterTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	s.Require().NoError(i18n.Initialize("en"))
}

func (s *RouterTestSuite) SetupTest() {
	cfg, err := config.Load("")
	s.Require().NoError(err)
	cfg.Catalog.SubmitDelayMs = 100
	s.cfg = cfg

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	app, err := Initialize(cfg, logrus.NewEntry(logger))
	s.Require().NoError(err)
	s.app = app
	s.token = s.login(cfg.Auth.OwnerEmail, cfg.Auth.OwnerPassword)
}

func (s *RouterTestSuite) TearDownTest() {
	s.app.Close()
}

func (s *RouterTestSuite) login(email, password string) string {
	w := s.request(http.MethodPost, "/v1/auth/login", map[string]string{"email": email, "password": password}, "")
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var body struct {
		Token string `json:"token"`
	}
	s.decode(w, &body)
	s.Require().NotEmpty(body.Token)
	return body.Token
}

func (s *RouterTestSuite) request(method, path string, payload interface{}, token string) *httptest.ResponseRecorder {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		s.Require().NoError(err)
		body = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.app.Engine.ServeHTTP(w, req)
	return w
}

func (s *RouterTestSuite) authed(method, path string, payload interface{}) *httptest.ResponseRecorder {
	return s.request(method, path, payload, s.token)
}

func (s *RouterTestSuite) decode(w *httptest.ResponseRecorder, data interface{}) envelope {
	var env envelope
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	if data != nil && len(env.Data) > 0 {
		s.Require().NoError(json.Unmarshal(env.Data, data))
	}
	return env
}

func (s *RouterTestSuite) listProducts() []productBody {
	w := s.authed(http.MethodGet, "/v1/products", nil)
	s.Require().Equal(http.StatusOK, w.Code)

	var products []productBody
	s.decode(w, &products)
	return products
}

func (s *RouterTestSuite) TestHealth() {
	w := s.request(http.MethodGet, "/health", nil, "")
	s.Equal(http.StatusOK, w.Code)
}

func (s *RouterTestSuite) TestProtectedRoutesNeedToken() {
	for _, path := range []string{"/v1/products", "/v1/dashboard", "/v1/customers", "/v1/orders", "/v1/settings/profile"} {
		w := s.request(http.MethodGet, path, nil, "")
		s.Equal(http.StatusUnauthorized, w.Code, path)
	}
}

func (s *RouterTestSuite) TestLoginRejectsWrongPassword() {
	w := s.request(http.MethodPost, "/v1/auth/login", map[string]string{"email": s.cfg.Auth.OwnerEmail, "password": "nope"}, "")
	s.Equal(http.StatusUnauthorized, w.Code)

	w = s.authed(http.MethodGet, "/v1/auth/me", nil)
	s.Equal(http.StatusOK, w.Code)
}

func (s *RouterTestSuite) TestListProducts() {
	w := s.authed(http.MethodGet, "/v1/products?limit=2", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	s.Equal("5", w.Header().Get("X-Total-Count"))

	var page []productBody
	s.decode(w, &page)
	s.Require().Len(page, 2)
	s.Equal("prod-001", page[0].ID)
	s.Equal("in-stock", page[0].Status)

	products := s.listProducts()
	s.Len(products, 5)
	s.Equal("out-of-stock", products[4].Status)
}

func (s *RouterTestSuite) TestCreateProduct() {
	w := s.authed(http.MethodPost, "/v1/products", map[string]interface{}{
		"name":        "Lamp",
		"description": "Desk lamp",
		"price":       25,
		"stock":       5,
	})
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	var body struct {
		Product productBody `json:"product"`
	}
	s.decode(w, &body)
	s.True(strings.HasPrefix(body.Product.ID, "prod-"))
	s.Equal("low-stock", body.Product.Status)
	s.Equal(s.cfg.Catalog.PlaceholderImageURL, body.Product.ImageURL)

	products := s.listProducts()
	s.Len(products, 6)
	s.Equal("Lamp", products[0].Name)
}

func (s *RouterTestSuite) TestCreateProductRejectsInvalidInput() {
	w := s.authed(http.MethodPost, "/v1/products", map[string]interface{}{"name": "   ", "price": -1, "stock": 2})
	s.Require().Equal(http.StatusBadRequest, w.Code)

	env := s.decode(w, nil)
	s.Require().NotNil(env.Error)
	s.Equal("VALIDATION_ERROR", env.Error.Code)
	s.Len(s.listProducts(), 5)
}

func (s *RouterTestSuite) TestUpdateProduct() {
	w := s.authed(http.MethodPut, "/v1/products/prod-005", map[string]interface{}{
		"name":  "Adjustable Standing Desk",
		"price": 599,
		"stock": 12,
	})
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	w = s.authed(http.MethodGet, "/v1/products/prod-005", nil)
	var product productBody
	s.decode(w, &product)
	s.Equal(12, product.Stock)
	s.Equal("in-stock", product.Status)

	w = s.authed(http.MethodPut, "/v1/products/prod-missing", map[string]interface{}{"name": "Ghost"})
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *RouterTestSuite) TestEditorFlow() {
	w := s.authed(http.MethodPost, "/v1/products/editor/submit", map[string]interface{}{"name": "Lamp"})
	s.Equal(http.StatusConflict, w.Code)

	w = s.authed(http.MethodPost, "/v1/products/prod-002/edit", nil)
	s.Require().Equal(http.StatusOK, w.Code)

	w = s.authed(http.MethodPost, "/v1/products/editor/submit", map[string]interface{}{
		"name":  "Wireless Mechanical Keyboard",
		"price": 110,
		"stock": 3,
	})
	s.Require().Equal(http.StatusAccepted, w.Code, w.Body.String())

	var accepted struct {
		Submission struct {
			ID    string `json:"id"`
			State string `json:"state"`
		} `json:"submission"`
	}
	s.decode(w, &accepted)
	s.Equal("pending", accepted.Submission.State)

	var editor struct {
		Mode       string `json:"mode"`
		Submitting bool   `json:"submitting"`
	}
	s.decode(s.authed(http.MethodGet, "/v1/products/editor", nil), &editor)
	s.Equal("edit", editor.Mode)
	s.True(editor.Submitting)

	w = s.authed(http.MethodPost, "/v1/products/editor/create", nil)
	s.Equal(http.StatusConflict, w.Code)

	s.Eventually(func() bool {
		var view struct {
			State string `json:"state"`
		}
		s.decode(s.authed(http.MethodGet, "/v1/products/submissions/"+accepted.Submission.ID, nil), &view)
		return view.State == "completed"
	}, 2*time.Second, 10*time.Millisecond)

	s.decode(s.authed(http.MethodGet, "/v1/products/editor", nil), &editor)
	s.Equal("closed", editor.Mode)
	s.False(editor.Submitting)

	products := s.listProducts()
	s.Equal("prod-002", products[1].ID)
	s.Equal("low-stock", products[1].Status)
}

func (s *RouterTestSuite) TestEditorCancel() {
	s.Require().Equal(http.StatusOK, s.authed(http.MethodPost, "/v1/products/editor/create", nil).Code)
	s.Require().Equal(http.StatusAccepted, s.authed(http.MethodPost, "/v1/products/editor/submit", map[string]interface{}{"name": "Lamp"}).Code)

	w := s.authed(http.MethodPost, "/v1/products/editor/cancel", nil)
	s.Require().Equal(http.StatusOK, w.Code)

	time.Sleep(150 * time.Millisecond)
	s.Len(s.listProducts(), 5)
}

func (s *RouterTestSuite) TestDeleteProduct() {
	w := s.authed(http.MethodDelete, "/v1/products/prod-003", nil)
	s.Require().Equal(http.StatusOK, w.Code)

	w = s.authed(http.MethodDelete, "/v1/products/prod-003", nil)
	s.Equal(http.StatusNotFound, w.Code)
	s.Len(s.listProducts(), 4)
}

func (s *RouterTestSuite) TestMultipartCreateServesImage() {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	s.Require().NoError(mw.WriteField("name", "Lamp"))
	s.Require().NoError(mw.WriteField("price", "19.5"))
	s.Require().NoError(mw.WriteField("stock", "20"))
	part, err := mw.CreateFormFile("image", "lamp.png")
	s.Require().NoError(err)
	_, err = part.Write(pngBytes)
	s.Require().NoError(err)
	s.Require().NoError(mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/v1/products", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+s.token)
	w := httptest.NewRecorder()
	s.app.Engine.ServeHTTP(w, req)
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		Product productBody `json:"product"`
	}
	s.decode(w, &created)
	s.Contains(created.Product.ImageURL, "/v1/assets/")

	path := strings.TrimPrefix(created.Product.ImageURL, s.cfg.Assets.PublicBaseURL)
	w = s.request(http.MethodGet, path, nil, "")
	s.Require().Equal(http.StatusOK, w.Code)
	s.Equal("image/png", w.Header().Get("Content-Type"))
	s.Equal(pngBytes, w.Body.Bytes())

	s.Require().Equal(http.StatusOK, s.authed(http.MethodDelete, "/v1/products/"+created.Product.ID, nil).Code)
	s.Equal(http.StatusNotFound, s.request(http.MethodGet, path, nil, "").Code)
}

func (s *RouterTestSuite) postMultipart(path string, fields map[string]string) *httptest.ResponseRecorder {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for name, value := range fields {
		s.Require().NoError(mw.WriteField(name, value))
	}
	s.Require().NoError(mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+s.token)
	w := httptest.NewRecorder()
	s.app.Engine.ServeHTTP(w, req)
	return w
}

func (s *RouterTestSuite) TestMultipartRejectsNonFinitePrice() {
	for _, price := range []string{"Inf", "+Inf", "-Inf", "NaN"} {
		w := s.postMultipart("/v1/products", map[string]string{"name": "Lamp", "price": price, "stock": "1"})
		s.Require().Equal(http.StatusBadRequest, w.Code, "price=%s: %s", price, w.Body.String())

		env := s.decode(w, nil)
		s.Require().NotNil(env.Error)
		s.Equal("VALIDATION_ERROR", env.Error.Code)
	}

	s.Len(s.listProducts(), 5)
	s.Equal(http.StatusOK, s.authed(http.MethodGet, "/v1/dashboard", nil).Code)
}

func (s *RouterTestSuite) TestHugePageIsEmpty() {
	w := s.authed(http.MethodGet, "/v1/products?page=9223372036854775807", nil)
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var products []productBody
	s.decode(w, &products)
	s.Empty(products)

	w = s.authed(http.MethodGet, "/v1/orders?page=9223372036854775807&limit=100", nil)
	s.Equal(http.StatusOK, w.Code)
}

func (s *RouterTestSuite) TestIdempotencyKeyIsScopedToTheRequest() {
	send := func(method, path string) *httptest.ResponseRecorder {
		data, err := json.Marshal(map[string]interface{}{"name": "Ergonomic Office Chair", "price": 280, "stock": 40})
		s.Require().NoError(err)
		req := httptest.NewRequest(method, path, bytes.NewReader(data))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+s.token)
		req.Header.Set("Idempotency-Key", "key-1")
		w := httptest.NewRecorder()
		s.app.Engine.ServeHTTP(w, req)
		return w
	}

	s.Require().Equal(http.StatusOK, send(http.MethodPut, "/v1/products/prod-001").Code)
	s.Equal(http.StatusOK, send(http.MethodPut, "/v1/products/prod-001").Code)

	w := send(http.MethodPost, "/v1/products")
	s.Require().Equal(http.StatusConflict, w.Code)
	env := s.decode(w, nil)
	s.Equal("IDEMPOTENCY_KEY_REUSED", env.Error.Code)
	s.Len(s.listProducts(), 5)
}

func (s *RouterTestSuite) TestCustomersSearch() {
	var customers []struct {
		ID string `json:"id"`
	}
	s.decode(s.authed(http.MethodGet, "/v1/customers?search=ALICE", nil), &customers)
	s.Require().Len(customers, 1)
	s.Equal("cust_001", customers[0].ID)

	customers = nil
	s.decode(s.authed(http.MethodGet, "/v1/customers?search=zzz", nil), &customers)
	s.Empty(customers)
}

func (s *RouterTestSuite) TestOrdersFilterAndExport() {
	var orders []struct {
		ID           string `json:"id"`
		BadgeVariant string `json:"badge_variant"`
	}
	s.decode(s.authed(http.MethodGet, "/v1/orders?status=delivered", nil), &orders)
	s.Len(orders, 2)
	s.Equal("outline", orders[0].BadgeVariant)

	w := s.authed(http.MethodGet, "/v1/orders?page=2&limit=2", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	var meta struct {
		Pagination struct {
			From  int `json:"from"`
			To    int `json:"to"`
			Total int `json:"total"`
		} `json:"pagination"`
	}
	s.Require().NoError(json.Unmarshal(s.decode(w, &orders).Meta, &meta))
	s.Equal(3, meta.Pagination.From)
	s.Equal(4, meta.Pagination.To)
	s.Equal(5, meta.Pagination.Total)

	s.Equal(http.StatusBadRequest, s.authed(http.MethodGet, "/v1/orders?status=lost", nil).Code)

	w = s.authed(http.MethodGet, "/v1/orders/export?status=shipped", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	s.Contains(w.Header().Get("Content-Type"), "text/csv")
	s.Contains(w.Header().Get("Content-Disposition"), "attachment")

	lines := strings.Split(strings.TrimSpace(w.Body.String()), "\n")
	s.Require().Len(lines, 2)
	s.Equal("order_id,customer_name,customer_email,date,status,total", strings.TrimSpace(lines[0]))
	s.True(strings.HasPrefix(lines[1], "ORD001,Liam Johnson"))
}

func (s *RouterTestSuite) TestDashboardTracksCatalog() {
	var dashboard struct {
		Stats     []interface{} `json:"stats"`
		Inventory struct {
			TotalProducts int `json:"total_products"`
			OutOfStock    int `json:"out_of_stock"`
		} `json:"inventory"`
	}
	s.decode(s.authed(http.MethodGet, "/v1/dashboard", nil), &dashboard)
	s.Len(dashboard.Stats, 4)
	s.Equal(5, dashboard.Inventory.TotalProducts)
	s.Equal(1, dashboard.Inventory.OutOfStock)

	s.Require().Equal(http.StatusOK, s.authed(http.MethodDelete, "/v1/products/prod-005", nil).Code)
	s.decode(s.authed(http.MethodGet, "/v1/dashboard", nil), &dashboard)
	s.Equal(4, dashboard.Inventory.TotalProducts)
	s.Equal(0, dashboard.Inventory.OutOfStock)
}

func (s *RouterTestSuite) TestSettings() {
	w := s.authed(http.MethodPut, "/v1/settings/preferences", map[string]interface{}{"theme": "Neon"})
	s.Equal(http.StatusBadRequest, w.Code)

	w = s.authed(http.MethodPut, "/v1/settings/preferences", map[string]interface{}{"theme": "Dark", "email_notifications": false})
	s.Require().Equal(http.StatusOK, w.Code)

	w = s.authed(http.MethodPut, "/v1/settings/password", map[string]string{"current_password": "wrong", "new_password": "a-new-password"})
	s.Equal(http.StatusBadRequest, w.Code)

	w = s.authed(http.MethodPut, "/v1/settings/password", map[string]string{"current_password": s.cfg.Auth.OwnerPassword, "new_password": "a-new-password"})
	s.Require().Equal(http.StatusOK, w.Code)
	s.NotEmpty(s.login(s.cfg.Auth.OwnerEmail, "a-new-password"))
}

func TestRouterSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}
