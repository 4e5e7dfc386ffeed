package v1_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"go-leadform-backend/config"
	_ "go-leadform-backend/docs"
	v1 "go-leadform-backend/internal/delivery/http/v1"
	"go-leadform-backend/internal/usecase"
	"go-leadform-backend/pkg/logger"
	"go-leadform-backend/pkg/mailer"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	logger.Init()
	os.Exit(m.Run())
}

type MockSender struct {
	mock.Mock
}

func (m *MockSender) Send(msg mailer.Message) error {
	return m.Called(msg).Error(0)
}

func testConfig() *config.Config {
	return &config.Config{
		Port:           "8080",
		FrontendURL:    "https://studio.test",
		SMTPHost:       "smtp.example.test",
		SMTPPort:       "465",
		SMTPUser:       "forms@studio.test",
		SMTPPass:       "secret",
		FromName:       "Studio Website",
		ToContact:      "owner@studio.test",
		ToEstimates:    "estimates@studio.test",
		ToApply:        "jobs@studio.test",
		MinFillSeconds: 3,
	}
}

func newTestRouter(cfg *config.Config, sender mailer.Sender) *gin.Engine {
	return v1.NewRouter(v1.RouterDeps{
		ContactUC:     usecase.NewContactUsecase(cfg, sender),
		EstimateUC:    usecase.NewEstimateUsecase(cfg, sender),
		ApplicationUC: usecase.NewApplicationUsecase(cfg, sender),
		Config:        cfg,
	})
}

type wireBody struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string) (int, wireBody) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var decoded wireBody
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	return rec.Code, decoded
}

const validContact = `{"name":"Jane Doe","email":"jane@x.com","message":"Please call me back about a new site."}`

func TestContactEndpoint(t *testing.T) {
	t.Run("Valid submission relays and returns ok", func(t *testing.T) {
		sender := new(MockSender)
		sender.On("Send", mock.Anything).Return(nil).Once()
		router := newTestRouter(testConfig(), sender)

		code, body := doJSON(t, router, http.MethodPost, "/api/contact", validContact)
		assert.Equal(t, http.StatusOK, code)
		assert.True(t, body.OK)
		assert.Empty(t, body.Error)
		sender.AssertExpectations(t)
	})

	t.Run("Wrong method", func(t *testing.T) {
		router := newTestRouter(testConfig(), new(MockSender))
		code, body := doJSON(t, router, http.MethodGet, "/api/contact", "")
		assert.Equal(t, http.StatusMethodNotAllowed, code)
		assert.False(t, body.OK)
		assert.Equal(t, "Method not allowed", body.Error)
	})

	t.Run("Malformed body", func(t *testing.T) {
		router := newTestRouter(testConfig(), new(MockSender))
		code, body := doJSON(t, router, http.MethodPost, "/api/contact", "not json")
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, "Invalid JSON body", body.Error)
	})

	t.Run("Non-object JSON body", func(t *testing.T) {
		router := newTestRouter(testConfig(), new(MockSender))
		code, body := doJSON(t, router, http.MethodPost, "/api/contact", `"not json"`)
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, "Invalid JSON body", body.Error)
	})

	t.Run("Validation failure reports the field message", func(t *testing.T) {
		router := newTestRouter(testConfig(), new(MockSender))
		code, body := doJSON(t, router, http.MethodPost, "/api/contact", `{"email":"jane@x.com","message":"hello there"}`)
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, "Name is required", body.Error)
	})

	t.Run("Unset recipient is a generic send failure", func(t *testing.T) {
		cfg := testConfig()
		cfg.ToContact = ""
		sender := new(MockSender)
		router := newTestRouter(cfg, sender)

		code, body := doJSON(t, router, http.MethodPost, "/api/contact", validContact)
		assert.Equal(t, http.StatusInternalServerError, code)
		assert.Equal(t, "Send failed", body.Error)
		sender.AssertNotCalled(t, "Send", mock.Anything)
	})

	t.Run("Relay failure is a generic send failure", func(t *testing.T) {
		sender := new(MockSender)
		sender.On("Send", mock.Anything).Return(assert.AnError).Once()
		router := newTestRouter(testConfig(), sender)

		code, body := doJSON(t, router, http.MethodPost, "/api/contact", validContact)
		assert.Equal(t, http.StatusInternalServerError, code)
		assert.Equal(t, "Send failed", body.Error)
	})

	t.Run("Honeypot gets a fake success without relaying", func(t *testing.T) {
		sender := new(MockSender)
		router := newTestRouter(testConfig(), sender)

		code, body := doJSON(t, router, http.MethodPost, "/api/contact",
			`{"name":"Jane Doe","email":"jane@x.com","message":"hello there","hp_field":"gotcha"}`)
		assert.Equal(t, http.StatusOK, code)
		assert.True(t, body.OK)
		sender.AssertNotCalled(t, "Send", mock.Anything)
	})
}

func TestEstimateEndpoint(t *testing.T) {
	t.Run("Valid submission", func(t *testing.T) {
		var sent mailer.Message
		sender := new(MockSender)
		sender.On("Send", mock.Anything).Run(func(args mock.Arguments) {
			sent = args.Get(0).(mailer.Message)
		}).Return(nil).Once()
		router := newTestRouter(testConfig(), sender)

		code, body := doJSON(t, router, http.MethodPost, "/api/estimate",
			`{"fullName":"Jane Doe","email":"jane@x.com","budget":"$4,000","services":["Design","Design","SEO"]}`)
		assert.Equal(t, http.StatusOK, code)
		assert.True(t, body.OK)
		assert.Equal(t, "New Estimate: Jane Doe — $4,000", sent.Subject)
		assert.Contains(t, sent.Text, "Services: Design, SEO")
	})

	t.Run("Empty body fails on the first required field", func(t *testing.T) {
		router := newTestRouter(testConfig(), new(MockSender))
		code, body := doJSON(t, router, http.MethodPost, "/api/estimate", "")
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, "Name is required", body.Error)
	})
}

func TestApplyEndpoint(t *testing.T) {
	t.Run("Validation failure", func(t *testing.T) {
		router := newTestRouter(testConfig(), new(MockSender))
		code, body := doJSON(t, router, http.MethodPost, "/api/apply", `{"name":"Jane Doe","email":"jane@x.com","phone":"555-12"}`)
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, "Valid phone is required", body.Error)
	})

	t.Run("Wrong method", func(t *testing.T) {
		router := newTestRouter(testConfig(), new(MockSender))
		code, body := doJSON(t, router, http.MethodPut, "/api/apply", "{}")
		assert.Equal(t, http.StatusMethodNotAllowed, code)
		assert.Equal(t, "Method not allowed", body.Error)
	})
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(testConfig(), new(MockSender))
	code, body := doJSON(t, router, http.MethodGet, "/api/health", "")
	assert.Equal(t, http.StatusOK, code)
	assert.True(t, body.OK)
}

func TestSwaggerDoc(t *testing.T) {
	router := newTestRouter(testConfig(), new(MockSender))
	req := httptest.NewRequest(http.MethodGet, "/api/swagger/doc.json", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"/contact"`)
	assert.Contains(t, rec.Body.String(), `"/estimate"`)
	assert.Contains(t, rec.Body.String(), `"/apply"`)
}
