package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"wxbrief/internal/models/request_models"
	"wxbrief/pkg/utils"
)

type fakeAccountService struct {
	registerToken string
	registerErr   error
	loginToken    string
	loginErr      error
}

func (f *fakeAccountService) Register(ctx context.Context, req request_models.SignUpRequest) (string, error) {
	return f.registerToken, f.registerErr
}

func (f *fakeAccountService) Login(ctx context.Context, req request_models.LoginRequest) (string, error) {
	return f.loginToken, f.loginErr
}

func newAuthRouter(svc *fakeAccountService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	ctrl := NewAuthController(svc)
	r.POST("/auth/register", ctrl.Register)
	r.POST("/auth/login", ctrl.Login)
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegister_ReturnsBearerToken(t *testing.T) {
	r := newAuthRouter(&fakeAccountService{registerToken: "tok-123"})

	w := postJSON(r, "/auth/register",
		`{"name":"Amelia","email":"amelia@example.com","password":"flying123"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"access_token":"tok-123"`)
	assert.Contains(t, w.Body.String(), `"token_type":"bearer"`)
}

func TestRegister_DuplicateEmailIs400(t *testing.T) {
	r := newAuthRouter(&fakeAccountService{registerErr: utils.ErrEmailAlreadyExists})

	w := postJSON(r, "/auth/register",
		`{"name":"Amelia","email":"amelia@example.com","password":"flying123"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegister_InvalidBodyIs400(t *testing.T) {
	r := newAuthRouter(&fakeAccountService{registerToken: "tok-123"})

	// missing password, invalid email
	w := postJSON(r, "/auth/register", `{"name":"Amelia","email":"not-an-email"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogin_BadCredentialsIs401(t *testing.T) {
	r := newAuthRouter(&fakeAccountService{loginErr: utils.ErrInvalidCredentials})

	w := postJSON(r, "/auth/login",
		`{"email":"amelia@example.com","password":"wrong-password"}`)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogin_Success(t *testing.T) {
	r := newAuthRouter(&fakeAccountService{loginToken: "tok-456"})

	w := postJSON(r, "/auth/login",
		`{"email":"amelia@example.com","password":"flying123"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"access_token":"tok-456"`)
}
