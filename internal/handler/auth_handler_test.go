package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lalindra-code/clearBillCopy/internal/service"
)

type fakeAuthService struct {
	emails map[string]bool
}

func (f *fakeAuthService) SignUp(_ context.Context, req service.SignUpRequest) error {
	email := strings.ToLower(req.Email)
	if len(req.Password) < 8 {
		return service.ErrPasswordTooShort
	}
	if f.emails[email] {
		return service.ErrEmailExists
	}
	f.emails[email] = true
	return nil
}

func (f *fakeAuthService) SignInWithPassword(_ context.Context, req service.SignInRequest) (*service.SessionResponse, error) {
	if !f.emails[strings.ToLower(req.Email)] {
		return nil, service.ErrInvalidCredentials
	}
	return &service.SessionResponse{
		Token:     "session-token",
		ExpiresAt: time.Now().Add(24 * time.Hour),
	}, nil
}

func (f *fakeAuthService) SignInWithGoogle(context.Context, service.GoogleSignInRequest) (*service.SessionResponse, error) {
	return nil, service.ErrInvalidCredentials
}

func (f *fakeAuthService) ForgotPassword(context.Context, string) error { return nil }

func (f *fakeAuthService) ResetPassword(context.Context, service.ResetPasswordRequest) error {
	return service.ErrInvalidResetToken
}

func (f *fakeAuthService) GetUserByID(context.Context, string) (*service.SessionUser, error) {
	return nil, service.ErrInvalidCredentials
}

func newTestRouter(svc service.AuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewAuthHandler(svc).RegisterRoutes(router.Group(""))
	return router
}

func post(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestSignUpEndpoint(t *testing.T) {
	router := newTestRouter(&fakeAuthService{emails: map[string]bool{"taken@example.com": true}})

	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{
			name:       "created",
			body:       `{"name":"New","email":"new@example.com","password":"password123","confirmPassword":"password123"}`,
			wantStatus: http.StatusCreated,
		},
		{
			name:       "missing fields",
			body:       `{"email":"new@example.com"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "short password",
			body:       `{"name":"New","email":"other@example.com","password":"short","confirmPassword":"short"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "duplicate email",
			body:       `{"name":"New","email":"taken@example.com","password":"password123","confirmPassword":"password123"}`,
			wantStatus: http.StatusConflict,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := post(router, "/auth/signup", tt.body)
			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d; body %s", w.Code, tt.wantStatus, w.Body)
			}
		})
	}
}

func TestSignInSetsSessionCookie(t *testing.T) {
	router := newTestRouter(&fakeAuthService{emails: map[string]bool{"user@example.com": true}})

	w := post(router, "/auth/signin", `{"email":"user@example.com","password":"password123"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body %s", w.Code, w.Body)
	}

	cookies := w.Result().Cookies()
	var found bool
	for _, c := range cookies {
		if c.Name == "session_token" && c.Value == "session-token" && c.HttpOnly {
			found = true
		}
	}
	if !found {
		t.Fatalf("no HttpOnly session_token cookie in %v", cookies)
	}
}

func TestSignInUnknownUserIsUnauthorized(t *testing.T) {
	router := newTestRouter(&fakeAuthService{emails: map[string]bool{}})

	w := post(router, "/auth/signin", `{"email":"nobody@example.com","password":"password123"}`)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

// The forgot-password answer must not reveal whether the account exists.
func TestForgotPasswordAnswerIsUniform(t *testing.T) {
	router := newTestRouter(&fakeAuthService{emails: map[string]bool{"known@example.com": true}})

	known := post(router, "/auth/forgot-password", `{"email":"known@example.com"}`)
	unknown := post(router, "/auth/forgot-password", `{"email":"unknown@example.com"}`)

	if known.Code != http.StatusOK || unknown.Code != http.StatusOK {
		t.Fatalf("statuses = %d/%d, want 200/200", known.Code, unknown.Code)
	}
	if known.Body.String() != unknown.Body.String() {
		t.Fatalf("responses differ: %s vs %s", known.Body, unknown.Body)
	}
}

func TestResetPasswordBadToken(t *testing.T) {
	router := newTestRouter(&fakeAuthService{emails: map[string]bool{}})

	w := post(router, "/auth/reset-password", `{"token":"bad","password":"password123","confirmPassword":"password123"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}
