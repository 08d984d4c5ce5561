package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"fintrack-api/internal/auth"
	"fintrack-api/pkg/log"
	"fintrack-api/pkg/response"

	"github.com/gin-gonic/gin"
)

// fakeUseCase records inputs and returns canned results.
type fakeUseCase struct {
	signUpIn  auth.SignUpInput
	signInIn  auth.SignInInput
	refreshIn string

	out auth.AuthOutput
	err error
}

func (f *fakeUseCase) SignUp(_ context.Context, ip auth.SignUpInput) (auth.AuthOutput, error) {
	f.signUpIn = ip
	return f.out, f.err
}

func (f *fakeUseCase) SignIn(_ context.Context, ip auth.SignInInput) (auth.AuthOutput, error) {
	f.signInIn = ip
	return f.out, f.err
}

func (f *fakeUseCase) Refresh(_ context.Context, bearerToken string) (auth.AuthOutput, error) {
	f.refreshIn = bearerToken
	return f.out, f.err
}

func newTestRouter(uc auth.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	l := log.Init(log.ZapConfig{Level: log.LevelFatal, Mode: log.ModeProduction, Encoding: log.EncodingJSON})
	h := New(l, uc)

	r := gin.New()
	group := r.Group("/api/v1")
	group.POST("/auth/sign-up", h.SignUp)
	group.POST("/auth/sign-in", h.SignIn)
	group.POST("/auth/refresh", h.Refresh)
	return r
}

func doJSON(r *gin.Engine, method, path, body string, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func tokenOutput() auth.AuthOutput {
	return auth.AuthOutput{
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
		ExpiresAt:    1700000900,
	}
}

func decodeResp(t *testing.T, w *httptest.ResponseRecorder) response.Resp {
	t.Helper()
	var resp response.Resp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp
}

func TestSignUpHandler(t *testing.T) {
	uc := &fakeUseCase{out: tokenOutput()}
	r := newTestRouter(uc)

	w := doJSON(r, http.MethodPost, "/api/v1/auth/sign-up",
		`{"email":"alice@example.com","username":"alice","password":"password123"}`, nil)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d, body: %s", w.Code, http.StatusCreated, w.Body.String())
	}

	resp := decodeResp(t, w)
	data, ok := resp.Data.(map[string]any)
	if !ok {
		t.Fatalf("data is %T, want object", resp.Data)
	}
	if data["accessToken"] != "access-token" {
		t.Errorf("accessToken = %v", data["accessToken"])
	}
	if data["refreshToken"] != "refresh-token" {
		t.Errorf("refreshToken = %v", data["refreshToken"])
	}
	if data["tokenType"] != "Bearer" {
		t.Errorf("tokenType = %v, want Bearer", data["tokenType"])
	}
	if data["expiresAt"] != float64(1700000900) {
		t.Errorf("expiresAt = %v", data["expiresAt"])
	}

	if uc.signUpIn.Email != "alice@example.com" || uc.signUpIn.Username != "alice" {
		t.Errorf("usecase input = %+v", uc.signUpIn)
	}
}

func TestSignUpHandlerValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: `{`},
		{name: "missing email", body: `{"username":"alice","password":"password123"}`},
		{name: "invalid email", body: `{"email":"not-an-email","username":"alice","password":"password123"}`},
		{name: "missing username", body: `{"email":"alice@example.com","password":"password123"}`},
		{name: "short password", body: `{"email":"alice@example.com","username":"alice","password":"short"}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			uc := &fakeUseCase{out: tokenOutput()}
			r := newTestRouter(uc)

			w := doJSON(r, http.MethodPost, "/api/v1/auth/sign-up", tc.body, nil)
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want %d, body: %s", w.Code, http.StatusBadRequest, w.Body.String())
			}
			if uc.signUpIn.Password != "" {
				t.Error("usecase must not be called on invalid input")
			}
		})
	}
}

func TestSignInHandler(t *testing.T) {
	tests := []struct {
		name       string
		ucErr      error
		wantStatus int
	}{
		{
			name:       "success",
			wantStatus: http.StatusOK,
		},
		{
			name:       "unknown user",
			ucErr:      auth.ErrUserNotFound,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong password",
			ucErr:      auth.ErrIncorrectPassword,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "pool saturated",
			ucErr:      auth.ErrHashingUnavailable,
			wantStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			uc := &fakeUseCase{out: tokenOutput(), err: tc.ucErr}
			r := newTestRouter(uc)

			w := doJSON(r, http.MethodPost, "/api/v1/auth/sign-in",
				`{"username":"alice","password":"password123"}`, nil)
			if w.Code != tc.wantStatus {
				t.Errorf("status = %d, want %d, body: %s", w.Code, tc.wantStatus, w.Body.String())
			}
		})
	}
}

func TestRefreshHandler(t *testing.T) {
	tests := []struct {
		name       string
		header     map[string]string
		ucErr      error
		wantStatus int
		wantToken  string
	}{
		{
			name:       "success",
			header:     map[string]string{"Authorization": "Bearer the-refresh-token"},
			wantStatus: http.StatusOK,
			wantToken:  "the-refresh-token",
		},
		{
			name:       "missing header",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong scheme",
			header:     map[string]string{"Authorization": "Basic abc"},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "invalid token",
			header:     map[string]string{"Authorization": "Bearer bad"},
			ucErr:      auth.ErrTokenInvalid,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "access scope rejected",
			header:     map[string]string{"Authorization": "Bearer access"},
			ucErr:      auth.ErrInvalidScope,
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			uc := &fakeUseCase{out: tokenOutput(), err: tc.ucErr}
			r := newTestRouter(uc)

			w := doJSON(r, http.MethodPost, "/api/v1/auth/refresh", "", tc.header)
			if w.Code != tc.wantStatus {
				t.Errorf("status = %d, want %d, body: %s", w.Code, tc.wantStatus, w.Body.String())
			}
			if tc.wantToken != "" && uc.refreshIn != tc.wantToken {
				t.Errorf("refresh token passed = %q, want %q", uc.refreshIn, tc.wantToken)
			}
		})
	}
}
