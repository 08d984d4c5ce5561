package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	pkgErrors "fintrack-api/pkg/errors"

	"github.com/gin-gonic/gin"
)

func record(t *testing.T, handler gin.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/test", handler)

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{
			name:       "validation error",
			err:        pkgErrors.NewValidationError(400, "email", "is required"),
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "validation collector",
			err: pkgErrors.NewValidationErrorCollector().
				Add(pkgErrors.NewValidationError(400, "email", "is required")).
				Add(pkgErrors.NewValidationError(400, "password", "is required")),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "conflict error",
			err:        pkgErrors.NewConflictError().Add("email", "Email already exists"),
			wantStatus: http.StatusConflict,
		},
		{
			name:       "http error carries its status",
			err:        pkgErrors.NewHTTPError(401, "Unauthorized", http.StatusUnauthorized),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "unknown error is internal",
			err:        errors.New("pq: connection refused"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := record(t, func(c *gin.Context) { Error(c, tc.err) })
			if w.Code != tc.wantStatus {
				t.Errorf("status = %d, want %d, body: %s", w.Code, tc.wantStatus, w.Body.String())
			}
		})
	}
}

func TestInternalErrorIsSanitized(t *testing.T) {
	w := record(t, func(c *gin.Context) {
		Error(c, errors.New("pq: password authentication failed for user app"))
	})

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	body := w.Body.String()
	if strings.Contains(body, "pq:") || strings.Contains(body, "password authentication") {
		t.Errorf("internal detail leaked: %s", body)
	}
	if !strings.Contains(body, DefaultErrorMessage) {
		t.Errorf("missing generic message in %s", body)
	}
}

func TestConflictErrorNamesFields(t *testing.T) {
	conflict := pkgErrors.NewConflictError().
		Add("email", "Email already exists").
		Add("username", "Username already exists")

	w := record(t, func(c *gin.Context) { Error(c, conflict) })

	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", w.Code)
	}

	var resp Resp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	fields, ok := resp.Errors.(map[string]any)
	if !ok {
		t.Fatalf("errors is %T, want object", resp.Errors)
	}
	if _, ok := fields["email"]; !ok {
		t.Error("missing email conflict")
	}
	if _, ok := fields["username"]; !ok {
		t.Error("missing username conflict")
	}
}

func TestErrorWithMap(t *testing.T) {
	sentinel := errors.New("record not found")
	mapping := ErrorMapping{
		sentinel: pkgErrors.NewUnauthorizedHTTPErrorWithMessage("Record not found"),
	}

	w := record(t, func(c *gin.Context) { ErrorWithMap(c, sentinel, mapping) })
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}

	// Unmapped errors fall back to the generic 500 path.
	w = record(t, func(c *gin.Context) { ErrorWithMap(c, errors.New("boom"), mapping) })
	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
}

func TestOKEnvelope(t *testing.T) {
	w := record(t, func(c *gin.Context) { OK(c, gin.H{"hello": "world"}) })

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp Resp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.ErrorCode != 0 || resp.Message != MessageSuccess {
		t.Errorf("envelope = %+v", resp)
	}
}

func TestNoContent(t *testing.T) {
	w := record(t, func(c *gin.Context) { NoContent(c) })

	if w.Code != http.StatusNoContent {
		t.Errorf("status = %d, want 204", w.Code)
	}
	if w.Body.Len() != 0 {
		t.Errorf("body = %q, want empty", w.Body.String())
	}
}
