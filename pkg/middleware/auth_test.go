package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func authedHandler(t *testing.T, gotUserID *string) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*gotUserID = GetUserIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthHeaderFallback(t *testing.T) {
	var gotUserID string
	handler := Auth(AuthConfig{AllowHeaderFallback: true})(authedHandler(t, &gotUserID))

	req := httptest.NewRequest(http.MethodGet, "/pup/payment-accounts/mine", nil)
	req.Header.Set("X-User-Id", "42")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if gotUserID != "42" {
		t.Errorf("user id from context = %q, want 42", gotUserID)
	}
}

func TestAuthRejectsUnauthenticated(t *testing.T) {
	tests := []struct {
		name    string
		cfg     AuthConfig
		prepare func(r *http.Request)
	}{
		{
			name: "no credentials",
			cfg:  AuthConfig{AllowHeaderFallback: true},
		},
		{
			name: "fallback disabled ignores header",
			cfg:  AuthConfig{AllowHeaderFallback: false},
			prepare: func(r *http.Request) {
				r.Header.Set("X-User-Id", "42")
			},
		},
		{
			name: "malformed bearer header",
			cfg:  AuthConfig{AllowHeaderFallback: true},
			prepare: func(r *http.Request) {
				r.Header.Set("Authorization", "Token abc")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotUserID string
			handler := Auth(tt.cfg)(authedHandler(t, &gotUserID))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.prepare != nil {
				tt.prepare(req)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
			}
			if gotUserID != "" {
				t.Errorf("handler ran with user id %q", gotUserID)
			}
		})
	}
}

func TestGetUserIDFromContextMissing(t *testing.T) {
	if got := GetUserIDFromContext(context.Background()); got != "" {
		t.Errorf("GetUserIDFromContext() on empty context = %q, want empty", got)
	}
}

func TestRateLimiterExhaustion(t *testing.T) {
	rl := newRateLimiter(2, time.Minute)

	if !rl.allow("10.0.0.1") || !rl.allow("10.0.0.1") {
		t.Fatal("first two requests should be allowed")
	}
	if rl.allow("10.0.0.1") {
		t.Error("third request should be rejected")
	}
	// A different client has its own bucket.
	if !rl.allow("10.0.0.2") {
		t.Error("other client should not be affected")
	}
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name    string
		remote  string
		headers map[string]string
		want    string
	}{
		{
			name:   "remote addr",
			remote: "192.0.2.1:1234",
			want:   "192.0.2.1",
		},
		{
			name:    "x-forwarded-for takes first hop",
			remote:  "10.0.0.1:1234",
			headers: map[string]string{"X-Forwarded-For": "203.0.113.7, 10.0.0.1"},
			want:    "203.0.113.7",
		},
		{
			name:    "x-real-ip",
			remote:  "10.0.0.1:1234",
			headers: map[string]string{"X-Real-IP": "203.0.113.9"},
			want:    "203.0.113.9",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			if got := clientIP(req); got != tt.want {
				t.Errorf("clientIP() = %q, want %q", got, tt.want)
			}
		})
	}
}
