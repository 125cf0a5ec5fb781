package handler

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v5"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func sign(secret, body string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(body))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestWebhookAuth(t *testing.T) {
	const secret = "shhh"
	h := WebhookAuth(secret)(okHandler())

	tests := []struct {
		name string
		sig  string
		want int
	}{
		{"firma válida", sign(secret, `{"event":"review.created"}`), http.StatusOK},
		{"firma inválida", "deadbeef", http.StatusUnauthorized},
		{"sin firma", "", http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/retrain",
				strings.NewReader(`{"event":"review.created"}`))
			if tt.sig != "" {
				req.Header.Set("X-Webhook-Signature", tt.sig)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			if rec.Code != tt.want {
				t.Errorf("status = %d, esperaba %d", rec.Code, tt.want)
			}
		})
	}
}

func adminToken(t *testing.T, secret, role string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "64fa12ab34cd56ef78ab90cd",
		"role": role,
	})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatal(err)
	}
	return signed
}

func TestJWTAuthAndAdminOnly(t *testing.T) {
	const secret = "super-secret"
	h := JWTAuth(secret)(AdminOnly()(okHandler()))

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"admin válido", "Bearer " + adminToken(t, secret, "admin"), http.StatusOK},
		{"usuario normal", "Bearer " + adminToken(t, secret, "customer"), http.StatusForbidden},
		{"firma con otro secreto", "Bearer " + adminToken(t, "otro", "admin"), http.StatusUnauthorized},
		{"sin header", "", http.StatusUnauthorized},
		{"header malformado", "Token xyz", http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/retrain", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			if rec.Code != tt.want {
				t.Errorf("status = %d, esperaba %d", rec.Code, tt.want)
			}
		})
	}
}
