package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

var testSecret = []byte("test-secret")

func protected(roles ...string) http.Handler {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := GetUserIDFromContext(r.Context()); err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	})
	return Authenticate(testSecret, nil)(Authorize(roles...)(ok))
}

func request(t *testing.T, h http.Handler, authHeader string) int {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/tournaments", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec.Code
}

func TestAuthenticateAndAuthorize(t *testing.T) {
	organizer, err := SignToken(testSecret, 7, RoleOrganizer, time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	player, _ := SignToken(testSecret, 8, "user", time.Hour)
	expired, _ := SignToken(testSecret, 7, RoleOrganizer, -time.Hour)
	foreign, _ := SignToken([]byte("other"), 7, RoleOrganizer, time.Hour)

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"no header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized},
		{"garbage token", "Bearer not-a-jwt", http.StatusUnauthorized},
		{"expired", "Bearer " + expired, http.StatusUnauthorized},
		{"wrong secret", "Bearer " + foreign, http.StatusUnauthorized},
		{"wrong role", "Bearer " + player, http.StatusForbidden},
		{"organizer", "Bearer " + organizer, http.StatusOK},
	}
	h := protected(RoleOrganizer, RoleAdmin)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := request(t, h, tt.header); got != tt.want {
				t.Fatalf("status = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestAuthenticateRejectsNoneAlgorithm(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"user_id": 1, "role": RoleAdmin})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatal(err)
	}
	if got := request(t, protected(RoleAdmin), "Bearer "+signed); got != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", got)
	}
}

func TestGetUserIDFromContext(t *testing.T) {
	tests := []struct {
		name    string
		claims  jwt.MapClaims
		want    int
		wantErr bool
	}{
		{"float", jwt.MapClaims{"user_id": float64(12)}, 12, false},
		{"string", jwt.MapClaims{"user_id": "15"}, 15, false},
		{"fraction", jwt.MapClaims{"user_id": 1.5}, 0, true},
		{"zero", jwt.MapClaims{"user_id": float64(0)}, 0, true},
		{"missing", jwt.MapClaims{}, 0, true},
		{"bool", jwt.MapClaims{"user_id": true}, 0, true},
	}
	for _, tt := range tests {
		got, err := GetUserIDFromContext(WithClaims(context.Background(), tt.claims))
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("%s: got (%d, %v), want %d (err=%v)", tt.name, got, err, tt.want, tt.wantErr)
		}
	}

	if _, err := GetUserIDFromContext(context.Background()); err == nil {
		t.Error("expected an error without claims")
	}
}
