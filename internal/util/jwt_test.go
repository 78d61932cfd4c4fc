package util

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signed(t *testing.T, claims Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("api-side-secret"))
	if err != nil {
		t.Fatalf("SignedString: %v", err)
	}
	return token
}

func TestInspectTokenReadsSubjectWithoutKey(t *testing.T) {
	token := signed(t, Claims{
		Email: "ana@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-42",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	claims, err := InspectToken(token)
	if err != nil {
		t.Fatalf("InspectToken returned error: %v", err)
	}
	if claims.Subject != "user-42" || claims.Email != "ana@example.com" {
		t.Fatalf("unexpected claims %+v", claims)
	}
}

func TestInspectTokenIgnoresExpiry(t *testing.T) {
	token := signed(t, Claims{RegisteredClaims: jwt.RegisteredClaims{
		Subject:   "user-7",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
	}})
	claims, err := InspectToken(token)
	if err != nil {
		t.Fatalf("InspectToken returned error: %v", err)
	}
	if claims.Subject != "user-7" {
		t.Fatalf("unexpected subject %q", claims.Subject)
	}
}

func TestInspectTokenRejectsGarbage(t *testing.T) {
	for _, raw := range []string{"", "undefined", "a.b"} {
		if _, err := InspectToken(raw); err == nil {
			t.Fatalf("expected error for %q", raw)
		}
	}
}
