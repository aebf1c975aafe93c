package jwt

import (
	"errors"
	"strings"
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
)

func TestGenerateAndVerify_RoundTrip(t *testing.T) {
	m := NewManager("secret", 0)
	if m.ttl != DefaultTTL {
		t.Fatalf("expected default ttl, got %v", m.ttl)
	}

	tok, err := m.GenerateToken(42, "a@example.com")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	claims, err := m.Verify(tok)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.UserID != 42 || claims.Email != "a@example.com" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if got := claims.ExpiresAt.Sub(claims.IssuedAt.Time); got != 7*24*time.Hour {
		t.Fatalf("expected 7 day lifetime, got %v", got)
	}
}

func TestVerify_Missing(t *testing.T) {
	m := NewManager("secret", time.Hour)
	for _, in := range []string{"", "   "} {
		if _, err := m.Verify(in); !errors.Is(err, ErrMissingToken) {
			t.Fatalf("Verify(%q) = %v; want ErrMissingToken", in, err)
		}
	}
}

func TestVerify_TamperedAndWrongSecret(t *testing.T) {
	m := NewManager("secret", time.Hour)
	tok, err := m.GenerateToken(1, "x@example.com")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	// Flip a character in the signature segment.
	sig := tok[strings.LastIndex(tok, ".")+1:]
	flipped := "A"
	if sig[0] == 'A' {
		flipped = "B"
	}
	tampered := tok[:strings.LastIndex(tok, ".")+1] + flipped + sig[1:]

	if _, err := m.Verify(tampered); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("tampered token: got %v; want ErrInvalidToken", err)
	}
	if _, err := NewManager("other", time.Hour).Verify(tok); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("wrong secret: got %v; want ErrInvalidToken", err)
	}
	if _, err := m.Verify("not-a-jwt"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("garbage: got %v; want ErrInvalidToken", err)
	}
}

func TestVerify_Expired(t *testing.T) {
	m := NewManager("secret", time.Hour)
	issued := time.Now().Add(-2 * time.Hour)
	m.now = func() time.Time { return issued }
	tok, err := m.GenerateToken(7, "old@example.com")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	m.now = time.Now
	if _, err := m.Verify(tok); !errors.Is(err, ErrExpiredToken) {
		t.Fatalf("got %v; want ErrExpiredToken", err)
	}
}

func TestVerify_RejectsOtherAlgorithms(t *testing.T) {
	m := NewManager("secret", time.Hour)
	claims := Claims{
		UserID: 3,
		RegisteredClaims: gojwt.RegisteredClaims{
			ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	tok, err := gojwt.NewWithClaims(gojwt.SigningMethodHS512, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := m.Verify(tok); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("HS512 token: got %v; want ErrInvalidToken", err)
	}

	none, err := gojwt.NewWithClaims(gojwt.SigningMethodNone, claims).SignedString(gojwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign none: %v", err)
	}
	if _, err := m.Verify(none); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("none token: got %v; want ErrInvalidToken", err)
	}
}

func TestVerify_RequiresUserID(t *testing.T) {
	m := NewManager("secret", time.Hour)
	tok, err := m.GenerateToken(0, "nobody@example.com")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if _, err := m.Verify(tok); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("got %v; want ErrInvalidToken", err)
	}
}

func TestBearerToken(t *testing.T) {
	cases := map[string]string{
		"Bearer abc":       "abc",
		"bearer abc":       "abc",
		"Bearer":           "",
		"Basic abc":        "abc",
		"Basic":            "",
		"":                 "",
		"Bearer a b":       "a",
		"  Bearer   xyz  ": "xyz",
	}
	for in, want := range cases {
		if got := BearerToken(in); got != want {
			t.Fatalf("BearerToken(%q) = %q; want %q", in, got, want)
		}
	}
}
