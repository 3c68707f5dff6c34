package utils

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const testUserID = "0195f4c2-7b1e-7c3a-9d10-3f2a1b4c5d6e"

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestGenerateJWTToken_Success(t *testing.T) {
	issuer := "test-issuer"
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	key := "secret-key"

	token, err := GenerateJWTToken(issuer, testUserID, now, time.Hour, key)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}
	if token.Token == nil {
		t.Error("expected non-nil jwt.Token object")
	}

	claims, ok := token.Token.Claims.(*jwt.RegisteredClaims)
	if !ok {
		t.Fatal("could not cast claims to RegisteredClaims")
	}
	if claims.Issuer != issuer {
		t.Errorf("expected issuer %s, got %s", issuer, claims.Issuer)
	}
	if claims.Subject != testUserID {
		t.Errorf("expected subject %q, got %q", testUserID, claims.Subject)
	}
	if !claims.IssuedAt.Equal(now) {
		t.Errorf("expected iat %v, got %v", now, claims.IssuedAt.Time)
	}
	if !claims.ExpiresAt.Equal(now.Add(time.Hour)) {
		t.Errorf("expected exp %v, got %v", now.Add(time.Hour), claims.ExpiresAt.Time)
	}
}

func TestGenerateJWTToken_NoIssuer(t *testing.T) {
	token, err := GenerateJWTToken("", testUserID, time.Now(), time.Hour, "key")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.Issuer != "" {
		t.Errorf("expected empty issuer, got %q", token.Issuer)
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		userID   string
		duration time.Duration
		key      string
	}{
		{"empty user id", "", time.Hour, "key"},
		{"zero duration", testUserID, 0, "key"},
		{"empty key", testUserID, time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken("iss", tt.userID, time.Now(), tt.duration, tt.key)
			if err == nil {
				t.Error("expected error for invalid parameters, got nil")
			}
		})
	}
}

func TestValidateAndParseJWTToken_Success(t *testing.T) {
	now := time.Now()
	genToken, err := GenerateJWTToken("test-issuer", testUserID, now, 5*time.Minute, "secret-key")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	parsedToken, err := ValidateAndParseJWTToken(genToken.SignedString, "secret-key", "test-issuer", fixedClock(now))

	if err != nil {
		t.Fatalf("expected token to be valid, got error: %v", err)
	}
	if parsedToken.UserID != testUserID {
		t.Errorf("expected userID %q, got %q", testUserID, parsedToken.UserID)
	}
}

func TestValidateAndParseJWTToken_IssuerNotChecked_WhenUnset(t *testing.T) {
	now := time.Now()
	genToken, _ := GenerateJWTToken("any-issuer", testUserID, now, time.Hour, "key")

	if _, err := ValidateAndParseJWTToken(genToken.SignedString, "key", "", fixedClock(now)); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateAndParseJWTToken_InvalidKey(t *testing.T) {
	genToken, _ := GenerateJWTToken("", testUserID, time.Now(), time.Hour, "correct-key")

	_, err := ValidateAndParseJWTToken(genToken.SignedString, "wrong-key", "", nil)
	if !errors.Is(err, jwt.ErrTokenSignatureInvalid) {
		t.Errorf("expected signature error, got %v", err)
	}
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	issuedAt := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	genToken, _ := GenerateJWTToken("", testUserID, issuedAt, 24*time.Hour, "key")

	_, err := ValidateAndParseJWTToken(genToken.SignedString, "key", "", fixedClock(issuedAt.Add(24*time.Hour+time.Second)))
	if !errors.Is(err, jwt.ErrTokenExpired) {
		t.Errorf("expected jwt.ErrTokenExpired, got %v", err)
	}
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	genToken, _ := GenerateJWTToken("real-issuer", testUserID, time.Now(), time.Hour, "key")

	_, err := ValidateAndParseJWTToken(genToken.SignedString, "key", "fake-issuer", nil)
	if !errors.Is(err, jwt.ErrTokenInvalidIssuer) {
		t.Errorf("expected jwt.ErrTokenInvalidIssuer, got %v", err)
	}
}

func TestValidateAndParseJWTToken_WrongAlgorithm(t *testing.T) {
	claims := jwt.RegisteredClaims{
		Subject:   testUserID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("key"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	_, err = ValidateAndParseJWTToken(signed, "key", "", nil)
	if err == nil {
		t.Fatal("expected error for HS512 token, got nil")
	}
}

func TestValidateAndParseJWTToken_EmptySubject(t *testing.T) {
	claims := jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))}
	signed, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("key"))

	_, err := ValidateAndParseJWTToken(signed, "key", "", nil)
	if !errors.Is(err, ErrEmptySubject) {
		t.Errorf("expected ErrEmptySubject, got %v", err)
	}
}

func TestValidateAndParseJWTToken_TamperedSignature(t *testing.T) {
	genToken, _ := GenerateJWTToken("", testUserID, time.Now(), time.Hour, "key")
	parts := strings.Split(genToken.SignedString, ".")
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	_, err := ValidateAndParseJWTToken(tampered, "key", "", nil)
	if err == nil {
		t.Fatal("expected error for tampered token, got nil")
	}
}

func TestValidateAndParseJWTToken_Malformed(t *testing.T) {
	_, err := ValidateAndParseJWTToken("not.a.token", "key", "iss", nil)
	if !errors.Is(err, jwt.ErrTokenMalformed) {
		t.Errorf("expected jwt.ErrTokenMalformed, got %v", err)
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "bearer", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "lowercase scheme", header: "bearer abc", want: "abc"},
		{name: "raw token", header: "abc.def.ghi", want: "abc.def.ghi"},
		{name: "surrounding spaces", header: "  Bearer   abc  ", want: "abc"},
		{name: "empty", header: "", want: ""},
		{name: "scheme only", header: "Bearer", wantErr: true},
		{name: "other scheme", header: "Basic dXNlcjpwYXNz", wantErr: true},
		{name: "too many parts", header: "Bearer a b", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidAuthorizationHeader) {
					t.Fatalf("expected ErrInvalidAuthorizationHeader, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestParseUserIDFromJWT(t *testing.T) {
	genToken, _ := GenerateJWTToken("", testUserID, time.Now(), time.Hour, "key")

	id, err := ParseUserIDFromJWT(genToken.SignedString)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != testUserID {
		t.Errorf("expected %q, got %q", testUserID, id)
	}

	if _, err := ParseUserIDFromJWT("garbage"); err == nil {
		t.Error("expected error for garbage token")
	}
}
