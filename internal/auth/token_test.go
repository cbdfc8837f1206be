package auth

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/d3ads3c/cafepanel-sub000/internal/domain"
)

func testClaims() domain.Claims {
	return domain.Claims{
		UserID:      42,
		Username:    "morteza",
		Plan:        "pro",
		CafeName:    "cafe-aseman",
		Permissions: []string{"manage_menu", "manage_orders"},
	}
}

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("fixture-secret")

	claims := testClaims()
	token, err := tm.Sign(&claims, time.Hour)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	verified, err := tm.Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	claims = *verified

	want := testClaims()
	if claims.UserID != want.UserID || claims.Username != want.Username {
		t.Fatalf("identity mismatch: got %+v", claims)
	}
	if claims.Plan != want.Plan || claims.CafeName != want.CafeName {
		t.Fatalf("tenant fields mismatch: got %+v", claims)
	}
	if len(claims.Permissions) != 2 || claims.Permissions[0] != "manage_menu" {
		t.Fatalf("permissions mismatch: got %v", claims.Permissions)
	}
	if claims.ExpiresAt <= time.Now().UnixMilli() {
		t.Fatalf("expected future exp, got %d", claims.ExpiresAt)
	}
}

func TestTokenTamperRejection(t *testing.T) {
	tm := NewTokenManager("fixture-secret")

	claims := testClaims()
	token, err := tm.Sign(&claims, time.Hour)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	payload := strings.SplitN(token, ".", 2)[0]
	for i := 0; i < len(payload); i++ {
		flipped := []byte(token)
		if flipped[i] == 'A' {
			flipped[i] = 'B'
		} else {
			flipped[i] = 'A'
		}
		if string(flipped) == token {
			continue
		}
		if _, err := tm.Verify(string(flipped)); err == nil {
			t.Fatalf("tampered payload at index %d accepted", i)
		}
	}
}

func TestTokenExpiry(t *testing.T) {
	tm := NewTokenManager("fixture-secret")

	claims := testClaims()
	token, err := tm.Sign(&claims, -time.Millisecond)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := tm.Verify(token); err == nil {
		t.Fatal("expired token accepted")
	}
}

func TestTokenExpiryBoundary(t *testing.T) {
	tm := NewTokenManager("fixture-secret")

	issued := time.Now()
	tm.now = func() time.Time { return issued }
	claims := testClaims()
	token, err := tm.Sign(&claims, time.Second)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	// 1ms past exp must reject
	tm.now = func() time.Time { return issued.Add(time.Second + time.Millisecond) }
	if _, err := tm.Verify(token); err == nil {
		t.Fatal("token 1ms past exp accepted")
	}

	// just before exp must verify
	tm.now = func() time.Time { return issued.Add(time.Second - time.Millisecond) }
	if _, err := tm.Verify(token); err != nil {
		t.Fatalf("token before exp rejected: %v", err)
	}
}

func TestTokenMalformedInputs(t *testing.T) {
	tm := NewTokenManager("fixture-secret")

	cases := []string{
		"",
		"onlyonepart",
		"a.b.c",
		".tagonly",
		"!!notbase64!!.tag",
	}
	for _, token := range cases {
		if _, err := tm.Verify(token); err == nil {
			t.Fatalf("malformed token %q accepted", token)
		}
	}
}

func TestTokenNonNumericExp(t *testing.T) {
	tm := NewTokenManager("fixture-secret")

	payload := base64.RawURLEncoding.EncodeToString([]byte(`{"userId":1,"exp":"soon"}`))
	token := payload + "." + tm.tag(payload)
	if _, err := tm.Verify(token); err == nil {
		t.Fatal("token with non-numeric exp accepted")
	}
}

func TestTokenWrongSecret(t *testing.T) {
	signer := NewTokenManager("secret-a")
	verifier := NewTokenManager("secret-b")

	claims := testClaims()
	token, err := signer.Sign(&claims, time.Hour)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := verifier.Verify(token); err == nil {
		t.Fatal("token signed with different secret accepted")
	}
}

func TestSignStampsCallerClaims(t *testing.T) {
	tm := NewTokenManager("fixture-secret")
	issued := time.Unix(1_700_000_000, 0)
	tm.now = func() time.Time { return issued }

	claims := testClaims()
	token, err := tm.Sign(&claims, time.Hour)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	want := issued.Add(time.Hour).UnixMilli()
	if claims.ExpiresAt != want {
		t.Fatalf("caller claims exp = %d, want %d", claims.ExpiresAt, want)
	}

	parsed, err := tm.Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if parsed.ExpiresAt != claims.ExpiresAt {
		t.Fatalf("token exp %d diverges from caller claims exp %d", parsed.ExpiresAt, claims.ExpiresAt)
	}
}
