package utils

import "testing"

func TestTokenRoundtrip(t *testing.T) {
	token, err := GenerateToken(42, "9876543210")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.FarmerID != 42 {
		t.Errorf("farmer id = %d, want 42", claims.FarmerID)
	}
	if claims.Phone != "9876543210" {
		t.Errorf("phone = %q", claims.Phone)
	}
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	if _, err := ParseToken("not.a.token"); err == nil {
		t.Fatal("expected error for malformed token")
	}
	if _, err := ParseToken(""); err == nil {
		t.Fatal("expected error for empty token")
	}
}
