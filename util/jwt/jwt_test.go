package jwt

import "testing"

func TestIssueAndParse(t *testing.T) {
	tok, err := Issue("s3cret", "0xabc", 1)
	if err != nil {
		t.Fatal(err)
	}

	claims, err := ParseAuth("Bearer "+tok, "s3cret")
	if err != nil {
		t.Fatal(err)
	}
	if got := claims["sub"]; got != "0xabc" {
		t.Fatalf("sub = %v; want 0xabc", got)
	}

	// raw token without the Bearer prefix also parses
	if _, err := ParseAuth(tok, "s3cret"); err != nil {
		t.Fatalf("raw token: %v", err)
	}
}

func TestParseRejectsBadInput(t *testing.T) {
	tok, err := Issue("s3cret", "0xabc", 1)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := ParseAuth("Bearer "+tok, "wrong"); err == nil {
		t.Fatal("wrong secret must fail")
	}
	if _, err := ParseAuth("", "s3cret"); err == nil {
		t.Fatal("empty header must fail")
	}
	if _, err := ParseAuth("Bearer not.a.jwt", "s3cret"); err == nil {
		t.Fatal("garbage token must fail")
	}
}
