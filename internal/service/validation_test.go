package service

import "testing"

func TestValidEmailDomain(t *testing.T) {
	valid := []string{"example.com", "mail.example.co.in", "bücher.de"}
	for _, domain := range valid {
		if !validEmailDomain(domain) {
			t.Fatalf("expected %q to be valid", domain)
		}
	}

	invalid := []string{"localhost", "-bad-.com", "double..dot.com", "trail-.com"}
	for _, domain := range invalid {
		if validEmailDomain(domain) {
			t.Fatalf("expected %q to be invalid", domain)
		}
	}
}

func TestNormalizePhone(t *testing.T) {
	if got := normalizePhone("9876543210", "IN"); got != "+919876543210" {
		t.Fatalf("expected Indian mobile in E.164, got %q", got)
	}
	if got := normalizePhone("+91 98765 43210", ""); got != "+919876543210" {
		t.Fatalf("expected default region parse, got %q", got)
	}
	if got := normalizePhone("12", "IN"); got != "" {
		t.Fatalf("expected empty for too-short number, got %q", got)
	}
	if got := normalizePhone("", "IN"); got != "" {
		t.Fatalf("expected empty for blank input, got %q", got)
	}
}
