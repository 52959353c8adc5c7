package request

import "testing"

func TestSubdomainCreateRequest_Resolvers(t *testing.T) {
	r := SubdomainCreateRequest{Label: " MySite ", ServiceID: " s1 "}
	if got := r.ResolveLabel(); got != "mysite" {
		t.Fatalf("expected mysite, got %q", got)
	}
	if got := r.ResolveServiceID(); got != "s1" {
		t.Fatalf("expected s1, got %q", got)
	}

	r2 := SubdomainCreateRequest{Label: "mysite"}
	if got := r2.ResolveServiceID(); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}
