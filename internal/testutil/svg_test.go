package testutil

import "testing"

func TestRequireSVG(t *testing.T) {
	doc := []byte(`<?xml version="1.0"?><svg xmlns="http://www.w3.org/2000/svg"><g><path d="M0 0"/></g></svg>`)
	if n := RequireSVG(t, doc); n != 3 {
		t.Fatalf("elements = %d, want 3", n)
	}
}
