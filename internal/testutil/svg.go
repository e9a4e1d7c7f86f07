package testutil

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"testing"
)

// RequireSVG fails t unless data is well-formed XML whose root element is
// <svg>. It returns the number of elements in the document.
func RequireSVG(t *testing.T, data []byte) int {
	t.Helper()
	dec := xml.NewDecoder(bytes.NewReader(data))
	elements := 0
	root := ""
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			t.Fatalf("invalid SVG: %v", err)
		}
		if se, ok := tok.(xml.StartElement); ok {
			if root == "" {
				root = se.Name.Local
			}
			elements++
		}
	}
	if root != "svg" {
		t.Fatalf("root element = %q, want svg", root)
	}
	return elements
}
