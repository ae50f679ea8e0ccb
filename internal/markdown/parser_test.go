package markdown

import (
	"strings"
	"testing"
)

func TestParseRendersHTML(t *testing.T) {
	p := NewParser()

	html, err := p.Parse([]byte("# Terms\n\nSome **bold** text."))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	out := string(html)
	if !strings.Contains(out, "<h1") || !strings.Contains(out, "<strong>bold</strong>") {
		t.Errorf("unexpected output: %s", out)
	}
}

func TestParseWithFrontmatter(t *testing.T) {
	p := NewParser()

	source := []byte("---\ntitle: Club Terms\ncategory: club\n---\n\nBody text.\n")
	html, meta, err := p.ParseWithFrontmatter(source)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if meta["title"] != "Club Terms" || meta["category"] != "club" {
		t.Errorf("meta = %v", meta)
	}
	if strings.Contains(string(html), "title:") {
		t.Error("frontmatter leaked into the rendered body")
	}
	if !strings.Contains(string(html), "Body text.") {
		t.Errorf("body missing from output: %s", html)
	}
}

func TestParseWithoutFrontmatter(t *testing.T) {
	p := NewParser()

	_, meta, err := p.ParseWithFrontmatter([]byte("Plain body.\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(meta) != 0 {
		t.Errorf("meta = %v, want empty", meta)
	}
}
