package daykeep

import (
	"os"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// TestReadmeStructure parses README.md and checks that the documented
// surface is present: a single title, the expected sections, and runnable
// command examples.
func TestReadmeStructure(t *testing.T) {
	source, err := os.ReadFile("README.md")
	if err != nil {
		t.Fatalf("failed to read README.md: %v", err)
	}

	doc := goldmark.DefaultParser().Parse(text.NewReader(source))

	var h1 []string
	headings := make(map[string]bool)
	bashBlocks := 0

	err = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Heading:
			title := string(node.Lines().Value(source))
			if node.Level == 1 {
				h1 = append(h1, title)
			}
			headings[title] = true
		case *ast.FencedCodeBlock:
			if string(node.Language(source)) == "bash" {
				bashBlocks++
			}
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		t.Fatalf("failed to walk README.md: %v", err)
	}

	if len(h1) != 1 || h1[0] != "daykeep" {
		t.Errorf("README must have exactly one title 'daykeep', got %v", h1)
	}
	for _, section := range []string{"Install", "Usage", "Data", "Configuration"} {
		if !headings[section] {
			t.Errorf("README is missing the %q section", section)
		}
	}
	if bashBlocks < 3 {
		t.Errorf("README has %d bash examples, want at least 3", bashBlocks)
	}
}
