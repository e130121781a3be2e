package btcbasis

import (
	"os"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// TestReadmeStructure parses README.md and checks the sections and command
// examples the documentation promises are actually there.
func TestReadmeStructure(t *testing.T) {
	content, err := os.ReadFile("README.md")
	if err != nil {
		t.Fatalf("failed to read README.md: %v", err)
	}

	mdParser := goldmark.DefaultParser()
	root := mdParser.Parse(text.NewReader(content))

	var headings []string
	var commands []string

	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch v := n.(type) {
		case *ast.Heading:
			var b strings.Builder
			for i := 0; i < v.Lines().Len(); i++ {
				line := v.Lines().At(i)
				b.Write(line.Value(content))
			}
			headings = append(headings, b.String())
		case *ast.FencedCodeBlock:
			if v.Info == nil || string(v.Info.Segment.Value(content)) != "bash" {
				return ast.WalkContinue, nil
			}
			for i := 0; i < v.Lines().Len(); i++ {
				line := v.Lines().At(i)
				commands = append(commands, strings.TrimSpace(string(line.Value(content))))
			}
		}
		return ast.WalkContinue, nil
	})

	for _, want := range []string{"btcbasis", "How it works", "Commands", "Errors"} {
		found := false
		for _, h := range headings {
			if h == want {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("README.md is missing the %q section (has %v)", want, headings)
		}
	}

	// every documented command must be one of ours.
	names := map[string]bool{"lots": true, "gains": true, "tx": true}
	for _, c := range commands {
		fields := strings.Fields(c)
		if len(fields) < 2 || fields[0] != "btb" || !names[fields[1]] {
			t.Errorf("README.md documents unknown command %q", c)
		}
	}
	if len(commands) == 0 {
		t.Error("README.md documents no commands at all")
	}
}
