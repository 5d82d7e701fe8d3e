package markdown

import (
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Problem is one issue found while auditing a rendered document.
type Problem struct {
	Document string
	Detail   string
}

// String implements fmt.Stringer.
func (p Problem) String() string {
	return fmt.Sprintf("%s: %s", p.Document, p.Detail)
}

// Verify parses a rendered document with Goldmark and audits the structure
// the renderer is expected to produce. It reports links and images with empty
// destinations and headings with empty titles; generated output should never
// contain either.
func Verify(doc Document) []Problem {
	body := []byte(doc.String())
	root := goldmark.New().Parser().Parse(text.NewReader(body))

	var problems []Problem
	report := func(format string, args ...any) {
		problems = append(problems, Problem{Document: doc.Name, Detail: fmt.Sprintf(format, args...)})
	}

	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *gmast.Link:
			if len(node.Destination) == 0 {
				report("link with empty destination")
			}
		case *gmast.Image:
			if len(node.Destination) == 0 {
				report("image with empty destination")
			}
		case *gmast.Heading:
			if strings.TrimSpace(string(node.Text(body))) == "" {
				report("heading with empty title at level %d", node.Level)
			}
		}
		return gmast.WalkContinue, nil
	})
	return problems
}
