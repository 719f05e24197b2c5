package utils

import (
	"bytes"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/ast"
)

// PlainText remove a formatação markdown de descrições de ocorrência e devolve
// o texto em uma única linha, pronto para indexação.
func PlainText(text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}

	doc := markdown.Parse([]byte(text), nil)

	var buf bytes.Buffer
	collectText(doc, &buf)

	return strings.Join(strings.Fields(buf.String()), " ")
}

func collectText(node ast.Node, buf *bytes.Buffer) {
	switch n := node.(type) {
	case *ast.Text:
		buf.Write(n.Literal)
		return
	case *ast.Code:
		buf.Write(n.Literal)
		return
	case *ast.CodeBlock:
		buf.Write(n.Literal)
		buf.WriteString(" ")
		return
	case *ast.Hardbreak, *ast.Softbreak:
		buf.WriteString(" ")
		return
	case *ast.HTMLBlock, *ast.HTMLSpan:
		return
	}

	container := node.AsContainer()
	if container == nil {
		return
	}

	for _, child := range container.Children {
		collectText(child, buf)
	}

	switch node.(type) {
	case *ast.Paragraph, *ast.Heading, *ast.ListItem, *ast.TableCell:
		buf.WriteString(" ")
	}
}
