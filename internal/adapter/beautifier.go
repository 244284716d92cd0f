package adapter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/html"
)

const defaultIndent = "  "

// Beautifier normalizes the layout of a markup file after a textual edit.
type Beautifier interface {
	Beautify(ctx context.Context, content []byte) ([]byte, error)
}

// HTMLBeautifier re-indents HTML documents. Element children are indented one
// level, except the children of <html>. Text and inline elements stay on the
// line they share with their neighbours. Inline script and style bodies are
// re-indented by bracket depth; pre and textarea are kept verbatim.
type HTMLBeautifier struct {
	indent string
}

// NewHTMLBeautifier returns a beautifier that indents with two spaces.
func NewHTMLBeautifier() *HTMLBeautifier {
	return &HTMLBeautifier{indent: defaultIndent}
}

type nodeKind int

const (
	elementNode nodeKind = iota
	textNode
	rawNode
	// strayNode is an end tag without a matching open element.
	strayNode
)

type htmlNode struct {
	kind     nodeKind
	name     string
	tag      string
	text     string
	closed   bool
	children []*htmlNode
}

var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}

var inlineElements = map[string]bool{
	"a": true, "abbr": true, "acronym": true, "b": true, "bdi": true, "bdo": true,
	"big": true, "br": true, "button": true, "cite": true, "code": true, "data": true,
	"del": true, "dfn": true, "em": true, "i": true, "img": true, "input": true,
	"ins": true, "kbd": true, "label": true, "mark": true, "q": true, "s": true,
	"samp": true, "small": true, "span": true, "strike": true, "strong": true,
	"sub": true, "sup": true, "time": true, "tt": true, "u": true, "var": true,
	"wbr": true,
}

var codeElements = map[string]bool{"script": true, "style": true}

var verbatimElements = map[string]bool{"pre": true, "textarea": true}

// Beautify parses content and writes it back with normalized indentation.
func (b *HTMLBeautifier) Beautify(ctx context.Context, content []byte) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	root, err := parseHTML(content)
	if err != nil {
		return nil, err
	}

	var out strings.Builder
	b.renderChildren(&out, root, 0)

	return []byte(out.String()), nil
}

func parseHTML(content []byte) (*htmlNode, error) {
	root := &htmlNode{kind: elementNode}
	stack := []*htmlNode{root}

	var (
		open     *htmlNode
		verbatim *htmlNode
	)

	top := func() *htmlNode { return stack[len(stack)-1] }

	lexer := html.NewLexer(parse.NewInputBytes(content))

	for {
		tt, data := lexer.Next()

		if verbatim != nil && tt != html.ErrorToken {
			if tt == html.EndTagToken && strings.EqualFold(string(lexer.Text()), verbatim.name) {
				verbatim.closed = true
				verbatim = nil

				continue
			}

			verbatim.text += string(data)

			continue
		}

		switch tt {
		case html.ErrorToken:
			if errors.Is(lexer.Err(), io.EOF) {
				return root, nil
			}

			return nil, fmt.Errorf("parsing html: %w", lexer.Err())
		case html.StartTagToken:
			name := strings.ToLower(string(lexer.Text()))
			open = &htmlNode{kind: elementNode, name: name, tag: "<" + name}
		case html.AttributeToken:
			if open != nil {
				open.tag += " " + strings.TrimSpace(string(data))
			}
		case html.StartTagCloseToken:
			if open == nil {
				continue
			}

			open.tag += ">"
			parent := top()
			parent.children = append(parent.children, open)

			switch {
			case voidElements[open.name]:
			case verbatimElements[open.name]:
				verbatim = open
			default:
				stack = append(stack, open)
			}

			open = nil
		case html.StartTagVoidToken:
			if open == nil {
				continue
			}

			open.tag += " />"
			parent := top()
			parent.children = append(parent.children, open)
			open = nil
		case html.EndTagToken:
			name := strings.ToLower(string(lexer.Text()))
			matched := false

			for i := len(stack) - 1; i > 0; i-- {
				if stack[i].name == name {
					stack[i].closed = true
					stack = stack[:i]
					matched = true

					break
				}
			}

			if !matched {
				parent := top()
				parent.children = append(parent.children, &htmlNode{kind: strayNode, text: string(data)})
			}
		case html.TextToken:
			parent := top()
			if codeElements[parent.name] {
				parent.text += string(data)
				continue
			}

			parent.children = append(parent.children, &htmlNode{kind: textNode, text: string(data)})
		case html.CommentToken, html.DoctypeToken, html.SVGToken, html.MathToken:
			parent := top()
			parent.children = append(parent.children, &htmlNode{kind: rawNode, text: string(data)})
		}
	}
}

func (b *HTMLBeautifier) render(out *strings.Builder, n *htmlNode, depth int) {
	pad := strings.Repeat(b.indent, depth)

	if n.kind != elementNode {
		out.WriteString(pad + strings.TrimSpace(n.text) + "\n")
		return
	}

	closeTag := ""
	if n.closed {
		closeTag = "</" + n.name + ">"
	}

	if voidElements[n.name] {
		out.WriteString(pad + n.tag + "\n")
		return
	}

	if verbatimElements[n.name] {
		out.WriteString(pad + n.tag + n.text + closeTag + "\n")
		return
	}

	if codeElements[n.name] {
		lines := reindentCode(n.text, strings.Repeat(b.indent, depth+1), b.indent)
		if len(lines) == 0 {
			out.WriteString(pad + n.tag + closeTag + "\n")
			return
		}

		out.WriteString(pad + n.tag + "\n")

		for _, line := range lines {
			out.WriteString(line + "\n")
		}

		out.WriteString(pad + closeTag + "\n")

		return
	}

	if allInline(n.children) {
		text := inlineText(n.children)
		if !strings.Contains(text, "\n") {
			out.WriteString(pad + n.tag + text + closeTag + "\n")
			return
		}
	}

	out.WriteString(pad + n.tag + "\n")

	childDepth := depth + 1
	if n.name == "html" {
		childDepth = depth
	}

	b.renderChildren(out, n, childDepth)

	if closeTag == "" {
		return
	}

	if n.name == "html" {
		out.WriteString("\n")
	}

	out.WriteString(pad + closeTag + "\n")
}

// renderChildren writes block children on their own lines and joins runs of
// text and inline elements into lines, breaking only where the source did.
func (b *HTMLBeautifier) renderChildren(out *strings.Builder, parent *htmlNode, depth int) {
	pad := strings.Repeat(b.indent, depth)

	var run []*htmlNode

	flush := func() {
		for _, line := range strings.Split(inlineText(run), "\n") {
			if line = strings.TrimSpace(line); line != "" {
				out.WriteString(pad + line + "\n")
			}
		}

		run = run[:0]
	}

	for _, child := range parent.children {
		if isInline(child) {
			run = append(run, child)
			continue
		}

		flush()

		if parent.name == "html" && (child.name == "head" || child.name == "body") {
			out.WriteString("\n")
		}

		b.render(out, child, depth)
	}

	flush()
}

func isInline(n *htmlNode) bool {
	switch n.kind {
	case textNode, strayNode:
		return true
	case rawNode:
		return false
	}

	return inlineElements[n.name] && allInline(n.children)
}

func allInline(nodes []*htmlNode) bool {
	for _, n := range nodes {
		if !isInline(n) {
			return false
		}
	}

	return true
}

// inlineText serializes inline nodes, trimmed. Whitespace runs collapse to a
// newline when they contain one and to a single space otherwise.
func inlineText(nodes []*htmlNode) string {
	var b strings.Builder
	for _, n := range nodes {
		writeInline(&b, n)
	}

	return strings.TrimSpace(collapseSpace(b.String()))
}

func writeInline(b *strings.Builder, n *htmlNode) {
	switch n.kind {
	case textNode, strayNode:
		b.WriteString(n.text)
		return
	}

	b.WriteString(n.tag)

	if voidElements[n.name] {
		return
	}

	for _, child := range n.children {
		writeInline(b, child)
	}

	if n.closed {
		b.WriteString("</" + n.name + ">")
	}
}

func collapseSpace(text string) string {
	var b strings.Builder

	inSpace, newline := false, false

	for _, r := range text {
		if unicode.IsSpace(r) {
			inSpace = true
			newline = newline || r == '\n'

			continue
		}

		if inSpace {
			if newline {
				b.WriteByte('\n')
			} else {
				b.WriteByte(' ')
			}

			inSpace, newline = false, false
		}

		b.WriteRune(r)
	}

	if inSpace {
		b.WriteByte(' ')
	}

	return b.String()
}

// reindentCode re-indents a script or style body. A line is indented one
// level deeper than the previous one when the previous line left brackets
// open, and one level shallower when it starts with closing brackets.
func reindentCode(code, base, unit string) []string {
	raw := strings.Split(strings.ReplaceAll(code, "\r\n", "\n"), "\n")

	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimSpace(line)
		if line == "" && (len(lines) == 0 || lines[len(lines)-1] == "") {
			continue
		}

		lines = append(lines, line)
	}

	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	out := make([]string, 0, len(lines))
	level := 0

	for _, line := range lines {
		if line == "" {
			out = append(out, "")
			continue
		}

		lead := leadingClosers(line)

		current := level
		if lead > 0 && current > 0 {
			current--
		}

		out = append(out, base+strings.Repeat(unit, current)+line)

		if lead > 0 {
			level = current
			if bracketBalance(line[lead:]) > 0 {
				level++
			}

			continue
		}

		switch net := bracketBalance(line); {
		case net > 0:
			level++
		case net < 0 && level > 0:
			level--
		}
	}

	return out
}

func leadingClosers(line string) int {
	n := 0
	for n < len(line) && strings.IndexByte(")]}", line[n]) >= 0 {
		n++
	}

	return n
}

// bracketBalance counts opening minus closing brackets outside string
// literals and line comments.
func bracketBalance(line string) int {
	balance := 0

	var quote byte

	for i := 0; i < len(line); i++ {
		c := line[i]

		if quote != 0 {
			switch c {
			case '\\':
				i++
			case quote:
				quote = 0
			}

			continue
		}

		switch c {
		case '"', '\'', '`':
			quote = c
		case '/':
			if i+1 < len(line) && line[i+1] == '/' {
				return balance
			}
		case '(', '[', '{':
			balance++
		case ')', ']', '}':
			balance--
		}
	}

	return balance
}
