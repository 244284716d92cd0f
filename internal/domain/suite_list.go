package domain

import (
	"fmt"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// SuiteMarker introduces the suite list in a harness entry file.
	SuiteMarker = "WCT.loadSuites("
	// ShadowSuffix selects the shadow DOM run of a suite.
	ShadowSuffix = "?dom=shadow"

	suiteIndent = "  "
)

// SuiteListRewriter registers test suites in the suite list of a harness file.
type SuiteListRewriter struct {
	marker string
	dedupe bool
}

// RewriterOption configures a SuiteListRewriter.
type RewriterOption func(*SuiteListRewriter)

// WithMarker overrides the directive marker. The marker must end right
// before the argument list.
func WithMarker(marker string) RewriterOption {
	return func(r *SuiteListRewriter) {
		r.marker = marker
	}
}

// WithDedupe skips entries that are already registered.
func WithDedupe(dedupe bool) RewriterOption {
	return func(r *SuiteListRewriter) {
		r.dedupe = dedupe
	}
}

// NewSuiteListRewriter builds a rewriter for the default marker.
func NewSuiteListRewriter(opts ...RewriterOption) *SuiteListRewriter {
	r := &SuiteListRewriter{marker: SuiteMarker}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// RegisterSuite appends basicName and its shadow DOM variant to the suite
// list of the harness text and returns the whole rewritten text.
//
// Every single quote of the text is turned into a double quote before the
// list is parsed, and the list is written back with single quotes. The text
// is not reformatted; callers run a beautifier afterwards.
func (r *SuiteListRewriter) RegisterSuite(text, basicName string) (string, error) {
	normalized := strings.ReplaceAll(text, "'", `"`)

	start, end, err := r.locate(normalized)
	if err != nil {
		return "", err
	}

	suites, err := decodeSuiteList(normalized[start:end])
	if err != nil {
		return "", err
	}

	for _, entry := range []string{basicName, basicName + ShadowSuffix} {
		if r.dedupe && slices.Contains(suites, entry) {
			continue
		}

		suites = append(suites, entry)
	}

	return normalized[:start] + encodeSuiteList(suites) + normalized[end:], nil
}

// ParseSuiteList extracts the suite list of the harness text without
// changing it.
func (r *SuiteListRewriter) ParseSuiteList(text string) ([]string, error) {
	normalized := strings.ReplaceAll(text, "'", `"`)

	start, end, err := r.locate(normalized)
	if err != nil {
		return nil, err
	}

	return decodeSuiteList(normalized[start:end])
}

// RegisterSuite is a shorthand for NewSuiteListRewriter().RegisterSuite.
func RegisterSuite(text, basicName string) (string, error) {
	return NewSuiteListRewriter().RegisterSuite(text, basicName)
}

// ParseSuiteList is a shorthand for NewSuiteListRewriter().ParseSuiteList.
func ParseSuiteList(text string) ([]string, error) {
	return NewSuiteListRewriter().ParseSuiteList(text)
}

// locate returns the byte range of the list literal following the marker.
// Brackets inside double quoted strings do not count.
func (r *SuiteListRewriter) locate(text string) (int, int, error) {
	idx := strings.Index(text, r.marker)
	if idx < 0 {
		return 0, 0, fmt.Errorf("%w: marker %q not present", ErrDirectiveNotFound, r.marker)
	}

	start := idx + len(r.marker)
	for start < len(text) && isSpace(text[start]) {
		start++
	}

	if start == len(text) {
		return 0, 0, fmt.Errorf("%w: no argument after %q", ErrDirectiveNotFound, r.marker)
	}

	if text[start] != '[' {
		return 0, 0, fmt.Errorf("%w: argument of %q is not a list literal", ErrMalformedDirective, r.marker)
	}

	depth := 0
	inString := false

	for i := start; i < len(text); i++ {
		c := text[i]

		if inString {
			switch c {
			case '\\':
				i++
			case '"':
				inString = false
			}

			continue
		}

		switch c {
		case '"':
			inString = true
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return start, i + 1, nil
			}
		}
	}

	return 0, 0, fmt.Errorf("%w: unterminated list after %q", ErrDirectiveNotFound, r.marker)
}

// decodeSuiteList parses a flow sequence whose items are all double quoted
// strings. JSON arrays of strings are accepted as is.
func decodeSuiteList(raw string) ([]string, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedDirective, err)
	}

	if doc.Kind != yaml.DocumentNode || len(doc.Content) != 1 {
		return nil, fmt.Errorf("%w: expected a single list literal", ErrMalformedDirective)
	}

	seq := doc.Content[0]
	if seq.Kind != yaml.SequenceNode || seq.Style&yaml.FlowStyle == 0 {
		return nil, fmt.Errorf("%w: expected a list literal", ErrMalformedDirective)
	}

	suites := make([]string, 0, len(seq.Content))
	for i, item := range seq.Content {
		if item.Kind != yaml.ScalarNode || item.Style&yaml.DoubleQuotedStyle == 0 {
			return nil, fmt.Errorf("%w: entry %d is not a quoted string", ErrMalformedDirective, i)
		}

		suites = append(suites, item.Value)
	}

	return suites, nil
}

// encodeSuiteList writes one single quoted entry per line.
func encodeSuiteList(suites []string) string {
	if len(suites) == 0 {
		return "[]"
	}

	var b strings.Builder

	b.WriteString("[\n")

	for i, suite := range suites {
		b.WriteString(suiteIndent)
		b.WriteString(quoteSingle(suite))

		if i < len(suites)-1 {
			b.WriteByte(',')
		}

		b.WriteByte('\n')
	}

	b.WriteString("]")

	return b.String()
}

func quoteSingle(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "'", `\'`)

	return "'" + s + "'"
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
