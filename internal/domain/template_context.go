package domain

import (
	"strings"
	"unicode"

	m "elgen.dev/pkg/elgen/internal/model"
)

// TemplateContext is the data every element template is rendered with.
type TemplateContext struct {
	ElementName    string
	ClassName      string
	Dependencies   []string
	PathToDepCache string

	TestPathToDepCache string
	TestPathToElement  string
}

// BuildContext derives the template data from a configuration and its
// resolved paths.
func BuildContext(cfg m.ScaffoldConfig, paths m.ResolvedPaths) TemplateContext {
	deps := make([]string, len(cfg.Dependencies))
	copy(deps, cfg.Dependencies)

	return TemplateContext{
		ElementName:    cfg.ElementName,
		ClassName:      className(cfg.ElementName),
		Dependencies:   deps,
		PathToDepCache: paths.RelativeDepCachePath,

		TestPathToDepCache: paths.TestToDepCachePath,
		TestPathToElement:  paths.TestToElementPath,
	}
}

// className turns "x-foo-bar" into "XFooBar".
func className(name string) string {
	var b strings.Builder

	upper := true
	for _, r := range name {
		if r == '-' || r == '_' || r == '.' {
			upper = true
			continue
		}

		if upper {
			r = unicode.ToUpper(r)
			upper = false
		}

		b.WriteRune(r)
	}

	return b.String()
}
