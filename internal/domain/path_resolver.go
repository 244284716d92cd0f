package domain

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"

	m "elgen.dev/pkg/elgen/internal/model"
)

// Default directory names used when no override is configured.
const (
	DefaultAppRoot     = "app"
	DefaultElementsDir = "elements"
	DefaultDepCacheDir = "dependency-cache"
)

// Resolve computes every path of a run from the configuration overrides.
// projectRoot must be absolute; it plays the role of the process working
// directory. Resolve performs no I/O.
func Resolve(cfg m.ScaffoldConfig, projectRoot string) (m.ResolvedPaths, error) {
	if !filepath.IsAbs(projectRoot) {
		return m.ResolvedPaths{}, fmt.Errorf("%w: project root %q is not absolute", ErrInvalidConfig, projectRoot)
	}

	appRoot := dirPath(orDefault(cfg.AppRootOverride, DefaultAppRoot))
	elementsRoot := dirPath(appRoot + orDefault(cfg.ElementsRootOverride, DefaultElementsDir))
	depCacheRoot := dirPath(appRoot + orDefault(cfg.DepCacheRootOverride, DefaultDepCacheDir))

	leaf := toSlash(orDefault(cfg.NestedPathOverride, cfg.ElementName))

	root := m.Path(projectRoot)
	targetElementDir := m.Under(m.Under(root, elementsRoot), leaf)
	depCacheDir := m.Under(root, depCacheRoot)

	rel, err := filepath.Rel(string(targetElementDir), string(depCacheDir))
	if err != nil {
		return m.ResolvedPaths{}, fmt.Errorf("computing path to dependency cache: %w", err)
	}

	testDir := m.Under(root, appRoot+"test")

	testToDepCache, err := filepath.Rel(string(testDir), string(depCacheDir))
	if err != nil {
		return m.ResolvedPaths{}, fmt.Errorf("computing test path to dependency cache: %w", err)
	}

	testToElement, err := filepath.Rel(string(testDir), filepath.Join(string(targetElementDir), cfg.ElementName+".html"))
	if err != nil {
		return m.ResolvedPaths{}, fmt.Errorf("computing test path to element: %w", err)
	}

	return m.ResolvedPaths{
		ElementName:          cfg.ElementName,
		ProjectRoot:          root,
		AppRoot:              appRoot,
		ElementsRoot:         elementsRoot,
		DepCacheRoot:         depCacheRoot,
		TargetElementDir:     targetElementDir,
		RelativeDepCachePath: filepath.ToSlash(rel),
		TestToDepCachePath:   filepath.ToSlash(testToDepCache),
		TestToElementPath:    filepath.ToSlash(testToElement),
		ImportRef:            path.Join(leaf, cfg.ElementName),
	}, nil
}

func orDefault(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}

	return value
}

func toSlash(p string) string {
	return strings.ReplaceAll(p, `\`, "/")
}

// dirPath cleans p and terminates it with a slash.
func dirPath(p string) string {
	p = path.Clean(toSlash(p))
	if strings.HasSuffix(p, "/") {
		return p
	}

	return p + "/"
}
