package domain_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"elgen.dev/pkg/elgen/internal/adapter"
	adaptermocks "elgen.dev/pkg/elgen/internal/adapter/mocks"
	"elgen.dev/pkg/elgen/internal/domain"
	m "elgen.dev/pkg/elgen/internal/model"
)

const testHarness = `<!doctype html>
<html>
<head>
  <script src="../dependency-cache/web-component-tester/browser.js"></script>
</head>
<body>
  <script>
    WCT.loadSuites(['a.html']);
  </script>
</body>
</html>
`

const testAggregator = "<link rel=\"import\" href=\"x-bar/x-bar.html\">\n"

// newProject lays out a project with an aggregator and a test harness.
func newProject(t *testing.T) string {
	t.Helper()

	root := t.TempDir()
	writeProjectFile(t, root, "app/elements/elements.html", testAggregator)
	writeProjectFile(t, root, "app/test/index.html", testHarness)

	return root
}

func writeProjectFile(t *testing.T, root, rel, content string) {
	t.Helper()

	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func readProjectFile(t *testing.T, root, rel string) string {
	t.Helper()

	content, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
	require.NoError(t, err)

	return string(content)
}

func newTestOrchestrator(t *testing.T, root string) domain.Orchestrator {
	t.Helper()

	renderer, err := adapter.NewTemplateRenderer("")
	require.NoError(t, err)

	return domain.NewOrchestrator(m.Path(root), adapter.NewLocalProjectFSAdapter(), renderer, adapter.NewHTMLBeautifier())
}

func TestOrchestrator_EndToEnd(t *testing.T) {
	root := newProject(t)
	orch := newTestOrchestrator(t, root)

	result, err := orch.Run(context.Background(), m.ScaffoldConfig{
		ElementName:   "x-foo",
		IncludeImport: true,
		TestKind:      m.TestTDD,
	})
	require.NoError(t, err)

	element := readProjectFile(t, root, "app/elements/x-foo/x-foo.html")
	assert.Contains(t, element, `<dom-module id="x-foo">`)
	assert.Contains(t, element, `href="../../dependency-cache/polymer/polymer.html"`)

	assert.Equal(t, testAggregator+"<link rel=\"import\" href=\"x-foo/x-foo.html\">\n",
		readProjectFile(t, root, "app/elements/elements.html"))

	testStub := readProjectFile(t, root, "app/test/x-foo-basic.html")
	assert.Contains(t, testStub, "suite('<x-foo>'")

	suites, err := domain.ParseSuiteList(readProjectFile(t, root, "app/test/index.html"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a.html", "x-foo-basic.html", "x-foo-basic.html?dom=shadow"}, suites)

	assert.NoFileExists(t, filepath.Join(root, "app", "elements", "x-foo", "index.html"))
	assert.NoFileExists(t, filepath.Join(root, "app", "elements", "x-foo", "demo", "index.html"))

	require.Len(t, result.Writes, 4)
	assert.Equal(t, []m.Path{
		m.Path(filepath.Join(root, "app", "elements", "x-foo", "x-foo.html")),
		m.Path(filepath.Join(root, "app", "test", "x-foo-basic.html")),
	}, result.Created())
	assert.Equal(t, []m.Path{
		m.Path(filepath.Join(root, "app", "elements", "elements.html")),
		m.Path(filepath.Join(root, "app", "test", "index.html")),
	}, result.Modified())
	assert.False(t, result.DryRun)
}

func TestOrchestrator_HarnessIsBeautified(t *testing.T) {
	root := newProject(t)
	orch := newTestOrchestrator(t, root)

	_, err := orch.Run(context.Background(), m.ScaffoldConfig{ElementName: "x-foo", TestKind: m.TestBDD})
	require.NoError(t, err)

	harness := readProjectFile(t, root, "app/test/index.html")
	assert.Contains(t, harness, "    WCT.loadSuites([\n      'a.html',\n      'x-foo-basic.html',\n      'x-foo-basic.html?dom=shadow'\n    ]);\n")
	assert.Contains(t, readProjectFile(t, root, "app/test/x-foo-basic.html"), "describe('<x-foo>'")
}

func TestOrchestrator_DocsAndNestedPath(t *testing.T) {
	root := newProject(t)
	orch := newTestOrchestrator(t, root)

	result, err := orch.Run(context.Background(), m.ScaffoldConfig{
		ElementName:        "x-baz",
		Dependencies:       []string{"paper-button"},
		NestedPathOverride: "foo/bar",
		IncludeDocs:        true,
		IncludeImport:      true,
		TestKind:           m.TestNone,
	})
	require.NoError(t, err)

	element := readProjectFile(t, root, "app/elements/foo/bar/x-baz.html")
	assert.Contains(t, element, `href="../../../dependency-cache/paper-button/paper-button.html"`)
	assert.FileExists(t, filepath.Join(root, "app", "elements", "foo", "bar", "index.html"))
	assert.FileExists(t, filepath.Join(root, "app", "elements", "foo", "bar", "demo", "index.html"))
	assert.True(t, strings.HasSuffix(readProjectFile(t, root, "app/elements/elements.html"),
		"<link rel=\"import\" href=\"foo/bar/x-baz.html\">\n"))
	assert.Equal(t, testHarness, readProjectFile(t, root, "app/test/index.html"))
	assert.Len(t, result.Writes, 4)
}

func TestOrchestrator_InvalidNameWritesNothing(t *testing.T) {
	root := newProject(t)
	orch := newTestOrchestrator(t, root)

	result, err := orch.Run(context.Background(), m.ScaffoldConfig{ElementName: "xfoo", IncludeImport: true})
	require.ErrorIs(t, err, domain.ErrInvalidElementName)
	assert.Nil(t, result)
	assert.NoDirExists(t, filepath.Join(root, "app", "elements", "xfoo"))
	assert.Equal(t, testAggregator, readProjectFile(t, root, "app/elements/elements.html"))
}

func TestOrchestrator_MissingDirectiveKeepsEarlierWrites(t *testing.T) {
	root := newProject(t)
	writeProjectFile(t, root, "app/test/index.html", "<html><body></body></html>\n")

	orch := newTestOrchestrator(t, root)

	result, err := orch.Run(context.Background(), m.ScaffoldConfig{
		ElementName:   "x-foo",
		IncludeImport: true,
		TestKind:      m.TestTDD,
	})
	require.ErrorIs(t, err, domain.ErrDirectiveNotFound)
	require.NotNil(t, result)

	assert.Len(t, result.Writes, 3)
	assert.FileExists(t, filepath.Join(root, "app", "elements", "x-foo", "x-foo.html"))
	assert.FileExists(t, filepath.Join(root, "app", "test", "x-foo-basic.html"))
	assert.Contains(t, readProjectFile(t, root, "app/elements/elements.html"), "x-foo/x-foo.html")
	assert.Equal(t, "<html><body></body></html>\n", readProjectFile(t, root, "app/test/index.html"))
}

func TestOrchestrator_MissingAggregatorAbortsRemainingSteps(t *testing.T) {
	root := t.TempDir()
	writeProjectFile(t, root, "app/test/index.html", testHarness)

	orch := newTestOrchestrator(t, root)

	result, err := orch.Run(context.Background(), m.ScaffoldConfig{
		ElementName:   "x-foo",
		IncludeImport: true,
		TestKind:      m.TestTDD,
	})
	require.ErrorIs(t, err, os.ErrNotExist)
	assert.Len(t, result.Writes, 1)
	assert.NoFileExists(t, filepath.Join(root, "app", "test", "x-foo-basic.html"))
	assert.Equal(t, testHarness, readProjectFile(t, root, "app/test/index.html"))
}

func TestOrchestrator_ExistingElementNeedsForce(t *testing.T) {
	root := newProject(t)
	writeProjectFile(t, root, "app/elements/x-foo/x-foo.html", "old")

	orch := newTestOrchestrator(t, root)

	_, err := orch.Run(context.Background(), m.ScaffoldConfig{ElementName: "x-foo"})
	require.ErrorIs(t, err, domain.ErrFileExists)
	assert.Equal(t, "old", readProjectFile(t, root, "app/elements/x-foo/x-foo.html"))

	result, err := orch.Run(context.Background(), m.ScaffoldConfig{ElementName: "x-foo", Force: true})
	require.NoError(t, err)
	require.Len(t, result.Writes, 1)
	assert.Equal(t, m.WriteModify, result.Writes[0].Kind)
	assert.Equal(t, "old", string(result.Writes[0].Before))
	assert.Contains(t, readProjectFile(t, root, "app/elements/x-foo/x-foo.html"), "dom-module")
}

func TestOrchestrator_RepeatedRunsDuplicateEntries(t *testing.T) {
	root := newProject(t)
	orch := newTestOrchestrator(t, root)

	cfg := m.ScaffoldConfig{ElementName: "x-foo", IncludeImport: true, TestKind: m.TestTDD, Force: true}

	_, err := orch.Run(context.Background(), cfg)
	require.NoError(t, err)
	_, err = orch.Run(context.Background(), cfg)
	require.NoError(t, err)

	assert.Equal(t, 2, strings.Count(readProjectFile(t, root, "app/elements/elements.html"), "x-foo/x-foo.html"))

	suites, err := domain.ParseSuiteList(readProjectFile(t, root, "app/test/index.html"))
	require.NoError(t, err)
	assert.Len(t, suites, 5)
}

func TestOrchestrator_DedupeMakesRunsRepeatable(t *testing.T) {
	root := newProject(t)
	orch := newTestOrchestrator(t, root)

	cfg := m.ScaffoldConfig{ElementName: "x-foo", IncludeImport: true, TestKind: m.TestTDD, Force: true, Dedupe: true}

	_, err := orch.Run(context.Background(), cfg)
	require.NoError(t, err)

	result, err := orch.Run(context.Background(), cfg)
	require.NoError(t, err)

	assert.Equal(t, 1, strings.Count(readProjectFile(t, root, "app/elements/elements.html"), "x-foo/x-foo.html"))

	suites, err := domain.ParseSuiteList(readProjectFile(t, root, "app/test/index.html"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a.html", "x-foo-basic.html", "x-foo-basic.html?dom=shadow"}, suites)
	assert.Empty(t, result.Created())
}

func TestOrchestrator_DryRunWritesNothing(t *testing.T) {
	root := newProject(t)
	orch := newTestOrchestrator(t, root)

	result, err := orch.Run(context.Background(), m.ScaffoldConfig{
		ElementName:   "x-foo",
		IncludeDocs:   true,
		IncludeImport: true,
		TestKind:      m.TestTDD,
		DryRun:        true,
	})
	require.NoError(t, err)

	assert.True(t, result.DryRun)
	assert.Len(t, result.Writes, 6)
	assert.NoDirExists(t, filepath.Join(root, "app", "elements", "x-foo"))
	assert.Equal(t, testAggregator, readProjectFile(t, root, "app/elements/elements.html"))
	assert.Equal(t, testHarness, readProjectFile(t, root, "app/test/index.html"))

	last := result.Writes[len(result.Writes)-1]
	assert.Equal(t, testHarness, string(last.Before))
	assert.Contains(t, string(last.After), "x-foo-basic.html?dom=shadow")
}

func TestOrchestrator_BeautifierFailure(t *testing.T) {
	root := newProject(t)

	renderer, err := adapter.NewTemplateRenderer("")
	require.NoError(t, err)

	beautifier := adaptermocks.NewMockBeautifier(t)
	beautifier.EXPECT().Beautify(mock.Anything, mock.Anything).Return(nil, errors.New("boom"))

	orch := domain.NewOrchestrator(m.Path(root), adapter.NewLocalProjectFSAdapter(), renderer, beautifier)

	_, err = orch.Run(context.Background(), m.ScaffoldConfig{ElementName: "x-foo", TestKind: m.TestTDD})
	require.ErrorContains(t, err, "boom")
	assert.Equal(t, testHarness, readProjectFile(t, root, "app/test/index.html"))
}

func TestOrchestrator_BeautifierReceivesRewrittenHarness(t *testing.T) {
	root := newProject(t)

	renderer, err := adapter.NewTemplateRenderer("")
	require.NoError(t, err)

	beautifier := adaptermocks.NewMockBeautifier(t)
	beautifier.EXPECT().
		Beautify(mock.Anything, mock.MatchedBy(func(content []byte) bool {
			return strings.Contains(string(content), "'x-foo-basic.html?dom=shadow'")
		})).
		RunAndReturn(func(_ context.Context, content []byte) ([]byte, error) {
			return content, nil
		})

	orch := domain.NewOrchestrator(m.Path(root), adapter.NewLocalProjectFSAdapter(), renderer, beautifier)

	_, err = orch.Run(context.Background(), m.ScaffoldConfig{ElementName: "x-foo", TestKind: m.TestTDD})
	require.NoError(t, err)
}

func TestOrchestrator_WriteFailure(t *testing.T) {
	root := newProject(t)
	ctx := context.Background()

	renderer := adaptermocks.NewMockTemplateRenderer(t)
	renderer.EXPECT().Render(mock.Anything, adapter.TemplateElement, mock.Anything).Return([]byte("element"), nil)

	fsAdapter := adaptermocks.NewMockProjectFSAdapter(t)
	fsAdapter.EXPECT().Exists(ctx, mock.Anything).Return(false, nil)
	fsAdapter.EXPECT().WriteFile(ctx, mock.Anything, []byte("element")).Return(errors.New("disk full"))

	orch := domain.NewOrchestrator(m.Path(root), fsAdapter, renderer, adaptermocks.NewMockBeautifier(t))

	result, err := orch.Run(ctx, m.ScaffoldConfig{ElementName: "x-foo", IncludeImport: true})
	require.ErrorContains(t, err, "disk full")
	assert.Empty(t, result.Writes)
}

func TestOrchestrator_CanceledContext(t *testing.T) {
	root := newProject(t)
	orch := newTestOrchestrator(t, root)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := orch.Run(ctx, m.ScaffoldConfig{ElementName: "x-foo"})
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, result.Writes)
	assert.NoDirExists(t, filepath.Join(root, "app", "elements", "x-foo"))
}
