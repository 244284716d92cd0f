package cmd

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"elgen.dev/pkg/elgen/internal/domain"
	domainmocks "elgen.dev/pkg/elgen/internal/domain/mocks"
	m "elgen.dev/pkg/elgen/internal/model"
)

const elTestHarness = `<!doctype html>
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

// useWorkflow makes the el command run wf and records the options it was built with.
func useWorkflow(t *testing.T, wf domain.Workflow) *workflowOptions {
	t.Helper()

	captured := &workflowOptions{}
	original := newWorkflow
	newWorkflow = func(_ *cobra.Command, opts workflowOptions) (domain.Workflow, error) {
		*captured = opts
		return wf, nil
	}
	t.Cleanup(func() { newWorkflow = original })

	return captured
}

func newTestElCmd(t *testing.T, args ...string) (*cobra.Command, *bytes.Buffer) {
	t.Helper()

	cmd := newRootCmd()
	cmd.AddCommand(newElCmd())

	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"el"}, args...))

	return cmd, out
}

func TestElCmd_PassesConfigToWorkflow(t *testing.T) {
	t.Chdir(t.TempDir())

	wf := domainmocks.NewMockWorkflow(t)
	opts := useWorkflow(t, wf)

	wf.EXPECT().Scaffold(mock.Anything, mock.MatchedBy(func(args domain.ScaffoldArgs) bool {
		cfg := args.Config
		return cfg.ElementName == "x-foo" &&
			assert.ObjectsAreEqual([]string{"paper-button", "iron-icons/iron-icons"}, cfg.Dependencies) &&
			cfg.IncludeDocs &&
			cfg.NestedPathOverride == "forms/x-foo" &&
			cfg.AppRootOverride == "app" &&
			cfg.ElementsRootOverride == "elements" &&
			cfg.DepCacheRootOverride == "bower_components" &&
			cfg.TestKind == m.TestBDD &&
			!cfg.IncludeImport &&
			!args.Answered.Import &&
			args.Answered.TestKind
	})).Return(nil)

	cmd, _ := newTestElCmd(t, "x-foo", "paper-button", "iron-icons/iron-icons",
		"--docs", "--path", "forms/x-foo", "--bower", "bower_components", "--test", "bdd", "--no-prompt")

	require.NoError(t, cmd.Execute())

	assert.True(t, filepath.IsAbs(string(opts.projectRoot)))
	assert.False(t, opts.prompt)
	assert.Empty(t, opts.templatesDir)
}

func TestElCmd_ElementAlias(t *testing.T) {
	t.Chdir(t.TempDir())

	wf := domainmocks.NewMockWorkflow(t)
	useWorkflow(t, wf)

	wf.EXPECT().Scaffold(mock.Anything, mock.MatchedBy(func(args domain.ScaffoldArgs) bool {
		return args.Config.ElementName == "x-bar" &&
			args.Config.IncludeImport &&
			args.Config.Force &&
			args.Config.DryRun &&
			args.Config.Dedupe &&
			args.Answered.Import &&
			!args.Answered.TestKind
	})).Return(nil)

	cmd, _ := newTestElCmd(t, "x-bar", "--import", "--force", "--dry-run", "--dedupe")
	cmd.SetArgs([]string{"element", "x-bar", "--import", "--force", "--dry-run", "--dedupe"})

	require.NoError(t, cmd.Execute())
}

func TestElCmd_RequiresElementName(t *testing.T) {
	t.Chdir(t.TempDir())

	wf := domainmocks.NewMockWorkflow(t)
	useWorkflow(t, wf)

	cmd, _ := newTestElCmd(t)

	require.Error(t, cmd.Execute())
}

func TestElCmd_InvalidTestKind(t *testing.T) {
	t.Chdir(t.TempDir())

	wf := domainmocks.NewMockWorkflow(t)
	useWorkflow(t, wf)

	cmd, _ := newTestElCmd(t, "x-foo", "--test", "QUnit")

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--test")
}

func TestElCmd_WorkflowError(t *testing.T) {
	t.Chdir(t.TempDir())

	wf := domainmocks.NewMockWorkflow(t)
	useWorkflow(t, wf)

	wf.EXPECT().Scaffold(mock.Anything, mock.Anything).Return(domain.ErrInvalidElementName)

	cmd, _ := newTestElCmd(t, "foo", "--no-prompt")

	err := cmd.Execute()
	require.True(t, errors.Is(err, domain.ErrInvalidElementName))
}

func TestElCmd_TemplatesDirFromConfig(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	wf := domainmocks.NewMockWorkflow(t)
	opts := useWorkflow(t, wf)

	wf.EXPECT().Scaffold(mock.Anything, mock.Anything).Return(nil)

	cmd, _ := newTestElCmd(t, "x-foo", "--templates", "my-templates", "--no-prompt")

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "my-templates", opts.templatesDir)
}

func TestElCmd_ScaffoldsProject(t *testing.T) {
	root := t.TempDir()
	t.Chdir(root)

	writeFile(t, filepath.Join(root, "app", "elements", "elements.html"), "<link rel=\"import\" href=\"x-bar/x-bar.html\">\n")
	writeFile(t, filepath.Join(root, "app", "test", "index.html"), elTestHarness)

	cmd, out := newTestElCmd(t, "x-foo", "--import", "--test", "TDD", "--no-prompt", "--log-file", filepath.Join(root, "elgen.log"))
	cmd.SetContext(context.Background())

	require.NoError(t, cmd.Execute())

	assert.FileExists(t, filepath.Join(root, "app", "elements", "x-foo", "x-foo.html"))
	assert.FileExists(t, filepath.Join(root, "app", "test", "x-foo-basic.html"))

	aggregator, err := os.ReadFile(filepath.Join(root, "app", "elements", "elements.html"))
	require.NoError(t, err)
	assert.Contains(t, string(aggregator), `<link rel="import" href="x-foo/x-foo.html">`)

	harness, err := os.ReadFile(filepath.Join(root, "app", "test", "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(harness), "'x-foo-basic.html'")

	assert.Contains(t, out.String(), "app/elements/x-foo/x-foo.html")
	assert.Contains(t, out.String(), "app/test/x-foo-basic.html")
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}
