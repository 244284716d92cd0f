package model

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTestKind(t *testing.T) {
	tests := []struct {
		value   string
		want    TestKind
		wantErr bool
	}{
		{"TDD", TestTDD, false},
		{"bdd", TestBDD, false},
		{" none ", TestNone, false},
		{"", TestNone, false},
		{"qunit", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got, err := ParseTestKind(tt.value)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestScaffoldConfig_WantsTest(t *testing.T) {
	assert.True(t, ScaffoldConfig{TestKind: TestTDD}.WantsTest())
	assert.True(t, ScaffoldConfig{TestKind: TestBDD}.WantsTest())
	assert.False(t, ScaffoldConfig{TestKind: TestNone}.WantsTest())
	assert.False(t, ScaffoldConfig{}.WantsTest())
}

func TestResolvedPaths_Files(t *testing.T) {
	root := Path(filepath.Join(t.TempDir(), "project"))
	paths := ResolvedPaths{
		ElementName:      "x-foo",
		ProjectRoot:      root,
		AppRoot:          "app/",
		ElementsRoot:     "app/elements/",
		TargetElementDir: Under(root, "app/elements/forms/x-foo"),
	}

	assert.Equal(t, Path(filepath.Join(string(root), "app", "elements", "forms", "x-foo", "x-foo.html")), paths.ElementFile())
	assert.Equal(t, Path(filepath.Join(string(root), "app", "elements", "forms", "x-foo", "demo", "index.html")), paths.DemoFile())
	assert.Equal(t, Path(filepath.Join(string(root), "app", "elements", "elements.html")), paths.AggregatorFile())
	assert.Equal(t, Path(filepath.Join(string(root), "app", "test", "index.html")), paths.HarnessFile())
	assert.Equal(t, Path(filepath.Join(string(root), "app", "test", "x-foo-basic.html")), paths.TestFile())
	assert.Equal(t, "x-foo-basic.html", paths.SuiteName())
	assert.Equal(t, "app/elements/forms/x-foo/x-foo.html", paths.Rel(paths.ElementFile()))
}

func TestUnder_AbsolutePath(t *testing.T) {
	abs := filepath.Join(t.TempDir(), "elsewhere")

	assert.Equal(t, Path(abs), Under("/project", filepath.ToSlash(abs)))
}

func TestScaffoldResult_CreatedAndModified(t *testing.T) {
	result := &ScaffoldResult{Writes: []FileWrite{
		{Path: "a.html", Kind: WriteCreate},
		{Path: "elements.html", Kind: WriteModify},
		{Path: "b.html", Kind: WriteCreate},
	}}

	assert.Equal(t, []Path{"a.html", "b.html"}, result.Created())
	assert.Equal(t, []Path{"elements.html"}, result.Modified())
}
