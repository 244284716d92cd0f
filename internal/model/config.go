// Package model defines the data structures shared by the scaffolding engine.
package model

import (
	"fmt"
	"strings"
)

// TestKind selects which test stub, if any, is generated for a new element.
type TestKind string

const (
	// TestTDD generates a suite/test style stub.
	TestTDD TestKind = "TDD"
	// TestBDD generates a describe/it style stub.
	TestBDD TestKind = "BDD"
	// TestNone skips test generation and harness registration.
	TestNone TestKind = "None"
)

// TestKinds lists the accepted test kinds in prompt order.
var TestKinds = []TestKind{TestTDD, TestBDD, TestNone}

// ParseTestKind accepts a test kind name case-insensitively. An empty value
// means no test.
func ParseTestKind(value string) (TestKind, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return TestNone, nil
	}

	for _, kind := range TestKinds {
		if strings.EqualFold(value, string(kind)) {
			return kind, nil
		}
	}

	return "", fmt.Errorf("unknown test kind %q (expected TDD, BDD or None)", value)
}

// ScaffoldConfig is the immutable input of a single scaffolding run. Empty
// override fields mean "use the default".
type ScaffoldConfig struct {
	ElementName  string
	Dependencies []string

	AppRootOverride      string
	ElementsRootOverride string
	DepCacheRootOverride string
	NestedPathOverride   string

	IncludeDocs   bool
	IncludeImport bool
	TestKind      TestKind

	// Force allows generated files to replace existing ones.
	Force bool
	// Dedupe skips import lines and suite entries that are already present.
	Dedupe bool
	// DryRun records the writes of the run without performing them.
	DryRun bool
}

// WantsTest reports whether a test stub should be generated.
func (c ScaffoldConfig) WantsTest() bool {
	return c.TestKind != "" && c.TestKind != TestNone
}
