package domain

import (
	"fmt"
	"strings"

	m "elgen.dev/pkg/elgen/internal/model"
)

// ElementNameSeparator must appear in every custom element name.
const ElementNameSeparator = "-"

// ValidateElementName checks that name is a compound tag name.
func ValidateElementName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: element name is required", ErrInvalidElementName)
	}

	if !strings.Contains(name, ElementNameSeparator) {
		return fmt.Errorf("%w: %q must contain a dash \"-\" (ex: my-element)", ErrInvalidElementName, name)
	}

	return nil
}

// ValidateConfig checks a configuration before any path is resolved or any
// file is touched.
func ValidateConfig(cfg m.ScaffoldConfig) error {
	if err := ValidateElementName(cfg.ElementName); err != nil {
		return err
	}

	if cfg.TestKind != "" {
		if _, err := m.ParseTestKind(string(cfg.TestKind)); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	}

	for _, dep := range cfg.Dependencies {
		if strings.TrimSpace(dep) == "" {
			return fmt.Errorf("%w: empty dependency name", ErrInvalidConfig)
		}
	}

	return nil
}
