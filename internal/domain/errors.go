// Package domain implements the scaffolding engine: path resolution,
// template context, and the aggregator and harness mutations.
package domain

import "errors"

var (
	// ErrInvalidElementName is returned when the element name is not a
	// compound tag name.
	ErrInvalidElementName = errors.New("invalid element name")
	// ErrInvalidConfig is returned for any other unusable configuration.
	ErrInvalidConfig = errors.New("invalid scaffold configuration")
	// ErrDirectiveNotFound is returned when the harness file has no suite list.
	ErrDirectiveNotFound = errors.New("suite list directive not found")
	// ErrMalformedDirective is returned when the suite list is not a list of
	// quoted strings.
	ErrMalformedDirective = errors.New("malformed suite list directive")
	// ErrFileExists is returned when a generated file would overwrite an
	// existing one and force is off.
	ErrFileExists = errors.New("file already exists")
)
