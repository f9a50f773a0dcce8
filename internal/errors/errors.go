// internal/errors/errors.go
package appErrors

import (
	"errors"
	"fmt"
	"strings"
)

// IncompleteDatasetPrompt is shown when an upload does not carry all four files.
const IncompleteDatasetPrompt = "Please upload all 4 files to proceed."

// ErrDatasetNotLoaded is returned when no snapshot is available yet.
var ErrDatasetNotLoaded = errors.New("no dataset loaded")

// ErrIncompleteDataset reports which of the four inputs are missing.
type ErrIncompleteDataset struct {
	Missing []string
}

func (e *ErrIncompleteDataset) Error() string {
	return fmt.Sprintf("incomplete dataset, missing: %s", strings.Join(e.Missing, ", "))
}

func NewIncompleteDataset(missing []string) error {
	return &ErrIncompleteDataset{Missing: missing}
}

// ErrMissingColumn is returned when a required header is absent.
type ErrMissingColumn struct {
	File   string
	Column string
}

func (e *ErrMissingColumn) Error() string {
	return fmt.Sprintf("%s: missing required column %q", e.File, e.Column)
}

func NewMissingColumn(file, column string) error {
	return &ErrMissingColumn{File: file, Column: column}
}

// ErrMalformedValue is returned when a cell cannot be parsed. Line is 1-based
// and counts the header.
type ErrMalformedValue struct {
	File   string
	Line   int
	Column string
	Value  string
	Err    error
}

func (e *ErrMalformedValue) Error() string {
	return fmt.Sprintf("%s line %d: column %q has invalid value %q: %v", e.File, e.Line, e.Column, e.Value, e.Err)
}

func (e *ErrMalformedValue) Unwrap() error {
	return e.Err
}

func NewMalformedValue(file string, line int, column, value string, err error) error {
	return &ErrMalformedValue{File: file, Line: line, Column: column, Value: value, Err: err}
}

// IsLoadError reports whether err comes from parsing a dataset file.
func IsLoadError(err error) bool {
	var mc *ErrMissingColumn
	var mv *ErrMalformedValue
	return errors.As(err, &mc) || errors.As(err, &mv)
}

// ErrUnknownExport is returned for an export name the dashboard does not offer.
type ErrUnknownExport struct {
	Name string
}

func (e *ErrUnknownExport) Error() string {
	return fmt.Sprintf("unknown export %q", e.Name)
}

func NewUnknownExport(name string) error {
	return &ErrUnknownExport{Name: name}
}
