// Package errs defines the typed error taxonomy used across the asset
// pipeline layers, mirroring the shape of the teacher's internal/errors
// package: one struct per concern, each wrapping an underlying error and
// carrying enough context to reconstruct what failed and where.
package errs

import (
	"fmt"
	"time"
)

// ParseError represents a BSON tokenizer or parser failure (§4.1-4.2).
type ParseError struct {
	Line       int
	Column     int
	Token      string
	Underlying error
	Timestamp  time.Time
}

func NewParseError(line, column int, token string, err error) *ParseError {
	return &ParseError{Line: line, Column: column, Token: token, Underlying: err, Timestamp: time.Now()}
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("bson parse error at %d:%d (near token %q): %v", e.Line, e.Column, e.Token, e.Underlying)
}

func (e *ParseError) Unwrap() error { return e.Underlying }

// SerializeError represents a per-type serializer failure (§4.4).
type SerializeError struct {
	AssetType  string
	Field      string
	Underlying error
	Timestamp  time.Time
}

func NewSerializeError(assetType, field string, err error) *SerializeError {
	return &SerializeError{AssetType: assetType, Field: field, Underlying: err, Timestamp: time.Now()}
}

func (e *SerializeError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s serialize error on field %q: %v", e.AssetType, e.Field, e.Underlying)
	}
	return fmt.Sprintf("%s serialize error: %v", e.AssetType, e.Underlying)
}

func (e *SerializeError) Unwrap() error { return e.Underlying }

// PackageError represents a package/manifest failure (§4.7).
type PackageError struct {
	Package    string
	Operation  string
	Underlying error
	Timestamp  time.Time
}

func NewPackageError(pkg, op string, err error) *PackageError {
	return &PackageError{Package: pkg, Operation: op, Underlying: err, Timestamp: time.Now()}
}

func (e *PackageError) Error() string {
	return fmt.Sprintf("package %q: %s failed: %v", e.Package, e.Operation, e.Underlying)
}

func (e *PackageError) Unwrap() error { return e.Underlying }

// VFSError represents a VFS-layer failure, carrying the narrow §4.8
// result code alongside the wrapped error.
type VFSError struct {
	Package    string
	Asset      string
	Result     string
	Underlying error
	Timestamp  time.Time
}

func NewVFSError(pkg, asset, result string, err error) *VFSError {
	return &VFSError{Package: pkg, Asset: asset, Result: result, Underlying: err, Timestamp: time.Now()}
}

func (e *VFSError) Error() string {
	return fmt.Sprintf("vfs request for %s/%s failed (%s): %v", e.Package, e.Asset, e.Result, e.Underlying)
}

func (e *VFSError) Unwrap() error { return e.Underlying }

// RequestError represents a §7 request-result failure surfaced by the
// asset handler registry.
type RequestError struct {
	AssetType  string
	Name       string
	Result     string
	Underlying error
	Timestamp  time.Time
}

func NewRequestError(assetType, name, result string, err error) *RequestError {
	return &RequestError{AssetType: assetType, Name: name, Result: result, Underlying: err, Timestamp: time.Now()}
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("request for %s %q failed (%s): %v", e.AssetType, e.Name, e.Result, e.Underlying)
}

func (e *RequestError) Unwrap() error { return e.Underlying }

// MultiError aggregates multiple failures, e.g. from loading a
// manifest's reference chain.
type MultiError struct {
	Errors []error
}

func NewMultiError(errors []error) *MultiError {
	filtered := make([]error, 0, len(errors))
	for _, err := range errors {
		if err != nil {
			filtered = append(filtered, err)
		}
	}
	return &MultiError{Errors: filtered}
}

func (e *MultiError) Error() string {
	switch len(e.Errors) {
	case 0:
		return "no errors"
	case 1:
		return e.Errors[0].Error()
	default:
		return fmt.Sprintf("%d errors: %v", len(e.Errors), e.Errors)
	}
}

func (e *MultiError) Unwrap() []error { return e.Errors }
