// Package common defines sentinel errors shared by the SmartScan client
// layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors.
	ErrorInvalidSetting    = errors.New("invalid setting")
	ErrorUnsupportedFormat = errors.New("unsupported export format")

	// Input errors raised by the CLI and capture helpers.
	ErrorInvalidInput = errors.New("invalid input")
)
