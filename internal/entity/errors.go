package entity

import (
	"errors"
	"fmt"
)

var (
	// ErrNoImages is returned when a source folder contains no usable images.
	ErrNoImages = errors.New("no PNG files found")

	// ErrNoToken is returned when an upload is requested without a stored credential.
	ErrNoToken = errors.New("no Slack token available")
)

// DecodeError marks a file that could not be parsed as a PNG image.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("cannot decode %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// UploadError carries the HTTP status and the API error string of a failed upload.
type UploadError struct {
	Status  int
	Message string
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("upload failed (status %d): %s", e.Status, e.Message)
}

// TokenInvalid reports whether the API rejected the credential itself,
// meaning a stored token should be discarded.
func (e *UploadError) TokenInvalid() bool {
	switch e.Message {
	case "invalid_auth", "not_authed", "token_revoked", "missing_scope":
		return true
	}
	return false
}
