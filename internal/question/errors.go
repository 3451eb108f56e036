package question

import "errors"

var (
	// ErrInvalidCategories rejects an empty category list or one containing
	// an empty string.
	ErrInvalidCategories = errors.New("invalid categories")

	// ErrAlreadyExists rejects a create whose question text is already in
	// the repository.
	ErrAlreadyExists = errors.New("question already existing")

	// ErrUnauthorized rejects a create by an authenticated non-admin.
	ErrUnauthorized = errors.New("unauthorized")
)
