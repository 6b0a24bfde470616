// Package services defines the business logic for field definitions,
// scoring, and report assembly. This file centralizes common service-level
// error values so that they can be consistently returned by service methods
// and checked by callers.
//
// These errors are intended for internal use by the service layer and
// translation into user-facing messages or HTTP status codes should be
// performed at the handler layer.
package services

import "errors"

// Field definition errors.
var (
	// ErrDuplicateID indicates that a derived or edited field id collides
	// with an existing definition. The operation is rejected before any
	// mutation; there is no auto-suffixing.
	ErrDuplicateID = errors.New("field id already exists")

	// ErrEmptyLabel is returned when a field is created or renamed with a
	// label that is empty (or slugs down to nothing).
	ErrEmptyLabel = errors.New("field label is empty")

	// ErrInvalidRange is returned when a definition's min exceeds its max.
	ErrInvalidRange = errors.New("field min must not exceed max")

	// ErrFieldNotFound indicates that the referenced field definition does
	// not exist in the document.
	ErrFieldNotFound = errors.New("field definition not found")

	// ErrOrderMismatch is returned when a reorder request does not contain
	// exactly the current set of field ids.
	ErrOrderMismatch = errors.New("reorder must contain exactly the existing field ids")
)

// Category errors.
var (
	// ErrCategoryExists is returned when adding a category name that is
	// already present.
	ErrCategoryExists = errors.New("category already exists")

	// ErrCategoryNotFound indicates that the named category is not in the
	// category list. Deleting a category that is still referenced by field
	// definitions is permitted; only a missing name is an error.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrEmptyCategory is returned when adding a category with a blank name.
	ErrEmptyCategory = errors.New("category name is empty")
)

// Scoring errors.
var (
	// ErrEmptyBatch is returned when a batch scoring request contains no
	// entries at all. Unknown field ids within a non-empty batch are not an
	// error; they are skipped and reported in the batch result.
	ErrEmptyBatch = errors.New("no scores submitted")
)
