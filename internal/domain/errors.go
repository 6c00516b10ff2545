package domain

import "errors"

var (
	// ErrNotFound signals a missing resource.
	ErrNotFound = errors.New("not found")
	// ErrItemNotFound signals a missing content item.
	ErrItemNotFound = errors.New("item not found")
	// ErrEntryNotFound signals a missing guestbook entry.
	ErrEntryNotFound = errors.New("guestbook entry not found")
	// ErrMemoNotFound signals a missing memo.
	ErrMemoNotFound = errors.New("memo not found")
	// ErrInvalidInput signals a validation failure on caller-supplied data.
	ErrInvalidInput = errors.New("invalid input")
	// ErrUnknownSource signals a source name outside the closed tag set.
	ErrUnknownSource = errors.New("unknown source")
)
