package guestbook

import (
	"fmt"
	"time"
)

// MaxMessageSize is the maximum guestbook message length in bytes.
const MaxMessageSize = 2048

// Entry is one signed guestbook message (immutable value object).
type Entry struct {
	id        string
	author    string
	message   string
	createdAt time.Time
}

// New validates and creates an Entry. The ID is assigned by the caller
// (server-generated, not user-supplied).
func New(id, author, message string, createdAt time.Time) (Entry, error) {
	if id == "" {
		return Entry{}, fmt.Errorf("entry ID is required")
	}
	if author == "" {
		return Entry{}, fmt.Errorf("author is required")
	}
	if message == "" {
		return Entry{}, fmt.Errorf("message is required")
	}
	if len(message) > MaxMessageSize {
		return Entry{}, fmt.Errorf("message too large (max %d bytes)", MaxMessageSize)
	}
	return Entry{id: id, author: author, message: message, createdAt: createdAt}, nil
}

// Reconstruct creates an Entry without validation (storage hydration).
func Reconstruct(id, author, message string, createdAt time.Time) Entry {
	return Entry{id: id, author: author, message: message, createdAt: createdAt}
}

// ID returns the entry identifier.
func (e *Entry) ID() string { return e.id }

// Author returns the signer's display name.
func (e *Entry) Author() string { return e.author }

// Message returns the guestbook message.
func (e *Entry) Message() string { return e.message }

// CreatedAt returns when the entry was signed.
func (e *Entry) CreatedAt() time.Time { return e.createdAt }
