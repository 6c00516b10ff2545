package memo

import (
	"fmt"
	"time"

	"github.com/eunyuson/graceroom/internal/domain/item"
)

// MaxBodySize is the maximum memo body length in bytes.
const MaxBodySize = 2048

// Memo is a short comment attached to one content item.
type Memo struct {
	source    item.Source
	itemID    string
	id        string
	author    string
	body      string
	createdAt time.Time
}

// New validates and creates a Memo. The memo ID is assigned by the caller.
func New(source item.Source, itemID, id, author, body string, createdAt time.Time) (Memo, error) {
	if _, err := item.ParseSource(string(source)); err != nil {
		return Memo{}, err
	}
	if itemID == "" {
		return Memo{}, fmt.Errorf("target item ID is required")
	}
	if id == "" {
		return Memo{}, fmt.Errorf("memo ID is required")
	}
	if author == "" {
		return Memo{}, fmt.Errorf("author is required")
	}
	if body == "" {
		return Memo{}, fmt.Errorf("body is required")
	}
	if len(body) > MaxBodySize {
		return Memo{}, fmt.Errorf("body too large (max %d bytes)", MaxBodySize)
	}
	return Memo{source: source, itemID: itemID, id: id, author: author, body: body, createdAt: createdAt}, nil
}

// Reconstruct creates a Memo without validation (storage hydration).
func Reconstruct(source item.Source, itemID, id, author, body string, createdAt time.Time) Memo {
	return Memo{source: source, itemID: itemID, id: id, author: author, body: body, createdAt: createdAt}
}

// Source returns the collection of the target item.
func (m *Memo) Source() item.Source { return m.source }

// ItemID returns the ID of the target item.
func (m *Memo) ItemID() string { return m.itemID }

// ID returns the memo identifier.
func (m *Memo) ID() string { return m.id }

// Author returns the commenter's display name.
func (m *Memo) Author() string { return m.author }

// Body returns the memo text.
func (m *Memo) Body() string { return m.body }

// CreatedAt returns when the memo was written.
func (m *Memo) CreatedAt() time.Time { return m.createdAt }
