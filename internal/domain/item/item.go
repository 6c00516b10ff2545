package item

import (
	"fmt"
	"regexp"
	"time"
)

// Source identifies the content collection an item originates from.
type Source string

const (
	// News is the announcements/updates collection.
	News Source = "news"
	// Concept is the concept-card collection.
	Concept Source = "concept"
	// Reflection is the reflections/memos collection.
	Reflection Source = "reflection"
)

// Sources returns the closed set of collections in fixed order.
func Sources() []Source {
	return []Source{News, Concept, Reflection}
}

// ParseSource validates a source name against the closed set.
func ParseSource(s string) (Source, error) {
	switch Source(s) {
	case News, Concept, Reflection:
		return Source(s), nil
	}
	return "", fmt.Errorf("source %q is not one of news, concept, reflection", s)
}

var idRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// MaxQuestionSize is the maximum question length in bytes.
const MaxQuestionSize = 4096

// Item is a content record carrying a question (immutable value object).
// IDs are unique within a source collection, not globally.
type Item struct {
	source    Source
	id        string
	title     string
	question  string
	preview   string
	createdAt time.Time
}

// New validates and creates an Item.
// ID: ^[a-zA-Z0-9_-]+$, 1-256 chars. Question: non-empty, max 4KB.
// Title and preview are optional display fields.
func New(source Source, id, title, question, preview string, createdAt time.Time) (Item, error) {
	if _, err := ParseSource(string(source)); err != nil {
		return Item{}, err
	}
	if id == "" {
		return Item{}, fmt.Errorf("item ID is required")
	}
	if len(id) > 256 {
		return Item{}, fmt.Errorf("item ID too long (max 256)")
	}
	if !idRegex.MatchString(id) {
		return Item{}, fmt.Errorf("item ID must be alphanumeric with underscores and hyphens")
	}
	if question == "" {
		return Item{}, fmt.Errorf("question is required")
	}
	if len(question) > MaxQuestionSize {
		return Item{}, fmt.Errorf("question too large (max %d bytes)", MaxQuestionSize)
	}

	return Item{
		source:    source,
		id:        id,
		title:     title,
		question:  question,
		preview:   preview,
		createdAt: createdAt,
	}, nil
}

// Reconstruct creates an Item without validation (storage hydration).
// Remote documents may be partial; consumers must tolerate empty fields.
func Reconstruct(source Source, id, title, question, preview string, createdAt time.Time) Item {
	return Item{source: source, id: id, title: title, question: question, preview: preview, createdAt: createdAt}
}

// Source returns the originating collection.
func (i *Item) Source() Source { return i.source }

// ID returns the item identifier, unique within its source.
func (i *Item) ID() string { return i.id }

// Title returns the display label, possibly empty.
func (i *Item) Title() string { return i.title }

// Question returns the free-text question. Empty on partial remote documents.
func (i *Item) Question() string { return i.question }

// Preview returns the optional short excerpt.
func (i *Item) Preview() string { return i.preview }

// CreatedAt returns the creation timestamp, zero when unknown.
// Display only, never used for ranking.
func (i *Item) CreatedAt() time.Time { return i.createdAt }
