package chi

import (
	"time"

	"github.com/eunyuson/graceroom/internal/domain/guestbook"
	"github.com/eunyuson/graceroom/internal/domain/item"
	"github.com/eunyuson/graceroom/internal/domain/memo"
	"github.com/eunyuson/graceroom/internal/domain/related"
)

// itemDTO is the JSON shape of a content item.
type itemDTO struct {
	Source    string     `json:"source"`
	ID        string     `json:"id"`
	Title     string     `json:"title,omitempty"`
	Question  string     `json:"question"`
	Preview   string     `json:"preview,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
	Views     *int64     `json:"views,omitempty"`
}

func itemToDTO(it item.Item) itemDTO {
	dto := itemDTO{
		Source:   string(it.Source()),
		ID:       it.ID(),
		Title:    it.Title(),
		Question: it.Question(),
		Preview:  it.Preview(),
	}
	if !it.CreatedAt().IsZero() {
		t := it.CreatedAt()
		dto.CreatedAt = &t
	}
	return dto
}

func itemToDTOWithViews(it item.Item, views int64) itemDTO {
	dto := itemToDTO(it)
	dto.Views = &views
	return dto
}

// matchDTO pairs an item with its similarity score.
type matchDTO struct {
	Item  itemDTO `json:"item"`
	Score float64 `json:"score"`
}

func groupsToDTO(groups map[item.Source][]related.Match) map[string][]matchDTO {
	out := make(map[string][]matchDTO, len(groups))
	for src, matches := range groups {
		ms := make([]matchDTO, len(matches))
		for i := range matches {
			ms[i] = matchDTO{Item: itemToDTO(matches[i].Item()), Score: matches[i].Score()}
		}
		out[string(src)] = ms
	}
	return out
}

// entryDTO is the JSON shape of a guestbook entry.
type entryDTO struct {
	ID        string    `json:"id"`
	Author    string    `json:"author"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

func entryToDTO(e guestbook.Entry) entryDTO {
	return entryDTO{ID: e.ID(), Author: e.Author(), Message: e.Message(), CreatedAt: e.CreatedAt()}
}

// memoDTO is the JSON shape of a memo.
type memoDTO struct {
	ID        string    `json:"id"`
	Author    string    `json:"author"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

func memoToDTO(m memo.Memo) memoDTO {
	return memoDTO{ID: m.ID(), Author: m.Author(), Body: m.Body(), CreatedAt: m.CreatedAt()}
}
