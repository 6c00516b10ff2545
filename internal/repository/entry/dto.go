package entry

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/eunyuson/graceroom/internal/domain/item"
)

// record is the stored JSON shape of a content item. The ID lives in the key.
type record struct {
	Title     string    `json:"title,omitempty"`
	Question  string    `json:"question"`
	Preview   string    `json:"preview,omitempty"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

func marshalRecord(it item.Item) ([]byte, error) {
	return json.Marshal(record{
		Title:     it.Title(),
		Question:  it.Question(),
		Preview:   it.Preview(),
		CreatedAt: it.CreatedAt(),
	})
}

// unmarshalRecord hydrates an item from storage. JSON.GET with the "$" path
// wraps the document in a one-element array; a bare object is also accepted.
func unmarshalRecord(source item.Source, id string, raw []byte) (item.Item, error) {
	var rec record
	if err := json.Unmarshal(raw, &rec); err != nil {
		var arr []record
		if err2 := json.Unmarshal(raw, &arr); err2 != nil || len(arr) == 0 {
			return item.Reconstruct(source, id, "", "", "", time.Time{}),
				fmt.Errorf("unmarshal item %s: %w", id, err)
		}
		rec = arr[0]
	}
	return item.Reconstruct(source, id, rec.Title, rec.Question, rec.Preview, rec.CreatedAt), nil
}
