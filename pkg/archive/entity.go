package archive

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrNotFound is returned when no saved resume matches the requested id.
var ErrNotFound = errors.New("saved resume not found")

// Record is one saved resume: the serialized aggregate plus the metadata
// shown in listings.
type Record struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	SavedAt  time.Time       `json:"savedAt"`
	Document json.RawMessage `json:"resume"`
}

// Summary is the listing view of a record, without the document body.
type Summary struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	SavedAt time.Time `json:"savedAt"`
}

// Repository is the persistence port for saved resumes. Saving the same id
// twice overwrites the earlier record.
type Repository interface {
	Save(ctx context.Context, rec Record) error
	List(ctx context.Context, limit, offset int) ([]Summary, error)
	Get(ctx context.Context, id string) (Record, error)
}

// NewID derives a save identifier from the wall clock. Saves within the same
// second share an id and overwrite each other, matching the repository's
// upsert semantics.
func NewID(now time.Time) string {
	return fmt.Sprintf("resume_%s", now.Format("20060102_150405"))
}
