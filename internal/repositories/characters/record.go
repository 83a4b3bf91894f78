package characters

import (
	"encoding/json"
	"sort"
	"time"

	"github.com/jkode-CMU/dndbeyond/internal/domain/character"
	apperr "github.com/jkode-CMU/dndbeyond/internal/errors"
)

// characterRecord is the serialized form of a character at rest. The
// character fields are inlined so the stored document stays readable by
// older sheets that carry no bookkeeping fields.
type characterRecord struct {
	character.Character
	CreatedAt time.Time `json:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	Revision  int64     `json:"revision,omitempty"`
}

func newRecord(char *character.Character, now time.Time) *characterRecord {
	return &characterRecord{
		Character: *char.Clone(),
		CreatedAt: now,
		UpdatedAt: now,
		Revision:  1,
	}
}

// next returns a copy of the record carrying the updated character with
// the revision bumped. The creation timestamp survives updates.
func (r *characterRecord) next(char *character.Character, now time.Time) *characterRecord {
	return &characterRecord{
		Character: *char.Clone(),
		CreatedAt: r.CreatedAt,
		UpdatedAt: now,
		Revision:  r.Revision + 1,
	}
}

func (r *characterRecord) toCharacter() *character.Character {
	char := r.Character.Clone()
	char.Normalize()
	return char
}

func decodeRecord(data []byte) (*characterRecord, error) {
	var rec characterRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, apperr.WrapWithCode(err, apperr.CodeInternal, "failed to decode character record")
	}
	return &rec, nil
}

func encodeRecord(rec *characterRecord) ([]byte, error) {
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return nil, apperr.WrapWithCode(err, apperr.CodeInternal, "failed to encode character record")
	}
	return data, nil
}

func sortByName(chars []*character.Character) {
	sort.Slice(chars, func(i, j int) bool {
		if chars[i].Name != chars[j].Name {
			return chars[i].Name < chars[j].Name
		}
		return chars[i].ID < chars[j].ID
	})
}

func validateCharacter(char *character.Character) error {
	if char == nil {
		return apperr.InvalidArgument("character cannot be nil")
	}
	if char.ID == "" {
		return apperr.InvalidArgument("character ID is required")
	}
	return nil
}
