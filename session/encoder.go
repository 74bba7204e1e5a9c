package session

import (
	"encoding/json"
	"errors"
	"strings"
)

const recordMaxSize = 64 * 1024

// ErrRecordInvalid is returned by decodeRecord when the persisted bytes do
// not form a well-formed identity record. Stores treat it as "no session"
// and purge the offending record.
var ErrRecordInvalid = errors.New("session record invalid")

// record is the fixed external layout of the persisted session. The field
// names are a compatibility contract with earlier clients and must not
// change.
type record struct {
	ID     string `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

func encodeRecord(ident Identity) ([]byte, error) {
	return json.Marshal(record{
		ID:     ident.ID,
		Email:  ident.Email,
		Name:   ident.DisplayName,
		Avatar: ident.AvatarRef,
	})
}

// decodeRecord strictly decodes a persisted record. Unknown top-level keys
// are tolerated; wrong value types, non-object payloads, oversized blobs,
// and records missing an id or email are all ErrRecordInvalid.
func decodeRecord(data []byte) (Identity, error) {
	if len(data) == 0 || len(data) > recordMaxSize {
		return Identity{}, ErrRecordInvalid
	}

	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return Identity{}, ErrRecordInvalid
	}

	if strings.TrimSpace(rec.ID) == "" || strings.TrimSpace(rec.Email) == "" {
		return Identity{}, ErrRecordInvalid
	}

	return Identity{
		ID:          rec.ID,
		Email:       rec.Email,
		DisplayName: rec.Name,
		AvatarRef:   rec.Avatar,
	}, nil
}
