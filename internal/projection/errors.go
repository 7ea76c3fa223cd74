package projection

import (
	"errors"
	"fmt"
	"strconv"

	"open-football/internal/world"
)

// ErrNotLoaded means the simulation has not published its first Snapshot yet.
var ErrNotLoaded = world.ErrNotLoaded

// ErrIndexUnavailable means a Snapshot is loaded but carries no slug index.
// This is an internal inconsistency, not a caller mistake.
var ErrIndexUnavailable = errors.New("slug index not available")

// NotFoundError reports an identifier that resolves to no entity.
type NotFoundError struct {
	Entity     world.EntityKind
	Identifier string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s '%s' not found", e.Entity, e.Identifier)
}

// InvalidInputError reports a malformed request value. It is always raised
// before any Snapshot access.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Error kinds, used as metric labels and for transport mapping.
const (
	KindNotLoaded        = "not_loaded"
	KindIndexUnavailable = "index_unavailable"
	KindNotFound         = "not_found"
	KindInvalidInput     = "invalid_input"
	KindInternal         = "internal"
)

// ErrorKind classifies an error returned by the Service.
func ErrorKind(err error) string {
	var nf *NotFoundError
	var inv *InvalidInputError
	switch {
	case errors.Is(err, ErrNotLoaded):
		return KindNotLoaded
	case errors.Is(err, ErrIndexUnavailable):
		return KindIndexUnavailable
	case errors.As(err, &nf):
		return KindNotFound
	case errors.As(err, &inv):
		return KindInvalidInput
	}
	return KindInternal
}

// ParsePlayerID validates a textual player id.
func ParsePlayerID(raw string) (world.PlayerID, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, &InvalidInputError{Field: "player_id", Reason: fmt.Sprintf("%q is not a numeric id", raw)}
	}
	return world.PlayerID(id), nil
}

// ParseLimit validates a textual result limit. An empty string yields def.
func ParseLimit(raw string, def int) (int, error) {
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, &InvalidInputError{Field: "limit", Reason: fmt.Sprintf("%q is not a non-negative integer", raw)}
	}
	return n, nil
}
