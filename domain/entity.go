// Package domain contains the core concepts of the marketplace and trips.
// No storage, network or HTTP logic should be added here.
package domain

import (
	"basecamp/errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Entity carries the identity and bookkeeping timestamps shared by every aggregate.
type Entity struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewEntity(now time.Time) Entity {
	return Entity{
		ID:        uuid.New(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Touch refreshes UpdatedAt without changing anything else.
func (e *Entity) Touch(now time.Time) {
	e.UpdatedAt = now
}

// ParseID decodes the string form of an identifier received from a client.
func ParseID(raw, field string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: invalid %s id %q", errors.ErrInvalidReference, field, raw)
	}
	return id, nil
}
