// Package models defines the identity, audit and naming conventions shared by
// every persisted entity. Concrete entities compose the capability structs and
// describe their fields through a Descriptor built at package init time.
package models

import (
	"time"

	"github.com/google/uuid"
)

// SchemaName is the database schema every entity table lives in.
const SchemaName = "larp_manager"

// HasIdentity is implemented by entities with a UUID primary key.
type HasIdentity interface {
	GetID() uuid.UUID
}

// HasTimestamps is implemented by entities carrying audit timestamps.
type HasTimestamps interface {
	GetCreatedAt() time.Time
	GetUpdatedAt() time.Time
	Touch()
}

// HasName is implemented by entities with a display name.
type HasName interface {
	GetName() string
}

// HasDescription is implemented by entities with an optional description.
type HasDescription interface {
	GetDescription() *string
}

// Base carries the identity and audit fields shared by every entity. Embed it
// in a concrete entity and initialize it with NewBase.
type Base struct {
	ID        uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewBase returns a Base with a fresh random identity and both audit
// timestamps set to the current UTC time.
func NewBase() Base {
	now := time.Now().UTC()
	return Base{
		ID:        uuid.New(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// GetID returns the entity's immutable identifier.
func (b *Base) GetID() uuid.UUID {
	return b.ID
}

// GetCreatedAt returns the creation timestamp.
func (b *Base) GetCreatedAt() time.Time {
	return b.CreatedAt
}

// GetUpdatedAt returns the last-update timestamp.
func (b *Base) GetUpdatedAt() time.Time {
	return b.UpdatedAt
}

// Touch bumps the last-update timestamp. Call it before persisting a mutated
// entity.
func (b *Base) Touch() {
	b.UpdatedAt = time.Now().UTC()
}

// Named carries the display name of an entity.
type Named struct {
	Name string
}

// GetName returns the entity's display name.
func (n *Named) GetName() string {
	return n.Name
}

// Described carries the optional description of an entity.
type Described struct {
	Description *string
}

// GetDescription returns the entity's description, nil when unset.
func (d *Described) GetDescription() *string {
	return d.Description
}
