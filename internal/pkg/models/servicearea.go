package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ServiceArea represents an administrator-defined polygonal pricing zone.
// The pricing path treats a slice of these as an immutable snapshot; only
// administrative tooling mutates them.
type ServiceArea struct {
	ID            uuid.UUID    `json:"id" db:"id"`
	Name          string       `json:"name" db:"name"`
	Boundary      []Coordinate `json:"boundary" db:"-"`
	BasePrice     float64      `json:"base_price" db:"base_price"`
	PricePerKm    float64      `json:"price_per_km" db:"price_per_km"`
	MaxDistanceKm *float64     `json:"max_distance_km,omitempty" db:"max_distance_km"`
	IsActive      bool         `json:"is_active" db:"is_active"`
	// Priority is a tie-break hint carried for administrative tooling; the
	// pricing path selects the higher base price area and does not read it.
	Priority  int       `json:"priority" db:"priority"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Validate checks that the area is usable for pricing. A malformed area in
// the snapshot is a data bug; quoting against it would produce nonsense
// prices, so callers fail fast instead.
func (a *ServiceArea) Validate() error {
	if len(a.Boundary) < 3 {
		return fmt.Errorf("service area %s: boundary needs at least 3 vertices, got %d", a.ID, len(a.Boundary))
	}
	for i, v := range a.Boundary {
		if err := v.Validate(); err != nil {
			return fmt.Errorf("service area %s: boundary vertex %d: %w", a.ID, i, err)
		}
	}
	if a.BasePrice < 0 {
		return fmt.Errorf("service area %s: negative base price %f", a.ID, a.BasePrice)
	}
	if a.PricePerKm < 0 {
		return fmt.Errorf("service area %s: negative price per km %f", a.ID, a.PricePerKm)
	}
	if a.MaxDistanceKm != nil && *a.MaxDistanceKm <= 0 {
		return fmt.Errorf("service area %s: max distance must be positive, got %f", a.ID, *a.MaxDistanceKm)
	}
	return nil
}

// ServiceAreaEvent is published when administrative tooling changes an area,
// so consumers can drop cached snapshots.
type ServiceAreaEvent struct {
	AreaID    uuid.UUID `json:"area_id"`
	Action    string    `json:"action"` // created, updated, deactivated
	Timestamp time.Time `json:"timestamp"`
}
