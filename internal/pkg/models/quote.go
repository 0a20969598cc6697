package models

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
)

// ErrValidation marks caller errors (malformed coordinates, unknown enums,
// bad snapshot data). Handlers map it to a 400 instead of a 500.
var ErrValidation = errors.New("validation error")

// PackageSize classifies the parcel for pricing
type PackageSize string

const (
	PackageSizeSmall      PackageSize = "small"
	PackageSizeMedium     PackageSize = "medium"
	PackageSizeLarge      PackageSize = "large"
	PackageSizeExtraLarge PackageSize = "extra_large"
)

// Valid reports whether the size is a known enum value
func (s PackageSize) Valid() bool {
	switch s {
	case PackageSizeSmall, PackageSizeMedium, PackageSizeLarge, PackageSizeExtraLarge:
		return true
	}
	return false
}

// DeliveryType selects the service level
type DeliveryType string

const (
	DeliveryTypeStandard DeliveryType = "standard"
	DeliveryTypeExpress  DeliveryType = "express"
)

// Valid reports whether the delivery type is a known enum value
func (d DeliveryType) Valid() bool {
	return d == DeliveryTypeStandard || d == DeliveryTypeExpress
}

// Urgency reflects how soon the customer needs the parcel moving
type Urgency string

const (
	UrgencyNormal     Urgency = "normal"
	UrgencyUrgent     Urgency = "urgent"
	UrgencyVeryUrgent Urgency = "very_urgent"
)

// Valid reports whether the urgency is a known enum value
func (u Urgency) Valid() bool {
	return u == UrgencyNormal || u == UrgencyUrgent || u == UrgencyVeryUrgent
}

// OrderAttributes groups the order properties that affect the price
type OrderAttributes struct {
	PackageSize  PackageSize  `json:"package_size"`
	DeliveryType DeliveryType `json:"delivery_type"`
	Urgency      Urgency      `json:"urgency"`
}

// Validate checks all attribute enums
func (a OrderAttributes) Validate() error {
	if !a.PackageSize.Valid() {
		return fmt.Errorf("%w: unknown package size %q", ErrValidation, a.PackageSize)
	}
	if !a.DeliveryType.Valid() {
		return fmt.Errorf("%w: unknown delivery type %q", ErrValidation, a.DeliveryType)
	}
	if !a.Urgency.Valid() {
		return fmt.Errorf("%w: unknown urgency %q", ErrValidation, a.Urgency)
	}
	return nil
}

// RouteHint is a distance/duration pair the caller obtained from a live
// routing provider. When present it is authoritative and used verbatim.
type RouteHint struct {
	DistanceKm      float64 `json:"distance_km"`
	DurationMinutes int     `json:"duration_minutes"`
}

// QuoteRequest is the input to a quote calculation
type QuoteRequest struct {
	Pickup     Coordinate      `json:"pickup"`
	Delivery   Coordinate      `json:"delivery"`
	Attributes OrderAttributes `json:"attributes"`
	RouteHint  *RouteHint      `json:"route_hint,omitempty"`
	// CachedDistanceKm lets the caller reuse a distance from an earlier
	// calculation in the same session. It outranks the server-side route
	// cache but not a live RouteHint.
	CachedDistanceKm *float64 `json:"cached_distance_km,omitempty"`
}

// Validate fails fast on malformed input so a bad price never reaches the
// payment step.
func (r *QuoteRequest) Validate() error {
	if err := r.Pickup.Validate(); err != nil {
		return fmt.Errorf("%w: pickup: %s", ErrValidation, err)
	}
	if err := r.Delivery.Validate(); err != nil {
		return fmt.Errorf("%w: delivery: %s", ErrValidation, err)
	}
	if err := r.Attributes.Validate(); err != nil {
		return err
	}
	if r.RouteHint != nil {
		if r.RouteHint.DistanceKm < 0 || math.IsNaN(r.RouteHint.DistanceKm) {
			return fmt.Errorf("%w: route hint distance %f", ErrValidation, r.RouteHint.DistanceKm)
		}
		if r.RouteHint.DurationMinutes < 0 {
			return fmt.Errorf("%w: route hint duration %d", ErrValidation, r.RouteHint.DurationMinutes)
		}
	}
	if r.CachedDistanceKm != nil && (*r.CachedDistanceKm < 0 || math.IsNaN(*r.CachedDistanceKm)) {
		return fmt.Errorf("%w: cached distance %f", ErrValidation, *r.CachedDistanceKm)
	}
	return nil
}

// DistanceSource records which leg of the fallback chain produced a distance
type DistanceSource string

const (
	DistanceSourceRouteHint DistanceSource = "route_hint"
	DistanceSourceCache     DistanceSource = "cache"
	DistanceSourceHaversine DistanceSource = "haversine"
)

// ResolvedDistance is the outcome of the distance fallback chain
type ResolvedDistance struct {
	DistanceKm      float64        `json:"distance_km"`
	DurationMinutes int            `json:"duration_minutes"`
	Source          DistanceSource `json:"source"`
}

// Quote is a computed, not-yet-persisted price for a candidate trip
type Quote struct {
	AreaID           uuid.UUID      `json:"area_id"`
	AreaName         string         `json:"area_name"`
	DistanceKm       float64        `json:"distance_km"`
	Price            float64        `json:"price"`
	Currency         string         `json:"currency"`
	EstimatedMinutes int            `json:"estimated_minutes"`
	DistanceSource   DistanceSource `json:"distance_source"`
}

// RejectionReason tags why a trip cannot be quoted
type RejectionReason string

const (
	RejectionNoServiceArea        RejectionReason = "NO_SERVICE_AREA"
	RejectionDistanceExceedsLimit RejectionReason = "DISTANCE_EXCEEDS_LIMIT"
)

// Rejection is the expected-outcome refusal of a quote. It is data, not an
// error: the order flow shows it to the customer and blocks submission.
type Rejection struct {
	Reason        RejectionReason `json:"reason"`
	Message       string          `json:"message"`
	DistanceKm    float64         `json:"distance_km,omitempty"`
	MaxDistanceKm *float64        `json:"max_distance_km,omitempty"`
}

// QuoteResult carries exactly one of Quote or Rejection
type QuoteResult struct {
	Quote     *Quote     `json:"quote,omitempty"`
	Rejection *Rejection `json:"rejection,omitempty"`
}

// Rejected reports whether the result is a rejection
func (r *QuoteResult) Rejected() bool {
	return r.Rejection != nil
}

// QuoteEvent is published after every quote calculation
type QuoteEvent struct {
	EventID    uuid.UUID       `json:"event_id"`
	AreaID     *uuid.UUID      `json:"area_id,omitempty"`
	Price      float64         `json:"price,omitempty"`
	Currency   string          `json:"currency,omitempty"`
	DistanceKm float64         `json:"distance_km"`
	Reason     RejectionReason `json:"reason,omitempty"`
	Timestamp  time.Time       `json:"timestamp"`
}
