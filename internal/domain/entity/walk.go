package entity

import (
	"encoding/json"

	"github.com/paulmach/orb"
)

// WalkStatus is the lifecycle state of a walk request. The numeric values are
// part of the persisted format and must not be reordered.
type WalkStatus int

const (
	WalkStatusPending   WalkStatus = 0
	WalkStatusActive    WalkStatus = 1
	WalkStatusCancelled WalkStatus = 2
	WalkStatusComplete  WalkStatus = 3
	WalkStatusRejected  WalkStatus = 4
)

// Terminal reports whether no further transition is defined out of the status.
func (s WalkStatus) Terminal() bool {
	return s == WalkStatusCancelled || s == WalkStatusComplete || s == WalkStatusRejected
}

func (s WalkStatus) String() string {
	switch s {
	case WalkStatusPending:
		return "pending"
	case WalkStatusActive:
		return "active"
	case WalkStatusCancelled:
		return "cancelled"
	case WalkStatusComplete:
		return "complete"
	case WalkStatusRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// GeoPoint is a geographic coordinate persisted as {lat,lng}.
type GeoPoint struct {
	Point orb.Point
}

// NewGeoPoint builds a GeoPoint from a latitude/longitude pair.
func NewGeoPoint(lat, lng float64) GeoPoint {
	return GeoPoint{Point: orb.Point{lng, lat}}
}

// Lat returns the latitude component.
func (g GeoPoint) Lat() float64 { return g.Point.Lat() }

// Lng returns the longitude component.
func (g GeoPoint) Lng() float64 { return g.Point.Lon() }

type geoPointDoc struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// MarshalJSON encodes the point in the stored {lat,lng} shape rather than
// orb's native [lng,lat] array.
func (g GeoPoint) MarshalJSON() ([]byte, error) {
	return json.Marshal(geoPointDoc{Lat: g.Lat(), Lng: g.Lng()})
}

// UnmarshalJSON decodes the stored {lat,lng} shape.
func (g *GeoPoint) UnmarshalJSON(data []byte) error {
	var doc geoPointDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	g.Point = orb.Point{doc.Lng, doc.Lat}

	return nil
}

// Walk is a shared walk-request document stored at walks/{id}. It is the
// single source of truth for the lifecycle status; the two parties only keep
// back-references pointing at it.
type Walk struct {
	ID       string     `json:"-"` // Generated key, merged in when reading.
	Walker   string     `json:"walker"`
	Owner    string     `json:"owner"`
	Dogs     []string   `json:"dogs"`
	Start    int64      `json:"start"` // Epoch milliseconds.
	End      int64      `json:"end"`   // Epoch milliseconds.
	Location GeoPoint   `json:"location"`
	Status   WalkStatus `json:"status"`
	Notes    []*string  `json:"notes,omitempty"`   // Append-only, entries may be nil.
	History  []string   `json:"history,omitempty"` // Append-only human-readable event log.
}

// Counterparty resolves the other party of a walk: the walker when the actor
// is the owner, the owner otherwise.
func (w *Walk) Counterparty(actorID string) string {
	if actorID == w.Owner {
		return w.Walker
	}

	return w.Owner
}
