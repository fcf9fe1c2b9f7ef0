// Package geo holds the location-resolver contract and the rule that
// derives a country name from reverse-geocoded location text.
package geo

import (
	"context"
	"strings"
)

// Location is a resolved device position with its human-readable locality
// string, e.g. "Sapporo, Japan".
type Location struct {
	Latitude  float64
	Longitude float64
	Locality  string
}

// Resolver obtains the current position. The platform implementation sits
// behind this interface because resolution is an external OS service that
// may be slow, denied, or unavailable.
type Resolver interface {
	Resolve(ctx context.Context) (Location, error)
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func(ctx context.Context) (Location, error)

// Resolve calls f.
func (f ResolverFunc) Resolve(ctx context.Context) (Location, error) {
	return f(ctx)
}

// Static is a Resolver that always reports the same location. Useful for
// tests and for flows where the user picked the place manually.
func Static(loc Location) Resolver {
	return ResolverFunc(func(context.Context) (Location, error) {
		return loc, nil
	})
}

// CountryName derives the country from a locality string: the segment
// after the last comma, trimmed of whitespace. A string with no comma is
// used whole, so a bare city name is treated as a country name and the
// lookup simply misses.
func CountryName(locality string) string {
	idx := strings.LastIndex(locality, ",")
	return strings.TrimSpace(locality[idx+1:])
}
