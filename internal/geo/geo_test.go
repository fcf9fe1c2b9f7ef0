package geo_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"triptales/internal/geo"
)

func TestCountryName(t *testing.T) {
	tests := []struct {
		name     string
		locality string
		want     string
	}{
		{"city and country", "Sapporo, Japan", "Japan"},
		{"three segments", "Shibuya, Tokyo, Japan", "Japan"},
		{"no comma uses whole string", "Singapore", "Singapore"},
		{"whitespace trimmed", "Bangkok,   Thailand  ", "Thailand"},
		{"trailing comma", "Osaka,", ""},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, geo.CountryName(tt.locality))
		})
	}
}

func TestStaticResolver(t *testing.T) {
	loc := geo.Location{Latitude: 43.06, Longitude: 141.35, Locality: "Sapporo, Japan"}
	got, err := geo.Static(loc).Resolve(context.Background())

	require.NoError(t, err)
	assert.Equal(t, loc, got)
}
