package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"triptales/internal/geo"
)

func TestBuildDraft_NullIslandCoordinates(t *testing.T) {
	args := submitArgs{
		title:       "Gulf of Guinea",
		description: "Buoy visit",
		location:    "Null Island, Atlantic Ocean",
		lat:         0,
		lon:         0,
		hasCoords:   true,
	}

	draft, err := buildDraft(args, geo.Location{Locality: args.location})

	require.NoError(t, err)
	require.NotNil(t, draft.Latitude)
	require.NotNil(t, draft.Longitude)
	assert.Zero(t, *draft.Latitude)
	assert.Zero(t, *draft.Longitude)
}

func TestBuildDraft_NoCoordinateFlags(t *testing.T) {
	args := submitArgs{
		title:       "Hokkaido Trip",
		description: "Snow!",
		location:    "Sapporo, Japan",
	}

	draft, err := buildDraft(args, geo.Location{Locality: args.location})

	require.NoError(t, err)
	assert.Nil(t, draft.Latitude)
	assert.Nil(t, draft.Longitude)
}

func TestBuildDraft_CompanionListTrimmed(t *testing.T) {
	args := submitArgs{
		title:       "Hokkaido Trip",
		description: "Snow!",
		location:    "Sapporo, Japan",
		companions:  " u1, u2 ,,u3 ",
	}

	draft, err := buildDraft(args, geo.Location{Locality: args.location})

	require.NoError(t, err)
	assert.Equal(t, []string{"u1", "u2", "u3"}, draft.CompanionIDs)
}
