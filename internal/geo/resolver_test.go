package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindVerbatim(t *testing.T) {
	r := NewResolver()

	city, ok := r.Find("Ankara hava durumu nasıl")
	require.True(t, ok)
	assert.Equal(t, "Ankara", city)
}

func TestFindFolded(t *testing.T) {
	r := NewResolver()

	city, ok := r.Find("izmirde hava nasil")
	require.True(t, ok)
	assert.Equal(t, "İzmir", city)

	city, ok = r.Find("bugun usak icin hava durumu")
	require.True(t, ok)
	assert.Equal(t, "Uşak", city)
}

func TestFindLongestWins(t *testing.T) {
	r := NewResolver()

	// The full name must win over any shorter name hiding inside it.
	city, ok := r.Find("Kahramanmaraş hava durumu")
	require.True(t, ok)
	assert.Equal(t, "Kahramanmaraş", city)
}

func TestFindNone(t *testing.T) {
	r := NewResolver()

	_, ok := r.Find("saat kaç")
	assert.False(t, ok)
}
