package techrule_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yangwei-lim/device-router/techrule"
)

// fixtureTech returns a minimal, internally-consistent rule table large
// enough to exercise View over the default 7 layers (poly + metal1..6).
func fixtureTech() *techrule.Tech {
	t := &techrule.Tech{
		Unit:            techrule.Unit{User: 0.001, Grid: 0.0025},
		MinWidth:        map[string]float64{},
		MinSpacing:      map[techrule.LayerPair]float64{},
		MinEnclosure:    map[techrule.LayerPair]float64{},
		MinEnclosureEnd: map[techrule.LayerPair]float64{},
		MinSize:         map[string]float64{},
		MinArea:         map[string]float64{},
	}
	layers := []string{"poly", "metal1", "metal2", "metal3", "metal4", "metal5", "metal6"}
	for _, l := range layers {
		t.MinWidth[l] = 100
		t.MinSpacing[techrule.LayerPair{A: l, B: l}] = 100
	}
	return t
}

func TestNewView_Pitch(t *testing.T) {
	tech := fixtureTech()
	v, err := techrule.NewView(tech, techrule.DefaultLayers)
	require.NoError(t, err)
	assert.Equal(t, techrule.DefaultLayers, v.Layers())
	for z := 0; z < v.Layers(); z++ {
		assert.InDelta(t, 200000.0, v.Pitch(z), 1e-6)
	}
}

func TestNewView_LayerAndViaNames(t *testing.T) {
	tech := fixtureTech()
	v, err := techrule.NewView(tech, techrule.DefaultLayers)
	require.NoError(t, err)

	assert.Equal(t, "poly", v.LayerName(0))
	assert.Equal(t, "metal3", v.LayerName(3))
	assert.Equal(t, "contact", v.ViaName(0))
	assert.Equal(t, "via12", v.ViaName(1))
	assert.Equal(t, "via56", v.ViaName(5))
	// Topmost metal reuses the via below it rather than an unmanufacturable via67.
	assert.Equal(t, "via56", v.ViaName(6))

	z, ok := v.RouteIndex("metal4")
	require.True(t, ok)
	assert.Equal(t, 4, z)

	_, ok = v.RouteIndex("metal99")
	assert.False(t, ok)
}

func TestNewView_MissingRule(t *testing.T) {
	tech := fixtureTech()
	delete(tech.MinWidth, "metal3")

	_, err := techrule.NewView(tech, techrule.DefaultLayers)
	require.Error(t, err)
	assert.True(t, errors.Is(err, techrule.ErrMissingRule))
	assert.Contains(t, err.Error(), "metal3")
}

func TestViaBetween(t *testing.T) {
	tech := fixtureTech()
	v, err := techrule.NewView(tech, techrule.DefaultLayers)
	require.NoError(t, err)

	assert.Equal(t, "contact", v.ViaBetween(0, 1))
	assert.Equal(t, "contact", v.ViaBetween(1, 0))
	assert.Equal(t, "via23", v.ViaBetween(2, 3))
	assert.Equal(t, "via23", v.ViaBetween(3, 2))
}
