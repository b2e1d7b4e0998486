package render

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestColorAddSaturates(t *testing.T) {
	c := Color{R: 200, G: 200, B: 200}.Add(Color{R: 100, G: 50, B: 0})
	require.Equal(t, Color{R: 255, G: 250, B: 200}, c)
}

func TestColorSubSaturates(t *testing.T) {
	c := Color{R: 10, G: 0, B: 255}.Sub(Color{R: 50, G: 10, B: 5})
	require.Equal(t, Color{R: 0, G: 0, B: 250}, c)
}

func TestColorScaleAbsAndClamps(t *testing.T) {
	c := Color{R: 100, G: 100, B: 100}.Scale(-3)
	require.Equal(t, Color{R: 100, G: 100, B: 100}, c)
}

func TestColorMulComponentwise(t *testing.T) {
	c := Color{R: 255, G: 128, B: 0}.Mul(Color{R: 255, G: 255, B: 255})
	require.Equal(t, uint8(255), c.R)
	require.Equal(t, uint8(128), c.G)
	require.Equal(t, uint8(0), c.B)
}

func TestColorFromUnitClampsNegative(t *testing.T) {
	c := ColorFromUnit(-1, 0.5, 2)
	require.Equal(t, uint8(255), c.R)
	require.InDelta(t, 127, int(c.G), 1)
	require.Equal(t, uint8(255), c.B)
}
