package palette

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

// ebiten reads color.RGBA as premultiplied, so no channel may exceed alpha.
func assertPremultiplied(t *testing.T, name string, c color.RGBA) {
	t.Helper()
	assert.LessOrEqual(t, c.R, c.A, "%s red", name)
	assert.LessOrEqual(t, c.G, c.A, "%s green", name)
	assert.LessOrEqual(t, c.B, c.A, "%s blue", name)
}

func TestColoursArePremultiplied(t *testing.T) {
	t.Parallel()

	named := map[string]color.RGBA{
		"background": ColBackground,
		"ball":       ColBall,
		"obstacle":   ColObstacle,
		"text":       ColText,
		"highlight":  ColHighlight,
		"trail":      ColTrail,
	}
	for name, c := range named {
		assertPremultiplied(t, name, c)
	}
	for _, c := range Neon {
		assertPremultiplied(t, "neon", c)
	}
}

func TestTrailIsTranslucentWhite(t *testing.T) {
	t.Parallel()

	assert.Equal(t, uint8(0x32), ColTrail.A)
	r, g, b, a := ColTrail.RGBA()
	assert.Equal(t, a, r)
	assert.Equal(t, a, g)
	assert.Equal(t, a, b)

	nc := color.NRGBAModel.Convert(ColTrail).(color.NRGBA)
	assert.Equal(t, color.NRGBA{0xff, 0xff, 0xff, 0x32}, nc)
}

func TestFade(t *testing.T) {
	t.Parallel()

	assert.Equal(t, color.RGBA{}, Fade(ColBall, 0))
	assert.Equal(t, color.RGBA{}, Fade(ColBall, -1))
	assert.Equal(t, ColBall, Fade(ColBall, 1))
	assert.Equal(t, ColBall, Fade(ColBall, 2))

	for _, f := range []float64{0.1, 0.25, 0.5, 0.9} {
		assertPremultiplied(t, "faded ball", Fade(ColBall, f))
		assertPremultiplied(t, "faded obstacle", Fade(ColObstacle, f))
	}
	half := Fade(ColText, 0.5)
	assert.Equal(t, uint8(127), half.A)
}
