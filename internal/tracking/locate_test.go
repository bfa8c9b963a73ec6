package tracking

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func handAt(wrist, thumb, index Landmark) Hand {
	var h Hand
	h.Landmarks[Wrist] = wrist
	h.Landmarks[ThumbTip] = thumb
	h.Landmarks[IndexTip] = index
	return h
}

func TestLocateNoHands(t *testing.T) {
	t.Parallel()

	assert.Nil(t, Locate(nil, 640, 480, false))
	assert.Nil(t, Locate([]Hand{}, 640, 480, true))
}

func TestLocateFirstHand(t *testing.T) {
	t.Parallel()

	first := handAt(
		Landmark{X: 0.5, Y: 0.25},
		Landmark{X: 0.25, Y: 0.25},
		Landmark{X: 158.0 / 512, Y: 168.0 / 512},
	)
	second := handAt(Landmark{X: 0.9, Y: 0.9}, Landmark{}, Landmark{})

	got := Locate([]Hand{first, second}, 512, 512, false)
	require.NotNil(t, got)
	if diff := cmp.Diff(&HandPosition{X: 256, Y: 128, Pinch: 50}, got); diff != "" {
		t.Errorf("Locate() mismatch (-want +got):\n%s", diff)
	}
}

func TestLocateTruncatesBeforeMeasuring(t *testing.T) {
	t.Parallel()

	// 0.0999*640 = 63.9 and 0.1001*640 = 64.06 land on pixels 63 and 64.
	h := handAt(Landmark{}, Landmark{X: 0.0999}, Landmark{X: 0.1001})
	got := Locate([]Hand{h}, 640, 480, false)
	require.NotNil(t, got)
	assert.Equal(t, 1.0, got.Pinch)
}

func TestLocateMirror(t *testing.T) {
	t.Parallel()

	h := handAt(Landmark{X: 0.25, Y: 0.5}, Landmark{X: 0.5}, Landmark{X: 0.75})
	got := Locate([]Hand{h}, 640, 480, true)
	require.NotNil(t, got)
	assert.Equal(t, 480, got.X)
	assert.Equal(t, 240, got.Y)
	assert.Equal(t, 160.0, got.Pinch)
}
