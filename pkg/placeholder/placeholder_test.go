package placeholder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSize(t *testing.T) {
	cases := []struct {
		w, h         string
		wantW, wantH int
	}{
		{"400", "225", 400, 225},
		{"abc", "225", DefaultWidth, DefaultHeight},
		{"0", "-5", 1, 1},
		{"99999", "40", MaxSide, 40},
	}
	for _, tc := range cases {
		w, h := Size(tc.w, tc.h)
		assert.Equal(t, tc.wantW, w, "%s x %s", tc.w, tc.h)
		assert.Equal(t, tc.wantH, h, "%s x %s", tc.w, tc.h)
	}
}

func TestThemeForIsStable(t *testing.T) {
	// 400+225 = 625, 625 mod 4 = 1
	assert.Equal(t, "Mountain Biking", ThemeFor(400, 225).Label)
	assert.Equal(t, ThemeFor(40, 40), ThemeFor(40, 40))
	assert.Equal(t, "Skateboard Tricks", ThemeFor(40, 40).Label)
}

func TestRender(t *testing.T) {
	svg, err := Render(400, 225)
	require.NoError(t, err)
	s := string(svg)
	assert.Contains(t, s, `width="400" height="225"`)
	assert.Contains(t, s, "Mountain Biking")
	assert.Contains(t, s, "#f093fb")
	assert.Contains(t, s, "400×225")
}
