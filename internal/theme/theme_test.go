package theme

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"startrek/internal/api"
)

func TestDOSPalette(t *testing.T) {
	testCases := []struct {
		name    string
		color   tcell.Color
		r, g, b int32
	}{
		{"dark red", DOSRed, 128, 0, 0},
		{"dark magenta", DOSMagenta, 128, 0, 128},
		{"dark cyan", DOSCyan, 0, 128, 128},
		{"brown", DOSBrown, 128, 128, 0},
		{"dark gray", DOSDarkGray, 128, 128, 128},
		{"bright red", DOSLightRed, 255, 0, 0},
		{"bright green", DOSLightGreen, 0, 255, 0},
		{"bright yellow", DOSYellow, 255, 255, 0},
		{"bright cyan", DOSLightCyan, 0, 255, 255},
	}

	for _, tc := range testCases {
		r, g, b := tc.color.RGB()
		if r != tc.r || g != tc.g || b != tc.b {
			t.Errorf("%s: expected RGB(%d,%d,%d), got RGB(%d,%d,%d)", tc.name, tc.r, tc.g, tc.b, r, g, b)
		}
	}
}

func TestDOSPens(t *testing.T) {
	dos := NewDOSTheme()

	assert.Equal(t, Pen{Foreground: DOSLightRed, Bold: true}, dos.Pen(api.StyleConditionRed))
	assert.Equal(t, Pen{Foreground: DOSMagenta}, dos.Pen(api.StyleEnemyCount))
	assert.Equal(t, Pen{Foreground: DOSLightMagenta, Bold: true}, dos.Pen(api.StyleEnemyCountBold))
	assert.True(t, dos.Pen(api.StyleRedacted).Dim)
	assert.Equal(t, tcell.ColorDefault, dos.Pen(api.StyleDefault).Foreground)
}

func TestMonoPensUseAttributesOnly(t *testing.T) {
	mono := NewMonoTheme()
	styles := []api.Style{
		api.StyleDefault, api.StyleConditionRed, api.StyleConditionYellow,
		api.StyleConditionGreen, api.StyleConditionDocked, api.StyleRedacted,
		api.StyleEnemyCount, api.StyleBaseCount, api.StyleStarCount,
		api.StyleEnemyCountBold, api.StyleBaseCountBold, api.StyleStarCountBold,
		api.StyleBold,
	}
	for _, s := range styles {
		assert.Equal(t, tcell.ColorDefault, mono.Pen(s).Foreground, s.String())
	}
	assert.True(t, mono.Pen(api.StyleConditionRed).Bold)
	assert.True(t, mono.Pen(api.StyleRedacted).Dim)
	assert.False(t, mono.Pen(api.StyleEnemyCount).Bold)
}

func TestThemeManager(t *testing.T) {
	tm := NewThemeManager()

	assert.Equal(t, DOSThemeName, tm.Current().Name())
	assert.Equal(t, []string{"dos", "mono"}, tm.Available())

	require.NoError(t, tm.SetTheme(MonoThemeName))
	assert.Equal(t, MonoThemeName, tm.Current().Name())

	assert.Error(t, tm.SetTheme("telix"))
	assert.Equal(t, MonoThemeName, tm.Current().Name())
}
