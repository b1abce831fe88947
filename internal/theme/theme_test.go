package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"brewer-backend/config"
)

func TestFromConfig(t *testing.T) {
	cfg := config.ThemeConfig{
		Name:         "main",
		DarkColor:    "#000",
		LightColor:   "#fff",
		AccentColor:  "#c00",
		DefaultFont:  "Avenir",
		FontSize:     15,
		BarStyleDark: true,
	}

	th := FromConfig(cfg)
	assert.Equal(t, "#fff", th.NavigationBar.TitleColor)
	assert.Equal(t, "#000", th.NavigationBar.BarTintColor)
	assert.Equal(t, 17, th.NavigationBar.TitleFont.Size)
	assert.Equal(t, Font{Name: "Avenir", Size: 15}, th.DefaultFont)

	cfg.BarStyleDark = false
	th = FromConfig(cfg)
	assert.Equal(t, "#000", th.NavigationBar.TitleColor)
	assert.Equal(t, "#fff", th.NavigationBar.BarTintColor)
}
