// Package theme carries the colors and fonts attached to every screen.
package theme

import "brewer-backend/config"

// Font is a named font at a point size.
type Font struct {
	Name string `json:"name"`
	Size int    `json:"size"`
}

// NavigationBar styles the bar above a screen.
type NavigationBar struct {
	TitleFont    Font   `json:"titleFont"`
	TitleColor   string `json:"titleColor"`
	TintColor    string `json:"tintColor"`
	BarTintColor string `json:"barTintColor"`
	Translucent  bool   `json:"translucent"`
}

// Configuration is an immutable theme.
type Configuration struct {
	Name          string        `json:"name"`
	LightColor    string        `json:"lightColor"`
	DarkColor     string        `json:"darkColor"`
	AccentColor   string        `json:"accentColor"`
	DefaultFont   Font          `json:"defaultFont"`
	NavigationBar NavigationBar `json:"navigationBar"`
}

// FromConfig builds the theme from the theme section of the configuration.
func FromConfig(cfg config.ThemeConfig) *Configuration {
	titleColor, barColor := cfg.LightColor, cfg.DarkColor
	if !cfg.BarStyleDark {
		titleColor, barColor = cfg.DarkColor, cfg.LightColor
	}
	return &Configuration{
		Name:        cfg.Name,
		LightColor:  cfg.LightColor,
		DarkColor:   cfg.DarkColor,
		AccentColor: cfg.AccentColor,
		DefaultFont: Font{Name: cfg.DefaultFont, Size: cfg.FontSize},
		NavigationBar: NavigationBar{
			TitleFont:    Font{Name: cfg.DefaultFont, Size: cfg.FontSize + 2},
			TitleColor:   titleColor,
			TintColor:    titleColor,
			BarTintColor: barColor,
		},
	}
}

// Configurable is implemented by anything a theme can be applied to.
type Configurable interface {
	ConfigureWithTheme(*Configuration)
}
