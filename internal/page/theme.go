package page

import "strings"

// Theme is the page color scheme.
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// DefaultThemeKey is the storage key of the theme preference.
const DefaultThemeKey = "theme"

// ParseTheme accepts "light" or "dark" in any case.
func ParseTheme(s string) (Theme, bool) {
	switch Theme(strings.ToLower(strings.TrimSpace(s))) {
	case Light:
		return Light, true
	case Dark:
		return Dark, true
	}
	return "", false
}

// Other returns the opposite theme.
func (t Theme) Other() Theme {
	if t == Light {
		return Dark
	}
	return Light
}

// initTheme resolves the starting theme: stored preference, then the ambient
// color-scheme signal, then the fallback.
func (c *Controller) initTheme(ambient, fallback Theme) {
	c.mu.Lock()
	defer c.mu.Unlock()

	theme := Dark
	if t, ok := ParseTheme(string(fallback)); ok {
		theme = t
	}
	if t, ok := ParseTheme(string(ambient)); ok {
		theme = t
	}

	stored, ok, err := c.store.Get(c.themeKey)
	if err != nil {
		c.log.Warn("reading theme preference", "error", err)
	} else if ok {
		if t, valid := ParseTheme(stored); valid {
			theme = t
		}
	}

	c.applyTheme(theme)
}

// Theme returns the current theme.
func (c *Controller) Theme() Theme {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.theme
}

// ToggleTheme flips the theme and persists the choice.
func (c *Controller) ToggleTheme() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.applyTheme(c.theme.Other())
	if err := c.store.Set(c.themeKey, string(c.theme)); err != nil {
		c.log.Warn("saving theme preference", "error", err)
	}
}

// applyTheme updates the body classes and the toggle control. The toggle's
// icon shows the current theme and its label names the action a click will
// take.
func (c *Controller) applyTheme(t Theme) {
	c.theme = t

	body := c.doc.Body()
	toggle := c.doc.ByID("theme-toggle")
	icon := toggle.Find("i").First()

	if t == Light {
		body.AddClass("light-theme").RemoveClass("dark-theme")
		icon.RemoveClass("fa-moon").AddClass("fa-sun")
		toggle.SetAttr("aria-label", "Toggle dark mode")
		return
	}
	body.AddClass("dark-theme").RemoveClass("light-theme")
	icon.RemoveClass("fa-sun").AddClass("fa-moon")
	toggle.SetAttr("aria-label", "Toggle light mode")
}
