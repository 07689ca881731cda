package page

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type brokenStorage struct{}

func (brokenStorage) Get(string) (string, bool, error) { return "", false, errors.New("disk gone") }
func (brokenStorage) Set(string, string) error        { return errors.New("disk gone") }

func (f *fixture) visibleTheme() (bodyClass, icon, label string) {
	body := f.find("body")
	switch {
	case body.HasClass("light-theme") && !body.HasClass("dark-theme"):
		bodyClass = "light"
	case body.HasClass("dark-theme") && !body.HasClass("light-theme"):
		bodyClass = "dark"
	}
	i := f.find("#theme-toggle i")
	switch {
	case i.HasClass("fa-sun") && !i.HasClass("fa-moon"):
		icon = "sun"
	case i.HasClass("fa-moon") && !i.HasClass("fa-sun"):
		icon = "moon"
	}
	return bodyClass, icon, f.find("#theme-toggle").AttrOr("aria-label", "")
}

func TestThemeDefaultsToDark(t *testing.T) {
	f := newFixture(t, staticSource(testDocument()))

	assert.Equal(t, Dark, f.ctrl.Theme())
	body, icon, label := f.visibleTheme()
	assert.Equal(t, "dark", body)
	assert.Equal(t, "moon", icon)
	assert.Equal(t, "Toggle light mode", label)

	_, stored, _ := f.store.Get(DefaultThemeKey)
	assert.False(t, stored, "initial resolution does not persist")
}

func TestThemeResolutionOrder(t *testing.T) {
	tests := []struct {
		name     string
		stored   string
		ambient  Theme
		fallback Theme
		want     Theme
	}{
		{"stored wins over ambient", "light", Dark, Dark, Light},
		{"ambient when nothing stored", "", Light, Dark, Light},
		{"fallback when no signal", "", "", Light, Light},
		{"invalid stored value ignored", "sepia", Light, Dark, Light},
		{"invalid fallback means dark", "", "", "blue", Dark},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewMemoryStorage()
			if tt.stored != "" {
				require.NoError(t, store.Set(DefaultThemeKey, tt.stored))
			}
			f := newFixture(t, staticSource(testDocument()), func(o *Options) {
				o.Storage = store
				o.Ambient = tt.ambient
				o.DefaultTheme = tt.fallback
			})
			assert.Equal(t, tt.want, f.ctrl.Theme())
		})
	}
}

func TestThemeToggleUpdatesControlAndPersists(t *testing.T) {
	f := newLoaded(t)

	f.ctrl.ToggleTheme()
	assert.Equal(t, Light, f.ctrl.Theme())
	body, icon, label := f.visibleTheme()
	assert.Equal(t, "light", body)
	assert.Equal(t, "sun", icon)
	assert.Equal(t, "Toggle dark mode", label)

	v, ok, err := f.store.Get(DefaultThemeKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "light", v)
}

func TestThemeToggleTwiceRestoresState(t *testing.T) {
	store := NewMemoryStorage()
	require.NoError(t, store.Set("site-theme", "light"))
	f := newLoaded(t, func(o *Options) {
		o.Storage = store
		o.ThemeKey = "site-theme"
	})

	b0, i0, l0 := f.visibleTheme()
	f.bus.Dispatch(Event{Type: Click, Target: "theme-toggle"})
	f.bus.Dispatch(Event{Type: Click, Target: "theme-toggle"})
	b1, i1, l1 := f.visibleTheme()

	assert.Equal(t, []string{b0, i0, l0}, []string{b1, i1, l1})
	v, _, _ := store.Get("site-theme")
	assert.Equal(t, "light", v)
}

func TestThemeAppliedBeforeLoadAndAfterFailure(t *testing.T) {
	store := NewMemoryStorage()
	require.NoError(t, store.Set(DefaultThemeKey, "light"))
	f := newFixture(t, failingSource(errors.New("offline")), func(o *Options) { o.Storage = store })

	assert.Equal(t, Light, f.ctrl.Theme())
	require.Error(t, f.ctrl.Init(context.Background()))
	assert.True(t, f.find("body").HasClass("light-theme"))
}

func TestThemeStorageErrorsAreLogged(t *testing.T) {
	f := newFixture(t, staticSource(testDocument()), func(o *Options) {
		o.Storage = brokenStorage{}
		o.Ambient = Light
	})
	assert.Equal(t, Light, f.ctrl.Theme())

	f.ctrl.ToggleTheme()
	assert.Equal(t, Dark, f.ctrl.Theme())
	assert.Contains(t, f.logs.String(), "reading theme preference")
	assert.Contains(t, f.logs.String(), "saving theme preference")
}

func TestParseTheme(t *testing.T) {
	th, ok := ParseTheme(" Light ")
	assert.True(t, ok)
	assert.Equal(t, Light, th)
	_, ok = ParseTheme("no-preference")
	assert.False(t, ok)
	assert.Equal(t, Dark, Light.Other())
	assert.Equal(t, Light, Dark.Other())
}
