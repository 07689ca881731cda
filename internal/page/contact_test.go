package page

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zachkp/portfolio/internal/profile"
)

func TestContactModalRendersAllBlocksInOrder(t *testing.T) {
	f := newLoaded(t)
	require.False(t, f.ctrl.ContactOpen())

	f.bus.Dispatch(Event{Type: Click, Target: "contact-btn"})
	require.True(t, f.ctrl.ContactOpen())

	blocks := f.find("#contact-details").Children()
	require.Equal(t, 4, blocks.Length())
	assert.True(t, blocks.Eq(0).HasClass("contact-email"))
	assert.True(t, blocks.Eq(1).HasClass("contact-phone"))
	assert.True(t, blocks.Eq(2).HasClass("contact-location"))
	assert.True(t, blocks.Eq(3).HasClass("contact-socials-block"))
}

func TestContactModalEmailOnly(t *testing.T) {
	doc := testDocument()
	doc.PersonalInfo = profile.PersonalInfo{Name: "Jane", Email: "jane@example.com"}
	f := newFixture(t, staticSource(doc))
	require.NoError(t, f.ctrl.Init(t.Context()))
	f.ctrl.Register(f.bus)

	f.ctrl.OpenContact()
	blocks := f.find("#contact-details").Children()
	require.Equal(t, 1, blocks.Length())
	assert.Equal(t, "mailto:jane@example.com", blocks.Find("a").AttrOr("href", ""))
	assert.Equal(t, 0, f.find("#contact-details a[href^='tel:']").Length())
	assert.Equal(t, 0, f.find("#contact-details .contact-location").Length())
	assert.Equal(t, 0, f.find("#contact-details .social-links").Length())
}

func TestContactModalReopenIsIdempotent(t *testing.T) {
	f := newLoaded(t)

	f.ctrl.OpenContact()
	f.ctrl.CloseContact()
	f.ctrl.OpenContact()
	assert.Equal(t, 4, f.find("#contact-details").Children().Length())
}

func TestContactModalClosing(t *testing.T) {
	f := newLoaded(t)

	f.ctrl.OpenContact()
	assert.False(t, f.bus.Dispatch(Event{Type: Click, Target: "contact-details"}))
	assert.True(t, f.ctrl.ContactOpen(), "click inside content keeps modal open")

	f.bus.Dispatch(Event{Type: Click, Target: "contact-modal"})
	assert.False(t, f.ctrl.ContactOpen(), "backdrop click closes")

	f.ctrl.OpenContact()
	f.bus.Dispatch(Event{Type: Click, Target: "close-contact-modal"})
	assert.False(t, f.ctrl.ContactOpen())
}

func TestContactModalWithoutData(t *testing.T) {
	f := newFixture(t, staticSource(testDocument()))

	f.ctrl.OpenContact()
	assert.True(t, f.ctrl.ContactOpen())
	assert.Equal(t, 0, f.find("#contact-details").Children().Length())
}
