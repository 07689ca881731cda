package page

import "strings"

const (
	mobileNavToggle  = "mobile-nav-toggle"
	mobileNavOverlay = "mobile-nav-overlay"
)

// ToggleMobileNav opens or closes the mobile menu. Page scroll is locked
// while it is open.
func (c *Controller) ToggleMobileNav() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.doc.ByID(mobileNavToggle).ToggleClass("active")
	overlay := c.doc.ByID(mobileNavOverlay)
	overlay.ToggleClass("visible")

	c.mobileOpen = overlay.HasClass("visible")
	if c.mobileOpen {
		setStyle(c.doc.Body(), "overflow", "hidden")
	} else {
		removeStyle(c.doc.Body(), "overflow")
	}
}

// CloseMobileNav closes the mobile menu.
func (c *Controller) CloseMobileNav() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closeMobileNav()
}

func (c *Controller) closeMobileNav() {
	c.doc.ByID(mobileNavToggle).RemoveClass("active")
	c.doc.ByID(mobileNavOverlay).RemoveClass("visible")
	removeStyle(c.doc.Body(), "overflow")
	c.mobileOpen = false
}

// FollowMobileLink shows and scrolls to the section the index-th menu link
// points at and closes the menu. Out-of-range indexes and links to sections
// that do not exist are ignored.
func (c *Controller) FollowMobileLink(index int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	links := c.doc.Find(".mobile-nav-link")
	if index < 0 || index >= links.Length() {
		return
	}
	href, ok := links.Eq(index).Attr("href")
	if !ok || !strings.HasPrefix(href, "#") {
		return
	}
	id := strings.TrimPrefix(href, "#")
	if id == "" {
		return
	}
	section := c.doc.ByID(id)
	if section.Length() == 0 {
		return
	}

	if i := c.doc.Find(".panel").IndexOfSelection(section); i >= 0 {
		c.show(i)
	}
	c.scrollTo = id
	body := c.doc.Body()
	body.SetAttr("data-scroll-to", id)
	setStyle(body, "scroll-behavior", "smooth")
	c.closeMobileNav()
}

// MobileNavOpen reports whether the mobile menu is open.
func (c *Controller) MobileNavOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mobileOpen
}

// ScrollTarget returns the id of the section a mobile menu link asked to
// scroll to, or "" when none is pending.
func (c *Controller) ScrollTarget() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.scrollTo
}

// ClearScrollTarget drops a pending scroll request so it is not replayed by
// later renders.
func (c *Controller) ClearScrollTarget() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.scrollTo == "" {
		return
	}
	c.scrollTo = ""
	body := c.doc.Body()
	body.RemoveAttr("data-scroll-to")
	removeStyle(body, "scroll-behavior")
}
