package page

import (
	"github.com/Zachkp/portfolio/internal/view"
)

const (
	contactModal   = "contact-modal"
	contactDetails = "contact-details"
)

// OpenContact shows the contact modal, rendering the cached contact info into
// it first.
func (c *Controller) OpenContact() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.contact != nil {
		c.doc.Mount(contactDetails, view.ContactDetails(c.contact))
	}
	c.doc.ByID(contactModal).RemoveClass("hidden")
}

// CloseContact hides the contact modal.
func (c *Controller) CloseContact() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.doc.ByID(contactModal).AddClass("hidden")
}

// ContactOpen reports whether the modal is visible.
func (c *Controller) ContactOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	m := c.doc.ByID(contactModal)
	return m.Length() > 0 && !m.HasClass("hidden")
}
