package page

import (
	"strconv"
	"time"
)

// ReplayDelay is how long after a section change its entrance animation is
// replayed.
const ReplayDelay = 300 * time.Millisecond

const entranceAnimation = "fadeInUp 0.6s ease-out"

// Current returns the index of the visible section.
func (c *Controller) Current() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// Sections returns the number of sections.
func (c *Controller) Sections() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.doc.Find(".panel").Length()
}

// Next shows the following section, wrapping to the first.
func (c *Controller) Next() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.show(c.current + 1)
}

// Prev shows the preceding section, wrapping to the last.
func (c *Controller) Prev() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.show(c.current - 1)
}

// Show makes section index the only visible one. A negative index selects the
// last section and an index past the end selects the first.
func (c *Controller) Show(index int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.show(index)
}

func (c *Controller) handleKey(ev Event) {
	switch ev.Key {
	case "ArrowLeft":
		c.Prev()
	case "ArrowRight":
		c.Next()
	}
}

func (c *Controller) show(index int) {
	panels := c.doc.Find(".panel")
	n := panels.Length()
	if n == 0 {
		return
	}
	if index < 0 {
		index = n - 1
	}
	if index >= n {
		index = 0
	}
	c.current = index

	panels.RemoveClass("active")
	panels.Eq(index).AddClass("active")

	links := c.doc.Find(".nav-link")
	links.RemoveClass("active")
	links.Eq(index).AddClass("active")

	c.sched.AfterFunc(ReplayDelay, c.locked(func() { c.replayEntrance(index) }))
}

// replayEntrance restarts the entrance animation of a panel's content block:
// the animation is cleared, the block is marked as a new render, and the
// animation is assigned again.
func (c *Controller) replayEntrance(index int) {
	block := c.doc.Find(".panel").Eq(index).Find(".content-block").First()
	if block.Length() == 0 {
		return
	}
	setStyle(block, "animation", "none")
	c.replays++
	block.SetAttr("data-replay", strconv.Itoa(c.replays))
	setStyle(block, "animation", entranceAnimation)
}
