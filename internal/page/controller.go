// Package page drives one portfolio page: it populates the document from the
// Profile Document and reacts to navigation, theme, contact and mobile menu
// events.
package page

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/Zachkp/portfolio/internal/profile"
	"github.com/Zachkp/portfolio/internal/resume"
	"github.com/Zachkp/portfolio/internal/view"
)

// Element ids of the section containers.
const (
	AboutContainer      = "about-content"
	ProjectsContainer   = "projects-scroll"
	ExperienceContainer = "experience-content"
	SkillsContainer     = "skills-content"
	ResumeContainer     = "resume-content"
)

// Source supplies the Profile Document.
type Source interface {
	Load(ctx context.Context) (*profile.Document, error)
}

// Options configures a Controller.
type Options struct {
	// Skeleton is the page markup; the embedded skeleton is used when nil.
	Skeleton io.Reader
	Source   Source
	Storage  Storage
	// ThemeKey is the storage key of the theme preference.
	ThemeKey     string
	DefaultTheme Theme
	// Ambient is the platform color-scheme signal, if any.
	Ambient   Theme
	Resume    resume.Asset
	Scheduler Scheduler
	Now       func() time.Time
	Logger    *slog.Logger
}

// Controller owns the page document and all per-page state. Every exported
// method runs under the controller's lock, as do deferred effects, so handlers
// never interleave.
type Controller struct {
	mu sync.Mutex

	doc      *Document
	source   Source
	store    Storage
	themeKey string
	resume   resume.Asset
	sched    Scheduler
	now      func() time.Time
	log      *slog.Logger

	loaded     bool
	current    int
	contact    *profile.ContactInfo
	theme      Theme
	mobileOpen bool
	scrollTo   string
	replays    int
}

// New parses the page markup and applies the initial theme. The theme does
// not wait for the Profile Document.
func New(opts Options) (*Controller, error) {
	markup := opts.Skeleton
	if markup == nil {
		markup = DefaultSkeleton()
	}
	doc, err := ParseDocument(markup)
	if err != nil {
		return nil, err
	}

	c := &Controller{
		doc:      doc,
		source:   opts.Source,
		store:    opts.Storage,
		themeKey: opts.ThemeKey,
		resume:   opts.Resume,
		sched:    opts.Scheduler,
		now:      opts.Now,
		log:      opts.Logger,
	}
	if c.store == nil {
		c.store = NewMemoryStorage()
	}
	if c.themeKey == "" {
		c.themeKey = DefaultThemeKey
	}
	if c.sched == nil {
		c.sched = TimerScheduler{}
	}
	if c.now == nil {
		c.now = time.Now
	}
	if c.log == nil {
		c.log = slog.Default()
	}

	c.initTheme(opts.Ambient, opts.DefaultTheme)
	return c, nil
}

// Init loads the Profile Document and populates every section. When loading
// fails the page body is replaced by a single error message and the cause is
// returned; nothing is partially rendered.
func (c *Controller) Init(ctx context.Context) error {
	if c.source == nil {
		return c.fail(errors.New("no profile source configured"))
	}
	doc, err := c.source.Load(ctx)
	if err != nil {
		return c.fail(err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.contact = doc.ContactInfo()
	c.doc.Mount(AboutContainer, view.About(doc.PersonalInfo))
	c.doc.Mount(ProjectsContainer, view.Projects(doc.Projects))
	c.doc.Mount(ExperienceContainer, view.Experience(doc.Experience))
	c.doc.Mount(SkillsContainer, view.Skills(doc.Skills))
	c.doc.Mount(ResumeContainer, view.Resume(c.resume, c.now()))
	c.loaded = true

	c.show(0)
	return nil
}

func (c *Controller) fail(err error) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.doc.ReplaceBody(view.LoadFailure())
	c.log.Error("error loading portfolio data", "error", err)
	return err
}

// Register binds the controller's handlers. Theme handling is always bound;
// the rest only once the document has loaded.
func (c *Controller) Register(src EventSource) {
	src.On(Click, "theme-toggle", func(Event) { c.ToggleTheme() })

	if !c.Loaded() {
		return
	}

	src.On(Click, "prev-btn", func(Event) { c.Prev() })
	src.On(Click, "next-btn", func(Event) { c.Next() })
	src.On(Click, "nav-link", func(ev Event) { c.Show(ev.Index) })
	src.On(KeyDown, DocumentTarget, c.handleKey)

	src.On(Click, "contact-btn", func(Event) { c.OpenContact() })
	src.On(Click, "close-contact-modal", func(Event) { c.CloseContact() })
	src.On(Click, "contact-modal", func(Event) { c.CloseContact() })

	src.On(Click, "mobile-nav-toggle", func(Event) { c.ToggleMobileNav() })
	src.On(Click, "mobile-nav-close", func(Event) { c.CloseMobileNav() })
	src.On(Click, "mobile-nav-overlay", func(Event) { c.CloseMobileNav() })
	src.On(Click, "mobile-nav-link", func(ev Event) { c.FollowMobileLink(ev.Index) })
}

// Loaded reports whether the Profile Document was loaded and rendered.
func (c *Controller) Loaded() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loaded
}

// Render writes the full page.
func (c *Controller) Render(w io.Writer) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.doc.Render(w)
}

// RenderBody writes the body element only.
func (c *Controller) RenderBody(w io.Writer) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.doc.RenderBody(w)
}

// Inspect runs f with the document under the controller's lock.
func (c *Controller) Inspect(f func(*Document)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	f(c.doc)
}

// locked wraps f for deferred execution under the controller's lock.
func (c *Controller) locked(f func()) func() {
	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		f()
	}
}
