// Package server serves the portfolio page. Each page load gets its own
// page.Controller; HTMX posts UI events back and receive the re-rendered body.
package server

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/page"
	"github.com/Zachkp/portfolio/internal/profile"
	"github.com/Zachkp/portfolio/internal/resume"
	"github.com/Zachkp/portfolio/internal/storage"
)

const (
	visitorCookie   = "visitor_id"
	visitorMaxAge   = 365 * 24 * 3600
	colorSchemeHint = "Sec-CH-Prefers-Color-Scheme"
)

var _ page.Storage = (*storage.Preferences)(nil)

// Options wires a Server.
type Options struct {
	Config *config.Config
	Store  *storage.Store
	Logger *slog.Logger
	// Scheduler runs deferred page effects; real timers when nil.
	Scheduler page.Scheduler
}

// Server is the portfolio HTTP server.
type Server struct {
	cfg      *config.Config
	store    *storage.Store
	visits   VisitRecorder
	log      *slog.Logger
	sched    page.Scheduler
	sessions *sessions
	skeleton []byte
	salt     string

	// dataBase is the base URL pages load the profile document from.
	dataBase   string
	dataPath   string
	resumePath string
	engine     *gin.Engine
}

// New builds the server and its routes.
func New(opts Options) (*Server, error) {
	if opts.Config == nil {
		return nil, errors.New("server: config is required")
	}
	if opts.Store == nil {
		return nil, errors.New("server: store is required")
	}
	cfg := opts.Config

	s := &Server{
		cfg:        cfg,
		store:      opts.Store,
		log:        opts.Logger,
		sched:      opts.Scheduler,
		sessions:   newSessions(time.Duration(cfg.Server.SessionTTL)*time.Minute, cfg.Server.MaxPages),
		dataBase:   cfg.Site.Origin,
		salt:       newSalt(),
		dataPath:   "/" + cfg.Site.DataFile,
		resumePath: "/" + cfg.Resume.Path,
	}
	if s.log == nil {
		s.log = slog.Default()
	}
	if s.sched == nil {
		s.sched = page.TimerScheduler{}
	}
	if s.dataBase == "" {
		base, err := profile.FileBaseURL(cfg.Site.Dir)
		if err != nil {
			return nil, err
		}
		s.dataBase = base
	}
	if cfg.Storage.TrackVisits {
		s.visits = opts.Store
	}
	if cfg.Site.Skeleton != "" {
		b, err := os.ReadFile(cfg.Site.Skeleton)
		if err != nil {
			return nil, fmt.Errorf("reading page skeleton: %w", err)
		}
		s.skeleton = b
	}

	gin.SetMode(cfg.Server.Mode)
	s.engine = s.routes()
	return s, nil
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) routes() *gin.Engine {
	r := gin.Default()
	r.Use(s.visitTracking())

	site := s.cfg.Site
	if site.StaticDir != "" {
		static := filepath.Join(site.Dir, site.StaticDir)
		if st, err := os.Stat(static); err == nil && st.IsDir() {
			r.Static("/static", static)
		}
	}

	r.GET("/", s.handleIndex)
	r.POST("/events", s.handleEvent)
	r.GET(s.dataPath, func(c *gin.Context) {
		c.File(filepath.Join(site.Dir, site.DataFile))
	})
	r.GET(s.resumePath, func(c *gin.Context) {
		c.File(filepath.Join(site.Dir, s.cfg.Resume.Path))
	})
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "pages": s.sessions.len()})
	})
	return r
}

// visitorID returns the visitor cookie, issuing a new one when missing or
// malformed.
func (s *Server) visitorID(c *gin.Context) string {
	if id, err := c.Cookie(visitorCookie); err == nil {
		if _, err := uuid.Parse(id); err == nil {
			return id
		}
	}
	id := uuid.NewString()
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(visitorCookie, id, visitorMaxAge, "/", "", c.Request.TLS != nil, true)
	return id
}

func (s *Server) newPage(c *gin.Context, visitor string) (*pageSession, error) {
	loader := profile.NewLoader(s.dataBase)
	loader.Resource = s.cfg.Site.DataFile

	ambient, _ := page.ParseTheme(c.GetHeader(colorSchemeHint))
	defaultTheme, _ := page.ParseTheme(s.cfg.Theme.Default)

	opts := page.Options{
		Source:       loader,
		Storage:      s.store.Preferences(visitor),
		ThemeKey:     s.cfg.Theme.StorageKey,
		DefaultTheme: defaultTheme,
		Ambient:      ambient,
		Resume: resume.Asset{
			Path:         s.cfg.Resume.Path,
			DownloadName: s.cfg.Resume.DownloadName,
		},
		Scheduler: s.sched,
		Logger:    s.log.With("visitor", visitor),
	}
	if s.skeleton != nil {
		opts.Skeleton = bytes.NewReader(s.skeleton)
	}

	ctrl, err := page.New(opts)
	if err != nil {
		return nil, err
	}
	return &pageSession{ctrl: ctrl, bus: page.NewBus()}, nil
}

func (s *Server) handleIndex(c *gin.Context) {
	visitor := s.visitorID(c)

	p, err := s.newPage(c, visitor)
	if err != nil {
		s.log.Error("building page", "error", err)
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}
	// A load failure is rendered into the page itself.
	_ = p.ctrl.Init(c.Request.Context())
	p.ctrl.Register(p.bus)
	s.sessions.put(visitor, p)

	c.Header("Accept-CH", colorSchemeHint)
	c.Header("Vary", colorSchemeHint)
	c.Header("Cache-Control", "no-store")
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := p.ctrl.Render(c.Writer); err != nil {
		s.log.Error("rendering page", "error", err)
	}
}

func (s *Server) handleEvent(c *gin.Context) {
	var ev page.Event
	if err := c.ShouldBind(&ev); err != nil {
		c.String(http.StatusBadRequest, "invalid event")
		return
	}
	if ev.Type != page.Click && ev.Type != page.KeyDown {
		c.String(http.StatusBadRequest, "unknown event type")
		return
	}

	visitor, err := c.Cookie(visitorCookie)
	if err != nil {
		c.Header("HX-Refresh", "true")
		c.Status(http.StatusGone)
		return
	}
	p, ok := s.sessions.get(visitor)
	if !ok {
		c.Header("HX-Refresh", "true")
		c.Status(http.StatusGone)
		return
	}

	p.ctrl.ClearScrollTarget()
	p.bus.Dispatch(ev)
	if id := p.ctrl.ScrollTarget(); id != "" {
		c.Header("HX-Reswap", "outerHTML show:#"+id+":top")
	}

	c.Header("Cache-Control", "no-store")
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := p.ctrl.RenderBody(c.Writer); err != nil {
		s.log.Error("rendering body", "error", err)
	}
}
