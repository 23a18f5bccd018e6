package main

import (
	"context"
	"fmt"
	"html/template"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Zachkp/andre-portfolio/internal/config"
	"github.com/Zachkp/andre-portfolio/internal/content"
	"github.com/Zachkp/andre-portfolio/internal/i18n"
	"github.com/Zachkp/andre-portfolio/internal/logger"
	"github.com/Zachkp/andre-portfolio/internal/store"
	"github.com/Zachkp/andre-portfolio/internal/theme"
	"github.com/Zachkp/andre-portfolio/internal/view"
)

const (
	sessionCookie = "portfolio_session"
	// hourCookie is written by the page script with the visitor's local hour.
	hourCookie = "portfolio_hour"
)

type server struct {
	log            *logger.Logger
	storeLog       *logger.Logger
	portfolio      *content.Portfolio
	sessions       *view.Sessions
	stats          *store.Store
	templates      *template.Template
	clock          func() time.Time
	salt           string
	statsEnabled   bool
	trustedProxies []string
}

func newServer(log *logger.Logger, p *content.Portfolio, st *store.Store, cfg config.Config) (*server, error) {
	lang, err := i18n.Parse(cfg.DefaultLanguage)
	if err != nil {
		return nil, err
	}
	tmpl, err := parseTemplates()
	if err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}
	return &server{
		log:            log,
		storeLog:       log.With(map[string]any{"component": "store"}),
		portfolio:      p,
		sessions:       view.NewSessions(lang, cfg.SessionLimit, cfg.SessionTTL),
		stats:          st,
		templates:      tmpl,
		clock:          time.Now,
		salt:           generateToken(),
		statsEnabled:   cfg.StatsEnabled,
		trustedProxies: cfg.TrustedProxies,
	}, nil
}

func newRouter(s *server) (*gin.Engine, error) {
	r := gin.New()
	// Without trusted proxies ClientIP is the socket peer.
	if err := r.SetTrustedProxies(s.trustedProxies); err != nil {
		return nil, fmt.Errorf("trusted proxies: %w", err)
	}
	r.Use(gin.Recovery(), requestLogger(s.log), s.visitorTracking())
	r.SetHTMLTemplate(s.templates)
	r.StaticFS("/static", http.FS(staticFiles()))

	r.GET("/", s.handleIndex)

	// HTMX fragments
	r.GET("/language", s.handleOpenLanguage)
	r.DELETE("/language", s.handleCloseLanguage)
	r.POST("/language/:code", s.handleSelectLanguage)
	r.POST("/dark-mode", s.handleToggleDarkMode)
	r.POST("/scroll", s.handleScroll)

	r.GET("/out/:code", s.handleOut)
	r.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	if s.statsEnabled {
		r.GET("/stats", s.handleStats)
	}
	return r, nil
}

// session returns the visitor's id, issuing a cookie on first contact.
func (s *server) session(c *gin.Context) string {
	if id, err := c.Cookie(sessionCookie); err == nil {
		if _, err := uuid.Parse(id); err == nil {
			return id
		}
	}
	id := uuid.NewString()
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sessionCookie, id, 0, "/", "", false, true)
	s.log.Debug("issued session")
	return id
}

// palette picks the colors for the hour of day on the visitor's device,
// sent as an "hour" parameter or the hour cookie. The server clock is the
// fallback.
func (s *server) palette(c *gin.Context) theme.Palette {
	candidates := []string{c.Query("hour"), c.PostForm("hour")}
	if v, err := c.Cookie(hourCookie); err == nil {
		candidates = append(candidates, v)
	}
	for _, v := range candidates {
		if h, err := strconv.Atoi(v); err == nil && h >= 0 && h <= 23 {
			return theme.ForHour(h)
		}
	}
	return theme.Current(s.clock())
}

func (s *server) render(c *gin.Context, name string, st view.State) {
	data, err := s.page(st, s.palette(c))
	if err != nil {
		s.log.Error(err, "render page")
		c.HTML(http.StatusInternalServerError, "error", gin.H{
			"error": "Sorry, the page could not be displayed.",
		})
		return
	}
	c.HTML(http.StatusOK, name, data)
}

func (s *server) badRequest(c *gin.Context, msg string) {
	s.log.With(map[string]any{"path": c.Request.URL.Path}).Warn(msg)
	c.HTML(http.StatusBadRequest, "error", gin.H{"error": msg})
}

func (s *server) handleIndex(c *gin.Context) {
	s.render(c, "index.html", s.sessions.Get(s.session(c)))
}

func (s *server) handleOpenLanguage(c *gin.Context) {
	st := s.sessions.Update(s.session(c), (*view.State).OpenLanguageModal)
	s.render(c, "language-modal", st)
}

func (s *server) handleCloseLanguage(c *gin.Context) {
	s.sessions.Update(s.session(c), (*view.State).CloseLanguageModal)
	c.String(http.StatusOK, "")
}

func (s *server) handleSelectLanguage(c *gin.Context) {
	lang, err := i18n.Parse(c.Param("code"))
	if err != nil {
		s.badRequest(c, "Unknown language.")
		return
	}
	st := s.sessions.Update(s.session(c), func(st *view.State) { st.SelectLanguage(lang) })
	s.render(c, "language-selected", st)
}

func (s *server) handleToggleDarkMode(c *gin.Context) {
	st := s.sessions.Update(s.session(c), (*view.State).ToggleDarkMode)
	s.render(c, "page", st)
}

func (s *server) handleScroll(c *gin.Context) {
	y, err := strconv.ParseFloat(c.PostForm("y"), 64)
	if err != nil || math.IsNaN(y) || math.IsInf(y, 0) {
		s.badRequest(c, "Invalid scroll offset.")
		return
	}
	st := s.sessions.Update(s.session(c), func(st *view.State) { st.SetScroll(y) })
	s.render(c, "header", st)
}

// handleOut counts a link activation and hands the destination to the
// browser. A failed count never blocks the redirect.
func (s *server) handleOut(c *gin.Context) {
	link, err := s.portfolio.Link(c.Param("code"))
	if err != nil {
		c.HTML(http.StatusNotFound, "error", gin.H{"error": "Link not found."})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), time.Second)
	defer cancel()
	if err := s.stats.RecordClick(ctx, link.Code); err != nil {
		s.storeLog.Error(err, "record link click")
	}
	c.Redirect(http.StatusFound, link.URL)
}

type statsResponse struct {
	*store.Stats
	ActiveSessions int `json:"active_sessions"`
}

func (s *server) handleStats(c *gin.Context) {
	stats, err := s.stats.Stats(c.Request.Context())
	if err != nil {
		s.storeLog.Error(err, "load stats")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load statistics"})
		return
	}
	c.JSON(http.StatusOK, statsResponse{Stats: stats, ActiveSessions: s.sessions.Len()})
}

func requestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Zerolog().Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("request")
	}
}
