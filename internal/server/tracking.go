package server

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/storage"
)

// VisitRecorder stores page views.
type VisitRecorder interface {
	RecordVisit(ctx context.Context, v storage.Visit) error
}

func newSalt() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		panic("generating hashing salt: " + err.Error())
	}
	return hex.EncodeToString(b)
}

// hashIP hashes an address with the process salt. The same IP maps to the same
// hash for the life of the process only.
func hashIP(ip, salt string) string {
	sum := sha256.Sum256([]byte(ip + salt))
	return hex.EncodeToString(sum[:])[:16]
}

// shouldTrack skips assets, event posts and visitors sending Do Not Track.
func (s *Server) shouldTrack(path, dnt string) bool {
	if dnt == "1" {
		return false
	}
	for _, prefix := range []string{"/static/", "/events", "/healthz", "/favicon"} {
		if strings.HasPrefix(path, prefix) {
			return false
		}
	}
	return path != s.dataPath && path != s.resumePath
}

// visitTracking records page views in the background with hashed IPs.
func (s *Server) visitTracking() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if s.visits == nil || !s.shouldTrack(path, c.GetHeader("DNT")) {
			c.Next()
			return
		}

		v := storage.Visit{
			HashedIP:  hashIP(c.ClientIP(), s.salt),
			UserAgent: c.GetHeader("User-Agent"),
			Path:      path,
			VisitedAt: time.Now(),
		}
		go func() {
			if err := s.visits.RecordVisit(context.Background(), v); err != nil {
				s.log.Warn("recording visit", "error", err)
			}
		}()
		c.Next()
	}
}
