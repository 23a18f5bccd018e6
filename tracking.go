package main

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// Paths that never count as a page visit.
var untrackedPrefixes = []string{
	"/static/",
	"/out/",
	"/stats",
	"/healthz",
	"/favicon",
}

func generateToken() string {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		panic("generate token: " + err.Error())
	}
	return hex.EncodeToString(bytes)
}

// hashIP is stable for one process; raw addresses are never stored.
func (s *server) hashIP(ip string) string {
	hash := sha256.New()
	hash.Write([]byte(ip + s.salt))
	return hex.EncodeToString(hash.Sum(nil))[:16]
}

// visitorTracking records full page loads. HTMX fragment requests are
// interactions on an already counted page.
func (s *server) visitorTracking() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		for _, prefix := range untrackedPrefixes {
			if strings.HasPrefix(path, prefix) {
				c.Next()
				return
			}
		}
		if c.Request.Method != http.MethodGet || c.GetHeader("HX-Request") == "true" {
			c.Next()
			return
		}
		// Respect Do Not Track
		if c.GetHeader("DNT") == "1" {
			c.Next()
			return
		}

		go s.trackVisit(s.hashIP(c.ClientIP()), c.GetHeader("User-Agent"), path)
		c.Next()
	}
}

func (s *server) trackVisit(hashedIP, userAgent, path string) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := s.stats.RecordVisit(ctx, hashedIP, userAgent, path); err != nil {
		s.storeLog.Error(err, "record visitor")
	}
}
