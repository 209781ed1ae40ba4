package handlers

import (
	"log"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const (
	flashSuccess = "success"
	flashError   = "error"
)

// addFlash queues a one-time message for the next rendered page.
func addFlash(c *gin.Context, level, message string) {
	session := sessions.Default(c)
	session.AddFlash(message, level)
	if err := session.Save(); err != nil {
		log.Printf("Warning: failed to save flash message: %v", err)
	}
}

// takeFlashes drains the queued messages, clearing them from the session.
func takeFlashes(c *gin.Context) map[string][]string {
	session := sessions.Default(c)
	flashes := map[string][]string{}
	for _, level := range []string{flashSuccess, flashError} {
		for _, f := range session.Flashes(level) {
			if message, ok := f.(string); ok {
				flashes[level] = append(flashes[level], message)
			}
		}
	}
	if err := session.Save(); err != nil {
		log.Printf("Warning: failed to clear flash messages: %v", err)
	}
	return flashes
}
