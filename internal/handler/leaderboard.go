package handler

import (
	"context"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const leaderboardErrorHTML = `<div class="h5p-leaderboard-container"><p>Leaderboard is unavailable right now.</p></div>`

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// LeaderboardPage serves the leaderboard wrapped in a standalone page.
func (h *Handler) LeaderboardPage(c *gin.Context) {
	fragment, ok := h.fragment(c)
	if !ok {
		c.HTML(http.StatusInternalServerError, "leaderboard_page.tmpl", gin.H{
			"title":       "Leaderboard",
			"leaderboard": template.HTML(leaderboardErrorHTML),
		})
		return
	}

	c.HTML(http.StatusOK, "leaderboard_page.tmpl", gin.H{
		"title": "Leaderboard",
		// fragment is produced by html/template and already escaped
		"leaderboard": template.HTML(fragment),
	})
}

// LeaderboardFragment serves the bare markup for embedding in another page.
func (h *Handler) LeaderboardFragment(c *gin.Context) {
	fragment, ok := h.fragment(c)
	if !ok {
		c.Data(http.StatusInternalServerError, "text/html; charset=utf-8", []byte(leaderboardErrorHTML))
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(fragment))
}

func (h *Handler) fragment(c *gin.Context) (string, bool) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	fragment, err := h.leaderboard.LeaderboardHTML(ctx)
	if err != nil {
		h.log.Error("failed to render leaderboard", zap.String("path", c.Request.URL.Path), zap.Error(err))
		return "", false
	}

	return fragment, true
}
