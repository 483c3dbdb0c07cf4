package web

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/wardenlabs/warden/pkg/cases"
	"github.com/wardenlabs/warden/pkg/config"
	"github.com/wardenlabs/warden/pkg/database"
	"github.com/wardenlabs/warden/pkg/discord"
	"github.com/wardenlabs/warden/pkg/mqtt"
)

var startTime = time.Now()

// SetupAPIRoutes registers the HTTP API on the server
func SetupAPIRoutes(s *Server, ledger *cases.Ledger) {
	api := s.Engine().Group("/api")

	api.GET("/status", handleStatus)
	api.GET("/stats", func(c *gin.Context) { handleStats(c, ledger) })
	api.GET("/guilds/:id/cases", func(c *gin.Context) { handleGuildCases(c, ledger) })
}

func handleStatus(c *gin.Context) {
	botReady := false
	guildCount := 0
	if client := discord.Get(); client != nil {
		botReady = client.IsReady()
		guildCount = client.GuildCount()
	}

	dbStatus := "🔴 | Offline"
	if db := database.Get(); db != nil {
		dbStatus, _ = db.GetStatus()
	}

	c.JSON(http.StatusOK, gin.H{
		"bot":       botReady,
		"guilds":    guildCount,
		"database":  dbStatus,
		"mqtt":      mqtt.Get().IsConnected(),
		"uptime":    time.Since(startTime).Round(time.Second).String(),
		"version":   config.Version,
		"buildTime": config.BuildTime,
	})
}

func handleStats(c *gin.Context, ledger *cases.Ledger) {
	c.JSON(http.StatusOK, gin.H{
		"caseCounter": ledger.CaseCounter(),
	})
}

func handleGuildCases(c *gin.Context, ledger *cases.Ledger) {
	guildID := c.Param("id")

	if userID := c.Query("user"); userID != "" {
		c.JSON(http.StatusOK, gin.H{
			"guildId": guildID,
			"userId":  userID,
			"count":   ledger.Count(guildID, userID),
			"cases":   ledger.Get(guildID, userID),
		})
		return
	}

	limit := 25
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}

	stats := ledger.GetStats(guildID)
	c.JSON(http.StatusOK, gin.H{
		"guildId": guildID,
		"stats":   stats,
		"recent":  ledger.GetRecent(guildID, limit),
	})
}
