package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/21javi21/corderos-app/internal/nba"
	"github.com/21javi21/corderos-app/internal/platform/config"
	"github.com/21javi21/corderos-app/internal/platform/health"
	"github.com/21javi21/corderos-app/internal/villain"
	"github.com/21javi21/corderos-app/internal/wager"
)

// SetupRoutes registers every endpoint of the Corderos App.
func SetupRoutes(router *gin.Engine, villains *villain.Handler, wagers *wager.Handler, tracker *nba.Handler) {
	api := router.Group("/api")
	{
		// Hall of hate: /api/villains
		villains.RegisterRoutes(api)

		// Betting ledger: /api/wagers
		wagers.RegisterRoutes(api)

		// NBA tracker: /api/nba/tracker
		tracker.RegisterRoutes(api)

		api.GET("/health", healthEndpoint)
	}

	if config.Cfg.Server.Swagger {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
}

// healthEndpoint godoc
// @Summary Store health
// @Description Latest result of the periodic store ping.
// @Tags health
// @Produce json
// @Success 200 {object} health.Snapshot
// @Failure 503 {object} health.Snapshot
// @Router /api/health [get]
func healthEndpoint(c *gin.Context) {
	snap := health.Current()
	status := http.StatusOK
	if !snap.Healthy {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, snap)
}
