package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CheckIn(c *ginext.Context)
	VerifyQR(c *ginext.Context)
	GenerateQR(c *ginext.Context)
	VerifyGateCode(c *ginext.Context)
	GenerateGateCode(c *ginext.Context)
	IssuePass(c *ginext.Context)
	RevokePass(c *ginext.Context)
	ListScanLogs(c *ginext.Context)
	TestWebhook(c *ginext.Context)
}

// InitRouter wires all routes. scanGuards apply only to the check-in
// endpoint (scanner identity, per-gate rate limit); mw applies globally.
func InitRouter(mode string, h Handler, scanGuards []ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Check-in
		checkin := api.Group("/checkin")
		checkin.Use(scanGuards...)
		checkin.POST("", h.CheckIn)

		// QR payloads
		api.POST("/qr/verify", h.VerifyQR)
		api.POST("/qr/generate", h.GenerateQR)

		// Gates
		api.POST("/gates/verify-code", h.VerifyGateCode)
		api.POST("/events/:id/gate-codes", h.GenerateGateCode)

		// Passes
		api.POST("/passes", h.IssuePass)
		api.POST("/passes/:id/revoke", h.RevokePass)

		// Audit
		api.GET("/events/:id/scan-logs", h.ListScanLogs)

		// Webhooks
		api.POST("/webhooks/test", h.TestWebhook)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
