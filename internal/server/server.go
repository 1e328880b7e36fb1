package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/budgetd-dev/budgetd/internal/config"
	"github.com/budgetd-dev/budgetd/internal/ingest"
	"github.com/budgetd-dev/budgetd/internal/store"
)

// Handler bundles the dependencies of the API endpoints.
type Handler struct {
	store  *store.Store
	ingest *ingest.Service
	log    zerolog.Logger
}

// New configures the gin engine with all API routes.
func New(cfg *config.Config, st *store.Store, ing *ingest.Service, log zerolog.Logger) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(RequestLogger(log), gin.Recovery())

	h := &Handler{store: st, ingest: ing, log: log}

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	api.POST("/upload", h.Upload)
	api.GET("/accounts", h.ListAccounts)
	api.POST("/accounts", h.CreateAccount)
	api.PATCH("/accounts/:id", h.UpdateAccount)
	api.GET("/ledger", h.ListLedger)
	api.GET("/budgets", h.ListBudgets)
	api.POST("/budgets", h.CreateBudget)
	api.GET("/uploads", h.ListUploads)

	return r
}
