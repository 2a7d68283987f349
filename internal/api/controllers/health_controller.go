package controllers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"wxbrief/internal/infra"
	"wxbrief/internal/models/response_models"
	"wxbrief/pkg/utils"
)

type HealthController struct {
	db  *gorm.DB
	cfg *infra.Config
}

func NewHealthController(db *gorm.DB, cfg *infra.Config) *HealthController {
	return &HealthController{
		db:  db,
		cfg: cfg,
	}
}

func (h *HealthController) Root(c *gin.Context) {
	utils.RespondSuccess(c, gin.H{"message": "wxbrief API running"}, "")
}

// TestStore reports connectivity to the backing store. Diagnostic only, not
// part of the service contract.
func (h *HealthController) TestStore(c *gin.Context) {
	diag := response_models.StoreDiagnostics{
		Backend:          "running",
		Database:         "not available",
		DatabaseURL:      "not set",
		ConnectionStatus: "not connected",
		Tables:           []string{},
	}
	if h.cfg.DatabaseDSN != "" {
		diag.DatabaseURL = "set"
	}

	sqlDB, err := h.db.DB()
	if err == nil {
		if pingErr := sqlDB.Ping(); pingErr == nil {
			diag.Database = "connected"
			diag.ConnectionStatus = "connected"

			if tables, tErr := h.db.Migrator().GetTables(); tErr == nil {
				if len(tables) > 10 {
					tables = tables[:10]
				}
				diag.Tables = tables
			}
		} else {
			diag.Database = "ping failed: " + pingErr.Error()
		}
	}

	utils.RespondSuccess(c, diag, "")
}
