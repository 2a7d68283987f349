package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type RiskLevel string

const (
	RiskLow    RiskLevel = "LOW"
	RiskMedium RiskLevel = "MEDIUM"
	RiskHigh   RiskLevel = "HIGH"
)

// Briefing is written once per briefing request and never updated. The
// weather payloads are kept as opaque JSON documents.
type Briefing struct {
	BaseModel
	UserID       uuid.UUID      `gorm:"type:uuid;index"`
	FlightPlanID uuid.UUID      `gorm:"type:uuid;index"`
	Summary      string
	RiskLevel    RiskLevel      `gorm:"size:6"`
	Hazards      datatypes.JSON `gorm:"type:jsonb;default:'[]'"`
	Metar        datatypes.JSON `gorm:"type:jsonb;default:'{}'"`
	Taf          datatypes.JSON `gorm:"type:jsonb;default:'{}'"`
	Notams       datatypes.JSON `gorm:"type:jsonb;default:'[]'"`
	Pireps       datatypes.JSON `gorm:"type:jsonb;default:'[]'"`
	Alternates   datatypes.JSON `gorm:"type:jsonb;default:'[]'"`
	Overlays     datatypes.JSON `gorm:"type:jsonb;default:'{}'"`
}
