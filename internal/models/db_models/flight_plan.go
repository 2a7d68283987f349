package db_models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type FlightPlan struct {
	BaseModel
	UserID         uuid.UUID      `gorm:"type:uuid;index"`
	Callsign       *string
	Origin         string         `gorm:"size:4"` // ICAO, stored upper-cased
	Destination    string         `gorm:"size:4"`
	Alternates     pq.StringArray `gorm:"type:text[]"`
	Route          *string
	DepartureTime  time.Time // UTC
	CruiseAltitude *string
	AircraftType   *string
}
