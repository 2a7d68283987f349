package services

import (
	"context"
	"fmt"

	"wxbrief/internal/models/db_models"
)

// WeatherReport is the raw material for a briefing. METAR/TAF/NOTAM/PIREP
// payloads are opaque to this service and stored as-is.
type WeatherReport struct {
	Summary    string
	RiskLevel  db_models.RiskLevel
	Hazards    []map[string]string
	Metar      map[string]string
	Taf        map[string]string
	Notams     []map[string]string
	Pireps     []map[string]string
	Alternates []map[string]string
	Overlays   map[string]interface{}
}

// WeatherSource supplies weather and operational data for a flight plan.
// The static implementation below stands in for a real METAR/TAF/NOTAM
// integration.
type WeatherSource interface {
	GetReport(ctx context.Context, plan *db_models.FlightPlan) (*WeatherReport, error)
}

type staticWeatherSource struct{}

func NewStaticWeatherSource() WeatherSource {
	return &staticWeatherSource{}
}

func (s *staticWeatherSource) GetReport(ctx context.Context, plan *db_models.FlightPlan) (*WeatherReport, error) {

	report := &WeatherReport{
		Summary: "Winds aloft moderate, isolated TS enroute, bases 3k ft, " +
			"VFR marginal near destination after 21Z; fuel/alt review advised.",
		RiskLevel: db_models.RiskMedium,
		Hazards: []map[string]string{
			{"type": "TS", "severity": "MOD", "location": "enroute"},
		},
		Metar: map[string]string{
			"origin": fmt.Sprintf("METAR %s 121651Z ...", plan.Origin),
		},
		Taf: map[string]string{
			"destination": fmt.Sprintf("TAF %s 121720Z ...", plan.Destination),
		},
		Notams: []map[string]string{
			{"id": "A1234", "text": "RWY 12/30 closed"},
		},
		Pireps: []map[string]string{
			{"loc": "DCT", "wx": "MOD TURB FL180"},
		},
		Alternates: []map[string]string{
			{"icao": "KBUR", "category": "Nearby"},
		},
		Overlays: map[string]interface{}{
			"route": map[string]interface{}{
				"type":        "LineString",
				"coordinates": []interface{}{},
			},
		},
	}

	return report, nil
}
