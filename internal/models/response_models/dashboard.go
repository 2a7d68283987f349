package response_models

import "time"

type UserSummary struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type FlightPlanSummary struct {
	ID             string    `json:"id"`
	Callsign       *string   `json:"callsign,omitempty"`
	Origin         string    `json:"origin"`
	Destination    string    `json:"destination"`
	Alternates     []string  `json:"alternates"`
	Route          *string   `json:"route,omitempty"`
	DepartureTime  time.Time `json:"departure_time"`
	CruiseAltitude *string   `json:"cruise_altitude,omitempty"`
	AircraftType   *string   `json:"aircraft_type,omitempty"`
	CreatedAt      int64     `json:"created_at"`
}

type DashboardResponse struct {
	User        UserSummary         `json:"user"`
	RecentPlans []FlightPlanSummary `json:"recent_plans"`
}
