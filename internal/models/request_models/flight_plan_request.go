package request_models

import "time"

type CreateFlightPlanRequest struct {
	Callsign       *string   `json:"callsign"`
	Origin         string    `json:"origin" binding:"required,min=3,max=4"`
	Destination    string    `json:"destination" binding:"required,min=3,max=4"`
	Alternates     []string  `json:"alternates" binding:"dive,min=3,max=4"`
	Route          *string   `json:"route"`
	DepartureTime  time.Time `json:"departure_time" binding:"required"`
	CruiseAltitude *string   `json:"cruise_altitude"`
	AircraftType   *string   `json:"aircraft_type"`
}

type BriefingRequest struct {
	FlightPlanID string `json:"flight_plan_id" binding:"required"`
}
