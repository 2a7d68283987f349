package db_models

type User struct {
	BaseModel
	Name         string
	Email        string `gorm:"uniqueIndex"`
	PasswordHash string
	IsActive     bool `gorm:"default:true"`

	FlightPlans []FlightPlan
	Briefings   []Briefing
}
