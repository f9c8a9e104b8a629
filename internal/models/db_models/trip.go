package db_models

import "encoding/json"

// Trip is a saved itinerary. The generated plan is stored whole as jsonb;
// the scalar columns exist for listing and filtering without unmarshalling.
type Trip struct {
	BaseModel
	Destination string `gorm:"size:120;index"`
	StartDate   string `gorm:"size:10"`
	EndDate     string `gorm:"size:10"`
	Budget      string `gorm:"size:16"`
	Duration    string `gorm:"size:32"`

	Itinerary json.RawMessage `gorm:"type:jsonb"`
}
