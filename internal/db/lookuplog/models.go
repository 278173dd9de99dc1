package lookuplog

import (
	"time"
)

// CityLookup is one completed lookup. Exactly one of the report columns or
// ErrorMessage is populated.
type CityLookup struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	LookupID     string    `json:"lookup_id" gorm:"column:lookup_id;uniqueIndex:idx_lookup_id"`
	City         string    `json:"city" gorm:"index:idx_city;index:idx_city_created_at"`
	Latitude     *float64  `json:"latitude,omitempty" gorm:"column:latitude"`
	Longitude    *float64  `json:"longitude,omitempty" gorm:"column:longitude"`
	Temperature  *float64  `json:"temperature,omitempty" gorm:"column:temperature"`
	Summary      string    `json:"summary,omitempty" gorm:"column:summary"`
	ObservedAt   string    `json:"observed_at,omitempty" gorm:"column:observed_at"`
	ErrorKind    string    `json:"error_kind,omitempty" gorm:"column:error_kind"`
	ErrorMessage string    `json:"error_message,omitempty" gorm:"column:error_message"`
	CreatedAt    time.Time `json:"created_at" gorm:"index:idx_created_at;index:idx_city_created_at"`
}

func (CityLookup) TableName() string {
	return "city_lookups"
}
