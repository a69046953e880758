package models

import "time"

// RankReference contains the expected averages of a player in a given tier.
type RankReference struct {
	Tier     string `gorm:"type:tier_type;primaryKey"`
	Position int    `gorm:"type:smallint"`

	KDA               float64
	CSPerMin          float64 `gorm:"column:cs_per_min"`
	VisionPerMin      float64
	ObjectivesPerGame float64
	UpdatedAt         time.Time `gorm:"autoUpdateTime"`
}
