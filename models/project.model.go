package models

import "gorm.io/gorm"

// Project carries the land-parcel descriptors referenced by reports.
type Project struct {
	gorm.Model
	Name        string  `gorm:"not null" json:"name"`
	Location    string  `json:"location"`
	LandUseType string  `json:"land_use_type"`
	Area        float64 `gorm:"default:0" json:"area"`
	OwnerName   string  `gorm:"index" json:"owner_name"`
	IsDeleted   bool    `gorm:"default:false" json:"is_deleted"`
}
