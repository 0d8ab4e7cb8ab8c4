package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name                string     `gorm:"default:''" json:"name"`
	Email               string     `gorm:"unique;not null" json:"email"`
	Mobile              string     `gorm:"default:''" json:"mobile"`
	Role                string     `gorm:"default:'APPLICANT'" json:"role"` // APPLICANT, STAFF, ADMIN
	Password            string     `gorm:"not null" json:"-"`
	Address             string     `json:"address"`
	City                string     `json:"city"`
	PinCode             string     `json:"pin_code"`
	LastLogin           *time.Time `json:"last_login"`
	FailedLoginAttempts int        `gorm:"default:0" json:"-"`
	IsDeleted           bool       `gorm:"default:false" json:"is_deleted"`
}
