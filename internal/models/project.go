package models

import "gorm.io/gorm"

type Project struct {
	gorm.Model

	Name        string `gorm:"size:100;not null"`
	Description string `gorm:"size:500"`
	OwnerID     uint   `gorm:"not null;index"`

	// Relationships
	Owner User   `gorm:"foreignKey:OwnerID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
	Tasks []Task `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}
