package models

import (
	"time"

	"gorm.io/gorm"
)

// Task status values.
const (
	StatusTodo       = "todo"
	StatusInProgress = "in-progress"
	StatusDone       = "done"
)

// Task priority values.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

type Task struct {
	gorm.Model

	Title       string `gorm:"size:200;not null"`
	Description string `gorm:"size:1000"`
	Status      string `gorm:"not null;default:todo"`
	Priority    string `gorm:"not null;default:medium"`
	DueDate     *time.Time
	ProjectID   uint `gorm:"not null;index"`
	OwnerID     uint `gorm:"not null;index"`

	// Relationships
	Project Project `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
	Owner   User    `gorm:"foreignKey:OwnerID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}

// ValidStatus reports whether s is one of the enumerated task statuses.
func ValidStatus(s string) bool {
	return s == StatusTodo || s == StatusInProgress || s == StatusDone
}

// ValidPriority reports whether p is one of the enumerated task priorities.
func ValidPriority(p string) bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}
