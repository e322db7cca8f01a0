// Package store is the single data-access layer. Every Project and Task
// operation is qualified by the owner's user ID, so a request for another
// user's row behaves exactly like a request for a missing row.
package store

import (
	"gorm.io/gorm"

	"github.com/taskforge-dev/taskforge/internal/models"
)

type Store struct {
	db *gorm.DB
}

func New(conn *gorm.DB) *Store {
	return &Store{db: conn}
}

// ownedProject is the authorize-and-fetch primitive for projects. All project
// and task paths that take a project ID go through here; the predicate always
// carries both the row ID and the owner ID.
func (s *Store) ownedProject(ownerID, projectID uint) (*models.Project, error) {
	var project models.Project

	if err := s.db.Where("id = ? AND owner_id = ?", projectID, ownerID).First(&project).Error; err != nil {
		return nil, lookupError(err)
	}

	return &project, nil
}

// ownedTask is the authorize-and-fetch primitive for tasks.
func (s *Store) ownedTask(ownerID, taskID uint) (*models.Task, error) {
	var task models.Task

	if err := s.db.Where("id = ? AND owner_id = ?", taskID, ownerID).First(&task).Error; err != nil {
		return nil, lookupError(err)
	}

	return &task, nil
}
