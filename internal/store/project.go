package store

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/taskforge-dev/taskforge/internal/models"
)

// ProjectPatch carries a partial project update. Nil fields are left alone.
type ProjectPatch struct {
	Name        *string
	Description *string
}

func validateProject(name, description string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: project name is required", ErrValidation)
	}
	if len(name) > 100 {
		return fmt.Errorf("%w: project name cannot exceed 100 characters", ErrValidation)
	}
	if len(description) > 500 {
		return fmt.Errorf("%w: project description cannot exceed 500 characters", ErrValidation)
	}
	return nil
}

func (s *Store) CreateProject(ownerID uint, name, description string) (*models.Project, error) {
	if err := validateProject(name, description); err != nil {
		return nil, err
	}

	project := models.Project{
		Name:        strings.TrimSpace(name),
		Description: strings.TrimSpace(description),
		OwnerID:     ownerID,
	}

	if err := s.db.Create(&project).Error; err != nil {
		return nil, storeError(err)
	}

	return &project, nil
}

// ListProjects returns the owner's projects, newest first.
func (s *Store) ListProjects(ownerID uint) ([]models.Project, error) {
	var projects []models.Project

	err := s.db.Where("owner_id = ?", ownerID).
		Order("created_at DESC, id DESC").
		Find(&projects).Error
	if err != nil {
		return nil, storeError(err)
	}

	return projects, nil
}

// UpdateProject applies a patch to an owned project. The merged result is
// re-validated so a patch cannot push a field past its limits.
func (s *Store) UpdateProject(ownerID, projectID uint, patch ProjectPatch) (*models.Project, error) {
	project, err := s.ownedProject(ownerID, projectID)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		project.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Description != nil {
		project.Description = strings.TrimSpace(*patch.Description)
	}

	if err := validateProject(project.Name, project.Description); err != nil {
		return nil, err
	}

	if err := s.db.Save(project).Error; err != nil {
		return nil, storeError(err)
	}

	return project, nil
}

// DeleteProject removes an owned project and all of its tasks as one unit.
// The cascade runs inside a transaction: either the project and every task
// under it are gone, or nothing is.
func (s *Store) DeleteProject(ownerID, projectID uint) error {
	project, err := s.ownedProject(ownerID, projectID)
	if err != nil {
		return err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", project.ID).Delete(&models.Task{}).Error; err != nil {
			return err
		}

		if err := tx.Delete(project).Error; err != nil {
			// The task delete already ran inside this transaction; a
			// failure here must roll the whole unit back. If it does
			// not, the store has lost tasks without their project.
			return fmt.Errorf("%w: project delete failed after task cascade: %v", ErrConsistency, err)
		}

		return nil
	})
	if err != nil {
		return storeError(err)
	}

	return nil
}
