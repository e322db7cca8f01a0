package store

import (
	"fmt"
	"strings"
	"time"

	"github.com/taskforge-dev/taskforge/internal/models"
)

// NewTask carries the fields for task creation. Zero-value Status and
// Priority fall back to the schema defaults.
type NewTask struct {
	Title       string
	Description string
	Status      string
	Priority    string
	DueDate     *time.Time
}

// TaskPatch carries a partial task update. Nil fields are left alone.
type TaskPatch struct {
	Title       *string
	Description *string
	Status      *string
	Priority    *string
	DueDate     *time.Time
}

// TaskStats is the per-owner aggregate over all tasks, partitioned by status.
type TaskStats struct {
	Total      int64 `json:"total"`
	Completed  int64 `json:"completed"`
	InProgress int64 `json:"inProgress"`
	Todo       int64 `json:"todo"`
}

func validateTask(title, description, status, priority string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("%w: task title is required", ErrValidation)
	}
	if len(title) > 200 {
		return fmt.Errorf("%w: task title cannot exceed 200 characters", ErrValidation)
	}
	if len(description) > 1000 {
		return fmt.Errorf("%w: task description cannot exceed 1000 characters", ErrValidation)
	}
	if !models.ValidStatus(status) {
		return fmt.Errorf("%w: invalid task status %q", ErrValidation, status)
	}
	if !models.ValidPriority(priority) {
		return fmt.Errorf("%w: invalid task priority %q", ErrValidation, priority)
	}
	return nil
}

// CreateTask creates a task under one of the owner's projects. The project
// reference is resolved with the ownership-qualified lookup first, so a task
// can never attach to another user's project, guessed ID or not.
func (s *Store) CreateTask(ownerID, projectID uint, fields NewTask) (*models.Task, error) {
	project, err := s.ownedProject(ownerID, projectID)
	if err != nil {
		return nil, err
	}

	if fields.Status == "" {
		fields.Status = models.StatusTodo
	}
	if fields.Priority == "" {
		fields.Priority = models.PriorityMedium
	}

	if err := validateTask(fields.Title, fields.Description, fields.Status, fields.Priority); err != nil {
		return nil, err
	}

	task := models.Task{
		Title:       strings.TrimSpace(fields.Title),
		Description: strings.TrimSpace(fields.Description),
		Status:      fields.Status,
		Priority:    fields.Priority,
		DueDate:     fields.DueDate,
		ProjectID:   project.ID,
		OwnerID:     ownerID,
	}

	if err := s.db.Create(&task).Error; err != nil {
		return nil, storeError(err)
	}

	return &task, nil
}

// ListTasks returns the tasks under one of the owner's projects, newest
// first. The project ownership check runs before any task row is read.
func (s *Store) ListTasks(ownerID, projectID uint) ([]models.Task, error) {
	project, err := s.ownedProject(ownerID, projectID)
	if err != nil {
		return nil, err
	}

	var tasks []models.Task

	err = s.db.Where("project_id = ? AND owner_id = ?", project.ID, ownerID).
		Order("created_at DESC, id DESC").
		Find(&tasks).Error
	if err != nil {
		return nil, storeError(err)
	}

	return tasks, nil
}

// UpdateTask applies a patch to an owned task, re-validating the merged
// result including the status and priority enums.
func (s *Store) UpdateTask(ownerID, taskID uint, patch TaskPatch) (*models.Task, error) {
	task, err := s.ownedTask(ownerID, taskID)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		task.Title = strings.TrimSpace(*patch.Title)
	}
	if patch.Description != nil {
		task.Description = strings.TrimSpace(*patch.Description)
	}
	if patch.Status != nil {
		task.Status = *patch.Status
	}
	if patch.Priority != nil {
		task.Priority = *patch.Priority
	}
	if patch.DueDate != nil {
		task.DueDate = patch.DueDate
	}

	if err := validateTask(task.Title, task.Description, task.Status, task.Priority); err != nil {
		return nil, err
	}

	if err := s.db.Save(task).Error; err != nil {
		return nil, storeError(err)
	}

	return task, nil
}

func (s *Store) DeleteTask(ownerID, taskID uint) error {
	task, err := s.ownedTask(ownerID, taskID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(task).Error; err != nil {
		return storeError(err)
	}

	return nil
}

// StatsForOwner counts the owner's tasks across all projects, partitioned by
// status.
func (s *Store) StatsForOwner(ownerID uint) (*TaskStats, error) {
	rows := []struct {
		Status string
		Count  int64
	}{}

	err := s.db.Model(&models.Task{}).
		Select("status, count(*) as count").
		Where("owner_id = ?", ownerID).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, storeError(err)
	}

	var stats TaskStats

	for _, row := range rows {
		stats.Total += row.Count

		switch row.Status {
		case models.StatusDone:
			stats.Completed += row.Count
		case models.StatusInProgress:
			stats.InProgress += row.Count
		case models.StatusTodo:
			stats.Todo += row.Count
		}
	}

	return &stats, nil
}
