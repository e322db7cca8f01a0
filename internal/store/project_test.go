package store

import (
	"errors"
	"strings"
	"testing"

	"github.com/taskforge-dev/taskforge/internal/models"
)

func TestCreateProjectValidation(t *testing.T) {
	s := newTestStore(t)
	ann := createTestUser(t, s, "Ann", "ann@x.com")

	if _, err := s.CreateProject(ann.ID, "", ""); !errors.Is(err, ErrValidation) {
		t.Fatalf("empty name: got %v, want ErrValidation", err)
	}

	if _, err := s.CreateProject(ann.ID, "   ", ""); !errors.Is(err, ErrValidation) {
		t.Fatalf("blank name: got %v, want ErrValidation", err)
	}

	long := strings.Repeat("x", 101)
	if _, err := s.CreateProject(ann.ID, long, ""); !errors.Is(err, ErrValidation) {
		t.Fatalf("long name: got %v, want ErrValidation", err)
	}

	longDesc := strings.Repeat("x", 501)
	if _, err := s.CreateProject(ann.ID, "P1", longDesc); !errors.Is(err, ErrValidation) {
		t.Fatalf("long description: got %v, want ErrValidation", err)
	}
}

func TestListProjectsScopedAndNewestFirst(t *testing.T) {
	s := newTestStore(t)
	ann := createTestUser(t, s, "Ann", "ann@x.com")
	bob := createTestUser(t, s, "Bob", "bob@x.com")

	first, err := s.CreateProject(ann.ID, "First", "")
	if err != nil {
		t.Fatalf("CreateProject: %v", err)
	}

	second, err := s.CreateProject(ann.ID, "Second", "")
	if err != nil {
		t.Fatalf("CreateProject: %v", err)
	}

	if _, err := s.CreateProject(bob.ID, "Bob's", ""); err != nil {
		t.Fatalf("CreateProject: %v", err)
	}

	projects, err := s.ListProjects(ann.ID)
	if err != nil {
		t.Fatalf("ListProjects: %v", err)
	}

	if len(projects) != 2 {
		t.Fatalf("got %d projects, want 2", len(projects))
	}

	if projects[0].ID != second.ID || projects[1].ID != first.ID {
		t.Fatalf("wrong order: got [%d, %d], want [%d, %d]",
			projects[0].ID, projects[1].ID, second.ID, first.ID)
	}
}

func TestUpdateProjectAppliesPatch(t *testing.T) {
	s := newTestStore(t)
	ann := createTestUser(t, s, "Ann", "ann@x.com")

	project, err := s.CreateProject(ann.ID, "Before", "old description")
	if err != nil {
		t.Fatalf("CreateProject: %v", err)
	}

	name := "After"
	updated, err := s.UpdateProject(ann.ID, project.ID, ProjectPatch{Name: &name})
	if err != nil {
		t.Fatalf("UpdateProject: %v", err)
	}

	if updated.Name != "After" {
		t.Fatalf("name not updated: %q", updated.Name)
	}

	if updated.Description != "old description" {
		t.Fatalf("description changed by nil patch field: %q", updated.Description)
	}

	projects, err := s.ListProjects(ann.ID)
	if err != nil {
		t.Fatalf("ListProjects: %v", err)
	}

	if projects[0].Name != "After" {
		t.Fatalf("update not persisted: %q", projects[0].Name)
	}
}

func TestUpdateProjectCrossUserNotFound(t *testing.T) {
	s := newTestStore(t)
	ann := createTestUser(t, s, "Ann", "ann@x.com")
	bob := createTestUser(t, s, "Bob", "bob@x.com")

	project, err := s.CreateProject(ann.ID, "Ann's", "")
	if err != nil {
		t.Fatalf("CreateProject: %v", err)
	}

	name := "Hijacked"
	if _, err := s.UpdateProject(bob.ID, project.ID, ProjectPatch{Name: &name}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}

	// The row must be untouched.
	fresh, err := s.ownedProject(ann.ID, project.ID)
	if err != nil {
		t.Fatalf("ownedProject: %v", err)
	}

	if fresh.Name != "Ann's" {
		t.Fatalf("project modified through another user's patch: %q", fresh.Name)
	}
}

func TestUpdateProjectRevalidatesMergedResult(t *testing.T) {
	s := newTestStore(t)
	ann := createTestUser(t, s, "Ann", "ann@x.com")

	project, err := s.CreateProject(ann.ID, "P1", "")
	if err != nil {
		t.Fatalf("CreateProject: %v", err)
	}

	long := strings.Repeat("x", 101)
	if _, err := s.UpdateProject(ann.ID, project.ID, ProjectPatch{Name: &long}); !errors.Is(err, ErrValidation) {
		t.Fatalf("got %v, want ErrValidation", err)
	}

	empty := ""
	if _, err := s.UpdateProject(ann.ID, project.ID, ProjectPatch{Name: &empty}); !errors.Is(err, ErrValidation) {
		t.Fatalf("got %v, want ErrValidation for emptied name", err)
	}
}

func TestDeleteProjectCascadesToTasks(t *testing.T) {
	s := newTestStore(t)
	ann := createTestUser(t, s, "Ann", "ann@x.com")

	project, err := s.CreateProject(ann.ID, "P1", "")
	if err != nil {
		t.Fatalf("CreateProject: %v", err)
	}

	keep, err := s.CreateProject(ann.ID, "Keep", "")
	if err != nil {
		t.Fatalf("CreateProject: %v", err)
	}

	for _, title := range []string{"T1", "T2", "T3"} {
		if _, err := s.CreateTask(ann.ID, project.ID, NewTask{Title: title}); err != nil {
			t.Fatalf("CreateTask(%s): %v", title, err)
		}
	}

	if _, err := s.CreateTask(ann.ID, keep.ID, NewTask{Title: "Survivor"}); err != nil {
		t.Fatalf("CreateTask: %v", err)
	}

	if err := s.DeleteProject(ann.ID, project.ID); err != nil {
		t.Fatalf("DeleteProject: %v", err)
	}

	var remaining int64
	if err := s.db.Model(&models.Task{}).Where("project_id = ?", project.ID).Count(&remaining).Error; err != nil {
		t.Fatalf("count: %v", err)
	}

	if remaining != 0 {
		t.Fatalf("%d tasks survived the cascade", remaining)
	}

	tasks, err := s.ListTasks(ann.ID, keep.ID)
	if err != nil {
		t.Fatalf("ListTasks: %v", err)
	}

	if len(tasks) != 1 {
		t.Fatalf("cascade touched another project: %d tasks left, want 1", len(tasks))
	}
}

func TestDeleteProjectIdempotentNotFound(t *testing.T) {
	s := newTestStore(t)
	ann := createTestUser(t, s, "Ann", "ann@x.com")

	project, err := s.CreateProject(ann.ID, "P1", "")
	if err != nil {
		t.Fatalf("CreateProject: %v", err)
	}

	if err := s.DeleteProject(ann.ID, project.ID); err != nil {
		t.Fatalf("first delete: %v", err)
	}

	if err := s.DeleteProject(ann.ID, project.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second delete: got %v, want ErrNotFound", err)
	}
}

func TestDeleteProjectCrossUserNotFound(t *testing.T) {
	s := newTestStore(t)
	ann := createTestUser(t, s, "Ann", "ann@x.com")
	bob := createTestUser(t, s, "Bob", "bob@x.com")

	project, err := s.CreateProject(ann.ID, "Ann's", "")
	if err != nil {
		t.Fatalf("CreateProject: %v", err)
	}

	if err := s.DeleteProject(bob.ID, project.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}

	if _, err := s.ownedProject(ann.ID, project.ID); err != nil {
		t.Fatalf("project deleted through another user's request: %v", err)
	}
}
