package repository

import (
	"github.com/tabhaider/todo-webapp-api/internal/models"
	"github.com/tabhaider/todo-webapp-api/internal/utils"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(email string) (*models.User, error)
}

// TaskRepository defines the interface for task data access.
//
// Every method takes the owner's user ID and applies it as an equality
// filter next to the task ID. There is deliberately no way to reach a task
// by ID alone, so a task that exists but belongs to someone else is
// indistinguishable from one that does not exist.
type TaskRepository interface {
	// Create creates a new task
	Create(task *models.Task) error

	// FindByIDAndOwner finds a task by ID scoped to its owner
	FindByIDAndOwner(id, ownerID uint64) (*models.Task, error)

	// ListByOwner retrieves the owner's tasks, most recently created first
	ListByOwner(ownerID uint64, params utils.PaginationParams) ([]models.Task, int64, error)

	// Update persists the task's mutable fields in a single statement,
	// still filtered by the owner
	Update(task *models.Task) error

	// Delete removes a task scoped to its owner
	Delete(id, ownerID uint64) error
}
