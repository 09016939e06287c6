package repository

import (
	"github.com/tabhaider/todo-webapp-api/internal/database"
	"github.com/tabhaider/todo-webapp-api/internal/models"
	"github.com/tabhaider/todo-webapp-api/internal/utils"
	"gorm.io/gorm"
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// Create creates a new task
func (r *GormTaskRepository) Create(task *models.Task) error {
	return r.db.Create(task).Error
}

// FindByIDAndOwner finds a task by ID scoped to its owner
func (r *GormTaskRepository) FindByIDAndOwner(id, ownerID uint64) (*models.Task, error) {
	var task models.Task
	if err := r.db.Where("id = ? AND user_id = ?", id, ownerID).First(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// ListByOwner retrieves the owner's tasks ordered by creation time
// descending. The id tiebreak keeps the order stable when two rows share a
// creation timestamp.
func (r *GormTaskRepository) ListByOwner(ownerID uint64, params utils.PaginationParams) ([]models.Task, int64, error) {
	query := r.db.Model(&models.Task{}).Where("user_id = ?", ownerID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var tasks []models.Task
	err := query.
		Order("created_at DESC, id DESC").
		Scopes(database.Paginate(params)).
		Find(&tasks).Error
	if err != nil {
		return nil, 0, err
	}

	return tasks, total, nil
}

// Update writes the task's mutable fields in one statement. The owner filter
// stays in the WHERE clause even though callers fetch through
// FindByIDAndOwner first.
func (r *GormTaskRepository) Update(task *models.Task) error {
	return r.db.Model(&models.Task{}).
		Where("id = ? AND user_id = ?", task.ID, task.UserID).
		Updates(map[string]interface{}{
			"title":        task.Title,
			"description":  task.Description,
			"is_completed": task.IsCompleted,
		}).Error
}

// Delete removes a task scoped to its owner. A row that is absent under the
// combined filter reports gorm.ErrRecordNotFound.
func (r *GormTaskRepository) Delete(id, ownerID uint64) error {
	result := r.db.Where("id = ? AND user_id = ?", id, ownerID).Delete(&models.Task{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
