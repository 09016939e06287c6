// Package todocli implements the standalone in-memory todo list behind
// cmd/todo. It is a non-networked toy with no accounts and no persistence;
// everything lives in process memory and is lost on exit.
package todocli

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrEmptyTitle   = errors.New("task title cannot be empty")
	ErrTaskNotFound = errors.New("task not found")
	ErrNothingToDo  = errors.New("provide at least a title or a description to update")
)

// Task is a single in-memory task.
type Task struct {
	ID          int
	Title       string
	Description string
	Completed   bool
}

// String renders the task the way the list command prints it.
func (t Task) String() string {
	status := "x"
	if t.Completed {
		status = "v"
	}
	s := fmt.Sprintf("[%s] ID: %d - %s", status, t.ID, t.Title)
	if t.Description != "" {
		s += "\n  Description: " + t.Description
	}
	return s
}

// List holds tasks keyed by ID with sequential ID assignment.
type List struct {
	tasks  map[int]*Task
	nextID int
}

// NewList creates an empty List.
func NewList() *List {
	return &List{
		tasks:  make(map[int]*Task),
		nextID: 1,
	}
}

// Add appends a new pending task and returns it.
func (l *List) Add(title, description string) (*Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}

	task := &Task{
		ID:          l.nextID,
		Title:       title,
		Description: strings.TrimSpace(description),
	}
	l.tasks[task.ID] = task
	l.nextID++
	return task, nil
}

// Update changes the title and/or description of an existing task. Nil
// fields are left untouched.
func (l *List) Update(id int, title, description *string) error {
	task, ok := l.tasks[id]
	if !ok {
		return ErrTaskNotFound
	}
	if title == nil && description == nil {
		return ErrNothingToDo
	}

	if title != nil {
		trimmed := strings.TrimSpace(*title)
		if trimmed == "" {
			return ErrEmptyTitle
		}
		task.Title = trimmed
	}
	if description != nil {
		task.Description = strings.TrimSpace(*description)
	}
	return nil
}

// Complete marks a task done. It reports whether the task was already
// completed so the caller can phrase its message.
func (l *List) Complete(id int) (already bool, err error) {
	task, ok := l.tasks[id]
	if !ok {
		return false, ErrTaskNotFound
	}
	if task.Completed {
		return true, nil
	}
	task.Completed = true
	return false, nil
}

// Delete removes a task by ID.
func (l *List) Delete(id int) error {
	if _, ok := l.tasks[id]; !ok {
		return ErrTaskNotFound
	}
	delete(l.tasks, id)
	return nil
}

// Clear removes every task and resets ID assignment.
func (l *List) Clear() {
	l.tasks = make(map[int]*Task)
	l.nextID = 1
}

// Tasks returns all tasks ordered by ID.
func (l *List) Tasks() []Task {
	ids := make([]int, 0, len(l.tasks))
	for id := range l.tasks {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	result := make([]Task, 0, len(ids))
	for _, id := range ids {
		result = append(result, *l.tasks[id])
	}
	return result
}

// Stats returns total and completed task counts.
func (l *List) Stats() (total, completed int) {
	total = len(l.tasks)
	for _, task := range l.tasks {
		if task.Completed {
			completed++
		}
	}
	return total, completed
}
