package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/qwik2do/internal/client/client"
	"github.com/dmitrijs2005/qwik2do/internal/client/models"
)

// TaskService is the task repository of the dashboard. The server scopes
// every call to the signed-in user.
type TaskService struct {
	client client.Client
}

func NewTaskService(c client.Client) *TaskService {
	return &TaskService{client: c}
}

// ListByOwner returns the tasks of ownerID in server order. Records owned by
// anybody else are dropped.
func (s *TaskService) ListByOwner(ctx context.Context, ownerID string) ([]*models.Task, error) {
	tasks, err := s.client.ListTasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tasks error: %w", err)
	}

	owned := make([]*models.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.OwnerID == ownerID {
			owned = append(owned, t)
		}
	}
	return owned, nil
}

func (s *TaskService) Create(ctx context.Context, ownerID string, text string) (*models.Task, error) {
	task, err := s.client.CreateTask(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("create task error: %w", err)
	}
	if task.OwnerID != ownerID {
		return nil, fmt.Errorf("create task error: owner mismatch")
	}
	return task, nil
}

func (s *TaskService) Delete(ctx context.Context, id string) error {
	if err := s.client.DeleteTask(ctx, id); err != nil {
		return fmt.Errorf("delete task error: %w", err)
	}
	return nil
}

func (s *TaskService) SetCompleted(ctx context.Context, id string, completed bool) error {
	if err := s.client.SetTaskCompleted(ctx, id, completed); err != nil {
		return fmt.Errorf("update task error: %w", err)
	}
	return nil
}
