package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/qwik2do/internal/common"
	"github.com/dmitrijs2005/qwik2do/internal/server/models"
	"github.com/dmitrijs2005/qwik2do/internal/server/repositories/repomanager"
)

// TaskService manages a user's task list. userID always comes from the
// verified access token, never from the request body.
type TaskService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewTaskService(db *sql.DB, m repomanager.RepositoryManager) *TaskService {
	return &TaskService{db: db, repomanager: m}
}

func (s *TaskService) List(ctx context.Context, userID string) ([]*models.Task, error) {
	items, err := s.repomanager.Tasks(s.db).List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing tasks: %w", err)
	}
	return items, nil
}

// Create stores text as a new pending task. Text that is empty after
// trimming yields common.ErrorValidation.
func (s *TaskService) Create(ctx context.Context, userID string, text string) (*models.Task, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: task text is empty", common.ErrorValidation)
	}
	t, err := s.repomanager.Tasks(s.db).Create(ctx, userID, text)
	if err != nil {
		return nil, fmt.Errorf("error creating task: %w", err)
	}
	return t, nil
}

func (s *TaskService) Delete(ctx context.Context, userID string, id string) error {
	if err := s.repomanager.Tasks(s.db).Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("error deleting task: %w", err)
	}
	return nil
}

func (s *TaskService) SetCompleted(ctx context.Context, userID string, id string, completed bool) error {
	if err := s.repomanager.Tasks(s.db).SetCompleted(ctx, userID, id, completed); err != nil {
		return fmt.Errorf("error updating task: %w", err)
	}
	return nil
}
