package services

import (
	"context"

	"taskboard/internal/authz"
	"taskboard/internal/models"
	"taskboard/internal/repositories"
)

type StatsService interface {
	Overview(ctx context.Context, actor authz.Actor) (models.TaskStats, error)
}

type statsService struct {
	tasks repositories.TaskRepository
}

func NewStatsService(tasks repositories.TaskRepository) StatsService {
	return &statsService{tasks: tasks}
}

// Overview counts tasks visible to actor. Overdue uses the flag stored at the last write.
func (s *statsService) Overview(ctx context.Context, actor authz.Actor) (models.TaskStats, error) {
	if err := authz.CanTask(actor, authz.TaskList, ""); err != nil {
		return models.TaskStats{}, err
	}
	return s.tasks.Stats(ctx, authz.TaskListScope(actor))
}
