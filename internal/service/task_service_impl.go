package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/oahconnect/carelink/internal/app"
	"github.com/oahconnect/carelink/internal/domain"
	"github.com/oahconnect/carelink/internal/repository"
)

type taskService struct {
	tasks    repository.TaskRepo
	ttl      time.Duration
	observer UseCaseObserver
	now      func() time.Time

	group singleflight.Group

	mu        sync.Mutex
	cached    []*domain.VolunteerTask
	fetchedAt time.Time
}

// NewTaskService serves the volunteer task board. Listings are cached
// for ttl; concurrent refreshes collapse into a single repository read.
func NewTaskService(tasks repository.TaskRepo, ttl time.Duration, observers ...UseCaseObserver) TaskService {
	return &taskService{
		tasks:    tasks,
		ttl:      ttl,
		observer: useCaseObserverOrNoop(observers),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *taskService) List(ctx context.Context, query string) ([]*domain.VolunteerTask, error) {
	s.mu.Lock()
	if s.cached != nil && s.now().Sub(s.fetchedAt) < s.ttl {
		cached := s.cached
		s.mu.Unlock()
		return filterTasks(cached, query), nil
	}
	s.mu.Unlock()

	v, err, _ := s.group.Do("board", func() (any, error) {
		all, err := s.tasks.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("listing volunteer tasks: %w", err)
		}
		s.mu.Lock()
		s.cached = all
		s.fetchedAt = s.now()
		s.mu.Unlock()
		return all, nil
	})
	if err != nil {
		return nil, err
	}
	return filterTasks(v.([]*domain.VolunteerTask), query), nil
}

func (s *taskService) Accept(ctx context.Context, taskID, volunteer string) (task *domain.VolunteerTask, err error) {
	startedAt := s.now()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "accept-task",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"task_id": taskID, "volunteer": volunteer},
		})
	}()

	if err = s.tasks.Assign(ctx, taskID, volunteer); err != nil {
		if existing, getErr := s.tasks.GetByID(ctx, taskID); getErr == nil && !existing.Acceptable() {
			return nil, &app.ValidationError{
				Code:    app.ErrTaskUnavailable,
				Field:   "task",
				Message: fmt.Sprintf("task %s has already been claimed", taskID),
			}
		}
		return nil, err
	}

	s.invalidate()

	task, err = s.tasks.GetByID(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("reloading task %s: %w", taskID, err)
	}
	return task, nil
}

func (s *taskService) invalidate() {
	s.mu.Lock()
	s.cached = nil
	s.fetchedAt = time.Time{}
	s.mu.Unlock()
}
