package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alcanciapp/alcanciapp-be/internal/models"
	"github.com/google/uuid"
)

// GoalServiceProvider defines the interface for goal services.
type GoalServiceProvider interface {
	CreateGoal(ctx context.Context, userID string, goal models.Goal) (models.Goal, error)
	GetGoals(ctx context.Context, userID string) ([]models.Goal, error)
	GetGoalByID(ctx context.Context, userID, id string) (models.Goal, error)
	DeleteGoal(ctx context.Context, userID, id string) error
}

// GoalService provides business logic for savings goals. Every point query
// is scoped by (id, user_id) in the SQL itself, so another user's goal is
// indistinguishable from a nonexistent one.
type GoalService struct {
	db *sql.DB
}

// NewGoalService creates a new GoalService.
func NewGoalService(db *sql.DB) *GoalService {
	return &GoalService{db: db}
}

// CreateGoal inserts a new goal owned by userID.
func (s *GoalService) CreateGoal(ctx context.Context, userID string, goal models.Goal) (models.Goal, error) {
	goal.ID = uuid.New().String()
	goal.UserID = userID

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO goals (id, user_id, name, duration_months, frequency, privacy) VALUES (?, ?, ?, ?, ?, ?)",
		goal.ID, goal.UserID, goal.Name, goal.DurationMonths, goal.Frequency, goal.Privacy,
	)
	if err != nil {
		return models.Goal{}, fmt.Errorf("failed to insert goal: %w", err)
	}
	return goal, nil
}

// GetGoals retrieves all goals owned by userID, newest first.
func (s *GoalService) GetGoals(ctx context.Context, userID string) ([]models.Goal, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, user_id, name, duration_months, frequency, privacy, created_at FROM goals WHERE user_id = ? ORDER BY created_at DESC",
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query goals: %w", err)
	}
	defer rows.Close()

	goals := []models.Goal{}
	for rows.Next() {
		var g models.Goal
		if err := rows.Scan(&g.ID, &g.UserID, &g.Name, &g.DurationMonths, &g.Frequency, &g.Privacy, &g.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan goal: %w", err)
		}
		goals = append(goals, g)
	}
	return goals, rows.Err()
}

// GetGoalByID retrieves a single goal scoped by owner. Returns ErrNotFound
// both when the goal does not exist and when it belongs to another user.
func (s *GoalService) GetGoalByID(ctx context.Context, userID, id string) (models.Goal, error) {
	var g models.Goal
	row := s.db.QueryRowContext(ctx,
		"SELECT id, user_id, name, duration_months, frequency, privacy, created_at FROM goals WHERE id = ? AND user_id = ?",
		id, userID,
	)
	err := row.Scan(&g.ID, &g.UserID, &g.Name, &g.DurationMonths, &g.Frequency, &g.Privacy, &g.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Goal{}, ErrNotFound
		}
		return models.Goal{}, fmt.Errorf("failed to get goal: %w", err)
	}
	return g, nil
}

// DeleteGoal removes a goal scoped by owner. The ownership filter lives in
// the DELETE itself; zero affected rows means not found.
func (s *GoalService) DeleteGoal(ctx context.Context, userID, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM goals WHERE id = ? AND user_id = ?", id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete goal: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
