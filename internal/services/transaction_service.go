package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alcanciapp/alcanciapp-be/internal/models"
	"github.com/google/uuid"
)

// TransactionServiceProvider defines the interface for transaction services.
type TransactionServiceProvider interface {
	CreateTransaction(ctx context.Context, userID, goalID string, amount float64) (models.Transaction, error)
	GetTransactions(ctx context.Context, userID, goalID string) ([]models.Transaction, error)
	DeleteTransaction(ctx context.Context, userID, id string) error
}

// TransactionService provides business logic for goal contributions.
type TransactionService struct {
	db *sql.DB
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(db *sql.DB) *TransactionService {
	return &TransactionService{db: db}
}

// CreateTransaction records a contribution against a goal. The goal must be
// owned by userID; a foreign or nonexistent goal fails with ErrGoalForbidden
// before anything is written, which keeps another user's goal from ever
// accumulating orphan contributions. The new row is stamped with the same
// user id so later reads and deletes stay scoped.
func (s *TransactionService) CreateTransaction(ctx context.Context, userID, goalID string, amount float64) (models.Transaction, error) {
	var ownedGoalID string
	row := s.db.QueryRowContext(ctx, "SELECT id FROM goals WHERE id = ? AND user_id = ?", goalID, userID)
	if err := row.Scan(&ownedGoalID); err != nil {
		if err == sql.ErrNoRows {
			return models.Transaction{}, ErrGoalForbidden
		}
		return models.Transaction{}, fmt.Errorf("failed to check goal ownership: %w", err)
	}

	txn := models.Transaction{
		ID:     uuid.New().String(),
		GoalID: goalID,
		UserID: userID,
		Amount: amount,
	}
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO goal_transactions (id, goal_id, user_id, amount) VALUES (?, ?, ?, ?)",
		txn.ID, txn.GoalID, txn.UserID, txn.Amount,
	)
	if err != nil {
		return models.Transaction{}, fmt.Errorf("failed to insert transaction: %w", err)
	}
	return txn, nil
}

// GetTransactions retrieves the contributions for a goal, newest first. The
// query filters by goal_id and user_id together, so a foreign goal simply
// yields an empty list.
func (s *TransactionService) GetTransactions(ctx context.Context, userID, goalID string) ([]models.Transaction, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, goal_id, user_id, amount, created_at FROM goal_transactions WHERE goal_id = ? AND user_id = ? ORDER BY created_at DESC",
		goalID, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	txns := []models.Transaction{}
	for rows.Next() {
		var t models.Transaction
		if err := rows.Scan(&t.ID, &t.GoalID, &t.UserID, &t.Amount, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		txns = append(txns, t)
	}
	return txns, rows.Err()
}

// DeleteTransaction removes a contribution scoped by owner; zero affected
// rows means not found (or not the caller's, which reads the same).
func (s *TransactionService) DeleteTransaction(ctx context.Context, userID, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM goal_transactions WHERE id = ? AND user_id = ?", id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
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
