package services

import (
	"testing"

	"github.com/alcanciapp/alcanciapp-be/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGoal(name string) models.Goal {
	return models.Goal{
		Name:           name,
		DurationMonths: 6,
		Frequency:      "Monthly",
		Privacy:        "Private",
	}
}

func TestGoalService_CreateAndGet(t *testing.T) {
	db := newTestDB(t)
	svc := NewGoalService(db)
	userID := createUser(t, db)

	created, err := svc.CreateGoal(testCtx(), userID, newGoal("Vacation"))
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, userID, created.UserID)

	got, err := svc.GetGoalByID(testCtx(), userID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Vacation", got.Name)
	assert.Equal(t, 6, got.DurationMonths)
	assert.Equal(t, "Monthly", got.Frequency)
	assert.Equal(t, "Private", got.Privacy)
	assert.NotEmpty(t, got.CreatedAt)
}

func TestGoalService_GetGoals_OnlyOwn(t *testing.T) {
	db := newTestDB(t)
	svc := NewGoalService(db)
	userA := createUser(t, db)
	userB := createUser(t, db)

	_, err := svc.CreateGoal(testCtx(), userA, newGoal("Vacation"))
	require.NoError(t, err)
	_, err = svc.CreateGoal(testCtx(), userA, newGoal("New Laptop"))
	require.NoError(t, err)
	_, err = svc.CreateGoal(testCtx(), userB, newGoal("Emergency Fund"))
	require.NoError(t, err)

	goalsA, err := svc.GetGoals(testCtx(), userA)
	require.NoError(t, err)
	assert.Len(t, goalsA, 2)
	for _, g := range goalsA {
		assert.Equal(t, userA, g.UserID)
	}

	goalsB, err := svc.GetGoals(testCtx(), userB)
	require.NoError(t, err)
	assert.Len(t, goalsB, 1)
	assert.Equal(t, "Emergency Fund", goalsB[0].Name)
}

func TestGoalService_GetGoals_EmptyList(t *testing.T) {
	db := newTestDB(t)
	svc := NewGoalService(db)
	userID := createUser(t, db)

	goals, err := svc.GetGoals(testCtx(), userID)
	require.NoError(t, err)
	assert.NotNil(t, goals)
	assert.Empty(t, goals)
}

func TestGoalService_ForeignGoalReadsAsNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewGoalService(db)
	userA := createUser(t, db)
	userB := createUser(t, db)

	goal, err := svc.CreateGoal(testCtx(), userA, newGoal("Vacation"))
	require.NoError(t, err)

	// Another user's goal must be indistinguishable from a missing one.
	_, err = svc.GetGoalByID(testCtx(), userB, goal.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.GetGoalByID(testCtx(), userA, "no-such-goal")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGoalService_DeleteGoalWithTransactions(t *testing.T) {
	db := newTestDB(t)
	svc := NewGoalService(db)
	txns := NewTransactionService(db)
	userID := createUser(t, db)

	goal, err := svc.CreateGoal(testCtx(), userID, newGoal("Vacation"))
	require.NoError(t, err)
	_, err = txns.CreateTransaction(testCtx(), userID, goal.ID, 42.5)
	require.NoError(t, err)
	_, err = txns.CreateTransaction(testCtx(), userID, goal.ID, 10)
	require.NoError(t, err)

	// Contributions must not block the owner's delete; they go with the goal.
	require.NoError(t, svc.DeleteGoal(testCtx(), userID, goal.ID))

	_, err = svc.GetGoalByID(testCtx(), userID, goal.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	var orphaned int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM goal_transactions WHERE goal_id = ?", goal.ID).Scan(&orphaned))
	assert.Equal(t, 0, orphaned)
}

func TestGoalService_DeleteScopedByOwner(t *testing.T) {
	db := newTestDB(t)
	svc := NewGoalService(db)
	userA := createUser(t, db)
	userB := createUser(t, db)

	goal, err := svc.CreateGoal(testCtx(), userA, newGoal("Vacation"))
	require.NoError(t, err)

	// A foreign delete fails as not-found and mutates nothing.
	err = svc.DeleteGoal(testCtx(), userB, goal.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	got, err := svc.GetGoalByID(testCtx(), userA, goal.ID)
	require.NoError(t, err)
	assert.Equal(t, goal.ID, got.ID)

	// The owner's delete succeeds and the goal is gone afterwards.
	require.NoError(t, svc.DeleteGoal(testCtx(), userA, goal.ID))
	_, err = svc.GetGoalByID(testCtx(), userA, goal.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	err = svc.DeleteGoal(testCtx(), userA, goal.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
