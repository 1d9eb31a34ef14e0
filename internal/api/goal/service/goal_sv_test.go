package goalService

import (
	"testing"
	"time"

	"finflow/internal/api/goal"
	goalRepository "finflow/internal/api/goal/repository"
	walletRepository "finflow/internal/api/wallet/repository"
	"finflow/internal/entity"
	"finflow/pkg/utils"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/context"
)

type fakeGoalStore struct {
	goals         map[string]entity.Goal
	totalSaving   decimal.Decimal
	totalDeducted decimal.Decimal

	committed  bool
	rolledBack bool
}

func (f *fakeGoalStore) CreateGoal(ctx context.Context, g entity.Goal) error {
	f.goals[g.ID] = g
	return nil
}

func (f *fakeGoalStore) GetGoalByID(ctx context.Context, id string) (entity.Goal, error) {
	g, ok := f.goals[id]
	if !ok {
		return entity.Goal{}, goal.ErrGoalNotFound
	}
	return g, nil
}

func (f *fakeGoalStore) GetGoalsByUserID(ctx context.Context, userID string) ([]entity.Goal, error) {
	result := make([]entity.Goal, 0)
	for _, g := range f.goals {
		if g.UserID == userID {
			result = append(result, g)
		}
	}
	return result, nil
}

func (f *fakeGoalStore) UpdateGoal(ctx context.Context, g entity.Goal) error {
	existing, ok := f.goals[g.ID]
	if !ok || existing.Completed {
		return goal.ErrGoalNotFound
	}
	g.Completed = existing.Completed
	g.CreatedAt = existing.CreatedAt
	f.goals[g.ID] = g
	return nil
}

func (f *fakeGoalStore) DeleteGoal(ctx context.Context, id string) error {
	if _, ok := f.goals[id]; !ok {
		return goal.ErrGoalNotFound
	}
	delete(f.goals, id)
	return nil
}

func (f *fakeGoalStore) MarkGoalCompleted(ctx context.Context, id string, completedAt time.Time) error {
	g, ok := f.goals[id]
	if !ok || g.Completed {
		return goal.ErrGoalCompleted
	}
	g.Completed = true
	g.CompletedAt = &completedAt
	f.goals[id] = g
	return nil
}

func (f *fakeGoalStore) GetTotalSaving(ctx context.Context, userID string) (decimal.Decimal, error) {
	return f.totalSaving.Sub(f.totalDeducted), nil
}

func (f *fakeGoalStore) IncrementTotalDeducted(ctx context.Context, userID string, amount decimal.Decimal) error {
	f.totalDeducted = f.totalDeducted.Add(amount)
	return nil
}

type fakeGoalRepository struct {
	store *fakeGoalStore
}

func (f *fakeGoalRepository) NewClient(tx bool) (goalRepository.Client, error) {
	return goalRepository.Client{
		Goals:   f.store,
		Wallets: f.store,
		Commit: func() error {
			f.store.committed = true
			return nil
		},
		Rollback: func() error {
			if !f.store.committed {
				f.store.rolledBack = true
			}
			return nil
		},
	}, nil
}

type fakeWalletStore struct {
	store *fakeGoalStore
}

func (f *fakeWalletStore) CreateWallet(ctx context.Context, userID string) error {
	return nil
}

func (f *fakeWalletStore) GetTotalSaving(ctx context.Context, userID string) (decimal.Decimal, error) {
	return f.store.GetTotalSaving(ctx, userID)
}

type fakeWalletRepository struct {
	store *fakeGoalStore
}

func (f *fakeWalletRepository) NewClient(tx bool) (walletRepository.Client, error) {
	return walletRepository.Client{
		Wallets:  &fakeWalletStore{store: f.store},
		Commit:   func() error { return nil },
		Rollback: func() error { return nil },
	}, nil
}

func newTestGoalService(store *fakeGoalStore) IGoalService {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return NewGoalService(log, &fakeGoalRepository{store: store}, &fakeWalletRepository{store: store}, utils.New())
}

func newStore(saving int64) *fakeGoalStore {
	return &fakeGoalStore{
		goals:         make(map[string]entity.Goal),
		totalSaving:   decimal.NewFromInt(saving),
		totalDeducted: decimal.Zero,
	}
}

func TestCompleteGoal_FullyFundedSucceeds(t *testing.T) {
	store := newStore(500)
	store.goals["g1"] = entity.Goal{ID: "g1", UserID: "u1", Amount: decimal.NewFromInt(500)}
	svc := newTestGoalService(store)

	err := svc.CompleteGoal(context.Background(), "g1", "u1")
	require.NoError(t, err)

	completed := store.goals["g1"]
	assert.True(t, completed.Completed)
	require.NotNil(t, completed.CompletedAt)
	assert.True(t, store.committed)

	remaining, err := store.GetTotalSaving(context.Background(), "u1")
	require.NoError(t, err)
	assert.True(t, remaining.IsZero(), "saving drops to zero after deduction, got %s", remaining)
}

func TestCompleteGoal_UnderfundedRejected(t *testing.T) {
	store := newStore(300)
	store.goals["g1"] = entity.Goal{ID: "g1", UserID: "u1", Amount: decimal.NewFromInt(500)}
	svc := newTestGoalService(store)

	err := svc.CompleteGoal(context.Background(), "g1", "u1")
	require.Error(t, err)
	assert.ErrorIs(t, err, goal.ErrGoalNotFunded)

	assert.False(t, store.goals["g1"].Completed)
	assert.True(t, store.totalDeducted.IsZero(), "no deduction on rejection")
	assert.False(t, store.committed)
	assert.True(t, store.rolledBack)
}

func TestCompleteGoal_AlreadyCompleted(t *testing.T) {
	store := newStore(1000)
	now := time.Now()
	store.goals["g1"] = entity.Goal{
		ID: "g1", UserID: "u1", Amount: decimal.NewFromInt(100),
		Completed: true, CompletedAt: &now,
	}
	svc := newTestGoalService(store)

	err := svc.CompleteGoal(context.Background(), "g1", "u1")
	assert.ErrorIs(t, err, goal.ErrGoalCompleted)
	assert.True(t, store.totalDeducted.IsZero())
}

func TestCompleteGoal_WrongUserRejected(t *testing.T) {
	store := newStore(1000)
	store.goals["g1"] = entity.Goal{ID: "g1", UserID: "u1", Amount: decimal.NewFromInt(100)}
	svc := newTestGoalService(store)

	err := svc.CompleteGoal(context.Background(), "g1", "intruder")
	assert.ErrorIs(t, err, goal.ErrGoalNotOwned)
	assert.False(t, store.goals["g1"].Completed)
}

func TestUpdateGoal_CompletedGoalRejected(t *testing.T) {
	store := newStore(0)
	now := time.Now()
	store.goals["g1"] = entity.Goal{
		ID: "g1", UserID: "u1", Amount: decimal.NewFromInt(100),
		Completed: true, CompletedAt: &now,
	}
	svc := newTestGoalService(store)

	err := svc.UpdateGoal(context.Background(), goal.UpdateGoalRequest{
		ID: "g1", UserID: "u1", Title: "New title", Amount: 200,
	})
	assert.ErrorIs(t, err, goal.ErrGoalCompleted)
}

func TestGetGoalsByUserID_Progress(t *testing.T) {
	store := newStore(500)
	store.goals["g1"] = entity.Goal{ID: "g1", UserID: "u1", Title: "Bike", Amount: decimal.NewFromInt(1000)}
	svc := newTestGoalService(store)

	goals, err := svc.GetGoalsByUserID(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, goals, 1)
	assert.Equal(t, 0.5, goals[0].Progress)
}

func TestCreateGoal_InvalidAmount(t *testing.T) {
	svc := newTestGoalService(newStore(0))

	err := svc.CreateGoal(context.Background(), goal.CreateGoalRequest{
		UserID: "u1", Title: "Bad", Amount: -5,
	})
	assert.ErrorIs(t, err, goal.ErrInvalidAmount)
}
