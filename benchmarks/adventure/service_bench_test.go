package adventure_bench

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/wrenbeck/WanderBot_Go/internal/adventure"
	"github.com/wrenbeck/WanderBot_Go/internal/concurrency"
	"github.com/wrenbeck/WanderBot_Go/internal/config"
	"github.com/wrenbeck/WanderBot_Go/internal/domain"
	"github.com/wrenbeck/WanderBot_Go/internal/levels"
)

// --- Stubs (zero-overhead fakes so the benchmark measures game logic, not IO) ---

type StubRepository struct{}

func (s *StubRepository) LoadState(ctx context.Context, userID string) (*domain.AdventureState, error) {
	// Fresh record per call to simulate a db fetch and keep mutations isolated
	return domain.NewAdventureState(userID), nil
}

func (s *StubRepository) SaveState(ctx context.Context, state *domain.AdventureState) error {
	return nil
}

func (s *StubRepository) LoadQuestLog(ctx context.Context, userID, today string) (*domain.QuestLog, error) {
	return &domain.QuestLog{UserID: userID, Date: today, Progress: map[string]int{}}, nil
}

func (s *StubRepository) SaveQuestLog(ctx context.Context, log *domain.QuestLog) error {
	return nil
}

func (s *StubRepository) SaveTurn(ctx context.Context, state *domain.AdventureState, log *domain.QuestLog) error {
	return nil
}

func (s *StubRepository) TopByGold(ctx context.Context, limit int) ([]domain.AdventureState, error) {
	return nil, nil
}

func (s *StubRepository) TopByLevel(ctx context.Context, limit int) ([]domain.AdventureState, error) {
	return nil, nil
}

func (s *StubRepository) TopByMonsters(ctx context.Context, limit int) ([]domain.AdventureState, error) {
	return nil, nil
}

func (s *StubRepository) DeleteStaleQuestLogs(ctx context.Context, before string) (int64, error) {
	return 0, nil
}

type StubSettingsRepo struct{}

func (s *StubSettingsRepo) Get(ctx context.Context, key string) (string, bool, error) {
	return "", false, nil
}

func (s *StubSettingsRepo) Set(ctx context.Context, key, value string) error { return nil }

func (s *StubSettingsRepo) All(ctx context.Context) (map[string]string, error) {
	return map[string]string{}, nil
}

func newBenchService() adventure.Service {
	settings := config.NewSettingsStore(&StubSettingsRepo{})
	return adventure.NewService(&StubRepository{}, settings, concurrency.NewLockManager())
}

func BenchmarkPerformAction(b *testing.B) {
	svc := newBenchService()
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := svc.PerformAction(ctx, "bench-user", "explore"); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkPerformActionParallel(b *testing.B) {
	svc := newBenchService()
	ctx := context.Background()

	var seq int64
	b.RunParallel(func(pb *testing.PB) {
		// Distinct users so the per-user turn locks don't serialize the benchmark
		userID := fmt.Sprintf("bench-user-%d", atomic.AddInt64(&seq, 1))
		for pb.Next() {
			if _, err := svc.PerformAction(ctx, userID, "explore"); err != nil {
				b.Fatal(err)
			}
		}
	})
}

func BenchmarkLevelForXP(b *testing.B) {
	curve := levels.DefaultCurve

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		curve.LevelFor(i % 1000000)
	}
}
