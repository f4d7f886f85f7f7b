package quest

import (
	"context"
	"fmt"
	"time"

	"github.com/wrenbeck/WanderBot_Go/internal/concurrency"
	"github.com/wrenbeck/WanderBot_Go/internal/config"
	"github.com/wrenbeck/WanderBot_Go/internal/domain"
	"github.com/wrenbeck/WanderBot_Go/internal/logger"
	"github.com/wrenbeck/WanderBot_Go/internal/repository"
)

// TodayQuest is the status card for a user's quest of the day.
type TodayQuest struct {
	Date      string                 `json:"date"`
	Quest     domain.QuestDefinition `json:"quest"`
	Progress  int                    `json:"progress"`
	Completed bool                   `json:"completed"`
	Claimed   bool                   `json:"claimed"`
}

// ClaimResult reports a successful reward claim.
type ClaimResult struct {
	Quest  domain.QuestDefinition `json:"quest"`
	Reward int                    `json:"reward"`
	Gold   int                    `json:"gold"` // balance after the claim
}

type Service interface {
	// Today returns the user's quest of the day with current progress.
	Today(ctx context.Context, userID string) (*TodayQuest, error)

	// Claim pays out the daily quest reward. Fails with
	// domain.ErrQuestNotCompleted or domain.ErrQuestAlreadyClaimed.
	Claim(ctx context.Context, userID string) (*ClaimResult, error)
}

type service struct {
	repo     repository.Adventure
	settings *config.SettingsStore
	locks    *concurrency.LockManager
	now      func() time.Time
}

func NewService(repo repository.Adventure, settings *config.SettingsStore, locks *concurrency.LockManager) Service {
	return &service{
		repo:     repo,
		settings: settings,
		locks:    locks,
		now:      time.Now,
	}
}

func (s *service) today() string {
	return s.now().UTC().Format(domain.DateLayout)
}

func (s *service) Today(ctx context.Context, userID string) (*TodayQuest, error) {
	if !s.settings.Current().DailyQuestsEnabled {
		return nil, domain.ErrQuestsDisabled
	}

	today := s.today()
	q := QuestFor(userID, today)

	log, err := s.repo.LoadQuestLog(ctx, userID, today)
	if err != nil {
		return nil, fmt.Errorf("failed to load quest log: %w", err)
	}

	progress := log.Progress[q.Type]
	return &TodayQuest{
		Date:      today,
		Quest:     q,
		Progress:  progress,
		Completed: progress >= q.Target,
		Claimed:   log.Claimed[q.Name],
	}, nil
}

func (s *service) Claim(ctx context.Context, userID string) (*ClaimResult, error) {
	if !s.settings.Current().DailyQuestsEnabled {
		return nil, domain.ErrQuestsDisabled
	}

	// Same lock as the adventure engine: a claim and an action for the
	// same user never interleave.
	mu := s.locks.GetLock(userID)
	mu.Lock()
	defer mu.Unlock()

	today := s.today()
	q := QuestFor(userID, today)

	log, err := s.repo.LoadQuestLog(ctx, userID, today)
	if err != nil {
		return nil, fmt.Errorf("failed to load quest log: %w", err)
	}

	if log.Claimed[q.Name] {
		return nil, fmt.Errorf("%w: %s", domain.ErrQuestAlreadyClaimed, q.Name)
	}
	if log.Progress[q.Type] < q.Target {
		return nil, fmt.Errorf("%w: %d/%d", domain.ErrQuestNotCompleted, log.Progress[q.Type], q.Target)
	}

	state, err := s.repo.LoadState(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load adventure state: %w", err)
	}

	state.Gold += q.Reward
	log.Claimed[q.Name] = true

	// Reward and claim marker must land together: a paid-but-unclaimed row
	// would pay again on retry.
	if err := s.repo.SaveTurn(ctx, state, log); err != nil {
		return nil, fmt.Errorf("failed to save quest claim: %w", err)
	}

	logger.FromContext(ctx).Info("Quest reward claimed",
		"user_id", userID, "quest", q.Name, "reward", q.Reward)

	return &ClaimResult{Quest: q, Reward: q.Reward, Gold: state.Gold}, nil
}
