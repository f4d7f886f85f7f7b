package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wrenbeck/WanderBot_Go/internal/domain"
	"github.com/wrenbeck/WanderBot_Go/internal/quest"
)

type mockQuestService struct {
	today    *quest.TodayQuest
	todayErr error
	claim    *quest.ClaimResult
	claimErr error
}

func (m *mockQuestService) Today(ctx context.Context, userID string) (*quest.TodayQuest, error) {
	return m.today, m.todayErr
}

func (m *mockQuestService) Claim(ctx context.Context, userID string) (*quest.ClaimResult, error) {
	return m.claim, m.claimErr
}

func TestQuestHandlers_Today(t *testing.T) {
	t.Run("returns quest with progress", func(t *testing.T) {
		svc := &mockQuestService{
			today: &quest.TodayQuest{
				Date:      "2025-06-01",
				Quest:     domain.QuestDefinition{Name: "Monster Hunter", Type: "monsters", Target: 5, Reward: 100},
				Progress:  3,
				Completed: false,
			},
		}
		h := NewQuestHandlers(svc)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/quest/today?user_id=user-1", nil)
		w := httptest.NewRecorder()
		h.HandleToday().ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"name":"Monster Hunter"`)
		assert.Contains(t, w.Body.String(), `"progress":3`)
	})

	t.Run("quests disabled maps to 403", func(t *testing.T) {
		h := NewQuestHandlers(&mockQuestService{todayErr: domain.ErrQuestsDisabled})

		req := httptest.NewRequest(http.MethodGet, "/api/v1/quest/today?user_id=user-1", nil)
		w := httptest.NewRecorder()
		h.HandleToday().ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestQuestHandlers_Claim(t *testing.T) {
	InitValidator()

	t.Run("pays out reward", func(t *testing.T) {
		svc := &mockQuestService{
			claim: &quest.ClaimResult{
				Quest:  domain.QuestDefinition{Name: "Miner", Type: "mine", Target: 15, Reward: 80},
				Reward: 80,
				Gold:   180,
			},
		}
		h := NewQuestHandlers(svc)

		w := postJSON(t, h.HandleClaim(), "/api/v1/quest/claim", ClaimRequest{UserID: "user-1"})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"reward":80`)
		assert.Contains(t, w.Body.String(), `"gold":180`)
	})

	t.Run("not completed maps to 400", func(t *testing.T) {
		h := NewQuestHandlers(&mockQuestService{claimErr: domain.ErrQuestNotCompleted})

		w := postJSON(t, h.HandleClaim(), "/api/v1/quest/claim", ClaimRequest{UserID: "user-1"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgQuestNotCompletedError)
	})

	t.Run("double claim maps to 400", func(t *testing.T) {
		h := NewQuestHandlers(&mockQuestService{claimErr: domain.ErrQuestAlreadyClaimed})

		w := postJSON(t, h.HandleClaim(), "/api/v1/quest/claim", ClaimRequest{UserID: "user-1"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgQuestAlreadyClaimedError)
	})
}
