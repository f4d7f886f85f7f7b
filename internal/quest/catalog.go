// Package quest implements the daily quest system: a fixed four-entry catalog,
// deterministic per-user per-day quest selection, and the claim flow.
package quest

import (
	"hash/fnv"

	"github.com/wrenbeck/WanderBot_Go/internal/domain"
)

// Catalog is the fixed daily quest catalog. Order matters: selection indexes
// into it by hash, so reordering entries reshuffles everyone's assignments.
var Catalog = []domain.QuestDefinition{
	{Name: "Monster Hunter", Description: "Defeat 5 monsters", Type: domain.ProgressMonsters, Target: 5, Reward: 100},
	{Name: "Explorer", Description: "Explore 10 times", Type: domain.ProgressExplore, Target: 10, Reward: 75},
	{Name: "Miner", Description: "Mine 15 times", Type: domain.ProgressMine, Target: 15, Reward: 80},
	{Name: "Gold Collector", Description: "Collect 300 gold", Type: domain.ProgressGold, Target: 300, Reward: 50},
}

// QuestFor picks the quest of the day for a user. The choice hashes
// userID and date together (FNV-1a) so it is stable for the whole day,
// differs across users, and never touches shared RNG state.
func QuestFor(userID, date string) domain.QuestDefinition {
	h := fnv.New32a()
	h.Write([]byte(userID))
	h.Write([]byte("|"))
	h.Write([]byte(date))
	return Catalog[int(h.Sum32())%len(Catalog)]
}
