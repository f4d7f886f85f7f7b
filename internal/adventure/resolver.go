package adventure

import (
	"fmt"

	"github.com/wrenbeck/WanderBot_Go/internal/config"
	"github.com/wrenbeck/WanderBot_Go/internal/domain"
	"github.com/wrenbeck/WanderBot_Go/internal/game"
	"github.com/wrenbeck/WanderBot_Go/internal/utils"
)

// Encounter bands, in roll order.
const (
	BandLegendary = "legendary"
	BandBoss      = "boss"
	BandRare      = "rare"
	BandNormal    = "normal"
)

// Outcome is the resolved result of one action turn. Deltas are computed
// against the state as it was before the turn.
type Outcome struct {
	Band          string         `json:"band"`
	Text          string         `json:"text"`
	GoldDelta     int            `json:"gold_delta"`
	HealthDelta   int            `json:"health_delta"`
	XPGained      int            `json:"xp_gained"`
	MonstersDelta int            `json:"monsters_delta"`
	QuestUpdates  map[string]int `json:"-"`
	LeveledUp     bool           `json:"leveled_up"`
	NewLevel      int            `json:"new_level"`

	// Shop marks the turn as a shop screen: nothing changed and nothing
	// should be persisted.
	Shop bool `json:"shop,omitempty"`
}

// resolver runs the tiered encounter roll and mutates the adventure state.
// All randomness goes through the injected draw funcs so tests can pin rolls.
type resolver struct {
	randInt   func(lo, hi int) int
	randFloat func() float64
}

func newResolver() *resolver {
	return &resolver{
		randInt:   utils.RandomInt,
		randFloat: utils.RandomFloat,
	}
}

func (r *resolver) pick(n int) int {
	return r.randInt(0, n-1)
}

// Resolve rolls one uniform 1..100 die against the cumulative bands
// legendary → boss → rare and falls through to the normal action handler.
// A boss-band roll at a bossless location falls through to the rare band.
func (r *resolver) Resolve(state *domain.AdventureState, action string, gs config.GameSettings) *Outcome {
	out := &Outcome{Band: BandNormal, QuestUpdates: map[string]int{}}

	levelBefore := state.Level()
	goldBefore := state.Gold
	healthBefore := state.Health
	xpBefore := state.AdventureXP
	monstersBefore := state.MonstersDefeated

	xpGained := game.BaseActionXP

	roll := r.randInt(1, 100)
	legendaryMax := gs.LegendaryEventChance
	bossMax := legendaryMax + gs.BossEncounterChance
	rareMax := bossMax + gs.RareEventChance

	boss, hasBoss := game.Bosses[state.Location]

	switch {
	case roll <= legendaryMax:
		out.Band = BandLegendary
		ev := game.LegendaryRewards[r.pick(len(game.LegendaryRewards))]
		state.Gold += ev.Gold
		state.Health += ev.Health
		state.ClampHealth()
		xpGained = ev.XP
		out.Text = ev.Text
		out.QuestUpdates[domain.ProgressGold] = ev.Gold

	case roll <= bossMax && hasBoss:
		out.Band = BandBoss
		r.resolveBossFight(state, boss, out)

	case roll <= rareMax:
		out.Band = BandRare
		ev := game.RareEvents[r.pick(len(game.RareEvents))]
		goldReward := r.randInt(ev.Gold.Lo, ev.Gold.Hi)
		healthReward := r.randInt(ev.Health.Lo, ev.Health.Hi)
		state.Gold += goldReward
		state.Health += healthReward
		state.ClampHealth()
		xpGained = ev.XP
		out.Text = "✨ RARE EVENT! " + ev.Text
		out.QuestUpdates[domain.ProgressGold] = goldReward

	default:
		if done := r.resolveNormal(state, action, out); done {
			return out
		}
	}

	state.AdventureXP += xpGained

	out.GoldDelta = state.Gold - goldBefore
	out.HealthDelta = state.Health - healthBefore
	out.MonstersDelta = state.MonstersDefeated - monstersBefore
	out.XPGained = state.AdventureXP - xpBefore

	out.NewLevel = state.Level()
	if out.NewLevel > levelBefore {
		out.LeveledUp = true
		out.Text += fmt.Sprintf("\n🎉 Adventure Level Up! You are now level %d!", out.NewLevel)
	}

	return out
}

func (r *resolver) resolveBossFight(state *domain.AdventureState, boss game.Boss, out *Outcome) {
	power := state.Level()*game.BossPowerPerLevel +
		state.Held(domain.ItemSword)*game.BossPowerPerSword +
		state.Held(domain.ItemShield)*game.BossPowerPerShield
	successChance := utils.Clamp(power-boss.Health+game.BossChanceOffset,
		game.BossChanceFloor, game.BossChanceCeiling)

	if r.randInt(1, 100) <= successChance {
		state.Gold += boss.Gold
		state.AdventureXP += boss.XP
		state.MonstersDefeated++
		out.Text = fmt.Sprintf("⚔️ BOSS BATTLE! You defeated the %s! +%d gold, +%d adventure XP!",
			boss.Name, boss.Gold, boss.XP)
		out.QuestUpdates[domain.ProgressMonsters] = 1
		out.QuestUpdates[domain.ProgressGold] = boss.Gold
		return
	}

	healthLoss := r.randInt(game.BossHealthLoss.Lo, game.BossHealthLoss.Hi)
	// A lost boss fight never kills: health floors at 1.
	state.Health -= healthLoss
	if state.Health < 1 {
		state.Health = 1
	}
	out.Text = fmt.Sprintf("💀 BOSS BATTLE! The %s overpowered you! -%d health. Train more and try again!",
		boss.Name, healthLoss)
}

// resolveNormal handles the per-action outcome when no event band fired.
// Returns true when the turn ends immediately (shop screen).
func (r *resolver) resolveNormal(state *domain.AdventureState, action string, out *Outcome) bool {
	loc := game.Locations[state.Location]

	switch {
	case action == domain.ActionExplore:
		out.QuestUpdates[domain.ProgressExplore] = 1
		o := game.ExploreOutcomes[r.pick(len(game.ExploreOutcomes))]
		out.Text = o.Text
		state.Gold += o.Gold
		state.Health += o.Health
		state.ClampHealth()
		if o.Gold > 0 {
			out.QuestUpdates[domain.ProgressGold] = o.Gold
		}

	case action == domain.ActionHunt && state.Location == domain.LocationForest:
		out.QuestUpdates[domain.ProgressExplore] = 1
		if r.randFloat() < game.HuntSuccessChance {
			monster := loc.Monsters[r.pick(len(loc.Monsters))]
			goldReward := r.randInt(game.HuntGold.Lo, game.HuntGold.Hi) +
				state.Held(domain.ItemSword)*game.SwordGoldBonus
			healthLoss := r.randInt(game.HuntHealthLoss.Lo, game.HuntHealthLoss.Hi) -
				state.Held(domain.ItemShield)*game.ShieldDefenseBonus
			if healthLoss < 1 {
				healthLoss = 1
			}
			state.Gold += goldReward
			state.Health -= healthLoss
			state.ClampHealth()
			state.MonstersDefeated++
			state.AdventureXP += game.HuntXP
			out.Text = fmt.Sprintf("⚔️ You defeated a %s! +%d gold, -%d health, +%d adventure XP",
				monster, goldReward, healthLoss, game.HuntXP)
			out.QuestUpdates[domain.ProgressMonsters] = 1
			out.QuestUpdates[domain.ProgressGold] = goldReward
		} else {
			out.Text = "🏃 You couldn't find any monsters to hunt."
		}

	case action == domain.ActionShop && state.Location == domain.LocationTown:
		out.Shop = true
		out.Text = "🏪 Welcome to the town shop!"
		return true

	case action == domain.ActionRest && state.Location == domain.LocationTown:
		state.Health = domain.MaxHealth
		out.Text = "😴 You rest at the inn and restore full health!"

	case action == domain.ActionMine && state.Location == domain.LocationCave:
		out.QuestUpdates[domain.ProgressMine] = 1
		out.QuestUpdates[domain.ProgressExplore] = 1
		goldFound := r.randInt(game.MineGold.Lo, game.MineGold.Hi)
		state.Gold += goldFound
		state.AdventureXP += game.MineXP
		out.Text = fmt.Sprintf("⛏️ You mined some precious ore! +%d gold, +%d adventure XP",
			goldFound, game.MineXP)
		out.QuestUpdates[domain.ProgressGold] = goldFound

	default:
		// Listed at the location but has no dedicated handler (gather, dig).
		out.Text = fmt.Sprintf("🤷 You %s but nothing notable happens.", action)
	}

	return false
}
