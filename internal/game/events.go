package game

// LegendaryReward is a flat-reward legendary event entry.
type LegendaryReward struct {
	Text   string
	Gold   int
	Health int
	XP     int
}

// LegendaryRewards is the legendary event table, selected uniformly.
var LegendaryRewards = []LegendaryReward{
	{Text: "🌟 You discovered an ANCIENT TREASURE CHEST! Legendary find!", Gold: 800, Health: 50, XP: 200},
	{Text: "👑 You found the Crown of Kings! A truly legendary artifact!", Gold: 1000, Health: 0, XP: 300},
	{Text: "🗡️ You uncovered Excalibur! The legendary sword grants you power!", Gold: 500, Health: 100, XP: 250},
}

// Range is an inclusive integer draw range.
type Range struct {
	Lo, Hi int
}

// Fixed builds a degenerate range that always yields v.
func Fixed(v int) Range {
	return Range{Lo: v, Hi: v}
}

// RareEvent is a rare event entry with bounded random rewards.
type RareEvent struct {
	Text   string
	Gold   Range
	Health Range
	XP     int
}

// RareEvents is the rare event table, selected uniformly.
var RareEvents = []RareEvent{
	{Text: "💎 You found a rare gemstone! Sparkling treasure!", Gold: Range{150, 300}, Health: Fixed(0), XP: 50},
	{Text: "🧙‍♂️ A mysterious wizard grants you a boon!", Gold: Range{100, 200}, Health: Range{20, 40}, XP: 75},
	{Text: "📜 You discovered an ancient map to hidden treasure!", Gold: Range{200, 400}, Health: Fixed(0), XP: 60},
	{Text: "🍀 A lucky clover boosts your fortune!", Gold: Range{175, 350}, Health: Range{15, 30}, XP: 80},
}

// ExploreOutcome is one entry of the explore outcome table.
type ExploreOutcome struct {
	Text   string
	Gold   int
	Health int // signed delta
}

// ExploreOutcomes is the normal explore table, selected uniformly.
var ExploreOutcomes = []ExploreOutcome{
	{Text: "🔍 You found a hidden treasure! +50 gold", Gold: 50},
	{Text: "🕷️ You encountered a spider but escaped! -10 health", Health: -10},
	{Text: "💎 You discovered a valuable gem! +30 gold", Gold: 30},
	{Text: "🍄 You found some berries and feel refreshed! +20 health", Health: 20},
	{Text: "❌ You found nothing interesting."},
	{Text: "🗝️ You found an old key! +25 gold", Gold: 25},
}

// Hunt tuning.
const (
	HuntSuccessChance  = 0.7
	HuntXP             = 25
	SwordGoldBonus     = 10
	ShieldDefenseBonus = 5
)

// HuntGold and HuntHealthLoss are the hunt draw ranges.
var (
	HuntGold       = Range{25, 60}
	HuntHealthLoss = Range{5, 20}
)

// Mine tuning.
const MineXP = 15

// MineGold is the mining gold draw range.
var MineGold = Range{15, 50}

// Boss combat tuning.
const (
	BossPowerPerLevel  = 10
	BossPowerPerSword  = 15
	BossPowerPerShield = 5
	BossChanceOffset   = 50
	BossChanceFloor    = 20
	BossChanceCeiling  = 90
)

// BossHealthLoss is the health loss range on a lost boss fight.
var BossHealthLoss = Range{30, 50}

// BaseActionXP is granted by any resolved action that no event overrides.
const BaseActionXP = 10
