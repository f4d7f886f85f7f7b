package domain

// DateLayout is the canonical calendar-date encoding used for quest logs.
const DateLayout = "2006-01-02"

// Location names. These must match the keys of the location graph.
const (
	LocationTown   = "town"
	LocationForest = "forest"
	LocationCave   = "cave"
)

// Action names resolvable at locations.
const (
	ActionExplore = "explore"
	ActionHunt    = "hunt"
	ActionMine    = "mine"
	ActionShop    = "shop"
	ActionRest    = "rest"
	ActionGather  = "gather"
	ActionDig     = "dig"
)

// Quest progress keys. Quest targets and encounter outcomes meet on these.
const (
	ProgressMonsters = "monsters"
	ProgressExplore  = "explore"
	ProgressMine     = "mine"
	ProgressGold     = "gold"
)

// Item effect kinds.
const (
	EffectHeal    = "heal"
	EffectWeapon  = "weapon"
	EffectDefense = "defense"
	EffectMagic   = "magic"
)

// Canonical item names referenced by combat math.
const (
	ItemHealthPotion = "Health Potion"
	ItemSword        = "Sword"
	ItemShield       = "Shield"
	ItemMagicScroll  = "Magic Scroll"
)

// MaxHealth is the health cap for adventurers.
const MaxHealth = 100

// AdventureXPPerLevel is the flat per-level cost of the adventure track.
// Adventure level is always derived: xp/AdventureXPPerLevel + 1.
const AdventureXPPerLevel = 200
