// Package game holds the static world content: the location graph, the item
// shop, boss rosters and the rare/legendary event tables. The content is fixed
// at compile time and validated on package init; nothing here is persisted.
package game

import (
	"fmt"

	"github.com/wrenbeck/WanderBot_Go/internal/domain"
)

// Location is one node of the world graph.
type Location struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Actions     []string `json:"actions"`
	Connections []string `json:"connections"`
	Monsters    []string `json:"monsters,omitempty"`
}

// Boss is a boss encounter definition tied to a location.
type Boss struct {
	Name   string `json:"name"`
	Health int    `json:"health"`
	Gold   int    `json:"gold"`
	XP     int    `json:"xp"`
}

// Locations is the world graph, keyed by location name.
var Locations = map[string]Location{
	domain.LocationTown: {
		Name:        domain.LocationTown,
		Description: "🏘️ You are in a peaceful town square.",
		Actions:     []string{domain.ActionExplore, domain.ActionShop, domain.ActionRest},
		Connections: []string{domain.LocationForest, domain.LocationCave},
	},
	domain.LocationForest: {
		Name:        domain.LocationForest,
		Description: "🌲 You are in a dark forest. Strange noises echo around you.",
		Actions:     []string{domain.ActionHunt, domain.ActionGather, domain.ActionExplore},
		Connections: []string{domain.LocationTown, domain.LocationCave},
		Monsters:    []string{"Goblin", "Wolf"},
	},
	domain.LocationCave: {
		Name:        domain.LocationCave,
		Description: "🕳️ You enter a mysterious cave. Treasures might be hidden here.",
		Actions:     []string{domain.ActionMine, domain.ActionExplore, domain.ActionDig},
		Connections: []string{domain.LocationTown, domain.LocationForest},
		Monsters:    []string{"Bat", "Spider", "Orc"},
	},
}

// Bosses maps location name to its boss, where one exists. Town has none:
// a boss-band roll in town falls through to the rare-event band.
var Bosses = map[string]Boss{
	domain.LocationForest: {Name: "Giant Wolf Alpha", Health: 80, Gold: 200, XP: 100},
	domain.LocationCave:   {Name: "Ancient Dragon", Health: 120, Gold: 500, XP: 200},
}

// IsLocation reports whether name is a node of the world graph.
func IsLocation(name string) bool {
	_, ok := Locations[name]
	return ok
}

// Adjacent reports whether to is directly connected to from.
func Adjacent(from, to string) bool {
	loc, ok := Locations[from]
	if !ok {
		return false
	}
	for _, c := range loc.Connections {
		if c == to {
			return true
		}
	}
	return false
}

// HasAction reports whether the action is offered at the location.
func HasAction(location, action string) bool {
	loc, ok := Locations[location]
	if !ok {
		return false
	}
	for _, a := range loc.Actions {
		if a == action {
			return true
		}
	}
	return false
}

func init() {
	// The graph must be closed: every connection and boss key is a node.
	for name, loc := range Locations {
		for _, c := range loc.Connections {
			if _, ok := Locations[c]; !ok {
				panic(fmt.Sprintf("game: location %q connects to unknown %q", name, c))
			}
		}
	}
	for name := range Bosses {
		if _, ok := Locations[name]; !ok {
			panic(fmt.Sprintf("game: boss defined for unknown location %q", name))
		}
	}
}
