package game

import "github.com/wrenbeck/WanderBot_Go/internal/domain"

// Items is the shop inventory, keyed by item name.
var Items = map[string]domain.Item{
	domain.ItemHealthPotion: {Name: domain.ItemHealthPotion, Price: 20, Effect: domain.EffectHeal, Value: 50},
	domain.ItemSword:        {Name: domain.ItemSword, Price: 100, Effect: domain.EffectWeapon, Value: 15},
	domain.ItemShield:       {Name: domain.ItemShield, Price: 80, Effect: domain.EffectDefense, Value: 10},
	domain.ItemMagicScroll:  {Name: domain.ItemMagicScroll, Price: 150, Effect: domain.EffectMagic, Value: 25},
}

// Item looks up a shop item by name.
func Item(name string) (domain.Item, bool) {
	item, ok := Items[name]
	return item, ok
}
