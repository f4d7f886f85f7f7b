package domain

// Item is a static shop item definition.
type Item struct {
	Name   string `json:"name"`
	Price  int    `json:"price"`
	Effect string `json:"effect"` // heal, weapon, defense, magic
	Value  int    `json:"value"`
}

// Consumable reports whether using the item decrements its held count.
// Weapons and defense items are passive modifiers read from the inventory.
func (i Item) Consumable() bool {
	return i.Effect == EffectHeal || i.Effect == EffectMagic
}
