package config

import "strings"

// Pet is one purchasable entry in the shop catalog.
type Pet struct {
	Name  string
	Price int64
	Emoji string
}

// PetCatalog is the shop stock, in display order.
var PetCatalog = []Pet{
	{Name: "dog", Price: 40000, Emoji: "🐶"},
	{Name: "cat", Price: 12000, Emoji: "🐱"},
	{Name: "hamster", Price: 1000000, Emoji: "🐹"},
	{Name: "rabbit", Price: 5000, Emoji: "🐰"},
	{Name: "parrot", Price: 8000, Emoji: "🦜"},
	{Name: "horse", Price: 25000, Emoji: "🐎"},
	{Name: "squirrel", Price: 7000, Emoji: "🐿️"},
	{Name: "goldfish", Price: 5000, Emoji: "🐠"},
	{Name: "eagle", Price: 50000, Emoji: "🦅"},
	{Name: "lion", Price: 80000, Emoji: "🦁"},
	{Name: "tiger", Price: 100000, Emoji: "🐯"},
}

// PetByName looks a pet up case-insensitively.
func PetByName(name string) (Pet, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, p := range PetCatalog {
		if p.Name == name {
			return p, true
		}
	}
	return Pet{}, false
}
