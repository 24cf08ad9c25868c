package parameter

// SlotColors are the fixed per-slot colors
var SlotColors = [MaxPlayers]string{
	"#FF5733",
	"#33FF57",
	"#3357FF",
	"#F3FF33",
	"#FF33F3",
	"#33FFF3",
}

// SlotKeys are the keys bound to each slot in the entry stage
var SlotKeys = [MaxPlayers]rune{'1', '2', '3', '4', '5', '6'}

// AvatarPalettes are the glyph sets shuffled across slots each round
var AvatarPalettes = [MaxPlayers][PaletteSize]string{
	{"😀", "😂", "😎", "😍", "🤔", "😡"},
	{"🐶", "🐱", "🐭", "🐹", "🐰", "🦊"},
	{"🍎", "🍌", "🍇", "🍉", "🍓", "🍑"},
	{"⛷️", "🏀", "🏈", "🚴‍♂️", "🎾", "🏐"},
	{"🚗", "🚕", "🚙", "🚌", "🚎", "🚑"},
	{"👻", "👽", "🤖", "💩", "💀", "🤡"},
}

// ProjectileGlyphs index by travel direction octant, counter-clockwise from +x in screen space
var ProjectileGlyphs = [8]rune{'→', '↘', '↓', '↙', '←', '↖', '↑', '↗'}
