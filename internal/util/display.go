package util

import "github.com/mattn/go-runewidth"

// GetDisplayWidth calculates the actual display width of a string, accounting
// for wide runes.
func GetDisplayWidth(text string) int {
	return runewidth.StringWidth(text)
}
