// Package gamemode draws the screens that sit on top of the arena outside
// of normal play.
package gamemode
