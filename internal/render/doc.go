// Package render draws the arena with neon effects.
package render
