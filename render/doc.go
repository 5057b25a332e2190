// Package render draws Life grids to a terminal using ANSI escape
// sequences, with rate-limited frame pacing for animations.
package render
