// Package member implements the leadership roster shown on the About
// tab. Headshots are stored full-size plus a generated thumbnail so the
// roster grid loads fast.
package member
