// Package tui is the interactive movie search interface.
package tui

type state int

const (
	searchState state = iota + 1
	detailsState
	errorState
)
