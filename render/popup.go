// Copyright © 2026 The lovels authors

package render

// Behavior tells the host how a popup interacts with the pointer and the
// completion list.
type Behavior int

const (
	// HideOnMouseMove dismisses the popup when the pointer leaves it.
	// Used for hover popups.
	HideOnMouseMove Behavior = iota
	// CoexistWithCompletion keeps the popup open next to an open
	// completion list. Used for signature and deep-link popups.
	CoexistWithCompletion
)

// Popup is rendered content handed back to the host editor.
type Popup struct {
	Key      string
	Content  string
	Anchor   int
	Behavior Behavior
}
