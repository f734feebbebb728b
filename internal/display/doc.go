// Package display renders a single toast as a GTK4 window, positioned
// via Wayland layer-shell. It handles window creation, anchoring,
// generated styling, and the timer-driven fade-in/hold/fade-out timeline.
package display
