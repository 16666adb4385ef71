package tui

import "github.com/Veraticus/lifedash/internal/model"

// classifiedMsg carries the classifier's answer for one submitted line.
type classifiedMsg struct {
	intent model.Intent
}
