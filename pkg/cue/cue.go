// Package cue defines the identifiers used to request audio callouts.
package cue

import (
	"errors"
	"fmt"
	"strings"
)

// ID names a sound cue as "category/label", e.g. "alt/100" or "alert/orbit".
type ID string

// Categories.
const (
	CategoryAlert  = "alert"
	CategoryAlt    = "alt"
	CategoryGForce = "gforce"
)

// Well-known cues raised by the watcher.
const (
	Welcome ID = "alert/welcomeback"
	Escape  ID = "alert/escape"
	Orbit   ID = "alert/orbit"
	Dock    ID = "alert/dock"
	Splash  ID = "alert/splash"
	Touch   ID = "alert/touch"
	Brake   ID = "alert/brake"
	Gear    ID = "alert/gear"

	RadioAlt ID = "alt/radioalt"
)

// ErrInvalid is returned by Parse for malformed identifiers.
var ErrInvalid = errors.New("invalid cue id")

// New joins a category and label into an ID.
func New(category, label string) ID {
	return ID(category + "/" + label)
}

// Parse validates s and returns it as an ID.
func Parse(s string) (ID, error) {
	category, label, ok := strings.Cut(s, "/")
	if !ok || category == "" || label == "" || strings.Contains(label, "/") {
		return "", fmt.Errorf("%w: %q", ErrInvalid, s)
	}
	if !validPart(category) || !validPart(label) {
		return "", fmt.Errorf("%w: %q", ErrInvalid, s)
	}
	return ID(s), nil
}

func validPart(s string) bool {
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_', r == '-':
		default:
			return false
		}
	}
	return true
}

// Category returns the part before the slash.
func (id ID) Category() string {
	c, _, _ := strings.Cut(string(id), "/")
	return c
}

// Label returns the part after the slash.
func (id ID) Label() string {
	_, l, _ := strings.Cut(string(id), "/")
	return l
}

func (id ID) String() string { return string(id) }
