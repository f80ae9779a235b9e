package tui

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type action string

const (
	actionQuit         action = "quit"
	actionStart        action = "start"
	actionHistory      action = "history"
	actionCloseHistory action = "close-history"
	actionClearHistory action = "clear-history"
	actionAdvance      action = "advance"
	actionBack         action = "back"
	actionHome         action = "home"
	actionReset        action = "reset"
	actionNextField    action = "next-field"
	actionPrevField    action = "prev-field"
	actionUp           action = "up"
	actionDown         action = "down"
	actionLeft         action = "left"
	actionRight        action = "right"
	actionSelect       action = "select"
	actionConfirm      action = "confirm"
	actionDismiss      action = "dismiss"
)

const (
	scopeLanding  = "landing"
	scopeHistory  = "history"
	scopeService  = "step:service"
	scopeSchedule = "step:schedule"
	scopeDetails  = "step:details"
	scopeConfirm  = "confirm"
	scopeBooking  = "booking"
)

type keyBinding struct {
	Keys        []string
	Action      action
	Description string
	Scopes      []string
}

// keyRegistry resolves key presses to actions per scope. scopeBooking matches
// every step scope.
type keyRegistry struct {
	bindings []keyBinding
}

func newKeyRegistry(bindings []keyBinding) *keyRegistry {
	return &keyRegistry{bindings: slices.Clone(bindings)}
}

func defaultKeyBindings() []keyBinding {
	return []keyBinding{
		{Keys: []string{"q"}, Action: actionQuit, Description: "quit", Scopes: []string{scopeLanding, scopeHistory}},
		{Keys: []string{"enter", "b"}, Action: actionStart, Description: "book now", Scopes: []string{scopeLanding}},
		{Keys: []string{"h"}, Action: actionHistory, Description: "history", Scopes: []string{scopeLanding}},
		{Keys: []string{"esc", "h"}, Action: actionCloseHistory, Description: "back", Scopes: []string{scopeHistory}},
		{Keys: []string{"x"}, Action: actionClearHistory, Description: "clear", Scopes: []string{scopeHistory}},

		{Keys: []string{"j", "down"}, Action: actionDown, Description: "", Scopes: []string{scopeService}},
		{Keys: []string{"k", "up"}, Action: actionUp, Description: "", Scopes: []string{scopeService}},
		{Keys: []string{"down"}, Action: actionDown, Description: "", Scopes: []string{scopeSchedule, scopeDetails}},
		{Keys: []string{"up"}, Action: actionUp, Description: "", Scopes: []string{scopeSchedule, scopeDetails}},
		{Keys: []string{"left"}, Action: actionLeft, Description: "", Scopes: []string{scopeDetails}},
		{Keys: []string{"right"}, Action: actionRight, Description: "", Scopes: []string{scopeDetails}},
		{Keys: []string{"enter"}, Action: actionSelect, Description: "select", Scopes: []string{scopeBooking}},
		{Keys: []string{"tab"}, Action: actionNextField, Description: "next field", Scopes: []string{scopeSchedule, scopeDetails}},
		{Keys: []string{"shift+tab"}, Action: actionPrevField, Description: "", Scopes: []string{scopeSchedule, scopeDetails}},
		{Keys: []string{"ctrl+n"}, Action: actionAdvance, Description: "next", Scopes: []string{scopeBooking}},
		{Keys: []string{"esc"}, Action: actionBack, Description: "back", Scopes: []string{scopeBooking}},
		{Keys: []string{"ctrl+g"}, Action: actionHome, Description: "home", Scopes: []string{scopeBooking, scopeConfirm}},
		{Keys: []string{"ctrl+r"}, Action: actionReset, Description: "reset", Scopes: []string{scopeBooking, scopeConfirm}},

		{Keys: []string{"enter"}, Action: actionConfirm, Description: "confirm booking", Scopes: []string{scopeConfirm}},
		{Keys: []string{"esc"}, Action: actionDismiss, Description: "edit", Scopes: []string{scopeConfirm}},
	}
}

// Lookup returns the action bound to msg in scope.
func (r *keyRegistry) Lookup(msg tea.KeyMsg, scope string) (action, bool) {
	pressed := normalizeKey(msg.String())
	for _, b := range r.bindings {
		if !scopeMatch(scope, b.Scopes) {
			continue
		}
		for _, k := range b.Keys {
			if normalizeKey(k) == pressed {
				return b.Action, true
			}
		}
	}
	return "", false
}

// BindingsForScope lists the bindings that have help text in scope.
func (r *keyRegistry) BindingsForScope(scope string) []keyBinding {
	out := make([]keyBinding, 0, len(r.bindings))
	for _, b := range r.bindings {
		if b.Description != "" && scopeMatch(scope, b.Scopes) {
			out = append(out, b)
		}
	}
	return out
}

func normalizeKey(k string) string {
	return strings.ToLower(strings.TrimSpace(k))
}

func scopeMatch(scope string, scopes []string) bool {
	for _, s := range scopes {
		if s == scope || (s == scopeBooking && strings.HasPrefix(scope, "step:")) {
			return true
		}
	}
	return false
}
