// ABOUTME: Search and tag filter state shared by the terminal and the generated page.
// ABOUTME: State values are immutable; every transition returns a new State.

// Package filter implements the drill filtering rules. The script embedded in
// the generated page follows the same rules, so `drillbook list` shows what a
// browser would show for the same search term and tag selection.
//
// Two axes combine with AND: a case-insensitive substring search over the
// record name and tags, and a set of active tags that a record must all carry.
package filter

import (
	"fmt"
	"slices"
	"strings"

	"github.com/harper/drillbook/internal/models"
)

// State is the filter state of one browsing session. The zero value matches
// every record.
type State struct {
	search string
	active []string
}

// New returns a State with the given search term and tags toggled on in order.
func New(search string, tags ...string) State {
	s := State{}.SetSearch(search)
	for _, t := range tags {
		if !s.IsActive(t) {
			s = s.ToggleTag(t)
		}
	}
	return s
}

func (s State) Search() string {
	return s.search
}

// ActiveTags returns the selected tags in the order they were selected.
func (s State) ActiveTags() []string {
	return slices.Clone(s.active)
}

func (s State) IsActive(tag string) bool {
	return slices.Contains(s.active, tag)
}

func (s State) SetSearch(term string) State {
	return State{search: term, active: s.active}
}

// ToggleTag selects tag when it is not active and deselects it otherwise.
func (s State) ToggleTag(tag string) State {
	if i := slices.Index(s.active, tag); i >= 0 {
		return State{search: s.search, active: slices.Delete(slices.Clone(s.active), i, i+1)}
	}
	active := make([]string, len(s.active), len(s.active)+1)
	copy(active, s.active)
	return State{search: s.search, active: append(active, tag)}
}

// Clear resets both the search term and the tag selection.
func (s State) Clear() State {
	return State{}
}

func (s State) IsEmpty() bool {
	return s.search == "" && len(s.active) == 0
}

// MatchesSearch reports whether the record name or one of its tags contains
// the search term, ignoring case.
func (s State) MatchesSearch(r *models.Record) bool {
	if s.search == "" {
		return true
	}
	term := strings.ToLower(s.search)
	if strings.Contains(strings.ToLower(r.Name), term) {
		return true
	}
	for _, t := range r.Tags {
		if strings.Contains(strings.ToLower(t), term) {
			return true
		}
	}
	return false
}

// MatchesTags reports whether the record carries every active tag.
func (s State) MatchesTags(r *models.Record) bool {
	for _, t := range s.active {
		if !slices.Contains(r.Tags, t) {
			return false
		}
	}
	return true
}

func (s State) Matches(r *models.Record) bool {
	return s.MatchesSearch(r) && s.MatchesTags(r)
}

// Apply returns the matching records in input order.
func (s State) Apply(records []*models.Record) []*models.Record {
	out := []*models.Record{}
	for _, r := range records {
		if s.Matches(r) {
			out = append(out, r)
		}
	}
	return out
}

// Summary describes the active tags, e.g. "2 filters active: Skating, Passing".
func (s State) Summary() string {
	n := len(s.active)
	if n == 0 {
		return "No filters active"
	}
	return fmt.Sprintf("%d %s active: %s", n, plural(n, "filter"), strings.Join(s.active, ", "))
}

// CountLabel is the result line shown above the listing.
func CountLabel(n int) string {
	return fmt.Sprintf("Showing %d %s", n, plural(n, "drill"))
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
