// ABOUTME: Tests for the drill filter state machine.
// ABOUTME: Covers match rules, transitions, and the summary strings.

package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/harper/drillbook/internal/models"
)

func sample() []*models.Record {
	return []*models.Record{
		models.NewRecord("Breakout Drill", "Skating, Passing", "Edges", "http://a"),
		models.NewRecord("Warmup", "Skating", "", ""),
		models.NewRecord("Two Line Shooting", "Shooting", "Net Front", ""),
	}
}

func names(records []*models.Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Name
	}
	return out
}

func TestZeroStateMatchesAll(t *testing.T) {
	records := sample()

	var s State
	assert.True(t, s.IsEmpty())
	assert.Equal(t, names(records), names(s.Apply(records)))
}

func TestSearchByName(t *testing.T) {
	got := New("warm").Apply(sample())
	assert.Equal(t, []string{"Warmup"}, names(got))
}

func TestSearchByTag(t *testing.T) {
	got := New("NET").Apply(sample())
	assert.Equal(t, []string{"Two Line Shooting"}, names(got))
}

func TestSearchNoMatch(t *testing.T) {
	got := New("goalie").Apply(sample())
	assert.Empty(t, got)
	assert.NotNil(t, got)
}

func TestTagsIntersect(t *testing.T) {
	records := sample()

	assert.Equal(t, []string{"Breakout Drill"}, names(New("", "Skating", "Passing").Apply(records)))
	assert.Equal(t, []string{"Breakout Drill", "Warmup"}, names(New("", "Skating").Apply(records)))
	assert.Empty(t, New("", "Skating", "Shooting").Apply(records))
}

func TestTagsAreExactMatch(t *testing.T) {
	assert.Empty(t, New("", "skating").Apply(sample()))
}

func TestAxesCombineWithAnd(t *testing.T) {
	records := sample()

	assert.Equal(t, []string{"Warmup"}, names(New("warm", "Skating").Apply(records)))
	assert.Empty(t, New("warm", "Passing").Apply(records))
}

func TestAxesCommute(t *testing.T) {
	records := sample()
	tagsOnly := New("", "Skating")
	searchOnly := New("drill")

	a := searchOnly.Apply(tagsOnly.Apply(records))
	b := tagsOnly.Apply(searchOnly.Apply(records))

	assert.Equal(t, names(a), names(b))
	assert.Equal(t, names(New("drill", "Skating").Apply(records)), names(a))
}

func TestToggleTagInvolution(t *testing.T) {
	s := New("x", "Skating")

	toggled := s.ToggleTag("Passing")
	assert.Equal(t, []string{"Skating", "Passing"}, toggled.ActiveTags())

	back := toggled.ToggleTag("Passing")
	assert.Equal(t, s.ActiveTags(), back.ActiveTags())
	assert.Equal(t, "x", back.Search())
}

func TestTransitionsDoNotMutate(t *testing.T) {
	s := New("", "Skating", "Passing")

	_ = s.ToggleTag("Skating")
	_ = s.ToggleTag("Edges")
	_ = s.SetSearch("warm")
	_ = s.Clear()

	assert.Equal(t, []string{"Skating", "Passing"}, s.ActiveTags())
	assert.Equal(t, "", s.Search())
}

func TestActiveTagsReturnsCopy(t *testing.T) {
	s := New("", "Skating")
	tags := s.ActiveTags()
	tags[0] = "Changed"

	assert.True(t, s.IsActive("Skating"))
}

func TestClear(t *testing.T) {
	s := New("warm", "Skating").Clear()

	assert.True(t, s.IsEmpty())
	assert.Equal(t, "No filters active", s.Summary())
}

func TestNewIgnoresDuplicateTags(t *testing.T) {
	s := New("", "Skating", "Skating")
	assert.Equal(t, []string{"Skating"}, s.ActiveTags())
}

func TestSummary(t *testing.T) {
	assert.Equal(t, "No filters active", State{}.Summary())
	assert.Equal(t, "1 filter active: Skating", New("", "Skating").Summary())
	assert.Equal(t, "2 filters active: Skating, Passing", New("", "Skating", "Passing").Summary())
}

func TestCountLabel(t *testing.T) {
	assert.Equal(t, "Showing 0 drills", CountLabel(0))
	assert.Equal(t, "Showing 1 drill", CountLabel(1))
	assert.Equal(t, "Showing 12 drills", CountLabel(12))
}
