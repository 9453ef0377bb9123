// ABOUTME: Tests for Record model constructor and methods.
// ABOUTME: Validates field trimming, tag derivation, and stable IDs.

package models

import (
	"reflect"
	"testing"
)

func TestNewRecord(t *testing.T) {
	r := NewRecord("  Breakout Drill ", " Skating, Passing ", "Edges", " http://a ")

	if r.Name != "Breakout Drill" {
		t.Errorf("expected trimmed name, got %q", r.Name)
	}
	if r.Link != "http://a" {
		t.Errorf("expected trimmed link, got %q", r.Link)
	}
	if r.Theme != "Skating, Passing" {
		t.Errorf("expected trimmed theme, got %q", r.Theme)
	}
	expected := []string{"Edges", "Passing", "Skating"}
	if !reflect.DeepEqual(r.Tags, expected) {
		t.Errorf("expected tags %v, got %v", expected, r.Tags)
	}
}

func TestRecordIDStable(t *testing.T) {
	a := NewRecord("Warmup", "Skating", "", "")
	b := NewRecord("Warmup", "Passing", "", "")

	if a.ID != b.ID {
		t.Error("expected same ID for same name and link")
	}

	c := NewRecord("Warmup", "Skating", "", "http://b")
	if a.ID == c.ID {
		t.Error("expected different ID for different link")
	}
}

func TestRecordHasTag(t *testing.T) {
	r := NewRecord("Breakout Drill", "Skating, Passing", "Edges", "")

	if !r.HasTag("Passing") {
		t.Error("expected record to have tag 'Passing'")
	}
	if r.HasTag("passing") {
		t.Error("expected tag lookup to be case-sensitive")
	}
	if r.HasTag("Shooting") {
		t.Error("did not expect tag 'Shooting'")
	}
}

func TestNewRecordReplacesInvalidUTF8(t *testing.T) {
	r := NewRecord("Bad\xffName", "Edge\xff, Edge\xfe", "", "")

	if r.Name != "Bad\uFFFDName" {
		t.Errorf("expected replacement character in name, got %q", r.Name)
	}
	expected := []string{"Edge\uFFFD"}
	if !reflect.DeepEqual(r.Tags, expected) {
		t.Errorf("expected tags %v, got %v", expected, r.Tags)
	}
	if r.ID != RecordID("Bad\uFFFDName", "") {
		t.Error("expected ID derived from the cleaned name")
	}
}
