// ABOUTME: Record model representing one drill row with derived tags.
// ABOUTME: Provides the constructor that normalizes fields and derives the tag set.

package models

import (
	"slices"
	"strings"

	"github.com/google/uuid"
)

// recordNamespace scopes the name-based record IDs.
var recordNamespace = uuid.MustParse("6f1c2a4e-93d8-4b57-9a0e-0c7f3e2d5b18")

// Record is one drill. Tags is derived from Theme and SubCategory at
// construction and is not modified afterwards.
type Record struct {
	ID          uuid.UUID `json:"id" yaml:"id"`
	Name        string    `json:"name" yaml:"name"`
	Link        string    `json:"link" yaml:"link"`
	Tags        []string  `json:"tags" yaml:"tags"`
	Theme       string    `json:"theme" yaml:"theme"`
	SubCategory string    `json:"sub_category" yaml:"sub_category"`
}

func NewRecord(name, theme, subCategory, link string) *Record {
	name = cleanField(name)
	theme = cleanField(theme)
	subCategory = cleanField(subCategory)
	link = cleanField(link)

	return &Record{
		ID:          RecordID(name, link),
		Name:        name,
		Link:        link,
		Tags:        MergeTags(theme, subCategory),
		Theme:       theme,
		SubCategory: subCategory,
	}
}

// cleanField replaces invalid UTF-8 (e.g. cp1252 bytes from a spreadsheet
// export) with U+FFFD and trims surrounding space. The page payload is JSON,
// which cannot carry invalid bytes.
func cleanField(s string) string {
	return strings.TrimSpace(strings.ToValidUTF8(s, "\uFFFD"))
}

// RecordID returns a stable identifier for a drill, so links to a record in
// a generated page survive regeneration.
func RecordID(name, link string) uuid.UUID {
	return uuid.NewSHA1(recordNamespace, []byte(name+"\x00"+link))
}

// HasTag reports whether the record carries tag exactly.
func (r *Record) HasTag(tag string) bool {
	_, found := slices.BinarySearch(r.Tags, tag)
	return found
}
