// ABOUTME: Tag model for categorizing drills.
// ABOUTME: Splits comma-separated category text into sorted, deduplicated tags.

package models

import (
	"sort"
	"strings"
)

type TagCount struct {
	Name  string
	Count int
}

// SplitTags returns the trimmed, non-empty comma-separated pieces of text in
// their original order.
func SplitTags(text string) []string {
	var tags []string
	for _, t := range strings.Split(text, ",") {
		t = strings.TrimSpace(t)
		if t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// MergeTags splits every field and returns the sorted union of the pieces.
// Sorting is by byte order, so "Zone" sorts before "edges".
func MergeTags(fields ...string) []string {
	seen := make(map[string]struct{})
	tags := []string{}
	for _, field := range fields {
		for _, t := range SplitTags(field) {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			tags = append(tags, t)
		}
	}
	sort.Strings(tags)
	return tags
}

// Vocabulary returns the sorted union of every record's tags.
func Vocabulary(records []*Record) []string {
	counts := CountTags(records)
	vocab := make([]string, len(counts))
	for i, c := range counts {
		vocab[i] = c.Name
	}
	return vocab
}

// CountTags returns how many records carry each tag, ordered by tag name.
func CountTags(records []*Record) []TagCount {
	counts := make(map[string]int)
	for _, r := range records {
		for _, t := range r.Tags {
			counts[t]++
		}
	}

	result := make([]TagCount, 0, len(counts))
	for name, n := range counts {
		result = append(result, TagCount{Name: name, Count: n})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result
}
