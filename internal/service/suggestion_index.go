package service

import (
	"sort"
	"unicode/utf8"

	"doctor-directory/internal/domain/entity"
	"doctor-directory/pkg/textmatch"

	"github.com/tchap/go-patricia/v2/patricia"
)

const (
	// MinSuggestQueryLength is the shortest query, in characters, that yields suggestions.
	MinSuggestQueryLength = 2
	// MaxSuggestions caps the suggestion list.
	MaxSuggestions = 3
)

// SuggestionIndex answers case-insensitive substring queries on doctor names.
// Every suffix of every folded name is a trie key, so a substring query is a
// prefix walk. Items are the ascending positions of the doctors sharing a key.
type SuggestionIndex struct {
	doctors []entity.Doctor
	trie    *patricia.Trie
}

// NewSuggestionIndex indexes doctors. It does not retain a reference to the
// caller's slice.
func NewSuggestionIndex(doctors []entity.Doctor) *SuggestionIndex {
	idx := &SuggestionIndex{
		doctors: append([]entity.Doctor(nil), doctors...),
		trie:    patricia.NewTrie(),
	}

	for i, d := range idx.doctors {
		folded := textmatch.Fold(d.Name)
		for offset := range folded {
			key := patricia.Prefix(folded[offset:])
			if item := idx.trie.Get(key); item != nil {
				positions := item.([]int)
				if positions[len(positions)-1] != i {
					idx.trie.Set(key, append(positions, i))
				}
				continue
			}
			idx.trie.Insert(key, []int{i})
		}
	}

	return idx
}

// Suggest returns up to MaxSuggestions doctors whose name contains query,
// in listing order. Queries shorter than MinSuggestQueryLength return nil.
func (idx *SuggestionIndex) Suggest(query string) []entity.Doctor {
	if utf8.RuneCountInString(query) < MinSuggestQueryLength {
		return nil
	}

	folded := textmatch.Fold(query)
	matched := make(map[int]struct{})
	_ = idx.trie.VisitSubtree(patricia.Prefix(folded), func(_ patricia.Prefix, item patricia.Item) error {
		for _, pos := range item.([]int) {
			matched[pos] = struct{}{}
		}
		return nil
	})

	positions := make([]int, 0, len(matched))
	for pos := range matched {
		positions = append(positions, pos)
	}
	sort.Ints(positions)
	if len(positions) > MaxSuggestions {
		positions = positions[:MaxSuggestions]
	}

	suggestions := make([]entity.Doctor, len(positions))
	for i, pos := range positions {
		suggestions[i] = idx.doctors[pos]
	}
	return suggestions
}

// Len is the number of indexed doctors.
func (idx *SuggestionIndex) Len() int {
	return len(idx.doctors)
}
