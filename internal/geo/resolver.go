// Package geo matches a fixed city list against free text.
package geo

import (
	"sort"
	"strings"

	"lee/pkg/trfold"
)

// Resolver finds city names inside arbitrary utterances. Matching is
// case-insensitive and diacritic-folded, and longer names are tried
// first so a name that contains another name always wins.
type Resolver struct {
	names  []string
	folded []string
}

func NewResolver() *Resolver {
	r := &Resolver{
		names: append([]string(nil), Cities...),
	}
	sort.SliceStable(r.names, func(i, j int) bool {
		return len(trfold.Fold(r.names[i])) > len(trfold.Fold(r.names[j]))
	})
	r.folded = make([]string, len(r.names))
	for i, name := range r.names {
		r.folded[i] = trfold.Fold(name)
	}
	return r
}

// Find returns the first city whose name occurs anywhere in text.
func (r *Resolver) Find(text string) (string, bool) {
	folded := trfold.Fold(text)
	for i, name := range r.folded {
		if strings.Contains(folded, name) {
			return r.names[i], true
		}
	}
	return "", false
}
