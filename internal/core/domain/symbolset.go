package domain

import "sort"

// SymbolSet maps reference ids to their symbol records.
// It is built by folding incoming records through Insert.
type SymbolSet map[string]SymbolRecord

// Insert adds rec to the set. On collision with a differing existing
// record, the later record wins and the displaced record is returned so
// the caller can log the conflict. Returns nil when there was no
// conflicting prior record.
func (s SymbolSet) Insert(rec SymbolRecord) *SymbolRecord {
	prev, ok := s[rec.Ref]
	s[rec.Ref] = rec
	if ok && !prev.Equal(rec) {
		return &prev
	}
	return nil
}

// Refs returns all reference ids in lexicographic order.
// This is the processing order for the batch pipeline.
func (s SymbolSet) Refs() []string {
	refs := make([]string, 0, len(s))
	for ref := range s {
		refs = append(refs, ref)
	}
	sort.Strings(refs)
	return refs
}
