package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSymbolSet_Insert(t *testing.T) {
	set := make(SymbolSet)

	prev := set.Insert(SymbolRecord{Ref: "0001", LicenseName: "CC0"})
	assert.Nil(t, prev)
	assert.Len(t, set, 1)
}

func TestSymbolSet_Insert_LastWriteWins(t *testing.T) {
	set := make(SymbolSet)

	first := SymbolRecord{Ref: "0001", LicenseName: "CC0"}
	second := SymbolRecord{Ref: "0001", LicenseName: "CC BY-SA 4.0"}

	set.Insert(first)
	prev := set.Insert(second)

	// The displaced record is surfaced for conflict logging and the
	// later record wins.
	require.NotNil(t, prev)
	assert.Equal(t, first, *prev)
	assert.Equal(t, second, set["0001"])
}

func TestSymbolSet_Insert_IdenticalDuplicate(t *testing.T) {
	set := make(SymbolSet)

	rec := SymbolRecord{Ref: "0001", LicenseName: "CC0"}
	set.Insert(rec)
	prev := set.Insert(rec)

	// Identical re-insertion is not a conflict.
	assert.Nil(t, prev)
	assert.Len(t, set, 1)
}

func TestSymbolSet_Refs_Sorted(t *testing.T) {
	set := make(SymbolSet)
	for _, ref := range []string{"1701A", "0002", "0434", "0001"} {
		set.Insert(SymbolRecord{Ref: ref})
	}

	assert.Equal(t, []string{"0001", "0002", "0434", "1701A"}, set.Refs())
}

func TestSymbolSet_Refs_Empty(t *testing.T) {
	set := make(SymbolSet)
	assert.Empty(t, set.Refs())
}
