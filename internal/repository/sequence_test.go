package repository

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// The allocator's safety rests on being one statement: no read-modify-write
// window, concurrent allocations serialize on the counter row.
func TestAllocateNextQueryShape(t *testing.T) {
	t.Parallel()
	q := strings.ToLower(allocateNextQuery)

	require.Equal(t, 1, strings.Count(q, ";")+1, "must be a single statement")
	require.Contains(t, q, "on conflict (code_category, code_maincategory)")
	require.Contains(t, q, "do update set next_number = category_sequences.next_number + 1")
	require.Contains(t, q, "returning next_number")
	// a fresh pair starts its numbering at 1
	require.Contains(t, q, "values ($1, $2, 1)")
}
