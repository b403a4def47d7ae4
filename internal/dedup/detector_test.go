package dedup

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taxfolio/backend/internal/domain"
)

var testDay = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

func candidate(t *testing.T, amount, description string) domain.ImportedTransaction {
	t.Helper()
	tx, err := domain.NewImportedTransaction(testDay, decimal.RequireFromString(amount), description, nil, "")
	require.NoError(t, err)
	return tx
}

func existingOn(date time.Time, amount, description string) ExistingRecord {
	return ExistingRecord{
		ID:          "existing-1",
		Source:      SourceExpense,
		Date:        date,
		Amount:      decimal.RequireFromString(amount),
		Description: description,
	}
}

func TestClassifyExact(t *testing.T) {
	d := NewDetector()

	existing := []ExistingRecord{existingOn(testDay, "-10.00", "TESCO STORES 1234")}

	// Case and whitespace differences still count as exact.
	m := d.Classify(candidate(t, "-10.00", "  tesco   stores 1234 "), existing)
	assert.Equal(t, MatchExact, m.Kind)
	require.NotNil(t, m.Existing)
	assert.Equal(t, "existing-1", m.Existing.ID)
	assert.Equal(t, 1.0, m.Similarity)
}

func TestClassifyNew(t *testing.T) {
	d := NewDetector()
	existing := []ExistingRecord{existingOn(testDay, "-10.00", "TESCO STORES 1234")}

	// Different amount.
	assert.Equal(t, MatchNew, d.Classify(candidate(t, "-10.01", "TESCO STORES 1234"), existing).Kind)
	// Different date.
	other := existingOn(testDay.AddDate(0, 0, 1), "-10.00", "TESCO STORES 1234")
	assert.Equal(t, MatchNew, d.Classify(candidate(t, "-10.00", "TESCO STORES 1234"), []ExistingRecord{other}).Kind)
	// Empty pool.
	assert.Equal(t, MatchNew, d.Classify(candidate(t, "-10.00", "TESCO STORES 1234"), nil).Kind)
}

// Ten-character descriptions differing by exactly two edits sit exactly on
// the 80% boundary, which classifies as Likely (inclusive threshold).
func TestClassifySimilarityBoundary(t *testing.T) {
	d := NewDetector()

	atBoundary := d.Classify(
		candidate(t, "-10.00", "payment 89"),
		[]ExistingRecord{existingOn(testDay, "-10.00", "payment 67")})
	assert.Equal(t, MatchLikely, atBoundary.Kind)
	assert.InDelta(t, 0.80, atBoundary.Similarity, 1e-9)

	belowBoundary := d.Classify(
		candidate(t, "-10.00", "payment 789"),
		[]ExistingRecord{existingOn(testDay, "-10.00", "payment 456")})
	assert.Equal(t, MatchSimilar, belowBoundary.Kind)
	assert.Less(t, belowBoundary.Similarity, 0.80)
}

// A substituted character is one edit, not an insert-plus-delete pair:
// "abcd" vs "abed" is one edit out of four.
func TestSimilarityUnitCostSubstitution(t *testing.T) {
	assert.InDelta(t, 0.75, similarity("abcd", "abed"), 1e-9)
}

func TestClassifyPicksBestMatch(t *testing.T) {
	d := NewDetector()
	existing := []ExistingRecord{
		{ID: "far", Source: SourceExpense, Date: testDay, Amount: decimal.RequireFromString("-10.00"), Description: "completely different text"},
		{ID: "close", Source: SourceExpense, Date: testDay, Amount: decimal.RequireFromString("-10.00"), Description: "TESCO STORES 1239"},
	}

	m := d.Classify(candidate(t, "-10.00", "TESCO STORES 1234"), existing)
	assert.Equal(t, MatchLikely, m.Kind)
	require.NotNil(t, m.Existing)
	assert.Equal(t, "close", m.Existing.ID)
}

func TestPartitionIsDisjointAndOrdered(t *testing.T) {
	d := NewDetector()

	existing := []ExistingRecord{
		existingOn(testDay, "-10.00", "TESCO STORES 1234"),
		existingOn(testDay, "-20.00", "COFFEE SHOP AB"),
	}
	candidates := []domain.ImportedTransaction{
		candidate(t, "-10.00", "TESCO STORES 1234"), // exact
		candidate(t, "-99.00", "BRAND NEW THING"),   // new
		candidate(t, "-20.00", "COFFEE SHOP XY"),    // likely (flagged)
	}

	part := d.Partition(candidates, existing)
	require.Len(t, part.New, 1)
	require.Len(t, part.Exact, 1)
	require.Len(t, part.Flagged, 1)

	assert.Equal(t, "BRAND NEW THING", part.New[0].Description)
	assert.Equal(t, MatchExact, part.Exact[0].Match.Kind)
	assert.Equal(t, MatchLikely, part.Flagged[0].Match.Kind)
	assert.Equal(t, len(candidates), len(part.New)+len(part.Exact)+len(part.Flagged))
}

// 100 candidates against 50 existing records must stay far inside the
// interactive latency budget.
func TestPartitionLatency(t *testing.T) {
	d := NewDetector()

	existing := make([]ExistingRecord, 50)
	for i := range existing {
		existing[i] = existingOn(testDay, "-10.00", fmt.Sprintf("EXISTING MERCHANT DESCRIPTION %03d", i))
	}
	candidates := make([]domain.ImportedTransaction, 100)
	for i := range candidates {
		candidates[i] = candidate(t, "-10.00", fmt.Sprintf("CANDIDATE MERCHANT DESCRIPTION %03d", i))
	}

	start := time.Now()
	d.Partition(candidates, existing)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func BenchmarkPartition100x50(b *testing.B) {
	d := NewDetector()
	existing := make([]ExistingRecord, 50)
	for i := range existing {
		existing[i] = existingOn(testDay, "-10.00", fmt.Sprintf("EXISTING MERCHANT DESCRIPTION %03d", i))
	}
	candidates := make([]domain.ImportedTransaction, 100)
	for i := range candidates {
		tx, _ := domain.NewImportedTransaction(testDay, decimal.RequireFromString("-10.00"), fmt.Sprintf("CANDIDATE MERCHANT DESCRIPTION %03d", i), nil, "")
		candidates[i] = tx
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d.Partition(candidates, existing)
	}
}
