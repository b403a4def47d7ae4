// Package dedup detects duplicates between newly parsed transactions and a
// business's already-recorded transactions, using exact comparison first and
// Levenshtein similarity for fuzzy matches.
package dedup

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/texttheater/golang-levenshtein/levenshtein"

	"github.com/taxfolio/backend/internal/domain"
)

// LikelyMatchThreshold is the normalized Levenshtein similarity at or above
// which a same-date same-amount pair is treated as a likely duplicate.
// Fixed constant, not configuration.
const LikelyMatchThreshold = 0.80

// Source identifies where an existing record lives.
type Source string

const (
	SourceIncome          Source = "INCOME"
	SourceExpense         Source = "EXPENSE"
	SourceBankTransaction Source = "BANK_TRANSACTION"
)

// ExistingRecord is a snapshot row of an already-recorded transaction. The
// snapshot is taken once at the start of detection; imports for one business
// are serialized by the caller, so the snapshot cannot race a committed
// import.
type ExistingRecord struct {
	ID          string
	Source      Source
	Date        time.Time
	Amount      decimal.Decimal
	Description string
}

// MatchKind classifies a candidate against the existing records.
type MatchKind string

const (
	// MatchNew means no existing record shares the date and amount.
	MatchNew MatchKind = "NEW"
	// MatchExact means date, amount and normalized description all equal.
	MatchExact MatchKind = "EXACT"
	// MatchLikely means date and amount equal and description similarity is
	// at or above LikelyMatchThreshold.
	MatchLikely MatchKind = "LIKELY"
	// MatchSimilar means date and amount equal but the descriptions differ
	// below the threshold. Still "has a match" for review purposes.
	MatchSimilar MatchKind = "SIMILAR"
)

// Match is the outcome of classifying one candidate.
type Match struct {
	Kind       MatchKind
	Existing   *ExistingRecord
	Similarity float64
}

// CandidateMatch pairs a candidate with its non-new match for review.
type CandidateMatch struct {
	Candidate domain.ImportedTransaction
	Match     Match
}

// Partition is the disjoint split of an import batch.
type Partition struct {
	// New transactions pass straight through the pipeline.
	New []domain.ImportedTransaction
	// Exact duplicates are auto-skipped.
	Exact []CandidateMatch
	// Flagged (likely or similar) matches are surfaced to the user as an
	// explicit choice: import as new, skip, or update the existing record.
	Flagged []CandidateMatch
}

// Detector classifies candidates against existing records. O(n×m) with an
// early exit on exact matches; descriptions are normalized once per record,
// never per comparison.
type Detector struct{}

// NewDetector returns a duplicate detector.
func NewDetector() *Detector { return &Detector{} }

type normalizedExisting struct {
	record   ExistingRecord
	normDesc string
}

func normalizeExisting(existing []ExistingRecord) []normalizedExisting {
	out := make([]normalizedExisting, len(existing))
	for i, rec := range existing {
		out[i] = normalizedExisting{
			record:   rec,
			normDesc: domain.NormalizeDescription(rec.Description),
		}
	}
	return out
}

// Classify matches one candidate against the existing records. An exact
// match returns immediately; otherwise the best (highest-similarity)
// date+amount match decides between Likely and Similar.
func (d *Detector) Classify(candidate domain.ImportedTransaction, existing []ExistingRecord) Match {
	return classify(candidate, normalizeExisting(existing))
}

func classify(candidate domain.ImportedTransaction, existing []normalizedExisting) Match {
	candDesc := domain.NormalizeDescription(candidate.Description)
	candDate := domain.DateOnly(candidate.Date)

	best := Match{Kind: MatchNew}
	for i := range existing {
		rec := &existing[i]
		if !candDate.Equal(domain.DateOnly(rec.record.Date)) || !candidate.Amount.Equal(rec.record.Amount) {
			continue
		}
		if candDesc == rec.normDesc {
			return Match{Kind: MatchExact, Existing: &rec.record, Similarity: 1.0}
		}
		sim := similarity(candDesc, rec.normDesc)
		if best.Kind == MatchNew || sim > best.Similarity {
			kind := MatchSimilar
			if sim >= LikelyMatchThreshold {
				kind = MatchLikely
			}
			best = Match{Kind: kind, Existing: &rec.record, Similarity: sim}
		}
	}
	return best
}

// Matches classifies every candidate, returning one Match per candidate in
// the candidates' file order. Callers that must preserve file order across
// match kinds iterate this instead of Partition.
func (d *Detector) Matches(candidates []domain.ImportedTransaction, existing []ExistingRecord) []Match {
	normalized := normalizeExisting(existing)
	out := make([]Match, len(candidates))
	for i, candidate := range candidates {
		out[i] = classify(candidate, normalized)
	}
	return out
}

// Partition splits candidates into new, exact-duplicate and flagged sets.
// Order within each set follows the candidates' file order.
func (d *Detector) Partition(candidates []domain.ImportedTransaction, existing []ExistingRecord) Partition {
	var part Partition
	for i, match := range d.Matches(candidates, existing) {
		candidate := candidates[i]
		switch match.Kind {
		case MatchNew:
			part.New = append(part.New, candidate)
		case MatchExact:
			part.Exact = append(part.Exact, CandidateMatch{Candidate: candidate, Match: match})
		default:
			part.Flagged = append(part.Flagged, CandidateMatch{Candidate: candidate, Match: match})
		}
	}
	return part
}

// similarity is 1 − distance/max(len). Rune-based so multi-byte characters
// count as single edits. Unit-cost edits throughout: DefaultOptionsWithSub
// charges substitutions 1, unlike DefaultOptions which charges them 2 and
// would halve the score of substituted characters.
func similarity(a, b string) float64 {
	if a == b {
		return 1.0
	}
	ra, rb := []rune(a), []rune(b)
	maxLen := len(ra)
	if len(rb) > maxLen {
		maxLen = len(rb)
	}
	if maxLen == 0 {
		return 1.0
	}
	dist := levenshtein.DistanceForStrings(ra, rb, levenshtein.DefaultOptionsWithSub)
	return 1.0 - float64(dist)/float64(maxLen)
}
