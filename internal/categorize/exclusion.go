package categorize

import (
	"strings"

	"github.com/taxfolio/backend/internal/domain"
)

// exclusionRule tags a keyword family with its reason code. Families are
// evaluated in slice order and evaluation stops at the first match, so a
// description matching two families always takes the earlier reason
// ("TRANSFER HMRC ACCOUNT" is a transfer, not a tax payment).
type exclusionRule struct {
	reason   domain.ExclusionReason
	keywords []string
}

var exclusionRules = []exclusionRule{
	{domain.ExclusionReasonTransfer, []string{"transfer", "tfr", "standing order to savings"}},
	{domain.ExclusionReasonTaxPayment, []string{"hmrc", "tax"}},
	{domain.ExclusionReasonLoan, []string{"loan"}},
	{domain.ExclusionReasonCreditCard, []string{"credit card payment", "cc payment", "credit card pymt"}},
	{domain.ExclusionReasonCashWithdrawal, []string{"atm", "cash withdrawal"}},
}

// Exclusions evaluates whether a transaction is a cash movement that must
// never be treated as business income or expense.
type Exclusions struct{}

// NewExclusions returns the exclusion rules engine.
func NewExclusions() *Exclusions { return &Exclusions{} }

// Evaluate returns whether the transaction should be excluded and the reason
// code of the first matching family. A blank description never matches and
// never errors.
func (e *Exclusions) Evaluate(tx domain.ImportedTransaction) (bool, domain.ExclusionReason) {
	desc := domain.NormalizeDescription(tx.Description)
	if desc == "" {
		return false, ""
	}
	for _, rule := range exclusionRules {
		for _, kw := range rule.keywords {
			if containsKeyword(desc, kw) {
				return true, rule.reason
			}
		}
	}
	return false, ""
}

// containsKeyword matches a keyword against a normalized description.
// Multi-word keywords match as substrings. Single-word keywords match whole
// tokens, optionally with a hyphenated suffix ("tfr" matches "tfr-savings"),
// so that "tax" never fires on "taxi" and "loan" never fires on "sloane".
func containsKeyword(desc, kw string) bool {
	if strings.Contains(kw, " ") {
		return strings.Contains(desc, kw)
	}
	for _, tok := range strings.Fields(desc) {
		if tok == kw || strings.HasPrefix(tok, kw+"-") {
			return true
		}
	}
	return false
}
