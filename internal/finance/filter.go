package finance

import (
	"strings"

	"moneyflow/internal/domain"
)

// FilterOptions restricts a transaction listing. Zero-valued fields are
// ignored; supplied criteria combine with logical AND.
type FilterOptions struct {
	Kind     string       // Restrict to income or expense
	DateFrom *domain.Date // Inclusive lower date bound
	DateTo   *domain.Date // Inclusive upper date bound
	Query    string       // Case-insensitive substring match on name or note
}

// FilterTransactions returns the subset of txs matching every supplied
// criterion, preserving input order. Transactions without a date are excluded
// whenever a date bound is set.
func FilterTransactions(txs []domain.Transaction, opts FilterOptions) []domain.Transaction {
	query := strings.ToLower(strings.TrimSpace(opts.Query))
	result := []domain.Transaction{}
	for _, t := range txs {
		if opts.Kind != "" && t.Kind != opts.Kind {
			continue
		}
		if opts.DateFrom != nil || opts.DateTo != nil {
			if t.Date.IsZero() {
				continue // No well-formed date to range-check against
			}
			if opts.DateFrom != nil && t.Date.Before(opts.DateFrom.Time) {
				continue
			}
			if opts.DateTo != nil && t.Date.After(opts.DateTo.Time) {
				continue
			}
		}
		if query != "" {
			name := strings.ToLower(t.Name)
			note := ""
			if t.Note != nil {
				note = strings.ToLower(*t.Note)
			}
			if !strings.Contains(name, query) && !strings.Contains(note, query) {
				continue
			}
		}
		result = append(result, t)
	}
	return result
}
