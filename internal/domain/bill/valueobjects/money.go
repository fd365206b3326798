package valueobjects

import "fmt"

// Money is an amount in minor currency units (paise, cents). Amounts are
// stored as int64 to avoid floating-point drift in balance arithmetic.
type Money struct {
	amountCents int64
	currency    string
}

const DefaultCurrency = "INR"

func NewMoney(amountCents int64, currency string) Money {
	if currency == "" {
		currency = DefaultCurrency
	}
	return Money{
		amountCents: amountCents,
		currency:    currency,
	}
}

func (m Money) AmountCents() int64 {
	return m.amountCents
}

func (m Money) Currency() string {
	return m.currency
}

func (m Money) IsPositive() bool {
	return m.amountCents > 0
}

func (m Money) IsZero() bool {
	return m.amountCents == 0
}

// Add returns m + other. Currencies must match.
func (m Money) Add(other Money) (Money, error) {
	if m.currency != other.currency {
		return Money{}, fmt.Errorf("currency mismatch: %s vs %s", m.currency, other.currency)
	}
	return Money{amountCents: m.amountCents + other.amountCents, currency: m.currency}, nil
}

// Sub returns m - other. Currencies must match.
func (m Money) Sub(other Money) (Money, error) {
	if m.currency != other.currency {
		return Money{}, fmt.Errorf("currency mismatch: %s vs %s", m.currency, other.currency)
	}
	return Money{amountCents: m.amountCents - other.amountCents, currency: m.currency}, nil
}

// Percentage returns the given whole-number percentage of m, truncated
// toward zero.
func (m Money) Percentage(pct int) Money {
	return Money{amountCents: m.amountCents * int64(pct) / 100, currency: m.currency}
}

func (m Money) LessThan(other Money) bool {
	return m.amountCents < other.amountCents
}

func (m Money) GreaterThan(other Money) bool {
	return m.amountCents > other.amountCents
}

func (m Money) String() string {
	return fmt.Sprintf("%d.%02d %s", m.amountCents/100, m.amountCents%100, m.currency)
}
