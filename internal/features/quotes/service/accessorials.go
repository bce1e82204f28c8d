package service

import (
	"strings"

	"quote-engine/internal/core/logger"
	ratesdomain "quote-engine/internal/features/rates/domain"
	ratesports "quote-engine/internal/features/rates/ports"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// GuaranteeCharge is the breakdown key for the guarantee accessorial.
const GuaranteeCharge = "Guarantee"

// AccessorialSelection is the fixed part of a set of selected accessorials.
type AccessorialSelection struct {
	// Charges maps catalog display names to fixed amounts.
	Charges    map[string]decimal.Decimal
	FixedTotal decimal.Decimal
	// Guarantee is true when a guarantee accessorial was selected.
	Guarantee bool
}

// Composition is the accessorial outcome of a quote.
type Composition struct {
	Charges          map[string]decimal.Decimal
	AccessorialTotal decimal.Decimal
	Guarantee        decimal.Decimal
	QuoteTotal       decimal.Decimal
}

// AccessorialComposer turns selected accessorial names into charges.
// Fixed charges feed the base pricers; the guarantee is a percentage of the
// priced subtotal excluding those fixed charges.
type AccessorialComposer struct {
	defaultGuaranteePct decimal.Decimal
	log                 *zap.Logger
}

// NewAccessorialComposer creates a composer that falls back to
// defaultGuaranteePct when the catalog has no guarantee percentage.
func NewAccessorialComposer(defaultGuaranteePct decimal.Decimal) *AccessorialComposer {
	return &AccessorialComposer{
		defaultGuaranteePct: defaultGuaranteePct,
		log:                 logger.Named("quotes.accessorials"),
	}
}

func isGuarantee(name string) bool {
	return strings.Contains(strings.ToLower(name), "guarantee")
}

// Select partitions names into fixed charges and the guarantee flag.
// Unknown names are ignored and each accessorial is charged at most once.
func (c *AccessorialComposer) Select(rates ratesports.RateCatalog, names []string) AccessorialSelection {
	sel := AccessorialSelection{
		Charges:    make(map[string]decimal.Decimal),
		FixedTotal: decimal.Zero,
	}

	names = lo.Uniq(lo.FilterMap(names, func(n string, _ int) (string, bool) {
		n = strings.ToLower(strings.TrimSpace(n))
		return n, n != ""
	}))

	for _, name := range names {
		if isGuarantee(name) {
			sel.Guarantee = true
			continue
		}
		acc, ok := rates.Accessorial(name)
		if !ok {
			c.log.Debug("Ignoring unknown accessorial", zap.String("name", name))
			continue
		}
		if acc.IsPercentage {
			c.log.Debug("Ignoring percentage accessorial", zap.String("name", acc.Name))
			continue
		}
		sel.Charges[acc.Name] = acc.Amount
		sel.FixedTotal = sel.FixedTotal.Add(acc.Amount)
	}

	return sel
}

// GuaranteePct returns the catalog's guarantee percentage as a fraction.
// A guarantee row with a zero or negative amount is a placeholder and the
// default percentage applies.
func (c *AccessorialComposer) GuaranteePct(rates ratesports.RateCatalog) decimal.Decimal {
	acc, ok := lo.Find(rates.Accessorials(), func(a ratesdomain.Accessorial) bool {
		return a.IsPercentage && isGuarantee(a.Name) && a.Amount.IsPositive()
	})
	if !ok {
		return c.defaultGuaranteePct
	}
	return acc.Fraction()
}

// Compose applies the guarantee, when selected, to a priced quoteTotal that
// already includes the fixed charges of sel.
func (c *AccessorialComposer) Compose(rates ratesports.RateCatalog, sel AccessorialSelection, quoteTotal decimal.Decimal) Composition {
	out := Composition{
		Charges:          make(map[string]decimal.Decimal, len(sel.Charges)+1),
		AccessorialTotal: sel.FixedTotal,
		Guarantee:        decimal.Zero,
		QuoteTotal:       quoteTotal,
	}
	for k, v := range sel.Charges {
		out.Charges[k] = v
	}
	if !sel.Guarantee {
		return out
	}

	out.Guarantee = quoteTotal.Sub(sel.FixedTotal).Mul(c.GuaranteePct(rates))
	out.Charges[GuaranteeCharge] = out.Guarantee
	out.AccessorialTotal = out.AccessorialTotal.Add(out.Guarantee)
	out.QuoteTotal = quoteTotal.Add(out.Guarantee)
	return out
}
