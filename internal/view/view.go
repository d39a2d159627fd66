// Package view renders the logged-in account as plain text.
package view

import (
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"

	"github.com/bankist-dev/bankist/internal/audit"
	"github.com/bankist-dev/bankist/internal/ledger"
	"github.com/bankist-dev/bankist/internal/model"
)

// Options controls amount conversion and movement numbering.
type Options struct {
	Currency     string          // ISO 4217 display currency
	ExchangeRate decimal.Decimal // display units per ledger unit
	ShowRank     bool            // number rows by display position instead of insertion position
}

var (
	maxMinor = decimal.NewFromInt(math.MaxInt64)
	minMinor = decimal.NewFromInt(math.MinInt64)
)

// Renderer formats accounts for the shell.
type Renderer struct {
	code     string
	grapheme string
	fraction int32
	rate     decimal.Decimal
	showRank bool
}

// New returns a Renderer for opts. An unknown currency code falls back to
// INR, and a non-positive rate to 1.
func New(opts Options) *Renderer {
	cur := money.GetCurrency(opts.Currency)
	if cur == nil {
		cur = money.GetCurrency(money.INR)
	}
	rate := opts.ExchangeRate
	if !rate.IsPositive() {
		rate = decimal.NewFromInt(1)
	}
	return &Renderer{
		code:     cur.Code,
		grapheme: cur.Grapheme,
		fraction: int32(cur.Fraction),
		rate:     rate,
		showRank: opts.ShowRank,
	}
}

// Amount converts a ledger amount to the display currency and formats it.
// Amounts whose minor units do not fit in an int64 are printed in plain
// decimal notation without thousand separators.
func (r *Renderer) Amount(amount decimal.Decimal) string {
	minor := amount.Mul(r.rate).Shift(r.fraction).Round(0)
	if minor.GreaterThan(maxMinor) || minor.LessThan(minMinor) {
		major := minor.Shift(-r.fraction)
		sign := ""
		if major.IsNegative() {
			sign = "-"
		}
		return sign + r.grapheme + major.Abs().StringFixed(r.fraction)
	}
	return money.New(minor.IntPart(), r.code).Display()
}

// Welcome returns the greeting line.
func (r *Renderer) Welcome(acct model.Account, ok bool) string {
	if !ok {
		return "Log in to get started"
	}
	return "Welcome back, " + acct.FirstName()
}

// Row formats one movement line.
func (r *Renderer) Row(row ledger.Row) string {
	n := row.Number
	if r.showRank {
		n = row.Rank
	}
	label := fmt.Sprintf("%d %s", n, row.Type)
	return fmt.Sprintf("  %-16s %18s", label, r.Amount(row.Amount))
}

// Render writes the full account screen to w. When no account is logged in
// only the greeting is written.
func (r *Renderer) Render(w io.Writer, acct model.Account, ok, sorted bool) error {
	var b strings.Builder
	b.WriteString(r.Welcome(acct, ok))
	b.WriteString("\n")
	if ok {
		sum := ledger.Summarize(acct)
		fmt.Fprintf(&b, "\nCurrent balance  %s\n\n", r.Amount(sum.Balance))
		if len(acct.Movements) == 0 {
			b.WriteString("  no movements\n")
		}
		for row := range ledger.DisplayOrder(acct.Movements, sorted) {
			b.WriteString(r.Row(row))
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "\nIn %s  Out %s  Interest %s\n",
			r.Amount(sum.In), r.Amount(sum.Out), r.Amount(sum.Interest))
		if sorted {
			b.WriteString("(sorted by amount)\n")
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// Accounts writes one "username  owner" line per account.
func Accounts(w io.Writer, accts []model.Account) error {
	var b strings.Builder
	for _, a := range accts {
		fmt.Fprintf(&b, "%-6s %s\n", a.Username, a.Owner)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// AuditTrail writes one line per audit entry, oldest first.
func AuditTrail(w io.Writer, entries []audit.Entry) error {
	var b strings.Builder
	if len(entries) == 0 {
		b.WriteString("no audit entries\n")
	}
	for _, e := range entries {
		user := e.User
		if user == "" {
			user = "-"
		}
		fmt.Fprintf(&b, "%s  %-6s %-8s %-8s %s\n",
			e.Timestamp.Format(time.RFC3339), user, e.Operation, e.Outcome, e.Details)
	}
	_, err := io.WriteString(w, b.String())
	return err
}
