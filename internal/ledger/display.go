package ledger

import (
	"iter"
	"slices"

	"github.com/shopspring/decimal"
)

// Movement types as shown in the movement list.
const (
	TypeDeposit    = "deposit"
	TypeWithdrawal = "withdrawal"
)

// Row is one line of the movement list.
type Row struct {
	Number int // 1-based insertion position, stable under sorting
	Rank   int // 1-based position in the displayed order
	Type   string
	Amount decimal.Decimal
}

// MovementType classifies amount. Zero counts as a withdrawal.
func MovementType(amount decimal.Decimal) string {
	if amount.IsPositive() {
		return TypeDeposit
	}
	return TypeWithdrawal
}

// DisplayOrder yields the movement list, ascending by amount when sorted.
// Each iteration recomputes the order from movements.
func DisplayOrder(movements []decimal.Decimal, sorted bool) iter.Seq[Row] {
	return func(yield func(Row) bool) {
		order := make([]int, len(movements))
		for i := range order {
			order[i] = i
		}
		if sorted {
			slices.SortStableFunc(order, func(a, b int) int {
				return movements[a].Cmp(movements[b])
			})
		}
		for rank, idx := range order {
			row := Row{
				Number: idx + 1,
				Rank:   rank + 1,
				Type:   MovementType(movements[idx]),
				Amount: movements[idx],
			}
			if !yield(row) {
				return
			}
		}
	}
}
