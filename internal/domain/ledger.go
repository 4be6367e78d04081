package domain

import "time"

// ReceivableStatus covers both receivables and payables; the two sides
// share the same derivation rules.
type ReceivableStatus string

const (
	ReceivablePending       ReceivableStatus = "pending"
	ReceivablePartiallyPaid ReceivableStatus = "partially_paid"
	ReceivablePaid          ReceivableStatus = "paid"
	ReceivableOverdue       ReceivableStatus = "overdue"
	ReceivableCancelled     ReceivableStatus = "cancelled"
)

// RunningBalances folds signed amounts (oldest first) over an opening
// balance and returns balance_after for each entry. Order matters:
// reordering entries changes every downstream balance.
func RunningBalances(opening int64, amounts []int64) []int64 {
	out := make([]int64, len(amounts))
	bal := opening
	for i, a := range amounts {
		bal += a
		out[i] = bal
	}
	return out
}

// DebitCredit is one row of a party ledger.
type DebitCredit struct {
	Debit  int64
	Credit int64
}

// RunningPartyBalances applies debit - credit per entry in chronological
// order, the generalized form used for vendor/client ledger tables.
func RunningPartyBalances(opening int64, entries []DebitCredit) []int64 {
	amounts := make([]int64, len(entries))
	for i, e := range entries {
		amounts[i] = e.Debit - e.Credit
	}
	return RunningBalances(opening, amounts)
}

// Remaining clamps total - paid at zero.
func Remaining(total, paid int64) int64 {
	r := total - paid
	if r < 0 {
		return 0
	}
	return r
}

// DeriveReceivableStatus recomputes the status from amounts and due date.
// Cancelled is sticky. Overdue compares calendar days against local now.
func DeriveReceivableStatus(total, paid int64, dueDate string, today time.Time, cancelled bool) ReceivableStatus {
	if cancelled {
		return ReceivableCancelled
	}
	remaining := Remaining(total, paid)
	if remaining == 0 {
		return ReceivablePaid
	}
	if due, err := time.ParseInLocation("2006-01-02", dueDate, today.Location()); err == nil {
		dueDay := time.Date(due.Year(), due.Month(), due.Day(), 0, 0, 0, 0, today.Location())
		nowDay := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
		if dueDay.Before(nowDay) {
			return ReceivableOverdue
		}
	}
	if paid > 0 {
		return ReceivablePartiallyPaid
	}
	return ReceivablePending
}

// MonthsToClear returns how many monthly deductions are needed to recover
// the outstanding advance. Zero deduction yields 0 rather than dividing.
func MonthsToClear(balance, monthlyDeduction int64) int {
	if balance <= 0 || monthlyDeduction <= 0 {
		return 0
	}
	months := balance / monthlyDeduction
	if balance%monthlyDeduction != 0 {
		months++
	}
	return int(months)
}

// ExpectedClearDate projects the month the advance balance reaches zero.
// Empty when the balance cannot clear (no deduction or nothing owed).
func ExpectedClearDate(from time.Time, balance, monthlyDeduction int64) string {
	months := MonthsToClear(balance, monthlyDeduction)
	if months == 0 {
		return ""
	}
	d := from.AddDate(0, months, 0)
	return d.Format("2006-01-02")
}
