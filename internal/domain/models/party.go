package models

import (
	"strings"

	"github.com/GhulamAlichaudhry/pgt-tms-backend/internal/domain"
)

// PartyKind separates the two sides of the ledger.
type PartyKind string

const (
	PartyClient PartyKind = "client"
	PartyVendor PartyKind = "vendor"
)

// Party is a client or vendor the company trades with.
type Party struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Kind      PartyKind `json:"kind"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	Active    bool      `json:"active"`
	CreatedAt string    `json:"created_at,omitempty"`
}

func (p Party) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return domain.ValidationError{Field: "name", Msg: "name is required"}
	}
	switch p.Kind {
	case PartyClient, PartyVendor:
	default:
		return domain.ValidationError{Field: "kind", Msg: "must be client or vendor"}
	}
	return nil
}

// PartyLedgerRow is one line of a vendor/client statement with the running
// balance already applied in chronological order.
type PartyLedgerRow struct {
	Date         string `json:"date"`
	Reference    string `json:"reference"`
	Description  string `json:"description"`
	Debit        int64  `json:"debit"`
	Credit       int64  `json:"credit"`
	BalanceAfter int64  `json:"balance_after"`
}

// PartyLedger is the full statement for one party.
type PartyLedger struct {
	Party   Party            `json:"party"`
	Opening int64            `json:"opening_balance"`
	Rows    []PartyLedgerRow `json:"rows"`
	Closing int64            `json:"closing_balance"`
}
