package accounts

import (
	"math/rand"
	"time"

	"account-ledger/internal/models/money"

	"github.com/beevik/guid"
)

type Account struct {
	ID          string      `json:"-"`
	UserID      string      `json:"-"`
	Balance     money.Money `json:"balance"`
	CreatedDate time.Time   `json:"-"`
}

// New creates the Account for a freshly registered user. The starting
// balance is assigned server-side below the ceiling; a client-supplied
// balance never reaches this constructor.
func New(userID string, ceiling int64) *Account {
	var balance money.Money

	if ceiling > 0 {
		balance = money.Money(rand.Int63n(ceiling))
	}

	account := &Account{
		ID:          guid.NewString(),
		UserID:      userID,
		Balance:     balance,
		CreatedDate: time.Now(),
	}

	return account
}
