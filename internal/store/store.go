package store

import (
	"context"

	"account-ledger/internal/auth"
	"account-ledger/internal/models/accounts"
	"account-ledger/internal/models/money"
	"account-ledger/internal/models/users"
)

type Store interface {
	CreateUser(ctx context.Context, data auth.RegistrationData) (*users.User, error)
	GetUserByID(ctx context.Context, userID string) (*users.User, error)
	GetUserByLogin(ctx context.Context, login string) (*users.User, error)
	UpdateUser(ctx context.Context, userID string, data users.Update) (bool, error)
	SearchUsers(ctx context.Context, filter string, excludeID string) ([]users.User, error)
	GetAccountByUserID(ctx context.Context, userID string) (*accounts.Account, error)
	Transfer(ctx context.Context, fromUserID string, toUserID string, sum money.Money) error
	Close() error
}
