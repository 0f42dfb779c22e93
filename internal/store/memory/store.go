// Package memory implements the store contract over in-process maps. It
// exists for tests that need storage without a running Postgres.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"account-ledger/internal/auth"
	"account-ledger/internal/config"
	"account-ledger/internal/errs"
	"account-ledger/internal/models/accounts"
	"account-ledger/internal/models/money"
	"account-ledger/internal/models/users"
)

type Store struct {
	mu       sync.Mutex
	users    map[string]users.User
	accounts map[string]accounts.Account
}

func NewStore() *Store {
	store := &Store{
		users:    make(map[string]users.User),
		accounts: make(map[string]accounts.Account),
	}

	return store
}

func (s *Store) CreateUser(ctx context.Context, data auth.RegistrationData) (*users.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Login == data.Login {
			return nil, errs.ErrAlreadyExist
		}
	}

	user, err := data.NewUserFromData()
	if err != nil {
		return nil, err
	}

	account := accounts.New(user.ID, config.Config.StartBalanceCeiling)

	s.users[user.ID] = *user
	s.accounts[user.ID] = *account

	return user, nil
}

func (s *Store) GetUserByID(ctx context.Context, userID string) (*users.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[userID]
	if !ok {
		return nil, errs.ErrNotFound
	}

	return &user, nil
}

func (s *Store) GetUserByLogin(ctx context.Context, login string) (*users.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if user.Login == login {
			user := user
			return &user, nil
		}
	}

	return nil, errs.ErrNotFound
}

func (s *Store) UpdateUser(ctx context.Context, userID string, data users.Update) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[userID]
	if !ok {
		return false, nil
	}

	modified := false

	if data.FirstName != nil {
		user.FirstName = *data.FirstName
		modified = true
	}

	if data.LastName != nil {
		user.LastName = *data.LastName
		modified = true
	}

	if data.HashPassword != nil {
		user.HashPassword = *data.HashPassword
		modified = true
	}

	s.users[userID] = user

	return modified, nil
}

func (s *Store) SearchUsers(ctx context.Context, filter string, excludeID string) ([]users.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]users.User, 0)
	needle := strings.ToLower(filter)

	for _, user := range s.users {
		if user.ID == excludeID {
			continue
		}

		if needle != "" &&
			!strings.Contains(strings.ToLower(user.FirstName), needle) &&
			!strings.Contains(strings.ToLower(user.LastName), needle) {
			continue
		}

		user.HashPassword = ""
		result = append(result, user)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].RegistrationDate.Before(result[j].RegistrationDate)
	})

	return result, nil
}

func (s *Store) GetAccountByUserID(ctx context.Context, userID string) (*accounts.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, ok := s.accounts[userID]
	if !ok {
		return nil, errs.ErrNotFound
	}

	return &account, nil
}

func (s *Store) Transfer(ctx context.Context, fromUserID string, toUserID string, sum money.Money) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	from, ok := s.accounts[fromUserID]
	if !ok {
		return errs.ErrNotFound
	}

	to, ok := s.accounts[toUserID]
	if !ok {
		return errs.ErrNotFound
	}

	if from.Balance < sum {
		return errs.ErrInsufficientFunds
	}

	from.Balance -= sum
	to.Balance += sum

	s.accounts[fromUserID] = from
	s.accounts[toUserID] = to

	return nil
}

func (s *Store) Close() error {
	return nil
}
