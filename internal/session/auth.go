package session

import (
	"context"
	"errors"

	"atlantis/internal/model"
)

var (
	ErrNotFound       = errors.New("client not found")
	ErrBadCredentials = errors.New("wrong password")
)

// CustomerFetcher is the client-details upstream collaborator.
type CustomerFetcher interface {
	GetCustomer(ctx context.Context, clientID string) (*model.Customer, error)
}

// Login checks the credentials against the fetched client record and
// persists the session on success. The upstream stores plain passwords;
// this is a straight comparison, nothing more.
func Login(ctx context.Context, f CustomerFetcher, store Store, clientID, password string) (model.Customer, error) {
	c, err := f.GetCustomer(ctx, clientID)
	if err != nil {
		return model.Customer{}, err
	}
	if c == nil {
		return model.Customer{}, ErrNotFound
	}
	if c.Password != password {
		return model.Customer{}, ErrBadCredentials
	}
	if err := store.Save(*c); err != nil {
		return model.Customer{}, err
	}
	return *c, nil
}

// Logout clears any saved session.
func Logout(store Store) error {
	return store.Clear()
}
