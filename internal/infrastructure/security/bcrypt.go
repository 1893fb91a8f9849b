// Package security hashes and verifies passwords with bcrypt.
package security

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/salesdesk/sales-api/internal/core/domain"
)

// Runner executes a job and waits for it, normally on a worker pool.
type Runner interface {
	Submit(ctx context.Context, fn func(context.Context) error) error
}

// inline runs jobs on the calling goroutine.
type inline struct{}

func (inline) Submit(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

// BcryptHasher implements ports.PasswordHasher.
type BcryptHasher struct {
	cost   int
	runner Runner
}

// NewBcryptHasher returns a hasher with the given cost. A nil runner hashes inline.
func NewBcryptHasher(cost int, runner Runner) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	if runner == nil {
		runner = inline{}
	}
	return &BcryptHasher{cost: cost, runner: runner}
}

func (h *BcryptHasher) Hash(ctx context.Context, password string) (string, error) {
	var hash []byte
	err := h.runner.Submit(ctx, func(context.Context) error {
		var err error
		hash, err = bcrypt.GenerateFromPassword([]byte(password), h.cost)
		return err
	})
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", domain.ErrPasswordTooLong
	}
	if err != nil {
		return "", fmt.Errorf("bcrypt: %w", err)
	}
	return string(hash), nil
}

func (h *BcryptHasher) Compare(ctx context.Context, hash, password string) (bool, error) {
	var match bool
	err := h.runner.Submit(ctx, func(context.Context) error {
		err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
		switch {
		case err == nil:
			match = true
			return nil
		case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
			return nil
		default:
			return err
		}
	})
	if err != nil {
		return false, fmt.Errorf("bcrypt: %w", err)
	}
	return match, nil
}
