// Package scalars holds the standalone money fields of the balance sheet:
// cash on hand, other assets and other liabilities. They are persisted as
// decimal strings in a key-value table, mirroring how the web client stores
// them.
package scalars

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
)

const (
	KeyCash             = "cash"
	KeyOtherAssets      = "other_assets"
	KeyOtherLiabilities = "other_liabilities"
)

var (
	ErrUnknownKey    = errors.New("unknown scalar key")
	ErrNotFound      = errors.New("scalar not found")
	ErrNegativeValue = errors.New("scalar value must not be negative")
)

//go:generate mockgen -source=scalars.go -destination=repository_mock.go -package=scalars
type Repository interface {
	GetValue(ctx context.Context, key string) (string, error)
	SetValue(ctx context.Context, key, value string) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func validKey(key string) bool {
	switch key {
	case KeyCash, KeyOtherAssets, KeyOtherLiabilities:
		return true
	}

	return false
}

// Get returns the stored value for a key. A missing or unparseable value
// falls back to zero: a corrupted scalar must not break the balance sheet.
func (s *Service) Get(ctx context.Context, key string) (float64, error) {
	if !validKey(key) {
		return 0, ErrUnknownKey
	}

	raw, err := s.repo.GetValue(ctx, key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return 0, nil
		}

		return 0, err
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		slog.Warn("ignoring malformed scalar", "key", key, "value", raw, "error", err)
		return 0, nil
	}

	return v, nil
}

func (s *Service) Set(ctx context.Context, key string, value float64) error {
	if !validKey(key) {
		return ErrUnknownKey
	}

	if value < 0 {
		return fmt.Errorf("%w: %s", ErrNegativeValue, key)
	}

	return s.repo.SetValue(ctx, key, strconv.FormatFloat(value, 'f', -1, 64))
}

func (s *Service) Cash(ctx context.Context) (float64, error) {
	return s.Get(ctx, KeyCash)
}

func (s *Service) OtherAssets(ctx context.Context) (float64, error) {
	return s.Get(ctx, KeyOtherAssets)
}

func (s *Service) OtherLiabilities(ctx context.Context) (float64, error) {
	return s.Get(ctx, KeyOtherLiabilities)
}
