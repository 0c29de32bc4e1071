package shopservice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"storefront/internal/models"
	serviceerrors "storefront/internal/service"
	"storefront/pkg/lib/logger/sl"
)

type ShopStorage interface {
	CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error)
	CommentsByProduct(ctx context.Context, productId int) ([]models.Comment, error)
	CreateOrder(ctx context.Context, order models.Order, items []models.OrderItem) (models.Order, error)
}

type ShopService struct {
	log     *slog.Logger
	storage ShopStorage
}

func New(log *slog.Logger, storage ShopStorage) *ShopService {
	return &ShopService{
		log:     log,
		storage: storage,
	}
}

// mapErr translates context faults into the service error vocabulary,
// passing every other error through wrapped with op.
func mapErr(log *slog.Logger, op string, err error) error {
	switch {
	case errors.Is(err, context.Canceled):
		log.Warn("context canceled", sl.Err(serviceerrors.ErrContextCanceled))
		return fmt.Errorf("%s: %w", op, serviceerrors.ErrContextCanceled)
	case errors.Is(err, context.DeadlineExceeded):
		log.Warn("deadline exceeded", sl.Err(serviceerrors.ErrDeadlineExceeded))
		return fmt.Errorf("%s: %w", op, serviceerrors.ErrDeadlineExceeded)
	default:
		log.Error("storage failure", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}
}

func (s *ShopService) AddComment(ctx context.Context, comment models.Comment) (models.Comment, error) {
	const op = "service.shop.AddComment"
	log := s.log.With("op", op)

	if err := ctx.Err(); err != nil {
		return models.Comment{}, mapErr(log, op, err)
	}

	inserted, err := s.storage.CreateComment(ctx, comment)
	if err != nil {
		return models.Comment{}, mapErr(log, op, err)
	}

	return inserted, nil
}

func (s *ShopService) CommentsByProduct(ctx context.Context, productId int) ([]models.Comment, error) {
	const op = "service.shop.CommentsByProduct"
	log := s.log.With("op", op)

	if err := ctx.Err(); err != nil {
		return nil, mapErr(log, op, err)
	}

	comments, err := s.storage.CommentsByProduct(ctx, productId)
	if err != nil {
		return nil, mapErr(log, op, err)
	}

	return comments, nil
}

// PlaceOrder persists the order with its items as one unit. The total
// must already be computed from the materialized cart.
func (s *ShopService) PlaceOrder(ctx context.Context, order models.Order, items []models.OrderItem) (models.Order, error) {
	const op = "service.shop.PlaceOrder"
	log := s.log.With("op", op)

	if err := ctx.Err(); err != nil {
		return models.Order{}, mapErr(log, op, err)
	}

	placed, err := s.storage.CreateOrder(ctx, order, items)
	if err != nil {
		return models.Order{}, mapErr(log, op, err)
	}

	return placed, nil
}
