package mocks

import (
	"storefront/internal/models"

	"context"

	"github.com/stretchr/testify/mock"
)

type Storage struct {
	mock.Mock
}

func (m *Storage) CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error) {
	args := m.Called(ctx, comment)
	return args.Get(0).(models.Comment), args.Error(1)
}

func (m *Storage) CommentsByProduct(ctx context.Context, productId int) ([]models.Comment, error) {
	args := m.Called(ctx, productId)
	return args.Get(0).([]models.Comment), args.Error(1)
}

func (m *Storage) CreateOrder(ctx context.Context, order models.Order, items []models.OrderItem) (models.Order, error) {
	args := m.Called(ctx, order, items)
	return args.Get(0).(models.Order), args.Error(1)
}

type Service struct {
	mock.Mock
}

func (m *Service) AddComment(ctx context.Context, comment models.Comment) (models.Comment, error) {
	args := m.Called(ctx, comment)
	return args.Get(0).(models.Comment), args.Error(1)
}

func (m *Service) CommentsByProduct(ctx context.Context, productId int) ([]models.Comment, error) {
	args := m.Called(ctx, productId)
	return args.Get(0).([]models.Comment), args.Error(1)
}

func (m *Service) PlaceOrder(ctx context.Context, order models.Order, items []models.OrderItem) (models.Order, error) {
	args := m.Called(ctx, order, items)
	return args.Get(0).(models.Order), args.Error(1)
}
