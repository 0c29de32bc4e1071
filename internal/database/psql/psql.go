package psql

import (
	"storefront/internal/models"
	"storefront/pkg/lib/logger/sl"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	_ "github.com/lib/pq"

	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
)

type Storage struct {
	log *slog.Logger
	db  *sqlx.DB
}

func New(log *slog.Logger, connStr string) *Storage {
	const op = "database.psql.New"
	db, err := sqlx.Connect("postgres", connStr)
	if err != nil {
		log.With("op", op).Error("Error connect to database", sl.Err(err))
		panic(fmt.Errorf("%s: %w", op, err))
	}

	wd, err := os.Getwd()
	if err != nil {
		log.With("op", op).Error("Error getting work dir", sl.Err(err))
		panic(fmt.Errorf("%s: %w", op, err))
	}
	migrationsPath := filepath.Join(wd, "migrations")

	if err := goose.Up(db.DB, migrationsPath); err != nil {
		log.With("op", op).Error("Error applying migrations", sl.Err(err))
		panic(fmt.Errorf("%s: %w", op, err))
	}

	return &Storage{
		log: log,
		db:  db,
	}
}

func NewWithParams(log *slog.Logger, db *sqlx.DB) *Storage {
	return &Storage{
		log: log,
		db:  db,
	}
}

func (s *Storage) Close() {
	s.db.Close()
}

func (s *Storage) CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error) {
	const op = "database.psql.CreateComment"
	log := s.log.With("op", op)

	select {
	case <-ctx.Done():
		log.Error("Context is over", sl.Err(ctx.Err()))
		return models.Comment{}, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var commentId int
	err := s.db.QueryRowxContext(ctx, `
		INSERT INTO comments (product_id, name, rating, message, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id;
	`, comment.ProductId, comment.Name, comment.Rating, comment.Message, comment.CreatedAt).Scan(&commentId)
	if err != nil {
		log.Error("Error creating comment", sl.Err(err))
		return models.Comment{}, fmt.Errorf("%s: %w", op, err)
	}

	comment.Id = commentId
	return comment, nil
}

func (s *Storage) CommentsByProduct(ctx context.Context, productId int) ([]models.Comment, error) {
	const op = "database.psql.CommentsByProduct"
	log := s.log.With("op", op)

	select {
	case <-ctx.Done():
		log.Error("Context is over", sl.Err(ctx.Err()))
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	rows, err := s.db.QueryxContext(ctx, `
		SELECT id, product_id, name, rating, message, created_at FROM comments
		WHERE product_id=$1
		ORDER BY created_at DESC;
	`, productId)
	if err != nil {
		log.Error("Failed to query comments", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var comments = make([]models.Comment, 0, 10)
	var tmpComment models.Comment
	for rows.Next() {
		if err := rows.StructScan(&tmpComment); err != nil {
			log.Error("Failed to scan row", sl.Err(err))
			continue
		}

		comments = append(comments, tmpComment)
	}

	return comments, nil
}

// CreateOrder inserts the order row and all of its items in one
// transaction. A failed item insert rolls back the whole order.
func (s *Storage) CreateOrder(ctx context.Context, order models.Order, items []models.OrderItem) (models.Order, error) {
	const op = "database.psql.CreateOrder"
	log := s.log.With("op", op)

	select {
	case <-ctx.Done():
		log.Error("Context is over", sl.Err(ctx.Err()))
		return models.Order{}, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	tx, err := s.db.Beginx()
	if err != nil {
		log.Error("Failed to begin transaction", sl.Err(err))
		return models.Order{}, fmt.Errorf("%s: %w", op, err)
	}
	defer tx.Rollback()

	var orderId int
	row := tx.QueryRowxContext(ctx, `
		INSERT INTO orders (name, email, address, total, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id;
	`, order.Name, order.Email, order.Address, order.Total, order.CreatedAt)
	if err := row.Scan(&orderId); err != nil {
		log.Error("Failed to insert order", sl.Err(err))
		return models.Order{}, fmt.Errorf("%s: %w", op, err)
	}

	for _, item := range items {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO order_items (order_id, product_id, qty, price)
			VALUES ($1, $2, $3, $4);
		`, orderId, item.ProductId, item.Qty, item.Price); err != nil {
			log.Error("Failed to insert order item", sl.Err(err))
			return models.Order{}, fmt.Errorf("%s: %w", op, err)
		}
	}

	if err := tx.Commit(); err != nil {
		log.Error("Failed to commit transaction", sl.Err(err))
		return models.Order{}, fmt.Errorf("%s: %w", op, err)
	}

	order.Id = orderId
	return order, nil
}
