package app

import (
	"storefront/internal/catalog"
	webhandler "storefront/internal/handlers/web"
	"storefront/internal/models"
	"storefront/internal/render"
	"storefront/internal/routes"
	shopservice "storefront/internal/service/shop"
	"storefront/internal/session"
	"context"
	"fmt"
	"log/slog"
	"net/http"
)

type ShopStorage interface {
	CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error)
	CommentsByProduct(ctx context.Context, productId int) ([]models.Comment, error)
	CreateOrder(ctx context.Context, order models.Order, items []models.OrderItem) (models.Order, error)
}

type App struct {
	log           *slog.Logger
	port          int
	storage       ShopStorage
	products      []models.Product
	sessionSecret string
}

func New(log *slog.Logger, port int, storage ShopStorage, products []models.Product, sessionSecret string) *App {
	return &App{
		log:           log,
		port:          port,
		storage:       storage,
		products:      products,
		sessionSecret: sessionSecret,
	}
}

func (a *App) MustRun() {
	if err := a.Run(); err != nil {
		panic(err)
	}
}

func (a *App) Run() error {
	const op = "app.Run"

	renderer, err := render.New()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	shopService := shopservice.New(a.log, a.storage)
	webHandler := webhandler.New(
		a.log,
		shopService,
		catalog.New(a.products),
		session.New(a.sessionSecret),
		renderer,
	)

	mux := http.NewServeMux()
	routes.New(webHandler).Register(mux)

	if err := http.ListenAndServe(
		fmt.Sprintf(":%d", a.port),
		mux,
	); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
