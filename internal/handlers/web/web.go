package web

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"storefront/internal/catalog"
	"storefront/internal/models"
	"storefront/internal/render"
	serviceerrors "storefront/internal/service"
	"storefront/internal/session"
	"storefront/pkg/lib/logger/sl"
)

const StatusClientClosedRequest = 499

type ShopService interface {
	AddComment(ctx context.Context, comment models.Comment) (models.Comment, error)
	CommentsByProduct(ctx context.Context, productId int) ([]models.Comment, error)
	PlaceOrder(ctx context.Context, order models.Order, items []models.OrderItem) (models.Order, error)
}

type Handler struct {
	log      *slog.Logger
	service  ShopService
	catalog  *catalog.Catalog
	sessions *session.Store
	renderer *render.Renderer
}

func New(log *slog.Logger, service ShopService, cat *catalog.Catalog, sessions *session.Store, renderer *render.Renderer) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		catalog:  cat,
		sessions: sessions,
		renderer: renderer,
	}
}

// formValue reads a form field, falling back when absent or empty.
func formValue(r *http.Request, key, fallback string) string {
	if v := r.FormValue(key); v != "" {
		return v
	}
	return fallback
}

func (h *Handler) render(w http.ResponseWriter, page string, data map[string]any) {
	const op = "handlers.web.render"

	if err := h.renderer.Render(w, page, data); err != nil {
		h.log.With("op", op).Error("Failed to render page", sl.Err(err))
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
	}
}

func (h *Handler) serviceError(w http.ResponseWriter, log *slog.Logger, err error) {
	if errors.Is(err, serviceerrors.ErrContextCanceled) {
		log.Warn("Context canceled", sl.Err(serviceerrors.ErrContextCanceled))
		http.Error(w, "Context canceled", StatusClientClosedRequest)
		return
	} else if errors.Is(err, serviceerrors.ErrDeadlineExceeded) {
		log.Warn("Deadline exceeded", sl.Err(serviceerrors.ErrDeadlineExceeded))
		http.Error(w, "Deadline exceeded", http.StatusGatewayTimeout)
		return
	}

	log.Error("Persistence failure", sl.Err(err))
	http.Error(w, "Internal server error", http.StatusInternalServerError)
}

// GET /
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	h.render(w, "index", map[string]any{
		"Flashes":  h.sessions.Flashes(w, r),
		"Products": h.catalog.Products(),
	})
}

// GET /hakkimizda
func (h *Handler) About(w http.ResponseWriter, r *http.Request) {
	h.render(w, "hakkimizda", map[string]any{
		"Flashes": h.sessions.Flashes(w, r),
	})
}

// GET,POST /iletisim
func (h *Handler) Contact(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.web.Contact"
	log := h.log.With("op", op)

	if r.Method == http.MethodPost {
		// The message is not persisted, the demo only acknowledges it.
		name := formValue(r, "name", "ziyaretçi")

		if err := h.sessions.Flash(w, r, fmt.Sprintf("Mesajınız alındı, teşekkürler %s!", name)); err != nil {
			log.Error("Failed to save session", sl.Err(err))
		}
		http.Redirect(w, r, "/success", http.StatusSeeOther)
		return
	}

	h.render(w, "iletisim", map[string]any{
		"Flashes": h.sessions.Flashes(w, r),
	})
}

// POST /add_to_cart/{productId}
func (h *Handler) AddToCart(w http.ResponseWriter, r *http.Request, productId int) {
	const op = "handlers.web.AddToCart"
	log := h.log.With("op", op)

	c := h.sessions.Cart(r)
	c.Add(strconv.Itoa(productId))

	if err := h.sessions.SaveCart(w, r, c); err != nil {
		log.Error("Failed to save cart", sl.Err(err))
		http.Error(w, "Failed to save cart", http.StatusInternalServerError)
		return
	}

	if err := h.sessions.Flash(w, r, "Ürün sepete eklendi."); err != nil {
		log.Error("Failed to save session", sl.Err(err))
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// GET /cart
func (h *Handler) Cart(w http.ResponseWriter, r *http.Request) {
	c := h.sessions.Cart(r)
	items, total := c.Materialize(h.catalog)

	h.render(w, "cart", map[string]any{
		"Flashes": h.sessions.Flashes(w, r),
		"Items":   items,
		"Total":   total,
	})
}

// POST /remove_from_cart/{productId}
func (h *Handler) RemoveFromCart(w http.ResponseWriter, r *http.Request, productId int) {
	const op = "handlers.web.RemoveFromCart"
	log := h.log.With("op", op)

	c := h.sessions.Cart(r)
	removed := c.Remove(strconv.Itoa(productId))

	if err := h.sessions.SaveCart(w, r, c); err != nil {
		log.Error("Failed to save cart", sl.Err(err))
		http.Error(w, "Failed to save cart", http.StatusInternalServerError)
		return
	}

	if removed {
		if err := h.sessions.Flash(w, r, "Ürün sepetten çıkarıldı."); err != nil {
			log.Error("Failed to save session", sl.Err(err))
		}
	}
	http.Redirect(w, r, "/cart", http.StatusSeeOther)
}

// GET,POST /product/{productId}
func (h *Handler) Product(w http.ResponseWriter, r *http.Request, productId int) {
	const op = "handlers.web.Product"
	log := h.log.With("op", op)

	prod, err := h.catalog.ByID(productId)
	if err != nil {
		// Recovered: notice plus redirect back to the listing.
		if err := h.sessions.Flash(w, r, "Ürün bulunamadı."); err != nil {
			log.Error("Failed to save session", sl.Err(err))
		}
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	if r.Method == http.MethodPost {
		rating, _ := strconv.Atoi(r.FormValue("rating"))

		comment := models.Comment{
			ProductId: productId,
			Name:      formValue(r, "name", "Ziyaretçi"),
			Rating:    rating,
			Message:   r.FormValue("message"),
			CreatedAt: time.Now().UTC(),
		}

		if _, err := h.service.AddComment(r.Context(), comment); err != nil {
			h.serviceError(w, log, err)
			return
		}

		if err := h.sessions.Flash(w, r, "Yorumunuz kaydedildi."); err != nil {
			log.Error("Failed to save session", sl.Err(err))
		}
		http.Redirect(w, r, fmt.Sprintf("/product/%d", productId), http.StatusSeeOther)
		return
	}

	comments, err := h.service.CommentsByProduct(r.Context(), productId)
	if err != nil {
		h.serviceError(w, log, err)
		return
	}

	h.render(w, "product", map[string]any{
		"Flashes":  h.sessions.Flashes(w, r),
		"Product":  prod,
		"Comments": comments,
	})
}

// GET,POST /checkout
func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.web.Checkout"
	log := h.log.With("op", op)

	// Materialized fresh on every request, client totals are never
	// trusted.
	c := h.sessions.Cart(r)
	items, total := c.Materialize(h.catalog)

	if r.Method == http.MethodPost {
		order := models.Order{
			Name:      formValue(r, "name", "Müşteri"),
			Email:     r.FormValue("email"),
			Address:   r.FormValue("address"),
			Total:     total,
			CreatedAt: time.Now().UTC(),
		}

		orderItems := make([]models.OrderItem, 0, len(items))
		for _, line := range items {
			orderItems = append(orderItems, models.OrderItem{
				ProductId: line.Product.Id,
				Qty:       line.Qty,
				Price:     line.Product.Price,
			})
		}

		placed, err := h.service.PlaceOrder(r.Context(), order, orderItems)
		if err != nil {
			h.serviceError(w, log, err)
			return
		}

		if err := h.sessions.ClearCart(w, r); err != nil {
			log.Error("Failed to clear cart", sl.Err(err))
		}

		flashes := append(h.sessions.Flashes(w, r), "Siparişiniz alındı. Teşekkürler!")
		h.render(w, "order_success", map[string]any{
			"Flashes": flashes,
			"OrderId": placed.Id,
		})
		return
	}

	h.render(w, "checkout", map[string]any{
		"Flashes": h.sessions.Flashes(w, r),
		"Items":   items,
		"Total":   total,
	})
}

// GET /success
func (h *Handler) Success(w http.ResponseWriter, r *http.Request) {
	h.render(w, "success", map[string]any{
		"Flashes": h.sessions.Flashes(w, r),
	})
}
