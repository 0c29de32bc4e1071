package routes

import (
	webhandler "storefront/internal/handlers/web"
	"storefront/pkg/lib/urlparser"
	"net/http"
)

type Routes struct {
	webHandler *webhandler.Handler
}

func New(webHandler *webhandler.Handler) *Routes {
	return &Routes{
		webHandler: webHandler,
	}
}

func (r *Routes) Register(mux *http.ServeMux) {
	mux.HandleFunc("/", func(w http.ResponseWriter, req *http.Request) {
		// "/" is the ServeMux catch-all, anything else is unknown
		if req.URL.Path != "/" || req.Method != http.MethodGet {
			http.NotFound(w, req)
			return
		}
		r.webHandler.Index(w, req)
	})

	mux.HandleFunc("/hakkimizda", func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodGet {
			http.NotFound(w, req)
			return
		}
		r.webHandler.About(w, req)
	})

	mux.HandleFunc("/iletisim", func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodGet && req.Method != http.MethodPost {
			http.NotFound(w, req)
			return
		}
		r.webHandler.Contact(w, req)
	})

	mux.HandleFunc("/add_to_cart/", func(w http.ResponseWriter, req *http.Request) {
		// POST /add_to_cart/{productId}
		productId, err := urlparser.ProductId(req.URL.Path, "add_to_cart")
		if err != nil || req.Method != http.MethodPost {
			http.NotFound(w, req)
			return
		}
		r.webHandler.AddToCart(w, req, productId)
	})

	mux.HandleFunc("/cart", func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodGet {
			http.NotFound(w, req)
			return
		}
		r.webHandler.Cart(w, req)
	})

	mux.HandleFunc("/remove_from_cart/", func(w http.ResponseWriter, req *http.Request) {
		// POST /remove_from_cart/{productId}
		productId, err := urlparser.ProductId(req.URL.Path, "remove_from_cart")
		if err != nil || req.Method != http.MethodPost {
			http.NotFound(w, req)
			return
		}
		r.webHandler.RemoveFromCart(w, req, productId)
	})

	mux.HandleFunc("/product/", func(w http.ResponseWriter, req *http.Request) {
		// GET,POST /product/{productId}
		productId, err := urlparser.ProductId(req.URL.Path, "product")
		if err != nil || (req.Method != http.MethodGet && req.Method != http.MethodPost) {
			http.NotFound(w, req)
			return
		}
		r.webHandler.Product(w, req, productId)
	})

	mux.HandleFunc("/checkout", func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodGet && req.Method != http.MethodPost {
			http.NotFound(w, req)
			return
		}
		r.webHandler.Checkout(w, req)
	})

	mux.HandleFunc("/success", func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodGet {
			http.NotFound(w, req)
			return
		}
		r.webHandler.Success(w, req)
	})
}
