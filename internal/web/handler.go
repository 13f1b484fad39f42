package web

import (
	"bytes"
	"embed"
	"encoding/json"
	"html/template"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/nikolayk812/cartstate-demo/internal/catalog"
	"github.com/nikolayk812/cartstate-demo/internal/domain"
	"github.com/nikolayk812/cartstate-demo/internal/port"
	"github.com/nikolayk812/cartstate-demo/internal/view"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

//go:embed templates/*.html
var templatesFS embed.FS

var templates = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

// Log interface for logging
type Log interface {
	Debug(string, ...zapcore.Field)
	Info(string, ...zapcore.Field)
	Error(string, ...zapcore.Field)
}

// Handler renders the catalog and cart pages and turns form posts into cart gestures.
type Handler struct {
	store   port.CartStore
	catalog *catalog.Catalog
	view    *view.View
	notices *noticeBoard
	log     Log
}

func NewHandler(s port.CartStore, cat *catalog.Catalog, log Log) *Handler {
	h := &Handler{
		store:   s,
		catalog: cat,
		notices: &noticeBoard{},
		log:     log,
	}
	h.view = view.New(s, h.notices, func() {
		log.Debug("continue shopping")
	})

	return h
}

func (h *Handler) Route() *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(requestLogger(h.log))
	r.Use(middleware.Recoverer)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/products", http.StatusSeeOther)
	})
	r.Get("/products", h.getProducts)

	r.Route("/cart", func(r chi.Router) {
		r.Get("/", h.getCart)
		r.Post("/items", h.addItem)
		r.Post("/items/increment", h.gesture(h.view.Increment))
		r.Post("/items/decrement", h.gesture(h.view.Decrement))
		r.Post("/items/delete", h.gesture(h.view.Delete))
		r.Post("/continue", h.continueShopping)
		r.Post("/checkout", h.checkout)
	})

	r.Get("/api/cart", h.getCartJSON)

	return r
}

type productsPage struct {
	Products   []productCard
	TotalItems int
}

type productCard struct {
	Name        string
	Image       string
	Description string
	Price       string
}

type cartPage struct {
	view.Model
	Notice string
}

func (h *Handler) getProducts(w http.ResponseWriter, r *http.Request) {
	page := productsPage{TotalItems: h.store.TotalItems()}
	for _, p := range h.catalog.Products() {
		page.Products = append(page.Products, productCard{
			Name:        p.Name,
			Image:       p.Image,
			Description: p.Description,
			Price:       p.Price.String(),
		})
	}

	h.render(w, "products.html", page)
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	h.render(w, "cart.html", cartPage{
		Model:  h.view.Model(),
		Notice: h.notices.Take(),
	})
}

func (h *Handler) addItem(w http.ResponseWriter, r *http.Request) {
	name := r.PostFormValue("name")

	product, ok := h.catalog.Lookup(name)
	if !ok {
		http.Error(w, "product not found", http.StatusNotFound)
		return
	}

	h.store.Dispatch(domain.AddItem{Product: product})

	http.Redirect(w, r, "/products", http.StatusSeeOther)
}

func (h *Handler) gesture(fn func(name string)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := r.PostFormValue("name")
		if name == "" {
			http.Error(w, "name is empty", http.StatusBadRequest)
			return
		}

		fn(name)

		http.Redirect(w, r, "/cart", http.StatusSeeOther)
	}
}

func (h *Handler) continueShopping(w http.ResponseWriter, r *http.Request) {
	h.view.ContinueShopping()

	http.Redirect(w, r, "/products", http.StatusSeeOther)
}

func (h *Handler) checkout(w http.ResponseWriter, r *http.Request) {
	h.view.Checkout()

	http.Redirect(w, r, "/cart", http.StatusSeeOther)
}

func (h *Handler) getCartJSON(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(h.view.Model()); err != nil {
		h.log.Error("encode cart", zap.Error(err))
	}
}

func (h *Handler) render(w http.ResponseWriter, name string, data any) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		h.log.Error("render template", zap.String("template", name), zap.Error(err))
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := buf.WriteTo(w); err != nil {
		h.log.Debug("write page", zap.Error(err))
	}
}
