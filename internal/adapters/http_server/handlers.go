// internal/adapters/http_server/handlers.go
package httpserver

import (
	"crypto/sha1"
	"embed"
	"encoding/hex"
	"encoding/json"
	"errors"
	"html/template"
	"net/http"
	"strings"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"hbnb_web/internal/adapters/observability"
	"hbnb_web/internal/app"
	"hbnb_web/internal/domain"
	"hbnb_web/internal/ui"
)

//go:embed templates/*.html
var templateFS embed.FS

var pages = template.Must(template.ParseFS(templateFS, "templates/*.html"))

type Handlers struct {
	API         domain.PlacesAPI
	TokenCookie string
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

type loginForm struct {
	Email string
	Error string
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/", h.getPage)
	s.mux.Get("/v1/places", h.listPlaces)
	s.mux.Get("/login", h.getLogin)
	s.mux.Post("/login", h.postLogin)
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

func render(w http.ResponseWriter, status int, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := pages.ExecuteTemplate(w, name, data); err != nil {
		log.Error().Err(err).Str("template", name).Msg("render failed")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

func validPrice(v string) bool {
	for _, o := range ui.PriceOptions() {
		if o.Value == v {
			return true
		}
	}
	return false
}

// loadPage runs one page load against a fresh document built from the
// request cookies; price, when set, is applied as a filter change.
func (h *Handlers) loadPage(r *http.Request, price string) ui.PageView {
	page := ui.NewPage(strings.Join(r.Header.Values("Cookie"), "; "))
	l := log.With().Str("request_id", chimw.GetReqID(r.Context())).Logger()

	ctl := app.NewController(h.API, page, h.TokenCookie, l)
	ctl.CheckAuthentication(r.Context())
	if price != "" && ctl.State() == app.Loaded {
		page.Select(ui.PriceFilterID, price)
	}
	observability.ObservePageLoad(ctl.State().String())
	return page.View()
}

func (h *Handlers) getPage(w http.ResponseWriter, r *http.Request) {
	// unknown ceilings are ignored, as a select would never send them
	price := r.URL.Query().Get("price")
	if !validPrice(price) {
		price = ""
	}
	render(w, http.StatusOK, "places.html", h.loadPage(r, price))
}

func (h *Handlers) listPlaces(w http.ResponseWriter, r *http.Request) {
	price := r.URL.Query().Get("price")
	if price != "" && !validPrice(price) {
		writeProblem(w, http.StatusBadRequest, "Invalid price", "price must be one of 10, 50, 100, All")
		return
	}

	etag, body := calcETagAndBody(h.loadPage(r, price))
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write listPlaces body")
	}
}

func (h *Handlers) getLogin(w http.ResponseWriter, r *http.Request) {
	render(w, http.StatusOK, "login.html", loginForm{})
}

func (h *Handlers) postLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		render(w, http.StatusBadRequest, "login.html", loginForm{Error: "Invalid form"})
		return
	}
	email := strings.TrimSpace(r.PostForm.Get("email"))
	password := r.PostForm.Get("password")
	if email == "" || password == "" {
		render(w, http.StatusBadRequest, "login.html", loginForm{Email: email, Error: "Email and password are required"})
		return
	}

	token, err := h.API.Login(r.Context(), email, password)
	if err != nil {
		var se *domain.StatusError
		if errors.As(err, &se) && (se.Status == http.StatusUnauthorized || se.Status == http.StatusBadRequest) {
			render(w, http.StatusUnauthorized, "login.html", loginForm{Email: email, Error: "Invalid credentials"})
			return
		}
		log.Error().Err(err).Msg("login failed")
		render(w, http.StatusBadGateway, "login.html", loginForm{Email: email, Error: "Login is unavailable, try again later"})
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.tokenCookie(),
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handlers) tokenCookie() string {
	if h.TokenCookie == "" {
		return "token"
	}
	return h.TokenCookie
}
