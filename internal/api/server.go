package api

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"lemonade/internal/game"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/shopspring/decimal"
)

type Server struct {
	log  *slog.Logger
	game *game.Service
	mux  *chi.Mux
}

func New(logger *slog.Logger, gameSvc *game.Service) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		log:  logger,
		game: gameSvc,
		mux:  chi.NewRouter(),
	}
	s.routes()
	return s
}

func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) routes() {
	r := s.mux
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})

	// The same surface is served bare and under /api for convenience.
	mount := func(r chi.Router) {
		r.Get("/state", s.handleState)
		r.Post("/reset", s.handleReset)
		r.Post("/buy", s.handleBuy)
		r.Post("/set_price", s.handleSetPrice)
		r.Post("/produce", s.handleProduce)
		r.Post("/simulate", s.handleSimulate)
	}
	mount(r)
	r.Route("/api", func(r chi.Router) {
		r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusOK, map[string]any{"ok": true})
		})
		mount(r)
	})
}

func (s *Server) handleState(w http.ResponseWriter, _ *http.Request) {
	snap := s.game.Snapshot()
	writeJSON(w, http.StatusOK, map[string]any{
		"ok":      true,
		"message": snap.LastDayMessage,
		"state":   snap,
	})
}

func (s *Server) handleReset(w http.ResponseWriter, _ *http.Request) {
	snap := s.game.Reset()
	writeJSON(w, http.StatusOK, map[string]any{
		"ok":      true,
		"message": snap.LastDayMessage,
		"state":   snap,
	})
}

func (s *Server) handleBuy(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Lemons int `json:"lemons"`
		Sugar  int `json:"sugar"`
		Cups   int `json:"cups"`
	}
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	res, err := s.game.PurchaseIngredients(in.Lemons, in.Sugar, in.Cups)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"ok":      true,
		"message": res.Message,
		"state":   s.game.Snapshot(),
	})
}

func (s *Server) handleSetPrice(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Price *decimal.Decimal `json:"price"`
	}
	if err := decodeJSON(r, &in); err != nil {
		// A non-numeric price reads as an invalid price, not a broken request.
		s.writeDomainError(w, game.ErrInvalidPrice)
		return
	}
	price := decimal.Zero
	if in.Price != nil {
		price = *in.Price
	}
	res, err := s.game.SetSalePrice(price)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"ok":      true,
		"message": res.Message,
		"state":   s.game.Snapshot(),
	})
}

func (s *Server) handleProduce(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Qty int `json:"qty"`
	}
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	res, err := s.game.Produce(in.Qty)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"ok":      true,
		"message": res.Message,
		"state":   s.game.Snapshot(),
	})
}

func (s *Server) handleSimulate(w http.ResponseWriter, r *http.Request) {
	var in struct {
		AdvertisingSpend decimal.Decimal `json:"advertising_spend"`
	}
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	res := s.game.AdvanceDay(in.AdvertisingSpend)
	writeJSON(w, http.StatusOK, map[string]any{
		"ok":          true,
		"message":     res.Message,
		"game_over":   res.GameOver,
		"day_summary": res.Summary,
		"state":       s.game.Snapshot(),
	})
}

// writeDomainError reports a rejected player action. The game state never
// changed, so the response still carries HTTP 200 with ok=false and the
// current snapshot, the way a turn rejection reads in the client.
func (s *Server) writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, game.ErrInsufficientFunds),
		errors.Is(err, game.ErrInvalidPrice),
		errors.Is(err, game.ErrNoIngredients):
		writeJSON(w, http.StatusOK, map[string]any{
			"ok":      false,
			"message": err.Error(),
			"state":   s.game.Snapshot(),
		})
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

// decodeJSON tolerates an empty body: every action has usable zero values.
func decodeJSON(r *http.Request, out any) error {
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{"ok": false, "error": message})
}
