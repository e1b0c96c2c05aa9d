// Package reserveshandler serves the public reserve figures: gold price,
// vault inventory and address balances.
package reserveshandler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/goldvault/transparent-gold-backend/api"
	"github.com/goldvault/transparent-gold-backend/reserves"
)

// Banner is the plain-text body of GET /.
const Banner = "Transparent Gold Financial System API"

type Handler struct {
	store *reserves.Store
}

func NewHandler(store *reserves.Store) *Handler {
	return &Handler{store: store}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.HandleBanner)
	r.Get("/gold-price", h.HandleGoldPrice)
	r.Get("/vault", h.HandleVault)
	r.Get("/balance/{address}", h.HandleBalance)
}

func (h *Handler) HandleBanner(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(Banner))
}

// HandleGoldPrice advances the simulated price and returns it.
func (h *Handler) HandleGoldPrice(w http.ResponseWriter, r *http.Request) {
	api.WriteJSON(w, http.StatusOK, api.GoldPriceResponse{Price: h.store.GoldPrice().InexactFloat64()})
}

func (h *Handler) HandleVault(w http.ResponseWriter, r *http.Request) {
	vault := h.store.Vault()
	resp := api.VaultResponse{Total: vault.Total, Locations: make([]api.VaultLocation, 0, len(vault.Locations))}
	for _, loc := range vault.Locations {
		resp.Locations = append(resp.Locations, api.VaultLocation{Name: loc.Name, Grams: loc.Grams, Location: loc.Location})
	}
	api.WriteJSON(w, http.StatusOK, resp)
}

func (h *Handler) HandleBalance(w http.ResponseWriter, r *http.Request) {
	address := r.PathValue("address")
	api.WriteJSON(w, http.StatusOK, api.BalanceResponse{Address: address, Balance: h.store.Balance(address)})
}
