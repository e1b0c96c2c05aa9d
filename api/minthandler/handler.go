// Package minthandler serves POST /mint-nft.
package minthandler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/goldvault/transparent-gold-backend/api"
	"github.com/goldvault/transparent-gold-backend/auth"
	"github.com/goldvault/transparent-gold-backend/interfaces"
)

// DefaultName is used when the request carries no name.
const DefaultName = "Gold Certificate"

// Handler turns mint requests into issuances. It must be mounted behind
// auth.RequireBearer.
type Handler struct {
	issuer       interfaces.Issuer
	maxBodyBytes int64
	log          *slog.Logger
}

func NewHandler(issuer interfaces.Issuer, maxBodyBytes int64, log *slog.Logger) *Handler {
	return &Handler{issuer: issuer, maxBodyBytes: maxBodyBytes, log: log}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/mint-nft", h.HandleMint)
}

// HandleMint mints one certificate and blocks until it is confirmed.
//
// Request body: api.MintRequest. A missing name becomes "Gold Certificate";
// an explicit empty name is minted as-is. desc is attached as the
// transaction note and a missing metadataUrl is replaced by a placeholder.
//
// Response: api.MintResponse, or api.ErrorResponse with the status from
// api.StatusForError.
func (h *Handler) HandleMint(w http.ResponseWriter, r *http.Request) {
	var body api.MintRequest
	if err := api.DecodeJSON(w, r, h.maxBodyBytes, &body); err != nil {
		api.WriteError(w, err)
		return
	}

	req := toIssuanceRequest(&body)
	caller, _ := auth.EmailFromContext(r.Context())

	result, err := h.issuer.Issue(r.Context(), req)
	if err != nil {
		h.log.Warn("mint failed", "caller", caller, "err", err)
		api.WriteError(w, err)
		return
	}

	h.log.Info("mint succeeded", "caller", caller, "asset_id", result.AssetID, "tx_id", result.TransactionID)
	api.WriteJSON(w, http.StatusOK, api.MintResponse{
		AssetID:     result.AssetID,
		TxID:        result.TransactionID,
		ExplorerURL: result.ExplorerURL,
	})
}

func toIssuanceRequest(body *api.MintRequest) *interfaces.IssuanceRequest {
	req := &interfaces.IssuanceRequest{Name: DefaultName}
	if body.Name != nil {
		req.Name = *body.Name
	}
	if body.Desc != nil {
		req.Description = *body.Desc
	}
	if body.MetadataURL != nil {
		req.MetadataURL = *body.MetadataURL
	}
	return req
}
