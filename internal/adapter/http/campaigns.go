package httpadapter

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"reachpay/internal/core/domain"
	"reachpay/internal/core/port"
)

// createCampaignRequest carries campaign terms. Times are unix seconds. An
// empty campaign_id is replaced by a random UUID.
type createCampaignRequest struct {
	CampaignID string `json:"campaign_id"`
	CPM        uint64 `json:"cpm"`
	LikeWeight uint64 `json:"like_weight"`
	MaxBudget  uint64 `json:"max_budget"`
	Creator    string `json:"creator"`
	StartTime  int64  `json:"start_time"`
	EndTime    int64  `json:"end_time"`
}

type metricsRequest struct {
	Views *uint64 `json:"views"`
	Likes *uint64 `json:"likes"`
}

type campaignResponse struct {
	CampaignID    string `json:"campaign_id"`
	Brand         string `json:"brand"`
	Creator       string `json:"creator"`
	CPM           uint64 `json:"cpm"`
	LikeWeight    uint64 `json:"like_weight"`
	MaxBudget     uint64 `json:"max_budget"`
	EscrowBalance uint64 `json:"escrow_balance"`
	Views         uint64 `json:"views"`
	Likes         uint64 `json:"likes"`
	StartTime     int64  `json:"start_time"`
	EndTime       int64  `json:"end_time"`
	IsActive      bool   `json:"is_active"`
	TotalPaid     uint64 `json:"total_paid"`
	TotalRefunded uint64 `json:"total_refunded"`
}

func toCampaignResponse(c domain.Campaign) campaignResponse {
	return campaignResponse{
		CampaignID:    string(c.ID),
		Brand:         string(c.Brand),
		Creator:       string(c.Creator),
		CPM:           c.CPM,
		LikeWeight:    c.LikeWeight,
		MaxBudget:     c.MaxBudget,
		EscrowBalance: c.EscrowBalance,
		Views:         c.Views,
		Likes:         c.Likes,
		StartTime:     c.StartTime.Unix(),
		EndTime:       c.EndTime.Unix(),
		IsActive:      c.IsActive,
		TotalPaid:     c.TotalPaid,
		TotalRefunded: c.TotalRefunded,
	}
}

type statusResponse struct {
	campaignResponse
	EscrowAccount  string `json:"escrow_account"`
	EffectiveViews uint64 `json:"effective_views"`
	TotalDue       uint64 `json:"total_due"`
	PendingPayout  uint64 `json:"pending_payout"`
}

type settleResponse struct {
	Campaign       campaignResponse `json:"campaign"`
	Payout         uint64           `json:"payout"`
	EffectiveViews uint64           `json:"effective_views"`
	TotalDue       uint64           `json:"total_due"`
	Deactivated    bool             `json:"deactivated"`
}

type closeResponse struct {
	Campaign campaignResponse `json:"campaign"`
	Refunded uint64           `json:"refunded"`
}

type transferResponse struct {
	ID        string `json:"id"`
	Kind      string `json:"kind"`
	From      string `json:"from"`
	To        string `json:"to"`
	Amount    uint64 `json:"amount"`
	CreatedAt string `json:"created_at"`
}

func campaignID(r *http.Request) domain.CampaignID {
	return domain.CampaignID(chi.URLParam(r, "id"))
}

// handleCreateCampaign records a campaign funded by the authenticated brand.
func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	brand, _ := CallerFrom(r.Context())
	var req createCampaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.badRequest(w, "invalid JSON")
		return
	}
	if strings.TrimSpace(req.CampaignID) == "" {
		req.CampaignID = uuid.NewString()
	}
	terms := domain.CampaignTerms{
		ID:         domain.CampaignID(req.CampaignID),
		CPM:        req.CPM,
		LikeWeight: req.LikeWeight,
		MaxBudget:  req.MaxBudget,
		Creator:    domain.Identity(req.Creator),
		StartTime:  time.Unix(req.StartTime, 0).UTC(),
		EndTime:    time.Unix(req.EndTime, 0).UTC(),
	}
	c, err := h.svc.CreateCampaign(r.Context(), brand, terms)
	if err != nil {
		h.writeError(w, r, "create campaign", err)
		return
	}
	h.writeJSON(w, http.StatusCreated, toCampaignResponse(*c))
}

func (h *Handler) handleAccept(w http.ResponseWriter, r *http.Request) {
	caller, _ := CallerFrom(r.Context())
	c, err := h.svc.AcceptCampaign(r.Context(), caller, campaignID(r))
	if err != nil {
		h.writeError(w, r, "accept campaign", err)
		return
	}
	h.writeJSON(w, http.StatusOK, toCampaignResponse(*c))
}

// handleMetrics replaces the cumulative counters. Both fields are required
// so that an omitted counter is never read as zero.
func (h *Handler) handleMetrics(w http.ResponseWriter, r *http.Request) {
	caller, _ := CallerFrom(r.Context())
	var req metricsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.badRequest(w, "invalid JSON")
		return
	}
	if req.Views == nil || req.Likes == nil {
		h.badRequest(w, "views and likes are required")
		return
	}
	c, err := h.svc.UpdateMetrics(r.Context(), caller, campaignID(r), *req.Views, *req.Likes)
	if err != nil {
		h.writeError(w, r, "update metrics", err)
		return
	}
	h.writeJSON(w, http.StatusOK, toCampaignResponse(*c))
}

func (h *Handler) handleSettle(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.SettlePayout(r.Context(), campaignID(r))
	if err != nil {
		h.writeError(w, r, "settle payout", err)
		return
	}
	h.writeJSON(w, http.StatusOK, settleResponse{
		Campaign:       toCampaignResponse(res.Campaign),
		Payout:         res.Settlement.Payout,
		EffectiveViews: res.Settlement.EffectiveViews,
		TotalDue:       res.Settlement.TotalDue,
		Deactivated:    res.Settlement.Deactivated,
	})
}

func (h *Handler) handleClose(w http.ResponseWriter, r *http.Request) {
	caller, _ := CallerFrom(r.Context())
	res, err := h.svc.CloseCampaign(r.Context(), caller, campaignID(r))
	if err != nil {
		h.writeError(w, r, "close campaign", err)
		return
	}
	h.writeJSON(w, http.StatusOK, closeResponse{Campaign: toCampaignResponse(res.Campaign), Refunded: res.Refunded})
}

func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	st, err := h.svc.CampaignStatus(r.Context(), campaignID(r))
	if err != nil {
		h.writeError(w, r, "campaign status", err)
		return
	}
	h.writeJSON(w, http.StatusOK, toStatusResponse(st))
}

func toStatusResponse(st *port.CampaignStatus) statusResponse {
	return statusResponse{
		campaignResponse: toCampaignResponse(st.Campaign),
		EscrowAccount:    string(st.EscrowAccount),
		EffectiveViews:   st.EffectiveViews,
		TotalDue:         st.TotalDue,
		PendingPayout:    st.PendingPayout,
	}
}

func (h *Handler) handleListTransfers(w http.ResponseWriter, r *http.Request) {
	transfers, err := h.svc.Transfers(r.Context(), campaignID(r))
	if err != nil {
		h.writeError(w, r, "list transfers", err)
		return
	}
	out := make([]transferResponse, 0, len(transfers))
	for _, t := range transfers {
		out = append(out, transferResponse{
			ID:        t.ID.String(),
			Kind:      string(t.Kind),
			From:      string(t.From),
			To:        string(t.To),
			Amount:    t.Amount,
			CreatedAt: t.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	h.writeJSON(w, http.StatusOK, out)
}

func (h *Handler) handleBalance(w http.ResponseWriter, r *http.Request) {
	account := domain.AccountID(chi.URLParam(r, "id"))
	balance, err := h.svc.Balance(r.Context(), account)
	if err != nil {
		h.writeError(w, r, "balance", err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"account": account, "balance": balance})
}
