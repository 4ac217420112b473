package storefront

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"github.com/HerbHall/diskprices/internal/catalog"
	"github.com/HerbHall/diskprices/internal/server"
	"github.com/HerbHall/diskprices/internal/view"
	"github.com/HerbHall/diskprices/pkg/models"
)

const maxClickBody = 4 << 10

// ViewResponse is the response for GET /api/v1/catalog/view.
type ViewResponse struct {
	view.View
	Listings []models.Listing `json:"listings"`
}

// ClickRequest is the body of POST /api/v1/catalog/listings/{id}/click.
// Query carries the visitor's current view so the best-deal flag reflects
// what they saw.
type ClickRequest struct {
	Destination string `json:"destination"`
	Query       string `json:"query"`
}

// handleListings returns every loaded listing for client-side filtering.
//
//	@Summary		List all listings
//	@Description	Returns the full listing set in load order.
//	@Tags			catalog
//	@Produce		json
//	@Success		200 {array} models.Listing
//	@Router			/catalog/listings [get]
func (p *Plugin) handleListings(w http.ResponseWriter, _ *http.Request) {
	listings := p.listings
	if listings == nil {
		listings = []models.Listing{}
	}
	writeJSON(w, http.StatusOK, listings)
}

// handleOptions returns the dropdown options.
//
//	@Summary		Filter and sort options
//	@Tags			catalog
//	@Produce		json
//	@Success		200 {object} catalog.Options
//	@Router			/catalog/options [get]
func (p *Plugin) handleOptions(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, p.options)
}

// handleView loads a controller from the query string and returns the
// resulting view with the visible listings in display order.
//
//	@Summary		Filtered, sorted view
//	@Description	Accepts category, retailer, condition, sort and q. Unknown values are ignored.
//	@Tags			catalog
//	@Produce		json
//	@Param			category query string false "Category (HDD, SSD, Tape, RAM, SD Card)"
//	@Param			retailer query string false "Retailer"
//	@Param			condition query string false "Condition"
//	@Param			sort query string false "Sort order, e.g. price-desc" default(pricePerUnit-asc)
//	@Param			q query string false "Search term"
//	@Success		200 {object} ViewResponse
//	@Router			/catalog/view [get]
func (p *Plugin) handleView(w http.ResponseWriter, r *http.Request) {
	engine, ctrl := p.session()
	defer ctrl.Close()

	v := ctrl.Load(r.URL.Query())
	resp := ViewResponse{View: v, Listings: make([]models.Listing, 0, len(v.Order))}
	for _, id := range v.Order {
		l, err := engine.Listing(id)
		if err != nil {
			p.logger.Error("visible listing missing from engine", zap.String("id", id), zap.Error(err))
			server.InternalError(w, "failed to build view", r.URL.Path)
			return
		}
		resp.Listings = append(resp.Listings, l)
	}
	writeJSON(w, http.StatusOK, resp)
}

// handleClick records a buy-button click and publishes the click event.
//
//	@Summary		Record a buy click
//	@Tags			catalog
//	@Accept			json
//	@Produce		json
//	@Param			id path string true "Listing ID"
//	@Param			body body ClickRequest false "Destination and current view query"
//	@Success		202 {object} analytics.BuyClick
//	@Failure		400 {object} server.Problem
//	@Failure		404 {object} server.Problem
//	@Failure		429 {object} server.Problem
//	@Router			/catalog/listings/{id}/click [post]
func (p *Plugin) handleClick(w http.ResponseWriter, r *http.Request) {
	if !p.limiter.Allow() {
		server.RateLimited(w, "too many click events", r.URL.Path)
		return
	}

	var req ClickRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxClickBody)).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		server.BadRequest(w, "invalid request body", r.URL.Path)
		return
	}
	if req.Destination != "" && !validDestination(req.Destination) {
		server.BadRequest(w, "destination must be an absolute http(s) URL", r.URL.Path)
		return
	}
	query, err := url.ParseQuery(req.Query)
	if err != nil {
		server.BadRequest(w, "invalid view query", r.URL.Path)
		return
	}

	_, ctrl := p.session()
	defer ctrl.Close()
	ctrl.Load(query)

	click, err := ctrl.BuyClicked(r.Context(), r.PathValue("id"), req.Destination)
	switch {
	case errors.Is(err, catalog.ErrListingNotFound):
		server.NotFound(w, "listing not found", r.URL.Path)
		return
	case err != nil:
		p.logger.Error("failed to publish buy click", zap.String("id", r.PathValue("id")), zap.Error(err))
		server.InternalError(w, "failed to record click", r.URL.Path)
		return
	}
	writeJSON(w, http.StatusAccepted, click)
}

func validDestination(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// -- helpers --

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
