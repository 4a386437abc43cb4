package http

import (
	"math/big"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/debay/auctionclient/base/ctx"
	"github.com/debay/auctionclient/base/delivery"
	"github.com/debay/auctionclient/domain"
)

type handler struct {
	listings domain.ListingUseCase
	bids     domain.BidUseCase
	sessions domain.SessionUseCase
}

func New(e *echo.Echo, listings domain.ListingUseCase, bids domain.BidUseCase, sessions domain.SessionUseCase) {
	h := &handler{
		listings: listings,
		bids:     bids,
		sessions: sessions,
	}

	g := e.Group("/listings")
	g.GET("", h.getListings)
	g.GET("/latest", h.getLatest)
	g.POST("", h.createListing)
	g.POST("/:listingId/bid", h.placeBid)
}

func (h *handler) getListings(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	listings, err := h.listings.Synchronize(ctx)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, listings)
}

// getLatest serves the last completed snapshot without touching the chain.
func (h *handler) getLatest(c echo.Context) error {
	state := h.listings.Latest()

	return delivery.MakeJsonResp(c, http.StatusOK, struct {
		Status   domain.SyncStatus         `json:"status"`
		Listings []*domain.EnrichedListing `json:"listings"`
	}{state.Status, state.Listings})
}

func (h *handler) placeBid(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := struct {
		ListingId uint64 `param:"listingId" validate:"required"`
		Amount    string `json:"amount"`
	}{}

	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	// a missing or malformed amount goes through as nil, the usecase guard
	// rejects it without reaching the network
	var amount *big.Int
	if len(p.Amount) > 0 {
		amount, _ = new(big.Int).SetString(p.Amount, 10)
	}

	outcome, err := h.bids.SubmitBid(ctx, h.sessions.Current(), domain.ListingId(p.ListingId), amount)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, outcome)
}

func (h *handler) createListing(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := struct {
		Nft          string `json:"nft" validate:"required"`
		TokenId      string `json:"tokenId" validate:"required"`
		Reserve      string `json:"reserve" validate:"required"`
		StartPrice   string `json:"startPrice" validate:"required"`
		DurationDays uint64 `json:"durationDays" validate:"required"`
	}{}

	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	reserve, ok := new(big.Int).SetString(p.Reserve, 10)
	if !ok {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}
	startPrice, ok := new(big.Int).SetString(p.StartPrice, 10)
	if !ok {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	outcome, err := h.bids.CreateListing(ctx, h.sessions.Current(), &domain.CreateListingParams{
		Reserve:      reserve,
		StartPrice:   startPrice,
		DurationDays: p.DurationDays,
		TokenId:      domain.TokenId(p.TokenId),
		Nft:          domain.Address(p.Nft).ToLower(),
	})
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, outcome)
}
