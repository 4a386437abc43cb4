package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/debay/auctionclient/base/ctx"
	"github.com/debay/auctionclient/base/delivery"
	"github.com/debay/auctionclient/domain"
)

type handler struct {
	sessions domain.SessionUseCase
}

// sessionView keeps the signer out of responses, it only ever lives in
// process memory.
type sessionView struct {
	Account domain.Address `json:"account"`
	ChainId domain.ChainId `json:"chainId"`
}

func New(e *echo.Echo, sessions domain.SessionUseCase) {
	h := &handler{
		sessions: sessions,
	}

	g := e.Group("/session")
	g.POST("/connect", h.connect)
	g.GET("", h.current)
	g.POST("/account", h.accountChanged)
	g.POST("/network", h.networkChanged)
	g.DELETE("", h.disconnect)
}

func (h *handler) connect(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	session, err := h.sessions.Connect(ctx)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, toView(session))
}

func (h *handler) current(c echo.Context) error {
	session := h.sessions.Current()
	if session == nil {
		return delivery.MakeJsonResp(c, http.StatusUnauthorized, domain.ErrNoSession)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, toView(session))
}

func (h *handler) accountChanged(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := struct {
		Account string `json:"account" validate:"required"`
	}{}

	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	session, err := h.sessions.OnAccountChanged(ctx, domain.Address(p.Account).ToLower())
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, toView(session))
}

func (h *handler) networkChanged(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := struct {
		ChainId int32 `json:"chainId" validate:"required"`
	}{}

	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	session, err := h.sessions.OnNetworkChanged(ctx, domain.ChainId(p.ChainId))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, toView(session))
}

func (h *handler) disconnect(c echo.Context) error {
	h.sessions.Disconnect()
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func toView(session *domain.Session) *sessionView {
	if session == nil {
		return nil
	}
	return &sessionView{
		Account: session.Account,
		ChainId: session.ChainId,
	}
}
