package api

import (
	"context"
	"net/http"

	"bookloop/internal/domain/exchange"
	reqdto "bookloop/internal/handler/dto/request"
	resdto "bookloop/internal/handler/dto/response"
	"bookloop/internal/usecase/commands"
	"bookloop/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ExchangeHandler struct {
	cmds commands.ExchangeCommands
	q    queries.ExchangeQueries
}

func NewExchangeHandler(cmds commands.ExchangeCommands, q queries.ExchangeQueries) *ExchangeHandler {
	return &ExchangeHandler{cmds: cmds, q: q}
}

// @Summary Request exchange
// @Description Ask the owner of a copy for an exchange
// @Tags exchanges
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Copy ID"
// @Param request body reqdto.RequestExchangeRequest true "Exchange request"
// @Success 201 {object} resdto.ExchangeResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Router /api/copies/{id}/exchanges [post]
func (h *ExchangeHandler) Request(c *gin.Context) {
	requesterID, ok := callerID(c)
	if !ok {
		return
	}
	userBookID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req reqdto.RequestExchangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}
	r, err := h.cmds.RequestExchange(c.Request.Context(), requesterID, req.ToInput(userBookID))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromExchangeRequest(r))
}

// @Summary Accept exchange
// @Description Accept a pending request; the copy becomes exchanged and sibling requests are rejected
// @Tags exchanges
// @Produce json
// @Security BearerAuth
// @Param id path string true "Exchange request ID"
// @Success 200 {object} resdto.ExchangeResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Router /api/exchanges/{id}/accept [post]
func (h *ExchangeHandler) Accept(c *gin.Context) {
	h.decide(c, h.cmds.AcceptExchange)
}

// @Summary Reject exchange
// @Description Reject a pending request; rejecting twice is a no-op
// @Tags exchanges
// @Produce json
// @Security BearerAuth
// @Param id path string true "Exchange request ID"
// @Success 200 {object} resdto.ExchangeResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Router /api/exchanges/{id}/reject [post]
func (h *ExchangeHandler) Reject(c *gin.Context) {
	h.decide(c, h.cmds.RejectExchange)
}

type decision func(ctx context.Context, callerID, exchangeID uuid.UUID) (*exchange.Request, error)

func (h *ExchangeHandler) decide(c *gin.Context, fn decision) {
	ownerID, ok := callerID(c)
	if !ok {
		return
	}
	exchangeID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	r, err := fn(c.Request.Context(), ownerID, exchangeID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromExchangeRequest(r))
}

// @Summary Get exchange
// @Description Get an exchange request visible to its requester or the copy owner
// @Tags exchanges
// @Produce json
// @Security BearerAuth
// @Param id path string true "Exchange request ID"
// @Success 200 {object} resdto.ExchangeResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/exchanges/{id} [get]
func (h *ExchangeHandler) Get(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	exchangeID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	v, err := h.q.GetExchange(c.Request.Context(), userID, exchangeID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromExchangeView(v))
}

// @Summary List sent exchanges
// @Description List requests the caller has sent, newest first
// @Tags exchanges
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {array} resdto.ExchangeResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/exchanges/sent [get]
func (h *ExchangeHandler) ListSent(c *gin.Context) {
	h.list(c, h.q.ListSent)
}

// @Summary List received exchanges
// @Description List requests addressed to the caller's copies, newest first
// @Tags exchanges
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {array} resdto.ExchangeResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/exchanges/received [get]
func (h *ExchangeHandler) ListReceived(c *gin.Context) {
	h.list(c, h.q.ListReceived)
}

type exchangeListing func(ctx context.Context, userID uuid.UUID, cursor *queries.Cursor, limit int) ([]*queries.ExchangeRequestView, *queries.Cursor, error)

func (h *ExchangeHandler) list(c *gin.Context, fn exchangeListing) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	cursor, limit, ok := pageParams(c)
	if !ok {
		return
	}
	items, next, err := fn(c.Request.Context(), userID, cursor, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, withNextCursor(gin.H{"exchanges": resdto.FromExchangeList(items)}, next))
}
