package api

import (
	"net/http"

	reqdto "bookloop/internal/handler/dto/request"
	resdto "bookloop/internal/handler/dto/response"
	"bookloop/internal/usecase/commands"
	"bookloop/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CopyHandler struct {
	cmds commands.LedgerCommands
	q    queries.LedgerQueries
}

func NewCopyHandler(cmds commands.LedgerCommands, q queries.LedgerQueries) *CopyHandler {
	return &CopyHandler{cmds: cmds, q: q}
}

// @Summary Add copy
// @Description Register a copy of a catalog book as owned by the caller
// @Tags copies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.AddCopyRequest true "Add copy request"
// @Success 201 {object} resdto.CopyResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/copies [post]
func (h *CopyHandler) Add(c *gin.Context) {
	ownerID, ok := callerID(c)
	if !ok {
		return
	}
	var req reqdto.AddCopyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}
	ub, err := h.cmds.AddCopy(c.Request.Context(), ownerID, req.ToInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromUserBook(ub))
}

// @Summary Get copy
// @Description Get a single copy by ID
// @Tags copies
// @Produce json
// @Param id path string true "Copy ID"
// @Success 200 {object} resdto.CopyResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/copies/{id} [get]
func (h *CopyHandler) Get(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	v, err := h.q.GetCopy(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCopyView(v))
}

// @Summary List my copies
// @Description List every copy owned by the caller, in insertion order
// @Tags copies
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.CopyResponse
// @Failure 401 {object} httperr.Response
// @Router /api/me/copies [get]
func (h *CopyHandler) ListMine(c *gin.Context) {
	ownerID, ok := callerID(c)
	if !ok {
		return
	}
	items, err := h.q.ListByOwner(c.Request.Context(), ownerID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"copies": resdto.FromCopyList(items)})
}
