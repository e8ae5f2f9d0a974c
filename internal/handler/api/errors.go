package api

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"bookloop/internal/handler/httperr"
	"bookloop/internal/handler/middleware"
	"bookloop/internal/pkg/errs"
	"bookloop/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const stackLinesLogged = 8

type errorMapping struct {
	kind   error
	status int
	code   string
}

// Order matters: ErrUnauthenticated is also an ErrUnauthorized.
var errorTable = []errorMapping{
	{errs.ErrValidation, http.StatusBadRequest, httperr.CodeValidation},
	{errs.ErrUnauthenticated, http.StatusUnauthorized, httperr.CodeUnauthorized},
	{errs.ErrUnauthorized, http.StatusForbidden, httperr.CodeForbidden},
	{errs.ErrNotFound, http.StatusNotFound, httperr.CodeNotFound},
	{errs.ErrSelfExchangeForbidden, http.StatusUnprocessableEntity, httperr.CodeSelfExchangeForbidden},
	{errs.ErrDuplicateOwnership, http.StatusConflict, httperr.CodeDuplicateOwnership},
	{errs.ErrInvalidStateTransition, http.StatusConflict, httperr.CodeInvalidStateTransition},
	{errs.ErrConflict, http.StatusConflict, httperr.CodeConflict},
}

func respondError(c *gin.Context, err error) {
	for _, m := range errorTable {
		if errs.Is(err, m.kind) {
			httperr.AbortWithError(c, m.status, m.code, err, publicMessage(err, m.kind), nil)
			return
		}
	}

	slog.ErrorContext(c.Request.Context(), "unhandled error",
		"error", err.Error(),
		"request_id", middleware.GetRequestID(c),
		"path", c.FullPath(),
		"stack", errs.ExtractStackLines(err, stackLinesLogged),
	)
	httperr.AbortWithError(c, http.StatusInternalServerError, httperr.CodeInternal, err, "Internal server error", nil)
}

// publicMessage keeps the outermost message only; inner causes may carry driver detail.
// Validation messages are kept whole since they describe the rejected input.
func publicMessage(err, kind error) string {
	msg := err.Error()
	if kind == errs.ErrValidation {
		return msg
	}
	head, _, _ := strings.Cut(msg, ": ")
	return head
}

func bindingError(c *gin.Context, err error) {
	respondError(c, errs.Classify(err, errs.ErrValidation))
}

func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		bindingError(c, errs.Wrapf(err, "invalid %s", name))
		return uuid.Nil, false
	}
	return id, true
}

func callerID(c *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		respondError(c, errs.ErrUnauthenticated)
		return uuid.Nil, false
	}
	return userID, true
}

func pageParams(c *gin.Context) (*queries.Cursor, int, bool) {
	limit := 0
	if v := c.Query("limit"); v != "" {
		iv, err := strconv.Atoi(v)
		if err != nil {
			bindingError(c, errs.Wrap(err, "invalid limit"))
			return nil, 0, false
		}
		limit = queries.ValidateLimit(iv)
	}
	var cursor *queries.Cursor
	if after := c.Query("after"); after != "" {
		cursor = &queries.Cursor{After: after}
	}
	return cursor, limit, true
}

func withNextCursor(resp gin.H, next *queries.Cursor) gin.H {
	if next != nil {
		resp["next_cursor"] = next.After
	}
	return resp
}
