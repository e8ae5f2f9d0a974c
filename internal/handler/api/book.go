package api

import (
	"net/http"

	resdto "bookloop/internal/handler/dto/response"
	"bookloop/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BookHandler struct {
	books  queries.BookQueries
	ledger queries.LedgerQueries
}

func NewBookHandler(books queries.BookQueries, ledger queries.LedgerQueries) *BookHandler {
	return &BookHandler{books: books, ledger: ledger}
}

// @Summary List books
// @Description List the catalog ordered by title with keyset pagination
// @Tags books
// @Produce json
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {array} resdto.BookResponse
// @Failure 400 {object} httperr.Response
// @Router /api/books [get]
func (h *BookHandler) List(c *gin.Context) {
	cursor, limit, ok := pageParams(c)
	if !ok {
		return
	}
	items, next, err := h.books.ListBooks(c.Request.Context(), cursor, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	books, err := resdto.FromBookList(items)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, withNextCursor(gin.H{"books": books}, next))
}

// @Summary Get book
// @Description Get a book together with the copies currently offered for it
// @Tags books
// @Produce json
// @Param id path string true "Book ID"
// @Success 200 {object} resdto.BookDetailResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/books/{id} [get]
func (h *BookHandler) Get(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	detail, err := h.books.GetBookDetail(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	res, err := resdto.FromBookDetailView(detail)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary List available copies
// @Description List copies of a book that are still available, oldest first
// @Tags books
// @Produce json
// @Param id path string true "Book ID"
// @Success 200 {array} resdto.CopyResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/books/{id}/copies [get]
func (h *BookHandler) ListCopies(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if _, err := h.books.GetBook(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	items, err := h.ledger.ListAvailableCopies(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"copies": resdto.FromCopyList(items)})
}
