//go:build e2e

package catalog_test

import (
	"fmt"
	"net/http"
	"sort"
	"testing"

	"bookloop/internal/handler/dto/response"
	"bookloop/internal/handler/httperr"
	"bookloop/internal/infra/seed"
	"bookloop/tests/common/builder"
	"bookloop/tests/common/dbtest"
	"bookloop/tests/common/httptest"
	"bookloop/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type CatalogSuite struct {
	e2e.SharedSuite
}

func TestCatalogSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(CatalogSuite))
}

type bookPage struct {
	Books      []response.BookResponse `json:"books"`
	NextCursor *string                 `json:"next_cursor"`
}

// =============================================================================
// TestListBooks - seeded catalog, title order and keyset pages
// =============================================================================

func (s *CatalogSuite) TestListBooks() {
	s.Run("正常系: シードされた8冊をタイトル順に返す", func() {
		t := s.T()

		var titles []string
		cursor := ""
		for range 10 {
			url := "/api/books?limit=3"
			if cursor != "" {
				url += "&after=" + cursor
			}
			w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, "")
			var page bookPage
			httptest.AssertSuccessResponse(t, w, http.StatusOK, &page)
			for _, b := range page.Books {
				titles = append(titles, b.Title)
			}
			if page.NextCursor == nil {
				break
			}
			cursor = *page.NextCursor
		}

		expected := make([]string, 0, len(seed.SampleCatalog))
		for _, b := range seed.SampleCatalog {
			expected = append(expected, b.Title)
		}
		sort.Strings(expected)
		assert.Equal(t, expected, titles)
	})

	s.Run("異常系: limitが数値でなければ400", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/books?limit=abc", nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, httperr.CodeValidation)
	})
}

// =============================================================================
// TestBookDetail - detail view and available copies
// =============================================================================

func (s *CatalogSuite) TestBookDetail() {
	s.Run("正常系: 詳細には利用可能なコピーが含まれる", func() {
		t := s.T()

		ownerID := dbtest.CreateTestUser(t, s.DB, "owner", "owner@example.com")
		token := s.JWT.GenerateToken(t, ownerID, "owner")
		bookID := dbtest.FirstBookID(t, s.DB)

		body := builder.NewUserBookBuilder().WithBookID(bookID).BuildAddCopyRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/copies", body, token)
		var created response.CopyResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/books/"+bookID.String(), nil, "")
		var detail response.BookDetailResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &detail)
		assert.Equal(t, bookID.String(), detail.ID)
		require.Len(t, detail.AvailableCopies, 1)
		assert.Equal(t, created.ID, detail.AvailableCopies[0].ID)
		assert.Equal(t, "owner", detail.AvailableCopies[0].OwnerUsername)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/copies/"+created.ID, nil, "")
		var cp response.CopyResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &cp)
		assert.Equal(t, detail.Title, cp.BookTitle)
	})

	s.Run("異常系: 存在しない本は404", func() {
		t := s.T()

		for _, url := range []string{"/api/books/%s", "/api/books/%s/copies", "/api/copies/%s"} {
			w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(url, uuid.New()), nil, "")
			httptest.AssertErrorResponse(t, w, http.StatusNotFound, httperr.CodeNotFound)
		}
	})

	s.Run("異常系: 存在しない本はコピー登録できない", func() {
		t := s.T()

		ownerID := dbtest.CreateTestUser(t, s.DB, "owner", "owner@example.com")
		token := s.JWT.GenerateToken(t, ownerID, "owner")

		body := builder.NewUserBookBuilder().WithBookID(uuid.New()).BuildAddCopyRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/copies", body, token)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, httperr.CodeNotFound)
	})
}

// =============================================================================
// TestMe - current user and "my books"
// =============================================================================

func (s *CatalogSuite) TestMe() {
	s.Run("正常系: 自分の情報とコピー一覧", func() {
		t := s.T()

		userID := dbtest.CreateTestUser(t, s.DB, "reader", "reader@example.com")
		token := s.JWT.GenerateToken(t, userID, "reader")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/me", nil, token)
		var me response.UserResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &me)
		assert.Equal(t, userID.String(), me.ID)
		assert.Equal(t, "reader@example.com", me.Email)

		first := dbtest.CreateTestBook(t, s.DB, "A First Book", "Author")
		second := dbtest.CreateTestBook(t, s.DB, "B Second Book", "Author")
		for _, id := range []uuid.UUID{first, second} {
			body := builder.NewUserBookBuilder().WithBookID(id).BuildAddCopyRequestDTO()
			w = httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/copies", body, token)
			require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		}

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/me/copies", nil, token)
		var mine struct {
			Copies []response.CopyResponse `json:"copies"`
		}
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &mine)
		require.Len(t, mine.Copies, 2)
		assert.Equal(t, first.String(), mine.Copies[0].BookID)
		assert.Equal(t, second.String(), mine.Copies[1].BookID)
	})

	s.Run("異常系: 未認証は401", func() {
		t := s.T()

		for _, url := range []string{"/api/me", "/api/me/copies"} {
			w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, "")
			httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, httperr.CodeUnauthorized)
		}
	})
}
