//go:build unit

package api_test

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"bookloop/internal/domain/exchange"
	"bookloop/internal/handler/api"
	resdto "bookloop/internal/handler/dto/response"
	"bookloop/internal/handler/httperr"
	"bookloop/internal/handler/middleware"
	"bookloop/internal/pkg/errs"
	"bookloop/internal/usecase/commands"
	"bookloop/internal/usecase/queries"
	"bookloop/tests/common/builder"
	"bookloop/tests/common/httptest"
	"bookloop/tests/common/testutil"
	commandsmock "bookloop/tests/mock/commands"
	queriesmock "bookloop/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// stubAuth authenticates any request carrying an Authorization header as callerID.
func stubAuth(callerID *uuid.UUID) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, httperr.CodeUnauthorized, errs.ErrUnauthenticated, "Access token required", nil)
			return
		}
		middleware.SetUserID(c, *callerID)
		c.Next()
	}
}

type ExchangeHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockExchangeCommands
	mockQueries  *queriesmock.MockExchangeQueries
	callerID     uuid.UUID
}

func (s *ExchangeHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(middleware.ErrorHandler())

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockExchangeCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockExchangeQueries(s.mockCtrl)
	s.callerID = uuid.New()
	h := api.NewExchangeHandler(s.mockCommands, s.mockQueries)

	auth := stubAuth(&s.callerID)
	s.router.POST("/copies/:id/exchanges", auth, h.Request)
	s.router.POST("/exchanges/:id/accept", auth, h.Accept)
	s.router.POST("/exchanges/:id/reject", auth, h.Reject)
	s.router.GET("/exchanges/sent", auth, h.ListSent)
	s.router.GET("/exchanges/received", auth, h.ListReceived)
	s.router.GET("/exchanges/:id", auth, h.Get)
}

func (s *ExchangeHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestExchangeHandlerSuite(t *testing.T) {
	suite.Run(t, new(ExchangeHandlerTestSuite))
}

type testCaseExchange struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestRequest
// ================================================================================

func (s *ExchangeHandlerTestSuite) TestRequest() {
	b := builder.NewExchangeBuilder()
	url := "/copies/" + b.UserBookID.String() + "/exchanges"
	reqBody := b.BuildRequestDTO()

	s.Run("success: 201 with pending request", func() {
		created := builder.NewExchangeBuilder().With(func(eb *builder.ExchangeBuilder) {
			eb.RequesterID = s.callerID
			eb.UserBookID = b.UserBookID
		}).BuildDomain()
		s.mockCommands.EXPECT().
			RequestExchange(gomock.Any(), s.callerID, b.BuildInput()).
			Return(created, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")

		var body resdto.ExchangeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(created.ID().String(), body.ID)
		s.Equal("pending", body.Status)
		s.Equal(b.UserBookID.String(), body.UserBookID)
	})

	validation := []testCaseExchange{
		{name: "missing contact_name", mutate: testutil.Field("contact_name", nil), expectCode: http.StatusBadRequest},
		{name: "missing pickup_address", mutate: testutil.Field("pickup_address", nil), expectCode: http.StatusBadRequest},
		{name: "missing exchange_mode", mutate: testutil.Field("exchange_mode", nil), expectCode: http.StatusBadRequest},
		{name: "malformed email", mutate: testutil.Field("contact_email", "not-an-email"), expectCode: http.StatusBadRequest},
		{name: "message too long", mutate: testutil.Field("message", strings.Repeat("a", 1001)), expectCode: http.StatusBadRequest},
	}
	for _, tc := range validation {
		s.Run("error: "+tc.name, func() {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), reqBody, tc.mutate), "token")
			httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, httperr.CodeValidation)
		})
	}

	s.Run("error: invalid copy id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/copies/xyz/exchanges", reqBody, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, httperr.CodeValidation)
	})

	s.Run("error: no token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, httperr.CodeUnauthorized)
	})

	useCaseErrors := []struct {
		name       string
		err        error
		expectCode int
		errCode    string
	}{
		{"self exchange", commands.ErrSelfExchange, http.StatusUnprocessableEntity, httperr.CodeSelfExchangeForbidden},
		{"copy not found", commands.ErrCopyNotFound, http.StatusNotFound, httperr.CodeNotFound},
		{"unknown requester", commands.ErrUnknownUser, http.StatusForbidden, httperr.CodeForbidden},
		{"unexpected", errs.New("connection refused"), http.StatusInternalServerError, httperr.CodeInternal},
	}
	for _, tc := range useCaseErrors {
		s.Run("error: "+tc.name, func() {
			s.mockCommands.EXPECT().RequestExchange(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tc.err)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")

			httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.errCode)
		})
	}
}

// ================================================================================
// TestAccept / TestReject
// ================================================================================

func (s *ExchangeHandlerTestSuite) TestAccept() {
	id := uuid.New()
	url := fmt.Sprintf("/exchanges/%s/accept", id)

	s.Run("success: 200 accepted", func() {
		accepted := builder.NewExchangeBuilder().With(func(b *builder.ExchangeBuilder) {
			b.ID = id
			b.OwnerID = s.callerID
			b.Status = exchange.StatusAccepted
		}).BuildDomain()
		s.mockCommands.EXPECT().AcceptExchange(gomock.Any(), s.callerID, id).Return(accepted, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")

		var body resdto.ExchangeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("accepted", body.Status)
	})

	cases := []struct {
		name       string
		err        error
		expectCode int
		errCode    string
	}{
		{"not the owner", commands.ErrNotCopyOwner, http.StatusForbidden, httperr.CodeForbidden},
		{"unknown request", commands.ErrExchangeNotFound, http.StatusNotFound, httperr.CodeNotFound},
		{"already decided", errs.Wrapf(commands.ErrNotPending, "exchange %s is accepted", id), http.StatusConflict, httperr.CodeInvalidStateTransition},
		{"copy already exchanged", commands.ErrCopyAlreadyExchanged, http.StatusConflict, httperr.CodeConflict},
		{"lost race", commands.ErrLostRace, http.StatusConflict, httperr.CodeConflict},
	}
	for _, tc := range cases {
		s.Run("error: "+tc.name, func() {
			s.mockCommands.EXPECT().AcceptExchange(gomock.Any(), s.callerID, id).Return(nil, tc.err)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")

			httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.errCode)
		})
	}

	s.Run("error: state message does not leak the cause chain", func() {
		s.mockCommands.EXPECT().AcceptExchange(gomock.Any(), s.callerID, id).
			Return(nil, errs.Wrapf(commands.ErrNotPending, "exchange %s is rejected", id))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")

		body := httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, httperr.CodeInvalidStateTransition)
		s.Equal(fmt.Sprintf("exchange %s is rejected", id), body.Error.Message)
	})
}

func (s *ExchangeHandlerTestSuite) TestReject() {
	id := uuid.New()
	url := fmt.Sprintf("/exchanges/%s/reject", id)

	s.Run("success: 200 rejected", func() {
		rejected := builder.NewExchangeBuilder().With(func(b *builder.ExchangeBuilder) {
			b.ID = id
			b.OwnerID = s.callerID
			b.Status = exchange.StatusRejected
		}).BuildDomain()
		s.mockCommands.EXPECT().RejectExchange(gomock.Any(), s.callerID, id).Return(rejected, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")

		var body resdto.ExchangeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("rejected", body.Status)
	})

	s.Run("error: invalid id never reaches use case", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/exchanges/123/reject", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, httperr.CodeValidation)
	})
}

// ================================================================================
// TestGet / TestList
// ================================================================================

func (s *ExchangeHandlerTestSuite) TestGet() {
	view := builder.NewExchangeBuilder().BuildView()
	url := "/exchanges/" + view.ID.String()

	s.Run("success", func() {
		s.mockQueries.EXPECT().GetExchange(gomock.Any(), s.callerID, view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "token")

		var body resdto.ExchangeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.BookTitle, body.BookTitle)
		s.Equal(view.CreatedAt.Unix(), body.CreatedAt)
	})

	s.Run("error: third party gets 403", func() {
		s.mockQueries.EXPECT().GetExchange(gomock.Any(), s.callerID, view.ID).Return(nil, queries.ErrExchangeAccess)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, httperr.CodeForbidden)
	})
}

func (s *ExchangeHandlerTestSuite) TestList() {
	items := []*queries.ExchangeRequestView{
		builder.NewExchangeBuilder().BuildView(),
		builder.NewExchangeBuilder().BuildView(),
	}

	s.Run("success: sent with next cursor", func() {
		next := &queries.Cursor{After: "opaque"}
		s.mockQueries.EXPECT().
			ListSent(gomock.Any(), s.callerID, &queries.Cursor{After: "prev"}, 2).
			Return(items, next, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/exchanges/sent?limit=2&after=prev", nil, "token")

		var body struct {
			Exchanges  []resdto.ExchangeResponse `json:"exchanges"`
			NextCursor string                    `json:"next_cursor"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body.Exchanges, 2)
		s.Equal("opaque", body.NextCursor)
	})

	s.Run("success: received without cursor omits next_cursor", func() {
		s.mockQueries.EXPECT().
			ListReceived(gomock.Any(), s.callerID, (*queries.Cursor)(nil), 0).
			Return(items[:1], nil, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/exchanges/received", nil, "token")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.NotContains(body, "next_cursor")
	})

	s.Run("error: bad limit", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/exchanges/sent?limit=ten", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, httperr.CodeValidation)
	})

	s.Run("error: bad cursor", func() {
		s.mockQueries.EXPECT().ListSent(gomock.Any(), s.callerID, gomock.Any(), gomock.Any()).
			Return(nil, nil, errs.Wrap(queries.ErrInvalidCursor, "illegal base64"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/exchanges/sent?after=zzz", nil, "token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, httperr.CodeValidation)
	})
}
