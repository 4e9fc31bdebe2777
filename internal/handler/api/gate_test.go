//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"

	"playpark/internal/domain/gate"
	"playpark/internal/handler/api"
	resdto "playpark/internal/handler/dto/response"
	"playpark/internal/usecase/commands"
	"playpark/internal/usecase/queries"
	"playpark/tests/common/builder"
	"playpark/tests/common/httptest"
	"playpark/tests/common/testutil"
	commandsmock "playpark/tests/mock/commands"
	queriesmock "playpark/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type GateHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockGateCommands
	mockQueries  *queriesmock.MockGateQueries
	handler      *api.GateHandler
	staffID      uuid.UUID
}

func (s *GateHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.staffID = uuid.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockGateCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockGateQueries(s.mockCtrl)
	s.handler = api.NewGateHandler(s.mockCommands, s.mockQueries)

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("staff_id", s.staffID)
		c.Set("staff_role", "staff")
		c.Next()
	}

	s.router.POST("/gate/entry", authMiddleware, s.handler.Entry)
	s.router.POST("/gate/exit", authMiddleware, s.handler.Exit)
	s.router.GET("/gate/occupancy", authMiddleware, s.handler.Occupancy)
	s.router.GET("/gate/log", authMiddleware, s.handler.Log)
}

func (s *GateHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestGateHandlerSuite(t *testing.T) {
	suite.Run(t, new(GateHandlerTestSuite))
}

func (s *GateHandlerTestSuite) TestEntry() {
	url := "/gate/entry"
	scan := builder.NewGateScanBuilder()
	reqBody := scan.BuildScanRequestDTO()

	s.Run("success: returns the updated ticket", func() {
		returnView := builder.NewTicketBuilder().WithNumber(scan.TicketNumber).BuildView()
		returnView.InsideVenue = true

		s.mockCommands.EXPECT().
			Entry(gomock.Any(), commands.GateScanParams{
				TicketNumber: scan.TicketNumber,
				GateID:       scan.GateID,
				CameraRef:    scan.CameraRef,
				StaffID:      s.staffID,
			}).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")

		var resp resdto.TicketResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal(scan.TicketNumber, resp.Number)
		s.True(resp.InsideVenue)
	})

	s.Run("unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})

	s.Run("missing field: ticket_number", func() {
		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("ticket_number", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("missing field: gate_id", func() {
		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("gate_id", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	errorCases := []struct {
		name       string
		err        error
		expectCode int
	}{
		{name: "unknown ticket", err: commands.ErrTicketNotFound, expectCode: http.StatusNotFound},
		{name: "cancelled ticket", err: commands.ErrTicketCancelled, expectCode: http.StatusGone},
		{name: "already inside", err: commands.ErrAlreadyInside, expectCode: http.StatusConflict},
	}
	for _, tc := range errorCases {
		s.Run(tc.name, func() {
			s.mockCommands.EXPECT().Entry(gomock.Any(), gomock.Any()).
				Return(nil, tc.err).Times(1)
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")
			httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
		})
	}
}

func (s *GateHandlerTestSuite) TestExit() {
	url := "/gate/exit"
	scan := builder.NewGateScanBuilder()
	reqBody := scan.BuildScanRequestDTO()

	s.Run("success: ticket is outside afterwards", func() {
		returnView := builder.NewTicketBuilder().WithNumber(scan.TicketNumber).BuildView()

		s.mockCommands.EXPECT().Exit(gomock.Any(), gomock.Any()).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")

		var resp resdto.TicketResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.False(resp.InsideVenue)
	})

	s.Run("not inside", func() {
		s.mockCommands.EXPECT().Exit(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrNotInside).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "")
	})
}

func (s *GateHandlerTestSuite) TestOccupancy() {
	s.Run("success: returns both derivations", func() {
		s.mockQueries.EXPECT().CurrentOccupancy(gomock.Any()).
			Return(&queries.OccupancyView{
				InsideCount:   4,
				TodayEntries:  10,
				TodayExits:    6,
				TodayLogDelta: 4,
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/gate/occupancy", nil, "token")

		var resp resdto.OccupancyResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal(int64(4), resp.InsideCount)
		s.Equal(resp.InsideCount, resp.TodayLogDelta)
	})
}

func (s *GateHandlerTestSuite) TestLog() {
	s.Run("success: returns movements", func() {
		view := builder.NewGateScanBuilder().BuildLogView(gate.TypeEntry)
		s.mockQueries.EXPECT().ListLog(gomock.Any(), gomock.Any()).
			Return([]*queries.GateLogView{view}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/gate/log?gate_id=gate-1", nil, "token")

		var resp []*resdto.GateLogResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Len(resp, 1)
		s.Equal("entry", resp[0].Type)
	})

	s.Run("type filter is passed through", func() {
		s.mockQueries.EXPECT().ListLog(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, filter queries.GateLogFilter) ([]*queries.GateLogView, error) {
				s.Require().NotNil(filter.EntryType)
				s.Equal(gate.TypeExit, *filter.EntryType)
				return nil, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/gate/log?type=exit", nil, "token")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("unknown type filter", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/gate/log?type=reset", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("bad time bound", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/gate/log?from=yesterday", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("negative limit", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/gate/log?limit=-5", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}
