//go:build unit

package api_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"studio-booking/internal/domain/hold"
	"studio-booking/internal/domain/schedule"
	"studio-booking/internal/handler/api"
	reqdto "studio-booking/internal/handler/dto/request"
	resdto "studio-booking/internal/handler/dto/response"
	"studio-booking/internal/usecase/commands"
	"studio-booking/tests/common/httptest"
	"studio-booking/tests/common/testutil"
	commandsmock "studio-booking/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var slotStart = time.Date(2025, 3, 3, 10, 0, 0, 0, time.UTC)

type HoldHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockHoldCommands
	handler      *api.HoldHandler
}

func (s *HoldHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockHoldCommands(s.mockCtrl)
	s.handler = api.NewHoldHandler(s.mockCommands)

	// Mock optional authentication: a bearer token identifies the caller,
	// its absence leaves the request anonymous.
	optionalAuth := func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			c.Set("customer_id", uuid.New())
		}
		c.Next()
	}

	s.router.POST("/holds", optionalAuth, s.handler.CreateHold)
	s.router.POST("/holds/bundle", optionalAuth, s.handler.CreateBundleHold)
}

func (s *HoldHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestHoldHandlerSuite(t *testing.T) {
	suite.Run(t, new(HoldHandlerTestSuite))
}

func (s *HoldHandlerTestSuite) sampleHold() *hold.Hold {
	ival, err := schedule.NewInterval(slotStart, time.Hour, 30*time.Minute)
	s.Require().NoError(err)
	h, err := hold.NewSingle("sauna", ival, nil, 2500, slotStart.Add(-3*time.Hour), 12*time.Minute)
	s.Require().NoError(err)
	return h
}

type errorBody struct {
	Error struct {
		Message string `json:"message"`
		Reason  string `json:"reason"`
	} `json:"error"`
}

// ================================================================================
// TestCreateHold
// ================================================================================

func (s *HoldHandlerTestSuite) TestCreateHold() {
	url := "/holds"
	reqBody := map[string]any{"service_id": "sauna", "start": slotStart.Format(time.RFC3339)}

	s.Run("success: returns 201 Created with HoldResponse", func() {
		created := s.sampleHold()
		s.mockCommands.EXPECT().CreateSingle(gomock.Any(), gomock.Any()).
			Return(created, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.HoldResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Content-Type": "application/json; charset=utf-8"})
		s.Equal(created.ID(), response.ID)
		s.Equal("sauna", response.ServiceID)
		s.Equal(int64(2500), response.ChargeCents)
	})

	s.Run("success: bearer token binds the hold to the caller", func() {
		created := s.sampleHold()
		s.mockCommands.EXPECT().CreateSingle(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p commands.CreateSingleParams) (*hold.Hold, error) {
				s.NotNil(p.CustomerID)
				return created, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		reqDTO := reqdto.CreateHoldRequest{ServiceID: "sauna", Start: slotStart}
		cases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{name: "missing service_id", mutate: testutil.Field("service_id", nil)},
			{name: "missing start", mutate: testutil.Field("start", nil)},
			{name: "malformed start", mutate: testutil.Field("start", "tomorrow")},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqDTO, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses and reasons", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedReason string
		}{
			{
				name:           "unknown service",
				commandsError:  commands.ErrUnknownService,
				expectedStatus: http.StatusNotFound,
			},
			{
				name:           "unknown customer",
				commandsError:  commands.ErrUnknownCustomer,
				expectedStatus: http.StatusUnauthorized,
			},
			{
				name:           "outside business hours",
				commandsError:  commands.ErrOutsideHours,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedReason: api.ReasonOutsideHours,
			},
			{
				name:           "past same-day cutoff",
				commandsError:  commands.ErrPastCutoff,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedReason: api.ReasonPastCutoff,
			},
			{
				name:           "slot unavailable",
				commandsError:  commands.ErrSlotUnavailable,
				expectedStatus: http.StatusConflict,
				expectedReason: api.ReasonSlotUnavailable,
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("store failure"),
				expectedStatus: http.StatusInternalServerError,
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateSingle(gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				s.Equal(tc.expectedStatus, rec.Code)

				var body errorBody
				s.Require().NoError(httptest.DecodeResponseBody(s.T(), rec.Body, &body))
				s.Equal(tc.expectedReason, body.Error.Reason)
			})
		}
	})
}

// ================================================================================
// TestCreateBundleHold
// ================================================================================

func (s *HoldHandlerTestSuite) TestCreateBundleHold() {
	url := "/holds/bundle"
	reqBody := map[string]any{
		"bundle_id": "revive-ritual",
		"selections": []map[string]any{
			{"service_id": "sauna", "start": slotStart.Format(time.RFC3339)},
			{"service_id": "massage", "start": slotStart.Add(3 * time.Hour).Format(time.RFC3339)},
		},
	}

	sampleGroup := func() []*hold.Hold {
		sauna, err := schedule.NewInterval(slotStart, time.Hour, 30*time.Minute)
		s.Require().NoError(err)
		massage, err := schedule.NewInterval(slotStart.Add(3*time.Hour), 45*time.Minute, 15*time.Minute)
		s.Require().NoError(err)
		holds, err := hold.NewGroup("revive-ritual", []hold.Member{
			{ServiceID: "sauna", Interval: sauna, ChargeCents: 5800},
			{ServiceID: "massage", Interval: massage},
		}, nil, slotStart.Add(-3*time.Hour), 12*time.Minute)
		s.Require().NoError(err)
		return holds
	}

	s.Run("success: returns 201 Created with BundleHoldResponse", func() {
		created := sampleGroup()
		s.mockCommands.EXPECT().CreateBundle(gomock.Any(), gomock.Any()).
			Return(created, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.BundleHoldResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal("revive-ritual", response.BundleID)
		s.Equal(created[0].GroupID(), response.GroupID)
		s.Equal(int64(5800), response.TotalCents)
		s.Len(response.Holds, 2)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name string
			body map[string]any
		}{
			{name: "missing bundle_id", body: map[string]any{"selections": reqBody["selections"]}},
			{name: "empty selections", body: map[string]any{"bundle_id": "revive-ritual", "selections": []map[string]any{}}},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, tc.body, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
		}{
			{
				name:           "unknown bundle",
				commandsError:  commands.ErrUnknownBundle,
				expectedStatus: http.StatusNotFound,
			},
			{
				name:           "selection mismatch",
				commandsError:  commands.ErrBundleSelectionMismatch,
				expectedStatus: http.StatusBadRequest,
			},
			{
				name:           "one member conflicts",
				commandsError:  commands.ErrSlotUnavailable,
				expectedStatus: http.StatusConflict,
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateBundle(gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, "")
			})
		}
	})
}
