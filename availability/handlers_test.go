// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package availability_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/openp2ptrade/dispute-node/agent"
	"github.com/openp2ptrade/dispute-node/availability"
	"github.com/openp2ptrade/dispute-node/lvldb"
	"github.com/openp2ptrade/dispute-node/metrics"
	"github.com/openp2ptrade/dispute-node/selection"
	"github.com/openp2ptrade/dispute-node/statistics"
	"github.com/openp2ptrade/dispute-node/store"
	"github.com/stretchr/testify/suite"
	"go.opentelemetry.io/otel/metric/noop"
)

type selectResponse struct {
	Role         string             `json:"role"`
	DisputeAgent agent.DisputeAgent `json:"disputeAgent"`
}

type HandlerTestSuite struct {
	suite.Suite
	db     *lvldb.LVLDB
	router *gin.Engine
}

func TestRunHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	db, err := lvldb.NewLvlDB(filepath.Join(s.T().TempDir(), "lvldbdata"))
	s.Nil(err)
	s.db = db

	selectionMetrics, err := metrics.NewSelectionMetrics(noop.NewMeterProvider().Meter("test"), "test", "node-1", 0)
	s.Nil(err)

	arbitrators := agent.NewManager[*agent.Arbitrator]()
	arbitrators.Add(agent.NewArbitrator(agent.DisputeAgent{NodeAddress: "abcd.onion:9999"}))
	arbitrators.Add(agent.NewArbitrator(agent.DisputeAgent{NodeAddress: "wxyz.onion:9999"}))
	mediators := agent.NewManager[*agent.Mediator]()
	history := statistics.NewManager()

	service := availability.NewService(
		"",
		selection.NewSelector[*agent.Arbitrator](selection.LeastUsed, history, arbitrators, nil),
		selection.NewSelector[*agent.Mediator](selection.LeastUsed, history, mediators, nil),
		store.NewSelectionStore(db),
		selectionMetrics,
	)

	s.router = gin.New()
	availability.NewHandler(service).RegisterRoutes(s.router.Group("/v1"))
}

func (s *HandlerTestSuite) TearDownTest() {
	_ = s.db.Close()
}

func (s *HandlerTestSuite) do(method, path string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *HandlerTestSuite) Test_Select_RecordsSelection() {
	w := s.do(http.MethodPost, "/v1/offers/offer-1/disputeagents/arbitrator/select", nil)

	s.Equal(http.StatusOK, w.Code)
	resp := selectResponse{}
	s.Nil(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("arbitrator", resp.Role)
	s.Equal(agent.NodeAddress("abcd.onion:9999"), resp.DisputeAgent.NodeAddress)

	w = s.do(http.MethodGet, "/v1/offers/offer-1/disputeagents/arbitrator", nil)

	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), "abcd.onion:9999")
}

func (s *HandlerTestSuite) Test_ReportFailure_NextSelectionSkipsAgent() {
	body, _ := json.Marshal(availability.FailureRequest{Address: " abcd.onion:9999 "})
	w := s.do(http.MethodPost, "/v1/offers/offer-1/disputeagents/arbitrator/failures", body)
	s.Equal(http.StatusAccepted, w.Code)

	w = s.do(http.MethodPost, "/v1/offers/offer-1/disputeagents/arbitrator/select", nil)

	s.Equal(http.StatusOK, w.Code)
	resp := selectResponse{}
	s.Nil(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal(agent.NodeAddress("wxyz.onion:9999"), resp.DisputeAgent.NodeAddress)
}

func (s *HandlerTestSuite) Test_ReportFailure_OtherOfferUnaffected() {
	body, _ := json.Marshal(availability.FailureRequest{Address: "abcd.onion:9999"})
	w := s.do(http.MethodPost, "/v1/offers/offer-1/disputeagents/arbitrator/failures", body)
	s.Equal(http.StatusAccepted, w.Code)

	w = s.do(http.MethodPost, "/v1/offers/offer-2/disputeagents/arbitrator/select", nil)

	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), "abcd.onion:9999")
}

func (s *HandlerTestSuite) Test_ReportFailure_InvalidBody() {
	w := s.do(http.MethodPost, "/v1/offers/offer-1/disputeagents/arbitrator/failures", []byte("{"))

	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *HandlerTestSuite) Test_ReportFailure_InvalidAddress() {
	body, _ := json.Marshal(availability.FailureRequest{Address: "no-port"})
	w := s.do(http.MethodPost, "/v1/offers/offer-1/disputeagents/arbitrator/failures", body)

	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *HandlerTestSuite) Test_Select_EmptyPool() {
	w := s.do(http.MethodPost, "/v1/offers/offer-1/disputeagents/mediator/select", nil)

	s.Equal(http.StatusNotFound, w.Code)
	s.Contains(w.Body.String(), "no_dispute_agent")
}

func (s *HandlerTestSuite) Test_Select_UnknownRole() {
	w := s.do(http.MethodPost, "/v1/offers/offer-1/disputeagents/judge/select", nil)

	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *HandlerTestSuite) Test_GetSelection_NotSelected() {
	w := s.do(http.MethodGet, "/v1/offers/offer-1/disputeagents/mediator", nil)

	s.Equal(http.StatusNotFound, w.Code)
}
