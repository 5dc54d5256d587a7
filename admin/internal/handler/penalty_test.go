package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/Astemirdum/library-admin/admin/internal/errs"
	"github.com/Astemirdum/library-admin/admin/internal/model"

	service_mocks "github.com/Astemirdum/library-admin/admin/internal/handler/mocks"
)

func ptr[T any](v T) *T { return &v }

func TestHandler_WaivePenalty(t *testing.T) {
	t.Parallel()
	type input struct {
		id    string
		body  string
		admin bool
	}
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockPenaltyService)

	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		input        input
		response     response
	}{
		{
			name: "ok",
			mockBehavior: func(r *service_mocks.MockPenaltyService) {
				r.EXPECT().
					Waive(gomock.Any(), int64(7), "lost card", "librarian").
					Return(model.Penalty{
						ID:            7,
						TransactionID: 3,
						UserID:        2,
						Fine:          decimal.NewFromInt(5),
						Status:        ptr(string(model.PenaltyWaived)),
						WaiveReason:   ptr("lost card"),
						WaivedBy:      ptr("librarian"),
					}, nil)
			},
			input: input{id: "7", body: `{"reason":"lost card"}`, admin: true},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"success":true,"data":{"id":7,"transaction_id":3,"user_id":2,"fine":"5","status":"Waived","waive_reason":"lost card","waived_by":"librarian","updated_at":"0001-01-01T00:00:00Z"},"message":"penalty waived"}`,
			},
		},
		{
			name: "err. already settled",
			mockBehavior: func(r *service_mocks.MockPenaltyService) {
				r.EXPECT().
					Waive(gomock.Any(), int64(7), "", "librarian").
					Return(model.Penalty{}, errs.ErrAlreadySettled)
			},
			input: input{id: "7", body: `{}`, admin: true},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"success":false,"message":"penalty already settled","error":"Bad Request"}`,
			},
		},
		{
			name: "err. not found",
			mockBehavior: func(r *service_mocks.MockPenaltyService) {
				r.EXPECT().
					Waive(gomock.Any(), int64(8), "", "librarian").
					Return(model.Penalty{}, errors.Wrap(errs.ErrNotFound, "penalty"))
			},
			input: input{id: "8", body: `{}`, admin: true},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"success":false,"message":"penalty: not found","error":"Not Found"}`,
			},
		},
		{
			name:         "err. bad id",
			mockBehavior: func(r *service_mocks.MockPenaltyService) {},
			input:        input{id: "abc", body: `{}`, admin: true},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"success":false,"message":"id must be a positive integer","error":"Bad Request"}`,
			},
		},
		{
			name:         "err. not admin",
			mockBehavior: func(r *service_mocks.MockPenaltyService) {},
			input:        input{id: "7", body: `{}`},
			response: response{
				expectedCode: http.StatusForbidden,
				expectedBody: `{"success":false,"message":"admin role required","error":"Forbidden"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e, m := newTestRouter(t)

			r := jsonRequest(http.MethodPut, "/api/penalties/"+tt.input.id+"/waive", tt.input.body)
			if tt.input.admin {
				r = asAdmin(r)
			}
			w := httptest.NewRecorder()

			tt.mockBehavior(m.penalty)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, body(w))
		})
	}
}

func TestHandler_PayPenalty(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	var tests = []struct {
		name         string
		body         string
		mockBehavior func(r *service_mocks.MockPenaltyService)
		response     response
	}{
		{
			name: "ok. admin defaults to caller",
			mockBehavior: func(r *service_mocks.MockPenaltyService) {
				r.EXPECT().
					Pay(gomock.Any(), int64(4), model.PaymentInfo{Admin: "librarian"}).
					Return(model.PayResult{Penalty: model.Penalty{ID: 4, Fine: decimal.NewFromInt(10), Status: ptr(string(model.PenaltyPaid))}}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"success":true,"data":{"penalty":{"id":4,"transaction_id":0,"user_id":0,"fine":"10","status":"Paid","updated_at":"0001-01-01T00:00:00Z"},"already_paid":false},"message":"penalty paid"}`,
			},
		},
		{
			name: "ok. already paid",
			body: `{"method":"cash","admin":"desk"}`,
			mockBehavior: func(r *service_mocks.MockPenaltyService) {
				r.EXPECT().
					Pay(gomock.Any(), int64(4), model.PaymentInfo{Method: "cash", Admin: "desk"}).
					Return(model.PayResult{Penalty: model.Penalty{ID: 4, Fine: decimal.NewFromInt(10), Status: ptr(string(model.PenaltyPaid))}, AlreadyPaid: true}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"success":true,"data":{"penalty":{"id":4,"transaction_id":0,"user_id":0,"fine":"10","status":"Paid","updated_at":"0001-01-01T00:00:00Z"},"already_paid":true},"message":"penalty was already paid"}`,
			},
		},
		{
			name: "err. waived",
			mockBehavior: func(r *service_mocks.MockPenaltyService) {
				r.EXPECT().
					Pay(gomock.Any(), int64(4), gomock.Any()).
					Return(model.PayResult{}, errors.Wrap(errs.ErrAlreadySettled, "penalty is waived"))
			},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"success":false,"message":"penalty is waived: penalty already settled","error":"Bad Request"}`,
			},
		},
		{
			name: "err. internal",
			mockBehavior: func(r *service_mocks.MockPenaltyService) {
				r.EXPECT().
					Pay(gomock.Any(), int64(4), gomock.Any()).
					Return(model.PayResult{}, errors.New("db internal"))
			},
			response: response{
				expectedCode: http.StatusInternalServerError,
				expectedBody: `{"success":false,"message":"db internal","error":"Internal Server Error"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e, m := newTestRouter(t)
			r := asAdmin(jsonRequest(http.MethodPut, "/api/penalties/4/pay", tt.body))
			w := httptest.NewRecorder()

			tt.mockBehavior(m.penalty)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, body(w))
		})
	}
}

func TestHandler_MarkLost(t *testing.T) {
	t.Parallel()
	e, m := newTestRouter(t)
	m.penalty.EXPECT().
		MarkLost(gomock.Any(), []int64{1, 2}).
		Return(model.BatchReport{Processed: 1, Failed: 1}, nil)

	w := httptest.NewRecorder()
	e.ServeHTTP(w, asAdmin(jsonRequest(http.MethodPost, "/api/penalties/mark-as-lost", `{"transaction_ids":[1,2]}`)))
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, body(w), `"message":"1 marked as lost, 1 failed"`)

	w = httptest.NewRecorder()
	e.ServeHTTP(w, asAdmin(jsonRequest(http.MethodPost, "/api/penalties/mark-as-lost", `{"transaction_ids":[]}`)))
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, `{"success":false,"message":"transaction_ids must be at least 1","error":"Bad Request"}`, body(w))
}
