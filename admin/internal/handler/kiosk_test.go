package handler_test

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/Astemirdum/library-admin/admin/internal/errs"
	"github.com/Astemirdum/library-admin/admin/internal/model"

	service_mocks "github.com/Astemirdum/library-admin/admin/internal/handler/mocks"
)

func TestHandler_KioskReturn(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockLibraryService)

	var tests = []struct {
		name         string
		body         string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name: "ok",
			body: `{"reference_number":"TXN-20240102-ABCDEF12","items":["copy:1","research:2"]}`,
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().
					Return(gomock.Any(), model.ReturnRequest{ReferenceNumber: "TXN-20240102-ABCDEF12", Items: []model.ItemRef{{Kind: model.ItemCopy, ID: 1}, {Kind: model.ItemResearch, ID: 2}}}, nil).
					Return(model.ReturnResult{ReferenceNumber: "TXN-20240102-ABCDEF12", Returned: []model.Transaction{}}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"success":true,"data":{"reference_number":"TXN-20240102-ABCDEF12","returned":[]},"message":"0 items returned"}`,
			},
		},
		{
			name: "err. item mismatch",
			body: `{"reference_number":"TXN-1","items":["copy:1"]}`,
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().
					Return(gomock.Any(), gomock.Any(), nil).
					Return(model.ReturnResult{}, &errs.MismatchError{Expected: []string{"copy:1", "research:1"}, Provided: []string{"copy:1"}})
			},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"success":false,"message":"item set does not match active items","error":"Bad Request","expected":["copy:1","research:1"],"provided":["copy:1"]}`,
			},
		},
		{
			name: "err. unpaid penalty",
			body: `{"reference_number":"TXN-1","items":["copy:1"]}`,
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().
					Return(gomock.Any(), gomock.Any(), nil).
					Return(model.ReturnResult{}, &errs.UnpaidError{PenaltyIDs: []int64{9}})
			},
			response: response{
				expectedCode: http.StatusPaymentRequired,
				expectedBody: `{"success":false,"message":"unpaid penalty blocks return","error":"Payment Required","penalty_ids":[9]}`,
			},
		},
		{
			name:         "err. reference required",
			body:         `{"items":["copy:1"]}`,
			mockBehavior: func(r *service_mocks.MockLibraryService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"success":false,"message":"reference_number is required","error":"Bad Request"}`,
			},
		},
		{
			name:         "err. untyped item id",
			body:         `{"reference_number":"TXN-1","items":["5"]}`,
			mockBehavior: func(r *service_mocks.MockLibraryService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"success":false,"message":"item \"5\" must be copy:ID or research:ID","error":"Bad Request"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e, m := newTestRouter(t)
			r := jsonRequest(http.MethodPost, "/kiosk/return", tt.body)
			w := httptest.NewRecorder()

			tt.mockBehavior(m.library)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, body(w))
		})
	}
}

func TestHandler_KioskReturnMultipart(t *testing.T) {
	t.Parallel()
	e, m := newTestRouter(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("reference_number", "TXN-1"))
	require.NoError(t, mw.WriteField("items", "copy:3, research:3"))
	require.NoError(t, mw.WriteField("items", `["copy:7"]`))
	fw, err := mw.CreateFormFile("receipt", "receipt.png")
	require.NoError(t, err)
	_, err = fw.Write([]byte("png-bytes"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	m.library.EXPECT().
		Return(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req model.ReturnRequest, receipt *model.Upload) (model.ReturnResult, error) {
			require.Equal(t, "TXN-1", req.ReferenceNumber)
			require.Equal(t, []model.ItemRef{
				{Kind: model.ItemCopy, ID: 3},
				{Kind: model.ItemResearch, ID: 3},
				{Kind: model.ItemCopy, ID: 7},
			}, req.Items)
			require.NotNil(t, receipt)
			require.Equal(t, "receipt.png", receipt.Name)
			require.Equal(t, []byte("png-bytes"), receipt.Data)
			return model.ReturnResult{ReferenceNumber: "TXN-1", Returned: []model.Transaction{}, ReceiptImage: "receipts/TXN-1.png"}, nil
		})

	r := httptest.NewRequest(http.MethodPost, "/kiosk/return", &buf)
	r.Header.Set(echo.HeaderContentType, mw.FormDataContentType())
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, `{"success":true,"data":{"reference_number":"TXN-1","returned":[],"receipt_image":"receipts/TXN-1.png"},"message":"0 items returned"}`, body(w))
}

func TestHandler_KioskBorrow(t *testing.T) {
	t.Parallel()
	e, m := newTestRouter(t)

	m.library.EXPECT().
		Borrow(gomock.Any(), model.BorrowRequest{UserID: 5, QRCodes: []string{"a", "b"}}).
		Return(model.BorrowResult{}, errs.ErrUnavailable)

	w := httptest.NewRecorder()
	e.ServeHTTP(w, jsonRequest(http.MethodPost, "/kiosk/borrow", `{"user_id":5,"qr_codes":["a","b"]}`))

	require.Equal(t, http.StatusConflict, w.Code)
	require.Equal(t, `{"success":false,"message":"item is not available","error":"Conflict"}`, body(w))
}
