package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/openbookmanager/openbookmanager/config"
	"github.com/openbookmanager/openbookmanager/internal/errs"
	"github.com/openbookmanager/openbookmanager/internal/handler"
	"github.com/openbookmanager/openbookmanager/internal/model"
	"github.com/openbookmanager/openbookmanager/pkg/validate"

	service_mocks "github.com/openbookmanager/openbookmanager/internal/handler/mocks"
)

func newTestHandler(t *testing.T) (*handler.Handler, *service_mocks.MockCatalogService, *service_mocks.MockImportService) {
	t.Helper()
	c := gomock.NewController(t)
	t.Cleanup(c.Finish)
	catalog := service_mocks.NewMockCatalogService(c)
	imp := service_mocks.NewMockImportService(c)
	exp := service_mocks.NewMockExportService(c)
	log := zap.NewExample().Named("test")
	h := handler.New(catalog, imp, exp, config.Admin{Username: "admin", Password: "secret"}, log)
	return h, catalog, imp
}

func TestHandler_GetBooks(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockCatalogService)

	var tests = []struct {
		name         string
		target       string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name:   "ok",
			target: "/books?search=go&sortBy=tag&page=1&size=20",
			mockBehavior: func(r *service_mocks.MockCatalogService) {
				r.EXPECT().
					ListBooks(context.Background(), model.BookFilter{
						Search: "go",
						SortBy: "tag",
						Page:   1,
						Size:   20,
					}).
					Return(model.ListBooks{
						Paging: model.Paging{Page: 1, PageSize: 20, TotalElements: 1},
						Items: []model.BookListItem{
							{
								Book: model.Book{
									ID:               1,
									Title:            "The Go Programming Language",
									CategoryCode:     "PH",
									MainCategoryCode: "WR",
									NumberInCategory: 42,
								},
								Tag:     "WR PH 0042",
								Authors: "Alan Donovan, Brian Kernighan",
							},
						},
					}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"page":1,"pageSize":20,"totalElements":1,"items":[{"id":1,"title":"The Go Programming Language","categoryCode":"PH","mainCategoryCode":"WR","numberInCategory":42,"createdAt":"0001-01-01T00:00:00Z","tag":"WR PH 0042","authors":"Alan Donovan, Brian Kernighan"}]}`,
			},
		},
		{
			name:   "err. internal",
			target: "/books",
			mockBehavior: func(r *service_mocks.MockCatalogService) {
				r.EXPECT().
					ListBooks(context.Background(), model.BookFilter{}).
					Return(model.ListBooks{}, errors.New("db internal"))
			},
			response: response{
				expectedCode: http.StatusInternalServerError,
				expectedBody: `{"message":"db internal"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, catalog, _ := newTestHandler(t)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.GET("/books", h.GetBooks)

			r := httptest.NewRequest(http.MethodGet, tt.target, http.NoBody)
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(catalog)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_Scan(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockImportService)

	var tests = []struct {
		name         string
		body         string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name: "ok",
			body: `{"isbn":"978-0-13-468599-1"}`,
			mockBehavior: func(r *service_mocks.MockImportService) {
				r.EXPECT().
					Scan(context.Background(), "978-0-13-468599-1").
					Return(model.ScannedBook{
						ID:     1,
						ISBN:   "9780134685991",
						Title:  "The Go Programming Language",
						Status: model.ScanStatusPending,
					}, nil)
			},
			response: response{
				expectedCode: http.StatusCreated,
				expectedBody: `{"id":1,"isbn":"9780134685991","title":"The Go Programming Language","status":"pending","scannedAt":"0001-01-01T00:00:00Z"}`,
			},
		},
		{
			name:         "err. missing isbn",
			body:         `{}`,
			mockBehavior: func(r *service_mocks.MockImportService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"Key: 'ScanRequest.ISBN' Error:Field validation for 'ISBN' failed on the 'required' tag"}`,
			},
		},
		{
			name: "err. invalid isbn",
			body: `{"isbn":"12-34"}`,
			mockBehavior: func(r *service_mocks.MockImportService) {
				r.EXPECT().
					Scan(context.Background(), "12-34").
					Return(model.ScannedBook{}, errs.ErrInvalidISBN)
			},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"invalid ISBN format"}`,
			},
		},
		{
			name: "err. already scanned",
			body: `{"isbn":"9780134685991"}`,
			mockBehavior: func(r *service_mocks.MockImportService) {
				r.EXPECT().
					Scan(context.Background(), "9780134685991").
					Return(model.ScannedBook{}, errs.ErrAlreadyScanned)
			},
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"already_scanned"}`,
			},
		},
		{
			name: "err. already in collection",
			body: `{"isbn":"9780134685991"}`,
			mockBehavior: func(r *service_mocks.MockImportService) {
				r.EXPECT().
					Scan(context.Background(), "9780134685991").
					Return(model.ScannedBook{}, &errs.DuplicateBookError{
						BookID: 11,
						Title:  "The Go Programming Language",
					})
			},
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":{"bookId":11,"error":"already_in_collection","title":"The Go Programming Language"}}`,
			},
		},
		{
			name: "err. metadata unavailable",
			body: `{"isbn":"9780134685991"}`,
			mockBehavior: func(r *service_mocks.MockImportService) {
				r.EXPECT().
					Scan(context.Background(), "9780134685991").
					Return(model.ScannedBook{}, errs.ErrMetadataUnavailable)
			},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"book metadata unavailable"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, _, imp := newTestHandler(t)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.POST("/scan", h.Scan)

			r := httptest.NewRequest(http.MethodPost, "/scan", strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(imp)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_PreviewTag(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockImportService)

	var tests = []struct {
		name         string
		body         string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name: "ok",
			body: `{"categoryCode":"PH"}`,
			mockBehavior: func(r *service_mocks.MockImportService) {
				r.EXPECT().
					PreviewTag(context.Background(), "PH").
					Return(model.PreviewTagResponse{Tag: "WR PH 0042", NextNumber: 42}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"tag":"WR PH 0042","nextNumber":42}`,
			},
		},
		{
			name: "err. unknown category",
			body: `{"categoryCode":"ZZ"}`,
			mockBehavior: func(r *service_mocks.MockImportService) {
				r.EXPECT().
					PreviewTag(context.Background(), "ZZ").
					Return(model.PreviewTagResponse{}, errs.Validation("categoryCode", "is not a valid category"))
			},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"validation: categoryCode is not a valid category"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, _, imp := newTestHandler(t)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.POST("/import/preview-tag", h.PreviewTag)

			r := httptest.NewRequest(http.MethodPost, "/import/preview-tag", strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(imp)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_Login(t *testing.T) {
	t.Parallel()
	h, _, _ := newTestHandler(t)

	e := echo.New()
	e.Validator = validate.NewCustomValidator()
	e.POST("/auth/login", h.Login)

	t.Run("ok", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/auth/login",
			strings.NewReader(`{"username":"admin","password":"secret"}`))
		r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		w := httptest.NewRecorder()

		e.ServeHTTP(w, r)

		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Body.String(), "accessToken")
	})

	t.Run("err. wrong password", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/auth/login",
			strings.NewReader(`{"username":"admin","password":"nope"}`))
		r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		w := httptest.NewRecorder()

		e.ServeHTTP(w, r)

		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
