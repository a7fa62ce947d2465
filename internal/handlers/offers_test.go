package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akosachev/panelshop/internal/models"
	"github.com/akosachev/panelshop/internal/services"
)

// validationError produces a real validator.ValidationErrors value so the
// handler's errors.As branch is exercised.
func validationError(t *testing.T) error {
	t.Helper()
	err := validator.New().Struct(services.OfferInput{})
	require.Error(t, err)
	return err
}

func newOfferRouter(svc OfferCatalog) http.Handler {
	r := chi.NewRouter()
	r.Get("/offers", NewListOffersHandler(svc))
	r.Post("/offers", NewCreateOfferHandler(svc))
	r.Get("/offers/{id}", NewGetOfferHandler(svc))
	r.Put("/offers/{id}", NewUpdateOfferHandler(svc))
	r.Delete("/offers/{id}", NewDeleteOfferHandler(svc))
	return r
}

func TestListOffersHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockOfferCatalog(ctrl)
	svc.EXPECT().List(gomock.Any()).Return([]models.Offer{
		{ID: 1, Name: "Basic", Price: 10, DurationDays: 30, ExternalPlanID: 100},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/offers", nil)
	rr := httptest.NewRecorder()
	newOfferRouter(svc).ServeHTTP(rr, req)

	assert.Equal(t, 200, rr.Code)
	var got []models.Offer
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Basic", got[0].Name)
}

func TestGetOfferHandler(t *testing.T) {
	tests := []struct {
		name         string
		url          string
		mockSetup    func(m *MockOfferCatalog)
		expectedCode int
	}{
		{
			name: "found",
			url:  "/offers/1",
			mockSetup: func(m *MockOfferCatalog) {
				m.EXPECT().Get(gomock.Any(), int64(1)).Return(models.Offer{ID: 1, Name: "Basic"}, nil)
			},
			expectedCode: 200,
		},
		{
			name: "not found",
			url:  "/offers/9",
			mockSetup: func(m *MockOfferCatalog) {
				m.EXPECT().Get(gomock.Any(), int64(9)).Return(models.Offer{}, services.ErrOfferNotFound)
			},
			expectedCode: 404,
		},
		{
			name:         "bad id",
			url:          "/offers/abc",
			mockSetup:    func(m *MockOfferCatalog) {},
			expectedCode: 400,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewMockOfferCatalog(ctrl)
			tt.mockSetup(svc)

			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			rr := httptest.NewRecorder()
			newOfferRouter(svc).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestCreateOfferHandler(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		mockSetup    func(t *testing.T, m *MockOfferCatalog)
		expectedCode int
	}{
		{
			name: "created",
			body: `{"name": "Basic", "price": 10, "duration_days": 30, "external_plan_id": 100}`,
			mockSetup: func(t *testing.T, m *MockOfferCatalog) {
				m.EXPECT().
					Create(gomock.Any(), services.OfferInput{Name: "Basic", Price: 10, DurationDays: 30, ExternalPlanID: 100}).
					Return(models.Offer{ID: 1, Name: "Basic", Price: 10, DurationDays: 30, ExternalPlanID: 100}, nil)
			},
			expectedCode: 201,
		},
		{
			name: "validation failure",
			body: `{"name": "", "price": -1}`,
			mockSetup: func(t *testing.T, m *MockOfferCatalog) {
				m.EXPECT().Create(gomock.Any(), gomock.Any()).Return(models.Offer{}, validationError(t))
			},
			expectedCode: 400,
		},
		{
			name:         "invalid json",
			body:         `{"name": `,
			mockSetup:    func(t *testing.T, m *MockOfferCatalog) {},
			expectedCode: 400,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewMockOfferCatalog(ctrl)
			tt.mockSetup(t, svc)

			req := httptest.NewRequest(http.MethodPost, "/offers", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()
			newOfferRouter(svc).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestUpdateOfferHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockOfferCatalog(ctrl)
	svc.EXPECT().
		Update(gomock.Any(), int64(1), services.OfferInput{Name: "Pro", Price: 20, DurationDays: 30, ExternalPlanID: 101}).
		Return(models.Offer{ID: 1, Name: "Pro", Price: 20, DurationDays: 30, ExternalPlanID: 101}, nil)

	body := `{"name": "Pro", "price": 20, "duration_days": 30, "external_plan_id": 101}`
	req := httptest.NewRequest(http.MethodPut, "/offers/1", bytes.NewBufferString(body))
	rr := httptest.NewRecorder()
	newOfferRouter(svc).ServeHTTP(rr, req)

	assert.Equal(t, 200, rr.Code)
	var got models.Offer
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, "Pro", got.Name)
}

func TestDeleteOfferHandler(t *testing.T) {
	tests := []struct {
		name         string
		url          string
		mockSetup    func(m *MockOfferCatalog)
		expectedCode int
	}{
		{
			name: "deleted",
			url:  "/offers/1",
			mockSetup: func(m *MockOfferCatalog) {
				m.EXPECT().Delete(gomock.Any(), int64(1)).Return(nil)
			},
			expectedCode: 204,
		},
		{
			name: "not found",
			url:  "/offers/9",
			mockSetup: func(m *MockOfferCatalog) {
				m.EXPECT().Delete(gomock.Any(), int64(9)).Return(services.ErrOfferNotFound)
			},
			expectedCode: 404,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewMockOfferCatalog(ctrl)
			tt.mockSetup(svc)

			req := httptest.NewRequest(http.MethodDelete, tt.url, nil)
			rr := httptest.NewRecorder()
			newOfferRouter(svc).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}
