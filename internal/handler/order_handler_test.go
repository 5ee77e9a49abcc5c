package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"flower-shop/internal/model"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockOrderService is a mock implementation of OrderService.
type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) Create(ctx context.Context, req *model.OrderRequest) (*model.Order, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func (m *MockOrderService) GetByID(ctx context.Context, id string) (*model.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func (m *MockOrderService) List(ctx context.Context) ([]model.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Order), args.Error(1)
}

func (m *MockOrderService) UpdateStatus(ctx context.Context, id string, status model.OrderStatus) (*model.Order, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func (m *MockOrderService) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func testOrder() *model.Order {
	return &model.Order{
		ID:           "0c2d3f44-9b0e-4a58-a7d1-2f6a1f0b1234",
		CustomerName: "Rosa Bloom",
		Email:        "rosa@example.com",
		ShippingAddress: model.Address{
			Street:  "12 Petal Lane",
			City:    "Springfield",
			ZipCode: "12345",
		},
		Items: []model.OrderItem{
			{ProductID: "1", Quantity: 2, Price: 1000},
		},
		TotalAmount: 2000,
		Status:      model.StatusPending,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
}

func TestOrderHandler_Create(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    interface{}
		mockReturn     *model.Order
		mockError      error
		expectedStatus int
		expectService  bool
	}{
		{
			name: "success",
			requestBody: &model.OrderRequest{
				CustomerName: "Rosa Bloom",
				Email:        "rosa@example.com",
				Items:        []model.OrderItem{{ProductID: "1", Quantity: 2, Price: 1000}},
				TotalAmount:  2000,
			},
			mockReturn:     testOrder(),
			expectedStatus: http.StatusCreated,
			expectService:  true,
		},
		{
			name:           "invalid JSON",
			requestBody:    "{not json",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "empty order",
			requestBody:    &model.OrderRequest{CustomerName: "Rosa Bloom", Email: "rosa@example.com"},
			mockError:      model.ErrEmptyOrder,
			expectedStatus: http.StatusBadRequest,
			expectService:  true,
		},
		{
			name: "total mismatch",
			requestBody: &model.OrderRequest{
				CustomerName: "Rosa Bloom",
				Email:        "rosa@example.com",
				Items:        []model.OrderItem{{ProductID: "1", Quantity: 2, Price: 1000}},
				TotalAmount:  1,
			},
			mockError:      model.ErrTotalMismatch,
			expectedStatus: http.StatusBadRequest,
			expectService:  true,
		},
		{
			name: "unexpected service failure",
			requestBody: &model.OrderRequest{
				CustomerName: "Rosa Bloom",
				Email:        "rosa@example.com",
				Items:        []model.OrderItem{{ProductID: "1", Quantity: 2, Price: 1000}},
				TotalAmount:  2000,
			},
			mockError:      errors.New("boom"),
			expectedStatus: http.StatusInternalServerError,
			expectService:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockOrderService)
			h := NewOrderHandler(svc, zerolog.Nop())

			if tt.expectService {
				if tt.mockReturn != nil {
					svc.On("Create", mock.Anything, mock.Anything).Return(tt.mockReturn, nil)
				} else {
					svc.On("Create", mock.Anything, mock.Anything).Return(nil, tt.mockError)
				}
			}

			var body bytes.Buffer
			switch v := tt.requestBody.(type) {
			case string:
				body.WriteString(v)
			default:
				require.NoError(t, json.NewEncoder(&body).Encode(v))
			}

			req := httptest.NewRequest(http.MethodPost, "/api/orders", &body)
			rec := httptest.NewRecorder()

			h.Create(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)

			if tt.expectedStatus == http.StatusCreated {
				var got model.Order
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
				assert.Equal(t, tt.mockReturn.ID, got.ID)
				assert.Equal(t, model.StatusPending, got.Status)
			}
		})
	}
}

func TestOrderHandler_GetByID(t *testing.T) {
	svc := new(MockOrderService)
	h := NewOrderHandler(svc, zerolog.Nop())

	order := testOrder()
	svc.On("GetByID", mock.Anything, order.ID).Return(order, nil)

	req := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/api/orders/"+order.ID, nil), map[string]string{"id": order.ID})
	rec := httptest.NewRecorder()

	h.GetByID(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got model.Order
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, order.ID, got.ID)
}

func TestOrderHandler_GetByID_NotFound(t *testing.T) {
	svc := new(MockOrderService)
	h := NewOrderHandler(svc, zerolog.Nop())

	svc.On("GetByID", mock.Anything, "missing").Return(nil, nil)

	req := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/api/orders/missing", nil), map[string]string{"id": "missing"})
	rec := httptest.NewRecorder()

	h.GetByID(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var resp model.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, model.ErrCodeOrderNotFound, resp.Error)
}

func TestOrderHandler_List(t *testing.T) {
	svc := new(MockOrderService)
	h := NewOrderHandler(svc, zerolog.Nop())

	svc.On("List", mock.Anything).Return([]model.Order{*testOrder()}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	rec := httptest.NewRecorder()

	h.List(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got []model.Order
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Len(t, got, 1)
}

func TestOrderHandler_List_StorageError(t *testing.T) {
	svc := new(MockOrderService)
	h := NewOrderHandler(svc, zerolog.Nop())

	// No fallback read path exists; storage failures surface as 500.
	svc.On("List", mock.Anything).Return(nil, errors.New("connection refused"))

	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	rec := httptest.NewRecorder()

	h.List(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestOrderHandler_UpdateStatus(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		mockReturn     *model.Order
		mockError      error
		expectedStatus int
		expectService  bool
	}{
		{
			name:           "success",
			body:           `{"status": "shipped"}`,
			mockReturn:     &model.Order{ID: "abc", Status: model.StatusShipped},
			expectedStatus: http.StatusOK,
			expectService:  true,
		},
		{
			name:           "invalid status value",
			body:           `{"status": "teleported"}`,
			mockError:      model.ErrInvalidStatus,
			expectedStatus: http.StatusBadRequest,
			expectService:  true,
		},
		{
			name:           "not found",
			body:           `{"status": "cancelled"}`,
			expectedStatus: http.StatusNotFound,
			expectService:  true,
		},
		{
			name:           "invalid JSON",
			body:           `{`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockOrderService)
			h := NewOrderHandler(svc, zerolog.Nop())

			if tt.expectService {
				if tt.mockReturn != nil {
					svc.On("UpdateStatus", mock.Anything, "abc", mock.Anything).Return(tt.mockReturn, nil)
				} else {
					svc.On("UpdateStatus", mock.Anything, "abc", mock.Anything).Return(nil, tt.mockError)
				}
			}

			req := mux.SetURLVars(
				httptest.NewRequest(http.MethodPatch, "/api/orders/abc/status", bytes.NewBufferString(tt.body)),
				map[string]string{"id": "abc"},
			)
			rec := httptest.NewRecorder()

			h.UpdateStatus(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestOrderHandler_Delete(t *testing.T) {
	svc := new(MockOrderService)
	h := NewOrderHandler(svc, zerolog.Nop())

	svc.On("Delete", mock.Anything, "abc").Return(true, nil)
	svc.On("Delete", mock.Anything, "missing").Return(false, nil)

	req := mux.SetURLVars(httptest.NewRequest(http.MethodDelete, "/api/orders/abc", nil), map[string]string{"id": "abc"})
	rec := httptest.NewRecorder()
	h.Delete(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	req = mux.SetURLVars(httptest.NewRequest(http.MethodDelete, "/api/orders/missing", nil), map[string]string{"id": "missing"})
	rec = httptest.NewRecorder()
	h.Delete(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
