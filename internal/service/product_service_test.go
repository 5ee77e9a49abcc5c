package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"flower-shop/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockProductRepository is a mock implementation of ProductRepository.
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) GetAll(ctx context.Context, filter model.ProductFilter) ([]model.Product, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockProductRepository) GetByID(ctx context.Context, id string) (*model.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductRepository) Create(ctx context.Context, product *model.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Update(ctx context.Context, id string, input *model.ProductInput) (*model.Product, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductRepository) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func newProductService(repo *MockProductRepository) ProductService {
	return NewProductService(repo, time.Second, zerolog.Nop())
}

func validProductInput() *model.ProductInput {
	return &model.ProductInput{
		Name:        "Classic Red Roses",
		Description: "A dozen red roses.",
		Price:       5999,
		Category:    model.CategoryRoses,
		ImageURL:    "/images/red-roses.png",
		InStock:     true,
		Featured:    true,
	}
}

func TestProductService_List(t *testing.T) {
	repo := new(MockProductRepository)
	svc := newProductService(repo)

	want := []model.Product{{ID: "1", Name: "Roses"}}
	repo.On("GetAll", mock.Anything, mock.Anything).Return(want, nil)

	got, err := svc.List(context.Background(), model.ProductFilter{})
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestProductService_List_EmptyResultStaysEmpty(t *testing.T) {
	repo := new(MockProductRepository)
	svc := newProductService(repo)

	repo.On("GetAll", mock.Anything, mock.Anything).Return([]model.Product{}, nil)

	got, err := svc.List(context.Background(), model.ProductFilter{})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestProductService_List_FallsBackToMockCatalogue(t *testing.T) {
	repo := new(MockProductRepository)
	svc := newProductService(repo)

	repo.On("GetAll", mock.Anything, mock.Anything).Return(nil, errors.New("connection refused"))

	got, err := svc.List(context.Background(), model.ProductFilter{})
	require.NoError(t, err)
	require.NotEmpty(t, got)

	// Every mock catalogue entry carries a valid category, including the
	// ones the original data set had drifted on.
	for _, p := range got {
		assert.True(t, p.Category.Valid(), "category %q", p.Category)
	}
}

func TestProductService_List_FallbackHonoursFilter(t *testing.T) {
	repo := new(MockProductRepository)
	svc := newProductService(repo)

	repo.On("GetAll", mock.Anything, mock.Anything).Return(nil, errors.New("connection refused"))

	got, err := svc.List(context.Background(), model.ProductFilter{Category: "roses", Featured: true, Limit: 1})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, model.CategoryRoses, got[0].Category)
	assert.True(t, got[0].Featured)
}

func TestProductService_GetByID_FallsBackToMockCatalogue(t *testing.T) {
	repo := new(MockProductRepository)
	svc := newProductService(repo)

	repo.On("GetByID", mock.Anything, "1").Return(nil, errors.New("connection refused"))
	repo.On("GetByID", mock.Anything, "no-such-id").Return(nil, errors.New("connection refused"))

	got, err := svc.GetByID(context.Background(), "1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Classic Red Roses", got.Name)

	// Unknown ids stay a 404 even on the fallback path.
	got, err = svc.GetByID(context.Background(), "no-such-id")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestProductService_Create(t *testing.T) {
	repo := new(MockProductRepository)
	svc := newProductService(repo)

	repo.On("Create", mock.Anything, mock.AnythingOfType("*model.Product")).Return(nil)

	got, err := svc.Create(context.Background(), validProductInput())
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.NotEmpty(t, got.ID)
	assert.False(t, got.CreatedAt.IsZero())

	repo.AssertExpectations(t)
}

func TestProductService_Create_Validation(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*model.ProductInput)
		wantCode string
	}{
		{
			name:     "missing name",
			mutate:   func(p *model.ProductInput) { p.Name = "" },
			wantCode: model.ErrCodeMissingField,
		},
		{
			name:     "missing description",
			mutate:   func(p *model.ProductInput) { p.Description = "" },
			wantCode: model.ErrCodeMissingField,
		},
		{
			name:     "negative price",
			mutate:   func(p *model.ProductInput) { p.Price = -1 },
			wantCode: model.ErrCodeInvalidPrice,
		},
		{
			name:     "unknown category",
			mutate:   func(p *model.ProductInput) { p.Category = "cacti" },
			wantCode: model.ErrCodeInvalidCategory,
		},
		{
			name:     "missing image",
			mutate:   func(p *model.ProductInput) { p.ImageURL = "" },
			wantCode: model.ErrCodeMissingField,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockProductRepository)
			svc := newProductService(repo)

			input := validProductInput()
			tt.mutate(input)

			got, err := svc.Create(context.Background(), input)
			require.Error(t, err)
			assert.Nil(t, got)

			var domainErr *model.DomainError
			require.ErrorAs(t, err, &domainErr)
			assert.Equal(t, tt.wantCode, domainErr.Code)

			repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestProductService_Update_NotFound(t *testing.T) {
	repo := new(MockProductRepository)
	svc := newProductService(repo)

	repo.On("Update", mock.Anything, "missing", mock.Anything).Return(nil, nil)

	got, err := svc.Update(context.Background(), "missing", validProductInput())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestProductService_Delete(t *testing.T) {
	repo := new(MockProductRepository)
	svc := newProductService(repo)

	repo.On("Delete", mock.Anything, "1").Return(true, nil)
	repo.On("Delete", mock.Anything, "missing").Return(false, nil)

	deleted, err := svc.Delete(context.Background(), "1")
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = svc.Delete(context.Background(), "missing")
	require.NoError(t, err)
	assert.False(t, deleted)
}
