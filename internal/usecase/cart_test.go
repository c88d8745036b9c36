package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"yolimar/internal/domain"
	"yolimar/internal/usecase"
	"yolimar/pkg/logger"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockStore) Set(ctx context.Context, key string, value []byte) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func (m *MockStore) Remove(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func TestCartUsecase_Add(t *testing.T) {
	log := logger.NewTestLogger()

	t.Run("same composite key merges into one line", func(t *testing.T) {
		mockStore := new(MockStore)
		mockStore.On("Set", mock.Anything, "cart", mock.Anything).Return(nil)
		uc := usecase.NewCartUsecase(mockStore, "cart", log)

		item := domain.CreateTestCartItem(1)
		uc.Add(context.Background(), item)
		uc.Add(context.Background(), item)

		items := uc.Items()
		require.Len(t, items, 1)
		assert.Equal(t, 2, items[0].Quantity)
		assert.Equal(t, 2, uc.Count())
	})

	t.Run("quantity adds onto the existing line", func(t *testing.T) {
		mockStore := new(MockStore)
		mockStore.On("Set", mock.Anything, "cart", mock.Anything).Return(nil)
		uc := usecase.NewCartUsecase(mockStore, "cart", log)

		first := domain.CreateTestCartItem(1)
		uc.Add(context.Background(), first)

		second := domain.CreateTestCartItem(1)
		second.Quantity = 2
		uc.Add(context.Background(), second)

		items := uc.Items()
		require.Len(t, items, 1)
		assert.Equal(t, 3, items[0].Quantity)
		assert.InDelta(t, 165.0, uc.Total(), 0.0001)
	})

	t.Run("differing on any key field creates a new line", func(t *testing.T) {
		mockStore := new(MockStore)
		mockStore.On("Set", mock.Anything, "cart", mock.Anything).Return(nil)
		uc := usecase.NewCartUsecase(mockStore, "cart", log)

		base := domain.CreateTestCartItem(1)
		uc.Add(context.Background(), base)

		otherColor := base
		otherColor.Color = "blanco"
		uc.Add(context.Background(), otherColor)

		otherSize := base
		otherSize.Size = "L"
		uc.Add(context.Background(), otherSize)

		custom := base
		custom.IsCustom = true
		custom.DesignID = 7
		uc.Add(context.Background(), custom)

		assert.Len(t, uc.Items(), 4)
	})

	t.Run("zero quantity defaults to one", func(t *testing.T) {
		mockStore := new(MockStore)
		mockStore.On("Set", mock.Anything, "cart", mock.Anything).Return(nil)
		uc := usecase.NewCartUsecase(mockStore, "cart", log)

		item := domain.CreateTestCartItem(1)
		item.Quantity = 0
		uc.Add(context.Background(), item)

		items := uc.Items()
		require.Len(t, items, 1)
		assert.Equal(t, 1, items[0].Quantity)
	})

	t.Run("persistence failure never fails the mutation", func(t *testing.T) {
		mockStore := new(MockStore)
		mockStore.On("Set", mock.Anything, "cart", mock.Anything).
			Return(errors.New("quota exceeded"))
		uc := usecase.NewCartUsecase(mockStore, "cart", log)

		uc.Add(context.Background(), domain.CreateTestCartItem(1))

		assert.Len(t, uc.Items(), 1)
		mockStore.AssertExpectations(t)
	})

	t.Run("every mutation writes the full list through", func(t *testing.T) {
		mockStore := new(MockStore)
		mockStore.On("Set", mock.Anything, "cart", mock.Anything).Return(nil).Times(3)
		uc := usecase.NewCartUsecase(mockStore, "cart", log)

		uc.Add(context.Background(), domain.CreateTestCartItem(1))
		uc.Add(context.Background(), domain.CreateTestCartItem(2))
		uc.Clear(context.Background())

		mockStore.AssertExpectations(t)
	})
}

func TestCartUsecase_UpdateQuantity(t *testing.T) {
	log := logger.NewTestLogger()

	setup := func() *usecase.CartUsecase {
		mockStore := new(MockStore)
		mockStore.On("Set", mock.Anything, "cart", mock.Anything).Return(nil)
		uc := usecase.NewCartUsecase(mockStore, "cart", log)
		uc.Add(context.Background(), domain.CreateTestCartItem(1))
		return uc
	}

	t.Run("sets the quantity of the matching line", func(t *testing.T) {
		uc := setup()
		uc.UpdateQuantity(context.Background(), 1, "negro", "M", 5)

		items := uc.Items()
		require.Len(t, items, 1)
		assert.Equal(t, 5, items[0].Quantity)
		assert.Equal(t, 5, uc.Count())
		assert.InDelta(t, 275.0, uc.Total(), 0.0001)
	})

	t.Run("zero removes the line entirely", func(t *testing.T) {
		uc := setup()
		uc.UpdateQuantity(context.Background(), 1, "negro", "M", 0)

		assert.Empty(t, uc.Items())
		assert.Zero(t, uc.Count())
		assert.Zero(t, uc.Total())
	})

	t.Run("negative behaves like zero", func(t *testing.T) {
		uc := setup()
		uc.UpdateQuantity(context.Background(), 1, "negro", "M", -2)

		assert.Empty(t, uc.Items())
	})

	t.Run("non-matching selection is untouched", func(t *testing.T) {
		uc := setup()
		uc.UpdateQuantity(context.Background(), 1, "blanco", "M", 9)

		items := uc.Items()
		require.Len(t, items, 1)
		assert.Equal(t, 1, items[0].Quantity)
	})
}

func TestCartUsecase_Remove(t *testing.T) {
	log := logger.NewTestLogger()

	t.Run("matches on id, color and size only", func(t *testing.T) {
		mockStore := new(MockStore)
		mockStore.On("Set", mock.Anything, "cart", mock.Anything).Return(nil)
		uc := usecase.NewCartUsecase(mockStore, "cart", log)

		stock := domain.CreateTestCartItem(1)
		uc.Add(context.Background(), stock)

		other := domain.CreateTestCartItem(2)
		uc.Add(context.Background(), other)

		uc.Remove(context.Background(), 1, "negro", "M")

		items := uc.Items()
		require.Len(t, items, 1)
		assert.Equal(t, 2, items[0].ID)
	})

	t.Run("custom lines sharing the selection go together", func(t *testing.T) {
		// Remove does not disambiguate by design, mirroring the storefront.
		mockStore := new(MockStore)
		mockStore.On("Set", mock.Anything, "cart", mock.Anything).Return(nil)
		uc := usecase.NewCartUsecase(mockStore, "cart", log)

		a := domain.CreateTestCustomItem(100, 1)
		b := domain.CreateTestCustomItem(100, 2)
		uc.Add(context.Background(), a)
		uc.Add(context.Background(), b)
		require.Len(t, uc.Items(), 2)

		uc.Remove(context.Background(), 100, a.Color, a.Size)

		assert.Empty(t, uc.Items())
	})
}

func TestCartUsecase_Load(t *testing.T) {
	log := logger.NewTestLogger()

	t.Run("seeds from the persisted list", func(t *testing.T) {
		saved := []domain.CartItem{domain.CreateTestCartItem(1), domain.CreateTestCartItem(2)}
		data, err := json.Marshal(saved)
		require.NoError(t, err)

		mockStore := new(MockStore)
		mockStore.On("Get", mock.Anything, "cart").Return(data, nil).Once()
		uc := usecase.NewCartUsecase(mockStore, "cart", log)

		uc.Load(context.Background())

		assert.Len(t, uc.Items(), 2)
		assert.Equal(t, 2, uc.Count())
		mockStore.AssertExpectations(t)
	})

	t.Run("missing key starts empty", func(t *testing.T) {
		mockStore := new(MockStore)
		mockStore.On("Get", mock.Anything, "cart").Return(nil, domain.ErrRecordNotFound).Once()
		uc := usecase.NewCartUsecase(mockStore, "cart", log)

		uc.Load(context.Background())

		assert.Empty(t, uc.Items())
	})

	t.Run("corrupt payload starts empty", func(t *testing.T) {
		mockStore := new(MockStore)
		mockStore.On("Get", mock.Anything, "cart").Return([]byte("{not json"), nil).Once()
		uc := usecase.NewCartUsecase(mockStore, "cart", log)

		uc.Load(context.Background())

		assert.Empty(t, uc.Items())
	})
}

func TestCartUsecase_Totals(t *testing.T) {
	log := logger.NewTestLogger()

	mockStore := new(MockStore)
	mockStore.On("Set", mock.Anything, "cart", mock.Anything).Return(nil)
	uc := usecase.NewCartUsecase(mockStore, "cart", log)

	polera := domain.CreateTestCartItem(1)
	polera.Quantity = 3
	uc.Add(context.Background(), polera)

	saco := domain.CreateTestCartItem(2)
	saco.Type = "saco"
	saco.Price = 100
	saco.Quantity = 2
	uc.Add(context.Background(), saco)

	assert.Equal(t, 5, uc.Count())
	assert.InDelta(t, 365.0, uc.Total(), 0.0001)

	uc.UpdateQuantity(context.Background(), 2, "negro", "M", 1)
	assert.Equal(t, 4, uc.Count())
	assert.InDelta(t, 265.0, uc.Total(), 0.0001)

	uc.Clear(context.Background())
	assert.Zero(t, uc.Count())
	assert.Zero(t, uc.Total())
}
