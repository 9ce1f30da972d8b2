package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/boituva/beachclub/internal/config"
	"github.com/boituva/beachclub/internal/logger"
	"github.com/boituva/beachclub/internal/models"
	"github.com/boituva/beachclub/internal/storage"
	"github.com/boituva/beachclub/internal/storage/mocks"
	"github.com/google/go-cmp/cmp"
	"go.uber.org/mock/gomock"
)

func TestOrdersService_AddOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockOrders := mocks.NewMockOrdersStorage(ctrl)
	mockProducts := mocks.NewMockProductsStorage(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	orders := NewOrders(mockOrders, mockProducts)

	testCases := []struct {
		Name          string
		Client        string
		Product       string
		Quantity      int64
		SetupMocks    func()
		ExpectedError error
	}{
		{
			Name:          "Error. Zero quantity #1",
			Client:        "Ana",
			Product:       "Water",
			Quantity:      0,
			SetupMocks:    func() {},
			ExpectedError: ErrInvalidQuantity,
		},
		{
			Name:          "Error. Negative quantity #2",
			Client:        "Ana",
			Product:       "Water",
			Quantity:      -2,
			SetupMocks:    func() {},
			ExpectedError: ErrInvalidQuantity,
		},
		{
			Name:     "Error. Unknown product #3",
			Client:   "Ana",
			Product:  "Sushi",
			Quantity: 1,
			SetupMocks: func() {
				mockProducts.EXPECT().GetProduct(gomock.Any(), "Sushi").Return(nil, storage.ErrProductNotFound)
			},
			ExpectedError: ErrUnknownProduct,
		},
		{
			Name:     "Error. Failed get product #4",
			Client:   "Ana",
			Product:  "Water",
			Quantity: 1,
			SetupMocks: func() {
				mockProducts.EXPECT().GetProduct(gomock.Any(), "Water").Return(nil, storage.ErrUnavailable)
			},
			ExpectedError: storage.ErrUnavailable,
		},
		{
			Name:     "Error. Failed add order #5",
			Client:   "Ana",
			Product:  "Water",
			Quantity: 2,
			SetupMocks: func() {
				mockProducts.EXPECT().GetProduct(gomock.Any(), "Water").Return(&models.ProductData{Name: "Water"}, nil)
				mockOrders.EXPECT().AddOrder(gomock.Any(), gomock.Any()).Return(errors.New("failed to add order"))
			},
			ExpectedError: errors.New("failed to add order"),
		},
		{
			Name:     "Success. #6",
			Client:   "Ana",
			Product:  "Water",
			Quantity: 2,
			SetupMocks: func() {
				mockProducts.EXPECT().GetProduct(gomock.Any(), "Water").Return(&models.ProductData{Name: "Water"}, nil)
				mockOrders.EXPECT().AddOrder(gomock.Any(), gomock.Any()).Return(nil)
			},
			ExpectedError: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tc.SetupMocks()

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			order, err := orders.AddOrder(ctx, tc.Client, tc.Product, tc.Quantity)

			if err != nil && tc.ExpectedError == nil {
				t.Errorf("Expected no error, got: '%v'", err)
			} else if err == nil && tc.ExpectedError != nil {
				t.Errorf("Expected error, got none")
			} else if err != nil && err.Error() != tc.ExpectedError.Error() {
				t.Errorf("Expected error '%v', got: '%v'", tc.ExpectedError, err)
			}
			if tc.ExpectedError == nil {
				if order == nil {
					t.Fatal("Expected an order, got none")
				}
				if order.ID == "" {
					t.Error("Expected a generated order id")
				}
				if order.Client != tc.Client || order.Product != tc.Product || order.Quantity != tc.Quantity {
					t.Errorf("Unexpected order fields: %+v", order)
				}
				if order.Status != models.OrderStatusOpen {
					t.Errorf("Expected status '%s', got: '%s'", models.OrderStatusOpen, order.Status)
				}
			}
		})
	}
}

func TestOrdersService_GetOrders(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockOrders := mocks.NewMockOrdersStorage(ctrl)
	mockProducts := mocks.NewMockProductsStorage(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	orders := NewOrders(mockOrders, mockProducts)

	testCases := []struct {
		Name           string
		Client         string
		SetupMocks     func()
		ExpectedError  error
		ExpectedOrders []models.OrderData
	}{
		{
			Name:   "Error. Failed get orders #1",
			Client: "Ana",
			SetupMocks: func() {
				mockOrders.EXPECT().GetOrders(gomock.Any(), "Ana").Return(nil, errors.New("failed to get orders"))
			},
			ExpectedError:  errors.New("failed to get orders"),
			ExpectedOrders: nil,
		},
		{
			Name:   "Success. #2",
			Client: "Ana",
			SetupMocks: func() {
				mockOrders.EXPECT().GetOrders(gomock.Any(), "Ana").Return([]models.OrderData{
					{ID: "1", Client: "Ana", Product: "Water", Quantity: 2, Status: models.OrderStatusOpen},
				}, nil)
			},
			ExpectedError: nil,
			ExpectedOrders: []models.OrderData{
				{ID: "1", Client: "Ana", Product: "Water", Quantity: 2, Status: models.OrderStatusOpen},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tc.SetupMocks()

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			result, err := orders.GetOrders(ctx, tc.Client)

			if err != nil && tc.ExpectedError == nil {
				t.Errorf("Expected no error, got: '%v'", err)
			} else if err == nil && tc.ExpectedError != nil {
				t.Errorf("Expected error, got none")
			} else if err != nil && err.Error() != tc.ExpectedError.Error() {
				t.Errorf("Expected error '%v', got: '%v'", tc.ExpectedError, err)
			}
			diff := cmp.Diff(tc.ExpectedOrders, result)
			if len(diff) != 0 {
				t.Errorf("expected orders mismatch:\n %s", diff)
			}
		})
	}
}
