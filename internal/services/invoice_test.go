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
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestInvoiceService_ListOpenClients(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockOrders := mocks.NewMockOrdersStorage(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	invoice := NewInvoice(mockOrders)

	testCases := []struct {
		Name            string
		SetupMocks      func()
		ExpectedError   error
		ExpectedClients []string
	}{
		{
			Name: "Error. Failed get open clients #1",
			SetupMocks: func() {
				mockOrders.EXPECT().GetOpenClients(gomock.Any()).Return(nil, errors.New("failed to get clients"))
			},
			ExpectedError:   errors.New("failed to get clients"),
			ExpectedClients: nil,
		},
		{
			Name: "Success. No open clients #2",
			SetupMocks: func() {
				mockOrders.EXPECT().GetOpenClients(gomock.Any()).Return(nil, nil)
			},
			ExpectedError:   nil,
			ExpectedClients: nil,
		},
		{
			Name: "Success. #3",
			SetupMocks: func() {
				mockOrders.EXPECT().GetOpenClients(gomock.Any()).Return([]string{"Ana", "Bruno"}, nil)
			},
			ExpectedError:   nil,
			ExpectedClients: []string{"Ana", "Bruno"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tc.SetupMocks()

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			clients, err := invoice.ListOpenClients(ctx)

			if err != nil && tc.ExpectedError == nil {
				t.Errorf("Expected no error, got: '%v'", err)
			} else if err == nil && tc.ExpectedError != nil {
				t.Errorf("Expected error, got none")
			} else if err != nil && err.Error() != tc.ExpectedError.Error() {
				t.Errorf("Expected error '%v', got: '%v'", tc.ExpectedError, err)
			}
			diff := cmp.Diff(tc.ExpectedClients, clients)
			if len(diff) != 0 {
				t.Errorf("expected clients mismatch:\n %s", diff)
			}
		})
	}
}

func TestInvoiceService_ComputeInvoice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockOrders := mocks.NewMockOrdersStorage(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	invoice := NewInvoice(mockOrders)

	testCases := []struct {
		Name            string
		Client          string
		SetupMocks      func()
		ExpectedError   error
		ExpectedInvoice *models.Invoice
	}{
		{
			Name:   "Error. Failed get open order lines #1",
			Client: "Ana",
			SetupMocks: func() {
				mockOrders.EXPECT().GetOpenOrderLines(gomock.Any(), "Ana").Return(nil, errors.New("failed to get orders"))
			},
			ExpectedError:   errors.New("failed to get orders"),
			ExpectedInvoice: nil,
		},
		{
			Name:   "Success. No open orders yields no invoice #2",
			Client: "Ana",
			SetupMocks: func() {
				mockOrders.EXPECT().GetOpenOrderLines(gomock.Any(), "Ana").Return(nil, nil)
			},
			ExpectedError:   nil,
			ExpectedInvoice: nil,
		},
		{
			Name:   "Success. Interleaved orders collapse per product #3",
			Client: "Ana",
			SetupMocks: func() {
				mockOrders.EXPECT().GetOpenOrderLines(gomock.Any(), "Ana").Return([]models.OpenOrderLine{
					{OrderID: "1", Product: "Water", Quantity: 2, UnitPrice: "5.00"},
					{OrderID: "2", Product: "Chips", Quantity: 3, UnitPrice: "8.00"},
					{OrderID: "3", Product: "Water", Quantity: 1, UnitPrice: "5.00"},
				}, nil)
			},
			ExpectedError: nil,
			ExpectedInvoice: &models.Invoice{
				Client: "Ana",
				Lines: []models.InvoiceLine{
					{Product: "Water", Quantity: 3, LineTotal: decimal.RequireFromString("15.00")},
					{Product: "Chips", Quantity: 3, LineTotal: decimal.RequireFromString("24.00")},
				},
				OrderIDs:            []string{"1", "2", "3"},
				TotalBeforeDiscount: decimal.RequireFromString("39.00"),
				TotalAfterDiscount:  decimal.RequireFromString("39.00"),
			},
		},
		{
			Name:   "Success. Malformed and missing prices count as zero #4",
			Client: "Bruno",
			SetupMocks: func() {
				mockOrders.EXPECT().GetOpenOrderLines(gomock.Any(), "Bruno").Return([]models.OpenOrderLine{
					{OrderID: "4", Product: "Caipirinha", Quantity: 2, UnitPrice: "abc"},
					{OrderID: "5", Product: "Sunscreen", Quantity: 1, UnitPrice: ""},
					{OrderID: "6", Product: "Water", Quantity: 4, UnitPrice: "5.00"},
				}, nil)
			},
			ExpectedError: nil,
			ExpectedInvoice: &models.Invoice{
				Client: "Bruno",
				Lines: []models.InvoiceLine{
					{Product: "Caipirinha", Quantity: 2, LineTotal: decimal.Zero},
					{Product: "Sunscreen", Quantity: 1, LineTotal: decimal.Zero},
					{Product: "Water", Quantity: 4, LineTotal: decimal.RequireFromString("20.00")},
				},
				OrderIDs:            []string{"4", "5", "6"},
				TotalBeforeDiscount: decimal.RequireFromString("20.00"),
				TotalAfterDiscount:  decimal.RequireFromString("20.00"),
			},
		},
		{
			Name:   "Success. Line totals rounded to cents #5",
			Client: "Clara",
			SetupMocks: func() {
				mockOrders.EXPECT().GetOpenOrderLines(gomock.Any(), "Clara").Return([]models.OpenOrderLine{
					{OrderID: "7", Product: "Fresh juice", Quantity: 3, UnitPrice: "1.115"},
				}, nil)
			},
			ExpectedError: nil,
			ExpectedInvoice: &models.Invoice{
				Client: "Clara",
				Lines: []models.InvoiceLine{
					{Product: "Fresh juice", Quantity: 3, LineTotal: decimal.RequireFromString("3.35")},
				},
				OrderIDs:            []string{"7"},
				TotalBeforeDiscount: decimal.RequireFromString("3.35"),
				TotalAfterDiscount:  decimal.RequireFromString("3.35"),
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tc.SetupMocks()

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			result, err := invoice.ComputeInvoice(ctx, tc.Client)

			if err != nil && tc.ExpectedError == nil {
				t.Errorf("Expected no error, got: '%v'", err)
			} else if err == nil && tc.ExpectedError != nil {
				t.Errorf("Expected error, got none")
			} else if err != nil && err.Error() != tc.ExpectedError.Error() {
				t.Errorf("Expected error '%v', got: '%v'", tc.ExpectedError, err)
			}
			diff := cmp.Diff(tc.ExpectedInvoice, result)
			if len(diff) != 0 {
				t.Errorf("expected invoice mismatch:\n %s", diff)
			}
		})
	}
}

func TestInvoiceService_ApplyCoupon(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockOrders := mocks.NewMockOrdersStorage(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	invoice := NewInvoice(mockOrders)

	base := models.Invoice{
		Client:              "Ana",
		TotalBeforeDiscount: decimal.RequireFromString("39.00"),
		TotalAfterDiscount:  decimal.RequireFromString("39.00"),
	}

	testCases := []struct {
		Name          string
		Code          string
		ExpectedRate  decimal.Decimal
		ExpectedTotal decimal.Decimal
	}{
		{
			Name:          "Known 10 percent code #1",
			Code:          "DESCONTO10",
			ExpectedRate:  decimal.RequireFromString("0.1"),
			ExpectedTotal: decimal.RequireFromString("35.10"),
		},
		{
			Name:          "Known 15 percent code #2",
			Code:          "DESCONTO15",
			ExpectedRate:  decimal.RequireFromString("0.15"),
			ExpectedTotal: decimal.RequireFromString("33.15"),
		},
		{
			Name:          "Unknown code keeps full total #3",
			Code:          "DESCONTO50",
			ExpectedRate:  decimal.Zero,
			ExpectedTotal: decimal.RequireFromString("39.00"),
		},
		{
			Name:          "Lookup is case-sensitive #4",
			Code:          "desconto10",
			ExpectedRate:  decimal.Zero,
			ExpectedTotal: decimal.RequireFromString("39.00"),
		},
		{
			Name:          "Empty code keeps full total #5",
			Code:          "",
			ExpectedRate:  decimal.Zero,
			ExpectedTotal: decimal.RequireFromString("39.00"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			result := invoice.ApplyCoupon(base, tc.Code)

			if result.CouponCode != tc.Code {
				t.Errorf("Expected coupon code '%s', got: '%s'", tc.Code, result.CouponCode)
			}
			if !result.DiscountRate.Equal(tc.ExpectedRate) {
				t.Errorf("Expected discount rate '%s', got: '%s'", tc.ExpectedRate, result.DiscountRate)
			}
			if !result.TotalAfterDiscount.Equal(tc.ExpectedTotal) {
				t.Errorf("Expected total '%s', got: '%s'", tc.ExpectedTotal, result.TotalAfterDiscount)
			}
			if !result.TotalBeforeDiscount.Equal(base.TotalBeforeDiscount) {
				t.Errorf("Expected untouched base total '%s', got: '%s'", base.TotalBeforeDiscount, result.TotalBeforeDiscount)
			}
		})
	}
}

func TestInvoiceService_ApplyCoupon_Replace(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockOrders := mocks.NewMockOrdersStorage(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	invoice := NewInvoice(mockOrders)

	base := models.Invoice{
		Client:              "Ana",
		TotalBeforeDiscount: decimal.RequireFromString("39.00"),
		TotalAfterDiscount:  decimal.RequireFromString("39.00"),
	}

	// A second coupon replaces the first, it never stacks.
	discounted := invoice.ApplyCoupon(base, "DESCONTO15")
	replaced := invoice.ApplyCoupon(discounted, "DESCONTO10")

	if !replaced.TotalAfterDiscount.Equal(decimal.RequireFromString("35.10")) {
		t.Errorf("Expected total '35.10', got: '%s'", replaced.TotalAfterDiscount)
	}

	cleared := invoice.ApplyCoupon(replaced, "")
	if !cleared.TotalAfterDiscount.Equal(base.TotalBeforeDiscount) {
		t.Errorf("Expected total '%s', got: '%s'", base.TotalBeforeDiscount, cleared.TotalAfterDiscount)
	}
}

func TestInvoiceService_SettleInvoice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockOrders := mocks.NewMockOrdersStorage(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	invoice := NewInvoice(mockOrders)

	testCases := []struct {
		Name            string
		Client          string
		Method          models.PaymentMethod
		SetupMocks      func()
		ExpectedError   error
		ExpectedSettled int64
	}{
		{
			Name:            "Error. Unknown payment method #1",
			Client:          "Ana",
			Method:          models.PaymentMethod("voucher"),
			SetupMocks:      func() {},
			ExpectedError:   errors.New(`unknown payment method: "voucher"`),
			ExpectedSettled: 0,
		},
		{
			Name:   "Error. Failed settle orders #2",
			Client: "Ana",
			Method: models.PaymentCredit,
			SetupMocks: func() {
				mockOrders.EXPECT().
					SettleClientOrders(gomock.Any(), "Ana", models.OrderStatusPaidCredit, gomock.Any()).
					Return(int64(0), storage.ErrUnavailable)
			},
			ExpectedError:   storage.ErrUnavailable,
			ExpectedSettled: 0,
		},
		{
			Name:   "Success. Nothing open is still a success #3",
			Client: "Ana",
			Method: models.PaymentCash,
			SetupMocks: func() {
				mockOrders.EXPECT().
					SettleClientOrders(gomock.Any(), "Ana", models.OrderStatusPaidCash, gomock.Any()).
					Return(int64(0), nil)
			},
			ExpectedError:   nil,
			ExpectedSettled: 0,
		},
		{
			Name:   "Success. #4",
			Client: "Ana",
			Method: models.PaymentPix,
			SetupMocks: func() {
				mockOrders.EXPECT().
					SettleClientOrders(gomock.Any(), "Ana", models.OrderStatusPaidPix, gomock.Any()).
					Return(int64(3), nil)
			},
			ExpectedError:   nil,
			ExpectedSettled: 3,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tc.SetupMocks()

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			settled, err := invoice.SettleInvoice(ctx, tc.Client, tc.Method)

			if err != nil && tc.ExpectedError == nil {
				t.Errorf("Expected no error, got: '%v'", err)
			} else if err == nil && tc.ExpectedError != nil {
				t.Errorf("Expected error, got none")
			} else if err != nil && err.Error() != tc.ExpectedError.Error() {
				t.Errorf("Expected error '%v', got: '%v'", tc.ExpectedError, err)
			}
			if settled != tc.ExpectedSettled {
				t.Errorf("Expected %d settled orders, got: %d", tc.ExpectedSettled, settled)
			}
		})
	}
}

func TestInvoiceService_SettleOrders(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockOrders := mocks.NewMockOrdersStorage(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	invoice := NewInvoice(mockOrders)

	testCases := []struct {
		Name          string
		Client        string
		Method        models.PaymentMethod
		OrderIDs      []string
		SetupMocks    func()
		ExpectedError error
	}{
		{
			Name:          "Error. Unknown payment method #1",
			Client:        "Ana",
			Method:        models.PaymentMethod("check"),
			OrderIDs:      []string{"1"},
			SetupMocks:    func() {},
			ExpectedError: errors.New(`unknown payment method: "check"`),
		},
		{
			Name:          "Success. Empty pin set settles nothing #2",
			Client:        "Ana",
			Method:        models.PaymentDebit,
			OrderIDs:      nil,
			SetupMocks:    func() {},
			ExpectedError: nil,
		},
		{
			Name:     "Error. Priced orders changed #3",
			Client:   "Ana",
			Method:   models.PaymentDebit,
			OrderIDs: []string{"1", "2"},
			SetupMocks: func() {
				mockOrders.EXPECT().
					SettleOrdersByID(gomock.Any(), "Ana", []string{"1", "2"}, models.OrderStatusPaidDebit, gomock.Any()).
					Return(storage.ErrOrdersChanged)
			},
			ExpectedError: ErrInvoiceOutdated,
		},
		{
			Name:     "Error. Failed settle orders #4",
			Client:   "Ana",
			Method:   models.PaymentDebit,
			OrderIDs: []string{"1", "2"},
			SetupMocks: func() {
				mockOrders.EXPECT().
					SettleOrdersByID(gomock.Any(), "Ana", []string{"1", "2"}, models.OrderStatusPaidDebit, gomock.Any()).
					Return(storage.ErrUnavailable)
			},
			ExpectedError: storage.ErrUnavailable,
		},
		{
			Name:     "Success. #5",
			Client:   "Ana",
			Method:   models.PaymentCredit,
			OrderIDs: []string{"1", "2", "3"},
			SetupMocks: func() {
				mockOrders.EXPECT().
					SettleOrdersByID(gomock.Any(), "Ana", []string{"1", "2", "3"}, models.OrderStatusPaidCredit, gomock.Any()).
					Return(nil)
			},
			ExpectedError: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tc.SetupMocks()

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			err := invoice.SettleOrders(ctx, tc.Client, tc.Method, tc.OrderIDs)

			if err != nil && tc.ExpectedError == nil {
				t.Errorf("Expected no error, got: '%v'", err)
			} else if err == nil && tc.ExpectedError != nil {
				t.Errorf("Expected error, got none")
			} else if err != nil && err.Error() != tc.ExpectedError.Error() {
				t.Errorf("Expected error '%v', got: '%v'", tc.ExpectedError, err)
			}
		})
	}
}

// A cashier afternoon end to end: price, discount, settle, recompute.
func TestInvoiceService_CheckoutFlow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockOrders := mocks.NewMockOrdersStorage(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	service := NewInvoice(mockOrders)

	mockOrders.EXPECT().GetOpenOrderLines(gomock.Any(), "Ana").Return([]models.OpenOrderLine{
		{OrderID: "1", Product: "Water", Quantity: 2, UnitPrice: "5.00"},
		{OrderID: "2", Product: "Chips", Quantity: 3, UnitPrice: "8.00"},
		{OrderID: "3", Product: "Water", Quantity: 1, UnitPrice: "5.00"},
	}, nil)
	mockOrders.EXPECT().
		SettleOrdersByID(gomock.Any(), "Ana", []string{"1", "2", "3"}, models.OrderStatusPaidCredit, gomock.Any()).
		Return(nil)
	mockOrders.EXPECT().GetOpenOrderLines(gomock.Any(), "Ana").Return(nil, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	priced, err := service.ComputeInvoice(ctx, "Ana")
	if err != nil {
		t.Fatalf("Expected no error, got: '%v'", err)
	}
	if priced == nil {
		t.Fatal("Expected an invoice, got none")
	}
	if !priced.TotalBeforeDiscount.Equal(decimal.RequireFromString("39.00")) {
		t.Errorf("Expected total '39.00', got: '%s'", priced.TotalBeforeDiscount)
	}

	discounted := service.ApplyCoupon(*priced, "DESCONTO10")
	if !discounted.TotalAfterDiscount.Equal(decimal.RequireFromString("35.10")) {
		t.Errorf("Expected discounted total '35.10', got: '%s'", discounted.TotalAfterDiscount)
	}

	if err := service.SettleOrders(ctx, "Ana", models.PaymentCredit, discounted.OrderIDs); err != nil {
		t.Fatalf("Expected no error, got: '%v'", err)
	}

	settled, err := service.ComputeInvoice(ctx, "Ana")
	if err != nil {
		t.Fatalf("Expected no error, got: '%v'", err)
	}
	if settled != nil {
		t.Errorf("Expected no invoice after settlement, got: %+v", settled)
	}
}
