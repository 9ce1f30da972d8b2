package services

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/boituva/beachclub/internal/config"
	"github.com/boituva/beachclub/internal/logger"
	"github.com/boituva/beachclub/internal/models"
	"github.com/boituva/beachclub/internal/storage/mocks"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestReportService_GetDailyRevenue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockReports := mocks.NewMockReportsStorage(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	report := NewReport(mockReports)

	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 1, 8, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		Name            string
		From            time.Time
		To              time.Time
		SetupMocks      func()
		ExpectedError   error
		ExpectedRevenue []models.DailyRevenue
	}{
		{
			Name:            "Error. Inverted range #1",
			From:            to,
			To:              from,
			SetupMocks:      func() {},
			ExpectedError:   ErrInvalidDateRange,
			ExpectedRevenue: nil,
		},
		{
			Name:            "Error. Empty range #2",
			From:            from,
			To:              from,
			SetupMocks:      func() {},
			ExpectedError:   ErrInvalidDateRange,
			ExpectedRevenue: nil,
		},
		{
			Name: "Error. Failed get revenue #3",
			From: from,
			To:   to,
			SetupMocks: func() {
				mockReports.EXPECT().GetDailyRevenue(gomock.Any(), from, to).Return(nil, errors.New("failed to get revenue"))
			},
			ExpectedError:   errors.New("failed to get revenue"),
			ExpectedRevenue: nil,
		},
		{
			Name: "Success. #4",
			From: from,
			To:   to,
			SetupMocks: func() {
				mockReports.EXPECT().GetDailyRevenue(gomock.Any(), from, to).Return([]models.DailyRevenue{
					{Day: from, Revenue: decimal.RequireFromString("120.50")},
				}, nil)
			},
			ExpectedError: nil,
			ExpectedRevenue: []models.DailyRevenue{
				{Day: from, Revenue: decimal.RequireFromString("120.50")},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tc.SetupMocks()

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			revenue, err := report.GetDailyRevenue(ctx, tc.From, tc.To)

			if err != nil && tc.ExpectedError == nil {
				t.Errorf("Expected no error, got: '%v'", err)
			} else if err == nil && tc.ExpectedError != nil {
				t.Errorf("Expected error, got none")
			} else if err != nil && err.Error() != tc.ExpectedError.Error() {
				t.Errorf("Expected error '%v', got: '%v'", tc.ExpectedError, err)
			}
			diff := cmp.Diff(tc.ExpectedRevenue, revenue)
			if len(diff) != 0 {
				t.Errorf("expected revenue mismatch:\n %s", diff)
			}
		})
	}
}

func TestReportService_ForecastRevenue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockReports := mocks.NewMockReportsStorage(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	report := NewReport(mockReports)

	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 1, 4, 0, 0, 0, 0, time.UTC)

	t.Run("Error. Non-positive days", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		if _, err := report.ForecastRevenue(ctx, from, to, 0); !errors.Is(err, ErrInvalidForecastDays) {
			t.Errorf("Expected error '%v', got: '%v'", ErrInvalidForecastDays, err)
		}
	})

	t.Run("Success. Linear trend extends", func(t *testing.T) {
		mockReports.EXPECT().GetDailyRevenue(gomock.Any(), from, to).Return([]models.DailyRevenue{
			{Day: from, Revenue: decimal.NewFromInt(10)},
			{Day: from.AddDate(0, 0, 1), Revenue: decimal.NewFromInt(20)},
			{Day: from.AddDate(0, 0, 2), Revenue: decimal.NewFromInt(30)},
		}, nil)

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		projected, err := report.ForecastRevenue(ctx, from, to, 2)
		if err != nil {
			t.Fatalf("Expected no error, got: '%v'", err)
		}
		expected := []float64{40, 50}
		for i := range expected {
			if math.Abs(projected[i]-expected[i]) > 1e-9 {
				t.Errorf("Expected projection %v, got: %v", expected, projected)
				break
			}
		}
	})
}

func TestForecastSeries(t *testing.T) {
	testCases := []struct {
		Name      string
		Series    []float64
		Days      int
		Projected []float64
	}{
		{
			Name:      "Empty series projects zeros #1",
			Series:    nil,
			Days:      3,
			Projected: []float64{0, 0, 0},
		},
		{
			Name:      "Single observation projects flat #2",
			Series:    []float64{42.5},
			Days:      2,
			Projected: []float64{42.5, 42.5},
		},
		{
			Name:      "Rising trend keeps rising #3",
			Series:    []float64{10, 20, 30},
			Days:      2,
			Projected: []float64{40, 50},
		},
		{
			Name:      "Flat series stays flat #4",
			Series:    []float64{15, 15, 15, 15},
			Days:      2,
			Projected: []float64{15, 15},
		},
		{
			Name:      "Falling trend clamps at zero #5",
			Series:    []float64{10, 5, 0},
			Days:      2,
			Projected: []float64{0, 0},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			projected := ForecastSeries(tc.Series, tc.Days)

			if len(projected) != len(tc.Projected) {
				t.Fatalf("Expected %d projected points, got: %d", len(tc.Projected), len(projected))
			}
			for i := range tc.Projected {
				if math.Abs(projected[i]-tc.Projected[i]) > 1e-9 {
					t.Errorf("Expected projection %v, got: %v", tc.Projected, projected)
					break
				}
			}
		})
	}
}
