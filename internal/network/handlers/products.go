package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/boituva/beachclub/internal/logger"
	"github.com/boituva/beachclub/internal/models"
	"github.com/boituva/beachclub/internal/services"
	"github.com/boituva/beachclub/internal/storage"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// AddProductHandler - registers a product in the catalog
func AddProductHandler(s services.CatalogService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req models.ProductRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Warn("Invalid request format:", zap.Error(err))
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}
		if req.Name == "" {
			http.Error(w, "Product name is required", http.StatusBadRequest)
			return
		}

		err := s.AddProduct(r.Context(), req)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrProductAlreadyExists):
				http.Error(w, "Product already exists", http.StatusConflict)
			case errors.Is(err, services.ErrInvalidPrice):
				http.Error(w, "Price must not be negative", http.StatusUnprocessableEntity)
			default:
				writeStorageError(w, err, "Failed to add product")
			}
			return
		}
		w.WriteHeader(http.StatusCreated)
	})
}

// GetProductsHandler - full catalog listing
func GetProductsHandler(s services.CatalogService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		products, err := s.GetProducts(r.Context())
		if err != nil {
			writeStorageError(w, err, "Failed to get products")
			return
		}
		if len(products) == 0 {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		var response []models.ProductResponse
		for _, product := range products {
			response = append(response, models.ProductResponse{
				Name:      product.Name,
				Supplier:  product.Supplier,
				UnitPrice: product.UnitPrice.InexactFloat64(),
				UnitCost:  product.UnitCost.InexactFloat64(),
				CreatedAt: product.CreatedAt.Format(time.RFC3339),
			})
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
	})
}

// UpdatePriceHandler - changes the unit price of a product
func UpdatePriceHandler(s services.CatalogService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "name")
		var req struct {
			UnitPrice float64 `json:"unit_price"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Warn("Invalid request format:", zap.Error(err))
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}

		err := s.UpdatePrice(r.Context(), name, decimal.NewFromFloat(req.UnitPrice))
		if err != nil {
			switch {
			case errors.Is(err, storage.ErrProductNotFound):
				http.Error(w, "Product not found", http.StatusNotFound)
			case errors.Is(err, services.ErrInvalidPrice):
				http.Error(w, "Price must not be negative", http.StatusUnprocessableEntity)
			default:
				writeStorageError(w, err, "Failed to update price")
			}
			return
		}
		w.WriteHeader(http.StatusOK)
	})
}

// DeleteProductHandler - removes a product from the catalog
func DeleteProductHandler(s services.CatalogService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "name")
		err := s.DeleteProduct(r.Context(), name)
		if err != nil {
			if errors.Is(err, storage.ErrProductNotFound) {
				http.Error(w, "Product not found", http.StatusNotFound)
				return
			}
			writeStorageError(w, err, "Failed to delete product")
			return
		}
		w.WriteHeader(http.StatusOK)
	})
}

// AddStockMovementHandler - records a stock intake or removal
func AddStockMovementHandler(s services.CatalogService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req models.StockMovementRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Warn("Invalid request format:", zap.Error(err))
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}

		err := s.RegisterMovement(r.Context(), req)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidQuantity):
				http.Error(w, "Quantity must be a positive integer", http.StatusUnprocessableEntity)
			case errors.Is(err, services.ErrInvalidStockKind):
				http.Error(w, "Kind must be 'in' or 'out'", http.StatusUnprocessableEntity)
			case errors.Is(err, services.ErrUnknownProduct):
				http.Error(w, "Product is not registered", http.StatusUnprocessableEntity)
			case errors.Is(err, services.ErrInsufficientStock):
				http.Error(w, "Insufficient stock", http.StatusConflict)
			default:
				writeStorageError(w, err, "Failed to add stock movement")
			}
			return
		}
		w.WriteHeader(http.StatusCreated)
	})
}

// GetStockLevelHandler - current on-hand level for one product
func GetStockLevelHandler(s services.CatalogService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		product := chi.URLParam(r, "product")
		level, err := s.GetStockLevel(r.Context(), product)
		if err != nil {
			writeStorageError(w, err, "Failed to get stock level")
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(level); err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
	})
}
