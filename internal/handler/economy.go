package handler

import (
	"net/http"

	"github.com/wrenbeck/WanderBot_Go/internal/economy"
	"github.com/wrenbeck/WanderBot_Go/internal/logger"
	"github.com/wrenbeck/WanderBot_Go/internal/metrics"
)

// EconomyHandlers contains HTTP handlers for the shop and inventory
type EconomyHandlers struct {
	service economy.Service
}

// NewEconomyHandlers creates new economy handlers
func NewEconomyHandlers(service economy.Service) *EconomyHandlers {
	return &EconomyHandlers{service: service}
}

// ShopResponse wraps the shop listing
type ShopResponse struct {
	Items []economy.ShopEntry `json:"items"`
}

// HandleShop returns the shop listing
// @Summary Get shop listing
// @Description Returns every purchasable item with its price and effect
// @Tags economy
// @Produce json
// @Success 200 {object} ShopResponse
// @Failure 500 {object} ErrorResponse
// @Router /economy/shop [get]
func (h *EconomyHandlers) HandleShop() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries, err := h.service.Shop(r.Context())
		if err != nil {
			respondServiceError(w, r, "Get shop", err)
			return
		}
		respondJSON(w, http.StatusOK, ShopResponse{Items: entries})
	}
}

// HandleInventory returns a user's held items and gold
// @Summary Get inventory
// @Description Returns the user's held items and gold balance
// @Tags economy
// @Produce json
// @Param user_id query string true "User ID"
// @Success 200 {object} economy.InventoryView
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /economy/inventory [get]
func (h *EconomyHandlers) HandleInventory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		userID, ok := GetQueryParam(r, w, "user_id")
		if !ok {
			return
		}

		view, err := h.service.Inventory(r.Context(), userID)
		if err != nil {
			respondServiceError(w, r, "Get inventory", err)
			return
		}

		log.Info("Get inventory: success", "user_id", userID, "gold", view.Gold)
		respondJSON(w, http.StatusOK, view)
	}
}

// ItemRequest names an item for a purchase or use operation.
type ItemRequest struct {
	UserID string `json:"user_id" validate:"required,max=64,excludesall=\x00\n\r\t"`
	Item   string `json:"item" validate:"required,max=64,excludesall=\x00\n\r\t"`
}

// HandleBuy purchases one unit of a shop item
// @Summary Buy item
// @Description Purchases one unit of a shop item. Only available in town.
// @Tags economy
// @Accept json
// @Produce json
// @Param request body ItemRequest true "Purchase details"
// @Success 200 {object} economy.PurchaseResult
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /economy/buy [post]
func (h *EconomyHandlers) HandleBuy() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req ItemRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Buy item"); err != nil {
			return
		}

		result, err := h.service.Buy(r.Context(), req.UserID, req.Item)
		if err != nil {
			respondServiceError(w, r, "Buy item", err)
			return
		}

		metrics.ItemsBought.WithLabelValues(result.Item.Name).Inc()
		metrics.GoldSpent.Add(float64(result.Item.Price))

		log.Info("Buy item: success",
			"user_id", req.UserID, "item", result.Item.Name, "gold", result.Gold)
		respondJSON(w, http.StatusOK, result)
	}
}

// HandleUse consumes a held item
// @Summary Use item
// @Description Consumes a held potion or scroll and applies its effect
// @Tags economy
// @Accept json
// @Produce json
// @Param request body ItemRequest true "Use details"
// @Success 200 {object} economy.UseResult
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /economy/use [post]
func (h *EconomyHandlers) HandleUse() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req ItemRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Use item"); err != nil {
			return
		}

		result, err := h.service.Use(r.Context(), req.UserID, req.Item)
		if err != nil {
			respondServiceError(w, r, "Use item", err)
			return
		}

		metrics.ItemsUsed.WithLabelValues(result.Item.Name).Inc()

		log.Info("Use item: success",
			"user_id", req.UserID, "item", result.Item.Name, "remaining", result.Remaining)
		respondJSON(w, http.StatusOK, result)
	}
}
