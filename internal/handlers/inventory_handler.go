package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/VidaPediatria/clinic-api/internal/audit"
	"github.com/VidaPediatria/clinic-api/internal/httperr"
	"github.com/VidaPediatria/clinic-api/internal/httpresp"
	"github.com/VidaPediatria/clinic-api/internal/middleware"
	"github.com/VidaPediatria/clinic-api/internal/models"
)

type InventoryHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewInventoryHandler(db *gorm.DB, auditDispatcher *audit.Dispatcher) *InventoryHandler {
	return &InventoryHandler{db: db, audit: auditDispatcher}
}

// --------- Requests ---------

type CreateInventoryItemRequest struct {
	Name       string `json:"name" binding:"required"`
	Category   string `json:"category"`
	Unit       string `json:"unit"`
	Quantity   int    `json:"quantity"`
	AlertLevel int    `json:"alert_level"`
}

type UpdateInventoryItemRequest struct {
	Name       *string `json:"name,omitempty"`
	Category   *string `json:"category,omitempty"`
	Unit       *string `json:"unit,omitempty"`
	Quantity   *int    `json:"quantity,omitempty"`
	AlertLevel *int    `json:"alert_level,omitempty"`
}

type AdjustQuantityRequest struct {
	Delta int `json:"delta" binding:"required"`
}

type inventoryItemResponse struct {
	models.InventoryItem
	LowStock bool `json:"low_stock"`
}

// --------- Handlers ---------

func (h *InventoryHandler) List(c *gin.Context) {
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))
	lowOnly := c.Query("low_stock") == "true"

	q := h.db.Session(&gorm.Session{})
	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(category) LIKE ?", like, like)
	}

	var items []models.InventoryItem
	if err := q.
		Order("name ASC").
		Find(&items).Error; err != nil {

		httperr.Internal(c, "failed_to_list_inventory", "Erro ao listar estoque.")
		return
	}

	httpresp.List(c, buildInventoryList(items, lowOnly))
}

// buildInventoryList projeta cada item com a flag derivada de estoque
// baixo e, quando pedido, mantém só os itens abaixo do alerta.
func buildInventoryList(items []models.InventoryItem, lowOnly bool) []inventoryItemResponse {
	out := make([]inventoryItemResponse, 0, len(items))
	for _, item := range items {
		if lowOnly && !item.LowStock() {
			continue
		}
		out = append(out, inventoryItemResponse{
			InventoryItem: item,
			LowStock:      item.LowStock(),
		})
	}
	return out
}

func (h *InventoryHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateInventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Quantity < 0 || req.AlertLevel < 0 {
		httperr.BadRequest(c, "invalid_quantity", "Quantidade e nível de alerta devem ser não negativos.")
		return
	}

	item := models.InventoryItem{
		Name:       req.Name,
		Category:   strings.ToLower(req.Category),
		Unit:       req.Unit,
		Quantity:   req.Quantity,
		AlertLevel: req.AlertLevel,
	}

	if err := h.db.Create(&item).Error; err != nil {
		httperr.Internal(c, "failed_to_create_item", "Erro ao criar item.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:    &userID,
		Action:    audit.ActionInsert,
		TableName: "inventory_items",
		RecordID:  &item.ID,
		NewData:   map[string]any{"name": item.Name, "quantity": item.Quantity},
	})

	c.JSON(http.StatusCreated, inventoryItemResponse{InventoryItem: item, LowStock: item.LowStock()})
}

func (h *InventoryHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	id := c.Param("id")

	var item models.InventoryItem
	if err := h.db.First(&item, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "item_not_found", "Item não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_item", "Erro ao buscar item.")
		return
	}

	var req UpdateInventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	oldData := map[string]any{"quantity": item.Quantity, "alert_level": item.AlertLevel}

	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Category != nil {
		item.Category = strings.ToLower(*req.Category)
	}
	if req.Unit != nil {
		item.Unit = *req.Unit
	}
	if req.Quantity != nil {
		if *req.Quantity < 0 {
			httperr.BadRequest(c, "invalid_quantity", "Quantidade deve ser não negativa.")
			return
		}
		item.Quantity = *req.Quantity
	}
	if req.AlertLevel != nil {
		if *req.AlertLevel < 0 {
			httperr.BadRequest(c, "invalid_alert_level", "Nível de alerta deve ser não negativo.")
			return
		}
		item.AlertLevel = *req.AlertLevel
	}

	if err := h.db.Save(&item).Error; err != nil {
		httperr.Internal(c, "failed_to_update_item", "Erro ao atualizar item.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:    &userID,
		Action:    audit.ActionUpdate,
		TableName: "inventory_items",
		RecordID:  &item.ID,
		OldData:   oldData,
		NewData:   map[string]any{"quantity": item.Quantity, "alert_level": item.AlertLevel},
	})

	c.JSON(http.StatusOK, inventoryItemResponse{InventoryItem: item, LowStock: item.LowStock()})
}

// AdjustQuantity aplica entrada/saída de estoque sem deixar saldo negativo.
func (h *InventoryHandler) AdjustQuantity(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	id := c.Param("id")

	var item models.InventoryItem
	if err := h.db.First(&item, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "item_not_found", "Item não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_item", "Erro ao buscar item.")
		return
	}

	var req AdjustQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	newQuantity := item.Quantity + req.Delta
	if newQuantity < 0 {
		httperr.BadRequest(c, "insufficient_stock", "Estoque insuficiente.")
		return
	}

	oldQuantity := item.Quantity
	item.Quantity = newQuantity

	if err := h.db.Save(&item).Error; err != nil {
		httperr.Internal(c, "failed_to_update_item", "Erro ao atualizar item.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:    &userID,
		Action:    audit.ActionUpdate,
		TableName: "inventory_items",
		RecordID:  &item.ID,
		OldData:   map[string]any{"quantity": oldQuantity},
		NewData:   map[string]any{"quantity": item.Quantity},
	})

	c.JSON(http.StatusOK, inventoryItemResponse{InventoryItem: item, LowStock: item.LowStock()})
}
