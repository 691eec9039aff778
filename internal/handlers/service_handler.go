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

type ServiceHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewServiceHandler(db *gorm.DB, auditDispatcher *audit.Dispatcher) *ServiceHandler {
	return &ServiceHandler{db: db, audit: auditDispatcher}
}

// --------- Requests ---------

type CreateServiceRequest struct {
	Code            string  `json:"code" binding:"required"`
	Name            string  `json:"name" binding:"required"`
	Description     string  `json:"description"`
	Category        string  `json:"category"`
	BasePrice       float64 `json:"base_price" binding:"required"`
	OperationalCost float64 `json:"operational_cost"`
	Preparation     string  `json:"preparation"`
}

type UpdateServiceRequest struct {
	Name            *string  `json:"name,omitempty"`
	Description     *string  `json:"description,omitempty"`
	Category        *string  `json:"category,omitempty"`
	BasePrice       *float64 `json:"base_price,omitempty"`
	OperationalCost *float64 `json:"operational_cost,omitempty"`
	Preparation     *string  `json:"preparation,omitempty"`
	Active          *bool    `json:"active,omitempty"`
}

// --------- Handlers ---------

func (h *ServiceHandler) List(c *gin.Context) {
	category := strings.ToLower(strings.TrimSpace(c.Query("category")))
	activeStr := strings.TrimSpace(c.Query("active"))
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.Session(&gorm.Session{})

	if category != "" {
		q = q.Where("LOWER(category) = ?", category)
	}

	if activeStr == "true" {
		q = q.Where("active = ?", true)
	} else if activeStr == "false" {
		q = q.Where("active = ?", false)
	}

	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(code) LIKE ? OR LOWER(description) LIKE ?", like, like, like)
	}

	var services []models.Service
	if err := q.
		Order("id ASC").
		Find(&services).Error; err != nil {

		httperr.Internal(c, "failed_to_list_services", "Erro ao listar serviços.")
		return
	}

	httpresp.List(c, services)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	code := strings.ToUpper(strings.TrimSpace(req.Code))

	var count int64
	h.db.Model(&models.Service{}).Where("code = ?", code).Count(&count)
	if count > 0 {
		httperr.Conflict(c, "service_code_already_exists", "Já existe serviço com este código.")
		return
	}

	service := models.Service{
		Code:            code,
		Name:            req.Name,
		Description:     req.Description,
		Category:        strings.ToLower(req.Category),
		BasePrice:       req.BasePrice,
		OperationalCost: req.OperationalCost,
		Preparation:     req.Preparation,
		Active:          true,
	}

	if err := h.db.Create(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_create_service", "Erro ao criar serviço.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:    &userID,
		Action:    audit.ActionInsert,
		TableName: "services",
		RecordID:  &service.ID,
		NewData:   map[string]any{"code": service.Code, "name": service.Name, "base_price": service.BasePrice},
	})

	httpresp.Created(c, service)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	id := c.Param("id")

	var service models.Service
	if err := h.db.First(&service, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_service", "Erro ao buscar serviço.")
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	oldData := map[string]any{
		"name":       service.Name,
		"base_price": service.BasePrice,
		"active":     service.Active,
	}

	if req.Name != nil {
		service.Name = *req.Name
	}
	if req.Description != nil {
		service.Description = *req.Description
	}
	if req.Category != nil {
		service.Category = strings.ToLower(*req.Category)
	}
	if req.BasePrice != nil {
		service.BasePrice = *req.BasePrice
	}
	if req.OperationalCost != nil {
		service.OperationalCost = *req.OperationalCost
	}
	if req.Preparation != nil {
		service.Preparation = *req.Preparation
	}
	if req.Active != nil {
		service.Active = *req.Active
	}

	if err := h.db.Save(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service", "Erro ao atualizar serviço.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:    &userID,
		Action:    audit.ActionUpdate,
		TableName: "services",
		RecordID:  &service.ID,
		OldData:   oldData,
		NewData: map[string]any{
			"name":       service.Name,
			"base_price": service.BasePrice,
			"active":     service.Active,
		},
	})

	c.JSON(http.StatusOK, service)
}
