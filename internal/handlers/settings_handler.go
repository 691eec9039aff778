package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/VidaPediatria/clinic-api/internal/audit"
	"github.com/VidaPediatria/clinic-api/internal/httperr"
	"github.com/VidaPediatria/clinic-api/internal/httpresp"
	"github.com/VidaPediatria/clinic-api/internal/middleware"
	"github.com/VidaPediatria/clinic-api/internal/models"
	"github.com/VidaPediatria/clinic-api/internal/timezone"
)

type SettingsHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewSettingsHandler(db *gorm.DB, auditDispatcher *audit.Dispatcher) *SettingsHandler {
	return &SettingsHandler{db: db, audit: auditDispatcher}
}

// --------- Requests ---------

type UpdateSettingsRequest struct {
	Name     *string `json:"name,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Email    *string `json:"email,omitempty"`
	Address  *string `json:"address,omitempty"`
	Timezone *string `json:"timezone,omitempty"`
}

type OperatingHoursEntry struct {
	Weekday    int    `json:"weekday"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	LunchStart string `json:"lunch_start"`
	LunchEnd   string `json:"lunch_end"`
	Active     bool   `json:"active"`
}

// --------- Handlers ---------

func (h *SettingsHandler) Get(c *gin.Context) {
	var settings models.ClinicSettings
	if err := h.db.First(&settings).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "clinic_not_configured", "Clínica não configurada.")
			return
		}
		httperr.Internal(c, "failed_to_get_settings", "Erro ao buscar configurações.")
		return
	}

	c.JSON(http.StatusOK, settings)
}

func (h *SettingsHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var settings models.ClinicSettings
	if err := h.db.First(&settings).Error; err != nil {
		httperr.NotFound(c, "clinic_not_configured", "Clínica não configurada.")
		return
	}

	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Timezone != nil && !timezone.IsValid(*req.Timezone) {
		httperr.BadRequest(c, "invalid_timezone", "Fuso horário inválido.")
		return
	}

	oldData := map[string]any{"name": settings.Name, "timezone": settings.Timezone}

	if req.Name != nil {
		settings.Name = *req.Name
	}
	if req.Phone != nil {
		settings.Phone = *req.Phone
	}
	if req.Email != nil {
		settings.Email = *req.Email
	}
	if req.Address != nil {
		settings.Address = *req.Address
	}
	if req.Timezone != nil {
		settings.Timezone = *req.Timezone
	}

	if err := h.db.Save(&settings).Error; err != nil {
		httperr.Internal(c, "failed_to_update_settings", "Erro ao salvar configurações.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:    &userID,
		Action:    audit.ActionUpdate,
		TableName: "clinic_settings",
		RecordID:  &settings.ID,
		OldData:   oldData,
		NewData:   map[string]any{"name": settings.Name, "timezone": settings.Timezone},
	})

	c.JSON(http.StatusOK, settings)
}

func (h *SettingsHandler) GetOperatingHours(c *gin.Context) {
	var hours []models.OperatingHours
	if err := h.db.Order("weekday ASC").Find(&hours).Error; err != nil {
		httperr.Internal(c, "failed_to_get_operating_hours", "Erro ao buscar horários.")
		return
	}

	httpresp.List(c, hours)
}

// PutOperatingHours substitui a grade semanal inteira de uma vez,
// mesmo contrato do app: a tela manda os sete dias.
func (h *SettingsHandler) PutOperatingHours(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var entries []OperatingHoursEntry
	if err := c.ShouldBindJSON(&entries); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	for _, e := range entries {
		if e.Weekday < 0 || e.Weekday > 6 {
			httperr.BadRequest(c, "invalid_weekday", "Dia da semana inválido.")
			return
		}
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.OperatingHours{}).Error; err != nil {
			return err
		}

		for _, e := range entries {
			oh := models.OperatingHours{
				Weekday:    e.Weekday,
				StartTime:  e.StartTime,
				EndTime:    e.EndTime,
				LunchStart: e.LunchStart,
				LunchEnd:   e.LunchEnd,
				Active:     e.Active,
			}
			if err := tx.Create(&oh).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		httperr.Internal(c, "failed_to_update_operating_hours", "Erro ao salvar horários.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:    &userID,
		Action:    audit.ActionUpdate,
		TableName: "operating_hours",
		NewData:   entries,
	})

	var hours []models.OperatingHours
	h.db.Order("weekday ASC").Find(&hours)

	c.JSON(http.StatusOK, hours)
}
