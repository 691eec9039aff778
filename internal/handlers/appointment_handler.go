package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/VidaPediatria/clinic-api/internal/domain/appointment"
	"github.com/VidaPediatria/clinic-api/internal/httperr"
	"github.com/VidaPediatria/clinic-api/internal/middleware"
	ucAppointment "github.com/VidaPediatria/clinic-api/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	createUC       *ucAppointment.CreateAppointment
	cancelUC       *ucAppointment.CancelAppointment
	noShowUC       *ucAppointment.MarkNoShow
	listByDateUC   *ucAppointment.ListAppointmentsByDate
	listByMonthUC  *ucAppointment.ListAppointmentsByMonth
	availabilityUC *ucAppointment.GetAvailability

	repo domain.Repository
}

func NewAppointmentHandler(
	createUC *ucAppointment.CreateAppointment,
	cancelUC *ucAppointment.CancelAppointment,
	noShowUC *ucAppointment.MarkNoShow,
	listByDateUC *ucAppointment.ListAppointmentsByDate,
	listByMonthUC *ucAppointment.ListAppointmentsByMonth,
	availabilityUC *ucAppointment.GetAvailability,
	repo domain.Repository,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC:       createUC,
		cancelUC:       cancelUC,
		noShowUC:       noShowUC,
		listByDateUC:   listByDateUC,
		listByMonthUC:  listByMonthUC,
		availabilityUC: availabilityUC,
		repo:           repo,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	PatientID  uint   `json:"patient_id" binding:"required"`
	ServiceIDs []uint `json:"service_ids" binding:"required,min=1"`

	PaymentMethod string `json:"payment_method" binding:"required"`
	InsuranceType string `json:"insurance_type" binding:"required"`

	Date  string `json:"date" binding:"required"`
	Time  string `json:"time" binding:"required"`
	Notes string `json:"notes"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	out, err := h.createUC.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		PatientID:     req.PatientID,
		ServiceIDs:    req.ServiceIDs,
		PaymentMethod: req.PaymentMethod,
		InsuranceType: req.InsuranceType,
		Date:          req.Date,
		Time:          req.Time,
		Notes:         req.Notes,
		CreatedByID:   userID,
	})
	if err != nil {
		writeBusinessOrInternal(c, err, "failed_to_create_appointment", "Erro ao criar agendamento.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"appointment": out.Appointment,
		"total":       out.Total,
	})
}

// ======================================================
// GET
// ======================================================

func (h *AppointmentHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	ap, err := h.repo.GetAppointment(c.Request.Context(), uint(id))
	if err != nil {
		httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"appointment": ap,
		"total":       domain.TotalForLines(ap.Services),
	})
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	settings, err := h.repo.GetClinicSettings(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "clinic_not_configured", "Clínica não configurada.")
		return
	}

	date, err := parseDateInClinic(settings, dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	items, err := h.listByDateUC.Execute(c.Request.Context(), date)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	c.JSON(http.StatusOK, items)
}

func (h *AppointmentHandler) ListByMonth(c *gin.Context) {
	yearStr := c.Query("year")
	monthStr := c.Query("month")

	if yearStr == "" || monthStr == "" {
		httperr.BadRequest(c, "missing_year_or_month", "Ano e mês são obrigatórios.")
		return
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil || year < 2000 || year > 2100 {
		httperr.BadRequest(c, "invalid_year", "Ano inválido.")
		return
	}

	month, err := strconv.Atoi(monthStr)
	if err != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_month", "Mês inválido.")
		return
	}

	items, err := h.listByMonthUC.Execute(c.Request.Context(), year, month)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"year":         year,
		"month":        month,
		"appointments": items,
	})
}

// ======================================================
// CANCEL / NO-SHOW
// ======================================================

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	ap, err := h.cancelUC.Execute(c.Request.Context(), userID, uint(id))
	if err != nil {
		writeBusinessOrInternal(c, err, "failed_to_cancel_appointment", "Erro ao cancelar agendamento.")
		return
	}

	c.JSON(http.StatusOK, ap)
}

func (h *AppointmentHandler) NoShow(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	ap, err := h.noShowUC.Execute(c.Request.Context(), userID, uint(id))
	if err != nil {
		writeBusinessOrInternal(c, err, "failed_to_mark_no_show", "Erro ao registrar falta.")
		return
	}

	c.JSON(http.StatusOK, ap)
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *AppointmentHandler) Availability(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	settings, err := h.repo.GetClinicSettings(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "clinic_not_configured", "Clínica não configurada.")
		return
	}

	date, err := parseDateInClinic(settings, dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	slotMinutes, _ := strconv.Atoi(c.DefaultQuery("slot_minutes", "30"))

	slots, err := h.availabilityUC.Execute(c.Request.Context(), date, slotMinutes)
	if err != nil {
		httperr.Internal(c, "failed_to_get_availability", "Erro ao calcular horários.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"slots": slots})
}

// writeBusinessOrInternal mapeia erro de negócio para 400 com o código
// do domínio; o resto vira 500 genérico.
func writeBusinessOrInternal(c *gin.Context, err error, code, message string) {
	if bizCode, ok := httperr.BusinessCode(err); ok {
		httperr.BadRequest(c, bizCode, message)
		return
	}
	httperr.Internal(c, code, message)
}
