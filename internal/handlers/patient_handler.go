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
	"github.com/VidaPediatria/clinic-api/internal/validators"
)

type PatientHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewPatientHandler(db *gorm.DB, auditDispatcher *audit.Dispatcher) *PatientHandler {
	return &PatientHandler{db: db, audit: auditDispatcher}
}

// --------- Requests ---------

type CreatePatientRequest struct {
	Name      string `json:"name" binding:"required"`
	CPF       string `json:"cpf" binding:"required"`
	BirthDate string `json:"birth_date"`

	GuardianName  string `json:"guardian_name"`
	GuardianPhone string `json:"guardian_phone"`

	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Notes   string `json:"notes"`
}

type UpdatePatientRequest struct {
	Name          *string `json:"name,omitempty"`
	GuardianName  *string `json:"guardian_name,omitempty"`
	GuardianPhone *string `json:"guardian_phone,omitempty"`
	Phone         *string `json:"phone,omitempty"`
	Email         *string `json:"email,omitempty"`
	Address       *string `json:"address,omitempty"`
	Notes         *string `json:"notes,omitempty"`
}

// --------- Handlers ---------

func (h *PatientHandler) List(c *gin.Context) {
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.Session(&gorm.Session{})

	if query != "" {
		like := "%" + query + "%"
		digits := validators.OnlyDigits(query)
		if digits != "" {
			q = q.Where(
				"LOWER(name) LIKE ? OR cpf LIKE ? OR phone LIKE ? OR guardian_phone LIKE ?",
				like, "%"+digits+"%", "%"+digits+"%", "%"+digits+"%",
			)
		} else {
			q = q.Where("LOWER(name) LIKE ?", like)
		}
	}

	var patients []models.Patient
	if err := q.
		Order("name ASC").
		Find(&patients).Error; err != nil {

		httperr.Internal(c, "failed_to_list_patients", "Erro ao listar pacientes.")
		return
	}

	httpresp.List(c, patients)
}

func (h *PatientHandler) Get(c *gin.Context) {
	id := c.Param("id")

	var patient models.Patient
	if err := h.db.First(&patient, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "patient_not_found", "Paciente não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_patient", "Erro ao buscar paciente.")
		return
	}

	c.JSON(http.StatusOK, patient)
}

func (h *PatientHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreatePatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	// Validação campo a campo: só o primeiro erro de cada campo volta.
	fieldErrs := validators.Validate(
		validators.Field{Name: "name", Value: req.Name, Rules: []validators.Rule{
			validators.Required(), validators.MinLen(3), validators.MaxLen(100),
		}},
		validators.Field{Name: "cpf", Value: req.CPF, Rules: []validators.Rule{
			validators.Required(), validators.CPF(),
		}},
		validators.Field{Name: "phone", Value: req.Phone, Rules: []validators.Rule{
			validators.Phone(),
		}},
		validators.Field{Name: "guardian_phone", Value: req.GuardianPhone, Rules: []validators.Rule{
			validators.Phone(),
		}},
		validators.Field{Name: "email", Value: req.Email, Rules: []validators.Rule{
			validators.Email(),
		}},
	)
	if len(fieldErrs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error_code": "validation_failed",
			"fields":     fieldErrs,
		})
		return
	}

	cpf := validators.OnlyDigits(req.CPF)

	var count int64
	h.db.Model(&models.Patient{}).Where("cpf = ?", cpf).Count(&count)
	if count > 0 {
		httperr.Conflict(c, "cpf_already_registered", "CPF já cadastrado.")
		return
	}

	patient := models.Patient{
		Name:          strings.TrimSpace(req.Name),
		CPF:           cpf,
		GuardianName:  req.GuardianName,
		GuardianPhone: req.GuardianPhone,
		Phone:         req.Phone,
		Email:         strings.ToLower(strings.TrimSpace(req.Email)),
		Address:       req.Address,
		Notes:         req.Notes,
		CreatedByID:   &userID,
	}

	var settings models.ClinicSettings
	h.db.First(&settings)

	if req.BirthDate != "" {
		if bd, err := parseDateInClinic(&settings, req.BirthDate); err == nil {
			patient.BirthDate = &bd
		} else {
			httperr.BadRequest(c, "invalid_birth_date", "Data de nascimento inválida.")
			return
		}
	}

	if err := h.db.Create(&patient).Error; err != nil {
		httperr.Internal(c, "failed_to_create_patient", "Erro ao criar paciente.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:    &userID,
		Action:    audit.ActionInsert,
		TableName: "patients",
		RecordID:  &patient.ID,
		NewData:   map[string]any{"name": patient.Name, "cpf": patient.CPF},
	})

	httpresp.Created(c, patient)
}

// Update nunca toca o CPF: identidade definida na criação.
func (h *PatientHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	id := c.Param("id")

	var patient models.Patient
	if err := h.db.First(&patient, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "patient_not_found", "Paciente não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_patient", "Erro ao buscar paciente.")
		return
	}

	var req UpdatePatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	var fields []validators.Field
	if req.Phone != nil {
		fields = append(fields, validators.Field{
			Name: "phone", Value: *req.Phone, Rules: []validators.Rule{validators.Phone()},
		})
	}
	if req.GuardianPhone != nil {
		fields = append(fields, validators.Field{
			Name: "guardian_phone", Value: *req.GuardianPhone, Rules: []validators.Rule{validators.Phone()},
		})
	}
	if req.Email != nil {
		fields = append(fields, validators.Field{
			Name: "email", Value: *req.Email, Rules: []validators.Rule{validators.Email()},
		})
	}
	if fieldErrs := validators.Validate(fields...); len(fieldErrs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error_code": "validation_failed",
			"fields":     fieldErrs,
		})
		return
	}

	oldData := map[string]any{
		"name":  patient.Name,
		"phone": patient.Phone,
		"email": patient.Email,
	}

	if req.Name != nil {
		patient.Name = strings.TrimSpace(*req.Name)
	}
	if req.GuardianName != nil {
		patient.GuardianName = *req.GuardianName
	}
	if req.GuardianPhone != nil {
		patient.GuardianPhone = *req.GuardianPhone
	}
	if req.Phone != nil {
		patient.Phone = *req.Phone
	}
	if req.Email != nil {
		patient.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Address != nil {
		patient.Address = *req.Address
	}
	if req.Notes != nil {
		patient.Notes = *req.Notes
	}

	if err := h.db.Save(&patient).Error; err != nil {
		httperr.Internal(c, "failed_to_update_patient", "Erro ao atualizar paciente.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:    &userID,
		Action:    audit.ActionUpdate,
		TableName: "patients",
		RecordID:  &patient.ID,
		OldData:   oldData,
		NewData: map[string]any{
			"name":  patient.Name,
			"phone": patient.Phone,
			"email": patient.Email,
		},
	})

	c.JSON(http.StatusOK, patient)
}
