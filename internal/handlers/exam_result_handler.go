package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/VidaPediatria/clinic-api/internal/httperr"
	"github.com/VidaPediatria/clinic-api/internal/httpresp"
	"github.com/VidaPediatria/clinic-api/internal/middleware"
	ucExamResult "github.com/VidaPediatria/clinic-api/internal/usecase/examresult"
)

type ExamResultHandler struct {
	upsertUC *ucExamResult.UpsertResult
	listUC   *ucExamResult.ListResults
}

func NewExamResultHandler(
	upsertUC *ucExamResult.UpsertResult,
	listUC *ucExamResult.ListResults,
) *ExamResultHandler {
	return &ExamResultHandler{
		upsertUC: upsertUC,
		listUC:   listUC,
	}
}

type UpsertResultRequest struct {
	ResultData string `json:"result_data" binding:"required"`
	Notes      string `json:"notes"`
	Status     string `json:"status"`
}

// List devolve todos os laudos do agendamento, pendentes incluídos.
func (h *ExamResultHandler) List(c *gin.Context) {
	appointmentID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	results, err := h.listUC.Execute(c.Request.Context(), uint(appointmentID))
	if err != nil {
		httperr.Internal(c, "failed_to_list_results", "Erro ao listar resultados.")
		return
	}

	httpresp.List(c, results)
}

func (h *ExamResultHandler) Upsert(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	appointmentID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	serviceID, err := strconv.ParseUint(c.Param("serviceId"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_service_id", "Identificador de serviço inválido.")
		return
	}

	var req UpsertResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	result, err := h.upsertUC.Execute(c.Request.Context(), ucExamResult.UpsertResultInput{
		AppointmentID: uint(appointmentID),
		ServiceID:     uint(serviceID),
		ResultData:    req.ResultData,
		Notes:         req.Notes,
		Status:        req.Status,
		UserID:        userID,
	})
	if err != nil {
		writeBusinessOrInternal(c, err, "failed_to_save_result", "Erro ao gravar resultado.")
		return
	}

	c.JSON(http.StatusOK, result)
}
