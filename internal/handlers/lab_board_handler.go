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

// Quadro de acompanhamento de amostras: colunas fixas, cada cartão só
// anda uma coluna para frente por vez.
type LabBoardHandler struct {
	boardUC   *ucAppointment.GetLabBoard
	advanceUC *ucAppointment.AdvanceLabStatus
}

func NewLabBoardHandler(
	boardUC *ucAppointment.GetLabBoard,
	advanceUC *ucAppointment.AdvanceLabStatus,
) *LabBoardHandler {
	return &LabBoardHandler{
		boardUC:   boardUC,
		advanceUC: advanceUC,
	}
}

type AdvanceStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *LabBoardHandler) Board(c *gin.Context) {
	board, err := h.boardUC.Execute(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_load_board", "Erro ao carregar o quadro.")
		return
	}

	c.JSON(http.StatusOK, board)
}

func (h *LabBoardHandler) Advance(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var req AdvanceStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.advanceUC.Execute(
		c.Request.Context(),
		userID,
		uint(id),
		domain.Status(req.Status),
	)
	if err != nil {
		writeBusinessOrInternal(c, err, "failed_to_advance_status", "Erro ao mover o agendamento.")
		return
	}

	c.JSON(http.StatusOK, ap)
}
