package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/VidaPediatria/clinic-api/internal/httperr"
	ucDashboard "github.com/VidaPediatria/clinic-api/internal/usecase/dashboard"
)

type DashboardHandler struct {
	statsUC  *ucDashboard.GetStats
	seriesUC *ucDashboard.GetDailySeries
}

func NewDashboardHandler(
	statsUC *ucDashboard.GetStats,
	seriesUC *ucDashboard.GetDailySeries,
) *DashboardHandler {
	return &DashboardHandler{
		statsUC:  statsUC,
		seriesUC: seriesUC,
	}
}

func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.statsUC.Execute(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_compute_stats", "Erro ao calcular estatísticas.")
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (h *DashboardHandler) Series(c *gin.Context) {
	fromStr := c.Query("from")
	toStr := c.Query("to")

	if fromStr == "" || toStr == "" {
		httperr.BadRequest(c, "missing_range", "Intervalo from/to obrigatório.")
		return
	}

	from, err := time.Parse("2006-01-02", fromStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_from", "Data inicial inválida.")
		return
	}

	to, err := time.Parse("2006-01-02", toStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_to", "Data final inválida.")
		return
	}

	series, err := h.seriesUC.Execute(c.Request.Context(), from, to)
	if err != nil {
		writeBusinessOrInternal(c, err, "failed_to_compute_series", "Erro ao calcular a série.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"series": series})
}
