package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/appjingle/tienda-erp/internal/application/analytics"
)

// DashboardHandler expone el tablero operativo (protegido).
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Stats godoc
// @Summary      KPIs del día, órdenes recientes y alertas de stock bajo
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        storeId  query  int  false  "Filtrar por tienda (0 = toda la cadena)"
// @Success      200  {object}  dto.DashboardStatsDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/dashboard/stats [get]
func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	out, err := h.uc.GetStats(storeIDQuery(c))
	if err != nil {
		return internalErr(c, err)
	}
	return c.JSON(out)
}
