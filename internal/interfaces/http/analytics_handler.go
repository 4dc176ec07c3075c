package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/restaurante-admin-api/internal/application/analytics"
	"github.com/jhoicas/restaurante-admin-api/internal/application/dto"
	"github.com/jhoicas/restaurante-admin-api/internal/application/usecase"
)

// AnalyticsHandler dashboard de ventas y listados de pagos y pedidos.
type AnalyticsHandler struct {
	uc *analytics.UseCase
	tx *usecase.TransactionUseCase
}

// NewAnalyticsHandler construye el handler.
func NewAnalyticsHandler(uc *analytics.UseCase, tx *usecase.TransactionUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc, tx: tx}
}

// Snapshot godoc
// @Summary      Estadísticas de la sucursal
// @Description  Totales, ventanas 24h/7d/30d, tendencias diaria y horaria, franjas de recogida,
// @Description  platos y clientes principales y pedidos por estado.
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Param        days  query  int  false  "0 (todo), 3, 7, 14 o 30"  default(0)
// @Param        top   query  int  false  "Tamaño de los rankings (default 10)"
// @Success      200   {object}  dto.Response{data=analytics.Snapshot}
// @Failure      400   {object}  dto.Response
// @Failure      403   {object}  dto.Response
// @Router       /api/analytics [get]
func (h *AnalyticsHandler) Snapshot(c *fiber.Ctx) error {
	var q dto.AnalyticsQuery
	if err := c.QueryParser(&q); err != nil {
		return fail(c, badBody(err))
	}
	out, err := h.uc.Snapshot(c.UserContext(), GetScope(c), q)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "", out)
}

// Report godoc
// @Summary      Informe de ventas en PDF
// @Tags         analytics
// @Security     Bearer
// @Produce      application/pdf
// @Param        days  query  int  false  "0 (todo), 3, 7, 14 o 30"
// @Success      200   {file}    file
// @Failure      403   {object}  dto.Response
// @Router       /api/analytics/report.pdf [get]
func (h *AnalyticsHandler) Report(c *fiber.Ctx) error {
	var q dto.AnalyticsQuery
	if err := c.QueryParser(&q); err != nil {
		return fail(c, badBody(err))
	}
	pdf, err := h.uc.Report(c.UserContext(), GetScope(c), q)
	if err != nil {
		return fail(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="ventas-%dd.pdf"`, q.Days))
	return c.Send(pdf)
}

// Payments godoc
// @Summary      Listar pagos
// @Tags         transactions
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  false  "success, failed, pending"
// @Param        limit   query  int     false  "Límite"  default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200     {object}  dto.Response{data=dto.PaymentListResponse}
// @Router       /api/payments [get]
func (h *AnalyticsHandler) Payments(c *fiber.Ctx) error {
	var q dto.TransactionListQuery
	if err := c.QueryParser(&q); err != nil {
		return fail(c, badBody(err))
	}
	out, err := h.tx.Payments(c.UserContext(), GetScope(c), q)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "", out)
}

// Orders godoc
// @Summary      Listar pedidos
// @Tags         transactions
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  false  "Estado del pedido"
// @Param        limit   query  int     false  "Límite"  default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200     {object}  dto.Response{data=dto.OrderListResponse}
// @Router       /api/orders [get]
func (h *AnalyticsHandler) Orders(c *fiber.Ctx) error {
	var q dto.TransactionListQuery
	if err := c.QueryParser(&q); err != nil {
		return fail(c, badBody(err))
	}
	out, err := h.tx.Orders(c.UserContext(), GetScope(c), q)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "", out)
}
