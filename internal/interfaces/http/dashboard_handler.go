package http

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gestor-sucursal/internal/application/dto"
	"github.com/jhoicas/gestor-sucursal/internal/application/usecase"
)

// DashboardHandler vistas de lectura: tablero, agenda, equipo, rejilla de horarios y reloj.
type DashboardHandler struct {
	dashboard *usecase.DashboardUseCase
	clock     *usecase.ClockUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(dashboard *usecase.DashboardUseCase, clock *usecase.ClockUseCase) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard, clock: clock}
}

// Board godoc
// @Summary      Tablero en vivo del gerente
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        tenant_id  query  string  false  "Gerente (solo administrador)"
// @Success      200  {object}  dto.BoardResponse
// @Router       /api/board [get]
func (h *DashboardHandler) Board(c *fiber.Ctx) error {
	out, err := h.dashboard.Board(c.UserContext(), actorOf(c))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Agenda godoc
// @Summary      Agenda del colaborador
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        day  query  int  false  "Día (0=domingo); por defecto hoy"
// @Success      200  {object}  dto.AgendaResponse
// @Router       /api/agenda [get]
func (h *DashboardHandler) Agenda(c *fiber.Ctx) error {
	day, err := optionalDay(c)
	if err != nil {
		return err
	}
	out, err := h.dashboard.Agenda(c.UserContext(), actorOf(c), day)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Team godoc
// @Summary      Equipo del colaborador
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.TeamResponse
// @Router       /api/team [get]
func (h *DashboardHandler) Team(c *fiber.Ctx) error {
	out, err := h.dashboard.Team(c.UserContext(), actorOf(c))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Slots godoc
// @Summary      Rejilla de horarios de 30 minutos
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        shift  query  string  false  "MATUTINO | VESPERTINO"
// @Success      200  {object}  dto.SlotsResponse
// @Router       /api/schedule/slots [get]
func (h *DashboardHandler) Slots(c *fiber.Ctx) error {
	out, err := h.dashboard.Slots(c.UserContext(), actorOf(c), strings.ToUpper(c.Query("shift")))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Clock godoc
// @Summary      Hora del sistema
// @Tags         clock
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ClockResponse
// @Router       /api/clock [get]
func (h *DashboardHandler) Clock(c *fiber.Ctx) error {
	return c.JSON(h.clock.Now())
}

// Travel godoc
// @Summary      Viaje en el tiempo (reloj simulado)
// @Tags         clock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TravelRequest  true  "Día y hora"
// @Success      200   {object}  dto.ClockResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/clock [put]
func (h *DashboardHandler) Travel(c *fiber.Ctx) error {
	var in dto.TravelRequest
	if err := bindJSON(c, &in); err != nil {
		return err
	}
	out, err := h.clock.Travel(c.UserContext(), actorOf(c), in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// ReportHandler estadísticas y reportes descargables.
type ReportHandler struct {
	stats   *usecase.StatsUseCase
	reports *usecase.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(stats *usecase.StatsUseCase, reports *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{stats: stats, reports: reports}
}

// Stats godoc
// @Summary      Rendimiento del equipo
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        range  query  string  false  "DAY | WEEK"
// @Success      200  {object}  dto.StatsResponse
// @Router       /api/stats [get]
func (h *ReportHandler) Stats(c *fiber.Ctx) error {
	var q dto.StatsQuery
	if err := bindQuery(c, &q); err != nil {
		return err
	}
	out, err := h.stats.Stats(c.UserContext(), actorOf(c), q)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// ExportStats godoc
// @Summary      Exportar rendimiento a Excel
// @Tags         reports
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        range  query  string  false  "DAY | WEEK"
// @Success      200
// @Router       /api/stats/export [get]
func (h *ReportHandler) ExportStats(c *fiber.Ctx) error {
	var q dto.StatsQuery
	if err := bindQuery(c, &q); err != nil {
		return err
	}
	data, err := h.stats.Export(c.UserContext(), actorOf(c), q)
	if err != nil {
		return err
	}
	rng := q.Range
	if rng == "" {
		rng = dto.RangeDay
	}
	return sendFile(c, data, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		fmt.Sprintf("rendimiento-%s.xlsx", strings.ToLower(rng)))
}

// DailySchedule godoc
// @Summary      Agenda diaria en PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        day        query  int     false  "Día (0=domingo); por defecto hoy"
// @Param        tenant_id  query  string  false  "Gerente (solo administrador)"
// @Success      200
// @Router       /api/reports/daily-schedule [get]
func (h *ReportHandler) DailySchedule(c *fiber.Ctx) error {
	day, err := optionalDay(c)
	if err != nil {
		return err
	}
	data, err := h.reports.DailySchedule(c.UserContext(), actorOf(c), day)
	if err != nil {
		return err
	}
	name := "agenda-hoy.pdf"
	if day != nil {
		name = fmt.Sprintf("agenda-%s.pdf", strings.ToLower(usecase.DayNames[*day]))
	}
	return sendFile(c, data, "application/pdf", name)
}

func sendFile(c *fiber.Ctx, data []byte, contentType, filename string) error {
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(data)
}
