package http

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gestor-sucursal/internal/application/dto"
	"github.com/jhoicas/gestor-sucursal/internal/application/usecase"
)

// ConfigHandler configuración del tenant: sucursal, turnos, catálogo y contactos.
type ConfigHandler struct {
	uc *usecase.TenantConfigUseCase
}

// NewConfigHandler construye el handler.
func NewConfigHandler(uc *usecase.TenantConfigUseCase) *ConfigHandler {
	return &ConfigHandler{uc: uc}
}

// BranchInfo godoc
// @Summary      Datos de la sucursal
// @Description  Sucursal, horarios, catálogo de actividades y contactos de emergencia del tenant.
// @Tags         branch
// @Security     Bearer
// @Produce      json
// @Param        tenant_id  query  string  false  "Gerente (solo administrador)"
// @Success      200  {object}  dto.BranchInfoResponse
// @Router       /api/branch [get]
func (h *ConfigHandler) BranchInfo(c *fiber.Ctx) error {
	out, err := h.uc.BranchInfo(c.UserContext(), actorOf(c))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// UpdateBranch godoc
// @Summary      Actualizar datos de la sucursal
// @Tags         branch
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BranchConfigRequest  true  "Sucursal"
// @Success      200   {object}  dto.BranchConfigResponse
// @Router       /api/branch/config [put]
func (h *ConfigHandler) UpdateBranch(c *fiber.Ctx) error {
	var in dto.BranchConfigRequest
	if err := bindJSON(c, &in); err != nil {
		return err
	}
	out, err := h.uc.UpdateBranch(c.UserContext(), actorOf(c), in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// UpdateShifts godoc
// @Summary      Actualizar horarios de turno
// @Tags         branch
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ShiftConfigRequest  true  "Horarios MATUTINO y VESPERTINO"
// @Success      200   {object}  dto.ShiftConfigResponse
// @Router       /api/branch/shifts [put]
func (h *ConfigHandler) UpdateShifts(c *fiber.Ctx) error {
	var in dto.ShiftConfigRequest
	if err := bindJSON(c, &in); err != nil {
		return err
	}
	out, err := h.uc.UpdateShifts(c.UserContext(), actorOf(c), in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// AddActivityType godoc
// @Summary      Agregar actividad al catálogo
// @Description  Si el nombre ya existe responde 200 con la entrada existente.
// @Tags         branch
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ActivityDefinitionRequest  true  "Nombre"
// @Success      201   {object}  dto.ActivityDefinitionResponse
// @Success      200   {object}  dto.ActivityDefinitionResponse
// @Router       /api/branch/activity-types [post]
func (h *ConfigHandler) AddActivityType(c *fiber.Ctx) error {
	var in dto.ActivityDefinitionRequest
	if err := bindJSON(c, &in); err != nil {
		return err
	}
	out, created, err := h.uc.AddActivityType(c.UserContext(), actorOf(c), in)
	if err != nil {
		return err
	}
	status := fiber.StatusOK
	if created {
		status = fiber.StatusCreated
	}
	return c.Status(status).JSON(out)
}

// RemoveActivityType godoc
// @Summary      Quitar actividad del catálogo
// @Tags         branch
// @Security     Bearer
// @Param        name  path  string  true  "Nombre"
// @Success      204
// @Router       /api/branch/activity-types/{name} [delete]
func (h *ConfigHandler) RemoveActivityType(c *fiber.Ctx) error {
	name, err := url.PathUnescape(c.Params("name"))
	if err != nil {
		return badRequest("VALIDATION", "nombre inválido")
	}
	if err := h.uc.RemoveActivityType(c.UserContext(), actorOf(c), name); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AddContact godoc
// @Summary      Agregar contacto de emergencia
// @Tags         branch
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.EmergencyContactRequest  true  "Contacto"
// @Success      201   {object}  dto.EmergencyContactResponse
// @Router       /api/branch/contacts [post]
func (h *ConfigHandler) AddContact(c *fiber.Ctx) error {
	var in dto.EmergencyContactRequest
	if err := bindJSON(c, &in); err != nil {
		return err
	}
	out, err := h.uc.AddContact(c.UserContext(), actorOf(c), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// RemoveContact godoc
// @Summary      Quitar contacto de emergencia
// @Tags         branch
// @Security     Bearer
// @Param        id  path  string  true  "ID"
// @Success      204
// @Router       /api/branch/contacts/{id} [delete]
func (h *ConfigHandler) RemoveContact(c *fiber.Ctx) error {
	if err := h.uc.RemoveContact(c.UserContext(), actorOf(c), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
