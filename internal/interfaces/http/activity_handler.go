package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gestor-sucursal/internal/application/dto"
	"github.com/jhoicas/gestor-sucursal/internal/application/usecase"
)

// ActivityHandler agenda de actividades.
type ActivityHandler struct {
	uc *usecase.ActivityUseCase
}

// NewActivityHandler construye el handler.
func NewActivityHandler(uc *usecase.ActivityUseCase) *ActivityHandler {
	return &ActivityHandler{uc: uc}
}

// List godoc
// @Summary      Listar actividades visibles
// @Tags         activities
// @Security     Bearer
// @Produce      json
// @Param        collaborator_id  query  string  false  "Colaborador"
// @Param        day              query  int     false  "Día (0=domingo)"
// @Param        tenant_id        query  string  false  "Gerente (solo administrador)"
// @Success      200  {array}  dto.ActivityResponse
// @Router       /api/activities [get]
func (h *ActivityHandler) List(c *fiber.Ctx) error {
	var f dto.ActivityFilter
	if err := bindQuery(c, &f); err != nil {
		return err
	}
	out, err := h.uc.List(c.UserContext(), actorOf(c), f)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Agendar actividad
// @Tags         activities
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateActivityRequest  true  "Actividad"
// @Success      201   {object}  dto.ActivityResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/activities [post]
func (h *ActivityHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateActivityRequest
	if err := bindJSON(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Create(c.UserContext(), actorOf(c), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Editar actividad
// @Tags         activities
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true  "ID"
// @Param        body  body  dto.UpdateActivityRequest  true  "Campos a cambiar"
// @Success      200   {object}  dto.ActivityResponse
// @Router       /api/activities/{id} [put]
func (h *ActivityHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateActivityRequest
	if err := bindJSON(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Update(c.UserContext(), actorOf(c), c.Params("id"), in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// SetCompletion godoc
// @Summary      Marcar o reabrir actividad
// @Tags         activities
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "ID"
// @Param        body  body  dto.SetCompletionRequest  true  "Estado"
// @Success      200   {object}  dto.ActivityResponse
// @Router       /api/activities/{id}/completion [patch]
func (h *ActivityHandler) SetCompletion(c *fiber.Ctx) error {
	var in dto.SetCompletionRequest
	if err := bindJSON(c, &in); err != nil {
		return err
	}
	out, err := h.uc.SetCompletion(c.UserContext(), actorOf(c), c.Params("id"), in.Completed)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar actividad
// @Tags         activities
// @Security     Bearer
// @Param        id  path  string  true  "ID"
// @Success      204
// @Router       /api/activities/{id} [delete]
func (h *ActivityHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), actorOf(c), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
