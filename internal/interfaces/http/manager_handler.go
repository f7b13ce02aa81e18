package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gestor-sucursal/internal/application/dto"
	"github.com/jhoicas/gestor-sucursal/internal/application/usecase"
)

// ManagerHandler gerentes (solo administrador).
type ManagerHandler struct {
	uc *usecase.ManagerUseCase
}

// NewManagerHandler construye el handler.
func NewManagerHandler(uc *usecase.ManagerUseCase) *ManagerHandler {
	return &ManagerHandler{uc: uc}
}

// List godoc
// @Summary      Listar gerentes
// @Tags         managers
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ManagerResponse
// @Router       /api/managers [get]
func (h *ManagerHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), actorOf(c))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Alta de gerente
// @Description  La contraseña inicial es el número de empleado; la sucursal nace con configuración por defecto.
// @Tags         managers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateManagerRequest  true  "Gerente"
// @Success      201   {object}  dto.ManagerResponse
// @Router       /api/managers [post]
func (h *ManagerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateManagerRequest
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
// @Summary      Editar gerente
// @Tags         managers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "ID"
// @Param        body  body  dto.UpdateManagerRequest  true  "Campos a cambiar"
// @Success      200   {object}  dto.ManagerResponse
// @Router       /api/managers/{id} [put]
func (h *ManagerHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateManagerRequest
	if err := bindJSON(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Update(c.UserContext(), actorOf(c), c.Params("id"), in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Baja de gerente
// @Tags         managers
// @Security     Bearer
// @Param        id  path  string  true  "ID"
// @Success      204
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/managers/{id} [delete]
func (h *ManagerHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), actorOf(c), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
