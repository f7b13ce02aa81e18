package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gestor-sucursal/internal/application/dto"
	"github.com/jhoicas/gestor-sucursal/internal/application/usecase"
)

// maxRosterBytes tamaño máximo del roster xlsx importado.
const maxRosterBytes = 5 << 20

// CollaboratorHandler colaboradores del tenant.
type CollaboratorHandler struct {
	uc *usecase.CollaboratorUseCase
}

// NewCollaboratorHandler construye el handler.
func NewCollaboratorHandler(uc *usecase.CollaboratorUseCase) *CollaboratorHandler {
	return &CollaboratorHandler{uc: uc}
}

// List godoc
// @Summary      Listar colaboradores visibles
// @Tags         collaborators
// @Security     Bearer
// @Produce      json
// @Param        tenant_id  query  string  false  "Gerente (solo administrador)"
// @Success      200  {array}  dto.CollaboratorResponse
// @Router       /api/collaborators [get]
func (h *CollaboratorHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), actorOf(c))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Alta de colaborador
// @Tags         collaborators
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCollaboratorRequest  true  "Colaborador"
// @Success      201   {object}  dto.CollaboratorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/collaborators [post]
func (h *CollaboratorHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCollaboratorRequest
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
// @Summary      Editar colaborador
// @Tags         collaborators
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                         true  "ID"
// @Param        body  body  dto.UpdateCollaboratorRequest  true  "Campos a cambiar"
// @Success      200   {object}  dto.CollaboratorResponse
// @Router       /api/collaborators/{id} [put]
func (h *CollaboratorHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCollaboratorRequest
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
// @Summary      Baja de colaborador (borra sus actividades)
// @Tags         collaborators
// @Security     Bearer
// @Param        id  path  string  true  "ID"
// @Success      204
// @Router       /api/collaborators/{id} [delete]
func (h *CollaboratorHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), actorOf(c), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Import godoc
// @Summary      Importar roster xlsx
// @Description  Columnas: nombre, numero_empleado, puesto, turno. Las filas con error se reportan sin detener la carga.
// @Tags         collaborators
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Roster .xlsx"
// @Success      200   {object}  dto.ImportResult
// @Router       /api/collaborators/import [post]
func (h *CollaboratorHandler) Import(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return badRequest("MISSING_FILE", "se requiere el archivo en el campo file")
	}
	if fh.Size > maxRosterBytes {
		return badRequest("FILE_TOO_LARGE", "el roster excede 5 MB")
	}
	f, err := fh.Open()
	if err != nil {
		return err
	}
	defer f.Close()

	out, err := h.uc.Import(c.UserContext(), actorOf(c), f)
	if err != nil {
		return err
	}
	return c.JSON(out)
}
