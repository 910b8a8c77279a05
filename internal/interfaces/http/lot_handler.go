package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/davidrmz/chipsmanager-api/internal/application/dto"
	"github.com/davidrmz/chipsmanager-api/internal/application/usecase"
)

// LotHandler maneja las peticiones HTTP del almacén (protegido).
type LotHandler struct {
	uc *usecase.LotUseCase
}

// NewLotHandler construye el handler.
func NewLotHandler(uc *usecase.LotUseCase) *LotHandler {
	return &LotHandler{uc: uc}
}

// Create godoc
// @Summary      Dar de alta un lote en el almacén
// @Tags         warehouse
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateLotRequest  true  "Datos del lote"
// @Success      201   {object}  dto.LotResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/warehouse/lots [post]
func (h *LotHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateLotRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	lot, err := h.uc.Create(in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(usecase.ToLotResponse(lot))
}

// ListGrouped godoc
// @Summary      Listar el almacén agrupado por producto (FIFO)
// @Tags         warehouse
// @Security     Bearer
// @Produce      json
// @Param        search  query  string  false  "Filtro por sabor o categoría (ignora acentos)"
// @Success      200  {array}  dto.WarehouseGroupResponse
// @Router       /api/warehouse/lots [get]
func (h *LotHandler) ListGrouped(c *fiber.Ctx) error {
	groups, err := h.uc.ListWarehouseGrouped(c.Query("search"))
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(groups)
}

// GetByID godoc
// @Summary      Obtener un lote por ID
// @Tags         warehouse
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del lote"
// @Success      200  {object}  dto.LotResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/warehouse/lots/{id} [get]
func (h *LotHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	lot, err := h.uc.GetByID(id)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(usecase.ToLotResponse(lot))
}

// Update godoc
// @Summary      Sobrescribir un lote (identidad, cantidad, costo y precio)
// @Tags         warehouse
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del lote"
// @Param        body  body  dto.UpdateLotRequest  true  "Datos del lote"
// @Success      200   {object}  dto.LotResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/warehouse/lots/{id} [put]
func (h *LotHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.UpdateLotRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	lot, err := h.uc.Update(id, in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(usecase.ToLotResponse(lot))
}

// Delete godoc
// @Summary      Restar una unidad o eliminar el lote completo
// @Tags         warehouse
// @Security     Bearer
// @Param        id   path   string  true   "ID del lote"
// @Param        all  query  bool    false  "true = eliminar el lote completo; default resta 1 unidad"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/warehouse/lots/{id} [delete]
func (h *LotHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	all := c.QueryBool("all", false)
	if err := h.uc.ReduceOrDelete(id, all); err != nil {
		return mapDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
