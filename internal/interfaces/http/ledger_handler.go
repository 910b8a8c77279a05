package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/davidrmz/chipsmanager-api/internal/application/analytics"
	"github.com/davidrmz/chipsmanager-api/internal/application/dto"
	"github.com/davidrmz/chipsmanager-api/internal/application/ledger"
	"github.com/davidrmz/chipsmanager-api/internal/domain/repository"
)

// LedgerHandler maneja las operaciones del ledger: traslados, ventas y mermas
// (protegido).
type LedgerHandler struct {
	uc           *ledger.UseCase
	ticketGen    ledger.TicketGenerator
	movementRepo repository.MovementRepository
	transferRepo repository.TransferRepository
}

// NewLedgerHandler construye el handler.
func NewLedgerHandler(
	uc *ledger.UseCase,
	ticketGen ledger.TicketGenerator,
	movementRepo repository.MovementRepository,
	transferRepo repository.TransferRepository,
) *LedgerHandler {
	return &LedgerHandler{uc: uc, ticketGen: ticketGen, movementRepo: movementRepo, transferRepo: transferRepo}
}

// Transfer godoc
// @Summary      Trasladar unidades del almacén a una tienda
// @Description  Resta del lote origen, crea un lote independiente en la tienda
// @Description  y anexa el registro de traslado. Con ?print=pdf devuelve la
// @Description  nota de entrega como ticket PDF en lugar de JSON.
// @Tags         ledger
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body   body   dto.TransferRequest  true  "Traslado"
// @Param        print  query  string  false  "pdf para recibir el ticket imprimible"
// @Success      201  {object}  dto.DeliveryNoteDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/ledger/transfers [post]
func (h *LedgerHandler) Transfer(c *fiber.Ctx) error {
	var in dto.TransferRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	note, err := h.uc.Transfer(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return mapDomainError(c, err)
	}
	if c.Query("print") == "pdf" {
		pdfBytes, err := h.ticketGen.GenerateTicketPDF(c.UserContext(), note)
		if err != nil {
			return mapDomainError(c, err)
		}
		c.Set(fiber.HeaderContentType, "application/pdf")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="nota-entrega-`+note.Folio+`.pdf"`)
		return c.Status(fiber.StatusCreated).Send(pdfBytes)
	}
	return c.Status(fiber.StatusCreated).JSON(note)
}

// Sale godoc
// @Summary      Registrar la venta de una unidad
// @Tags         ledger
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SaleRequest  true  "Lote vendido"
// @Success      201  {object}  dto.MovementResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/ledger/sales [post]
func (h *LedgerHandler) Sale(c *fiber.Ctx) error {
	var in dto.SaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	record, err := h.uc.Sale(c.UserContext(), GetUserID(c), in.LotID)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(appanalytics.ToMovementResponse(record))
}

// Waste godoc
// @Summary      Registrar la merma de una unidad (motivo obligatorio)
// @Tags         ledger
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.WasteRequest  true  "Lote mermado y motivo"
// @Success      201  {object}  dto.MovementResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ledger/wastes [post]
func (h *LedgerHandler) Waste(c *fiber.Ctx) error {
	var in dto.WasteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	record, err := h.uc.Waste(c.UserContext(), GetUserID(c), in.LotID, in.Reason)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(appanalytics.ToMovementResponse(record))
}

// ListTransfers godoc
// @Summary      Listar traslados confirmados
// @Tags         ledger
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200  {array}  dto.TransferRecordResponse
// @Router       /api/ledger/transfers [get]
func (h *LedgerHandler) ListTransfers(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	records, err := h.transferRepo.List(limit, offset)
	if err != nil {
		return mapDomainError(c, err)
	}
	out := make([]dto.TransferRecordResponse, 0, len(records))
	for _, r := range records {
		out = append(out, appanalytics.ToTransferRecordResponse(r))
	}
	return c.JSON(out)
}

// ListMovements godoc
// @Summary      Listar ventas y mermas de una tienda
// @Tags         ledger
// @Security     Bearer
// @Produce      json
// @Param        store_id  query  string  true   "ID de la tienda"
// @Param        limit     query  int     false  "Límite"   default(20)
// @Param        offset    query  int     false  "Offset"   default(0)
// @Success      200  {array}  dto.MovementResponse
// @Router       /api/ledger/movements [get]
func (h *LedgerHandler) ListMovements(c *fiber.Ctx) error {
	storeID := c.Query("store_id")
	if storeID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "store_id es requerido"})
	}
	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	records, err := h.movementRepo.ListByStore(storeID, limit, offset)
	if err != nil {
		return mapDomainError(c, err)
	}
	out := make([]dto.MovementResponse, 0, len(records))
	for _, r := range records {
		out = append(out, appanalytics.ToMovementResponse(r))
	}
	return c.JSON(out)
}
