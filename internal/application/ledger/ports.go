package ledger

import (
	"context"

	"github.com/davidrmz/chipsmanager-api/internal/application/dto"
	"github.com/davidrmz/chipsmanager-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para el motor de
// movimientos: o se aplican todas las escrituras de la operación o ninguna.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		lotRepo repository.LotRepository,
		movRepo repository.MovementRepository,
		transferRepo repository.TransferRepository,
	) error) error
}

// TicketGenerator renderiza la nota de entrega de un traslado (colaborador de
// impresión). El motor solo arma el payload; no formatea nada.
type TicketGenerator interface {
	GenerateTicketPDF(ctx context.Context, note *dto.DeliveryNoteDTO) ([]byte, error)
}
