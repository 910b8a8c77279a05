package ledger

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/davidrmz/chipsmanager-api/internal/application/dto"
	"github.com/davidrmz/chipsmanager-api/internal/domain"
	"github.com/davidrmz/chipsmanager-api/internal/domain/entity"
	"github.com/davidrmz/chipsmanager-api/internal/domain/repository"
)

// UseCase implementa el motor de movimientos del ledger: traslado
// almacén → tienda, venta de piso y merma. Cada operación es una transacción
// única: valida, muta lotes bajo bloqueo de fila y anexa su registro de
// auditoría en el mismo Commit. El motor no guarda estado propio.
type UseCase struct {
	txRunner  TxRunner
	storeRepo repository.StoreRepository
}

// NewUseCase construye el motor de movimientos.
func NewUseCase(txRunner TxRunner, storeRepo repository.StoreRepository) *UseCase {
	return &UseCase{txRunner: txRunner, storeRepo: storeRepo}
}

// Transfer traslada `quantity` unidades de un lote de almacén a una tienda:
// resta del lote origen (eliminándolo si queda en 0), crea un lote nuevo e
// independiente en la tienda — no se fusiona con lotes del mismo SKU ya en
// piso; el agrupado FIFO es un asunto de lectura — y anexa el TransferRecord.
// Devuelve la nota de entrega para el colaborador de impresión.
//
// La validación de stock se repite dentro de la transacción: el chequeo del
// caller es solo consultivo y el estado puede haber cambiado.
func (uc *UseCase) Transfer(ctx context.Context, userID string, in dto.TransferRequest) (*dto.DeliveryNoteDTO, error) {
	if in.SourceLotID == "" || in.StoreID == "" || in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.UnitPrice.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	store, err := uc.storeRepo.GetByID(in.StoreID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	today := now.Format("2006-01-02")
	var note *dto.DeliveryNoteDTO

	err = uc.txRunner.Run(ctx, func(
		lotRepo repository.LotRepository,
		_ repository.MovementRepository,
		transferRepo repository.TransferRepository,
	) error {
		// Bloquea la fila del lote origen; la resta y la creación del lote
		// destino viajan en la misma transacción.
		source, err := lotRepo.GetForUpdate(in.SourceLotID)
		if err != nil {
			return err
		}
		if source == nil {
			return domain.ErrNotFound
		}
		if !source.IsWarehouse() {
			return domain.ErrInvalidInput
		}
		if in.Quantity > source.Quantity {
			return domain.ErrInsufficientStock
		}
		if _, err := lotRepo.Decrement(source.ID, in.Quantity); err != nil {
			return err
		}

		// El lote destino hereda identidad de SKU y costo del origen, pero
		// lleva el precio de traslado indicado y fecha de recepción "ahora".
		dest := &entity.Lot{
			ID:           uuid.New().String(),
			Category:     source.Category,
			Flavor:       source.Flavor,
			Size:         source.Size,
			Quantity:     in.Quantity,
			UnitCost:     source.UnitCost,
			UnitPrice:    in.UnitPrice,
			LocationID:   in.StoreID,
			ReceivedDate: today,
			ReceivedAt:   now,
		}
		if err := lotRepo.Create(dest); err != nil {
			return err
		}

		record := &entity.TransferRecord{
			ID:          uuid.New().String(),
			ProductName: source.ProductName(),
			StoreID:     in.StoreID,
			Quantity:    in.Quantity,
			UnitPrice:   in.UnitPrice,
			Date:        today,
			CreatedAt:   now,
			CreatedBy:   userID,
		}
		if err := transferRepo.Create(record); err != nil {
			return err
		}

		totalValue := in.UnitPrice.Mul(decimal.NewFromInt(int64(in.Quantity)))
		note = &dto.DeliveryNoteDTO{
			Folio:         folio(now),
			StoreName:     store.Name,
			StoreLocation: store.Location,
			StoreManager:  store.Manager,
			Items: []dto.DeliveryNoteItem{{
				Quantity:    in.Quantity,
				ProductName: fmt.Sprintf("%s %s (%s)", source.Category, source.Flavor, source.Size),
				UnitPrice:   in.UnitPrice,
				Subtotal:    totalValue,
			}},
			TotalUnits: in.Quantity,
			TotalValue: totalValue,
			IssuedAt:   now,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return note, nil
}

// Sale registra la venta de exactamente 1 unidad de un lote: resta la unidad
// (eliminando el lote si era la última) y anexa el MovementRecord valuado al
// precio unitario del lote. ErrNotFound si el lote ya no existe (por ejemplo,
// consumido por una operación concurrente).
func (uc *UseCase) Sale(ctx context.Context, userID, lotID string) (*entity.MovementRecord, error) {
	if lotID == "" {
		return nil, domain.ErrInvalidInput
	}
	return uc.consumeUnit(ctx, lotID, func(lot *entity.Lot, now time.Time) *entity.MovementRecord {
		return &entity.MovementRecord{
			ID:        uuid.New().String(),
			Type:      entity.MovementTypeSale,
			Category:  lot.Category,
			Flavor:    lot.Flavor,
			Size:      lot.Size,
			Quantity:  1,
			UnitPrice: lot.UnitPrice,
			UnitCost:  lot.UnitCost,
			Amount:    lot.UnitPrice,
			StoreID:   lot.LocationID,
			Date:      now.Format("2006-01-02"),
			CreatedAt: now,
			CreatedBy: userID,
		}
	})
}

// Waste registra la merma de exactamente 1 unidad con motivo obligatorio.
// El registro se valúa al costo unitario: una merma pierde base de costo, no
// ingreso potencial. Si el motivo viene vacío no se muta nada.
func (uc *UseCase) Waste(ctx context.Context, userID, lotID, reason string) (*entity.MovementRecord, error) {
	reason = strings.TrimSpace(reason)
	if lotID == "" || reason == "" {
		return nil, domain.ErrInvalidInput
	}
	return uc.consumeUnit(ctx, lotID, func(lot *entity.Lot, now time.Time) *entity.MovementRecord {
		return &entity.MovementRecord{
			ID:        uuid.New().String(),
			Type:      entity.MovementTypeWaste,
			Category:  lot.Category,
			Flavor:    lot.Flavor,
			Size:      lot.Size,
			Quantity:  1,
			UnitPrice: lot.UnitPrice,
			UnitCost:  lot.UnitCost,
			Amount:    lot.UnitCost,
			StoreID:   lot.LocationID,
			Date:      now.Format("2006-01-02"),
			Reason:    reason,
			CreatedAt: now,
			CreatedBy: userID,
		}
	})
}

// consumeUnit resta 1 unidad bajo bloqueo de fila y anexa el registro que arma
// buildRecord con el snapshot del lote, todo en la misma transacción.
func (uc *UseCase) consumeUnit(
	ctx context.Context,
	lotID string,
	buildRecord func(lot *entity.Lot, now time.Time) *entity.MovementRecord,
) (*entity.MovementRecord, error) {
	now := time.Now()
	var record *entity.MovementRecord

	err := uc.txRunner.Run(ctx, func(
		lotRepo repository.LotRepository,
		movRepo repository.MovementRepository,
		_ repository.TransferRepository,
	) error {
		lot, err := lotRepo.GetForUpdate(lotID)
		if err != nil {
			return err
		}
		if lot == nil {
			return domain.ErrNotFound
		}
		if lot.Quantity < 1 {
			return domain.ErrInsufficientStock
		}
		if _, err := lotRepo.Decrement(lot.ID, 1); err != nil {
			return err
		}
		record = buildRecord(lot, now)
		return movRepo.Create(record)
	})
	if err != nil {
		return nil, err
	}
	return record, nil
}

// folio genera el consecutivo corto de la nota de entrega (últimos 6 dígitos
// del epoch en milisegundos, como el ticket original).
func folio(now time.Time) string {
	ms := fmt.Sprintf("%d", now.UnixMilli())
	if len(ms) <= 6 {
		return ms
	}
	return ms[len(ms)-6:]
}
