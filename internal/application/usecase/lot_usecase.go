package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/davidrmz/chipsmanager-api/internal/application/dto"
	"github.com/davidrmz/chipsmanager-api/internal/domain"
	"github.com/davidrmz/chipsmanager-api/internal/domain/entity"
	"github.com/davidrmz/chipsmanager-api/internal/domain/inventory"
	"github.com/davidrmz/chipsmanager-api/internal/domain/repository"
)

// LotUseCase altas, consultas y ajustes de lotes de almacén. Los decrementos
// operativos (venta, merma, traslado) NO pasan por aquí: son del motor de
// movimientos. Este caso de uso cubre la captura manual del bodeguero.
type LotUseCase struct {
	lotRepo repository.LotRepository
}

// NewLotUseCase construye el caso de uso de lotes.
func NewLotUseCase(lotRepo repository.LotRepository) *LotUseCase {
	return &LotUseCase{lotRepo: lotRepo}
}

// Create da de alta un lote nuevo en el almacén con fecha de recepción "hoy".
func (uc *LotUseCase) Create(in dto.CreateLotRequest) (*entity.Lot, error) {
	if err := validateLotFields(in.Category, in.Flavor, in.Size, in.Quantity, in.UnitCost, in.UnitPrice); err != nil {
		return nil, err
	}
	now := time.Now()
	lot := &entity.Lot{
		ID:           uuid.New().String(),
		Category:     strings.TrimSpace(in.Category),
		Flavor:       strings.TrimSpace(in.Flavor),
		Size:         strings.TrimSpace(in.Size),
		Quantity:     in.Quantity,
		UnitCost:     in.UnitCost,
		UnitPrice:    in.UnitPrice,
		LocationID:   entity.LocationWarehouse,
		ReceivedDate: now.Format("2006-01-02"),
		ReceivedAt:   now,
	}
	if err := uc.lotRepo.Create(lot); err != nil {
		return nil, err
	}
	return lot, nil
}

// GetByID devuelve un lote o ErrNotFound.
func (uc *LotUseCase) GetByID(id string) (*entity.Lot, error) {
	lot, err := uc.lotRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if lot == nil {
		return nil, domain.ErrNotFound
	}
	return lot, nil
}

// Update sobrescribe identidad, cantidad, costo y precio de un lote en una
// sola operación. La ubicación y las fechas de recepción no se tocan: mover un
// lote es un traslado, no una edición.
func (uc *LotUseCase) Update(id string, in dto.UpdateLotRequest) (*entity.Lot, error) {
	if err := validateLotFields(in.Category, in.Flavor, in.Size, in.Quantity, in.UnitCost, in.UnitPrice); err != nil {
		return nil, err
	}
	lot, err := uc.lotRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if lot == nil {
		return nil, domain.ErrNotFound
	}
	lot.Category = strings.TrimSpace(in.Category)
	lot.Flavor = strings.TrimSpace(in.Flavor)
	lot.Size = strings.TrimSpace(in.Size)
	lot.Quantity = in.Quantity
	lot.UnitCost = in.UnitCost
	lot.UnitPrice = in.UnitPrice
	if err := uc.lotRepo.Update(lot); err != nil {
		return nil, err
	}
	return lot, nil
}

// ReduceOrDelete es el "bote de basura" de la pantalla de almacén: con
// all=false resta 1 unidad (eliminando el lote si era la última); con all=true
// elimina el lote completo sin importar cuánto quede.
func (uc *LotUseCase) ReduceOrDelete(id string, all bool) error {
	lot, err := uc.lotRepo.GetByID(id)
	if err != nil {
		return err
	}
	if lot == nil {
		return domain.ErrNotFound
	}
	if all {
		return uc.lotRepo.Delete(id)
	}
	_, err = uc.lotRepo.Decrement(id, 1)
	return err
}

// ListWarehouseGrouped agrupa el almacén por SKU con filtro de búsqueda
// opcional (insensible a mayúsculas y acentos). Los lotes de cada grupo salen
// en orden de consumo FIFO.
func (uc *LotUseCase) ListWarehouseGrouped(search string) ([]dto.WarehouseGroupResponse, error) {
	lots, err := uc.lotRepo.ListByLocation(entity.LocationWarehouse)
	if err != nil {
		return nil, err
	}
	groups := inventory.GroupWarehouseLots(lots, search)
	out := make([]dto.WarehouseGroupResponse, 0, len(groups))
	for _, g := range groups {
		resp := dto.WarehouseGroupResponse{
			Category:      g.Key.Category,
			Flavor:        g.Key.Flavor,
			Size:          g.Key.Size,
			TotalQuantity: g.TotalQuantity,
			Lots:          make([]dto.LotResponse, 0, len(g.Lots)),
		}
		for _, l := range g.Lots {
			resp.Lots = append(resp.Lots, ToLotResponse(l))
		}
		out = append(out, resp)
	}
	return out, nil
}

// ListByLocation lista los lotes de una ubicación (tienda o almacén) tal cual,
// sin agrupar.
func (uc *LotUseCase) ListByLocation(locationID string) ([]*entity.Lot, error) {
	if locationID == "" {
		return nil, domain.ErrInvalidInput
	}
	return uc.lotRepo.ListByLocation(locationID)
}

// ToLotResponse mapea la entidad al DTO HTTP.
func ToLotResponse(l *entity.Lot) dto.LotResponse {
	return dto.LotResponse{
		ID:           l.ID,
		Category:     l.Category,
		Flavor:       l.Flavor,
		Size:         l.Size,
		Quantity:     l.Quantity,
		UnitCost:     l.UnitCost,
		UnitPrice:    l.UnitPrice,
		LocationID:   l.LocationID,
		ReceivedDate: l.ReceivedDate,
		ReceivedAt:   l.ReceivedAt,
	}
}

func validateLotFields(category, flavor, size string, quantity int, unitCost, unitPrice decimal.Decimal) error {
	if strings.TrimSpace(category) == "" || strings.TrimSpace(flavor) == "" || strings.TrimSpace(size) == "" {
		return domain.ErrInvalidInput
	}
	// Un lote nunca se persiste en 0: llegar a 0 lo elimina, no se captura así.
	if quantity < 1 {
		return domain.ErrInvalidInput
	}
	if unitCost.LessThan(decimal.Zero) || unitPrice.LessThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	return nil
}
