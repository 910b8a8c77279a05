package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/davidrmz/chipsmanager-api/internal/application/dto"
	"github.com/davidrmz/chipsmanager-api/internal/domain"
	"github.com/davidrmz/chipsmanager-api/internal/domain/entity"
	"github.com/davidrmz/chipsmanager-api/internal/domain/repository"
)

// StoreUseCase registro de tiendas minoristas.
type StoreUseCase struct {
	storeRepo repository.StoreRepository
	lotRepo   repository.LotRepository
}

// NewStoreUseCase construye el caso de uso de tiendas.
func NewStoreUseCase(storeRepo repository.StoreRepository, lotRepo repository.LotRepository) *StoreUseCase {
	return &StoreUseCase{storeRepo: storeRepo, lotRepo: lotRepo}
}

// Create da de alta una tienda. Solo el nombre es obligatorio.
func (uc *StoreUseCase) Create(in dto.CreateStoreRequest) (*entity.Store, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	store := &entity.Store{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(in.Name),
		Location:  strings.TrimSpace(in.Location),
		Manager:   strings.TrimSpace(in.Manager),
		Phone:     strings.TrimSpace(in.Phone),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.storeRepo.Create(store); err != nil {
		return nil, err
	}
	return store, nil
}

// GetByID devuelve una tienda o ErrNotFound.
func (uc *StoreUseCase) GetByID(id string) (*entity.Store, error) {
	store, err := uc.storeRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.ErrNotFound
	}
	return store, nil
}

// List devuelve todas las tiendas registradas.
func (uc *StoreUseCase) List() ([]*entity.Store, error) {
	return uc.storeRepo.List()
}

// Update aplica cambios parciales a una tienda.
func (uc *StoreUseCase) Update(id string, in dto.UpdateStoreRequest) (*entity.Store, error) {
	store, err := uc.storeRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, domain.ErrInvalidInput
		}
		store.Name = strings.TrimSpace(*in.Name)
	}
	if in.Location != nil {
		store.Location = strings.TrimSpace(*in.Location)
	}
	if in.Manager != nil {
		store.Manager = strings.TrimSpace(*in.Manager)
	}
	if in.Phone != nil {
		store.Phone = strings.TrimSpace(*in.Phone)
	}
	store.UpdatedAt = time.Now()
	if err := uc.storeRepo.Update(store); err != nil {
		return nil, err
	}
	return store, nil
}

// Delete elimina una tienda. Se rechaza con ErrConflict si la tienda todavía
// tiene lotes en piso: el inventario debe venderse, mermarse o ajustarse antes
// de dar de baja la ubicación.
func (uc *StoreUseCase) Delete(id string) error {
	store, err := uc.storeRepo.GetByID(id)
	if err != nil {
		return err
	}
	if store == nil {
		return domain.ErrNotFound
	}
	count, err := uc.lotRepo.CountByLocation(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrConflict
	}
	return uc.storeRepo.Delete(id)
}

// ToStoreResponse mapea la entidad al DTO HTTP.
func ToStoreResponse(s *entity.Store) dto.StoreResponse {
	return dto.StoreResponse{
		ID:        s.ID,
		Name:      s.Name,
		Location:  s.Location,
		Manager:   s.Manager,
		Phone:     s.Phone,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
