package repository

import "github.com/davidrmz/chipsmanager-api/internal/domain/entity"

// StoreRepository define el puerto de persistencia para tiendas.
type StoreRepository interface {
	Create(store *entity.Store) error
	GetByID(id string) (*entity.Store, error)
	Update(store *entity.Store) error
	List() ([]*entity.Store, error)
	Delete(id string) error
}
