package catalog

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/jhoicas/Warrick-api/internal/application/dto"
	"github.com/jhoicas/Warrick-api/internal/domain"
	"github.com/jhoicas/Warrick-api/internal/domain/entity"
	"github.com/jhoicas/Warrick-api/internal/domain/repository"
	"github.com/jhoicas/Warrick-api/internal/domain/settlement"
)

// ProductUseCase casos de uso CRUD para productos del catálogo.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un producto; se inserta al inicio del catálogo.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.ProductRequest) (*dto.ProductResponse, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	product := entity.Product{
		ID:    uuid.New().String(),
		Name:  in.Name,
		Price: in.Price,
		Stock: in.Stock,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	out := dto.NewProductResponse(product)
	return &out, nil
}

// Update reemplaza nombre, precio y stock.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.ProductRequest) (*dto.ProductResponse, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	current, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, domain.ErrNotFound
	}
	product := entity.Product{ID: id, Name: in.Name, Price: in.Price, Stock: in.Stock}
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	out := dto.NewProductResponse(product)
	return &out, nil
}

// Delete elimina un producto. Sin confirmación explícita no se toca el almacén.
func (uc *ProductUseCase) Delete(ctx context.Context, id string, confirm bool) error {
	if !confirm {
		return domain.ErrConfirmationRequired
	}
	return uc.repo.Delete(ctx, id)
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	out := dto.NewProductResponse(*product)
	return &out, nil
}

// List lista productos aplicando la búsqueda global por nombre.
func (uc *ProductUseCase) List(ctx context.Context, query string) ([]dto.ProductResponse, error) {
	all, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	found := settlement.SearchProducts(all, query)
	out := make([]dto.ProductResponse, 0, len(found))
	for _, p := range found {
		out = append(out, dto.NewProductResponse(p))
	}
	return out, nil
}

// Import agrega productos en bloque (CLI). Un producto cuyo nombre ya existe
// (sin distinguir mayúsculas) se actualiza en lugar de duplicarse.
func (uc *ProductUseCase) Import(ctx context.Context, rows []dto.ProductRequest) (created, updated int, err error) {
	for _, in := range rows {
		in.Name = strings.TrimSpace(in.Name)
		if err := dto.Validate(in); err != nil {
			return created, updated, err
		}
		all, err := uc.repo.List(ctx)
		if err != nil {
			return created, updated, err
		}
		if existing, ok := settlement.FindProductByName(all, in.Name); ok {
			existing.Price = in.Price
			existing.Stock = in.Stock
			if err := uc.repo.Update(ctx, existing); err != nil {
				return created, updated, err
			}
			updated++
			continue
		}
		if _, err := uc.Create(ctx, in); err != nil {
			return created, updated, err
		}
		created++
	}
	return created, updated, nil
}
