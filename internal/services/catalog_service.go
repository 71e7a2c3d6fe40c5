package services

import (
	"errors"

	"storekeeper/internal/domain"
	"storekeeper/internal/repos"
	"storekeeper/internal/validate"
)

// ErrInvalidInput marks a payload that failed field validation.
var ErrInvalidInput = errors.New("invalid input")

type CatalogService struct {
	Cats  *repos.CategoryRepo
	Prods *repos.ProductRepo
}

func NewCatalogService(cats *repos.CategoryRepo, prods *repos.ProductRepo) *CatalogService {
	return &CatalogService{Cats: cats, Prods: prods}
}

func (s *CatalogService) AddCategory(name string) (domain.Category, error) {
	if !validate.Text(name, validate.MaxCategoryName) {
		return domain.Category{}, ErrInvalidInput
	}
	return s.Cats.Create(name)
}

// AddProduct resolves the category before looking at the fields, so a bad
// payload aimed at a missing category still reports the missing category.
func (s *CatalogService) AddProduct(name, desc string, categoryID int64) (domain.Product, error) {
	if _, err := s.Cats.ByID(categoryID); err != nil {
		return domain.Product{}, err
	}
	if !validate.Product(name, desc) {
		return domain.Product{}, ErrInvalidInput
	}
	return s.Prods.Create(name, desc, categoryID)
}

func (s *CatalogService) UpdateCategory(id int64, name string) error {
	if !validate.Text(name, validate.MaxCategoryName) {
		return ErrInvalidInput
	}
	return s.Cats.UpdateName(id, name)
}

// UpdateProduct applies a partial update, all-or-nothing: every supplied
// field is validated (and a supplied category resolved) before anything is
// written, so a single bad field leaves the product untouched.
func (s *CatalogService) UpdateProduct(id int64, patch domain.ProductPatch) error {
	if patch.Name != nil && !validate.Text(*patch.Name, validate.MaxProductName) {
		return ErrInvalidInput
	}
	if patch.Desc != nil && !validate.Text(*patch.Desc, validate.MaxProductDesc) {
		return ErrInvalidInput
	}
	return s.Prods.Update(id, patch)
}

func (s *CatalogService) DeleteCategory(id int64) error {
	return s.Cats.DeleteCascade(id)
}

func (s *CatalogService) DeleteProduct(id int64) error {
	return s.Prods.Delete(id)
}

func (s *CatalogService) GetCategory(id int64) (domain.Category, error) {
	return s.Cats.ByID(id)
}

func (s *CatalogService) GetProduct(id int64) (domain.Product, error) {
	return s.Prods.ByID(id)
}

func (s *CatalogService) ListCategories() ([]domain.Category, error) {
	return s.Cats.List()
}

func (s *CatalogService) ListAllProducts() ([]domain.Product, error) {
	return s.Prods.ListAll()
}

func (s *CatalogService) ListProductsInCategory(categoryID int64) ([]domain.Product, error) {
	return s.Prods.ListByCategory(categoryID)
}
