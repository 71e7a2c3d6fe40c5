package handlers

import (
	"github.com/jmoiron/sqlx"

	"storekeeper/internal/repos"
	"storekeeper/internal/services"
)

type Deps struct {
	CategoryHandler *CategoryHandler
	ProductHandler  *ProductHandler
}

func NewDeps(db *sqlx.DB) *Deps {
	catRepo := repos.NewCategoryRepo(db)
	prodRepo := repos.NewProductRepo(db)

	catalogSvc := services.NewCatalogService(catRepo, prodRepo)

	return &Deps{
		CategoryHandler: &CategoryHandler{Catalog: catalogSvc},
		ProductHandler:  &ProductHandler{Catalog: catalogSvc},
	}
}
