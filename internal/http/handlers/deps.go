package handlers

import (
	"nordhem/internal/repos"
	"nordhem/internal/services"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	ProductHandler *ProductHandler
	AuthHandler    *AuthHandler
}

func NewDeps(db *sqlx.DB, auth *services.AuthService) *Deps {
	catRepo := repos.NewCategoryRepo(db)
	colorRepo := repos.NewColorRepo(db)
	prodRepo := repos.NewProductRepo(db)

	catalogSvc := services.NewCatalogService(catRepo, colorRepo, prodRepo)

	return &Deps{
		ProductHandler: &ProductHandler{Catalog: catalogSvc},
		AuthHandler:    &AuthHandler{Auth: auth},
	}
}
