package catalog

import (
	"context"
	"strings"

	"github.com/pmyge/humo-tezkor-frontend/model"
	"github.com/pmyge/humo-tezkor-frontend/thirdparty/storeapi"
	"github.com/pmyge/humo-tezkor-frontend/utils/logger"
	"go.uber.org/zap"
)

type CatalogApp interface {
	Categories(ctx context.Context) ([]model.Category, error)
	CategoryProducts(ctx context.Context, categoryID uint64) ([]model.Product, error)
	AllProducts(ctx context.Context) ([]model.Product, error)
	Search(ctx context.Context, query, language string) ([]model.Product, error)
}

type catalogAppImpl struct {
	api storeapi.Client
}

func NewCatalogApp(api storeapi.Client) CatalogApp {
	return &catalogAppImpl{api: api}
}

func (s *catalogAppImpl) Categories(ctx context.Context) ([]model.Category, error) {
	categories, err := s.api.GetCategories(ctx)
	if err != nil {
		logger.Error("[Catalog] categories", zap.String("error", err.Error()))
		return nil, err
	}
	return categories, nil
}

func (s *catalogAppImpl) CategoryProducts(ctx context.Context, categoryID uint64) ([]model.Product, error) {
	products, err := s.api.GetCategoryProducts(ctx, categoryID)
	if err != nil {
		logger.Error("[Catalog] category products", zap.String("error", err.Error()),
			zap.Uint64("category_id", categoryID))
		return nil, err
	}
	return products, nil
}

func (s *catalogAppImpl) AllProducts(ctx context.Context) ([]model.Product, error) {
	products, err := s.api.GetAllProducts(ctx)
	if err != nil {
		logger.Error("[Catalog] all products", zap.String("error", err.Error()))
		return nil, err
	}
	return products, nil
}

// Search filters the full product list by a case-insensitive substring match
// on the localized name.
func (s *catalogAppImpl) Search(ctx context.Context, query, language string) ([]model.Product, error) {
	products, err := s.AllProducts(ctx)
	if err != nil {
		return nil, err
	}
	needle := strings.ToLower(query)
	matched := make([]model.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.LocalizedName(language)), needle) {
			matched = append(matched, p)
		}
	}
	return matched, nil
}
