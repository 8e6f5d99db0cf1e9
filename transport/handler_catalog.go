package transport

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/pmyge/humo-tezkor-frontend/constant"
	"github.com/pmyge/humo-tezkor-frontend/utils/errors"
)

// Categories handler
// @Summary List product categories
// @Tags Catalog
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Category
// @Router /catalog/categories [get]
func (s *RestHandler) Categories(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.session(w, r); !ok {
		return
	}
	categories, err := s.CatalogApp.Categories(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, categories)
}

// CategoryProducts handler
// @Summary List products of a category
// @Tags Catalog
// @Produce json
// @Security BearerAuth
// @Param id path int true "Category ID"
// @Success 200 {array} model.Product
// @Router /catalog/categories/{id}/products [get]
func (s *RestHandler) CategoryProducts(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.session(w, r); !ok {
		return
	}
	categoryID, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	products, err := s.CatalogApp.CategoryProducts(r.Context(), categoryID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, products)
}

// Products handler
// @Summary List or search all products
// @Tags Catalog
// @Produce json
// @Security BearerAuth
// @Param query query string false "Search query"
// @Param language query string false "uz or ru"
// @Success 200 {array} model.Product
// @Router /catalog/products [get]
func (s *RestHandler) Products(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.session(w, r); !ok {
		return
	}
	query := r.URL.Query().Get("query")
	language := r.URL.Query().Get("language")
	if language == "" {
		language = constant.DefaultLanguage
	}

	if query == "" {
		products, err := s.CatalogApp.AllProducts(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeSuccess(w, products)
		return
	}

	products, err := s.CatalogApp.Search(r.Context(), query, language)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, products)
}
