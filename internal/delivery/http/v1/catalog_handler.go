package v1

import (
	"fmt"
	"net/http"

	"cleanpro-web/internal/delivery/http/response"
	"cleanpro-web/internal/domain"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type CatalogHandler struct {
	catalogUC domain.CatalogUsecase
}

// NewCatalogHandler registers the read-only catalog routes.
func NewCatalogHandler(public *gin.RouterGroup, catalogUC domain.CatalogUsecase) {
	handler := &CatalogHandler{catalogUC: catalogUC}

	public.GET("/categories", handler.ListCategories)
	public.GET("/categories/:slug", handler.GetCategory)
	public.GET("/services", handler.ListServices)
	public.GET("/services/popular", handler.ListPopular)
	public.GET("/services/export.xlsx", handler.ExportPriceList)
	public.GET("/services/:slug", handler.GetService)
	public.GET("/stats", handler.GetStats)
}

// ListCategories godoc
// @Summary      List Service Categories
// @Description  All categories in display order, each with its services.
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.ServiceCategory}
// @Router       /categories [get]
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	response.Success(c, http.StatusOK, "Categories retrieved", h.catalogUC.ListCategories(c.Request.Context()))
}

// GetCategory godoc
// @Summary      Get Service Category
// @Tags         catalog
// @Produce      json
// @Param        slug  path      string  true  "Category slug"
// @Success      200   {object}  response.Response{data=domain.ServiceCategory}
// @Failure      404   {object}  response.Response
// @Router       /categories/{slug} [get]
func (h *CatalogHandler) GetCategory(c *gin.Context) {
	cat, err := h.catalogUC.GetCategory(c.Request.Context(), c.Param("slug"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Category retrieved", cat)
}

// ListServices godoc
// @Summary      List Services
// @Description  Every service in catalog order; q filters by category or service name and description.
// @Tags         catalog
// @Produce      json
// @Param        q    query     string  false  "Search text"
// @Success      200  {object}  response.Response{data=[]domain.Service}
// @Router       /services [get]
func (h *CatalogHandler) ListServices(c *gin.Context) {
	services := h.catalogUC.ListServices(c.Request.Context(), c.Query("q"))
	response.Success(c, http.StatusOK, fmt.Sprintf("%d services", len(services)), services)
}

// ListPopular godoc
// @Summary      List Popular Services
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Service}
// @Router       /services/popular [get]
func (h *CatalogHandler) ListPopular(c *gin.Context) {
	response.Success(c, http.StatusOK, "Popular services retrieved", h.catalogUC.ListPopularServices(c.Request.Context()))
}

// GetService godoc
// @Summary      Get Service
// @Tags         catalog
// @Produce      json
// @Param        slug  path      string  true  "Service slug"
// @Success      200   {object}  response.Response{data=domain.Service}
// @Failure      404   {object}  response.Response
// @Router       /services/{slug} [get]
func (h *CatalogHandler) GetService(c *gin.Context) {
	svc, err := h.catalogUC.GetService(c.Request.Context(), c.Param("slug"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Service retrieved", svc)
}

// GetStats godoc
// @Summary      Catalog Statistics
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.CatalogStats}
// @Router       /stats [get]
func (h *CatalogHandler) GetStats(c *gin.Context) {
	response.Success(c, http.StatusOK, "Catalog statistics", h.catalogUC.Stats(c.Request.Context()))
}

// ExportPriceList godoc
// @Summary      Download Price List
// @Description  The catalog as an Excel workbook, one row per service.
// @Tags         catalog
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}    binary
// @Failure      500  {object}  response.Response
// @Router       /services/export.xlsx [get]
func (h *CatalogHandler) ExportPriceList(c *gin.Context) {
	data, filename, err := h.catalogUC.ExportPriceList(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, xlsxContentType, data)
}
