package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "machine-rental/internal/handler/dto/request"
	resdto "machine-rental/internal/handler/dto/response"
	"machine-rental/internal/infra"
	"machine-rental/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CatalogHandler struct {
	catalogQueries queries.CatalogQueries
}

func NewCatalogHandler(catalogQueries queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{catalogQueries: catalogQueries}
}

// @Summary List rentable machines
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Param category query string false "Filter by category"
// @Param q query string false "Keyword search over name and description"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {array} resdto.MachineListResponse
// @Router /catalog/machines [get]
func (h *CatalogHandler) ListMachines(c *gin.Context) {
	filter := queries.CatalogFilter{}
	if category := c.Query("category"); category != "" {
		filter.Category = &category
	}
	if keyword := c.Query("q"); keyword != "" {
		filter.Keyword = &keyword
	}
	page := parsePage(c)

	items, err := h.catalogQueries.ListMachines(c.Request.Context(), filter, page)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	resp := make([]resdto.MachineListResponse, 0, len(items))
	for i := range items {
		resp = append(resp, *resdto.FromMachineListItem(&items[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Machine detail
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Param id path string true "Machine ID"
// @Success 200 {object} resdto.MachineResponse
// @Failure 404 {object} map[string]string
// @Router /catalog/machines/{id} [get]
func (h *CatalogHandler) GetMachine(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid machine ID",
		})
		return
	}

	view, err := h.catalogQueries.GetMachine(c.Request.Context(), id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Machine not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromMachineView(view))
}

// @Summary Check booking availability
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Param id path string true "Machine ID"
// @Param starts_at query string true "Period start (RFC3339)"
// @Param ends_at query string true "Period end (RFC3339)"
// @Param requested_count query int false "Units requested"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /catalog/machines/{id}/availability [get]
func (h *CatalogHandler) CheckAvailability(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid machine ID",
		})
		return
	}

	var req reqdto.AvailabilityRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid availability query",
		})
		return
	}

	result, err := h.catalogQueries.CheckAvailability(c.Request.Context(), id, req.StartsAt, req.EndsAt, req.RequestedCount)
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Machine not found",
			})
		case errors.Is(err, queries.ErrInvalidPeriod), errors.Is(err, queries.ErrInvalidCount):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": err.Error(),
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromAvailability(result))
}

func parsePage(c *gin.Context) queries.ListPage {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	return queries.NewListPage(page, limit)
}
