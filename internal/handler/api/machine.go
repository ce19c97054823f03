package api

import (
	"errors"
	"net/http"

	"machine-rental/internal/domain/machine"
	reqdto "machine-rental/internal/handler/dto/request"
	resdto "machine-rental/internal/handler/dto/response"
	"machine-rental/internal/handler/middleware"
	"machine-rental/internal/infra"
	"machine-rental/internal/usecase/commands"
	"machine-rental/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MachineHandler serves the owner's fleet management surface.
type MachineHandler struct {
	machineCommands commands.MachineCommands
	catalogQueries  queries.CatalogQueries
}

func NewMachineHandler(machineCommands commands.MachineCommands, catalogQueries queries.CatalogQueries) *MachineHandler {
	return &MachineHandler{
		machineCommands: machineCommands,
		catalogQueries:  catalogQueries,
	}
}

// @Summary List my machines
// @Tags owner-machines
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.MachineListResponse
// @Router /owner/machines [get]
func (h *MachineHandler) List(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	items, err := h.catalogQueries.ListMachines(c.Request.Context(), queries.CatalogFilter{OwnerID: &ownerID}, parsePage(c))
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

// @Summary Register a machine
// @Tags owner-machines
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateMachineRequest true "Machine listing"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /owner/machines [post]
func (h *MachineHandler) Create(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateMachineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.machineCommands.CreateMachine(c.Request.Context(), ownerID, commands.CreateMachineParams{
		Name:              req.Name,
		Code:              req.Code,
		Description:       req.Description,
		Category:          req.Category,
		PricePerHourCents: req.PricePerHourCents,
		Specs:             toSpecs(req.Specs),
	})
	if err != nil {
		respondMachineError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary Update a machine
// @Tags owner-machines
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Machine ID"
// @Param request body reqdto.UpdateMachineRequest true "Partial update"
// @Success 200 {object} resdto.MachineResponse
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /owner/machines/{id} [patch]
func (h *MachineHandler) Update(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	machineID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid machine ID",
		})
		return
	}

	var req reqdto.UpdateMachineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	var specs *machine.Specs
	if req.Specs != nil {
		s := toSpecs(*req.Specs)
		specs = &s
	}
	if err := h.machineCommands.UpdateMachine(c.Request.Context(), ownerID, commands.UpdateMachineParams{
		MachineID:         machineID,
		Name:              req.Name,
		Description:       req.Description,
		Category:          req.Category,
		PricePerHourCents: req.PricePerHourCents,
		Specs:             specs,
		IsActive:          req.IsActive,
	}); err != nil {
		respondMachineError(c, err)
		return
	}

	view, err := h.catalogQueries.GetMachine(c.Request.Context(), machineID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromMachineView(view))
}

// @Summary Add a physical unit
// @Tags owner-machines
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Machine ID"
// @Param request body reqdto.CreateInstanceRequest true "Instance to add"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /owner/machines/{id}/instances [post]
func (h *MachineHandler) AddInstance(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	machineID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid machine ID",
		})
		return
	}

	var req reqdto.CreateInstanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.machineCommands.AddInstance(c.Request.Context(), ownerID, commands.CreateInstanceParams{
		MachineID:    machineID,
		InstanceCode: req.InstanceCode,
	})
	if err != nil {
		respondMachineError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary Change an instance's status
// @Tags owner-machines
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Machine ID"
// @Param instanceId path string true "Instance ID"
// @Param request body reqdto.UpdateInstanceRequest true "New status"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /owner/machines/{id}/instances/{instanceId} [patch]
func (h *MachineHandler) UpdateInstance(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	machineID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid machine ID",
		})
		return
	}
	instanceID, err := uuid.Parse(c.Param("instanceId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid instance ID",
		})
		return
	}

	var req reqdto.UpdateInstanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.machineCommands.UpdateInstanceStatus(c.Request.Context(), ownerID, commands.UpdateInstanceParams{
		MachineID:  machineID,
		InstanceID: instanceID,
		Status:     machine.InstanceStatus(req.Status),
	}); err != nil {
		respondMachineError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Instance updated",
	})
}

func toSpecs(req reqdto.MachineSpecs) machine.Specs {
	return machine.Specs{
		Images:     req.Images,
		Gallery:    req.Gallery,
		Highlights: req.Highlights,
		Location:   req.Location,
	}
}

func respondMachineError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrMachineNotFound),
		errors.Is(err, commands.ErrInstanceNotFound),
		errors.Is(err, commands.ErrNotMachineOwner),
		infra.IsKind(err, infra.KindNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Machine not found",
		})
	case errors.Is(err, commands.ErrDuplicateMachineCode),
		errors.Is(err, commands.ErrDuplicateInstanceCode):
		c.JSON(http.StatusConflict, gin.H{
			"error": err.Error(),
		})
	case errors.Is(err, machine.ErrEmptyName),
		errors.Is(err, machine.ErrEmptyCode),
		errors.Is(err, machine.ErrEmptyCategory),
		errors.Is(err, machine.ErrNegativePrice),
		errors.Is(err, machine.ErrEmptyInstanceCode),
		errors.Is(err, machine.ErrInvalidInstanceStatus):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": err.Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
