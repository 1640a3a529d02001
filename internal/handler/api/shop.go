package api

import (
	"net/http"

	reqdto "shop-booking/internal/handler/dto/request"
	resdto "shop-booking/internal/handler/dto/response"
	"shop-booking/internal/handler/httperr"
	"shop-booking/internal/usecase/commands"
	"shop-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ShopHandler struct {
	cmds commands.ShopCommands
	q    queries.ShopQueries
}

func NewShopHandler(cmds commands.ShopCommands, q queries.ShopQueries) *ShopHandler {
	return &ShopHandler{cmds: cmds, q: q}
}

// @Summary Register shop
// @Tags shops
// @Accept json
// @Produce json
// @Param request body reqdto.CreateShopRequest true "Shop with opening hours"
// @Success 201 {object} resdto.CreatedShopResponse
// @Failure 400 {object} httperr.Response
// @Router /api/shops [post]
func (h *ShopHandler) Create(c *gin.Context) {
	var req reqdto.CreateShopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	id, err := h.cmds.Create(c.Request.Context(), req.Name, req.ToInput())
	if err != nil {
		httperr.AbortWithMapped(c, err, usecaseErrors)
		return
	}
	c.JSON(http.StatusCreated, resdto.CreatedShopResponse{ID: id})
}

// @Summary Get shop
// @Tags shops
// @Produce json
// @Param shopId path string true "Shop ID"
// @Success 200 {object} resdto.ShopResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/shops/{shopId} [get]
func (h *ShopHandler) Get(c *gin.Context) {
	shopID, err := uuid.Parse(c.Param("shopId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid shop id", nil)
		return
	}
	h.respondWithView(c, shopID)
}

// @Summary Update opening hours
// @Description Replace a shop's working days and opening hours
// @Tags shops
// @Accept json
// @Produce json
// @Param shopId path string true "Shop ID"
// @Param request body reqdto.ShopHoursRequest true "Opening hours"
// @Success 200 {object} resdto.ShopResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/shops/{shopId}/hours [put]
func (h *ShopHandler) UpdateHours(c *gin.Context) {
	shopID, err := uuid.Parse(c.Param("shopId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid shop id", nil)
		return
	}
	var req reqdto.ShopHoursRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}
	if err = h.cmds.UpdateHours(c.Request.Context(), shopID, req.ToInput()); err != nil {
		httperr.AbortWithMapped(c, err, usecaseErrors)
		return
	}
	h.respondWithView(c, shopID)
}

// @Summary Patch opening hours
// @Description Change some of a shop's working days and opening hours, keeping the rest
// @Tags shops
// @Accept json
// @Produce json
// @Param shopId path string true "Shop ID"
// @Param request body reqdto.PatchShopHoursRequest true "Fields to change"
// @Success 200 {object} resdto.ShopResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/shops/{shopId}/hours [patch]
func (h *ShopHandler) PatchHours(c *gin.Context) {
	shopID, err := uuid.Parse(c.Param("shopId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid shop id", nil)
		return
	}
	var req reqdto.PatchShopHoursRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}
	existing, err := h.q.GetByID(c.Request.Context(), shopID)
	if err != nil {
		httperr.AbortWithMapped(c, err, usecaseErrors)
		return
	}
	if err = h.cmds.UpdateHours(c.Request.Context(), shopID, req.ToInput(existing)); err != nil {
		httperr.AbortWithMapped(c, err, usecaseErrors)
		return
	}
	h.respondWithView(c, shopID)
}

func (h *ShopHandler) respondWithView(c *gin.Context, shopID uuid.UUID) {
	view, err := h.q.GetByID(c.Request.Context(), shopID)
	if err != nil {
		httperr.AbortWithMapped(c, err, usecaseErrors)
		return
	}
	c.JSON(http.StatusOK, resdto.FromShopView(view))
}
