package controllers

import (
	"errors"
	"net/http"

	"github.com/omarionnn/BigOrders/pkg/resp"
	"github.com/omarionnn/BigOrders/services"
	"github.com/omarionnn/BigOrders/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
)

type ProfileController struct{ Svc *services.ProfileService }

func NewProfileController(s *services.ProfileService) *ProfileController {
	return &ProfileController{Svc: s}
}

// GET /api/profile
func (ctl *ProfileController) Get(c *gin.Context) {
	user, err := ctl.Svc.Get(utils.CurrentUserID(c))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.NotFound(c, "user not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// PUT /api/profile
func (ctl *ProfileController) Update(c *gin.Context) {
	var req services.UpdateProfileIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := ctl.Svc.Update(utils.CurrentUserID(c), &req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.NotFound(c, "user not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// GET /api/profile/taste
func (ctl *ProfileController) GetTaste(c *gin.Context) {
	taste, err := ctl.Svc.GetTaste(utils.CurrentUserID(c))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.NotFound(c, "user not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, taste)
}

// PUT /api/profile/taste
func (ctl *ProfileController) UpdateTaste(c *gin.Context) {
	var req struct {
		TasteProfile datatypes.JSONMap `json:"tasteProfile" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	taste, err := ctl.Svc.UpdateTaste(utils.CurrentUserID(c), req.TasteProfile)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, taste)
}
