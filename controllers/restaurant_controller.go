package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/omarionnn/BigOrders/pkg/resp"
	"github.com/omarionnn/BigOrders/services"

	"github.com/gin-gonic/gin"
)

type RestaurantController struct{ Svc *services.RestaurantService }

func NewRestaurantController(s *services.RestaurantService) *RestaurantController {
	return &RestaurantController{Svc: s}
}

// GET /api/restaurants
func (ctl *RestaurantController) List(c *gin.Context) {
	rests, err := ctl.Svc.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, rests)
}

// GET /api/restaurants/:id
func (ctl *RestaurantController) Detail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid restaurant id")
		return
	}

	rest, err := ctl.Svc.Detail(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.NotFound(c, "restaurant not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, rest)
}

// GET /api/restaurants/search?query=
func (ctl *RestaurantController) Search(c *gin.Context) {
	rests, err := ctl.Svc.Search(c.Query("query"))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, rests)
}

// GET /api/restaurants/recommendations
func (ctl *RestaurantController) Recommendations(c *gin.Context) {
	rests, err := ctl.Svc.Recommendations()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, rests)
}
