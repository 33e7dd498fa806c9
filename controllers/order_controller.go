package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/omarionnn/BigOrders/pkg/resp"
	"github.com/omarionnn/BigOrders/services"
	"github.com/omarionnn/BigOrders/utils"

	"github.com/gin-gonic/gin"
)

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(s *services.OrderService) *OrderController { return &OrderController{Svc: s} }

type JoinOrderRequest struct {
	PIN string `json:"pin" binding:"required,len=6,numeric"`
}

type UpdateItemsRequest struct {
	Items []services.ItemIn `json:"items"`
}

func orderIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(c.Param("orderId"))
	if err != nil || id <= 0 {
		resp.BadRequest(c, "invalid order id")
		return 0, false
	}
	return uint(id), true
}

// POST /api/orders
func (ctl *OrderController) Create(c *gin.Context) {
	var req services.CreateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "please provide both restaurant ID and order name")
		return
	}

	order, err := ctl.Svc.Create(utils.CurrentUserID(c), &req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.NotFound(c, "restaurant not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "order": order})
}

// POST /api/orders/join
func (ctl *OrderController) Join(c *gin.Context) {
	var req JoinOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "please provide a PIN")
		return
	}

	order, err := ctl.Svc.Join(utils.CurrentUserID(c), req.PIN)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			resp.NotFound(c, "order not found")
		case errors.Is(err, services.ErrOrderClosed), errors.Is(err, services.ErrAlreadyJoined):
			resp.Conflict(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "order": order})
}

// GET /api/orders
func (ctl *OrderController) ListForMe(c *gin.Context) {
	orders, err := ctl.Svc.ListForUser(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "orders": orders})
}

// GET /api/orders/:orderId
func (ctl *OrderController) Detail(c *gin.Context) {
	orderID, ok := orderIDParam(c)
	if !ok {
		return
	}

	order, err := ctl.Svc.Detail(orderID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.NotFound(c, "order not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "order": order})
}

// PUT /api/orders/:orderId/items
func (ctl *OrderController) UpdateItems(c *gin.Context) {
	orderID, ok := orderIDParam(c)
	if !ok {
		return
	}

	var req UpdateItemsRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Items == nil {
		resp.BadRequest(c, "invalid items data, expected an array of items")
		return
	}

	participant, orderTotal, err := ctl.Svc.UpdateItems(utils.CurrentUserID(c), orderID, req.Items)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidItem):
			resp.BadRequest(c, err.Error())
		case errors.Is(err, services.ErrNotFound):
			resp.NotFound(c, "order not found")
		case errors.Is(err, services.ErrNotParticipant):
			resp.Forbidden(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"message":     "items updated successfully",
		"participant": participant,
		"orderTotal":  orderTotal,
	})
}

// GET /api/orders/:orderId/receipt
func (ctl *OrderController) Receipt(c *gin.Context) {
	orderID, ok := orderIDParam(c)
	if !ok {
		return
	}

	receipt, err := ctl.Svc.BuildReceipt(orderID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			resp.NotFound(c, "order not found")
		case errors.Is(err, services.ErrNoParticipants):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "receipt": receipt})
}
