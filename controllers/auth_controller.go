package controllers

import (
	"errors"
	"net/http"

	"github.com/omarionnn/BigOrders/entity"
	"github.com/omarionnn/BigOrders/pkg/resp"
	"github.com/omarionnn/BigOrders/services"
	"github.com/omarionnn/BigOrders/utils"

	"github.com/gin-gonic/gin"
)

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthController struct{ Svc *services.AuthService }

func NewAuthController(s *services.AuthService) *AuthController { return &AuthController{Svc: s} }

func userView(u *entity.User) gin.H {
	return gin.H{"id": u.ID, "name": u.Name, "email": u.Email}
}

// POST /api/auth/register
func (a *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, user, err := a.Svc.Register(req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"token": token, "user": userView(user)})
}

// POST /api/auth/login
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, user, err := a.Svc.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			resp.Unauthorized(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": userView(user)})
}

// GET /api/auth/me
func (a *AuthController) Me(c *gin.Context) {
	user, err := a.Svc.Me(utils.CurrentUserID(c))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.NotFound(c, "user not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": userView(user)})
}
