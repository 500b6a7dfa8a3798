package controller

import (
	"net/http"

	"nilk-backend/logic"
	"nilk-backend/models"

	"github.com/gin-gonic/gin"
)

// UserController handles HTTP requests
type UserController struct {
	userLogic *logic.UserLogic
}

func NewUserController(logic *logic.UserLogic) *UserController {
	return &UserController{userLogic: logic}
}

// Login handles POST /user/login
func (c *UserController) Login(ctx *gin.Context) {
	type Request struct {
		WalletAddress string `json:"wallet_address" binding:"required"`
		Message       string `json:"message" binding:"required"`
		Signature     string `json:"signature" binding:"required"`
	}
	var req Request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, token, expireAt, err := c.userLogic.Login(req.WalletAddress, req.Message, req.Signature)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"token":      token,
		"expires_at": expireAt,
		"profile":    profile,
	})
}

// GetProfile handles GET /profile
func (c *UserController) GetProfile(ctx *gin.Context) {
	wallet, err := extractWalletAddress(ctx)
	if err != nil {
		return
	}

	profile, err := c.userLogic.GetProfile(wallet)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, profile)
}

// UpdateCows handles PUT /profile/cows
func (c *UserController) UpdateCows(ctx *gin.Context) {
	wallet, err := extractWalletAddress(ctx)
	if err != nil {
		return
	}

	type Request struct {
		Cows []models.Cow `json:"cows" binding:"required"`
	}
	var req Request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := c.userLogic.UpdateCows(wallet, req.Cows); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Cow inventory updated"})
}
