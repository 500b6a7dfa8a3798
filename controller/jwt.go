package controller

import (
	"errors"
	"net/http"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
)

func extractWalletAddress(c *gin.Context) (string, error) {
	userClaims, exists := c.Get("user")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", errors.New("user not found in context")
	}

	claims, ok := userClaims.(jwt.MapClaims)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user claims"})
		return "", errors.New("invalid user claims")
	}

	wallet, ok := claims["wallet_address"].(string)
	if !ok || wallet == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "wallet_address not found in token"})
		return "", errors.New("wallet_address not found in token")
	}

	return wallet, nil
}
