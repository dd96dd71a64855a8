package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/xosoviet/xoso-backend/internal/config"
	"golang.org/x/exp/slog"
)

// JWTAuthMiddleware creates a gin middleware for JWT authentication
func JWTAuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	 jwtSecret := []byte(cfg.JWT.Secret)

	 return func(c *gin.Context) {
	 	const bearerSchema = "Bearer "
	 	 authHeader := c.GetHeader("Authorization")
	 	 if authHeader == "" {
	 	 	 c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
	 	 	return
	 	 }

	 	 if !strings.HasPrefix(authHeader, bearerSchema) {
	 	 	 c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header must start with Bearer "})
	 	 	return
	 	 }

	 	 tokenString := authHeader[len(bearerSchema):]

	 	 token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
	 	 	 if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
	 	 	 	return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
	 	 	 }
	 	 	return jwtSecret, nil
	 	 })

	 	 if err != nil {
	 	 	slog.Warn("token validation failed", "error", err)
	 	 	 if errors.Is(err, jwt.ErrTokenExpired) {
	 	 	 	 c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token has expired"})
	 	 	 } else {
	 	 	 	 c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
	 	 	 }
	 	 	return
	 	 }

	 	 if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
	 	 	 c.Set("userID", claims["sub"])
	 	 	 c.Set("userEmail", claims["email"])
	 	 	 c.Set("userRole", claims["role"])
	 	 	 c.Next()
	 	 } else {
	 	 	 c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
	 	 }
	 }
}
