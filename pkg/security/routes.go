package security

import (
	"errors"
	"net/http"

	custom_error "enstracker/pkg/errors"

	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type authResponse struct {
	Token string      `json:"token"`
	User  interface{} `json:"user"`
}

func RegisterRoutes(router *gin.Engine, auth *Authenticator) {
	router.POST("/login", loginHandler(auth))
	router.POST("/signup", signupHandler(auth))
}

func loginHandler(auth *Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
			return
		}

		user, token, err := auth.Login(c.Request.Context(), req.Username, req.Password)
		if err != nil {
			respondAuthError(c, err)
			return
		}

		user.PasswordHash = ""
		c.JSON(http.StatusOK, authResponse{Token: token, User: user})
	}
}

func signupHandler(auth *Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SignupRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
			return
		}

		user, token, err := auth.Signup(c.Request.Context(), req)
		if err != nil {
			respondAuthError(c, err)
			return
		}

		user.PasswordHash = ""
		c.JSON(http.StatusCreated, authResponse{Token: token, User: user})
	}
}

func respondAuthError(c *gin.Context, err error) {
	var validation *custom_error.ValidationError

	switch {
	case errors.Is(err, ErrInvalidCredentials):
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
	case errors.Is(err, ErrUserExists):
		c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "User exists"})
	case errors.As(err, &validation):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": validation.Error()})
	default:
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Authentication failed", "details": err.Error()})
	}
}
