package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"invoicing-backend/internal/apperror"
	"invoicing-backend/internal/middleware"
	"invoicing-backend/internal/models"
	"invoicing-backend/internal/repository"
)

type UserHandler struct {
	users *repository.UserRepository
}

func NewUserHandler(users *repository.UserRepository) *UserHandler {
	return &UserHandler{users: users}
}

// Me returns the profile used to pre-fill the issuer block of a new invoice.
func (h *UserHandler) Me(c *gin.Context) {
	user, err := h.users.GetByID(middleware.UserID(c))
	if errors.Is(err, repository.ErrNotFound) {
		respondError(c, apperror.NewNotFound("user", middleware.UserID(c)))
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// UpsertMe stores the onboarding profile for the authenticated subject.
func (h *UserHandler) UpsertMe(c *gin.Context) {
	var payload struct {
		Email     string `json:"email"`
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
		Address   string `json:"address"`
	}
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	user := &models.User{
		ID:        middleware.UserID(c),
		Email:     payload.Email,
		FirstName: payload.FirstName,
		LastName:  payload.LastName,
		Address:   payload.Address,
	}
	if err := h.users.Upsert(user); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}
