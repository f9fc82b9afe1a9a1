package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/scriba-dev/scriba/internal/models"
	"github.com/scriba-dev/scriba/internal/schemas"
	"github.com/scriba-dev/scriba/internal/store"
)

type Users struct {
	users store.UserStore
}

func NewUsers(users store.UserStore) *Users {
	return &Users{users: users}
}

func (h *Users) Create(ctx *gin.Context) {
	var body schemas.CreateUser

	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": schemas.FieldErrors(err)})
		return
	}

	// bcrypt rejects inputs over 72 bytes; longer passwords hash on
	// their first 72, the classic truncating bcrypt behavior.
	password := []byte(body.Password)

	if len(password) > 72 {
		password = password[:72]
	}

	passwordHash, err := bcrypt.GenerateFromPassword(password, bcrypt.DefaultCost)

	if err != nil {
		logrus.WithError(err).Error("Failed to hash password")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	user := models.User{
		Name:         body.Name,
		PasswordHash: string(passwordHash),
	}

	if err := h.users.Create(ctx.Request.Context(), &user); err != nil {
		storeError(ctx, err, "user not found", "user already exists")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"user_id": user.ID})
}

func (h *Users) Get(ctx *gin.Context) {
	id, ok := pathID(ctx)

	if !ok {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	user, err := h.users.GetByID(ctx.Request.Context(), id)

	if err != nil {
		storeReadError(ctx, err, "user not found")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"name": user.Name,
		"ts":   user.CreatedAt.Unix(),
	})
}
