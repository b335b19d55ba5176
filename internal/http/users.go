package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/qualification/internal/logger"
)

// UsersController exposes users read-only. Password hashes are never serialized.
type UsersController struct {
	store UserStore
	log   *logger.Logger
}

func NewUsersController(store UserStore, log *logger.Logger) *UsersController {
	return &UsersController{store: store, log: log}
}

func (uc *UsersController) ListUsers(c *gin.Context) {
	users, err := uc.store.GetAllUsers()
	if err != nil {
		respondInternalError(c, uc.log, err, "list users")
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users, "count": len(users)})
}

func (uc *UsersController) GetUser(c *gin.Context) {
	user, err := uc.store.GetUserByID(c.Param("id"))
	if err != nil {
		respondStoreError(c, uc.log, err, "user")
		return
	}
	c.JSON(http.StatusOK, user)
}
