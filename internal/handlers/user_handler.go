package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/clinicdesk/clinic-api/internal/models"
)

func (h *Handler) CreateUser(c *gin.Context) {
	var user models.User
	if err := c.ShouldBindJSON(&user); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	user.SetDefaults()
	h.createRecord(c, &user, "failed to create user")
}

func (h *Handler) ListUsers(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Query(c.Request.Context(), models.CollectionUser, bson.M{}))
}
