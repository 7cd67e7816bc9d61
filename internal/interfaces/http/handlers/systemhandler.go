package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"obleafusion/internal/shared/biztime"
	"obleafusion/internal/shared/version"
)

type SystemHandler struct{}

func NewSystemHandler() *SystemHandler {
	return &SystemHandler{}
}

// HealthCheck reports liveness.
func (h *SystemHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   biztime.NowUTC(),
	})
}

// Version reports the build metadata of the running binary.
func (h *SystemHandler) Version(c *gin.Context) {
	c.JSON(http.StatusOK, version.Get())
}
