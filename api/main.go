// Package api is the HTTP boundary for the notification engine: it maps
// requests to engine operations and engine results and errors to responses.
package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/cyverse-de/notification-engine/engine"
)

var log = logrus.WithField("package", "api")

// NotificationController handles the notification endpoints.
type NotificationController struct {
	engine *engine.Service
}

// NewNotificationController returns a new controller backed by the given service.
func NewNotificationController(service *engine.Service) *NotificationController {
	return &NotificationController{engine: service}
}

// InitRouter builds the router with all of the notification endpoints registered.
func InitRouter(service *engine.Service) *gin.Engine {
	router := gin.Default()
	controller := NewNotificationController(service)

	notification := router.Group("/api/notification")
	notification.GET("/update-status", controller.UpdateSendingStatus)
	notification.POST("", controller.CreateNotification)
	notification.GET("/unseen-count/:userId", controller.GetUnseenCount)
	notification.GET("/unseen-notifications/:userId", controller.GetUnseenNotifications)
	notification.GET("/unseen-seen-notification/:userId", controller.GetSeenAndUnseenNotifications)
	notification.GET("/notification-view/:userId", controller.GetSeenNotifications)
	notification.PUT("/mark-as-seen/:userId", controller.MarkAsSeen)
	notification.GET("/:id", controller.GetNotification)

	return router
}

// parseUUID parses an identifier from a request, responding with a 400 if the
// identifier is malformed.
func parseUUID(c *gin.Context, name, value string) (uuid.UUID, bool) {
	id, err := uuid.Parse(value)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": name + " must be a valid UUID"})
		return uuid.Nil, false
	}
	return id, true
}

// abortWithError maps an engine error to its response: not-found errors become
// 404s, invalid input becomes a 400, and anything else is logged and reported
// as a generic 500.
func (controller *NotificationController) abortWithError(c *gin.Context, err error) {
	var notFound engine.NotFoundError
	var invalidInput engine.InvalidInputError
	switch {
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, gin.H{"message": notFound.Error()})
	case errors.As(err, &invalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"message": invalidInput.Error()})
	default:
		log.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
	}
}
