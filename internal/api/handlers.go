package api

import (
	"log"
	"net/http"

	"messageboard/internal/models"
	"messageboard/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	statusOK           = "all good"
	statusRetrieveFail = "failed to retrieve messages from the database"
	statusSaveFail     = "failed to save the message to the database"
)

type Handler struct {
	Service *service.MessageService
}

func NewAPIHandler(service *service.MessageService) *Handler {
	return &Handler{
		Service: service,
	}
}

type MessagesResponse struct {
	Messages []models.Message `json:"messages"`
	Status   string           `json:"status"`
}

type MessageResponse struct {
	Message models.Message `json:"message"`
	Status  string         `json:"status"`
}

type ErrorResponse struct {
	Error  string `json:"error"`
	Status string `json:"status"`
}

// ListMessages godoc
// @Summary  List all messages
// @Produce  json
// @Success  200 {object} MessagesResponse
// @Failure  400 {object} ErrorResponse
// @Router   /messages [get]
func (h *Handler) ListMessages(c *gin.Context) {
	messages, err := h.Service.ListMessages(c.Request.Context())
	if err != nil {
		log.Printf("Error listing messages: %v", err)
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Status: statusRetrieveFail})
		return
	}
	c.JSON(http.StatusOK, MessagesResponse{Messages: messages, Status: statusOK})
}

// GetMessage godoc
// @Summary  Get a message by id
// @Description An unknown or malformed id yields an empty list.
// @Produce  json
// @Param    messageId path string true "message id"
// @Success  200 {object} MessagesResponse
// @Failure  400 {object} ErrorResponse
// @Router   /messages/{messageId} [get]
func (h *Handler) GetMessage(c *gin.Context) {
	messages, err := h.Service.GetMessage(c.Request.Context(), c.Param("messageId"))
	if err != nil {
		log.Printf("Error fetching message %s: %v", c.Param("messageId"), err)
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Status: statusRetrieveFail})
		return
	}
	c.JSON(http.StatusOK, MessagesResponse{Messages: messages, Status: statusOK})
}

// SaveMessage godoc
// @Summary  Save a message
// @Accept   json
// @Produce  json
// @Param    body body models.SaveMessageRequest true "message to save"
// @Success  200 {object} MessageResponse
// @Failure  400 {object} ErrorResponse
// @Router   /messages/save [post]
func (h *Handler) SaveMessage(c *gin.Context) {
	var req models.SaveMessageRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBind(&req); err != nil {
			log.Printf("Error decoding message body: %v", err)
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Status: statusSaveFail})
			return
		}
	}
	message, err := h.Service.SaveMessage(c.Request.Context(), req)
	if err != nil {
		log.Printf("Error saving message: %v", err)
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Status: statusSaveFail})
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: message, Status: statusOK})
}

// About godoc
// @Summary  Static profile
// @Produce  json
// @Success  200 {object} models.About
// @Router   /api/about [get]
func (h *Handler) About(c *gin.Context) {
	c.JSON(http.StatusOK, service.About())
}
