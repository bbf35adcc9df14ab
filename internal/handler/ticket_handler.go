package handler

import (
	"errors"
	"net/http"
	"strconv"

	"go-airline-tickets/internal/model"
	"go-airline-tickets/internal/service"
	apperrors "go-airline-tickets/pkg/app_errors"
	"go-airline-tickets/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type TicketHandler struct {
	service service.TicketService
}

func NewTicketHandler(service service.TicketService) *TicketHandler {
	return &TicketHandler{service: service}
}

func (h *TicketHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.GET("tickets", h.List)
		router.POST("tickets", h.Create)
		router.GET("tickets/search", h.Search)
		router.POST("tickets/:ticket_id/book", h.Book)
	}
}

// CreateTicketRequest 建立機票請求，price 與 seats_left 不做範圍檢查
type CreateTicketRequest struct {
	TicketID    string   `json:"ticket_id"`
	FlightNum   string   `json:"flight_num"`
	Origin      string   `json:"origin"`
	Destination string   `json:"destination"`
	Date        string   `json:"date"`
	Price       *float64 `json:"price" binding:"required"`
	SeatsLeft   *int     `json:"seats_left" binding:"required"`
}

type SearchTicketsQuery struct {
	Origin      string `form:"origin"`
	Destination string `form:"destination"`
}

// BookTicketResponse 訂票結果與人類可讀訊息
type BookTicketResponse struct {
	model.BookResult
	Message string `json:"message"`
}

func (h *TicketHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.List(c))
}

func (h *TicketHandler) Create(c *gin.Context) {
	var req CreateTicketRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	input := model.CreateTicketInput{
		TicketID:    req.TicketID,
		FlightNum:   req.FlightNum,
		Origin:      req.Origin,
		Destination: req.Destination,
		Date:        req.Date,
		Price:       strconv.FormatFloat(*req.Price, 'f', -1, 64),
		SeatsLeft:   strconv.Itoa(*req.SeatsLeft),
	}

	created, err := h.service.Create(c, input)
	if err != nil {
		h.handleError(c, err, "Create")
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *TicketHandler) Search(c *gin.Context) {
	var query SearchTicketsQuery
	if err := BindQuery(c, &query); err != nil {
		return
	}

	tickets, found := h.service.Search(c, query.Origin, query.Destination)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": model.MsgNoRouteTickets})
		return
	}
	c.JSON(http.StatusOK, tickets)
}

func (h *TicketHandler) Book(c *gin.Context) {
	ticketID := c.Param("ticket_id")

	result, err := h.service.Book(c, ticketID)
	if err != nil {
		h.handleError(c, err, "Book")
		return
	}

	resp := BookTicketResponse{BookResult: result, Message: result.Message()}
	switch result.Status {
	case model.BookStatusBooked:
		c.JSON(http.StatusOK, resp)
	case model.BookStatusSoldOut:
		c.JSON(http.StatusConflict, resp)
	default:
		c.JSON(http.StatusNotFound, resp)
	}
}

func (h *TicketHandler) handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case errors.Is(err, apperrors.ErrInvalidInput):
		log.Warn("Invalid input")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
