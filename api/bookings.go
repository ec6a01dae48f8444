package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Phecobaba/Skybooker-sub001/internal/booking"
	"github.com/Phecobaba/Skybooker-sub001/internal/domain"
	"github.com/Phecobaba/Skybooker-sub001/internal/service/bookings"
	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	service bookings.BookingUseCase
}

type createBookingRequest struct {
	FlightID      int64  `json:"flight_id"`
	CustomerEmail string `json:"customer_email"`
	TravelClass   string `json:"travel_class"`
}

type declineBookingRequest struct {
	Reason string `json:"reason"`
}

type bookingResponse struct {
	ID            int64  `json:"id"`
	Reference     string `json:"reference"`
	Status        string `json:"status"`
	Badge         string `json:"badge"`
	CustomerEmail string `json:"customer_email"`
	TravelClass   string `json:"travel_class"`
	BookingDate   string `json:"booking_date"`
	DeclineReason string `json:"decline_reason,omitempty"`
	OriginCity    string `json:"origin_city"`
	OriginCode    string `json:"origin_code"`
	DestCity      string `json:"destination_city"`
	DestCode      string `json:"destination_code"`
	DepartureTime string `json:"departure_time"`
}

type bookingListResponse struct {
	Bookings   []bookingResponse `json:"bookings"`
	TotalCount int               `json:"total_count"`
	TotalPages int               `json:"total_pages"`
}

func NewBookingHandler(service bookings.BookingUseCase) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.GET("/", h.list)
	router.POST("/", h.create)
	router.PUT("/:id/approve", h.approve)
	router.PUT("/:id/decline", h.decline)
}

func (h *BookingHandler) list(c *gin.Context) {
	email := c.Query("email")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))

	query := booking.Query{
		Bucket:   booking.ParseBucket(c.Query("filter")),
		Search:   c.Query("search"),
		Page:     page,
		PageSize: pageSize,
	}

	result, err := h.service.ListForCustomer(c.Request.Context(), email, query)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp := bookingListResponse{
		Bookings:   make([]bookingResponse, 0, len(result.Bookings)),
		TotalCount: result.TotalCount,
		TotalPages: result.TotalPages,
	}
	for _, b := range result.Bookings {
		resp.Bookings = append(resp.Bookings, toBookingResponse(&b))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *BookingHandler) create(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.service.CreateBooking(c.Request.Context(), bookings.CreateBookingInput{
		FlightID:      req.FlightID,
		CustomerEmail: req.CustomerEmail,
		TravelClass:   req.TravelClass,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, toBookingResponse(created))
}

func (h *BookingHandler) approve(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	updated, err := h.service.ApproveBooking(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, toBookingResponse(updated))
}

func (h *BookingHandler) decline(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var req declineBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	updated, err := h.service.DeclineBooking(c.Request.Context(), id, req.Reason)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, toBookingResponse(updated))
}

func toBookingResponse(b *domain.Booking) bookingResponse {
	return bookingResponse{
		ID:            b.ID,
		Reference:     b.Reference(),
		Status:        b.Status.String(),
		Badge:         string(b.Status.Badge()),
		CustomerEmail: b.CustomerEmail,
		TravelClass:   string(b.TravelClass),
		BookingDate:   b.BookingDate.Format(time.RFC3339),
		DeclineReason: b.DeclineReason,
		OriginCity:    b.Flight.Origin.City,
		OriginCode:    b.Flight.Origin.Code,
		DestCity:      b.Flight.Destination.City,
		DestCode:      b.Flight.Destination.Code,
		DepartureTime: b.Flight.DepartureTime.Format(time.RFC3339),
	}
}
