package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Phecobaba/Skybooker-sub001/internal/pricing"
	"github.com/Phecobaba/Skybooker-sub001/internal/service/flights"
	"github.com/gin-gonic/gin"
)

type FlightHandler struct {
	service flights.FlightUseCase
}

type flightResponse struct {
	ID            int64             `json:"id"`
	Origin        locationResponse  `json:"origin"`
	Destination   locationResponse  `json:"destination"`
	DepartureTime string            `json:"departure_time"`
	ArrivalTime   string            `json:"arrival_time"`
	Seats         int               `json:"available_seats"`
	Price         pricing.Breakdown `json:"price"`
}

type locationResponse struct {
	City    string `json:"city"`
	Code    string `json:"code"`
	Airport string `json:"airport"`
}

func NewFlightHandler(service flights.FlightUseCase) *FlightHandler {
	return &FlightHandler{service: service}
}

func (h *FlightHandler) Register(router *gin.RouterGroup) {
	router.GET("/", h.list)
	router.GET("/:id", h.get)
}

func (h *FlightHandler) list(c *gin.Context) {
	priced, err := h.service.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	resp := make([]flightResponse, 0, len(priced))
	for _, p := range priced {
		resp = append(resp, toFlightResponse(p))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *FlightHandler) get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	priced, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, toFlightResponse(*priced))
}

func toFlightResponse(p flights.PricedFlight) flightResponse {
	f := p.Flight
	return flightResponse{
		ID:            f.ID,
		Origin:        locationResponse{City: f.Origin.City, Code: f.Origin.Code, Airport: f.Origin.Airport},
		Destination:   locationResponse{City: f.Destination.City, Code: f.Destination.Code, Airport: f.Destination.Airport},
		DepartureTime: f.DepartureTime.Format(time.RFC3339),
		ArrivalTime:   f.ArrivalTime.Format(time.RFC3339),
		Seats:         f.AvailableSeats,
		Price:         p.Price,
	}
}
