package api

import (
	"net/http"

	"github.com/Phecobaba/Skybooker-sub001/internal/pricing"
	pricingsvc "github.com/Phecobaba/Skybooker-sub001/internal/service/pricing"
	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	service pricingsvc.PricingUseCase
}

type ratesResponse struct {
	TaxRate        float64 `json:"tax_rate"`
	ServiceFeeRate float64 `json:"service_fee_rate"`
}

func NewSettingsHandler(service pricingsvc.PricingUseCase) *SettingsHandler {
	return &SettingsHandler{service: service}
}

func (h *SettingsHandler) Register(router *gin.RouterGroup) {
	router.GET("/rates", h.getRates)
	router.PUT("/rates", h.updateRates)
}

func (h *SettingsHandler) getRates(c *gin.Context) {
	rates, err := h.service.Rates(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, ratesResponse{
		TaxRate:        rates.EffectiveTaxRate(),
		ServiceFeeRate: rates.EffectiveServiceFeeRate(),
	})
}

func (h *SettingsHandler) updateRates(c *gin.Context) {
	var req pricing.RateConfig
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.UpdateRates(c.Request.Context(), req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}
