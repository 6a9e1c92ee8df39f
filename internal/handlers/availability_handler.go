package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SweetDelights01/bakery-storefront/internal/httperr"
	"github.com/SweetDelights01/bakery-storefront/internal/usecase/availability"
)

type AvailabilityHandler struct {
	dayUC   *availability.GetAvailability
	rangeUC *availability.GetAvailabilityRange
}

func NewAvailabilityHandler(
	dayUC *availability.GetAvailability,
	rangeUC *availability.GetAvailabilityRange,
) *AvailabilityHandler {
	return &AvailabilityHandler{
		dayUC:   dayUC,
		rangeUC: rangeUC,
	}
}

func (h *AvailabilityHandler) GetDay(c *gin.Context) {
	date := c.Query("date")

	day, err := h.dayUC.Execute(c.Request.Context(), date)
	if err != nil {
		mapAvailabilityErrors(c, err)
		return
	}

	c.JSON(http.StatusOK, day)
}

func (h *AvailabilityHandler) GetRange(c *gin.Context) {
	start := c.Query("start")
	end := c.Query("end")

	days, err := h.rangeUC.Execute(c.Request.Context(), start, end)
	if err != nil {
		mapAvailabilityErrors(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"start": start,
		"end":   end,
		"days":  days,
	})
}

func mapAvailabilityErrors(c *gin.Context, err error) {
	if httperr.IsBusiness(err, "date_required") {
		httperr.BadRequest(c, "date_required", "Date is required.")
		return
	}
	if httperr.IsBusiness(err, "invalid_date") {
		httperr.BadRequest(c, "invalid_date", "Invalid date.")
		return
	}

	httperr.Internal(c, "availability_failed", "Could not compute availability.")
}
