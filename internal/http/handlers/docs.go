package handlers

import (
	"net/http"

	"flightdesk/internal/http/middleware"
	"flightdesk/internal/services"

	"github.com/gin-gonic/gin"
)

// GetPassengerETicketPDF returns per-passenger e-ticket (inline).
func GetPassengerETicketPDF(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}

	svc := services.DocsService{RequestID: middleware.GetRequestID(c)}
	pdfBytes, filename, err := svc.GenerateETicket(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

// GetBookingInvoicePDF returns the booking invoice (inline).
func GetBookingInvoicePDF(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}

	svc := services.DocsService{RequestID: middleware.GetRequestID(c)}
	pdfBytes, filename, err := svc.GenerateInvoice(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
