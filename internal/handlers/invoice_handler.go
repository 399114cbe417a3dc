package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"invoicing-backend/internal/middleware"
	service "invoicing-backend/internal/services/invoice"
)

type InvoiceHandler struct {
	service *service.Service
}

func NewInvoiceHandler(s *service.Service) *InvoiceHandler {
	return &InvoiceHandler{service: s}
}

func (h *InvoiceHandler) Create(c *gin.Context) {
	var input service.Input
	if err := c.BindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	invoice, err := h.service.Create(c.Request.Context(), input, middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"invoice": invoice})
}

func (h *InvoiceHandler) Update(c *gin.Context) {
	id, ok := invoiceID(c)
	if !ok {
		return
	}

	var input service.Input
	if err := c.BindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	invoice, err := h.service.Update(c.Request.Context(), id, input, middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"invoice": invoice})
}

func (h *InvoiceHandler) Delete(c *gin.Context) {
	id, ok := invoiceID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(id, middleware.UserID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "invoice deleted"})
}

func (h *InvoiceHandler) Get(c *gin.Context) {
	id, ok := invoiceID(c)
	if !ok {
		return
	}

	invoice, err := h.service.Get(id, middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"invoice": invoice})
}

func (h *InvoiceHandler) List(c *gin.Context) {
	invoices, err := h.service.List(middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"invoices": invoices})
}

func (h *InvoiceHandler) MarkPaid(c *gin.Context) {
	id, ok := invoiceID(c)
	if !ok {
		return
	}

	invoice, err := h.service.MarkPaid(id, middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "invoice marked as paid", "invoice": invoice})
}

func (h *InvoiceHandler) MarkUnpaid(c *gin.Context) {
	id, ok := invoiceID(c)
	if !ok {
		return
	}

	invoice, err := h.service.MarkUnpaid(id, middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "invoice marked as unpaid", "invoice": invoice})
}

// SendReminder reports delivery as a soft success/failure message so the
// caller can show a transient notification instead of a navigation failure.
func (h *InvoiceHandler) SendReminder(c *gin.Context) {
	id, ok := invoiceID(c)
	if !ok {
		return
	}

	if err := h.service.SendReminder(c.Request.Context(), id, middleware.UserID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": "Factuur is verzonden"})
}

func (h *InvoiceHandler) Stats(c *gin.Context) {
	stats, err := h.service.Stats(middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func invoiceID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid invoice ID"})
		return uuid.Nil, false
	}
	return id, true
}
