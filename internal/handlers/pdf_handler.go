package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	service "invoicing-backend/internal/services/invoice"
)

type PDFHandler struct {
	service *service.Service
}

func NewPDFHandler(s *service.Service) *PDFHandler {
	return &PDFHandler{service: s}
}

// Download streams the invoice PDF. The route is public so that emailed
// recipients without an account can fetch their document; when link signing
// is configured the token query parameter is required.
func (h *PDFHandler) Download(c *gin.Context) {
	rawID := c.Query("invoiceId")
	if rawID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invoiceId query parameter is required"})
		return
	}

	id, err := uuid.Parse(rawID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid invoice ID"})
		return
	}

	if err := h.service.VerifyDocumentToken(c.Query("token"), id); err != nil {
		respondError(c, err)
		return
	}

	data, err := h.service.Render(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename=factuur-`+id.String()+`.pdf`)
	c.Data(http.StatusOK, "application/pdf", data)
}
