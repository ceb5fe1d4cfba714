package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/arkbsb/ead-scoring-system-sub000/internal/application/usecases"
)

// LeadHandler expõe a tabela de leads e o resumo de qualificação.
type LeadHandler struct {
	leadUseCase *usecases.LeadUseCase
}

func NewLeadHandler(leadUseCase *usecases.LeadUseCase) *LeadHandler {
	return &LeadHandler{leadUseCase: leadUseCase}
}

// GetLeads retorna os leads pontuados da planilha configurada.
// Query param refresh=true força um novo fetch ignorando o cache.
func (h *LeadHandler) GetLeads(c *fiber.Ctx) error {
	refresh := c.QueryBool("refresh")

	leads, err := h.leadUseCase.GetLeads(c.Context(), refresh)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"leads": leads,
		"total": len(leads),
	})
}

// GetSummary retorna as contagens por faixa e o score médio.
func (h *LeadHandler) GetSummary(c *fiber.Ctx) error {
	refresh := c.QueryBool("refresh")

	summary, err := h.leadUseCase.GetSummary(c.Context(), refresh)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(summary)
}
