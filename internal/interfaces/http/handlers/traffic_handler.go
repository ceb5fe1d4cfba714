package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/arkbsb/ead-scoring-system-sub000/internal/application/usecases"
	"github.com/arkbsb/ead-scoring-system-sub000/internal/domain/aggregation"
)

// TrafficHandler expõe as entidades de tráfego e o rollup de KPIs.
type TrafficHandler struct {
	trafficUseCase *usecases.TrafficUseCase
}

func NewTrafficHandler(trafficUseCase *usecases.TrafficUseCase) *TrafficHandler {
	return &TrafficHandler{trafficUseCase: trafficUseCase}
}

// GetTraffic retorna campanhas, conjuntos e anúncios do último refresh.
func (h *TrafficHandler) GetTraffic(c *fiber.Ctx) error {
	refresh := c.QueryBool("refresh")

	data, err := h.trafficUseCase.GetTraffic(c.Context(), refresh)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(data)
}

// GetKPIs retorna o rollup do dashboard. Filtros por query param:
// status=active,paused e objective=...; listas separadas por vírgula,
// lista vazia é no-op.
func (h *TrafficHandler) GetKPIs(c *fiber.Ctx) error {
	refresh := c.QueryBool("refresh")
	filter := aggregation.KPIFilter{
		Statuses:   csvParam(c.Query("status")),
		Objectives: csvParam(c.Query("objective")),
	}

	result, err := h.trafficUseCase.GetKPIs(c.Context(), filter, refresh)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(result)
}

func csvParam(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
