package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/arkbsb/ead-scoring-system-sub000/internal/application/usecases"
	"github.com/arkbsb/ead-scoring-system-sub000/internal/domain/entities"
)

// ConfigHandler expõe a configuração autoral: mapeamentos, cortes e campos
// customizados. Gravação acontece apenas nas ações explícitas de salvar.
type ConfigHandler struct {
	configUseCase *usecases.ConfigUseCase
}

func NewConfigHandler(configUseCase *usecases.ConfigUseCase) *ConfigHandler {
	return &ConfigHandler{configUseCase: configUseCase}
}

func (h *ConfigHandler) GetLeadMapping(c *fiber.Ctx) error {
	columns, err := h.configUseCase.GetLeadMapping()
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(fiber.Map{"columns": columns})
}

func (h *ConfigHandler) SaveLeadMapping(c *fiber.Ctx) error {
	var body struct {
		Columns []entities.ColumnMapping `json:"columns"`
	}
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c)
	}
	if err := h.configUseCase.SaveLeadMapping(body.Columns); err != nil {
		return internalError(c, err)
	}
	return c.JSON(fiber.Map{"columns": body.Columns})
}

func (h *ConfigHandler) GetTrafficMapping(c *fiber.Ctx) error {
	mapping, err := h.configUseCase.GetTrafficMapping()
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(mapping)
}

func (h *ConfigHandler) SaveTrafficMapping(c *fiber.Ctx) error {
	var body entities.TrafficMapping
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c)
	}
	if err := h.configUseCase.SaveTrafficMapping(body); err != nil {
		return internalError(c, err)
	}
	return c.JSON(body)
}

func (h *ConfigHandler) GetSegmentation(c *fiber.Ctx) error {
	cfg, err := h.configUseCase.GetSegmentation()
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(cfg)
}

func (h *ConfigHandler) SaveSegmentation(c *fiber.Ctx) error {
	var body struct {
		SuperQualified int `json:"super_qualified"`
		Qualified      int `json:"qualified"`
	}
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c)
	}

	cfg, err := h.configUseCase.SaveSegmentation(body.SuperQualified, body.Qualified)
	if err != nil {
		// Cortes fora de ordem são erro do cliente, não do servidor
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(cfg)
}

func (h *ConfigHandler) GetCustomFields(c *fiber.Ctx) error {
	fields, err := h.configUseCase.GetCustomFields()
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(fiber.Map{"custom_fields": fields})
}

func (h *ConfigHandler) SaveCustomFields(c *fiber.Ctx) error {
	var body struct {
		CustomFields []entities.CustomField `json:"custom_fields"`
	}
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c)
	}
	if err := h.configUseCase.SaveCustomFields(body.CustomFields); err != nil {
		return internalError(c, err)
	}
	return c.JSON(fiber.Map{"custom_fields": body.CustomFields})
}

func badRequest(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": "corpo da requisição inválido",
	})
}

func internalError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": err.Error(),
	})
}
