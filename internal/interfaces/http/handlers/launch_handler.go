package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/arkbsb/ead-scoring-system-sub000/internal/application/usecases"
	"github.com/arkbsb/ead-scoring-system-sub000/internal/domain/entities"
)

// LaunchHandler expõe o planejador de lançamentos e a visão pública de
// compartilhamento.
type LaunchHandler struct {
	launchUseCase *usecases.LaunchUseCase
}

func NewLaunchHandler(launchUseCase *usecases.LaunchUseCase) *LaunchHandler {
	return &LaunchHandler{launchUseCase: launchUseCase}
}

func (h *LaunchHandler) GetLaunches(c *fiber.Ctx) error {
	launches, err := h.launchUseCase.GetLaunches()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(fiber.Map{"launches": launches})
}

func (h *LaunchHandler) GetLaunch(c *fiber.Ctx) error {
	launch, err := h.launchUseCase.GetLaunch(c.Params("id"))
	if err != nil {
		return notFoundOrError(c, err)
	}
	return c.JSON(launch)
}

func (h *LaunchHandler) CreateLaunch(c *fiber.Ctx) error {
	var body entities.Launch
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "corpo da requisição inválido",
		})
	}

	launch, err := h.launchUseCase.CreateLaunch(body)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(launch)
}

func (h *LaunchHandler) UpdateLaunch(c *fiber.Ctx) error {
	var body entities.Launch
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "corpo da requisição inválido",
		})
	}

	launch, err := h.launchUseCase.UpdateLaunch(c.Params("id"), body)
	if err != nil {
		return notFoundOrError(c, err)
	}
	return c.JSON(launch)
}

func (h *LaunchHandler) DeleteLaunch(c *fiber.Ctx) error {
	if err := h.launchUseCase.DeleteLaunch(c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetProgress retorna o progresso real contra as campanhas vinculadas.
func (h *LaunchHandler) GetProgress(c *fiber.Ctx) error {
	refresh := c.QueryBool("refresh")

	progress, err := h.launchUseCase.GetProgress(c.Context(), c.Params("id"), refresh)
	if err != nil {
		return notFoundOrError(c, err)
	}
	return c.JSON(progress)
}

// GetSharedView é a rota pública somente leitura, resolvida pelo token de
// compartilhamento; não passa pelo middleware de autenticação.
func (h *LaunchHandler) GetSharedView(c *fiber.Ctx) error {
	view, err := h.launchUseCase.GetSharedView(c.Context(), c.Params("token"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "lançamento não encontrado",
		})
	}
	return c.JSON(view)
}

func notFoundOrError(c *fiber.Ctx, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "lançamento não encontrado",
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": err.Error(),
	})
}
