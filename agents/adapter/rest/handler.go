package rest

import (
	"errors"

	"github.com/AzielCF/az-chatbox/agents/application"
	"github.com/AzielCF/az-chatbox/agents/domain"
	pkgError "github.com/AzielCF/az-chatbox/pkg/error"
	"github.com/AzielCF/az-chatbox/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

const maxAvatarBytes = 5 << 20

// AgentHandler serves the admin agent endpoints.
type AgentHandler struct {
	agentService *application.AgentService
	avatars      *application.AvatarStore
}

func NewAgentHandler(agentService *application.AgentService, avatars *application.AvatarStore) *AgentHandler {
	return &AgentHandler{
		agentService: agentService,
		avatars:      avatars,
	}
}

func (h *AgentHandler) RegisterRoutes(router fiber.Router) {
	agents := router.Group("/agents")

	agents.Get("/", h.ListAgents)
	agents.Post("/", h.CreateAgent)
	agents.Get("/:id", h.GetAgent)
	agents.Put("/:id", h.UpdateAgent)
	agents.Delete("/:id", h.DeleteAgent)
	agents.Post("/:id/avatar", h.UploadAvatar)
}

func (h *AgentHandler) ListAgents(c *fiber.Ctx) error {
	filter := domain.AgentFilter{
		Search: c.Query("search"),
		Limit:  c.QueryInt("limit", 100),
		Offset: c.QueryInt("offset", 0),
	}
	if enabled := c.Query("enabled"); enabled != "" {
		e := enabled == "true"
		filter.Enabled = &e
	}

	agents, err := h.agentService.List(c.UserContext(), filter)
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Agents retrieved",
		Results: agents,
	})
}

func (h *AgentHandler) CreateAgent(c *fiber.Ctx) error {
	var req AgentRequest
	if err := c.BodyParser(&req); err != nil {
		utils.PanicIfNeeded(pkgError.ValidationError("invalid request body"))
	}

	agent := &domain.Agent{}
	req.apply(agent)

	err := h.agentService.Create(c.UserContext(), agent)
	utils.PanicIfNeeded(err)

	return c.Status(fiber.StatusCreated).JSON(utils.ResponseData{
		Status:  fiber.StatusCreated,
		Code:    "SUCCESS",
		Message: "Agent created",
		Results: agent,
	})
}

func (h *AgentHandler) GetAgent(c *fiber.Ctx) error {
	agent, err := h.agentService.GetByID(c.UserContext(), c.Params("id"))
	utils.PanicIfNeeded(mapError(err))

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Agent retrieved",
		Results: agent,
	})
}

func (h *AgentHandler) UpdateAgent(c *fiber.Ctx) error {
	agent, err := h.agentService.GetByID(c.UserContext(), c.Params("id"))
	utils.PanicIfNeeded(mapError(err))

	var req AgentRequest
	if err := c.BodyParser(&req); err != nil {
		utils.PanicIfNeeded(pkgError.ValidationError("invalid request body"))
	}
	req.apply(agent)

	err = h.agentService.Update(c.UserContext(), agent)
	utils.PanicIfNeeded(mapError(err))

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Agent updated",
		Results: agent,
	})
}

func (h *AgentHandler) DeleteAgent(c *fiber.Ctx) error {
	err := h.agentService.Delete(c.UserContext(), c.Params("id"))
	utils.PanicIfNeeded(mapError(err))

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Agent deleted",
	})
}

func (h *AgentHandler) UploadAvatar(c *fiber.Ctx) error {
	id := c.Params("id")
	_, err := h.agentService.GetByID(c.UserContext(), id)
	utils.PanicIfNeeded(mapError(err))

	header, err := c.FormFile("avatar")
	if err != nil {
		utils.PanicIfNeeded(pkgError.ValidationError("avatar file is required"))
	}
	if header.Size > maxAvatarBytes {
		utils.PanicIfNeeded(pkgError.ValidationError("avatar must be at most 5 MB"))
	}

	file, err := header.Open()
	utils.PanicIfNeeded(err)
	defer file.Close()

	path, err := h.avatars.Save(id, file)
	utils.PanicIfNeeded(mapError(err))

	agent, err := h.agentService.SetAvatar(c.UserContext(), id, path)
	utils.PanicIfNeeded(mapError(err))

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Avatar updated",
		Results: agent,
	})
}

func mapError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrAgentNotFound):
		return pkgError.NotFoundError(err.Error())
	case errors.Is(err, domain.ErrInvalidAvatar):
		return pkgError.ValidationError(err.Error())
	}
	return err
}
