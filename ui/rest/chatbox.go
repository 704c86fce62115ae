package rest

import (
	"context"
	"errors"
	"strings"

	chatboxDomain "github.com/AzielCF/az-chatbox/chatbox/domain"
	chatlogDomain "github.com/AzielCF/az-chatbox/chatlog/domain"
	pkgError "github.com/AzielCF/az-chatbox/pkg/error"
	"github.com/AzielCF/az-chatbox/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

type DecisionMaker interface {
	Decide(ctx context.Context, page chatboxDomain.PageContext) chatboxDomain.Decision
}

type ChatRecorder interface {
	Record(ctx context.Context, entry *chatlogDomain.Entry) error
}

type Chatbox struct {
	Engine        DecisionMaker
	ChatLog       ChatRecorder
	CountryHeader string
}

type ClickRequest struct {
	AgentID  string `json:"agent_id"`
	Agent    string `json:"agent"`
	Channel  string `json:"channel"`
	Method   string `json:"method"`
	LoggedIn bool   `json:"logged_in"`
	Country  string `json:"country"`
}

// InitRestChatbox registers the public widget endpoints.
func InitRestChatbox(app fiber.Router, engine DecisionMaker, chatLog ChatRecorder, countryHeader string) Chatbox {
	rest := Chatbox{Engine: engine, ChatLog: chatLog, CountryHeader: countryHeader}
	app.Get("/widget/decision", rest.GetDecision)
	app.Get("/widget/style.css", rest.GetStyle)
	app.Post("/widget/click", rest.RecordClick)

	return rest
}

func (handler *Chatbox) GetDecision(c *fiber.Ctx) error {
	decision := handler.Engine.Decide(c.UserContext(), handler.pageContext(c))

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Chatbox decision",
		Results: decision,
	})
}

func (handler *Chatbox) GetStyle(c *fiber.Ctx) error {
	decision := handler.Engine.Decide(c.UserContext(), handler.pageContext(c))

	c.Set(fiber.HeaderContentType, "text/css; charset=utf-8")
	c.Set(fiber.HeaderCacheControl, "no-store")
	return c.SendString(decision.Style)
}

func (handler *Chatbox) RecordClick(c *fiber.Ctx) error {
	var request ClickRequest
	err := c.BodyParser(&request)
	if err != nil {
		utils.PanicIfNeeded(pkgError.ValidationError("invalid request body"))
	}

	country := request.Country
	if country == "" {
		country = handler.headerCountry(c)
	}

	err = handler.ChatLog.Record(c.UserContext(), &chatlogDomain.Entry{
		AgentID:     request.AgentID,
		Agent:       request.Agent,
		ChatChannel: request.Channel,
		ChatMethod:  chatlogDomain.ChatMethod(request.Method),
		IsMember:    request.LoggedIn,
		IP:          c.IP(),
		Country:     country,
	})
	if errors.Is(err, chatlogDomain.ErrQueueFull) {
		return c.Status(fiber.StatusServiceUnavailable).JSON(utils.ResponseData{
			Status:  fiber.StatusServiceUnavailable,
			Code:    "QUEUE_FULL",
			Message: err.Error(),
		})
	}
	utils.PanicIfNeeded(err)

	return c.Status(fiber.StatusCreated).JSON(utils.ResponseData{
		Status:  fiber.StatusCreated,
		Code:    "SUCCESS",
		Message: "Chat recorded",
	})
}

// pageContext builds the page view from query parameters. Device and country
// fall back to the User-Agent and the geo header.
func (handler *Chatbox) pageContext(c *fiber.Ctx) chatboxDomain.PageContext {
	mobile := utils.IsMobileUserAgent(c.Get(fiber.HeaderUserAgent))
	if c.Query("mobile") != "" {
		mobile = c.QueryBool("mobile")
	}

	country := c.Query("country")
	if country == "" {
		country = handler.headerCountry(c)
	}

	return chatboxDomain.NewPageContext(
		c.Query("page_id"),
		c.Query("page_type", chatboxDomain.PageTypePage),
		mobile,
		c.QueryBool("logged_in"),
		c.QueryBool("woocommerce_active"),
		country,
	)
}

func (handler *Chatbox) headerCountry(c *fiber.Ctx) string {
	if handler.CountryHeader == "" {
		return ""
	}
	country := strings.TrimSpace(c.Get(handler.CountryHeader))
	// Cloudflare reports unknown and Tor visitors as XX and T1.
	if country == "XX" || country == "T1" {
		return ""
	}
	return country
}
