package mcp

import (
	"context"
	"fmt"

	agentDomain "github.com/AzielCF/az-chatbox/agents/domain"
	chatboxDomain "github.com/AzielCF/az-chatbox/chatbox/domain"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

type DecisionMaker interface {
	Decide(ctx context.Context, page chatboxDomain.PageContext) chatboxDomain.Decision
}

type SettingsReader interface {
	Snapshot(ctx context.Context) (map[string]string, error)
}

type AgentLister interface {
	List(ctx context.Context, filter agentDomain.AgentFilter) ([]*agentDomain.Agent, error)
}

type ChatboxHandler struct {
	engine   DecisionMaker
	settings SettingsReader
	agents   AgentLister
}

func InitMcpChatbox(engine DecisionMaker, settings SettingsReader, agents AgentLister) *ChatboxHandler {
	return &ChatboxHandler{
		engine:   engine,
		settings: settings,
		agents:   agents,
	}
}

func (h *ChatboxHandler) AddChatboxTools(mcpServer *server.MCPServer) {
	mcpServer.AddTool(h.toolEvaluate(), h.handleEvaluate)
	mcpServer.AddTool(h.toolGetSettings(), h.handleGetSettings)
	mcpServer.AddTool(h.toolListAgents(), h.handleListAgents)
}

func (h *ChatboxHandler) toolEvaluate() mcp.Tool {
	return mcp.NewTool(
		"chatbox_evaluate",
		mcp.WithDescription("Preview what the chat widget shows for a page view: template, presence, listing and stylesheet."),
		mcp.WithTitleAnnotation("Evaluate Chatbox"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithString("page_id",
			mcp.Description("Identifier of the page being viewed."),
		),
		mcp.WithString("page_type",
			mcp.Description("Kind of page."),
			mcp.Enum("page", "post", "search", "404", "shop"),
		),
		mcp.WithBoolean("mobile",
			mcp.Description("Whether the visitor uses a mobile device."),
		),
		mcp.WithBoolean("logged_in",
			mcp.Description("Whether the visitor is logged in."),
		),
		mcp.WithBoolean("woocommerce_active",
			mcp.Description("Whether the shop plugin is active on the site."),
		),
		mcp.WithString("country",
			mcp.Description("ISO 3166-1 alpha-2 country code of the visitor."),
		),
	)
}

func (h *ChatboxHandler) handleEvaluate(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	page := chatboxDomain.NewPageContext(
		request.GetString("page_id", ""),
		request.GetString("page_type", chatboxDomain.PageTypePage),
		request.GetBool("mobile", false),
		request.GetBool("logged_in", false),
		request.GetBool("woocommerce_active", false),
		request.GetString("country", ""),
	)

	decision := h.engine.Decide(ctx, page)

	fallback := fmt.Sprintf("Template %s", decision.Template)
	if decision.Eligible {
		fallback += fmt.Sprintf(" (presence %s)", decision.Presence)
	}
	return mcp.NewToolResultStructured(decision, fallback), nil
}

func (h *ChatboxHandler) toolGetSettings() mcp.Tool {
	return mcp.NewTool(
		"chatbox_get_settings",
		mcp.WithDescription("Return the effective chatbox settings (defaults overlaid by stored values)."),
		mcp.WithTitleAnnotation("Get Chatbox Settings"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
	)
}

func (h *ChatboxHandler) handleGetSettings(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	values, err := h.settings.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	fallback := fmt.Sprintf("Found %d settings", len(values))
	return mcp.NewToolResultStructured(values, fallback), nil
}

func (h *ChatboxHandler) toolListAgents() mcp.Tool {
	return mcp.NewTool(
		"chatbox_list_agents",
		mcp.WithDescription("List the support agents configured for the chatbox."),
		mcp.WithTitleAnnotation("List Agents"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithBoolean("enabled_only",
			mcp.Description("Only return agents that can appear in the chatbox."),
		),
	)
}

func (h *ChatboxHandler) handleListAgents(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	filter := agentDomain.AgentFilter{}
	if request.GetBool("enabled_only", false) {
		enabled := true
		filter.Enabled = &enabled
	}

	agents, err := h.agents.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	fallback := fmt.Sprintf("Found %d agents", len(agents))
	return mcp.NewToolResultStructured(agents, fallback), nil
}
