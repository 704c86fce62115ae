package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/AzielCF/az-chatbox/ui/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the chatbox MCP server using SSE",
	Long:  `Start a Model Context Protocol server over Server-Sent Events so AI agents can preview widget decisions and inspect settings and agents.`,
	Run:   mcpServer,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
	mcpCmd.Flags().StringVar(&appConfig.MCP.Port, "mcp-port", appConfig.MCP.Port, "Port for the SSE MCP server")
	mcpCmd.Flags().StringVar(&appConfig.MCP.Host, "host", appConfig.MCP.Host, "Host for the SSE MCP server")
}

func mcpServer(_ *cobra.Command, _ []string) {
	cfg := appConfig

	mcpServer := server.NewMCPServer(
		"Chatbox MCP Server",
		cfg.App.Version,
		server.WithToolCapabilities(true),
	)

	chatboxHandler := mcp.InitMcpChatbox(engine, settingsService, agentService)
	chatboxHandler.AddChatboxTools(mcpServer)

	sseServer := server.NewSSEServer(
		mcpServer,
		server.WithBaseURL(fmt.Sprintf("http://%s:%s", cfg.MCP.Host, cfg.MCP.Port)),
		server.WithKeepAlive(true),
	)

	addr := fmt.Sprintf("%s:%s", cfg.MCP.Host, cfg.MCP.Port)
	logrus.Printf("Starting chatbox MCP SSE server on %s", addr)
	logrus.Printf("SSE endpoint: http://%s:%s/sse", cfg.MCP.Host, cfg.MCP.Port)
	logrus.Printf("Message endpoint: http://%s:%s/message", cfg.MCP.Host, cfg.MCP.Port)

	// Graceful shutdown handler
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		logrus.Info("[MCP] Reception of termination signal, shutting down gracefully...")
		StopApp()
		os.Exit(0)
	}()

	if err := sseServer.Start(addr); err != nil {
		logrus.Fatalf("Failed to start SSE server: %v", err)
	}
}
