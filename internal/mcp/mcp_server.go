// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/huangsam/timeslot/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the timeslot MCP server without
// starting it. This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, baseInput *contract.ConfigRawInput) *server.MCPServer {
	s := server.NewMCPServer(
		"Timeslot Scheduling Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{baseCfg: baseCfg, baseInput: baseInput}

	// --- 1. Tool: generate_schedule ---
	s.AddTool(mcp.NewTool("generate_schedule",
		mcp.WithDescription("Allocate fixed-duration presentation slots to participants across days, honoring availability constraints."),
		mcp.WithNumber("participants", mcp.Description("Number of participants to schedule."), mcp.Required()),
		mcp.WithNumber("slot_minutes", mcp.Description("Slot duration in minutes. Defaults to the server configuration.")),
		mcp.WithNumber("break_minutes", mcp.Description("Break between slots in minutes.")),
		mcp.WithNumber("days", mcp.Description("Number of days (uniform-hours mode).")),
		mcp.WithNumber("day_start", mcp.Description("Daily start hour, 24-hour format (uniform-hours mode).")),
		mcp.WithNumber("day_end", mcp.Description("Daily end hour, 24-hour format (uniform-hours mode).")),
		mcp.WithString("intervals", mcp.Description("Explicit per-day intervals, e.g. '1=9-12,13-16;2=10-15'. Overrides uniform-hours mode.")),
		mcp.WithString("constraints_file", mcp.Description("Path to a participant constraints file.")),
		mcp.WithString("lunch", mcp.Description("Lunch exclusion window (HH:MM-HH:MM), or 'none' to disable splitting.")),
	), h.handleGenerateSchedule)

	// --- 2. Tool: check_capacity ---
	s.AddTool(mcp.NewTool("check_capacity",
		mcp.WithDescription("Compare generatable slot supply against requested participant count without producing a schedule."),
		mcp.WithNumber("participants", mcp.Description("Number of participants to check against."), mcp.Required()),
		mcp.WithNumber("slot_minutes", mcp.Description("Slot duration in minutes.")),
		mcp.WithNumber("break_minutes", mcp.Description("Break between slots in minutes.")),
		mcp.WithNumber("days", mcp.Description("Number of days (uniform-hours mode).")),
		mcp.WithNumber("day_start", mcp.Description("Daily start hour, 24-hour format.")),
		mcp.WithNumber("day_end", mcp.Description("Daily end hour, 24-hour format.")),
		mcp.WithString("intervals", mcp.Description("Explicit per-day intervals, e.g. '1=9-12,13-16;2=10-15'.")),
		mcp.WithString("lunch", mcp.Description("Lunch exclusion window (HH:MM-HH:MM), or 'none' to disable splitting.")),
	), h.handleCheckCapacity)

	return s
}

// StartMCPServer starts the timeslot MCP server on stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, baseInput *contract.ConfigRawInput) error {
	s := NewMCPServer(baseCfg, baseInput)
	return server.ServeStdio(s)
}
