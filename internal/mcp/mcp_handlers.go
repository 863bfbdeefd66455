package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/huangsam/timeslot/core"
	"github.com/huangsam/timeslot/internal/contract"
	"github.com/huangsam/timeslot/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg   *contract.Config
	baseInput *contract.ConfigRawInput
}

// overrideConfig applies per-request overrides on top of the server's raw
// input and runs the shared validation pipeline, so MCP requests go through
// exactly the same checks as CLI flags.
func (h *toolHandler) overrideConfig(request mcp.CallToolRequest) (*contract.Config, error) {
	raw := *h.baseInput
	raw.Participants = request.GetInt("participants", raw.Participants)
	if v := request.GetInt("slot_minutes", 0); v > 0 {
		raw.SlotMinutes = v
	}
	if v := request.GetInt("break_minutes", -1); v >= 0 {
		raw.BreakMinutes = v
	}
	if v := request.GetInt("days", 0); v > 0 {
		raw.Days = v
		raw.Intervals = ""
	}
	if v := request.GetInt("day_start", -1); v >= 0 {
		raw.DayStart = v
		raw.Intervals = ""
	}
	if v := request.GetInt("day_end", -1); v >= 0 {
		raw.DayEnd = v
		raw.Intervals = ""
	}
	if s := request.GetString("intervals", ""); s != "" {
		raw.Intervals = s
	}
	if s := request.GetString("constraints_file", ""); s != "" {
		raw.Constraints = s
	}
	if s := request.GetString("lunch", ""); s != "" {
		raw.Lunch = s
	}

	cfg := h.baseCfg.Clone()
	if err := contract.ProcessAndValidate(cfg, &raw); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (h *toolHandler) handleGenerateSchedule(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := h.overrideConfig(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid scheduling parameters: %v", err)), nil
	}

	assignment, report, err := core.GetScheduleResults(cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("scheduling failed: %v", err)), nil
	}

	result := struct {
		Capacity schema.CapacityReport `json:"capacity"`
		Schedule schema.Schedule       `json:"schedule"`
		Unplaced []string              `json:"unplaced,omitempty"`
	}{
		Capacity: report,
		Schedule: assignment.Schedule,
		Unplaced: assignment.Unplaced,
	}
	jsonData, _ := json.MarshalIndent(result, "", "  ")

	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleCheckCapacity(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := h.overrideConfig(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid scheduling parameters: %v", err)), nil
	}

	scheduler, err := core.NewSchedulerFromConfig(cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("capacity check failed: %v", err)), nil
	}
	report, err := scheduler.Capacity(cfg.Participants)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("capacity check failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(report, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
