// Package semantic holds colors named by meaning rather than hue. They are
// shared across all products for status indicators, alerts and feedback.
package semantic

import (
	"strings"

	"github.com/moltenlabs/brand/color"
)

var (
	Success      = color.New(16, 185, 129)  // #10b981
	SuccessLight = color.New(209, 250, 229) // #d1fae5
	SuccessDark  = color.New(5, 150, 105)   // #059669

	Warning      = color.New(245, 158, 11)  // #f59e0b
	WarningLight = color.New(254, 243, 199) // #fef3c7
	WarningDark  = color.New(217, 119, 6)   // #d97706

	Error      = color.New(239, 68, 68)   // #ef4444
	ErrorLight = color.New(254, 226, 226) // #fee2e2
	ErrorDark  = color.New(220, 38, 38)   // #dc2626

	Info      = color.New(59, 130, 246)  // #3b82f6
	InfoLight = color.New(219, 234, 254) // #dbeafe
	InfoDark  = color.New(37, 99, 235)   // #2563eb
)

// AgentPalette colors the lifecycle states of a Lair agent.
type AgentPalette struct {
	Spawning color.Color
	Running  color.Color
	Thinking color.Color
	Complete color.Color
	Failed   color.Color
	Idle     color.Color
	Paused   color.Color
}

// Agent holds the agent status colors.
var Agent = AgentPalette{
	Spawning: color.New(124, 58, 237),  // #7c3aed
	Running:  color.New(16, 185, 129),  // #10b981
	Thinking: color.New(245, 158, 11),  // #f59e0b
	Complete: color.New(6, 182, 212),   // #06b6d4
	Failed:   color.New(239, 68, 68),   // #ef4444
	Idle:     color.New(113, 113, 122), // #71717a
	Paused:   color.New(167, 139, 250), // #a78bfa
}

// Colors groups the four base semantic colors for use in a theme.
type Colors struct {
	Success color.Color `json:"success" yaml:"success"`
	Warning color.Color `json:"warning" yaml:"warning"`
	Error   color.Color `json:"error" yaml:"error"`
	Info    color.Color `json:"info" yaml:"info"`
}

// Default returns the brand semantic colors.
func Default() Colors {
	return Colors{
		Success: Success,
		Warning: Warning,
		Error:   Error,
		Info:    Info,
	}
}

// Get looks a color up by its semantic name, ignoring case.
func (c Colors) Get(name string) (color.Color, bool) {
	switch strings.ToLower(name) {
	case "success":
		return c.Success, true
	case "warning":
		return c.Warning, true
	case "error":
		return c.Error, true
	case "info":
		return c.Info, true
	}
	return color.Color{}, false
}

// Tokens returns every color in this package under dotted names such as
// "semantic.success_light" or "agent.running".
func Tokens() []color.Named {
	return []color.Named{
		{Name: "semantic.success", Color: Success},
		{Name: "semantic.success_light", Color: SuccessLight},
		{Name: "semantic.success_dark", Color: SuccessDark},
		{Name: "semantic.warning", Color: Warning},
		{Name: "semantic.warning_light", Color: WarningLight},
		{Name: "semantic.warning_dark", Color: WarningDark},
		{Name: "semantic.error", Color: Error},
		{Name: "semantic.error_light", Color: ErrorLight},
		{Name: "semantic.error_dark", Color: ErrorDark},
		{Name: "semantic.info", Color: Info},
		{Name: "semantic.info_light", Color: InfoLight},
		{Name: "semantic.info_dark", Color: InfoDark},

		{Name: "agent.spawning", Color: Agent.Spawning},
		{Name: "agent.running", Color: Agent.Running},
		{Name: "agent.thinking", Color: Agent.Thinking},
		{Name: "agent.complete", Color: Agent.Complete},
		{Name: "agent.failed", Color: Agent.Failed},
		{Name: "agent.idle", Color: Agent.Idle},
		{Name: "agent.paused", Color: Agent.Paused},
	}
}
