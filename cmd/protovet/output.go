package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/metalagman/protovet/internal/rubric"
)

var (
	passStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	dimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func statusIcon(status rubric.Status) string {
	switch status {
	case rubric.StatusPass:
		return passStyle.Render("✅")
	case rubric.StatusWarning:
		return warnStyle.Render("⚠️")
	default:
		return failStyle.Render("❌")
	}
}

func protocolLine(protocolID string, status rubric.Status, score float64) string {
	return fmt.Sprintf("%s protocol %s  %s  %.3f",
		statusIcon(status), protocolID, string(status), score)
}

func summaryLine(pass, warn, fail int, avg float64, dir string) string {
	return fmt.Sprintf("%d pass, %d warning, %d fail  avg %.3f  %s",
		pass, warn, fail, avg, dimStyle.Render(dir))
}
