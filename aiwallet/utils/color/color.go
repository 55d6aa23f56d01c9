// Package color styles the CLI output.
package color

import (
	"github.com/fatih/color"
)

var (
	promptColor    = color.New(color.FgCyan, color.Bold)
	infoColor      = color.New(color.FgGreen)
	warningColor   = color.New(color.FgYellow, color.Bold)
	errorColor     = color.New(color.FgRed, color.Bold)
	assistantColor = color.New(color.FgHiYellow)
	previewColor   = color.New(color.FgMagenta, color.Bold)
	balanceColor   = color.New(color.FgHiWhite, color.Bold)
)

func ColorPrompt(s string) string {
	return promptColor.Sprint(s)
}

func ColorInfo(s string) string {
	return infoColor.Sprint(s)
}

func ColorWarning(s string) string {
	return warningColor.Sprint(s)
}

func ColorError(s string) string {
	return errorColor.Sprint(s)
}

func ColorAssistant(s string) string {
	return assistantColor.Sprint(s)
}

// ColorPreview highlights a transaction preview the assistant proposed.
func ColorPreview(s string) string {
	return previewColor.Sprint(s)
}

func ColorBalance(s string) string {
	return balanceColor.Sprint(s)
}

// Disable turns styling off, e.g. when stdout is not a terminal.
func Disable() {
	color.NoColor = true
}
