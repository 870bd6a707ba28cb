package commands

import (
	"github.com/oatsaysai/guild-bank-in-discord/internal/discord/handlers"
)

// RegisterHelpCommand registers the help command
func RegisterHelpCommand() {
	registerCommand(CommandDefinition{
		Name:        "help",
		Description: "Show help information about available commands",
		Usage:       "!help",
		Examples: []string{
			"!help",
		},
		Handler: handlers.HandleHelpCommand,
	})
}
