package discord

import (
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"
	"github.com/oatsaysai/guild-bank-in-discord/internal/bank"
	"github.com/oatsaysai/guild-bank-in-discord/internal/discord/handlers"
)

var session *discordgo.Session

// SetBank sets the bank used by all command and reaction handlers.
func SetBank(b *bank.Bank) {
	handlers.SetBank(b)
}

// Initialize sets up the Discord session and registers handlers
func Initialize(token string) error {
	var err error
	session, err = discordgo.New("Bot " + token)
	if err != nil {
		return fmt.Errorf("error creating Discord session: %w", err)
	}

	// Reaction payloads only carry IDs; the message fetch in the reaction
	// handler needs these intents plus reaction events.
	session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsGuildMessageReactions |
		discordgo.IntentsMessageContent

	// Update the registry with all commands
	UpdateRegistry()

	// Register the message handler
	session.AddHandler(func(s *discordgo.Session, m *discordgo.MessageCreate) {
		ProcessCommand(s, m)
	})

	// Register the reaction handler for request approval
	session.AddHandler(func(s *discordgo.Session, r *discordgo.MessageReactionAdd) {
		handlers.HandleReactionAdd(s, r)
	})

	// Open connection to Discord
	err = session.Open()
	if err != nil {
		return fmt.Errorf("error opening connection to Discord: %w", err)
	}

	log.Println("Connected to Discord successfully")
	return nil
}

// Close closes the Discord session
func Close() {
	if session != nil {
		session.Close()
	}
}

// GetSession returns the Discord session
func GetSession() *discordgo.Session {
	return session
}
