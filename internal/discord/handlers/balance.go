package handlers

import (
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"
)

// HandleBalance handles the !balance command
func HandleBalance(s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	amount, err := currentBank.Balance(m.Author.ID)
	if err != nil {
		SendErrorMessage(s, m.ChannelID, "Could not read your balance.")
		log.Printf("Error reading balance for %s: %v", m.Author.ID, err)
		return
	}

	s.ChannelMessageSend(m.ChannelID, fmt.Sprintf("%s has %s",
		m.Author.Mention(), FormatCurrency(s, m.GuildID, amount)))
}

// HandleTransactions handles the !transactions command. No transaction log
// is retained anywhere in the system, so this always reports an empty
// history.
func HandleTransactions(s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	s.ChannelMessageSend(m.ChannelID, fmt.Sprintf("%s has no transaction history.", m.Author.Mention()))
}
