package handlers

import (
	"errors"
	"fmt"
	"log"
	"strconv"

	"github.com/bwmarrin/discordgo"
	"github.com/oatsaysai/guild-bank-in-discord/internal/bank"
)

// HandleGive handles the !give command: a peer-to-peer transfer from the
// invoker's balance to the mentioned user.
func HandleGive(s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	if len(args) < 3 || !userMentionRegex.MatchString(args[1]) {
		SendErrorMessage(s, m.ChannelID, "Invalid format. Use `!give @user <amount>`")
		return
	}

	receiverID := userMentionRegex.FindStringSubmatch(args[1])[1]
	amount, err := strconv.ParseInt(args[2], 10, 64)
	if err != nil {
		SendErrorMessage(s, m.ChannelID, fmt.Sprintf("`%s` is not a valid amount (use copper, e.g. 12500).", args[2]))
		return
	}

	err = currentBank.Transfer(m.Author.ID, receiverID, amount)
	switch {
	case errors.Is(err, bank.ErrInvalidAmount):
		SendErrorMessage(s, m.ChannelID, "The amount must be positive.")
		return
	case errors.Is(err, bank.ErrInsufficientFunds):
		SendErrorMessage(s, m.ChannelID, "You don't have enough funds for that transfer.")
		return
	case err != nil:
		SendErrorMessage(s, m.ChannelID, "The transfer failed.")
		log.Printf("Error transferring %d from %s to %s: %v", amount, m.Author.ID, receiverID, err)
		return
	}

	s.ChannelMessageSend(m.ChannelID, fmt.Sprintf("%s transferred %s to <@%s>.",
		m.Author.Mention(), FormatCurrency(s, m.GuildID, amount), receiverID))
}
