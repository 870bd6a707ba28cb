package handlers

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/oatsaysai/guild-bank-in-discord/internal/bank"
)

// parseAdminArgs validates an admin mutation command of the form
// `!cmd @user <amount> [reason...]` and checks the invoker's role.
func parseAdminArgs(s *discordgo.Session, m *discordgo.MessageCreate, args []string, usage string) (targetID string, amount int64, reason string, ok bool) {
	if !IsAdmin(s, m.GuildID, m.Author.ID) {
		SendErrorMessage(s, m.ChannelID, "You don't have permission to use this command.")
		return "", 0, "", false
	}

	if len(args) < 3 || !userMentionRegex.MatchString(args[1]) {
		SendErrorMessage(s, m.ChannelID, fmt.Sprintf("Invalid format. Use `%s`", usage))
		return "", 0, "", false
	}

	targetID = userMentionRegex.FindStringSubmatch(args[1])[1]
	amount, err := strconv.ParseInt(args[2], 10, 64)
	if err != nil {
		SendErrorMessage(s, m.ChannelID, fmt.Sprintf("`%s` is not a valid amount (use copper, e.g. 12500).", args[2]))
		return "", 0, "", false
	}

	reason = strings.Join(args[3:], " ")
	if reason == "" {
		reason = "N/A"
	}
	return targetID, amount, reason, true
}

// HandleGrant handles the !grant command: a moderator mints currency
// directly into a user's balance.
func HandleGrant(s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	targetID, amount, reason, ok := parseAdminArgs(s, m, args, "!grant @user <amount> [reason]")
	if !ok {
		return
	}
	if amount <= 0 {
		SendErrorMessage(s, m.ChannelID, "The amount must be positive.")
		return
	}

	if _, err := currentBank.ApplyDelta(targetID, amount); err != nil {
		SendErrorMessage(s, m.ChannelID, "The grant failed.")
		log.Printf("Error granting %d to %s: %v", amount, targetID, err)
		return
	}

	s.ChannelMessageSend(m.ChannelID, fmt.Sprintf("Granted %s to <@%s>.\nReason: %s",
		FormatCurrency(s, m.GuildID, amount), targetID, reason))
}

// HandleTake handles the !take command: a moderator deducts currency from a
// user's balance, clamped at zero.
func HandleTake(s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	targetID, amount, reason, ok := parseAdminArgs(s, m, args, "!take @user <amount> [reason]")
	if !ok {
		return
	}

	if _, err := currentBank.Deduct(targetID, amount); err != nil {
		if errors.Is(err, bank.ErrInvalidAmount) {
			SendErrorMessage(s, m.ChannelID, "The amount must be positive.")
			return
		}
		SendErrorMessage(s, m.ChannelID, "The deduction failed.")
		log.Printf("Error deducting %d from %s: %v", amount, targetID, err)
		return
	}

	s.ChannelMessageSend(m.ChannelID, fmt.Sprintf("Deducted %s from <@%s>.\nReason: %s",
		FormatCurrency(s, m.GuildID, amount), targetID, reason))
}
