package handlers

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/oatsaysai/guild-bank-in-discord/internal/models"
)

const requestEmbedColor = 0xF1C40F

// HandleRequest handles the !request command: the user asks the guild bank
// for currency, and a review post is published for a moderator to resolve.
func HandleRequest(s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	if len(args) < 3 {
		SendErrorMessage(s, m.ChannelID, "Invalid format. Use `!request <amount> <reason>`")
		return
	}

	amount, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		SendErrorMessage(s, m.ChannelID, fmt.Sprintf("`%s` is not a valid amount (use copper, e.g. 12500).", args[1]))
		return
	}
	reason := strings.Join(args[2:], " ")

	// The command message ID keys the request: unique, never reused.
	if err := currentBank.SubmitRequest(m.ID, m.Author.ID, amount, reason); err != nil {
		SendErrorMessage(s, m.ChannelID, "Could not record your request.")
		log.Printf("Error storing request %s: %v", m.ID, err)
		return
	}

	req := models.Request{UserID: m.Author.ID, Amount: amount, Reason: reason}
	if err := publishReviewPost(s, m.ChannelID, m.GuildID, req); err != nil {
		log.Printf("Error publishing review post for request %s: %v", m.ID, err)
	}

	s.ChannelMessageSend(m.ChannelID, fmt.Sprintf("%s your request has been submitted for review.", m.Author.Mention()))
}

// HandleRescanRequests handles the !rescanrequests command: republishes a
// fresh review post for every pending request, leaving the records alone.
// It recovers requests whose original posts were lost or deleted.
func HandleRescanRequests(s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	if !IsAdmin(s, m.GuildID, m.Author.ID) {
		SendErrorMessage(s, m.ChannelID, "Only admins can use this command.")
		return
	}

	pending, err := currentBank.PendingRequests()
	if err != nil {
		SendErrorMessage(s, m.ChannelID, "Could not list pending requests.")
		log.Printf("Error listing pending requests: %v", err)
		return
	}

	count := 0
	for _, p := range pending {
		if err := publishReviewPost(s, m.ChannelID, m.GuildID, p.Request); err != nil {
			log.Printf("Error republishing review post for request %s: %v", p.ID, err)
			continue
		}
		count++
	}

	s.ChannelMessageSend(m.ChannelID, fmt.Sprintf("Rescanned %d pending requests.", count))
}

// publishReviewPost sends the review embed for a request and seeds the
// approve/deny reactions. The footer carries the identity the reaction
// handler matches on.
func publishReviewPost(s *discordgo.Session, channelID, guildID string, req models.Request) error {
	reason := req.Reason
	if reason == "" {
		reason = "N/A"
	}

	embed := &discordgo.MessageEmbed{
		Title: "Currency Request",
		Description: fmt.Sprintf("<@%s> requests %s\nReason: %s",
			req.UserID, FormatCurrency(s, guildID, req.Amount), reason),
		Color: requestEmbedColor,
		Footer: &discordgo.MessageEmbedFooter{
			Text: BuildRequestFooter(req.UserID, req.Amount),
		},
	}

	msg, err := s.ChannelMessageSendEmbed(channelID, embed)
	if err != nil {
		return fmt.Errorf("error sending review embed: %w", err)
	}

	if err := s.MessageReactionAdd(channelID, msg.ID, emojiApprove); err != nil {
		log.Printf("Error adding approve reaction to %s: %v", msg.ID, err)
	}
	if err := s.MessageReactionAdd(channelID, msg.ID, emojiDeny); err != nil {
		log.Printf("Error adding deny reaction to %s: %v", msg.ID, err)
	}
	return nil
}
