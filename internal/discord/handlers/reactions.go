package handlers

import (
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"
)

const (
	emojiApprove = "✅"
	emojiDeny    = "❌"
)

// HandleReactionAdd resolves pending requests when a moderator reacts on a
// review post. Anything that is not a qualifying reaction on a parseable
// review post is ignored without a reply: reactions land on all kinds of
// messages and most of them are not for us.
func HandleReactionAdd(s *discordgo.Session, r *discordgo.MessageReactionAdd) {
	if r.UserID == s.State.User.ID {
		return
	}

	emoji := r.Emoji.Name
	if emoji != emojiApprove && emoji != emojiDeny {
		return
	}

	if !IsAdmin(s, r.GuildID, r.UserID) {
		return
	}

	msg, err := s.ChannelMessage(r.ChannelID, r.MessageID)
	if err != nil {
		log.Printf("Error fetching message %s for reaction: %v", r.MessageID, err)
		return
	}
	if len(msg.Embeds) == 0 || msg.Embeds[0].Footer == nil {
		return
	}

	userID, amount, ok := ParseRequestFooter(msg.Embeds[0].Footer.Text)
	if !ok {
		return
	}

	// Claim deletes the record atomically, so at most one reaction resolves
	// a request even if several arrive at once.
	claimed, ok, err := currentBank.ClaimRequest(userID, amount)
	if err != nil {
		log.Printf("Error claiming request for user %s amount %d: %v", userID, amount, err)
		return
	}
	if !ok {
		// No matching pending request; the post is stale or already resolved.
		return
	}

	requesterName := GetDiscordUsername(s, userID)

	if emoji == emojiApprove {
		if _, err := currentBank.Grant(userID, amount); err != nil {
			log.Printf("Error crediting approved request %s: %v", claimed.ID, err)
			SendErrorMessage(s, r.ChannelID, fmt.Sprintf("Could not credit the approved request for <@%s>.", userID))
			return
		}
		s.ChannelMessageSend(r.ChannelID, fmt.Sprintf("✅ Request approved: %s granted to %s (<@%s>).",
			FormatCurrency(s, r.GuildID, amount), requesterName, userID))
		return
	}

	s.ChannelMessageSend(r.ChannelID, fmt.Sprintf("❌ Request denied for %s (<@%s>).", requesterName, userID))
}
