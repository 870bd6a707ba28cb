package handlers

import (
	"fmt"
	"log"
	"regexp"

	"github.com/bwmarrin/discordgo"
	"github.com/oatsaysai/guild-bank-in-discord/internal/bank"
	"github.com/oatsaysai/guild-bank-in-discord/internal/config"
	"github.com/oatsaysai/guild-bank-in-discord/internal/currency"
)

var (
	userMentionRegex = regexp.MustCompile(`<@!?(\d+)>`)

	currentBank *bank.Bank
)

// SetBank sets the bank instance used by all handlers.
func SetBank(b *bank.Bank) {
	currentBank = b
}

// SendErrorMessage sends an error message to the specified Discord channel
func SendErrorMessage(s *discordgo.Session, channelID, message string) {
	log.Printf("ERROR to user (Channel: %s): %s", channelID, message)
	_, err := s.ChannelMessageSend(channelID, fmt.Sprintf("⚠️ %s", message))
	if err != nil {
		log.Printf("Failed to send error message to Discord: %v", err)
	}
}

// GetDiscordUsername retrieves a user's display name from their Discord ID
func GetDiscordUsername(s *discordgo.Session, discordID string) string {
	if s == nil {
		log.Println("ERROR: Discord session is nil in GetDiscordUsername")
		return "User"
	}

	user, err := s.User(discordID)
	if err != nil {
		log.Printf("Error fetching user info for ID %s: %v", discordID, err)
		return "User"
	}

	// Use global_name if available, otherwise username
	if user.GlobalName != "" {
		return user.GlobalName
	}
	if user.Username != "" {
		return user.Username
	}

	return "User"
}

// IsAdmin reports whether the user holds the configured admin role in the
// guild. Users outside a guild (DMs) are never admins.
func IsAdmin(s *discordgo.Session, guildID, userID string) bool {
	if guildID == "" {
		return false
	}

	member, err := s.GuildMember(guildID, userID)
	if err != nil {
		log.Printf("Error fetching member %s in guild %s: %v", userID, guildID, err)
		return false
	}

	roleName := config.GetString("DiscordBot.AdminRoleName")
	guild, err := s.State.Guild(guildID)
	if err != nil {
		guild, err = s.Guild(guildID)
		if err != nil {
			log.Printf("Error fetching guild %s: %v", guildID, err)
			return false
		}
	}

	for _, role := range guild.Roles {
		if role.Name != roleName {
			continue
		}
		for _, memberRoleID := range member.Roles {
			if memberRoleID == role.ID {
				return true
			}
		}
	}
	return false
}

// FormatCurrency renders a copper amount using the guild's custom g_/s_/c_
// emojis when they exist, falling back to the plain G/S/C letters.
func FormatCurrency(s *discordgo.Session, guildID string, v int64) string {
	if s == nil || guildID == "" {
		return currency.Format(v)
	}

	guild, err := s.State.Guild(guildID)
	if err != nil {
		guild, err = s.Guild(guildID)
		if err != nil {
			return currency.Format(v)
		}
	}

	goldSym, silverSym, copperSym := "G", "S", "C"
	for _, emoji := range guild.Emojis {
		switch emoji.Name {
		case "g_":
			goldSym = emoji.MessageFormat()
		case "s_":
			silverSym = emoji.MessageFormat()
		case "c_":
			copperSym = emoji.MessageFormat()
		}
	}
	return currency.FormatWith(v, goldSym, silverSym, copperSym)
}
