package handlers

import (
	"github.com/bwmarrin/discordgo"
)

// HandleHelpCommand handles the !help command
func HandleHelpCommand(s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	helpMessage := `
**Ledger commands:**
- ` + "`!balance`" + ` - Show your current gold/silver/copper balance
- ` + "`!give @user <amount>`" + ` - Transfer currency from your balance to another user
- ` + "`!transactions`" + ` - Show your transaction history

**Request commands:**
- ` + "`!request <amount> <reason>`" + ` - Request currency from the guild bank; a moderator approves (✅) or denies (❌) by reacting on the review post

**Admin commands (require the banker role):**
- ` + "`!grant @user <amount> [reason]`" + ` - Grant currency to a user
- ` + "`!take @user <amount> [reason]`" + ` - Deduct currency from a user
- ` + "`!rescanrequests`" + ` - Repost review messages for all pending requests

Amounts are given in copper: 100 copper = 1 silver, 10000 copper = 1 gold.
Example: ` + "`!give @user 12500`" + ` transfers 1G25S00C.
`
	s.ChannelMessageSend(m.ChannelID, helpMessage)
}
