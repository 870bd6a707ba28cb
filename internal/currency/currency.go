// Package currency converts copper amounts into the three-tier
// gold/silver/copper display form. All balances are stored in copper, the
// smallest unit: 1 gold = 100 silver = 10000 copper.
package currency

import "fmt"

const (
	CopperPerSilver = 100
	CopperPerGold   = 10000
)

// Split decomposes a copper amount into its gold, silver and copper tiers.
func Split(v int64) (gold, silver, copper int64) {
	gold = v / CopperPerGold
	silver = (v % CopperPerGold) / CopperPerSilver
	copper = v % CopperPerSilver
	return
}

// Format renders a copper amount as "{gold}G{silver:02}S{copper:02}C",
// e.g. 123456 -> "12G34S56C", 0 -> "0G00S00C".
func Format(v int64) string {
	return FormatWith(v, "G", "S", "C")
}

// FormatWith renders a copper amount with custom tier symbols, so callers
// can substitute guild emojis for the plain G/S/C letters.
func FormatWith(v int64, goldSym, silverSym, copperSym string) string {
	gold, silver, copper := Split(v)
	return fmt.Sprintf("%d%s%02d%s%02d%s", gold, goldSym, silver, silverSym, copper, copperSym)
}
