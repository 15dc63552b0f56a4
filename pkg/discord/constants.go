package discord

import "strings"

// Slash command names.
const (
	MarketCmd      = "market"
	GhostShopCmd   = "ghostshop"
	WorldMarketCmd = "worldmarket"
	CartCmd        = "cart"
	PingCmd        = "ping"
)

// Custom IDs round-trip the flow action, an optional payload, and the
// owning user's id through the platform: "action:value:owner".
const customIDSep = ":"

func customID(action, value, ownerID string) string {
	return strings.Join([]string{action, value, ownerID}, customIDSep)
}

func parseCustomID(id string) (action, value, ownerID string, ok bool) {
	parts := strings.SplitN(id, customIDSep, 3)
	if len(parts) != 3 {
		return "", "", "", false
	}
	return parts[0], parts[1], parts[2], true
}
