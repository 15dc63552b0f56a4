package cart

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/pagimos/discord-bot1/pkg/market"
)

// Group is one distinct (name, price) line of a summary.
type Group struct {
	Item     market.Item
	Count    int
	Subtotal decimal.Decimal
}

// Summary is the grouped view of a cart. Groups keep the first-seen order of
// the underlying lines, and Total always equals the ungrouped sum.
type Summary struct {
	Groups []Group
	Total  decimal.Decimal
}

// Summarize groups cart lines by (name, price) in insertion order. All
// arithmetic stays in decimal so repeated additions cannot drift.
func Summarize(lines []market.Item) Summary {
	sum := Summary{Total: decimal.Zero}
	index := make(map[string]int)

	for _, item := range lines {
		key := item.Key()
		if at, seen := index[key]; seen {
			sum.Groups[at].Count++
			sum.Groups[at].Subtotal = sum.Groups[at].Subtotal.Add(item.Price)
		} else {
			index[key] = len(sum.Groups)
			sum.Groups = append(sum.Groups, Group{Item: item, Count: 1, Subtotal: item.Price})
		}
		sum.Total = sum.Total.Add(item.Price)
	}
	return sum
}

// Lines renders the receipt breakdown:
//
//	- 2 Combat Pistol : $109000.00
//	- 1 Shotgun : $120000.00
//
//	Total : $229000.00
func (s Summary) Lines() string {
	var b strings.Builder
	for _, g := range s.Groups {
		fmt.Fprintf(&b, "- %d %s : $%s\n", g.Count, g.Item.Name, g.Subtotal.StringFixed(2))
	}
	fmt.Fprintf(&b, "\nTotal : $%s", s.Total.StringFixed(2))
	return b.String()
}
