package flow

import (
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/pagimos/discord-bot1/pkg/market"
)

func qtyInputID(i int) string {
	return fmt.Sprintf("qty_%d", i)
}

// resolvePicks turns raw option values (item indices) into catalog items,
// dropping anything out of range.
func (e *Engine) resolvePicks(s *Session, values []string) []market.Item {
	var items []market.Item
	for _, v := range values {
		idx, err := strconv.Atoi(v)
		if err != nil {
			continue
		}
		if item, ok := e.catalog(s.Shape).Lookup(s.Category, idx); ok {
			items = append(items, item)
		}
	}
	return items
}

// quantityModal builds the quantity form for the pending items.
func (e *Engine) quantityModal(s *Session) *ModalRequest {
	m := &ModalRequest{Action: ActionEnterQuantities, Title: "Enter Quantities"}
	for i, item := range s.Pending {
		m.Inputs = append(m.Inputs, ModalInput{
			ID:          qtyInputID(i),
			Label:       fmt.Sprintf("Quantity for %s", item.Name),
			Placeholder: "Enter quantity (1-99)",
			Default:     "1",
			MaxLength:   2,
		})
	}
	return m
}

// onQuantitySubmit commits the pending items to the cart with the submitted
// quantities. Bad input is not fatal: it defaults to 1 and says so.
func (e *Engine) onQuantitySubmit(s *Session, ev InteractionEvent) (RenderRequest, error) {
	if len(s.Pending) == 0 {
		return e.notice(e.cfg.Messages.UnknownAction), ErrUnknownAction
	}

	var fields []Field
	for i, item := range s.Pending {
		qty, defaulted := e.store.AppendQuantityText(s.UserID, item, ev.Inputs[qtyInputID(i)])
		line := fmt.Sprintf("**%s** x%d", item.Name, qty)
		if defaulted {
			line += fmt.Sprintf(" (%s)", e.cfg.Messages.QuantityDefaulted)
		}
		fields = append(fields, Field{Name: "📦 Added:", Value: line})
	}

	e.log.Info("items added to cart",
		zap.String("user_id", s.UserID),
		zap.String("category", s.Category),
		zap.Int("items", len(s.Pending)))

	category := s.Category
	s.Pending = nil
	s.State = StateCartUpdated

	fields = append(fields, Field{
		Name:  "🛒 Next Steps:",
		Value: "• Browse other categories\n• View your cart\n• Continue shopping",
	})

	return RenderRequest{
		Title:       "✅ Items Added to Cart!",
		Description: fmt.Sprintf("Successfully added items from **%s**:", category),
		Fields:      fields,
		Controls: []Control{
			{Kind: ControlButton, Action: ActionContinue, Label: "Continue Shopping", Emoji: "🌍", Style: StylePrimary},
			{Kind: ControlButton, Action: ActionViewCart, Label: "View Cart", Emoji: "🛒", Style: StyleSuccess},
			{Kind: ControlButton, Action: ActionBrowse, Label: "Browse Other Categories", Emoji: "🏪", Style: StyleSecondary},
		},
	}, nil
}
