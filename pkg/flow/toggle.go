package flow

import (
	"fmt"
	"sort"
	"strconv"

	"go.uber.org/zap"
)

// toggleItem flips one ghost-shop item on or off. Toggling an already
// selected item deselects it; selecting past the cap changes nothing and
// tells the user.
func (e *Engine) toggleItem(s *Session, ev InteractionEvent) (RenderRequest, error) {
	if len(ev.Values) == 0 {
		return e.notice(e.cfg.Messages.UnknownAction), ErrUnknownAction
	}
	idx, err := strconv.Atoi(ev.Values[0])
	if err != nil {
		return e.notice(e.cfg.Messages.UnknownAction), ErrUnknownAction
	}
	if _, ok := e.catalog(s.Shape).Lookup(s.Category, idx); !ok {
		return e.notice(e.cfg.Messages.UnknownAction), ErrUnknownAction
	}

	if s.Toggled[idx] {
		delete(s.Toggled, idx)
	} else {
		if len(s.Toggled) >= e.cfg.MaxToggleItems {
			return e.notice(e.cfg.Messages.CapExceeded), ErrSelectionCap
		}
		s.Toggled[idx] = true
	}

	return e.renderToggleBoard(s), nil
}

// commitToggled moves every toggled item into the cart, one line each, and
// resets the board.
func (e *Engine) commitToggled(s *Session) (RenderRequest, error) {
	if len(s.Toggled) == 0 {
		return e.notice(e.cfg.Messages.NothingSelected), ErrNothingSelected
	}

	indices := make([]int, 0, len(s.Toggled))
	for idx := range s.Toggled {
		indices = append(indices, idx)
	}
	sort.Ints(indices)

	var fields []Field
	for _, idx := range indices {
		item, ok := e.catalog(s.Shape).Lookup(s.Category, idx)
		if !ok {
			continue
		}
		e.store.Append(s.UserID, item)
		fields = append(fields, Field{Name: "📦 Added:", Value: fmt.Sprintf("**%s** x1", item.Name)})
	}

	e.log.Info("toggled items added to cart",
		zap.String("user_id", s.UserID),
		zap.Int("items", len(indices)))

	s.Toggled = make(map[int]bool)
	s.State = StateCartUpdated

	return RenderRequest{
		Title:       "✅ Items Added to Cart!",
		Description: fmt.Sprintf("Successfully added items from **%s**:", s.Category),
		Fields:      fields,
		Controls: []Control{
			{Kind: ControlButton, Action: ActionContinue, Label: "Continue Shopping", Emoji: "👻", Style: StylePrimary},
			{Kind: ControlButton, Action: ActionViewCart, Label: "View Cart", Emoji: "🛒", Style: StyleSuccess},
		},
	}, nil
}

// renderToggleBoard shows one toggle button per ghost-shop item. Selected
// items render primary, the rest secondary.
func (e *Engine) renderToggleBoard(s *Session) RenderRequest {
	items := e.catalog(s.Shape).Items(s.Category)

	controls := make([]Control, 0, len(items)+2)
	for i, item := range items {
		style := StyleSecondary
		if s.Toggled[i] {
			style = StylePrimary
		}
		controls = append(controls, Control{
			Kind:   ControlButton,
			Action: ActionToggleItem,
			Value:  strconv.Itoa(i),
			Label:  item.Label(),
			Style:  style,
		})
	}
	controls = append(controls,
		Control{Kind: ControlButton, Action: ActionAddToCart, Label: "Add Selected to Cart", Emoji: "➕", Style: StyleSuccess},
		Control{Kind: ControlButton, Action: ActionViewCart, Label: "View Cart", Emoji: "🛒", Style: StyleSuccess},
	)

	return RenderRequest{
		Title: "👻 Ghost Shop",
		Description: fmt.Sprintf(
			"Tap items to select or deselect them, then add them to your cart. You can select up to %d at once (%d selected).",
			e.cfg.MaxToggleItems, len(s.Toggled)),
		Controls: controls,
	}
}
