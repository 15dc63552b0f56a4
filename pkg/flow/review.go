package flow

import (
	"go.uber.org/zap"

	"github.com/pagimos/discord-bot1/pkg/cart"
)

// onReviewButton handles the cart review controls: keep shopping, clear, or
// confirm the order.
func (e *Engine) onReviewButton(s *Session, ev InteractionEvent) (RenderRequest, error) {
	switch ev.Action {
	case ActionContinue:
		if s.Shape == ShapeToggle {
			s.State = StateCategoryChosen
			return e.renderToggleBoard(s), nil
		}
		s.Category = ""
		s.PickedIdx = nil
		s.State = StateStart
		return e.renderTopLevel(s), nil

	case ActionClearCart:
		e.store.Clear(s.UserID)
		s.Category = ""
		s.Pending = nil
		s.PickedIdx = nil
		s.Toggled = make(map[int]bool)
		s.State = StateStart

		e.log.Info("cart cleared", zap.String("user_id", s.UserID))

		return RenderRequest{
			Title:       "🗑️ Cart Cleared!",
			Description: e.cfg.Messages.CartCleared,
			Fields: []Field{{
				Name:  "What's next?",
				Value: "You can start shopping again by clicking 'Start Shopping' or use /market.",
			}},
			Controls: []Control{
				{Kind: ControlButton, Action: ActionContinue, Label: "Start Shopping", Emoji: "🛍️", Style: StylePrimary},
			},
		}, nil

	case ActionConfirm:
		return e.confirmOrder(s)

	default:
		return e.notice(e.cfg.Messages.UnknownAction), ErrUnknownAction
	}
}

// confirmOrder renders the final receipt and empties the cart. Confirming an
// empty cart is rejected without touching anything.
func (e *Engine) confirmOrder(s *Session) (RenderRequest, error) {
	lines := e.store.Get(s.UserID)
	if len(lines) == 0 {
		return e.notice(e.cfg.Messages.EmptyCart), ErrEmptyCart
	}

	sum := cart.Summarize(lines)
	e.store.Clear(s.UserID)
	s.State = StateConfirmed

	e.log.Info("order confirmed",
		zap.String("user_id", s.UserID),
		zap.Int("groups", len(sum.Groups)),
		zap.String("total", sum.Total.StringFixed(2)))

	return RenderRequest{
		Title:       "🎉 Order Confirmed!",
		Description: e.cfg.Messages.OrderConfirmed + "\n\n" + sum.Lines(),
		Fields: []Field{{
			Name:  "📞 Order Status",
			Value: "Your order has been processed successfully!\nThank you for shopping with us! 🙏",
		}},
		Done: true,
	}, nil
}

// renderReview shows the grouped cart with the order controls.
func (e *Engine) renderReview(userID string) RenderRequest {
	sum := cart.Summarize(e.store.Get(userID))

	return RenderRequest{
		Title:       "🛒 Your Shopping Cart",
		Description: sum.Lines(),
		Controls: []Control{
			{Kind: ControlButton, Action: ActionContinue, Label: "Continue Shopping", Emoji: "🌍", Style: StylePrimary},
			{Kind: ControlButton, Action: ActionClearCart, Label: "Clear Cart", Emoji: "🗑️", Style: StyleDanger},
			{Kind: ControlButton, Action: ActionConfirm, Label: "Confirm Order", Emoji: "✅", Style: StyleSuccess},
		},
	}
}
