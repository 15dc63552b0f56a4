package flow

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// onTopLevelSelect handles the category (or country) pick from the entry
// view.
func (e *Engine) onTopLevelSelect(s *Session, ev InteractionEvent) (RenderRequest, error) {
	if ev.Action != ActionPickCategory || len(ev.Values) == 0 {
		return e.notice(e.cfg.Messages.UnknownAction), ErrUnknownAction
	}

	key := ev.Values[0]
	if _, ok := e.catalog(s.Shape).Category(key); !ok {
		return e.notice(e.cfg.Messages.UnknownAction), ErrUnknownAction
	}

	s.Category = key
	s.PickedIdx = nil
	s.State = StateCategoryChosen

	e.log.Debug("category chosen",
		zap.String("user_id", s.UserID),
		zap.String("category", key))

	if s.Shape == ShapeCountry {
		return e.renderCountryItems(s), nil
	}
	return e.renderItemPicker(s), nil
}

// onItemSelect handles the item pick inside a category. The dropdown market
// takes a multi-select, the country market one indexed pick at a time.
func (e *Engine) onItemSelect(s *Session, ev InteractionEvent) (RenderRequest, error) {
	switch s.Shape {
	case ShapeDropdown:
		return e.pickItemsForQuantities(s, ev)
	case ShapeCountry:
		return e.pickCountryItem(s, ev)
	default:
		return e.notice(e.cfg.Messages.UnknownAction), ErrUnknownAction
	}
}

// onBrowseButton handles every button press outside the cart review view.
func (e *Engine) onBrowseButton(s *Session, ev InteractionEvent) (RenderRequest, error) {
	switch ev.Action {
	case ActionToggleItem:
		return e.toggleItem(s, ev)
	case ActionAddToCart:
		return e.commitToggled(s)
	case ActionEnterQuantities:
		return e.countryQuantities(s)
	case ActionViewCart:
		if e.store.IsEmpty(s.UserID) {
			return e.notice(e.cfg.Messages.EmptyCart), ErrEmptyCart
		}
		s.State = StateCartReview
		return e.renderReview(s.UserID), nil
	case ActionBrowse:
		if s.Shape == ShapeToggle {
			return e.renderToggleBoard(s), nil
		}
		s.State = StateStart
		return e.renderTopLevel(s), nil
	case ActionContinue:
		return e.backToShopping(s), nil
	default:
		return e.notice(e.cfg.Messages.UnknownAction), ErrUnknownAction
	}
}

// backToShopping re-renders the most useful shopping view for the session:
// the toggle board, the current category's items, or the entry view.
func (e *Engine) backToShopping(s *Session) RenderRequest {
	switch {
	case s.Shape == ShapeToggle:
		s.State = StateCategoryChosen
		return e.renderToggleBoard(s)
	case s.Shape == ShapeDropdown && s.Category != "":
		s.State = StateCategoryChosen
		return e.renderItemPicker(s)
	case s.Shape == ShapeCountry && s.Category != "":
		s.State = StateCategoryChosen
		s.PickedIdx = nil
		return e.renderCountryItems(s)
	default:
		s.State = StateStart
		return e.renderTopLevel(s)
	}
}

// renderTopLevel is the entry view: a select menu over categories or
// countries.
func (e *Engine) renderTopLevel(s *Session) RenderRequest {
	cat := e.catalog(s.Shape)

	title := "🏪 Black Market"
	description := "Welcome to the black market! Choose a category to browse available items."
	placeholder := "🛒 Choose a category to browse..."
	if s.Shape == ShapeCountry {
		title = "🌍 International Market"
		description = "Welcome to the market! Choose a country to browse their unique items."
		placeholder = "🌍 Choose a country to browse..."
	}

	var listing []string
	var options []Option
	for _, key := range cat.Categories() {
		c, _ := cat.Category(key)
		listing = append(listing, fmt.Sprintf("%s %s", c.Emoji, c.Key))
		options = append(options, Option{
			Label:       c.Key,
			Value:       c.Key,
			Description: c.Blurb,
			Emoji:       c.Emoji,
		})
	}

	return RenderRequest{
		Title:       title,
		Description: description,
		Fields: []Field{
			{Name: "Available Categories", Value: strings.Join(listing, "\n")},
			{Name: "How it works", Value: "1. Select a category from dropdown\n2. Choose items to add to cart\n3. Enter quantities\n4. View cart and confirm order"},
		},
		Controls: []Control{{
			Kind:        ControlSelect,
			Action:      ActionPickCategory,
			Placeholder: placeholder,
			MaxValues:   1,
			Options:     options,
		}},
	}
}

// renderItemPicker is the dropdown market's multi-select over one category.
func (e *Engine) renderItemPicker(s *Session) RenderRequest {
	items := e.catalog(s.Shape).Items(s.Category)

	options := make([]Option, 0, len(items))
	for i, item := range items {
		options = append(options, Option{
			Label:       item.Label(),
			Value:       fmt.Sprintf("%d", i),
			Description: item.Description,
		})
	}

	return RenderRequest{
		Title:       fmt.Sprintf("🛍️ %s", s.Category),
		Description: "Select multiple items to add to your cart from the dropdown below!",
		Controls: []Control{
			{
				Kind:        ControlSelect,
				Action:      ActionPickItems,
				Placeholder: "🛒 Select items to add to your cart (you can select multiple)...",
				MaxValues:   len(options),
				Options:     options,
			},
			{Kind: ControlButton, Action: ActionViewCart, Label: "View Cart", Emoji: "🛒", Style: StyleSuccess},
			{Kind: ControlButton, Action: ActionBrowse, Label: "Browse Other Categories", Emoji: "🏪", Style: StyleSecondary},
		},
	}
}

// pickItemsForQuantities resolves a multi-select into pending items and asks
// for quantities. Only the first MaxModalInputs selections get a quantity
// input; the rest are silently ignored, matching the platform's form limit.
func (e *Engine) pickItemsForQuantities(s *Session, ev InteractionEvent) (RenderRequest, error) {
	items := e.resolvePicks(s, ev.Values)
	if len(items) == 0 {
		return e.notice(e.cfg.Messages.NothingSelected), ErrNothingSelected
	}
	if len(items) > e.cfg.MaxModalInputs {
		items = items[:e.cfg.MaxModalInputs]
	}

	s.Pending = items
	s.State = StateItemsChosen
	return RenderRequest{Modal: e.quantityModal(s)}, nil
}
