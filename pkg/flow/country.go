package flow

import (
	"fmt"
	"strconv"
	"strings"
)

// pickCountryItem records one indexed pick for the current country, at most
// MaxCountryItems per visit.
func (e *Engine) pickCountryItem(s *Session, ev InteractionEvent) (RenderRequest, error) {
	if ev.Action != ActionPickCountryItem || len(ev.Values) == 0 {
		return e.notice(e.cfg.Messages.UnknownAction), ErrUnknownAction
	}
	idx, err := strconv.Atoi(ev.Values[0])
	if err != nil {
		return e.notice(e.cfg.Messages.UnknownAction), ErrUnknownAction
	}
	if _, ok := e.catalog(s.Shape).Lookup(s.Category, idx); !ok {
		return e.notice(e.cfg.Messages.UnknownAction), ErrUnknownAction
	}

	if len(s.PickedIdx) >= e.cfg.MaxCountryItems {
		return e.notice(e.cfg.Messages.CapExceeded), ErrSelectionCap
	}

	s.PickedIdx = append(s.PickedIdx, idx)
	return e.renderCountryItems(s), nil
}

// countryQuantities moves the picked items into the quantity form.
func (e *Engine) countryQuantities(s *Session) (RenderRequest, error) {
	if len(s.PickedIdx) == 0 {
		return e.notice(e.cfg.Messages.NothingSelected), ErrNothingSelected
	}

	values := make([]string, len(s.PickedIdx))
	for i, idx := range s.PickedIdx {
		values[i] = strconv.Itoa(idx)
	}

	items := e.resolvePicks(s, values)
	s.PickedIdx = nil
	s.Pending = items
	s.State = StateItemsChosen
	return RenderRequest{Modal: e.quantityModal(s)}, nil
}

// renderCountryItems shows one country's wares with the running pick list.
func (e *Engine) renderCountryItems(s *Session) RenderRequest {
	cat, _ := e.catalog(s.Shape).Category(s.Category)

	options := make([]Option, 0, len(cat.Items))
	for i, item := range cat.Items {
		options = append(options, Option{
			Label:       item.Label(),
			Value:       strconv.Itoa(i),
			Description: item.Description,
		})
	}

	var picks []string
	for _, idx := range s.PickedIdx {
		picks = append(picks, fmt.Sprintf("• %s", cat.Items[idx].Name))
	}
	picked := "Nothing yet."
	if len(picks) > 0 {
		picked = strings.Join(picks, "\n")
	}

	return RenderRequest{
		Title: fmt.Sprintf("%s %s", cat.Emoji, cat.Key),
		Description: fmt.Sprintf(
			"Pick up to %d items one by one, then enter quantities.", e.cfg.MaxCountryItems),
		Fields: []Field{{Name: "Your picks", Value: picked}},
		Controls: []Control{
			{
				Kind:        ControlSelect,
				Action:      ActionPickCountryItem,
				Placeholder: "🛒 Pick an item...",
				MaxValues:   1,
				Options:     options,
			},
			{Kind: ControlButton, Action: ActionEnterQuantities, Label: "Enter Quantities", Emoji: "🔢", Style: StyleSuccess},
			{Kind: ControlButton, Action: ActionViewCart, Label: "View Cart", Emoji: "🛒", Style: StyleSuccess},
			{Kind: ControlButton, Action: ActionBrowse, Label: "Other Countries", Emoji: "🌍", Style: StyleSecondary},
		},
	}
}
