package flow

// EventKind is the class of interaction the platform delivered.
type EventKind int

const (
	EventSelectMenu EventKind = iota
	EventButton
	EventModalSubmit
)

func (k EventKind) String() string {
	switch k {
	case EventSelectMenu:
		return "select_menu"
	case EventButton:
		return "button"
	case EventModalSubmit:
		return "modal_submit"
	default:
		return "unknown"
	}
}

// Control actions. These are the stable identifiers the engine hands out on
// controls and expects back on the next event.
const (
	ActionPickCategory    = "pick_category"
	ActionPickItems       = "pick_items"
	ActionPickCountryItem = "pick_country_item"
	ActionToggleItem      = "toggle_item"
	ActionAddToCart       = "add_to_cart"
	ActionEnterQuantities = "enter_quantities"
	ActionViewCart        = "view_cart"
	ActionBrowse          = "browse"
	ActionContinue        = "continue_shopping"
	ActionClearCart       = "clear_cart"
	ActionConfirm         = "confirm_order"
)

// InteractionEvent is one inbound user interaction, stripped of platform
// detail. Values carries selected option values (or the button payload);
// Inputs carries submitted modal text keyed by input id.
type InteractionEvent struct {
	ActorID string
	Kind    EventKind
	Action  string
	Values  []string
	Inputs  map[string]string
}
