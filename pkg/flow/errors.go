package flow

import "errors"

// Rejections the engine reports alongside a user-facing notice. None of
// them mutates session or cart state.
var (
	ErrNotYourCart     = errors.New("interaction actor does not own this cart")
	ErrEmptyCart       = errors.New("cart is empty")
	ErrSelectionCap    = errors.New("selection cap exceeded")
	ErrNothingSelected = errors.New("no items selected")
	ErrSessionExpired  = errors.New("session expired")
	ErrUnknownAction   = errors.New("no transition for this event")
)
