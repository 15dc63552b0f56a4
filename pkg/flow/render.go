package flow

// RenderRequest describes what the platform should display next: summary
// text, optional fields, and the controls to offer. The engine never touches
// platform types; the adapter owns the translation.
type RenderRequest struct {
	Title       string
	Description string
	Fields      []Field
	Controls    []Control
	Modal       *ModalRequest

	// Notice is a private, non-mutating message to the actor. When set the
	// current view stays as it is.
	Notice  string
	Private bool

	// Done marks a terminal render; the adapter strips all controls.
	Done bool
}

type Field struct {
	Name  string
	Value string
}

type ControlKind int

const (
	ControlButton ControlKind = iota
	ControlSelect
)

type ControlStyle int

const (
	StylePrimary ControlStyle = iota
	StyleSecondary
	StyleSuccess
	StyleDanger
)

// Control is one interactive widget. Action plus Value round-trip through
// the platform and come back on the matching InteractionEvent.
type Control struct {
	Kind        ControlKind
	Action      string
	Value       string
	Label       string
	Emoji       string
	Style       ControlStyle
	Placeholder string
	MaxValues   int
	Options     []Option
}

type Option struct {
	Label       string
	Value       string
	Description string
	Emoji       string
}

// ModalRequest asks the platform to pop a text-input form.
type ModalRequest struct {
	Action string
	Title  string
	Inputs []ModalInput
}

type ModalInput struct {
	ID          string
	Label       string
	Placeholder string
	Default     string
	MaxLength   int
}
