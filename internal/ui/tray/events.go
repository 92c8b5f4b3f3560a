package tray

// Menu item ids shared with the host menu.
const (
	MenuShowID = "show"
	MenuQuitID = "quit"
)

// Action is a user action reachable from the tray.
type Action int

const (
	ActionUnknown Action = iota
	ActionShow
	ActionQuit
)

// ParseAction maps a menu item id to its action.
func ParseAction(id string) Action {
	switch id {
	case MenuShowID:
		return ActionShow
	case MenuQuitID:
		return ActionQuit
	default:
		return ActionUnknown
	}
}

func (action Action) String() string {
	switch action {
	case ActionShow:
		return "show"
	case ActionQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// MenuEvent is delivered when a tray menu item is activated.
type MenuEvent struct {
	ID string
}

// IconEventKind classifies pointer events on the tray icon.
type IconEventKind int

const (
	IconClick IconEventKind = iota
)

// IconEvent is delivered on pointer interaction with the icon itself.
type IconEvent struct {
	Kind IconEventKind
}
