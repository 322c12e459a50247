package config

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionDrop
	ActionSprint
	ActionInteract
	ActionNextLocation
	ActionToggleDebug
	ActionCount // Must be last - used for array sizing
)

var actionNames = [ActionCount]string{
	ActionNone:         "none",
	ActionMoveLeft:     "left",
	ActionMoveRight:    "right",
	ActionJump:         "jump",
	ActionDrop:         "drop",
	ActionSprint:       "sprint",
	ActionInteract:     "interact",
	ActionNextLocation: "next",
	ActionToggleDebug:  "debug",
}

func (a ActionID) String() string {
	if a < 0 || a >= ActionCount {
		return "unknown"
	}
	return actionNames[a]
}

// ParseAction maps a name used in input plans back to its action
func ParseAction(name string) (ActionID, bool) {
	for id, n := range actionNames {
		if n == name && ActionID(id) != ActionNone {
			return ActionID(id), true
		}
	}
	return ActionNone, false
}
