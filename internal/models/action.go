package models

// ActionKind identifies operator action on order
type ActionKind int

const (
	ActionProcess ActionKind = iota + 1
	ActionDeliver
	ActionCancel
	ActionReturn
)

func (k ActionKind) String() string {
	switch k {
	case ActionProcess:
		return "process"
	case ActionDeliver:
		return "deliver"
	case ActionCancel:
		return "cancel"
	case ActionReturn:
		return "return"
	default:
		return "unknown"
	}
}

// MarshalText encodes kind as its name
func (k ActionKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Action is operator action available for order
type Action struct {
	Kind         ActionKind  `json:"kind"`
	Label        string      `json:"label"`
	TargetStatus OrderStatus `json:"targetStatus"`
	RequiresOTP  bool        `json:"requiresOtp"`
	Enabled      bool        `json:"enabled"`
}
