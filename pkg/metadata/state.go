package metadata

import "fmt"

// State is the conservation condition of an asset.
type State string

const (
	StateNovo     State = "Novo"
	StateBom      State = "Bom"
	StateRegular  State = "Regular"
	StateAvariado State = "Avariado"
)

// States lists every valid condition in display order.
func States() []State {
	return []State{StateNovo, StateBom, StateRegular, StateAvariado}
}

func NewState(value string) (State, error) {
	state := State(value)
	if !state.isValid() {
		return "", fmt.Errorf("invalid state: %s", value)
	}
	return state, nil
}

func (s State) isValid() bool {
	switch s {
	case StateNovo, StateBom, StateRegular, StateAvariado:
		return true
	default:
		return false
	}
}

func (s State) String() string {
	return string(s)
}
