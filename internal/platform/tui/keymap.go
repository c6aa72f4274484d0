package tui

import (
	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// KeyMapper translates decoded keys to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	bindings map[Key]core.Action
}

// NewKeyMapper builds a mapper from the configured bindings.
func NewKeyMapper(keys config.KeysConfig) (*KeyMapper, error) {
	bindings, err := keys.Bindings()
	if err != nil {
		return nil, err
	}

	km := &KeyMapper{bindings: make(map[Key]core.Action, len(bindings))}
	for name, action := range bindings {
		km.bindings[Key(name)] = action
	}
	return km, nil
}

// Action returns the action bound to k, or ActionNone.
func (km *KeyMapper) Action(k Key) core.Action {
	if a, ok := km.bindings[k]; ok {
		return a
	}
	return core.ActionNone
}
