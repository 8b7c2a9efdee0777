package fsm

import (
	"fmt"
	"sort"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/zenith/event"
)

// LoadConfig parses a TOML document and replaces the machine graph
// All referenced states, guards, actions and events must resolve
func (m *Machine[T]) LoadConfig(data string) error {
	var config RootConfig
	if _, err := toml.Decode(data, &config); err != nil {
		return fmt.Errorf("failed to decode FSM config: %w", err)
	}
	if config.States == nil {
		config.States = make(map[string]*StateConfig)
	}

	m.nodes = make(map[StateID]*Node[T])
	m.nameToID = make(map[string]StateID)
	m.activeStateID = StateNone
	m.activePath = m.activePath[:0]

	m.AddState(StateRoot, "Root", StateNone)
	if _, ok := config.States["Root"]; !ok {
		config.States["Root"] = &StateConfig{}
	}

	// Sorted names give deterministic IDs
	names := make([]string, 0, len(config.States))
	for name := range config.States {
		if name != "Root" {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	ids := map[string]StateID{"Root": StateRoot}
	for i, name := range names {
		ids[name] = StateID(i + 2)
	}

	for _, name := range names {
		parent := config.States[name].Parent
		if parent == "" {
			parent = "Root"
		}
		parentID, ok := ids[parent]
		if !ok {
			return fmt.Errorf("state '%s' references unknown parent '%s'", name, parent)
		}
		m.AddState(ids[name], name, parentID)
	}

	for name, cfg := range config.States {
		node := m.nodes[ids[name]]

		var err error
		if node.OnEnter, err = m.compileActions(cfg.OnEnter); err != nil {
			return fmt.Errorf("state '%s' on_enter: %w", name, err)
		}
		if node.OnUpdate, err = m.compileActions(cfg.OnUpdate); err != nil {
			return fmt.Errorf("state '%s' on_update: %w", name, err)
		}
		if node.OnExit, err = m.compileActions(cfg.OnExit); err != nil {
			return fmt.Errorf("state '%s' on_exit: %w", name, err)
		}

		for _, tc := range cfg.Transitions {
			target, ok := ids[tc.Target]
			if !ok {
				return fmt.Errorf("state '%s' transition targets unknown state '%s'", name, tc.Target)
			}
			et, ok := event.GetEventType(tc.Trigger)
			if !ok {
				return fmt.Errorf("state '%s' transition uses unknown trigger '%s'", name, tc.Trigger)
			}
			var guard GuardFunc[T]
			if tc.Guard != "" {
				if guard, ok = m.guardReg[tc.Guard]; !ok {
					return fmt.Errorf("state '%s' transition uses unregistered guard '%s'", name, tc.Guard)
				}
			}
			node.Transitions = append(node.Transitions, Transition[T]{TargetID: target, Event: et, Guard: guard})
		}
	}

	if err := m.CompilePaths(); err != nil {
		return err
	}

	initial, ok := ids[config.InitialState]
	if !ok || initial == StateRoot {
		return fmt.Errorf("initial state '%s' not found", config.InitialState)
	}
	m.InitialStateID = initial
	return nil
}

func (m *Machine[T]) compileActions(cfgs []ActionConfig) ([]Action[T], error) {
	actions := make([]Action[T], 0, len(cfgs))
	for _, ac := range cfgs {
		fn, ok := m.actionReg[ac.Action]
		if !ok {
			return nil, fmt.Errorf("unregistered action '%s'", ac.Action)
		}
		actions = append(actions, Action[T]{Func: fn, Args: ac.Arg})
	}
	return actions, nil
}
