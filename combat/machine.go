// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package combat

// State is the closed enum of combat flow states (spec.md §3 "Combat State
// Machine").
type State string

const (
	NotInCombat     State = "not_in_combat"
	CombatStart     State = "combat_start"
	TurnStart       State = "turn_start"
	PlayerDecision  State = "player_decision"
	AIDecision      State = "ai_decision"
	ActionExecution State = "action_execution"
	ReactionPrompt  State = "reaction_prompt"
	TurnEnd         State = "turn_end"
	RoundEnd        State = "round_end"
	CombatEnd       State = "combat_end"
)

// Substate is the closed enum of orthogonal UI-facing refinements
// (spec.md §3: "not mandatory for core"). Substates have no transition
// table of their own.
type Substate string

const (
	SubstateNone            Substate = "none"
	SubstateTargetSelection Substate = "target_selection"
	SubstateMultiTarget     Substate = "multi_target_picking"
	SubstateAoEPlacement    Substate = "aoe_placement"
	SubstateMovementPreview Substate = "movement_preview"
	SubstateReactionPrompt  Substate = "reaction_prompt"
	SubstateAnimationLock   Substate = "animation_lock"
)

// transitions is the fixed allow-table from spec.md §4.7.
var transitions = map[State][]State{
	NotInCombat:     {CombatStart},
	CombatStart:     {TurnStart},
	TurnStart:       {PlayerDecision, AIDecision},
	PlayerDecision:  {ActionExecution, TurnEnd},
	AIDecision:      {ActionExecution, TurnEnd},
	ActionExecution: {PlayerDecision, AIDecision, ReactionPrompt, TurnEnd},
	ReactionPrompt:  {PlayerDecision, AIDecision, ActionExecution, TurnEnd},
	TurnEnd:         {TurnStart, RoundEnd, CombatEnd},
	RoundEnd:        {TurnStart, CombatEnd},
	CombatEnd:       {NotInCombat},
}

// TransitionRecord is one entry of the machine's history log (spec.md
// §4.7: "Every transition is appended to a history log with (from, to,
// monotonic_index, reason)").
type TransitionRecord struct {
	From   State
	To     State
	Index  int
	Reason string
	Forced bool
}

// SubstateRecord is one entry of the machine's substate history.
type SubstateRecord struct {
	From  Substate
	To    Substate
	Index int
}

// Machine is the combat flow state machine (spec.md §4.7). Its current
// state is a single process-wide scalar within one combat instance
// (spec.md §3 Ownership); only the orchestrator mutates it.
type Machine struct {
	current  State
	substate Substate

	history         []TransitionRecord
	substateHistory []SubstateRecord
	nextIndex       int
	nextSubIndex    int
}

// NewMachine creates a machine starting at NotInCombat.
func NewMachine() *Machine {
	return &Machine{current: NotInCombat, substate: SubstateNone}
}

// Current returns the current state.
func (m *Machine) Current() State { return m.current }

// CurrentSubstate returns the current substate.
func (m *Machine) CurrentSubstate() Substate { return m.substate }

// History returns the transition history, oldest first.
func (m *Machine) History() []TransitionRecord {
	out := make([]TransitionRecord, len(m.history))
	copy(out, m.history)
	return out
}

// SubstateHistory returns the substate history, oldest first.
func (m *Machine) SubstateHistory() []SubstateRecord {
	out := make([]SubstateRecord, len(m.substateHistory))
	copy(out, m.substateHistory)
	return out
}

// Allowed reports the states reachable from the current state.
func (m *Machine) Allowed() []State {
	src := transitions[m.current]
	out := make([]State, len(src))
	copy(out, src)
	return out
}

// TryTransition attempts to move to target. It returns false (and leaves
// the current state unmutated) if target is not in the current state's
// allow-set (spec.md §8.1 P8). On success the state mutates and a history
// entry is appended.
func (m *Machine) TryTransition(target State, reason string) bool {
	if !isAllowed(m.current, target) {
		return false
	}
	m.apply(target, reason, false)
	return true
}

// ForceTransition unconditionally applies the transition regardless of the
// allow-table, for debug tooling or snapshot load (spec.md §4.7
// "force_transition unconditionally applies").
func (m *Machine) ForceTransition(target State, reason string) {
	m.apply(target, reason, true)
}

func (m *Machine) apply(target State, reason string, forced bool) {
	m.history = append(m.history, TransitionRecord{
		From: m.current, To: target, Index: m.nextIndex, Reason: reason, Forced: forced,
	})
	m.nextIndex++
	m.current = target
}

// EnterSubstate records a substate transition; substates have no
// validation (spec.md §3: "UI-facing hints").
func (m *Machine) EnterSubstate(target Substate) {
	m.substateHistory = append(m.substateHistory, SubstateRecord{From: m.substate, To: target, Index: m.nextSubIndex})
	m.nextSubIndex++
	m.substate = target
}

// ExitSubstate returns to SubstateNone.
func (m *Machine) ExitSubstate() {
	m.EnterSubstate(SubstateNone)
}

// Reset clears history and returns to NotInCombat (spec.md §4.7 "reset
// clears history and returns to NotInCombat").
func (m *Machine) Reset() {
	m.current = NotInCombat
	m.substate = SubstateNone
	m.history = nil
	m.substateHistory = nil
	m.nextIndex = 0
	m.nextSubIndex = 0
}

// RestoreState sets the current state and substate directly from a
// snapshot without appending history (snapshot restore is silent, spec.md
// §4.7 "Capture/restore contract").
func (m *Machine) RestoreState(state State, substate Substate, nextIndex, nextSubIndex int) {
	m.current = state
	m.substate = substate
	m.nextIndex = nextIndex
	m.nextSubIndex = nextSubIndex
}

// NextIndex returns the monotonic counter the next transition will be
// stamped with, for snapshot capture (paired with RestoreState).
func (m *Machine) NextIndex() int { return m.nextIndex }

// NextSubIndex returns the monotonic counter the next substate entry will
// be stamped with, for snapshot capture (paired with RestoreState).
func (m *Machine) NextSubIndex() int { return m.nextSubIndex }

func isAllowed(from, to State) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}
