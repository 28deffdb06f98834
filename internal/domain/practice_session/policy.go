package practicesession

// Trigger is the event the mode policy decides on.
type Trigger int

const (
	// TriggerSubmitted fires when a fresh outcome has just been recorded.
	TriggerSubmitted Trigger = iota
	// TriggerContinue fires on an explicit Continue/Next action.
	TriggerContinue
	// TriggerRewind fires when navigation re-enters an answered position.
	TriggerRewind
)

// Effect is what the engine does in response to a trigger.
type Effect int

const (
	// EffectNone means the trigger is a no-op in this mode.
	EffectNone Effect = iota
	// EffectAdvanceAfterDelay waits briefly, then advances automatically
	// without showing an explanation.
	EffectAdvanceAfterDelay
	// EffectShowExplanation displays the outcome's explanation and waits
	// for an explicit Continue.
	EffectShowExplanation
	// EffectAdvance moves to the next question immediately.
	EffectAdvance
	// EffectComplete transitions the session to its terminal state.
	EffectComplete
	// EffectShowStored displays the stored outcome for an already answered
	// position; in paced mode the explanation is shown as well.
	EffectShowStored
)

// Decide is the pure decision table mapping (mode, trigger, last question)
// to the engine's next effect.
func Decide(mode Mode, trigger Trigger, lastQuestion bool) Effect {
	switch trigger {
	case TriggerSubmitted:
		if mode == ModePaced {
			return EffectShowExplanation
		}
		if lastQuestion {
			return EffectComplete
		}
		return EffectAdvanceAfterDelay
	case TriggerContinue:
		// Paced sessions continue past the explanation; after a rewind
		// the same action moves forward again in either mode.
		if lastQuestion {
			return EffectComplete
		}
		return EffectAdvance
	case TriggerRewind:
		return EffectShowStored
	}
	return EffectNone
}
