package domain

// PostState is the lifecycle state of a whole post group. QUEUE and DRAFT
// groups belong to the scheduler; PUBLISHED and ERROR are terminal and only
// ever written by the dispatcher.
type PostState string

const (
	StateQueue     PostState = "QUEUE"
	StateDraft     PostState = "DRAFT"
	StatePublished PostState = "PUBLISHED"
	StateError     PostState = "ERROR"
)

// Valid reports whether s is one of the known lifecycle states.
func (s PostState) Valid() bool {
	switch s {
	case StateQueue, StateDraft, StatePublished, StateError:
		return true
	}
	return false
}

// Editable reports whether content in this state may still be mutated.
// Once any platform interaction may have happened the group is frozen.
func (s PostState) Editable() bool {
	return s == StateQueue || s == StateDraft
}

// Terminal reports whether the state is an end state of the lifecycle.
func (s PostState) Terminal() bool {
	return s == StatePublished || s == StateError
}
