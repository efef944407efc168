package domain

// TopicState is the lock state of a topic. The only transition is
// StateOpen -> StateLocked; nothing moves a topic back.
type TopicState int

const (
	StateOpen TopicState = iota
	StateLocked
)

func (s TopicState) String() string {
	if s == StateLocked {
		return "locked"
	}
	return "open"
}

// State returns the topic's current lock state.
func (t *Topic) State() TopicState {
	if t.Locked {
		return StateLocked
	}
	return StateOpen
}

// Capacity is the per-topic post limit and the transition rules built on it.
type Capacity struct {
	Limit int
}

// Admit decides whether topic t (read under its row lock) may take one more
// post. System posts skip the capacity and lock checks but never land in a
// deleted topic.
//
// A full topic answers ErrCapacityReached even though it is also locked, so
// callers racing for the last slots all see the same Conflict. A topic that
// was locked explicitly while still below the limit answers ErrTopicLocked.
func (c Capacity) Admit(t *Topic, system bool) error {
	if t.IsDeleted() {
		return ErrTopicDeleted
	}
	if system {
		return nil
	}
	if t.PostsCount >= c.Limit {
		return ErrCapacityReached
	}
	if t.Locked {
		return ErrTopicLocked
	}
	return nil
}

// Crossed reports whether a post that brought the live count to postsCount
// is the one that fills the topic. It fires exactly once per topic: after it
// the topic is locked and Admit rejects every further user post.
func (c Capacity) Crossed(postsCount int, system bool) bool {
	return !system && postsCount == c.Limit
}
