// Package event defines the narration events the battle engine emits to
// controllers, renderers and spectators.
package event

import "sync"

// Kind classifies an event.
type Kind int

const (
	KindRoundStart Kind = iota + 1
	KindAttack
	KindAbility
	KindItem
	KindRejected
	KindFaint
	KindMatchEnd
	KindXP
	KindLevelUp
)

var kindNames = map[Kind]string{
	KindRoundStart: "round_start",
	KindAttack:     "attack",
	KindAbility:    "ability",
	KindItem:       "item",
	KindRejected:   "rejected",
	KindFaint:      "faint",
	KindMatchEnd:   "match_end",
	KindXP:         "xp",
	KindLevelUp:    "level_up",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// MarshalText encodes Kind by name (JSON spectator feed).
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Status is a snapshot of one combatant, attached to round-start and match-end events.
type Status struct {
	Owner string `json:"owner"`
	Name  string `json:"name"`
	HP    int    `json:"hp"`
	MaxHP int    `json:"max_hp"`
	Level int    `json:"level"`
	XP    int    `json:"xp"`
}

// Event is one piece of narration. Values are immutable once emitted.
type Event struct {
	Kind   Kind     `json:"kind"`
	Round  int      `json:"round,omitempty"`
	Actor  string   `json:"actor,omitempty"`
	Text   string   `json:"text"`
	Amount int      `json:"amount,omitempty"`
	Status []Status `json:"status,omitempty"`
}

// Notifier receives events. Implementations must not block for long:
// the engine waits for Notify to return.
type Notifier interface {
	Notify(Event)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(Event)

func (f NotifierFunc) Notify(e Event) { f(e) }

// Discard drops every event.
var Discard Notifier = NotifierFunc(func(Event) {})

// Multi fans an event out to every notifier in order.
type Multi []Notifier

func (m Multi) Notify(e Event) {
	for _, n := range m {
		if n != nil {
			n.Notify(e)
		}
	}
}

// Recorder keeps every event it receives.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *Recorder) Notify(e Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

// Events returns a copy of the recorded events.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// OfKind returns recorded events of kind k.
func (r *Recorder) OfKind(k Kind) []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []Event
	for _, e := range r.events {
		if e.Kind == k {
			out = append(out, e)
		}
	}
	return out
}

// Reset clears the recorder.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}
