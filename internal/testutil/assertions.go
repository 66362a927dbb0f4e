package testutil

import (
	"testing"

	"github.com/udisondev/battlego/internal/game/event"
	"github.com/udisondev/battlego/internal/model"
)

// AssertHPBounds проверяет инвариант 0 ≤ HP ≤ MaxHP.
func AssertHPBounds(t testing.TB, combatants ...*model.Combatant) {
	t.Helper()

	for _, c := range combatants {
		if c.CurrentHP() < 0 || c.CurrentHP() > c.MaxHP() {
			t.Fatalf("%s: hp %d out of bounds [0, %d]", c.Label(), c.CurrentHP(), c.MaxHP())
		}
	}
}

// AssertEventTexts проверяет тексты событий заданного вида по порядку.
func AssertEventTexts(t testing.TB, rec *event.Recorder, kind event.Kind, expected ...string) {
	t.Helper()

	got := rec.OfKind(kind)
	if len(got) != len(expected) {
		t.Fatalf("%s events: expected %d, got %d (%v)", kind, len(expected), len(got), texts(got))
	}
	for i, e := range got {
		if e.Text != expected[i] {
			t.Fatalf("%s event %d: expected %q, got %q", kind, i, expected[i], e.Text)
		}
	}
}

// KindSequence возвращает виды записанных событий по порядку.
func KindSequence(rec *event.Recorder) []event.Kind {
	events := rec.Events()
	out := make([]event.Kind, len(events))
	for i, e := range events {
		out[i] = e.Kind
	}
	return out
}

func texts(events []event.Event) []string {
	out := make([]string, len(events))
	for i, e := range events {
		out[i] = e.Text
	}
	return out
}
