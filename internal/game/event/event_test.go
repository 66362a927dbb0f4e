package event

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMulti_FansOut(t *testing.T) {
	var a, b Recorder
	var calls int
	m := Multi{&a, nil, &b, NotifierFunc(func(Event) { calls++ })}

	m.Notify(Event{Kind: KindAttack, Text: "hit"})

	assert.Len(t, a.Events(), 1)
	assert.Len(t, b.Events(), 1)
	assert.Equal(t, 1, calls)
}

func TestRecorder_OfKind(t *testing.T) {
	var r Recorder
	r.Notify(Event{Kind: KindAttack})
	r.Notify(Event{Kind: KindAbility})
	r.Notify(Event{Kind: KindAttack})

	assert.Len(t, r.OfKind(KindAttack), 2)
	assert.Len(t, r.OfKind(KindLevelUp), 0)

	r.Reset()
	assert.Empty(t, r.Events())
}

func TestEvent_JSONKindByName(t *testing.T) {
	raw, err := json.Marshal(Event{Kind: KindLevelUp, Text: "up", Round: 2})
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"level_up","round":2,"text":"up"}`, string(raw))
}

func TestDiscard(t *testing.T) {
	assert.NotPanics(t, func() { Discard.Notify(Event{Kind: KindFaint}) })
}
