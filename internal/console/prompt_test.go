package console

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/battlego/internal/testutil"
)

func TestPrompter_Choose(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("abc\n0\n8\n 3 \n"), &out)

	idx, err := p.Choose(context.Background(), "Enter number: ", 7)
	require.NoError(t, err)

	assert.Equal(t, 2, idx)
	assert.Equal(t, 1, strings.Count(out.String(), "Please enter number of choice."))
	assert.Equal(t, 2, strings.Count(out.String(), "Invalid choice index."))
	assert.Equal(t, 4, strings.Count(out.String(), "Enter number: "))
}

func TestPrompter_AskDefault(t *testing.T) {
	p := NewPrompter(strings.NewReader("\n  Misty  \n"), &bytes.Buffer{})
	ctx := context.Background()

	name, err := p.AskDefault(ctx, "name: ", "Player1")
	require.NoError(t, err)
	assert.Equal(t, "Player1", name)

	name, err = p.AskDefault(ctx, "name: ", "Player2")
	require.NoError(t, err)
	assert.Equal(t, "Misty", name)
}

func TestPrompter_ClosedInput(t *testing.T) {
	p := NewPrompter(strings.NewReader("1\n"), &bytes.Buffer{})
	ctx := context.Background()

	_, err := p.Ask(ctx, "> ")
	require.NoError(t, err)

	_, err = p.Ask(ctx, "> ")
	assert.ErrorIs(t, err, ErrNoInput)
}

func TestPrompter_Canceled(t *testing.T) {
	r, w := io.Pipe()
	t.Cleanup(func() { w.Close() })
	p := NewPrompter(r, &bytes.Buffer{})

	_, err := p.Ask(testutil.CanceledContext(t), "> ")
	assert.ErrorIs(t, err, context.Canceled)
}
