package home

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specialistvlad/cleago/internal/clictx"
	"github.com/specialistvlad/cleago/internal/command"
	"github.com/specialistvlad/cleago/internal/registry"
)

func TestOnRunHome(t *testing.T) {
	out := &bytes.Buffer{}
	call := &command.Call{Context: NewContext(), Stdout: out}

	require.NoError(t, OnRunHome(context.Background(), call))

	assert.Equal(t, "~/.app\n", out.String())
}

func TestOnRunHome_WrongContext(t *testing.T) {
	call := &command.Call{Context: clictx.New(), Stdout: &bytes.Buffer{}}

	err := OnRunHome(context.Background(), call)

	assert.ErrorContains(t, err, "expected *home.Context")
}

func TestContextKeepsStoreBehaviour(t *testing.T) {
	store := NewContext()
	store.Set("k", "v")

	assert.Equal(t, "v", store.Get("k"))
	assert.NotEmpty(t, store.Cwd())
}

func TestRegister(t *testing.T) {
	r := registry.New()
	(&Module{}).Register(r)

	factory, ok := r.Context("home")
	require.True(t, ok)
	assert.IsType(t, &Context{}, factory())
	_, ok = r.Handler("OnRunHome")
	assert.True(t, ok)
}
