package clictx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContext_SetGet(t *testing.T) {
	ctx := New()
	ctx.Set("hello", "world")
	ctx.Set("hello", "there")

	assert.Equal(t, "there", ctx.Get("hello"))
	assert.Nil(t, ctx.Get("missing"))
}

func TestContext_GetOr(t *testing.T) {
	ctx := New()
	ctx.Set("present", nil)

	assert.Equal(t, "fallback", ctx.GetOr("absent", "fallback"))
	assert.Nil(t, ctx.GetOr("present", "fallback"), "stored nil must win over the default")
}

func TestContext_Cwd(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, wd, New().Cwd())
}

type appContext struct {
	*Context
}

func (a *appContext) Home() string { return "~/.app" }

func TestContext_EmbeddingSatisfiesStore(t *testing.T) {
	var s Store = &appContext{Context: New()}
	s.Set("k", 1)

	assert.Equal(t, 1, s.Get("k"))
	assert.Equal(t, "~/.app", s.(*appContext).Home())
}
