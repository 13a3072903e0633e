package dashboard

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"guildboard/types"
)

func TestResolvePluginsScopes(t *testing.T) {
	h := &Hooks{Plugins: []*Plugin{
		{ID: "everywhere", Name: "Everywhere"},
		{ID: "explicit-both", Name: "Both", Scope: types.ScopeBoth},
		{ID: "guild-only", Name: "Guild", Scope: types.ScopeGuild},
		{ID: "user-only", Name: "User", Scope: types.ScopeUser},
	}}

	user := ResolvePlugins(context.Background(), testCtx(""), h)
	require.Len(t, user, 3)
	assert.Equal(t, "everywhere", user[0].ID)
	assert.Equal(t, "explicit-both", user[1].ID)
	assert.Equal(t, "user-only", user[2].ID)

	guild := ResolvePlugins(context.Background(), testCtx("100"), h)
	require.Len(t, guild, 3)
	assert.Equal(t, "guild-only", guild[2].ID)
}

func TestResolvePluginsIsolation(t *testing.T) {
	h := &Hooks{Plugins: []*Plugin{
		{
			ID:   "broken",
			Name: "Broken",
			GetPanels: func(ctx context.Context, d *Context) ([]*types.PluginPanel, error) {
				return nil, errors.New("backend unavailable")
			},
		},
		{
			ID:   "panicky",
			Name: "Panicky",
			GetPanels: func(ctx context.Context, d *Context) ([]*types.PluginPanel, error) {
				panic("nil map write")
			},
		},
		{
			ID:   "healthy",
			Name: "Healthy",
			GetPanels: func(ctx context.Context, d *Context) ([]*types.PluginPanel, error) {
				return []*types.PluginPanel{{ID: "p", Title: "Panel"}}, nil
			},
		},
	}}

	out := ResolvePlugins(context.Background(), testCtx(""), h)
	require.Len(t, out, 3)

	assert.Equal(t, "backend unavailable", out[0].Error)
	assert.Empty(t, out[0].Panels)

	assert.Contains(t, out[1].Error, "nil map write")
	assert.Empty(t, out[1].Panels)

	assert.Empty(t, out[2].Error)
	require.Len(t, out[2].Panels, 1)
	assert.Equal(t, "Panel", out[2].Panels[0].Title)
}

func TestInvoke(t *testing.T) {
	payload := &types.ActionPayload{SectionID: "s", Values: map[string]any{}}

	res, err := Invoke(context.Background(), testCtx(""), func(ctx context.Context, d *Context, p *types.ActionPayload) (*types.ActionResult, error) {
		return &types.ActionResult{Ok: true, Message: "saved", Refresh: true}, nil
	}, payload)
	require.NoError(t, err)
	assert.True(t, res.Ok)
	assert.True(t, res.Refresh)

	// nil result normalizes to ok
	res, err = Invoke(context.Background(), testCtx(""), func(ctx context.Context, d *Context, p *types.ActionPayload) (*types.ActionResult, error) {
		return nil, nil
	}, payload)
	require.NoError(t, err)
	assert.True(t, res.Ok)

	_, err = Invoke(context.Background(), testCtx(""), func(ctx context.Context, d *Context, p *types.ActionPayload) (*types.ActionResult, error) {
		return nil, errors.New("boom")
	}, payload)
	require.EqualError(t, err, "boom")

	_, err = Invoke(context.Background(), testCtx(""), func(ctx context.Context, d *Context, p *types.ActionPayload) (*types.ActionResult, error) {
		panic("index out of range")
	}, payload)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "index out of range")
}

func TestFindPlugin(t *testing.T) {
	h := &Hooks{Plugins: []*Plugin{{ID: "a"}, {ID: "b"}}}

	require.NotNil(t, h.FindPlugin("b"))
	assert.Nil(t, h.FindPlugin("c"))
}
