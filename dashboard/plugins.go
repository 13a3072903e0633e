package dashboard

import (
	"context"
	"fmt"

	"guildboard/types"
)

// ResolvePlugins resolves the panels of every plugin matching the
// active scope. A plugin whose GetPanels errors or panics contributes
// an errored entry instead of failing the whole list.
func ResolvePlugins(ctx context.Context, d *Context, h *Hooks) []*types.ResolvedPlugin {
	activeScope := d.Scope()
	out := []*types.ResolvedPlugin{}

	for _, p := range h.Plugins {
		scope := p.Scope

		if scope == "" {
			scope = types.ScopeBoth
		}

		if scope != types.ScopeBoth && scope != activeScope {
			continue
		}

		entry := &types.ResolvedPlugin{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Panels:      []*types.PluginPanel{},
		}

		panels, err := resolvePanels(ctx, d, p)

		if err != nil {
			entry.Error = err.Error()
		} else if panels != nil {
			entry.Panels = panels
		}

		out = append(out, entry)
	}

	return out
}

func resolvePanels(ctx context.Context, d *Context, p *Plugin) (panels []*types.PluginPanel, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			panels = nil
			err = fmt.Errorf("panel resolution panicked: %v", rec)
		}
	}()

	if p.GetPanels == nil {
		return nil, nil
	}

	return p.GetPanels(ctx, d)
}

// Invoke runs a host action handler, converting panics into plain
// errors so a broken handler cannot take the webserver down. A nil
// result with a nil error is normalized to {ok: true}.
func Invoke(ctx context.Context, d *Context, fn ActionFunc, payload *types.ActionPayload) (res *types.ActionResult, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			res = nil
			err = fmt.Errorf("action handler panicked: %v", rec)
		}
	}()

	res, err = fn(ctx, d, payload)

	if err != nil {
		return nil, err
	}

	if res == nil {
		res = &types.ActionResult{Ok: true}
	}

	return res, nil
}
