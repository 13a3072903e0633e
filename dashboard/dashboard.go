// Package dashboard implements the server-driven UI protocol: overview
// cards, home categories/sections and plugin panels, described by the
// host bot through a set of hooks and filtered per request by scope.
package dashboard

import (
	"context"

	"guildboard/dapi"
	"guildboard/types"
	"guildboard/utils"
)

// Context is the per-request view of the dashboard: the viewer's login
// snapshot plus the guild selected via the guildId query parameter.
// SelectedGuildID is only ever set after the guild passed the
// manageability check.
type Context struct {
	User            *types.DashboardUser
	Guilds          []*types.DashboardGuild
	AccessToken     string
	SelectedGuildID string
	Helpers         *dapi.Helpers
}

// Scope returns the active scope: guild when a guild is selected, user
// otherwise. This is the single branching variable every category,
// section and plugin filter keys on.
func (d *Context) Scope() types.Scope {
	if d.SelectedGuildID != "" {
		return types.ScopeGuild
	}

	return types.ScopeUser
}

func (d *Context) SelectedGuild() *types.DashboardGuild {
	if d.SelectedGuildID == "" {
		return nil
	}

	return utils.FindGuild(d.Guilds, d.SelectedGuildID)
}

type (
	CardsFunc      func(ctx context.Context, d *Context) ([]*types.Card, error)
	CategoriesFunc func(ctx context.Context, d *Context) ([]*types.HomeCategory, error)
	SectionsFunc   func(ctx context.Context, d *Context) ([]*types.HomeSection, error)
	ActionFunc     func(ctx context.Context, d *Context, payload *types.ActionPayload) (*types.ActionResult, error)
	PanelsFunc     func(ctx context.Context, d *Context) ([]*types.PluginPanel, error)

	// GuildFilterFunc lets the host narrow the guild list further, for
	// example to guilds where the bot has finished setup. It runs after
	// the permission filter, never instead of it.
	GuildFilterFunc func(ctx context.Context, d *Context, guild *types.DashboardGuild) (bool, error)
)

// Home is the host's hook set for the home tab. Every member is
// optional; the framework substitutes defaults for missing ones.
type Home struct {
	GetOverviewSections SectionsFunc
	GetCategories       CategoriesFunc
	GetSections         SectionsFunc
	Actions             map[string]ActionFunc
}

// Plugin is a self-contained panel provider. Scope defaults to both.
type Plugin struct {
	ID          string
	Name        string
	Description string
	Scope       types.Scope
	GetPanels   PanelsFunc
	Actions     map[string]ActionFunc
}

// Hooks is everything the host bot supplies to drive the dashboard.
type Hooks struct {
	GetOverviewCards CardsFunc
	Home             Home
	Plugins          []*Plugin
	GuildFilter      GuildFilterFunc
}

// FindPlugin returns the plugin with the given ID, or nil.
func (h *Hooks) FindPlugin(id string) *Plugin {
	for _, p := range h.Plugins {
		if p.ID == id {
			return p
		}
	}

	return nil
}
