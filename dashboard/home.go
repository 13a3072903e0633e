package dashboard

import (
	"context"
	"sort"

	"guildboard/types"
	"guildboard/utils"
)

// OverviewCards resolves the overview cards, falling back to three
// built-in cards (viewer identity, manageable guild count, plugin
// count) when the host supplies no hook.
func OverviewCards(ctx context.Context, d *Context, h *Hooks) ([]*types.Card, error) {
	if h.GetOverviewCards != nil {
		return h.GetOverviewCards(ctx, d)
	}

	return []*types.Card{
		{
			ID:       "user",
			Title:    "Logged-in User",
			Value:    d.User.DisplayName(),
			Subtitle: "ID: " + d.User.ID,
			Intent:   types.CardIntentInfo,
		},
		{
			ID:       "guilds",
			Title:    "Manageable Guilds",
			Value:    len(utils.ManageableGuilds(d.Guilds)),
			Subtitle: "Owner or Manage Server permissions",
			Intent:   types.CardIntentSuccess,
		},
		{
			ID:       "plugins",
			Title:    "Plugins Loaded",
			Value:    len(h.Plugins),
			Subtitle: "Dynamic server modules",
			Intent:   types.CardIntentNeutral,
		},
	}, nil
}

// Categories resolves the home categories. Host categories are sorted
// with overview first; the default set is overview plus setup.
func Categories(ctx context.Context, d *Context, h *Hooks) ([]*types.HomeCategory, error) {
	if h.Home.GetCategories != nil {
		cats, err := h.Home.GetCategories(ctx, d)

		if err != nil {
			return nil, err
		}

		sorted := make([]*types.HomeCategory, len(cats))
		copy(sorted, cats)

		sort.SliceStable(sorted, func(i, j int) bool {
			if sorted[i].ID == "overview" {
				return sorted[j].ID != "overview"
			}

			return false
		})

		return sorted, nil
	}

	return []*types.HomeCategory{
		{ID: "overview", Label: "Overview", Scope: d.Scope()},
		{ID: "setup", Label: "Setup", Scope: types.ScopeSetup},
	}, nil
}

// FilterCategories keeps setup categories and those matching the active
// scope.
func FilterCategories(cats []*types.HomeCategory, activeScope types.Scope) []*types.HomeCategory {
	out := []*types.HomeCategory{}

	for _, c := range cats {
		if c.Scope == types.ScopeSetup || c.Scope == activeScope {
			out = append(out, c)
		}
	}

	return out
}

// Sections resolves the home sections. Host-supplied overview sections
// are normalized into the overview category and listed before the
// regular sections. When the host supplies neither hook the default
// setup and context sections are returned instead.
func Sections(ctx context.Context, d *Context, h *Hooks, dashboardName, basePath string) ([]*types.HomeSection, error) {
	var custom, overview []*types.HomeSection

	if h.Home.GetSections != nil {
		var err error

		custom, err = h.Home.GetSections(ctx, d)

		if err != nil {
			return nil, err
		}
	}

	if h.Home.GetOverviewSections != nil {
		var err error

		overview, err = h.Home.GetOverviewSections(ctx, d)

		if err != nil {
			return nil, err
		}
	}

	if len(custom) > 0 || len(overview) > 0 {
		out := make([]*types.HomeSection, 0, len(overview)+len(custom))

		for _, s := range overview {
			if s.CategoryID == "" {
				cp := *s
				cp.CategoryID = "overview"
				out = append(out, &cp)
				continue
			}

			out = append(out, s)
		}

		return append(out, custom...), nil
	}

	return defaultSections(d, dashboardName, basePath), nil
}

func defaultSections(d *Context, dashboardName, basePath string) []*types.HomeSection {
	selected := d.SelectedGuild()

	contextDescription := "Managing user dashboard"
	mode := "User"
	target := d.User.Username

	if selected != nil {
		contextDescription = "Managing " + selected.Name
		mode = "Guild"
		target = selected.Name
	}

	return []*types.HomeSection{
		{
			ID:          "setup",
			Title:       "Setup Details",
			Description: "Core dashboard setup information",
			Scope:       types.ScopeSetup,
			CategoryID:  "setup",
			Fields: []*types.SectionField{
				{ID: "dashboardName", Label: "Dashboard Name", Type: types.FieldTypeText, Value: dashboardName, ReadOnly: true},
				{ID: "basePath", Label: "Base Path", Type: types.FieldTypeText, Value: basePath, ReadOnly: true},
			},
		},
		{
			ID:          "context",
			Title:       "Dashboard Context",
			Description: contextDescription,
			Scope:       d.Scope(),
			CategoryID:  "overview",
			Fields: []*types.SectionField{
				{ID: "mode", Label: "Mode", Type: types.FieldTypeText, Value: mode, ReadOnly: true},
				{ID: "target", Label: "Target", Type: types.FieldTypeText, Value: target, ReadOnly: true},
			},
		},
	}
}

// FilterSections keeps setup sections and those matching the active
// scope, then narrows to one category when categoryID is given. A
// section without an explicit scope inherits the active one.
func FilterSections(sections []*types.HomeSection, activeScope types.Scope, categoryID string) []*types.HomeSection {
	out := []*types.HomeSection{}

	for _, s := range sections {
		scope := s.Scope

		if scope == "" {
			scope = activeScope
		}

		if scope != types.ScopeSetup && scope != activeScope {
			continue
		}

		if categoryID != "" && s.CategoryID != categoryID {
			continue
		}

		out = append(out, s)
	}

	return out
}
