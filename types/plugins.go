package types

// PanelField mirrors SectionField for the plugin panel protocol. Label
// and Value are the only required members; fields default to read-only
// display unless Editable is set.
type PanelField struct {
	ID          string         `json:"id,omitempty"`
	Label       string         `json:"label"`
	Value       any            `json:"value"`
	Type        FieldType      `json:"type,omitempty"`
	Editable    bool           `json:"editable,omitempty"`
	Placeholder string         `json:"placeholder,omitempty"`
	Required    bool           `json:"required,omitempty"`
	Options     []*FieldOption `json:"options,omitempty"`
	Lookup      *LookupConfig  `json:"lookup,omitempty"`
}

type PanelAction struct {
	ID            string `json:"id"`
	Label         string `json:"label"`
	Variant       string `json:"variant,omitempty" description:"One of primary, secondary, danger"`
	CollectFields bool   `json:"collectFields,omitempty"`
}

type PluginPanel struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description,omitempty"`
	Width       int            `json:"width,omitempty"`
	Fields      []*PanelField  `json:"fields,omitempty"`
	Actions     []*PanelAction `json:"actions,omitempty"`
}

// ResolvedPlugin is one plugin's contribution to GET /api/plugins. A
// plugin whose panel resolution failed is still listed, with Error set
// and no panels, so one broken plugin cannot take down the others.
type ResolvedPlugin struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Panels      []*PluginPanel `json:"panels"`
	Error       string         `json:"error,omitempty"`
}

type PluginList struct {
	Plugins []*ResolvedPlugin `json:"plugins"`
}
