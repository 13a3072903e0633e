package types

// Scope determines which categories/sections/panels are visible
// depending on whether a guild is selected.
type Scope string

const (
	// Always visible regardless of selection
	ScopeSetup Scope = "setup"
	// Visible when no guild is selected
	ScopeUser Scope = "user"
	// Visible when a guild is selected
	ScopeGuild Scope = "guild"
	// Plugins only: visible in both user and guild scope
	ScopeBoth Scope = "both"
)

type FieldType string

const (
	FieldTypeText          FieldType = "text"
	FieldTypeTextarea      FieldType = "textarea"
	FieldTypeNumber        FieldType = "number"
	FieldTypeBoolean       FieldType = "boolean"
	FieldTypeSelect        FieldType = "select"
	FieldTypeStringList    FieldType = "string-list"
	FieldTypeRoleSearch    FieldType = "role-search"
	FieldTypeChannelSearch FieldType = "channel-search"
	FieldTypeMemberSearch  FieldType = "member-search"
	FieldTypeURL           FieldType = "url"
)

// LookupConfig tunes the autocomplete behaviour of *-search fields.
type LookupConfig struct {
	Limit          int   `json:"limit,omitempty"`
	MinQueryLength int   `json:"minQueryLength,omitempty"`
	NSFW           *bool `json:"nsfw,omitempty"`
	ChannelTypes   []int `json:"channelTypes,omitempty"`
	IncludeManaged bool  `json:"includeManaged,omitempty"`
}

type FieldOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type SectionField struct {
	ID          string         `json:"id"`
	Label       string         `json:"label"`
	Type        FieldType      `json:"type"`
	Value       any            `json:"value,omitempty"`
	Placeholder string         `json:"placeholder,omitempty"`
	Required    bool           `json:"required,omitempty"`
	ReadOnly    bool           `json:"readOnly,omitempty"`
	Options     []*FieldOption `json:"options,omitempty"`
	Lookup      *LookupConfig  `json:"lookup,omitempty"`
}

type SectionAction struct {
	ID      string `json:"id"`
	Label   string `json:"label"`
	Variant string `json:"variant,omitempty" description:"One of primary, secondary, danger"`
	// Serialize all fields of the owning section into the POST body
	CollectFields bool `json:"collectFields,omitempty"`
}

type HomeCategory struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Scope       Scope  `json:"scope"`
	Description string `json:"description,omitempty"`
}

// HomeSection is a declarative, server-described configuration panel.
// A section belongs to exactly one category and one scope.
type HomeSection struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description,omitempty"`
	Width       int              `json:"width,omitempty" description:"Percentage width hint: 100, 50, 33 or 20"`
	Scope       Scope            `json:"scope,omitempty"`
	CategoryID  string           `json:"categoryId,omitempty"`
	Fields      []*SectionField  `json:"fields,omitempty"`
	Actions     []*SectionAction `json:"actions,omitempty"`
}

// ActionPayload is the body of POST /api/home/{actionId}. Values may be
// empty but must be present.
type ActionPayload struct {
	SectionID string         `json:"sectionId" validate:"required"`
	Values    map[string]any `json:"values"`
}

type CategoryList struct {
	Categories  []*HomeCategory `json:"categories"`
	ActiveScope Scope           `json:"activeScope"`
}

type SectionList struct {
	Sections    []*HomeSection `json:"sections"`
	ActiveScope Scope          `json:"activeScope"`
}
