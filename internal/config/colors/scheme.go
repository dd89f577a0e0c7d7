package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name ("default" or "monochrome")
	Preset string `yaml:"preset" toml:"preset"`

	// Primary accent color (used for selections, titles, highlights)
	Accent string `yaml:"accent" toml:"accent"`

	// Semantic colors
	Create string `yaml:"create" toml:"create"` // prompts that create
	Edit   string `yaml:"edit" toml:"edit"`     // prompts that rename or edit
	Delete string `yaml:"delete" toml:"delete"` // delete confirmations

	// UI element colors
	ListBorder     string `yaml:"list_border" toml:"list_border"`
	TaskBorder     string `yaml:"task_border" toml:"task_border"`
	SelectedBorder string `yaml:"selected_border" toml:"selected_border"`

	// Text colors
	Title  string `yaml:"title" toml:"title"`
	Subtle string `yaml:"subtle" toml:"subtle"`
	Normal string `yaml:"normal" toml:"normal"`

	// Notification colors
	InfoFg  string `yaml:"info_fg" toml:"info_fg"`
	ErrorFg string `yaml:"error_fg" toml:"error_fg"`
}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	default:
		return Default()
	}
}

// ApplyDefaults fills in missing color values using the preset as base
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)
	if c.Preset == "" {
		c.Preset = preset.Preset
	}

	fields := []struct {
		dst *string
		def string
	}{
		{&c.Accent, preset.Accent},
		{&c.Create, preset.Create},
		{&c.Edit, preset.Edit},
		{&c.Delete, preset.Delete},
		{&c.ListBorder, preset.ListBorder},
		{&c.TaskBorder, preset.TaskBorder},
		{&c.SelectedBorder, preset.SelectedBorder},
		{&c.Title, preset.Title},
		{&c.Subtle, preset.Subtle},
		{&c.Normal, preset.Normal},
		{&c.InfoFg, preset.InfoFg},
		{&c.ErrorFg, preset.ErrorFg},
	}
	for _, f := range fields {
		if *f.dst == "" {
			*f.dst = f.def
		}
	}
}

// MergeFrom overrides c with every non-empty value of other
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	pairs := []struct {
		dst *string
		src string
	}{
		{&c.Accent, other.Accent},
		{&c.Create, other.Create},
		{&c.Edit, other.Edit},
		{&c.Delete, other.Delete},
		{&c.ListBorder, other.ListBorder},
		{&c.TaskBorder, other.TaskBorder},
		{&c.SelectedBorder, other.SelectedBorder},
		{&c.Title, other.Title},
		{&c.Subtle, other.Subtle},
		{&c.Normal, other.Normal},
		{&c.InfoFg, other.InfoFg},
		{&c.ErrorFg, other.ErrorFg},
	}
	for _, p := range pairs {
		if p.src != "" {
			*p.dst = p.src
		}
	}
}
