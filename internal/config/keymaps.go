package config

// KeyMappings defines all configurable key bindings of the terminal client
type KeyMappings struct {
	// Creation and editing
	NewBoard string `yaml:"new_board" toml:"new_board"`
	NewList  string `yaml:"new_list" toml:"new_list"`
	AddTask  string `yaml:"add_task" toml:"add_task"`
	Edit     string `yaml:"edit" toml:"edit"`
	Delete   string `yaml:"delete" toml:"delete"`
	Confirm  string `yaml:"confirm" toml:"confirm"`

	// Ordering
	MoveListLeft     string `yaml:"move_list_left" toml:"move_list_left"`
	MoveListRight    string `yaml:"move_list_right" toml:"move_list_right"`
	MoveTaskUp       string `yaml:"move_task_up" toml:"move_task_up"`
	MoveTaskDown     string `yaml:"move_task_down" toml:"move_task_down"`
	MoveTaskPrevList string `yaml:"move_task_prev_list" toml:"move_task_prev_list"`
	MoveTaskNextList string `yaml:"move_task_next_list" toml:"move_task_next_list"`

	// Navigation
	PrevList   string `yaml:"prev_list" toml:"prev_list"`
	NextList   string `yaml:"next_list" toml:"next_list"`
	PrevItem   string `yaml:"prev_item" toml:"prev_item"`
	NextItem   string `yaml:"next_item" toml:"next_item"`
	SwitchPane string `yaml:"switch_pane" toml:"switch_pane"`

	// Other
	Refresh string `yaml:"refresh" toml:"refresh"`
	Quit    string `yaml:"quit" toml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		NewBoard: "b",
		NewList:  "n",
		AddTask:  "a",
		Edit:     "e",
		Delete:   "d",
		Confirm:  "y",

		MoveListLeft:     "H",
		MoveListRight:    "L",
		MoveTaskUp:       "K",
		MoveTaskDown:     "J",
		MoveTaskPrevList: "<",
		MoveTaskNextList: ">",

		PrevList:   "h",
		NextList:   "l",
		PrevItem:   "k",
		NextItem:   "j",
		SwitchPane: "tab",

		Refresh: "r",
		Quit:    "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	d := DefaultKeyMappings()
	fields := []struct {
		dst *string
		def string
	}{
		{&k.NewBoard, d.NewBoard},
		{&k.NewList, d.NewList},
		{&k.AddTask, d.AddTask},
		{&k.Edit, d.Edit},
		{&k.Delete, d.Delete},
		{&k.Confirm, d.Confirm},
		{&k.MoveListLeft, d.MoveListLeft},
		{&k.MoveListRight, d.MoveListRight},
		{&k.MoveTaskUp, d.MoveTaskUp},
		{&k.MoveTaskDown, d.MoveTaskDown},
		{&k.MoveTaskPrevList, d.MoveTaskPrevList},
		{&k.MoveTaskNextList, d.MoveTaskNextList},
		{&k.PrevList, d.PrevList},
		{&k.NextList, d.NextList},
		{&k.PrevItem, d.PrevItem},
		{&k.NextItem, d.NextItem},
		{&k.SwitchPane, d.SwitchPane},
		{&k.Refresh, d.Refresh},
		{&k.Quit, d.Quit},
	}
	for _, f := range fields {
		if *f.dst == "" {
			*f.dst = f.def
		}
	}
}
