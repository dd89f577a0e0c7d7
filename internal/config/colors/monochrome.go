package colors

// Monochrome returns a black and white color scheme
func Monochrome() *ColorScheme {
	return &ColorScheme{
		Preset: "monochrome",

		Accent: "#FFFFFF",

		Create: "#FFFFFF",
		Edit:   "#D0D0D0",
		Delete: "#FFFFFF",

		ListBorder:     "#808080",
		TaskBorder:     "#4E4E4E",
		SelectedBorder: "#FFFFFF",

		Title:  "#FFFFFF",
		Subtle: "#808080",
		Normal: "#D0D0D0",

		InfoFg:  "#D0D0D0",
		ErrorFg: "#FFFFFF",
	}
}
