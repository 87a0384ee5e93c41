package picklist

// Palette carries the widget's five color knobs as CSS color strings.
// Fill and Border style the panels; ButtonFill and ButtonBorder style the
// toggle button; Text colors all widget text. There are no other visual
// parameters: everything else is fixed by the base stylesheet.
type Palette struct {
	Fill         string
	Border       string
	ButtonFill   string
	ButtonBorder string
	Text         string
}

// DefaultPalette returns the stock look: white backgrounds, light gray
// borders, black text.
func DefaultPalette() Palette {
	return Palette{
		Fill:         "#ffffff",
		Border:       "#d0d0d0",
		ButtonFill:   "#ffffff",
		ButtonBorder: "#d0d0d0",
		Text:         "#000000",
	}
}
