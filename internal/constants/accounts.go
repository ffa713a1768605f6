package constants

const (
	MaxNameLen        = 100
	MaxDescriptionLen = 255
)

const (
	OpeningBalanceDescription = "Opening balance"
)

// Swatches is the palette a box color must be picked from.
var Swatches = []Swatch{
	{Label: "Neutral", Hex: "#1e1e2e"},
	{Label: "Primary", Hex: "#7c3aed"},
	{Label: "Secondary", Hex: "#2dd4bf"},
	{Label: "Accent", Hex: "#f471b5"},
	{Label: "Success", Hex: "#36d399"},
	{Label: "Warning", Hex: "#fbbd23"},
	{Label: "Error", Hex: "#f87272"},
	{Label: "Info", Hex: "#3abff8"},
}

type Swatch struct {
	Label string
	Hex   string
}
