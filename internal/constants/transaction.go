package constants

const (
	// Listing
	DefaultListLimit = 20
	MaxListLimit     = 100
	RecentLimit      = 20

	// Date Layout
	DateFormat = "2006-01-02"
)

// SelectHeight caps how many rows an interactive select shows at once.
const SelectHeight = 15
