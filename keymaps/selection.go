package keymaps

// SelectionName is the layer name of the navigation table.
const SelectionName = "selection"

// Selection turns the right-hand cluster into a navigation cluster.
var Selection = mustTable(SelectionName, BelgianAZERTY,
	Entry{Source: "!", Target: Code(KeyHome)},
	Entry{Source: "i", Target: Code(KeyEnd)},
	Entry{Source: "u", Target: Code(KeyDelete)},
	Entry{Source: "ç", Target: Code(KeyPageUp)},
	Entry{Source: "o", Target: Code(KeyPageDown)},
	Entry{Source: ";", Target: Code(KeyDown)},
	Entry{Source: "k", Target: Code(KeyUp)},
	Entry{Source: "j", Target: Code(KeyLeft)},
	Entry{Source: "l", Target: Code(KeyRight)},
)

// RegisterSelectionTable registers the navigation table with the provider
func RegisterSelectionTable(provider *TableProvider) {
	provider.Register(Selection)
}
