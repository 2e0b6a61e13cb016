package keymaps

// NumericName is the layer name of the digit table.
const NumericName = "numeric"

// Numeric turns the right-hand cluster into a numpad. Digits sit on the
// shifted number row of an AZERTY keyboard.
var Numeric = mustTable(NumericName, BelgianAZERTY,
	Entry{Source: "space", Target: Combo("shift+à")}, // 0
	Entry{Source: ",", Target: Combo("shift+&")},     // 1
	Entry{Source: ";", Target: Combo("shift+é")},     // 2
	Entry{Source: ":", Target: Combo("shift+\"")},    // 3
	Entry{Source: "j", Target: Combo("shift+'")},     // 4
	Entry{Source: "k", Target: Combo("shift+(")},     // 5
	Entry{Source: "l", Target: Combo("shift+§")},     // 6
	Entry{Source: "u", Target: Combo("shift+è")},     // 7
	Entry{Source: "i", Target: Combo("shift+!")},     // 8
	Entry{Source: "o", Target: Combo("shift+ç")},     // 9
)

// RegisterNumericTable registers the digit table with the provider
func RegisterNumericTable(provider *TableProvider) {
	provider.Register(Numeric)
}
