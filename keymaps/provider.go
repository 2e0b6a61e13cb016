package keymaps

// TableProvider looks up remap tables by layer name
type TableProvider struct {
	tables map[string]*Table
}

// NewTableProvider creates an empty provider
func NewTableProvider() *TableProvider {
	return &TableProvider{
		tables: map[string]*Table{},
	}
}

// CreateDefaultTableProvider creates and returns a provider with all built-in tables
func CreateDefaultTableProvider() *TableProvider {
	provider := NewTableProvider()

	// Register all available tables
	RegisterSelectionTable(provider)
	RegisterNumericTable(provider)

	return provider
}

// Table returns the table registered for a layer name
func (p *TableProvider) Table(name string) (*Table, bool) {
	t, ok := p.tables[name]
	return t, ok
}

// Register adds or replaces a table under its own name
func (p *TableProvider) Register(t *Table) {
	p.tables[t.Name()] = t
}
