package ports

// Contract for persisting a table (header row plus data rows) under a name.
type TableWriter interface {
	WriteTable(name string, table [][]string) error
}
