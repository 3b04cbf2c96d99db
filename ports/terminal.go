package ports

// TerminalWriter pushes palette escape sequences to terminals
type TerminalWriter interface {
	// Apply writes the sequences to every target and returns how many succeeded
	Apply(sequences string) (int, error)
	// Save persists the sequences so new shells can replay them
	Save(sequences string) error
}
