package dockerls

type Result struct {
	// Rule which excluded the path. Only set if Found is true.
	Rule

	// Found is true if any matching rule was found.
	Found bool
}
