package cli

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App     *App
	Session *gameSession

	// Notice is a transient line under the picker, cleared by the next action.
	Notice string

	// Terminal dimensions
	Width  int
	Height int
}

// ContentHeight returns the available height for view content,
// accounting for header (2 lines: title + separator) and
// status bar (3 lines: separator, toast, hints).
func (s *SharedState) ContentHeight() int {
	h := s.Height - 5
	if h < 1 {
		return 1
	}
	return h
}
