package state

// SelectedEntry returns the highlighted entry or nil when nothing matches.
func (s *AppState) SelectedEntry() *FileEntry {
	if s.SelectedIndex < 0 || s.SelectedIndex >= len(s.Displayed) {
		return nil
	}
	entry := s.Displayed[s.SelectedIndex]
	return &entry
}

// ListRows returns how many list rows fit between the header and the footer.
func (s *AppState) ListRows() int {
	rows := s.ScreenHeight - ListStartRow - FooterRows
	if rows < 0 {
		return 0
	}
	return rows
}

// updateScrollVisibility keeps the selection inside the visible list rows.
func (s *AppState) updateScrollVisibility() {
	visibleLines := s.ListRows()
	if visibleLines < 1 {
		visibleLines = 1
	}

	if s.SelectedIndex < 0 {
		s.ScrollOffset = 0
		return
	}

	if s.SelectedIndex < s.ScrollOffset {
		s.ScrollOffset = s.SelectedIndex
	} else if s.SelectedIndex >= s.ScrollOffset+visibleLines {
		s.ScrollOffset = s.SelectedIndex - visibleLines + 1
	}

	maxOffset := len(s.Displayed) - visibleLines
	if maxOffset < 0 {
		maxOffset = 0
	}
	if s.ScrollOffset < 0 {
		s.ScrollOffset = 0
	}
	if s.ScrollOffset > maxOffset {
		s.ScrollOffset = maxOffset
	}
}
