package logic

// Viewport tracks which window of rows is on screen
type Viewport struct {
	offset int
	height int
	total  int
}

// NewViewport creates a viewport showing height rows
func NewViewport(height int) *Viewport {
	v := &Viewport{}
	v.SetHeight(height)
	return v
}

// Offset returns the first visible row
func (v *Viewport) Offset() int {
	return v.offset
}

// Height returns the number of visible rows
func (v *Viewport) Height() int {
	return v.height
}

// SetHeight changes the number of visible rows
func (v *Viewport) SetHeight(height int) {
	if height < 1 {
		height = 1
	}
	v.height = height
	v.clamp()
}

// SetTotal updates the number of rows in the list
func (v *Viewport) SetTotal(total int) {
	if total < 0 {
		total = 0
	}
	v.total = total
	v.clamp()
}

// Window returns the half-open range of visible rows
func (v *Viewport) Window() (start, end int) {
	end = v.offset + v.height
	if end > v.total {
		end = v.total
	}
	return v.offset, end
}

// RowAt maps a line inside the viewport to a row index, or -1
func (v *Viewport) RowAt(line int) int {
	if line < 0 || line >= v.height {
		return -1
	}
	row := v.offset + line
	if row >= v.total {
		return -1
	}
	return row
}

// EnsureVisible scrolls so that index is on screen. Negative indices are ignored.
func (v *Viewport) EnsureVisible(index int) {
	if index < 0 || index >= v.total {
		v.clamp()
		return
	}

	// If the row is above the viewport, scroll up
	if index < v.offset {
		v.offset = index
	}

	// If the row is below the viewport, scroll down
	if index >= v.offset+v.height {
		v.offset = index - v.height + 1
	}

	v.clamp()
}

// clamp keeps the viewport filled whenever there are enough rows
func (v *Viewport) clamp() {
	maxOffset := v.total - v.height
	if maxOffset < 0 {
		maxOffset = 0
	}
	if v.offset > maxOffset {
		v.offset = maxOffset
	}
	if v.offset < 0 {
		v.offset = 0
	}
}
