package types

// Focus actions
type FocusPreviousAction struct{}

func (a FocusPreviousAction) Type() string { return "focus_previous" }

type FocusNextAction struct{}

func (a FocusNextAction) Type() string { return "focus_next" }

type FocusIndexAction struct {
	Index int
}

func (a FocusIndexAction) Type() string { return "focus_index" }

// Selection actions
type ToggleAction struct {
	Index      int
	Contiguous bool // extend or shrink from the anchor
}

func (a ToggleAction) Type() string { return "toggle" }

type ClearAction struct{}

func (a ClearAction) Type() string { return "clear" }

// AcceptAction confirms the current selection
type AcceptAction struct{}

func (a AcceptAction) Type() string { return "accept" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
	Data interface{} // Optional data for the mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct{}

func (a CancelTextAction) Type() string { return "cancel_text" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
