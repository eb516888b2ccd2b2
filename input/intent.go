package input

// Action is what a bound key asks the scene to do
type Action uint8

const (
	ActionNone Action = iota
	ActionQuit
	ActionPanLeft
	ActionPanRight
	ActionPanUp
	ActionPanDown
	ActionZoomIn
	ActionZoomOut
	ActionUnlock
	ActionConfirm
)
