package controller

// Message types.
type gameMsg struct {
	title string
	moves int
}

type solutionMsg struct {
	key   string
	trace string
}

type resultMsg struct {
	solutions []solutionMsg
	summary   string
}

type closeMsg struct{}
