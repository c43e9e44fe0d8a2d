package core

// Display renders the formatted value of a running clock, stopwatch or countdown
type Display interface {
	Render(text string)
}
