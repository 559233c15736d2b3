package practice

// questionsLoadedMsg is sent when the controller has loaded and merged
// the topic's questions with saved progress.
type questionsLoadedMsg struct{}

// tickMsg is sent every second to advance the stopwatch. The id ties a
// tick chain to the screen instance that started it, so a tick from a
// torn-down screen can't drive a newer one.
type tickMsg struct {
	id int
}
