package typingsink

// YdotoolSink types through ydotool. It needs no setup or teardown.
//
// ydotool's key subcommand works with integer key IDs and key states: 14 is
// the Linux keycode for backspace, and :1/:0 stand for pressed/released.
type YdotoolSink struct{}

func (YdotoolSink) Setup() error    { return nil }
func (YdotoolSink) Teardown() error { return nil }

func (YdotoolSink) Deliver(deletePrevChars int, text string) error {
	if deletePrevChars > 0 {
		pair := []string{"14:1", "14:0"}
		args := []string{"ydotool", "key", "--key-delay", "3", "--"}
		for i := 0; i < deletePrevChars; i++ {
			args = append(args, pair...)
		}
		if err := runOrError(args...); err != nil {
			return err
		}
	}
	return runOrError("ydotool", "type", "--next-delay", "5", "--", text)
}
