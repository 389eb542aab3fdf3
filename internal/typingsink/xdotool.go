package typingsink

// XdotoolSink types through xdotool. It needs no setup or teardown.
type XdotoolSink struct{}

func (XdotoolSink) Setup() error    { return nil }
func (XdotoolSink) Teardown() error { return nil }

func (XdotoolSink) Deliver(deletePrevChars int, text string) error {
	if deletePrevChars > 0 {
		args := append([]string{"xdotool", "key", "--"}, repeat("BackSpace", deletePrevChars)...)
		if err := runOrError(args...); err != nil {
			return err
		}
	}
	return runOrError("xdotool", "type", "--clearmodifiers", "--", text)
}
