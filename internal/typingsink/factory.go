package typingsink

import "fmt"

// New returns the Sink named by tool, one of "XDOTOOL", "YDOTOOL", "DOTOOL",
// "DOTOOLC", "WTYPE" or "STDOUT".
func New(tool string) (Sink, error) {
	switch tool {
	case "XDOTOOL":
		return XdotoolSink{}, nil
	case "YDOTOOL":
		return YdotoolSink{}, nil
	case "DOTOOL":
		return NewDotoolSink(), nil
	case "DOTOOLC":
		return NewDotoolcSink(), nil
	case "WTYPE":
		return WtypeSink{}, nil
	case "STDOUT":
		return NewStdoutSink(), nil
	default:
		return nil, fmt.Errorf("typingsink: unknown simulate_input_tool %q", tool)
	}
}
