package glimpse

import (
	"fmt"
	"log/slog"
)

//go:generate go tool stringer -type=EventKind,Action -trimprefix=Event -output=event_string.go

type EventKind uint8

const (
	EventResize EventKind = iota + 1
	EventKey
	EventClose
	EventError
)

type Action uint8

const (
	Press Action = iota
	Release
	Repeat
)

// Event is a single window event. Only the fields matching Kind are set.
type Event struct {
	Kind EventKind

	// EventResize: the new framebuffer size
	Width  int
	Height int

	// EventKey
	Key      Key
	Scancode int
	Action   Action

	// EventError
	Err error
}

func ResizeEvent(width, height int) Event {
	return Event{Kind: EventResize, Width: width, Height: height}
}

func KeyEvent(key Key, scancode int, action Action) Event {
	return Event{Kind: EventKey, Key: key, Scancode: scancode, Action: action}
}

func CloseEvent() Event {
	return Event{Kind: EventClose}
}

func ErrorEvent(err error) Event {
	return Event{Kind: EventError, Err: err}
}

func (ev Event) String() string {
	switch ev.Kind {
	case EventResize:
		return fmt.Sprintf("Resize(%dx%d)", ev.Width, ev.Height)
	case EventKey:
		return fmt.Sprintf("Key(%s, scancode=%d, %s)", ev.Key, ev.Scancode, ev.Action)
	case EventError:
		return fmt.Sprintf("Error(%s)", ev.Err)
	default:
		return ev.Kind.String()
	}
}

// LogValue implements slog.LogValuer
func (ev Event) LogValue() slog.Value {
	attrs := []slog.Attr{slog.String("kind", ev.Kind.String())}

	switch ev.Kind {
	case EventResize:
		attrs = append(attrs, slog.Int("width", ev.Width), slog.Int("height", ev.Height))
	case EventKey:
		attrs = append(attrs,
			slog.String("key", ev.Key.String()),
			slog.Int("scancode", ev.Scancode),
			slog.String("action", ev.Action.String()),
		)
	case EventError:
		attrs = append(attrs, slog.Any("err", ev.Err))
	}

	return slog.GroupValue(attrs...)
}
