package glimpse

//go:generate go tool stringer -type=Key -trimprefix=Key -output=key_string.go

// Key identifies a keyboard key independent of the windowing backend.
type Key uint8

const (
	KeyUnknown Key = iota
	KeyEscape
	KeyEnter
	KeySpace
	KeyTab
	KeyBackspace
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyQ
)

// RequestsShutdown reports whether the event asks the application to quit.
func (ev Event) RequestsShutdown() bool {
	switch ev.Kind {
	case EventClose:
		return true
	case EventKey:
		return ev.Key == KeyEscape && ev.Action != Release
	default:
		return false
	}
}
