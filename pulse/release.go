package pulse

type Releaser interface {
	Release()
}

// ReleaseGuard releases its delegate unless Keep was called before.
// Use it with defer while building up resources that need to be released
// if a later step fails.
type ReleaseGuard struct {
	delegate Releaser
}

func NewReleaseGuard(delegate Releaser) ReleaseGuard {
	return ReleaseGuard{delegate: delegate}
}

func (r *ReleaseGuard) Keep() {
	r.delegate = nil
}

func (r *ReleaseGuard) Release() {
	if r.delegate != nil {
		r.delegate.Release()
		r.delegate = nil
	}
}
