package status

import "sync/atomic"

// MaxLabelLen truncates labels so the status line stays on one row
const MaxLabelLen = 24

// Label is an atomic short string
type Label struct {
	ptr atomic.Pointer[string]
}

func (l *Label) Set(v string) {
	if len(v) > MaxLabelLen {
		v = v[:MaxLabelLen]
	}
	l.ptr.Store(&v)
}

func (l *Label) Get() string {
	if p := l.ptr.Load(); p != nil {
		return *p
	}
	return ""
}
