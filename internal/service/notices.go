package service

import "sync"

type NoticeLevel string

const (
	NoticeSuccess NoticeLevel = "success"
	NoticeError   NoticeLevel = "error"
	NoticeInfo    NoticeLevel = "info"
)

// Notice is a transient message meant to be shown to the visitor once.
type Notice struct {
	Level   NoticeLevel `json:"level"`
	Message string      `json:"message"`
}

type Notifier interface {
	Notify(n Notice)
}

// NoticeList collects notices raised while handling one request.
type NoticeList struct {
	mu      sync.Mutex
	notices []Notice
}

func (l *NoticeList) Notify(n Notice) {
	if n.Message == "" {
		return
	}
	l.mu.Lock()
	l.notices = append(l.notices, n)
	l.mu.Unlock()
}

func (l *NoticeList) Success(message string) { l.Notify(Notice{Level: NoticeSuccess, Message: message}) }

func (l *NoticeList) Error(message string) { l.Notify(Notice{Level: NoticeError, Message: message}) }

// Items returns a copy of the collected notices, never nil.
func (l *NoticeList) Items() []Notice {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Notice, len(l.notices))
	copy(out, l.notices)
	return out
}

func notify(n Notifier, level NoticeLevel, message string) {
	if n == nil {
		return
	}
	n.Notify(Notice{Level: level, Message: message})
}
