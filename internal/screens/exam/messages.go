package exam

import (
	"github.com/upskill-labs/upskill/internal/session"
)

// examStartedMsg is sent once the controller has started the session.
type examStartedMsg struct {
	Err error
}

// sessionEventMsg carries one controller event into the update loop.
type sessionEventMsg struct {
	Event session.Event
}

// submitDoneMsg is sent when a Submit or RetrySubmit call returns. The
// outcome itself arrives through the controller's Completed/Failed
// events; this message only surfaces call-site rejections.
type submitDoneMsg struct {
	Err error
}
