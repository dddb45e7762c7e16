package attack

// NoticeKind says how a notice should be shown
type NoticeKind string

const (
	// NoticeInfo is guidance for the acting player only
	NoticeInfo NoticeKind = "info"
	// NoticeError explains why an action stopped, for the acting player only
	NoticeError NoticeKind = "error"
	// NoticeResult is shown to the whole table
	NoticeResult NoticeKind = "result"
)

// Notice is a message for a player or the table
type Notice struct {
	Kind      NoticeKind
	UserID    string
	ChannelID string
	// AttemptID is set while an attack is waiting and can still be cancelled
	AttemptID string
	Message   string
}
