package models

// FlashKind classifies a one-time notification shown to the user.
type FlashKind string

const (
	FlashSuccess FlashKind = "success"
	FlashError   FlashKind = "error"
	FlashInfo    FlashKind = "info"
)

// Flash is a message scoped to a single request/redirect cycle.
// It is discarded after being rendered once.
type Flash struct {
	Kind FlashKind
	Text string
}
