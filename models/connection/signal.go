package connection

const (
	// First frame of every subscription
	CodeSubscriberID uint8 = iota

	// Rendered own board, sent right after CodeSubscriberID
	CodeBoardSnapshot

	// A shot was resolved against the own board
	CodeShotResolved

	// The last ship on the own board went down
	CodeFleetSunk

	// The hub is shutting down
	CodeFeedClosed
)
