package domain

// BoardState is the singleton record of a store instance.
// Authority never changes; MessageCount counts identifiers ever issued,
// not live messages.
type BoardState struct {
	Authority    Identity
	MessageCount MessageCount
}
