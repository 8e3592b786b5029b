package domain

type (
	// Identity is an opaque caller key. Equality is the only operation on it.
	Identity = string

	MsgIndex     = uint64
	MsgTitle     = string
	MsgContent   = string
	MsgAddress   = string
	MessageCount = uint64
)

const (
	MaxTitleLen   = 64   // bytes
	MaxContentLen = 1024 // bytes
)
