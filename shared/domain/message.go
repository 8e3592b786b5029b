package domain

import (
	"time"
)

// to iterate thru layers: handler -> service -> storage
type MessageCreationData struct {
	Author  Identity
	Title   MsgTitle
	Content MsgContent
}

type MessageEditData struct {
	Caller  Identity
	Index   MsgIndex
	Title   MsgTitle
	Content MsgContent
}

type Message struct {
	Index     MsgIndex
	Address   MsgAddress
	Author    Identity
	Title     MsgTitle
	Content   MsgContent
	Timestamp time.Time // creation time, not touched by edits
}
