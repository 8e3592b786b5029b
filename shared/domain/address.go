package domain

import (
	"encoding/binary"
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

const messageSeed = "message"

// MessageAddress derives the storage key of a message from its seeds:
// the counter value it was minted with and its author.
func MessageAddress(index MsgIndex, author Identity) MsgAddress {
	buf := make([]byte, 0, len(messageSeed)+8+len(author))
	buf = append(buf, messageSeed...)
	buf = binary.LittleEndian.AppendUint64(buf, index)
	buf = append(buf, author...)
	sum := blake2b.Sum256(buf)
	return hex.EncodeToString(sum[:])
}
