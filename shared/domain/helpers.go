package domain

import (
	"fmt"
	"time"
)

// for debug
func (m *Message) String() string {
	return fmt.Sprintf("[index:%d, author:%s, title:%q, content_len:%d, created:%s]",
		m.Index, m.Author, m.Title, len(m.Content), m.Timestamp.Format(time.StampMilli))
}

func (b *BoardState) String() string {
	return fmt.Sprintf("[authority:%s, message_count:%d]", b.Authority, b.MessageCount)
}
