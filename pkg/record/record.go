// Package record defines the back-office entity model: properties, clients,
// and commissions, plus the note threads attached to them.
package record

import (
	"strconv"
	"sync"
	"time"
)

// Note is a dated free-text annotation attached to a property or client.
type Note struct {
	ID      string    `json:"id"`
	Content string    `json:"content"`
	Date    Timestamp `json:"date"`
	Author  string    `json:"author,omitempty"`
}

var (
	idMu     sync.Mutex
	lastID   int64
	idSuffix int
)

// NewID returns a timestamp-based identifier. Two calls in the same
// millisecond yield distinct ids.
func NewID() string {
	idMu.Lock()
	defer idMu.Unlock()
	stamp := time.Now().UnixMilli()
	if stamp == lastID {
		idSuffix++
		return strconv.FormatInt(stamp, 10) + "-" + strconv.Itoa(idSuffix)
	}
	lastID = stamp
	idSuffix = 0
	return strconv.FormatInt(stamp, 10)
}

// Now returns the current instant as a Timestamp.
func Now() Timestamp {
	return Timestamp{Time: time.Now()}
}

// NewNote builds a note with a fresh id stamped at the current date.
func NewNote(content, author string) Note {
	return Note{
		ID:      NewID(),
		Content: content,
		Date:    Timestamp{Time: time.Now()},
		Author:  author,
	}
}
