package order

import (
	"fmt"
	"sync"
	"time"
)

var idMu sync.Mutex
var lastIDMillis int64

// NewID generates a time-derived order id (ORD-<unix millis>). Two finalizes
// on the same millisecond get consecutive values, keeping ids unique within
// the process.
func NewID() string {
	idMu.Lock()
	defer idMu.Unlock()

	millis := time.Now().UnixMilli()
	if millis <= lastIDMillis {
		millis = lastIDMillis + 1
	}
	lastIDMillis = millis
	return fmt.Sprintf("ORD-%d", millis)
}
