package clipboard

import (
	"time"

	atotto "github.com/atotto/clipboard"
)

// Writer puts text on the system clipboard
type Writer func(text string) error

// SystemWriter writes through the platform clipboard tool
var SystemWriter Writer = atotto.WriteAll

// DefaultAck is how long a row shows its "copied" acknowledgment
const DefaultAck = 1500 * time.Millisecond
