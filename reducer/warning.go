package reducer

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/huangkairan/redux/observability"
)

// Reporter delivers diagnostic warnings. Warnings go to Observer when set,
// otherwise to Fallback, otherwise nowhere.
type Reporter struct {
	Observer observability.Observer
	Fallback io.Writer
}

// Warning reports message. It never panics and never fails.
func (r Reporter) Warning(ctx context.Context, message string) {
	defer func() {
		// Sinks never fail a transition.
		_ = recover()
	}()

	if r.Observer != nil {
		r.Observer.OnEvent(ctx, observability.Event{
			Type:      EventCombineWarning,
			Level:     observability.LevelWarning,
			Timestamp: time.Now(),
			Source:    eventSource,
			Data:      map[string]any{"message": message},
		})
		return
	}

	if r.Fallback != nil {
		fmt.Fprintln(r.Fallback, message)
	}
}
