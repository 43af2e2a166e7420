// This file is part of GopherCoCo.
//
// GopherCoCo is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherCoCo is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherCoCo.  If not, see <https://www.gnu.org/licenses/>.

package scheduler

import (
	"fmt"
	"strings"

	"github.com/colourclash/gophercoco/hardware/clock"
)

// Event is a single occurrence of a payload at some point in the future.
// Events are created once, embedded in the component that owns them, and
// queued/dequeued repeatedly over the component's lifetime. They are never
// allocated per schedule.
//
// An Event is only ever linked into one Queue at a time. Scheduling an
// already queued event unlinks it first.
type Event struct {
	// label is a short description of the event. used for String() output
	// only
	Label string

	// the absolute tick at which the payload is to run
	At clock.Tick

	// Run is the payload. it is called with the event already unlinked from
	// its queue, so the payload is free to reschedule the event (including
	// itself)
	Run func()

	// the queue the event is currently linked into. nil when unqueued
	queue *Queue

	next *Event
	prev *Event
}

func (ev *Event) String() string {
	label := strings.TrimSpace(ev.Label)
	if label == "" {
		label = "[unlabelled event]"
	}
	if ev.queue == nil {
		return fmt.Sprintf("%s -> unqueued", label)
	}
	return fmt.Sprintf("%s -> %d", label, ev.At)
}

// IsQueued returns true if the event is currently linked into a queue.
func (ev *Event) IsQueued() bool {
	return ev.queue != nil
}
