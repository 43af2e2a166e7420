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
	"strings"

	"github.com/colourclash/gophercoco/hardware/clock"
)

// Queue is an ordered list of pending events, sorted ascending by the tick
// at which each event is due. Events due at the same tick run in the order
// they were scheduled.
//
// The list is intrusive. The Queue borrows the next/prev fields of the
// events linked into it; it does not own the events themselves.
type Queue struct {
	clk  *clock.Clock
	head *Event
	tail *Event
}

// NewQueue is the preferred method of initialisation for the Queue type. The
// clock is shared with the components whose events are queued.
func NewQueue(clk *clock.Clock) *Queue {
	return &Queue{clk: clk}
}

func (q *Queue) String() string {
	s := strings.Builder{}
	for ev := q.head; ev != nil; ev = ev.next {
		s.WriteString(ev.String())
		s.WriteString("\n")
	}
	return s.String()
}

// Schedule links the event into the queue at the position implied by the
// event's At field. If the event is already queued, here or in another
// queue, it is unlinked first. An event is never linked twice.
func (q *Queue) Schedule(ev *Event) {
	if ev.queue != nil {
		ev.queue.unlink(ev)
	}

	// linear scan to the first event with a strictly later tick. events
	// sharing the same tick therefore keep their insertion order
	e := q.head
	for e != nil && clock.Delta(e.At, ev.At) <= 0 {
		e = e.next
	}

	if e == nil {
		// append
		ev.prev = q.tail
		ev.next = nil
		if q.tail != nil {
			q.tail.next = ev
		} else {
			q.head = ev
		}
		q.tail = ev
	} else {
		// splice before e
		ev.prev = e.prev
		ev.next = e
		if e.prev != nil {
			e.prev.next = ev
		} else {
			q.head = ev
		}
		e.prev = ev
	}

	ev.queue = q
}

// ScheduleAt is a convenience for setting the event's due tick and
// scheduling it in one call.
func (q *Queue) ScheduleAt(ev *Event, at clock.Tick) {
	ev.At = at
	q.Schedule(ev)
}

// Cancel unlinks the event from the queue. Cancelling an event that is not
// queued is a safe no-op, used at teardown.
func (q *Queue) Cancel(ev *Event) {
	if ev.queue == nil {
		return
	}
	ev.queue.unlink(ev)
}

func (q *Queue) unlink(ev *Event) {
	if ev.prev != nil {
		ev.prev.next = ev.next
	} else {
		q.head = ev.next
	}
	if ev.next != nil {
		ev.next.prev = ev.prev
	} else {
		q.tail = ev.prev
	}
	ev.next = nil
	ev.prev = nil
	ev.queue = nil
}

// RunDue unlinks and runs every event due at or before the current tick.
// The head of the queue is re-read after every payload because payloads are
// free to schedule new events, including the event that has just run.
func (q *Queue) RunDue() {
	for q.head != nil && clock.Delta(q.head.At, q.clk.Current) <= 0 {
		ev := q.head
		q.unlink(ev)
		ev.Run()
	}
}

// Len returns the number of events currently queued. Intended for test and
// debugging use.
func (q *Queue) Len() int {
	var n int
	for ev := q.head; ev != nil; ev = ev.next {
		n++
	}
	return n
}
