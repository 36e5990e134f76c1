// Package event provides the synchronous publish/subscribe bus that
// carries plot notifications between widgets.
//
// All plot input handlers run on the terminal event goroutine, so the
// bus delivers events synchronously in subscription-priority order and
// publication order is exactly observation order. Handlers that panic
// are isolated so one bad subscriber cannot take down input handling.
package event
