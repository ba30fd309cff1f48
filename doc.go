// Package tooltip positions a floating element next to a trigger element and
// drives its visibility.
//
// The package has two halves. The placement engine (CandidatePosition,
// SelectPlacement, ComputePlacement) is a pure function of measured geometry:
// it centers the content on the trigger, pushes it away by an offset, and with
// auto-flip enabled scans top, bottom, left, right for the first side whose box
// fits inside the viewport. The Session is a per-instance state machine that
// turns hover, click, Escape, outside-click, scroll and resize events into
// delayed open and close transitions, re-running the engine while open.
//
// A Session is not safe for concurrent use. All of its methods, and every timer
// it schedules, run on one event loop; Loop provides such a loop.
package tooltip
