// Package ui contains the Bubble Tea program that renders the ranked carousel.
// Model owns message routing and rendering; the rotation state machine itself
// lives in internal/carousel and is driven from here.
//
// Message flow:
//   - Init shows the placeholder cards, starts the backend.Loader request and
//     waits for its single Event. The event handler hands the items to the
//     controller, which starts rotating when the list is real.
//   - Every Update ends in finishUpdate. When the controller holds a timer
//     handle that no command is waiting on, a waitForRotation command is
//     issued; it returns a rotationTickMsg carrying the handle ID, and ticks
//     for anything but the active handle are dropped by the controller.
//   - Mouse motion is mapped to cards through the layout recorded by the last
//     View; entering a card pauses rotation and leaving it restarts the timer
//     with a full period. Clicks on the large image or the arrow buttons, and
//     the matching keys, move the highlight without touching the timer.
//
// Close (quit key, or app.Run on any exit) tears the controller down and
// cancels the request.
package ui
