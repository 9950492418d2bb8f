// Package canvas implements the interaction and rendering engine of a shared
// pixel canvas.
//
// A Place ties together four parts:
//
//   - the coordinate transform (ScreenToCell, CellToScreen) between screen
//     pixels and grid cells for a given ViewState;
//   - the Renderer, which owns the painted cells and draws the background,
//     the cells and the gridline overlay onto any Surface;
//   - the ViewController, which owns the Camera's pan and zoom and animates
//     zoom transitions with an interruptible Animator;
//   - the Interaction state machine, which turns pointer down/move/up into
//     pans, zoom toggles and paints.
//
// Everything runs on the caller's goroutine. Animations advance only when
// Tick is called, normally once per frame.
package canvas
