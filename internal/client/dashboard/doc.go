// Package dashboard is the core of the terminal client: the session gate
// and the dashboard controller.
//
// The controller keeps the task list of the signed-in identity in step with
// the server. It never edits the list locally; every write is followed by a
// full reload. Background photo, weather and clock are fetched alongside and
// degrade silently to defaults. Two reloads racing after quick successive
// writes are not ordered: whichever completes last is what stays on screen.
package dashboard
