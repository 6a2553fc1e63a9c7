// Package cli provides the interactive command-line client for the API.
//
// Flow: ask whether the server already has an admin; bootstrap one when it
// does not; log in; then loop over a numbered menu of endpoints until the
// user quits. Logging out leads back to the login prompt.
//
// The menu is started via App.Run(ctx), which blocks until the user quits or
// stdin is closed. See runMenu for the menu itself.
package cli
