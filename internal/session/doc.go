// Package session owns the signed-in user of the client: the [Store] holds
// the single session and its state machine, the [InactivityMonitor] signs the
// user out after a period without input, and the [TokenRefresher] keeps the
// ID token fresh in the background.
package session
