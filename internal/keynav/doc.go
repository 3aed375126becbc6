// Package keynav implements roving-focus keyboard navigation over an ordered
// list of item identifiers.
//
// Core pieces:
//   - Event: a key press with a key name and a default-suppression flag
//   - Bus: the process-wide key source listeners subscribe to
//   - Attach / Subscription: one scoped listener translating keys into focus moves
//   - Controller: owns at most one Subscription and re-attaches when inputs change
//
// Key names follow the browser vocabulary ("ArrowDown", "Home", "Enter", " ").
// KeyName maps Bubble Tea key messages onto it.
package keynav
