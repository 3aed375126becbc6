// Package ui is the Bubble Tea front end of the timeline editor.
//
// Core pieces:
//   - AppModel: root model owning the board, the visible month and the focused task
//   - TimelineView: the month grid of rows and task bars
//   - Overlay / OverlayStack: task detail and help popups, dismissed with esc
//   - KeybindRegistry / KeyHandler: editor commands and the "g" leader sequences
//
// Arrow, Home, End, Enter and Space never reach the registry: the app feeds
// them to a keynav.Bus and a keynav.Controller decides what they do.
package ui
