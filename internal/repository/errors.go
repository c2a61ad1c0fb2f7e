// Package repository defines sentinel error values reused across the
// repositories. Handlers compare against these to pick the right HTTP
// status instead of inspecting driver error strings themselves.
package repository

import "errors"

// ErrRoomFull is returned when a registration would exceed the two-boarder
// cap for a room. Handlers should translate this into an HTTP 409 response.
var ErrRoomFull = errors.New("room already has the maximum number of boarders")

// ErrUsernameTaken is returned when a registration collides with an
// existing username. Handlers should translate this into an HTTP 409.
var ErrUsernameTaken = errors.New("username already taken")

// ErrBoarderNotFound is returned when an update targets a boarder that
// does not exist. Handlers should translate this into an HTTP 404.
var ErrBoarderNotFound = errors.New("boarder not found")

// ErrNoBoardersInRoom is returned when a room roster lookup finds no
// registered boarders. Handlers should translate this into an HTTP 404.
var ErrNoBoardersInRoom = errors.New("no boarders found for this room")
