package recording

import "github.com/gogpu/shapes"

// CommandType identifies the type of a command.
type CommandType uint8

const (
	CmdBeginShape CommandType = iota // Start of a shape's pixels
	CmdEndShape                      // End of a shape's pixels
	CmdPixel                         // Single pixel write
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdBeginShape: "BeginShape",
	CmdEndShape:   "EndShape",
	CmdPixel:      "Pixel",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// BeginShapeCommand opens a group of pixels belonging to one shape.
type BeginShapeCommand struct {
	Kind  string // shapes.Kind of the shape
	Color shapes.RGBA
}

// Type implements Command.
func (BeginShapeCommand) Type() CommandType { return CmdBeginShape }

// EndShapeCommand closes the group opened by the last BeginShapeCommand.
type EndShapeCommand struct{}

// Type implements Command.
func (EndShapeCommand) Type() CommandType { return CmdEndShape }

// PixelCommand writes one pixel.
type PixelCommand struct {
	X, Y  int
	Color shapes.RGBA
}

// Type implements Command.
func (PixelCommand) Type() CommandType { return CmdPixel }
