package recording

// CommandType identifies the type of a command.
// Each command type corresponds to a specific drawing operation.
type CommandType uint8

const (
	// Structure commands
	CmdBeginGroup CommandType = iota // Open a transformed group
	CmdEndGroup                      // Close the innermost group

	// Drawing commands
	CmdDrawCircle  // Draw a circle
	CmdDrawPath    // Draw a path
	CmdDrawPolygon // Draw a closed polygon
	CmdDrawText    // Draw text
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdBeginGroup:  "BeginGroup",
	CmdEndGroup:    "EndGroup",
	CmdDrawCircle:  "DrawCircle",
	CmdDrawPath:    "DrawPath",
	CmdDrawPolygon: "DrawPolygon",
	CmdDrawText:    "DrawText",
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

// PathRef is a reference to a path in the resource pool.
// The zero value is a valid reference to the first path (if any).
type PathRef uint32

// --------------------------------------------------------------------------
// Structure Commands
// --------------------------------------------------------------------------

// BeginGroupCommand opens a group. Every command up to the matching
// EndGroupCommand is drawn under Transform, composed with the transforms of
// any enclosing groups.
type BeginGroupCommand struct {
	Transform Matrix
}

// Type implements Command.
func (BeginGroupCommand) Type() CommandType { return CmdBeginGroup }

// EndGroupCommand closes the innermost open group.
type EndGroupCommand struct{}

// Type implements Command.
func (EndGroupCommand) Type() CommandType { return CmdEndGroup }

// --------------------------------------------------------------------------
// Drawing Commands
// --------------------------------------------------------------------------

// DrawCircleCommand draws a circle.
type DrawCircleCommand struct {
	Center Point
	Radius float64
	Style  Style
}

// Type implements Command.
func (DrawCircleCommand) Type() CommandType { return CmdDrawCircle }

// DrawPathCommand draws a path.
type DrawPathCommand struct {
	// Path references the path in the resource pool.
	Path  PathRef
	Style Style
}

// Type implements Command.
func (DrawPathCommand) Type() CommandType { return CmdDrawPath }

// DrawPolygonCommand draws a closed polygon through Points.
type DrawPolygonCommand struct {
	Points []Point
	Style  Style
}

// Type implements Command.
func (DrawPolygonCommand) Type() CommandType { return CmdDrawPolygon }

// DrawTextCommand draws text at a specified position.
type DrawTextCommand struct {
	// Text is the literal string to render.
	Text string
	// Position is the anchor point of the text.
	Position Point
	// Font describes size and anchoring.
	Font Font
	// Fill is the text color.
	Fill Brush
}

// Type implements Command.
func (DrawTextCommand) Type() CommandType { return CmdDrawText }

// --------------------------------------------------------------------------
// Supporting Types
// --------------------------------------------------------------------------

// TextAnchor aligns text horizontally relative to its position.
type TextAnchor uint8

const (
	// AnchorStart places the text's start at the position.
	AnchorStart TextAnchor = iota
	// AnchorMiddle centers the text on the position.
	AnchorMiddle
	// AnchorEnd places the text's end at the position.
	AnchorEnd
)

// Baseline aligns text vertically relative to its position.
type Baseline uint8

const (
	// BaselineAlphabetic puts the alphabetic baseline at the position.
	BaselineAlphabetic Baseline = iota
	// BaselineCentral centers the em box on the position.
	BaselineCentral
)

// Font describes how text is set.
type Font struct {
	// Size is the font size in millimetres.
	Size     float64
	Anchor   TextAnchor
	Baseline Baseline
}
