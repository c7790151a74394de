package api

import (
	"encoding/json"
)

// ProtocolVersion changes whenever a message shape does. Clients compare it
// with /version before connecting.
const ProtocolVersion = 2

// --- SERVER -> CLIENT ---

// Message types pushed to subscribers.
const (
	TypeState    = "STATE"
	TypePosition = "POSITION"
	TypeMap      = "MAP"
	TypeLog      = "LOG"
	TypeError    = "ERROR"
)

// ServerResponse is the root object the server sends to a client.
type ServerResponse struct {
	// Type is one of the Type* constants.
	Type string `json:"type"`

	// Frame is the number of frames simulated so far.
	Frame int64 `json:"frame"`

	// State is a full snapshot of the session. Sent on connect, on map
	// change and in reply to STATE requests.
	State *SessionView `json:"state,omitempty"`

	// Position is a committed movement of one entity.
	Position *PositionView `json:"position,omitempty"`

	// Logs are the messages produced since the previous push.
	Logs []LogEntry `json:"logs,omitempty"`
}

// GridMeta carries the dimensions of the active grid so the client can
// prepare its tile layer.
type GridMeta struct {
	Width   int    `json:"w"`
	Height  int    `json:"h"`
	Version uint64 `json:"version"`
}

// SessionView is the whole observable state of one session.
type SessionView struct {
	MapID string   `json:"mapId"`
	Grid  GridMeta `json:"grid"`

	// Rows renders the grid one string per row: '.' open, '#' blocked,
	// 'D' portal.
	Rows []string `json:"rows"`

	Player    EntityView     `json:"player"`
	MoveState string         `json:"moveState"`
	Waypoints []PointView    `json:"waypoints,omitempty"`
	Monsters  []EntityView   `json:"monsters"`
	Resources []ResourceView `json:"resources"`
	Portals   []PortalView   `json:"portals"`
	Drops     []DropView     `json:"drops"`
	Inventory map[string]int `json:"inventory"`

	// Rental is set while the player rents an inn room.
	Rental *RentalView `json:"rental,omitempty"`
}

// EntityView is the DTO of a moving entity.
type EntityView struct {
	ID         string  `json:"id"`
	Type       string  `json:"type"` // PLAYER, MONSTER
	Name       string  `json:"name"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Col        int     `json:"col"`
	Row        int     `json:"row"`
	FacingLeft bool    `json:"facingLeft"`

	Stats *StatsView `json:"stats,omitempty"`
}

// StatsView is the DTO of entity health. Experience is only set for the
// player.
type StatsView struct {
	HP     int  `json:"hp"`
	MaxHP  int  `json:"maxHp"`
	IsDead bool `json:"isDead"`

	Level int `json:"level,omitempty"`
	XP    int `json:"xp,omitempty"`
	MaxXP int `json:"maxXp,omitempty"`
}

// ResourceView is the DTO of a tree or rock.
type ResourceView struct {
	ID       string `json:"id"`
	Kind     string `json:"kind"`
	Col      int    `json:"col"`
	Row      int    `json:"row"`
	HP       int    `json:"hp"`
	Depleted bool   `json:"depleted"`
}

// DropView is the DTO of an item lying on the ground.
type DropView struct {
	ID   string  `json:"id"`
	Item string  `json:"item"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

// RentalView is the DTO of a rented inn room.
type RentalView struct {
	MapID     string `json:"mapId"`
	ExpiresAt int64  `json:"expiresAt"` // Unix milliseconds
}

// PortalView is the DTO of a portal cell.
type PortalView struct {
	Col    int    `json:"col"`
	Row    int    `json:"row"`
	Target string `json:"target"`
}

// PointView is a world-space point.
type PointView struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// CellView is a grid-space point.
type CellView struct {
	Col int `json:"col"`
	Row int `json:"row"`
}

// PositionView is one throttled position update.
type PositionView struct {
	EntityID   string  `json:"entityId"`
	MapID      string  `json:"mapId"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	FacingLeft bool    `json:"facingLeft"`
	Timestamp  int64   `json:"timestamp"` // Unix milliseconds
}

// PathView is the answer of the path debug endpoint and the CLI.
type PathView struct {
	From   CellView   `json:"from"`
	To     CellView   `json:"to"`
	Found  bool       `json:"found"`
	Length int        `json:"length"`
	Cells  []CellView `json:"cells"`
}

// LogEntry is one line of the session log.
type LogEntry struct {
	Text      string `json:"text"`
	Type      string `json:"type"`      // INFO, COMBAT, BUILD, GATHER, ERROR
	Timestamp int64  `json:"timestamp"` // Unix milliseconds
}

// --- CLIENT -> SERVER ---

// Actions a client may send.
const (
	ActionInit     = "INIT"
	ActionState    = "STATE"
	ActionMoveTo   = "MOVE_TO"
	ActionTap      = "TAP"
	ActionJoystick = "JOYSTICK"
	ActionBuild    = "BUILD"
	ActionDemolish = "DEMOLISH"
	ActionGather   = "GATHER"
	ActionAttack   = "ATTACK"
	ActionTeleport = "TELEPORT"
	ActionRent     = "RENT"
)

// ClientCommand is the root object of every client message.
type ClientCommand struct {
	// Action names the command, e.g. MOVE_TO.
	Action string `json:"action"`

	// Payload holds the action specific data.
	Payload json.RawMessage `json:"payload,omitempty"`
}

// --- Payloads ---

// MoveToPayload asks the player to walk to a grid cell.
type MoveToPayload struct {
	Col int `json:"col"`
	Row int `json:"row"`
}

// TapPayload is a tap at a world point; the player walks to the tapped tile
// or picks up the drop lying there. HeldMs and Drag describe the gesture
// when the client reports it.
type TapPayload struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	HeldMs int64   `json:"heldMs,omitempty"`
	Drag   float64 `json:"drag,omitempty"`
}

// JoystickPayload is the drag offset of the virtual stick from its origin,
// in screen pixels. A zero offset releases the stick.
type JoystickPayload struct {
	Dx float64 `json:"dx"`
	Dy float64 `json:"dy"`
}

// BuildPayload places a house with its top-left corner on (Col, Row).
type BuildPayload struct {
	Col int `json:"col"`
	Row int `json:"row"`
}

// GatherPayload hits a resource.
type GatherPayload struct {
	ResourceID string `json:"resourceId"`
}

// TeleportPayload moves the player to a cell of a map.
type TeleportPayload struct {
	MapID string `json:"mapId"`
	Col   int    `json:"col"`
	Row   int    `json:"row"`
}

// EntityPayload targets another entity (ATTACK).
type EntityPayload struct {
	TargetID string `json:"targetId"`
}

// StructurePayload targets a placed structure (DEMOLISH).
type StructurePayload struct {
	StructureID string `json:"structureId"`
}
