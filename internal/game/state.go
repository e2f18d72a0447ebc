package game

import (
	"strconv"
	"strings"

	"startrek/internal/api"
)

// StarDate counts whole game years.
type StarDate int

// Condition is the ship's alert status.
type Condition int

const (
	ConditionUndefined Condition = iota
	ConditionGreen
	ConditionYellow
	ConditionRed
	ConditionDocked
)

func (c Condition) String() string {
	switch c {
	case ConditionGreen:
		return "GREEN"
	case ConditionYellow:
		return "YELLOW"
	case ConditionRed:
		return "RED"
	case ConditionDocked:
		return "DOCKED"
	default:
		return "UNDEFINED"
	}
}

// Style picks the highlight the scan uses for the condition.
func (c Condition) Style() api.Style {
	switch c {
	case ConditionGreen:
		return api.StyleConditionGreen
	case ConditionYellow:
		return api.StyleConditionYellow
	case ConditionRed:
		return api.StyleConditionRed
	case ConditionDocked:
		return api.StyleConditionDocked
	default:
		return api.StyleDefault
	}
}

// Outcome is the game's terminal state machine.
type Outcome int

const (
	InProgress Outcome = iota
	Won
	Lost
	Quit
)

func (o Outcome) String() string {
	switch o {
	case InProgress:
		return "in progress"
	case Won:
		return "won"
	case Lost:
		return "lost"
	case Quit:
		return "quit"
	default:
		return "unknown"
	}
}

func (o Outcome) Done() bool {
	return o != InProgress
}

// Update moves an in-progress game to next. Once a terminal state is set it
// never changes; Update reports whether it took effect.
func (o *Outcome) Update(next Outcome) bool {
	if o.Done() || next == InProgress {
		return false
	}
	*o = next
	return true
}

// Command is a numbered menu entry.
type Command int

const (
	CommandUndefined       Command = 0
	CommandWarpEngines     Command = 1
	CommandShortRangeScan  Command = 2
	CommandLongRangeScan   Command = 3
	CommandPhasers         Command = 4
	CommandPhotonTorpedoes Command = 5
	CommandGalacticRecords Command = 6
	CommandQuit            Command = -99
)

// menuCommands is the menu in display order.
var menuCommands = []Command{
	CommandWarpEngines,
	CommandShortRangeScan,
	CommandLongRangeScan,
	CommandPhasers,
	CommandPhotonTorpedoes,
	CommandGalacticRecords,
}

func (c Command) String() string {
	switch c {
	case CommandWarpEngines:
		return SystemWarpEngines.String()
	case CommandShortRangeScan:
		return SystemShortRangeSensors.String()
	case CommandLongRangeScan:
		return SystemLongRangeSensors.String()
	case CommandPhasers:
		return SystemPhasers.String()
	case CommandPhotonTorpedoes:
		return SystemPhotonTorpedoes.String()
	case CommandGalacticRecords:
		return SystemGalacticRecords.String()
	case CommandQuit:
		return "QUIT"
	default:
		return "UNDEFINED"
	}
}

// ParseCommand maps a prompt entry to a command. Escape quits; a blank or
// unrecognised entry is CommandUndefined, which shows the menu.
func ParseCommand(e api.Entry) Command {
	switch e.Kind {
	case api.EntryAborted:
		return CommandQuit
	case api.EntryBlank:
		return CommandUndefined
	}
	n, err := strconv.Atoi(strings.TrimSpace(e.Text))
	if err != nil {
		return CommandUndefined
	}
	c := Command(n)
	if c == CommandQuit {
		return c
	}
	for _, m := range menuCommands {
		if c == m {
			return c
		}
	}
	return CommandUndefined
}

// MoveOutcome records what the last warp did.
type MoveOutcome int

const (
	MoveNone MoveOutcome = iota
	MoveLeftQuadrant
	MoveStayedInQuadrant
	MoveBlocked
)

func (m MoveOutcome) String() string {
	switch m {
	case MoveLeftQuadrant:
		return "left quadrant"
	case MoveStayedInQuadrant:
		return "stayed in quadrant"
	case MoveBlocked:
		return "blocked"
	default:
		return "none"
	}
}
