package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

// Mode selects who controls each side.
type Mode int

const (
	// PvP - both sides are played by external input.
	PvP Mode = iota + 1
	// PvC - X is human, O is the computer.
	PvC
	// CvC - the computer plays both sides.
	CvC
)

func ParseMode(value string) (Mode, error) {
	switch value {
	case "pvp":
		return PvP, nil
	case "pvc":
		return PvC, nil
	case "cvc":
		return CvC, nil
	default:
		return 0, fmt.Errorf("%w: %q", apperror.ErrUnknownMode, value)
	}
}

// ComputerPlays reports whether the computer controls the given side.
func (that Mode) ComputerPlays(mark Mark) bool {
	switch that {
	case PvC:
		return mark == PlayerO
	case CvC:
		return mark == PlayerX || mark == PlayerO
	default:
		return false
	}
}

func (that Mode) String() string {
	switch that {
	case PvP:
		return "pvp"
	case PvC:
		return "pvc"
	case CvC:
		return "cvc"
	default:
		return "unknown"
	}
}

// Policy picks how the computer chooses a cell.
type Policy int

const (
	// PolicyClassic - minimax for X only, uniformly random for O.
	PolicyClassic Policy = iota + 1
	// PolicySymmetric - corrected minimax for whichever side moves.
	PolicySymmetric
)

func ParsePolicy(value string) (Policy, error) {
	switch value {
	case "classic":
		return PolicyClassic, nil
	case "symmetric":
		return PolicySymmetric, nil
	default:
		return 0, fmt.Errorf("%w: %q", apperror.ErrUnknownPolicy, value)
	}
}

func (that Policy) String() string {
	switch that {
	case PolicyClassic:
		return "classic"
	case PolicySymmetric:
		return "symmetric"
	default:
		return "unknown"
	}
}
