package remote

import (
	"sort"

	"go.uber.org/zap"
)

// ClearAllErrorLevels passed to ClearErrorLevel empties the register
const ClearAllErrorLevels = -1

// Error levels asserted by the controller itself
// Callers may assert any other integer; higher numbers take display precedence
const (
	ErrorLevelTrackingLost = 10
	ErrorLevelPollFailed   = 20
	ErrorLevelNoRemote     = 30
	ErrorLevelDisconnected = 40
)

// ErrorLevelNames labels the controller's own levels for the HUD
var ErrorLevelNames = map[int]string{
	ErrorLevelTrackingLost: "pointer tracking lost",
	ErrorLevelPollFailed:   "remote read failed",
	ErrorLevelNoRemote:     "no remote found",
	ErrorLevelDisconnected: "remote disconnected",
}

// ErrorRegister is the set of asserted HUD error levels
// Precedence: highest severity wins, ties go to the most recently asserted
type ErrorRegister struct {
	levels   map[int]uint64 // level -> assertion sequence
	seq      uint64
	severity func(level int) int
}

// NewErrorRegister creates an empty register
// severity ranks levels for display; nil ranks a level by its own value
func NewErrorRegister(severity func(level int) int) *ErrorRegister {
	if severity == nil {
		severity = func(level int) int { return level }
	}
	return &ErrorRegister{
		levels:   make(map[int]uint64),
		severity: severity,
	}
}

// Set asserts level; re-asserting keeps the original assertion order
// Returns true if the level was newly added
func (r *ErrorRegister) Set(level int) bool {
	if _, ok := r.levels[level]; ok {
		return false
	}
	r.seq++
	r.levels[level] = r.seq
	return true
}

// Clear removes level, or every level for ClearAllErrorLevels
// Returns true if anything was removed
func (r *ErrorRegister) Clear(level int) bool {
	if level == ClearAllErrorLevels {
		had := len(r.levels) > 0
		clear(r.levels)
		return had
	}
	if _, ok := r.levels[level]; !ok {
		return false
	}
	delete(r.levels, level)
	return true
}

// Has reports whether level is asserted
func (r *ErrorRegister) Has(level int) bool {
	_, ok := r.levels[level]
	return ok
}

// Len returns the number of asserted levels
func (r *ErrorRegister) Len() int {
	return len(r.levels)
}

// Levels returns the asserted levels in ascending order
func (r *ErrorRegister) Levels() []int {
	out := make([]int, 0, len(r.levels))
	for level := range r.levels {
		out = append(out, level)
	}
	sort.Ints(out)
	return out
}

// Top returns the level the HUD should display
func (r *ErrorRegister) Top() (int, bool) {
	var (
		top     int
		topRank int
		topSeq  uint64
		found   bool
	)
	for level, seq := range r.levels {
		rank := r.severity(level)
		if !found || rank > topRank || (rank == topRank && seq > topSeq) {
			top, topRank, topSeq, found = level, rank, seq, true
		}
	}
	return top, found
}

// SetErrorLevel asserts a HUD diagnostic
func (c *Controller) SetErrorLevel(level int) {
	if c.errors.Set(level) {
		c.log.Debug("error level set", zapLevel(level))
	}
}

// ClearErrorLevel removes a diagnostic, ClearAllErrorLevels removes all
func (c *Controller) ClearErrorLevel(level int) {
	if c.errors.Clear(level) {
		c.log.Debug("error level cleared", zapLevel(level))
	}
}

// ErrorLevels returns the asserted levels in ascending order
func (c *Controller) ErrorLevels() []int {
	return c.errors.Levels()
}

func zapLevel(level int) zap.Field {
	if name, ok := ErrorLevelNames[level]; ok {
		return zap.String("level", name)
	}
	return zap.Int("level", level)
}
