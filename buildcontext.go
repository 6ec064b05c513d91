package wiretile

import (
	"fmt"
	"time"
)

// Tiling log categories.
// @see BuildContext
type LogCategory int

const (
	LogProgress LogCategory = 1 + iota // A progress log entry.
	LogWarning                         // A warning log entry.
	LogError                           // An error log entry.
)

// Timer labels for the tiling build steps.
type TimerLabel int

const (
	TimerBuildTotal TimerLabel = iota
	TimerBuildPlanes
	TimerBuildCells
	TimerBuildIndex
	maxTimers
)

const maxMessages = 1000

// BuildContext carries the log and the performance timers of a tiling
// build. Pass one to New to record what the build does; a nil context
// disables both.
type BuildContext struct {
	startTime [maxTimers]time.Time
	accTime   [maxTimers]time.Duration

	messages    [maxMessages]string
	numMessages int

	logEnabled   bool
	timerEnabled bool
}

// NewBuildContext returns a build context with logging and timers
// enabled or disabled according to state.
func NewBuildContext(state bool) *BuildContext {
	return &BuildContext{
		logEnabled:   state,
		timerEnabled: state,
	}
}

// EnableLog enables or disables logging.
func (ctx *BuildContext) EnableLog(state bool) {
	ctx.logEnabled = state
}

// EnableTimer enables or disables the performance timers.
func (ctx *BuildContext) EnableTimer(state bool) {
	ctx.timerEnabled = state
}

// ResetLog clears all log entries.
func (ctx *BuildContext) ResetLog() {
	if ctx.logEnabled {
		ctx.numMessages = 0
	}
}

// ResetTimers clears all performance timers.
func (ctx *BuildContext) ResetTimers() {
	if ctx.timerEnabled {
		for i := 0; i < int(maxTimers); i++ {
			ctx.accTime[i] = time.Duration(0)
		}
	}
}

func (ctx *BuildContext) Progressf(format string, v ...interface{}) {
	ctx.Log(LogProgress, format, v...)
}

func (ctx *BuildContext) Warningf(format string, v ...interface{}) {
	ctx.Log(LogWarning, format, v...)
}

func (ctx *BuildContext) Errorf(format string, v ...interface{}) {
	ctx.Log(LogError, format, v...)
}

// Log stores a log message of the given category.
func (ctx *BuildContext) Log(category LogCategory, format string, v ...interface{}) {
	if ctx.logEnabled && ctx.numMessages < maxMessages {
		switch category {
		case LogProgress:
			ctx.messages[ctx.numMessages] = "PROG " + fmt.Sprintf(format, v...)
		case LogWarning:
			ctx.messages[ctx.numMessages] = "WARN " + fmt.Sprintf(format, v...)
		case LogError:
			ctx.messages[ctx.numMessages] = "ERR " + fmt.Sprintf(format, v...)
		}
		ctx.numMessages++
	}
}

// DumpLog prints a header followed by every log entry to stdout.
func (ctx *BuildContext) DumpLog(format string, args ...interface{}) {
	fmt.Printf(format+"\n", args...)
	for i := 0; i < ctx.numMessages; i++ {
		fmt.Println(ctx.messages[i])
	}
}

// LogCount returns the number of stored log entries.
func (ctx *BuildContext) LogCount() int {
	return ctx.numMessages
}

// LogText returns the text of the i-th log entry.
func (ctx *BuildContext) LogText(i int) string {
	return ctx.messages[i]
}

// StartTimer starts the specified performance timer.
func (ctx *BuildContext) StartTimer(label TimerLabel) {
	if ctx.timerEnabled {
		ctx.startTime[label] = time.Now()
	}
}

// StopTimer stops the specified performance timer, accumulating the
// elapsed time.
func (ctx *BuildContext) StopTimer(label TimerLabel) {
	if ctx.timerEnabled {
		ctx.accTime[label] += time.Since(ctx.startTime[label])
	}
}

// AccumulatedTime returns the total accumulated time of the specified
// performance timer, or 0 if timers are disabled.
func (ctx *BuildContext) AccumulatedTime(label TimerLabel) time.Duration {
	if ctx.timerEnabled {
		return ctx.accTime[label]
	}
	return time.Duration(0)
}
