package gameplay

import (
	"context"
	"errors"
	"io"
	"log"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"lightbot/pkg/game/messages"
	"lightbot/pkg/game/program"
	"lightbot/pkg/game/state"
)

// Errors returned when a run cannot start
var (
	ErrNoLevel       = errors.New("no level loaded")
	ErrEmptyProgram  = errors.New("program is empty")
	ErrRunInProgress = errors.New("a run is already in progress")
)

// DefaultMaxLoopIterations caps LOOP blocks unless configured otherwise
const DefaultMaxLoopIterations = 100

// Outcome is how a run ended
type Outcome int

// Run outcomes
const (
	OutcomeNone Outcome = iota
	OutcomeWin
	OutcomeFail
	OutcomeCancelled
)

var outcomeNames = [...]string{"NONE", "WIN", "FAIL", "CANCELLED"}

func (o Outcome) String() string {
	if o < 0 || int(o) >= len(outcomeNames) {
		return "UNKNOWN"
	}
	return outcomeNames[o]
}

// MarshalText encodes the outcome by name
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// Reason explains a failed command or run
type Reason int

// Failure reasons
const (
	ReasonNone Reason = iota
	ReasonBlocked
	ReasonJumpImpossible
	ReasonGoalsUnlit
	ReasonCancelled
)

var reasonNames = [...]string{"", "blocked", "jump_impossible", "goals_unlit", "cancelled"}

func (r Reason) String() string {
	if r < 0 || int(r) >= len(reasonNames) {
		return "unknown"
	}
	return reasonNames[r]
}

// MarshalText encodes the reason by name
func (r Reason) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// RunResult is the outcome of a whole run. Path points at the failing block
// when the run failed on a command.
type RunResult struct {
	Outcome Outcome
	Reason  Reason
	Path    []int
}

// SequenceResult is how the execution of a block sequence ended
type SequenceResult int

// Sequence results
const (
	SequenceDone SequenceResult = iota
	SequenceFailed
	SequenceCancelled
)

// Pacer is the suspension point after each executed block. Returning an
// error stops the run as cancelled.
type Pacer interface {
	Pace(ctx context.Context) error
}

// DelayPacer waits a fixed duration after each block
type DelayPacer time.Duration

// Pace waits for the delay or until ctx is done
func (d DelayPacer) Pace(ctx context.Context) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(time.Duration(d))
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Options configures an Executor
type Options struct {
	Pacer    Pacer
	Observer Observer
	Messages *messages.Catalog

	// MaxLoopIterations caps the iterations of a single LOOP block; 0 means no cap
	MaxLoopIterations int

	Logger *log.Logger
}

// DefaultOptions returns options with no delay, English messages and the
// default loop cap.
func DefaultOptions() Options {
	return Options{
		Pacer:             DelayPacer(0),
		Messages:          messages.Default(),
		MaxLoopIterations: DefaultMaxLoopIterations,
	}
}

// Executor runs programs against one game session. A session has at most
// one run in flight; Cancel may be called from any goroutine.
type Executor struct {
	game *state.Game
	opts Options

	mu        sync.Mutex
	running   bool
	stop      context.CancelFunc
	cancelled atomic.Bool

	failure     Reason
	failurePath []int
}

// NewExecutor creates an executor bound to g
func NewExecutor(g *state.Game, opts Options) *Executor {
	if opts.Pacer == nil {
		opts.Pacer = DelayPacer(0)
	}
	if opts.Messages == nil {
		opts.Messages = messages.Default()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard, "", 0)
	}
	return &Executor{game: g, opts: opts}
}

// Game returns the session the executor drives
func (e *Executor) Game() *state.Game {
	return e.game
}

// Running returns true while a run is in flight
func (e *Executor) Running() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.running
}

// Cancel asks the current run to stop at its next block or loop iteration.
// A pause on the pacer is interrupted.
func (e *Executor) Cancel() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.running {
		e.cancelled.Store(true)
		e.stop()
	}
}

// begin marks a run as started and returns its context
func (e *Executor) begin(ctx context.Context) (context.Context, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.running {
		return nil, ErrRunInProgress
	}
	e.running = true
	e.cancelled.Store(false)
	ctx, e.stop = context.WithCancel(ctx)
	return ctx, nil
}

func (e *Executor) end() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.stop()
	e.stop = nil
	e.running = false
}

// Run executes p from the level start pose. It blocks until the run ends,
// pausing on the pacer after every block. A cancelled run, through Cancel
// or ctx, leaves the session reset to IDLE.
func (e *Executor) Run(ctx context.Context, p program.Program) (RunResult, error) {
	g := e.game
	if g.Level == nil {
		g.AddMessage(e.opts.Messages.Get(messages.NoLevel))
		return RunResult{}, ErrNoLevel
	}
	if len(p) == 0 && !e.Running() {
		g.AddMessage(e.opts.Messages.Get(messages.ProgramEmpty))
		return RunResult{}, ErrEmptyProgram
	}

	ctx, err := e.begin(ctx)
	if err != nil {
		return RunResult{}, err
	}
	defer e.end()

	e.failure = ReasonNone
	e.failurePath = nil

	g.ResetPosition()
	g.Status = state.StatusRunning
	e.opts.Logger.Printf("level %d: run started with %d blocks", g.LevelID(), p.Len())
	e.emit(Event{Kind: EventRunStarted, OK: true})

	result := e.finish(e.RunSequence(ctx, p))

	g.CurrentPath = nil
	g.ActiveCommand = program.CommandNone
	e.opts.Logger.Printf("level %d: run finished %v %v", g.LevelID(), result.Outcome, result.Reason)
	e.emit(Event{
		Kind:    EventRunFinished,
		OK:      result.Outcome == OutcomeWin,
		Reason:  result.Reason,
		Outcome: result.Outcome,
		Path:    result.Path,
	})
	return result, nil
}

func (e *Executor) finish(res SequenceResult) RunResult {
	g := e.game
	msgs := e.opts.Messages

	switch {
	case res == SequenceCancelled:
		g.Reset()
		g.AddMessage(msgs.Get(messages.RunCancelled))
		return RunResult{Outcome: OutcomeCancelled, Reason: ReasonCancelled}

	case res == SequenceFailed:
		g.Status = state.StatusFail
		if e.failure == ReasonJumpImpossible {
			g.AddMessage(msgs.Get(messages.JumpImpossible))
		} else {
			g.AddMessage(msgs.Get(messages.RobotBlocked))
		}
		return RunResult{Outcome: OutcomeFail, Reason: e.failure, Path: e.failurePath}

	case g.IsWin():
		g.Status = state.StatusWin
		g.AddMessage(msgs.Getf(messages.LevelWon, g.LevelID()))
		return RunResult{Outcome: OutcomeWin}
	}

	g.Status = state.StatusFail
	g.AddMessage(msgs.Getf(messages.LightsRemaining, g.UnlitGoals()))
	return RunResult{Outcome: OutcomeFail, Reason: ReasonGoalsUnlit}
}

// RunSequence executes blocks in order, stopping at the first failure.
// It does not touch the run status; Run drives the status machine.
func (e *Executor) RunSequence(ctx context.Context, blocks program.Program) SequenceResult {
	return e.runSequence(ctx, blocks, nil)
}

// RunCommand executes a single command against the session
func (e *Executor) RunCommand(cmd program.Command) (bool, Reason) {
	return RunCommand(e.game, cmd)
}

func (e *Executor) isCancelled(ctx context.Context) bool {
	return e.cancelled.Load() || ctx.Err() != nil
}

func (e *Executor) runSequence(ctx context.Context, blocks program.Program, parent []int) SequenceResult {
	for i, b := range blocks {
		if e.isCancelled(ctx) {
			return SequenceCancelled
		}
		if b == nil {
			continue
		}

		path := append(slices.Clone(parent), i)
		e.game.CurrentPath = path
		e.emit(Event{
			Kind:      EventBlockStarted,
			Path:      path,
			BlockID:   b.ID,
			BlockType: b.Type,
			Command:   b.Command,
			OK:        true,
		})

		var res SequenceResult
		switch b.Type {
		case program.TypeLoop:
			res = e.runLoop(ctx, b, path)
		case program.TypeIfColor:
			res = e.runIfColor(ctx, b, path)
		case program.TypeCommand:
			res = e.runCommandBlock(b, path)
		default:
			e.opts.Logger.Printf("block %v: unknown type %q skipped", path, b.Type)
		}

		if res != SequenceDone {
			return res
		}
		if err := e.opts.Pacer.Pace(ctx); err != nil {
			return SequenceCancelled
		}
	}
	return SequenceDone
}

func (e *Executor) runLoop(ctx context.Context, b *program.Block, path []int) SequenceResult {
	n := b.Iterations
	if n <= 0 || len(b.Children) == 0 {
		e.opts.Logger.Printf("block %v: empty loop skipped", path)
		return SequenceDone
	}
	if limit := e.opts.MaxLoopIterations; limit > 0 && n > limit {
		e.opts.Logger.Printf("block %v: loop of %d iterations capped to %d", path, n, limit)
		n = limit
	}

	for i := 0; i < n; i++ {
		if e.isCancelled(ctx) {
			return SequenceCancelled
		}
		if res := e.runSequence(ctx, b.Children, path); res != SequenceDone {
			return res
		}
	}
	return SequenceDone
}

func (e *Executor) runIfColor(ctx context.Context, b *program.Block, path []int) SequenceResult {
	if b.ConditionColor == "" || len(b.Children) == 0 {
		e.opts.Logger.Printf("block %v: empty condition skipped", path)
		return SequenceDone
	}

	pos := e.game.Robot.Position
	t := TileAt(e.game, pos.X, pos.Y)
	if t == nil || t.Color != b.ConditionColor {
		return SequenceDone
	}
	return e.runSequence(ctx, b.Children, path)
}

func (e *Executor) runCommandBlock(b *program.Block, path []int) SequenceResult {
	if b.Command == program.CommandNone {
		e.opts.Logger.Printf("block %v: command block without command skipped", path)
		return SequenceDone
	}

	if !b.Command.IsKnown() {
		e.opts.Logger.Printf("block %v: unknown command %q has no effect", path, b.Command)
	}
	e.game.ActiveCommand = b.Command
	ok, reason := e.RunCommand(b.Command)
	e.emit(Event{
		Kind:      EventCommandFinished,
		Path:      path,
		BlockID:   b.ID,
		BlockType: b.Type,
		Command:   b.Command,
		OK:        ok,
		Reason:    reason,
	})

	if !ok {
		e.failure = reason
		e.failurePath = path
		e.opts.Logger.Printf("block %v: %s failed: %v", path, b.Command, reason)
		return SequenceFailed
	}
	return SequenceDone
}

func (e *Executor) emit(ev Event) {
	if e.opts.Observer == nil {
		return
	}
	ev.State = e.game.Snapshot()
	e.opts.Observer.OnEvent(ev)
}
