package quiz

import (
	"sync"
	"time"
)

const (
	DefaultDwell = 3 * time.Second
	tickInterval = time.Second
)

type Options struct {
	// Dwell is how long feedback stays up before auto-advancing.
	Dwell time.Duration
	// ManualAdvance disables the dwell timer; the caller must invoke Advance.
	ManualAdvance bool
	// TimeBudget makes the session timed. Zero means untimed.
	TimeBudget time.Duration
	// RetryIncorrect keeps the learner on a question until it is answered correctly.
	RetryIncorrect bool

	Grading    Grading
	Celebrator Celebrator
	Scheduler  Scheduler
	Matcher    Matcher
	// OnChange receives a snapshot after every transition, outside the runner lock.
	OnChange func(Session)
}

// Runner is the quiz state machine over one content bank. All methods are safe
// for concurrent use; timer callbacks and caller transitions are serialized.
type Runner struct {
	mu   sync.Mutex
	bank []Question
	opts Options

	s      Session
	closed bool

	// run invalidates the countdown, step invalidates the dwell timer.
	run   uint64
	step  uint64
	tick  Timer
	dwell Timer

	pending []Burst
}

func NewRunner(bank []Question, opts Options) (*Runner, error) {
	if err := ValidateBank(bank); err != nil {
		return nil, err
	}
	if opts.Dwell <= 0 {
		opts.Dwell = DefaultDwell
	}
	if opts.Celebrator == nil {
		opts.Celebrator = NopCelebrator
	}
	if opts.Scheduler == nil {
		opts.Scheduler = RealScheduler()
	}
	if opts.Matcher == nil {
		opts.Matcher = NewMatcher()
	}

	own := make([]Question, len(bank))
	copy(own, bank)

	r := &Runner{bank: own, opts: opts}
	r.s = r.initial()
	return r, nil
}

func (r *Runner) initial() Session {
	return newSession(r.bank, budgetSeconds(r.opts.TimeBudget))
}

// budgetSeconds rounds a positive budget up to whole countdown ticks.
func budgetSeconds(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	return int((d + time.Second - 1) / time.Second)
}

// Start begins a fresh attempt. It is accepted from NotStarted or Ended.
func (r *Runner) Start() bool {
	r.mu.Lock()
	if r.closed || r.s.State.InProgress() {
		r.mu.Unlock()
		return false
	}
	r.cancelTimersLocked()
	r.s = r.initial()
	r.s.State = StateAnswering
	r.scheduleTickLocked()
	r.unlockAndEmit()
	return true
}

// Select records a tentative choice or free-text answer. Choice questions
// only take one of their listed choices.
func (r *Runner) Select(value string) bool {
	r.mu.Lock()
	if r.closed || r.s.State != StateAnswering {
		r.mu.Unlock()
		return false
	}
	if q := r.bank[r.s.Index]; q.kind() == KindChoice && !q.hasChoice(value) {
		r.mu.Unlock()
		return false
	}
	r.s.Selection = Selection{Value: value}
	r.unlockAndEmit()
	return true
}

// SelectPair places one item of a mapping question. An empty value removes it.
func (r *Runner) SelectPair(key, value string) bool {
	r.mu.Lock()
	if r.closed || r.s.State != StateAnswering {
		r.mu.Unlock()
		return false
	}
	pairs := r.s.Selection.clone().Pairs
	if pairs == nil {
		pairs = make(map[string]string)
	}
	if value == "" {
		delete(pairs, key)
	} else {
		pairs[key] = value
	}
	r.s.Selection = Selection{Pairs: pairs}
	r.unlockAndEmit()
	return true
}

// Submit grades the current selection. It is a no-op without a selection.
func (r *Runner) Submit() (Feedback, bool) {
	r.mu.Lock()
	if r.closed || r.s.State != StateAnswering || r.s.Selection.Empty() {
		r.mu.Unlock()
		return Feedback{}, false
	}

	q := r.bank[r.s.Index]
	correct := r.opts.Matcher.Match(q, r.s.Selection)

	r.s.Answered++
	if correct {
		r.s.Correct++
		r.s.Score += q.Worth()
		r.pending = append(r.pending, CorrectBurst)
	}

	fb := Present(q, r.s.Selection, correct)
	r.s.Feedback = &fb
	r.s.State = StateShowingFeedback

	r.cancelDwellLocked()
	if !r.opts.ManualAdvance {
		step := r.step
		r.dwell = r.opts.Scheduler.AfterFunc(r.opts.Dwell, func() { r.onDwell(step) })
	}
	r.unlockAndEmit()
	return fb, true
}

// Advance leaves the feedback display ahead of the dwell timer.
func (r *Runner) Advance() bool {
	r.mu.Lock()
	if r.closed || r.s.State != StateShowingFeedback {
		r.mu.Unlock()
		return false
	}
	r.advanceLocked()
	r.unlockAndEmit()
	return true
}

// Restart abandons the attempt and returns to the initial session.
func (r *Runner) Restart() {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.cancelTimersLocked()
	r.s = r.initial()
	r.unlockAndEmit()
}

// Close tears the runner down. Pending timers are cancelled and later calls are ignored.
func (r *Runner) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cancelTimersLocked()
	r.closed = true
	r.pending = nil
}

func (r *Runner) Snapshot() Session {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.s.clone()
}

// Question returns the question in play, if any.
func (r *Runner) Question() (Question, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.s.State.InProgress() {
		return Question{}, false
	}
	return r.bank[r.s.Index], true
}

// Peek returns the session together with the question in play, taken under
// one lock so both belong to the same transition.
func (r *Runner) Peek() (Session, Question, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.s.State.InProgress() {
		return r.s.clone(), Question{}, false
	}
	return r.s.clone(), r.bank[r.s.Index], true
}

// Hint returns the hint of the question in play.
func (r *Runner) Hint() (string, bool) {
	q, ok := r.Question()
	if !ok || q.Hint == "" {
		return "", false
	}
	return q.Hint, true
}

// Summary is only available once the session ended.
func (r *Runner) Summary() (Summary, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.s.State != StateEnded {
		return Summary{}, false
	}
	return Summarize(r.s, r.opts.Grading), true
}

func (r *Runner) Len() int { return len(r.bank) }

func (r *Runner) advanceLocked() {
	r.cancelDwellLocked()

	retry := r.opts.RetryIncorrect && r.s.Feedback != nil && !r.s.Feedback.Correct
	r.s.Feedback = nil
	r.s.Selection = Selection{}

	switch {
	case retry:
		r.s.State = StateAnswering
	case r.s.Index < len(r.bank)-1:
		r.s.Index++
		r.s.State = StateAnswering
	default:
		r.endLocked(EndCompleted)
	}
}

func (r *Runner) endLocked(reason EndReason) {
	r.cancelTimersLocked()
	r.s.State = StateEnded
	r.s.EndReason = reason
	r.s.Feedback = nil
	r.s.Selection = Selection{}
	if reason == EndCompleted && r.s.Score == r.s.MaxScore {
		r.pending = append(r.pending, PerfectBurst)
	}
}

func (r *Runner) onDwell(step uint64) {
	r.mu.Lock()
	if r.closed || step != r.step || r.s.State != StateShowingFeedback {
		r.mu.Unlock()
		return
	}
	r.advanceLocked()
	r.unlockAndEmit()
}

func (r *Runner) onTick(run uint64) {
	r.mu.Lock()
	if r.closed || run != r.run || !r.s.State.InProgress() {
		r.mu.Unlock()
		return
	}
	r.s.Elapsed++
	if r.s.Timed {
		r.s.Remaining--
		if r.s.Remaining <= 0 {
			r.s.Remaining = 0
			r.endLocked(EndTimeUp)
			r.unlockAndEmit()
			return
		}
	}
	r.scheduleTickLocked()
	r.unlockAndEmit()
}

func (r *Runner) scheduleTickLocked() {
	run := r.run
	r.tick = r.opts.Scheduler.AfterFunc(tickInterval, func() { r.onTick(run) })
}

func (r *Runner) cancelDwellLocked() {
	r.step++
	if r.dwell != nil {
		r.dwell.Stop()
		r.dwell = nil
	}
}

func (r *Runner) cancelTimersLocked() {
	r.cancelDwellLocked()
	r.run++
	if r.tick != nil {
		r.tick.Stop()
		r.tick = nil
	}
}

// unlockAndEmit releases the lock, then delivers queued bursts and the change
// notification so collaborators may call back into the runner.
func (r *Runner) unlockAndEmit() {
	snap := r.s.clone()
	bursts := r.pending
	r.pending = nil
	r.mu.Unlock()

	for _, b := range bursts {
		r.opts.Celebrator.Celebrate(b)
	}
	if r.opts.OnChange != nil {
		r.opts.OnChange(snap)
	}
}
