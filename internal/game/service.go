package game

import (
	"context"
	"encoding/json"
	"errors"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/statbook-lambda/internal/activity"
	"github.com/saulo-duarte/statbook-lambda/internal/aiquiz"
	"github.com/saulo-duarte/statbook-lambda/internal/config"
	"github.com/saulo-duarte/statbook-lambda/internal/content"
	"github.com/saulo-duarte/statbook-lambda/internal/quiz"
	util "github.com/saulo-duarte/statbook-lambda/internal/utils"
	"github.com/sirupsen/logrus"
)

const practiceSlug = "practice"

var (
	ErrSummaryUnavailable = errors.New("session has not ended")
	ErrNoHint             = errors.New("no hint for the current question")
	ErrPracticeDisabled   = errors.New("practice generation disabled")
)

// Tracker records student activity. activity.Service satisfies it.
type Tracker interface {
	Record(ctx context.Context, netID string, dto activity.TrackDTO) (*activity.Visit, error)
}

type Service interface {
	Start(ctx context.Context, slug string, dto StartDTO, netID string) (*SessionView, error)
	StartPractice(ctx context.Context, dto PracticeDTO, netID string) (*SessionView, error)
	Get(ctx context.Context, id uuid.UUID) (*SessionView, error)
	Begin(ctx context.Context, id uuid.UUID) (*ActionResponse, error)
	Select(ctx context.Context, id uuid.UUID, dto SelectDTO) (*ActionResponse, error)
	Submit(ctx context.Context, id uuid.UUID) (*ActionResponse, error)
	Advance(ctx context.Context, id uuid.UUID) (*ActionResponse, error)
	Restart(ctx context.Context, id uuid.UUID) (*ActionResponse, error)
	Summary(ctx context.Context, id uuid.UUID) (*SummaryView, error)
	Hint(ctx context.Context, id uuid.UUID) (string, error)
	End(ctx context.Context, id uuid.UUID) error
}

type Options struct {
	// Dwell applies to games that do not set their own.
	Dwell     time.Duration
	Scheduler quiz.Scheduler
}

type service struct {
	catalog   content.Service
	generator aiquiz.Service
	tracker   Tracker
	registry  *Registry
	opts      Options
}

// NewService wires the session host. generator and tracker may be nil.
func NewService(catalog content.Service, generator aiquiz.Service, tracker Tracker, registry *Registry, opts Options) Service {
	if opts.Dwell <= 0 {
		opts.Dwell = quiz.DefaultDwell
	}
	if opts.Scheduler == nil {
		opts.Scheduler = quiz.RealScheduler()
	}
	return &service{
		catalog:   catalog,
		generator: generator,
		tracker:   tracker,
		registry:  registry,
		opts:      opts,
	}
}

func (s *service) Start(ctx context.Context, slug string, dto StartDTO, netID string) (*SessionView, error) {
	g, err := s.catalog.Game(slug)
	if err != nil {
		return nil, err
	}
	if dto.Mode == "" {
		dto.Mode = content.ModeComprehensive
	}
	bank, err := s.catalog.Bank(slug, dto.Mode)
	if err != nil {
		return nil, err
	}
	if dto.Shuffle {
		bank = content.Shuffle(bank, rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
	}

	return s.host(ctx, &Session{
		ID:      uuid.New(),
		Game:    g.Slug,
		Title:   g.Title,
		Mode:    dto.Mode,
		NetID:   netID,
		Page:    g.Path,
		Grading: g.Grading,
	}, bank, g.RunnerOptions())
}

func (s *service) StartPractice(ctx context.Context, dto PracticeDTO, netID string) (*SessionView, error) {
	if s.generator == nil {
		return nil, ErrPracticeDisabled
	}

	bank, err := s.generator.GenerateQuestions(ctx, aiquiz.QuestionRequest{
		Topic:      dto.Topic,
		Difficulty: dto.Difficulty,
		Count:      dto.Count,
		Context:    dto.Context,
	})
	if err != nil {
		return nil, err
	}

	opts := quiz.Options{TimeBudget: time.Duration(dto.TimeLimitSeconds) * time.Second}
	return s.host(ctx, &Session{
		ID:    uuid.New(),
		Game:  practiceSlug,
		Title: "Practice: " + dto.Topic,
		Mode:  content.ModeComprehensive,
		Page:  "/practice",
		NetID: netID,
	}, bank, opts)
}

// host builds the runner for sess, registers it and starts the first attempt.
func (s *service) host(ctx context.Context, sess *Session, bank []quiz.Question, opts quiz.Options) (*SessionView, error) {
	if opts.Dwell <= 0 {
		opts.Dwell = s.opts.Dwell
	}
	opts.Scheduler = s.opts.Scheduler
	opts.Celebrator = sess
	opts.OnChange = func(snap quiz.Session) {
		if sess.markEnded(snap) {
			s.reportCompletion(sess, snap)
		}
	}

	runner, err := quiz.NewRunner(bank, opts)
	if err != nil {
		return nil, err
	}
	sess.runner = runner

	if err := s.registry.Add(sess); err != nil {
		runner.Close()
		return nil, err
	}

	runner.Start()
	s.track(ctx, sess, activity.ActionQuizStart, nil)

	config.WithContext(ctx).WithFields(logrus.Fields{
		"session_id": sess.ID,
		"game":       sess.Game,
		"mode":       sess.Mode,
		"questions":  runner.Len(),
	}).Info("Quiz session started")

	v := s.view(sess)
	return &v, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*SessionView, error) {
	sess, err := s.registry.Get(id)
	if err != nil {
		return nil, err
	}
	v := s.view(sess)
	return &v, nil
}

func (s *service) Begin(ctx context.Context, id uuid.UUID) (*ActionResponse, error) {
	return s.act(id, func(r *quiz.Runner) bool { return r.Start() })
}

func (s *service) Select(ctx context.Context, id uuid.UUID, dto SelectDTO) (*ActionResponse, error) {
	return s.act(id, func(r *quiz.Runner) bool {
		if dto.Key != "" {
			return r.SelectPair(dto.Key, dto.Value)
		}
		return r.Select(dto.Value)
	})
}

func (s *service) Submit(ctx context.Context, id uuid.UUID) (*ActionResponse, error) {
	return s.act(id, func(r *quiz.Runner) bool {
		_, ok := r.Submit()
		return ok
	})
}

func (s *service) Advance(ctx context.Context, id uuid.UUID) (*ActionResponse, error) {
	return s.act(id, func(r *quiz.Runner) bool { return r.Advance() })
}

func (s *service) Restart(ctx context.Context, id uuid.UUID) (*ActionResponse, error) {
	return s.act(id, func(r *quiz.Runner) bool {
		r.Restart()
		return true
	})
}

func (s *service) Summary(ctx context.Context, id uuid.UUID) (*SummaryView, error) {
	sess, err := s.registry.Get(id)
	if err != nil {
		return nil, err
	}
	sum, ok := sess.runner.Summary()
	if !ok {
		return nil, ErrSummaryUnavailable
	}
	return &SummaryView{
		ID:           sess.ID,
		Game:         sess.Game,
		Title:        sess.Title,
		Summary:      sum,
		ElapsedClock: util.FormatClock(sum.Elapsed),
	}, nil
}

func (s *service) Hint(ctx context.Context, id uuid.UUID) (string, error) {
	sess, err := s.registry.Get(id)
	if err != nil {
		return "", err
	}
	hint, ok := sess.runner.Hint()
	if !ok {
		return "", ErrNoHint
	}
	s.track(ctx, sess, activity.ActionHint, nil)
	return hint, nil
}

func (s *service) End(ctx context.Context, id uuid.UUID) error {
	if err := s.registry.Remove(id); err != nil {
		return err
	}
	config.WithContext(ctx).WithField("session_id", id).Info("Quiz session closed")
	return nil
}

func (s *service) act(id uuid.UUID, transition func(r *quiz.Runner) bool) (*ActionResponse, error) {
	sess, err := s.registry.Get(id)
	if err != nil {
		return nil, err
	}
	accepted := transition(sess.runner)
	return &ActionResponse{Accepted: accepted, View: s.view(sess)}, nil
}

func (s *service) view(sess *Session) SessionView {
	snap, q, inPlay := sess.runner.Peek()
	return toSessionView(sess, snap, q, inPlay)
}

// reportCompletion runs from the runner's change notification, possibly on a
// timer goroutine, so it uses its own context.
func (s *service) reportCompletion(sess *Session, snap quiz.Session) {
	sum := quiz.Summarize(snap, sess.Grading)

	log := config.Logger.WithFields(logrus.Fields{
		"session_id": sess.ID,
		"game":       sess.Game,
		"score":      sum.Score,
		"accuracy":   sum.Accuracy,
		"end_reason": sum.EndReason,
	})
	log.Info("Quiz session ended")

	meta, err := json.Marshal(map[string]any{
		"game":       sess.Game,
		"mode":       sess.Mode,
		"score":      sum.Score,
		"max_score":  sum.MaxScore,
		"correct":    sum.Correct,
		"answered":   sum.Answered,
		"accuracy":   sum.Accuracy,
		"tier":       sum.Tier.Label,
		"passed":     sum.Passed,
		"elapsed":    sum.Elapsed,
		"end_reason": sum.EndReason,
	})
	if err != nil {
		log.WithError(err).Warn("Failed to encode quiz summary")
		return
	}
	s.track(context.Background(), sess, activity.ActionQuizComplete, meta)
}

func (s *service) track(ctx context.Context, sess *Session, action activity.Action, meta json.RawMessage) {
	if s.tracker == nil {
		return
	}
	page := sess.Page
	if page == "" {
		page = "/sessions/" + sess.ID.String()
	}
	_, err := s.tracker.Record(ctx, sess.NetID, activity.TrackDTO{
		SessionID: sess.ID.String(),
		Action:    action,
		PagePath:  page,
		Element:   sess.Game,
		Metadata:  meta,
	})
	if err != nil {
		config.WithContext(ctx).WithError(err).WithField("action", action).Warn("Failed to track quiz activity")
	}
}
