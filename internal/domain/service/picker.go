package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/diegoclair/weekday-range-picker/internal/domain"
	"github.com/diegoclair/weekday-range-picker/internal/domain/calendar"
	"github.com/diegoclair/weekday-range-picker/internal/domain/contract"
	"github.com/diegoclair/weekday-range-picker/internal/domain/entity"
	"github.com/diegoclair/weekday-range-picker/internal/domain/picker"
	"go.uber.org/zap"
)

// PickerOptions tunes how the picker service treats input and idle sessions
type PickerOptions struct {
	// ReportInvalidInput records InvalidDate for unparsable typed dates instead of ignoring them
	ReportInvalidInput bool
	// SessionTTL drops selections untouched for longer than this. Zero keeps them forever.
	SessionTTL time.Duration
}

type session struct {
	state   picker.State
	touched time.Time
}

type pickerService struct {
	dm       contract.DataManager
	notifier contract.SelectionNotifier
	log      *zap.Logger
	opts     PickerOptions
	now      func() time.Time

	mu       sync.Mutex
	sessions map[entity.SessionKey]*session
}

func newPicker(dm contract.DataManager, notifier contract.SelectionNotifier, log *zap.Logger, opts PickerOptions) *pickerService {
	return &pickerService{
		dm:       dm,
		notifier: notifier,
		log:      log.Named("picker"),
		opts:     opts,
		now:      time.Now,
		sessions: make(map[entity.SessionKey]*session),
	}
}

func (s *pickerService) SetStart(ctx context.Context, key entity.SessionKey, input string) (*entity.Outcome, error) {
	return s.applyInput(ctx, key, input, picker.State.SetStart)
}

func (s *pickerService) SetEnd(ctx context.Context, key entity.SessionKey, input string) (*entity.Outcome, error) {
	return s.applyInput(ctx, key, input, picker.State.SetEnd)
}

func (s *pickerService) ApplyPreset(ctx context.Context, key entity.SessionKey, channelID int64, label string) (*entity.Outcome, error) {
	preset, err := s.dm.Preset().GetByLabel(channelID, label)
	if err != nil {
		return nil, fmt.Errorf("failed to get preset: %w", err)
	}
	if preset == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrPresetNotFound, label)
	}

	return s.transition(ctx, key, func(st picker.State) picker.State {
		return st.ApplyPreset(preset.Range())
	})
}

func (s *pickerService) Clear(ctx context.Context, key entity.SessionKey) *entity.Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweep()
	delete(s.sessions, key)

	s.log.Debug("selection cleared", sessionFields(key)...)
	return &entity.Outcome{State: picker.Clear()}
}

func (s *pickerService) Status(ctx context.Context, key entity.SessionKey) *entity.Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweep()
	return &entity.Outcome{State: s.current(key)}
}

// applyInput parses a typed date and hands it to the given transition
func (s *pickerService) applyInput(ctx context.Context, key entity.SessionKey, input string, set func(picker.State, calendar.Date) picker.State) (*entity.Outcome, error) {
	date, err := calendar.Parse(input)
	if err != nil {
		if !s.opts.ReportInvalidInput {
			s.log.Debug("ignoring unparsable date", append(sessionFields(key), zap.String("input", input))...)
			return &entity.Outcome{State: s.Status(ctx, key).State, Dropped: true}, nil
		}
		return s.transition(ctx, key, func(st picker.State) picker.State {
			return st.Reject(picker.ErrInvalidDate)
		})
	}

	return s.transition(ctx, key, func(st picker.State) picker.State {
		return set(st, date)
	})
}

// transition replaces the session state with next(current). A transition
// that ends without an error is a new selection: it is classified and the
// consumer is notified once the lock is released.
func (s *pickerService) transition(ctx context.Context, key entity.SessionKey, next func(picker.State) picker.State) (*entity.Outcome, error) {
	s.mu.Lock()
	s.sweep()

	prev := s.current(key)
	state := next(prev)
	outcome := &entity.Outcome{}

	if state.Err == nil {
		if r, ok := state.Range(); ok {
			classified, err := picker.Classify(r)
			if err != nil {
				state = prev.Reject(err)
			} else {
				notification := picker.NewNotification(r, classified)
				outcome.Classified = &classified
				outcome.Notification = &notification
			}
		}
	}

	outcome.State = state
	s.sessions[key] = &session{state: state, touched: s.now()}
	s.mu.Unlock()

	fields := append(sessionFields(key), zap.String("status", string(state.Status())))
	if state.Err != nil {
		s.log.Info("selection rejected", append(fields, zap.String("code", string(state.Err.Code)))...)
		return outcome, nil
	}

	if !outcome.Selected() {
		return outcome, nil
	}

	s.log.Info("range selected", append(fields,
		zap.String("start", state.Start.String()),
		zap.String("end", state.End.String()),
		zap.Int("weekdays", len(outcome.Classified.Weekdays)),
		zap.Int("weekends", len(outcome.Classified.Weekends)),
	)...)

	target := contract.NotifyTarget{SlackChannelID: key.ChannelID, SlackUserID: key.UserID}
	if err := s.notifier.Notify(ctx, target, *outcome.Notification); err != nil {
		s.log.Error("failed to notify consumer", append(fields, zap.Error(err))...)
		return outcome, fmt.Errorf("failed to notify selection consumer: %w", err)
	}

	return outcome, nil
}

// current must be called with mu held
func (s *pickerService) current(key entity.SessionKey) picker.State {
	if sess, ok := s.sessions[key]; ok {
		return sess.state
	}
	return picker.Clear()
}

// sweep drops idle sessions; must be called with mu held
func (s *pickerService) sweep() {
	if s.opts.SessionTTL <= 0 {
		return
	}

	cutoff := s.now().Add(-s.opts.SessionTTL)
	for key, sess := range s.sessions {
		if sess.touched.Before(cutoff) {
			delete(s.sessions, key)
		}
	}
}

func sessionFields(key entity.SessionKey) []zap.Field {
	return []zap.Field{
		zap.String("team_id", key.TeamID),
		zap.String("channel_id", key.ChannelID),
		zap.String("user_id", key.UserID),
	}
}
