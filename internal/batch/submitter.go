package batch

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/rozsival/tyr-worklog-creator/internal/calendar"
	"github.com/rozsival/tyr-worklog-creator/internal/tempo"
	"go.uber.org/zap"
)

// WorklogCreator is the single API operation the submitter needs.
type WorklogCreator interface {
	CreateWorklog(ctx context.Context, input tempo.WorklogInput) (*tempo.Worklog, error)
}

// Payload carries the fields shared by every submission of one batch.
type Payload struct {
	Comment   string
	TimeSpent string
	Project   string
	Ticket    string
}

// Validate rejects payloads that must never reach the API.
func (p Payload) Validate() error {
	if p.Comment == "" {
		return fmt.Errorf("comment must not be empty")
	}
	if p.TimeSpent == "" {
		return fmt.Errorf("time spent must not be empty")
	}
	if p.Project == "" {
		return fmt.Errorf("project must not be empty")
	}
	if p.Ticket == "" {
		return fmt.Errorf("ticket must not be empty")
	}
	return nil
}

// State tracks a single submission through its lifecycle. Terminal states
// are final; a day is never re-attempted.
type State int

const (
	Pending State = iota
	Sent
	Succeeded
	Failed
)

func (s State) String() string {
	switch s {
	case Pending:
		return "pending"
	case Sent:
		return "sent"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// DayResult is the outcome of one day's submission.
type DayResult struct {
	Day       calendar.WorkDay
	State     State
	WorklogID string
	Err       error
}

// Result summarizes one batch run.
type Result struct {
	Total     int
	Succeeded int
	Failed    int
	Days      []DayResult
	Duration  time.Duration
}

// Submitter creates one worklog per selected day.
type Submitter struct {
	client WorklogCreator
	logger *zap.Logger
}

// NewSubmitter creates a new batch submitter.
func NewSubmitter(client WorklogCreator, logger *zap.Logger) *Submitter {
	return &Submitter{
		client: client,
		logger: logger,
	}
}

// Run submits one worklog per day, sequentially in ascending date order,
// awaiting each outcome before the next. A failed day is recorded and the
// batch continues; there are no retries and no rollback of earlier
// successes. The returned error covers precondition failures only — once
// submission starts, failures live in the per-day results.
func (s *Submitter) Run(ctx context.Context, days []calendar.WorkDay, payload Payload) (*Result, error) {
	if err := payload.Validate(); err != nil {
		return nil, err
	}

	ordered := make([]calendar.WorkDay, len(days))
	copy(ordered, days)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].Before(ordered[j].Time)
	})

	start := time.Now()
	result := &Result{
		Total: len(ordered),
		Days:  make([]DayResult, 0, len(ordered)),
	}

	for _, day := range ordered {
		input := tempo.NewWorklogInput(day.Time, payload.Comment, payload.TimeSpent, payload.Project, payload.Ticket)
		dayResult := DayResult{Day: day, State: Sent}

		worklog, err := s.client.CreateWorklog(ctx, input)
		if err != nil {
			dayResult.State = Failed
			dayResult.Err = err
			result.Failed++

			s.logger.Warn("Worklog submission failed",
				zap.String("day", day.Format("2006-01-02")),
				zap.Error(err))
		} else {
			dayResult.State = Succeeded
			dayResult.WorklogID = worklog.ID
			result.Succeeded++

			s.logger.Info("Worklog submitted",
				zap.String("day", day.Format("2006-01-02")),
				zap.String("worklog_id", worklog.ID))
		}

		result.Days = append(result.Days, dayResult)
	}

	result.Duration = time.Since(start)

	s.logger.Info("Batch finished",
		zap.Int("total", result.Total),
		zap.Int("succeeded", result.Succeeded),
		zap.Int("failed", result.Failed),
		zap.Duration("duration", result.Duration))

	return result, nil
}
