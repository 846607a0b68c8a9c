package sprint

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/rs/zerolog"

	"github.com/macrohard/datalens/analyzer/types"
)

// Status defines the column a task sits in on the board.
type Status string

const (
	StatusToDo       Status = "To Do"
	StatusInProgress Status = "In Progress"
	StatusDone       Status = "Done"
)

var allStatuses = []Status{StatusToDo, StatusInProgress, StatusDone}

// UnmarshalText implements encoding.TextUnmarshaler so statuses decoded
// from config are validated at decode time.
func (s *Status) UnmarshalText(text []byte) error {
	status := Status(text)
	for _, known := range allStatuses {
		if status == known {
			*s = status
			return nil
		}
	}
	return fmt.Errorf(types.ErrUnknownStatus.Error(), string(text))
}

// Task defines a single story on the sprint board.
type Task struct {
	ID     int    `mapstructure:"id" json:"id" validate:"required"`
	Title  string `mapstructure:"title" json:"title" validate:"required"`
	Points int    `mapstructure:"points" json:"points" validate:"gte=0"`
	Status Status `mapstructure:"status" json:"status"`
}

// Health classifies the completion state of a sprint.
type Health int

const (
	HealthNeedsAttention Health = iota
	HealthAtRisk
	HealthOnTrack
)

func (h Health) String() string {
	switch h {
	case HealthOnTrack:
		return "On Track"
	case HealthAtRisk:
		return "At Risk"
	default:
		return "Needs Attention"
	}
}

// Board holds the tasks of a single sprint and the random source used to
// simulate progress. The random source is explicit so simulations are
// reproducible in tests and from a configured seed.
type Board struct {
	logger zerolog.Logger
	tasks  []Task
	rng    *rand.Rand
}

// NewBoard returns a board over the given tasks. A nil rng falls back to a
// time-seeded source.
func NewBoard(logger zerolog.Logger, tasks []Task, rng *rand.Rand) *Board {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Board{
		logger: logger.With().Str("module", "sprint").Logger(),
		tasks:  tasks,
		rng:    rng,
	}
}

// Tasks returns the board's tasks in their original order.
func (b *Board) Tasks() []Task {
	return b.tasks
}

// SimulateProgress moves every task to an independently chosen uniformly
// random status.
func (b *Board) SimulateProgress() {
	for i := range b.tasks {
		b.tasks[i].Status = allStatuses[b.rng.Intn(len(allStatuses))]
		b.logger.Debug().
			Int("task_id", b.tasks[i].ID).
			Str("status", string(b.tasks[i].Status)).
			Msg("task moved")
	}
}

// CompletionPercentage returns the story-point weighted share of completed
// work, or 0 when the board carries no points at all.
func (b *Board) CompletionPercentage() float64 {
	totalPoints := 0
	donePoints := 0
	for _, t := range b.tasks {
		totalPoints += t.Points
		if t.Status == StatusDone {
			donePoints += t.Points
		}
	}

	if totalPoints == 0 {
		return 0
	}
	return float64(donePoints) / float64(totalPoints) * 100
}

// Health classifies the sprint by its completion percentage: above 75% is
// on track, above 40% is at risk, anything else needs attention.
func (b *Board) Health() Health {
	percent := b.CompletionPercentage()

	switch {
	case percent > 75:
		return HealthOnTrack
	case percent > 40:
		return HealthAtRisk
	default:
		return HealthNeedsAttention
	}
}
