package dashboard

import "github.com/dmitrijs2005/qwik2do/internal/client/models"

type Status int

const (
	StatusLoading Status = iota
	StatusReady
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusReady:
		return "ready"
	default:
		return "unknown"
	}
}

// Snapshot is the view state of the dashboard. A nil Identity means nobody
// is signed in and Tasks is then always empty.
type Snapshot struct {
	Status     Status
	Identity   *models.Identity
	Tasks      []models.Task
	Background string
	Weather    *models.Weather
	Clock      string
	Date       string
	Pending    string
}

func (s Snapshot) clone() Snapshot {
	out := s
	if s.Identity != nil {
		id := *s.Identity
		out.Identity = &id
	}
	if s.Weather != nil {
		w := *s.Weather
		out.Weather = &w
	}
	if s.Tasks != nil {
		out.Tasks = make([]models.Task, len(s.Tasks))
		copy(out.Tasks, s.Tasks)
	}
	return out
}
