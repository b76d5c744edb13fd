package report

import (
	"time"

	"github.com/google/uuid"

	"github.com/footprint-tools/cmdr/internal/dispatchers"
	"github.com/footprint-tools/cmdr/internal/domain"
)

// Recorder is a dispatchers.StatusHandler that journals every status of a
// run to a history store. It never stops the run: storage failures are
// logged and the status is dropped.
type Recorder struct {
	store  domain.HistoryStore
	logger domain.Logger
	runID  string
	seq    int
	now    func() time.Time
}

// NewRecorder creates a Recorder with a fresh run id.
func NewRecorder(store domain.HistoryStore, logger domain.Logger) *Recorder {
	return &Recorder{
		store:  store,
		logger: logger,
		runID:  uuid.NewString(),
		now:    time.Now,
	}
}

// RunID returns the id shared by all entries this recorder writes.
func (r *Recorder) RunID() string {
	return r.runID
}

// Recorded returns the number of entries written so far.
func (r *Recorder) Recorded() int {
	return r.seq
}

// Handle implements dispatchers.StatusHandler.
func (r *Recorder) Handle(status dispatchers.CommandStatus) int {
	entry := domain.HistoryEntry{
		RunID:     r.runID,
		Seq:       r.seq,
		Command:   status.Name,
		OK:        status.IsOK(),
		Message:   status.Msg,
		Timestamp: r.now(),
	}

	if _, err := r.store.Insert(entry); err != nil {
		r.logger.Error("report: record %s: %v", status.Name, err)
		return dispatchers.Continue
	}

	r.seq++
	return dispatchers.Continue
}

var _ dispatchers.StatusHandler = (*Recorder)(nil)
