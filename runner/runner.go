package runner

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/IotA-asce/TSP-visualization/geom"
	"github.com/IotA-asce/TSP-visualization/tsp"
)

// ErrJobNotFound is returned when an ID does not identify a submitted job.
var ErrJobNotFound = errors.New("runner: job not found")

// State is the lifecycle phase of a Job.
type State string

const (
	StatePending   State = "pending"
	StateRunning   State = "running"
	StateCompleted State = "completed"
	StateFailed    State = "failed"
	StateCancelled State = "cancelled"
)

// Job is one background solve. All mutable state is guarded by the owning
// Runner's lock; accessors are safe from any goroutine.
type Job struct {
	id     string
	r      *Runner
	cancel context.CancelFunc
	done   chan struct{}

	// guarded by r.mu
	state   State
	result  tsp.Result
	err     error
	started time.Time
	ended   time.Time
}

// ID returns the job's UUID.
func (j *Job) ID() string { return j.id }

// State returns the current lifecycle phase.
func (j *Job) State() State {
	j.r.mu.RLock()
	defer j.r.mu.RUnlock()

	return j.state
}

// Done is closed when the job reaches a terminal state.
func (j *Job) Done() <-chan struct{} { return j.done }

// Cancel requests cooperative termination. The engine unwinds at its next
// checkpoint and the job lands in StateCancelled with the best tour found
// so far. Cancelling a finished job is a no-op.
func (j *Job) Cancel() { j.cancel() }

// Wait blocks until the job finishes or ctx expires. Completed and
// cancelled jobs both return their Result (a cancelled solve still carries
// a valid, unconverged tour); failed jobs return the validation error.
func (j *Job) Wait(ctx context.Context) (tsp.Result, error) {
	select {
	case <-ctx.Done():
		return tsp.Result{}, ctx.Err()
	case <-j.done:
	}

	j.r.mu.RLock()
	defer j.r.mu.RUnlock()

	if j.state == StateFailed {
		return tsp.Result{}, j.err
	}

	return j.result, nil
}

// Elapsed reports how long the job has been (or was) running.
func (j *Job) Elapsed() time.Duration {
	j.r.mu.RLock()
	defer j.r.mu.RUnlock()

	if j.ended.IsZero() {
		return time.Since(j.started)
	}

	return j.ended.Sub(j.started)
}

// Runner manages background solve jobs. The zero value is not usable;
// construct with New. Safe for concurrent use.
type Runner struct {
	mu   sync.RWMutex
	jobs map[string]*Job
	log  *slog.Logger
}

// New returns a Runner logging through logger (slog.Default when nil).
func New(logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}

	return &Runner{
		jobs: make(map[string]*Job),
		log:  logger,
	}
}

// Submit registers a solve job and starts it on its own goroutine. The
// point slice is copied, so the caller may keep mutating its own buffer
// (the visualizer does, on every drag). opts.Ctx, when set, acts as the
// parent context; Cancel works either way.
func (r *Runner) Submit(points []geom.Vec, opts tsp.Options) *Job {
	var parent = opts.Ctx
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancel(parent)
	opts.Ctx = ctx

	var job = &Job{
		id:      uuid.New().String(),
		r:       r,
		cancel:  cancel,
		done:    make(chan struct{}),
		state:   StatePending,
		started: time.Now(),
	}

	r.mu.Lock()
	r.jobs[job.id] = job
	r.mu.Unlock()

	var pts = make([]geom.Vec, len(points))
	copy(pts, points)

	go r.run(ctx, job, pts, opts)

	return job
}

// Get retrieves a job by ID.
func (r *Runner) Get(id string) (*Job, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	job, ok := r.jobs[id]

	return job, ok
}

// Jobs returns all known jobs, newest state included.
func (r *Runner) Jobs() []*Job {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out = make([]*Job, 0, len(r.jobs))
	for _, job := range r.jobs {
		out = append(out, job)
	}

	return out
}

// Cancel requests termination of the job with the given ID.
func (r *Runner) Cancel(id string) error {
	job, ok := r.Get(id)
	if !ok {
		return ErrJobNotFound
	}
	job.Cancel()

	return nil
}

// run executes one job and records its terminal state.
func (r *Runner) run(ctx context.Context, job *Job, pts []geom.Vec, opts tsp.Options) {
	defer close(job.done)

	r.mu.Lock()
	job.state = StateRunning
	r.mu.Unlock()

	r.log.Info("Starting solve job",
		"job_id", job.id, "points", len(pts), "strategy", opts.Strategy.String())

	res, err := tsp.Solve(pts, opts)

	r.mu.Lock()
	defer r.mu.Unlock()
	job.ended = time.Now()

	switch {
	case err != nil:
		job.state = StateFailed
		job.err = err
		r.log.Error("Solve job failed", "job_id", job.id, "error", err)

	case ctx.Err() != nil:
		// Cooperative cancellation: the engine returned its best-so-far
		// tour with Converged == false.
		job.state = StateCancelled
		job.result = res
		r.log.Info("Solve job cancelled", "job_id", job.id, "length", res.Length)

	default:
		job.state = StateCompleted
		job.result = res
		r.log.Info("Solve job completed",
			"job_id", job.id, "length", res.Length,
			"iterations", res.Iterations, "converged", res.Converged)
	}
}
