package cleanup

import (
	"log/slog"
	"sync"
)

type Job struct {
	Name string
	F    func() error
}

var (
	mu   sync.Mutex
	jobs []*Job
)

func Register(j *Job) {
	mu.Lock()
	defer mu.Unlock()
	jobs = append(jobs, j)
}

// CleanUp runs registered jobs in reverse order of registration, so
// resources opened last are released first.
func CleanUp() {
	mu.Lock()
	pending := jobs
	jobs = nil
	mu.Unlock()
	for i := len(pending) - 1; i >= 0; i-- {
		j := pending[i]
		slog.Info("cleanup job started", slog.String("job", j.Name))
		err := j.F()
		if err != nil {
			slog.Error("cleanup job finished with error", slog.String("job", j.Name), slog.String("error", err.Error()))
		} else {
			slog.Info("cleaned", slog.String("job", j.Name))
		}
	}
}
