package workers

// Workers runs a set of workers in registration order.
type Workers struct {
	workers []Worker
}

// NewWorkers groups the given workers into one runnable aggregate.
func NewWorkers(ws ...Worker) *Workers {
	return &Workers{workers: ws}
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}
