package task

import "time"

// DailyTask executes a task once per day at a fixed wall-clock time asynchronously
type DailyTask struct {
	task     func()
	hour     int
	minute   int
	location *time.Location

	running bool
	stop    chan struct{}
}

// NewDaily creates a new daily asynchronous task firing at the given wall-clock time in the
// given location
func NewDaily(task func(), hour, minute int, location *time.Location) *DailyTask {
	return &DailyTask{
		task:     task,
		hour:     hour,
		minute:   minute,
		location: location,
	}
}

// Start starts the daily task.
// If the task is already running, this is a no-op.
func (task *DailyTask) Start() {
	if task.running {
		return
	}
	task.running = true
	task.stop = make(chan struct{})
	go func(stop chan struct{}) {
		for {
			select {
			case <-time.After(task.untilNextRun()):
				task.task()
			case <-stop:
				return
			}
		}
	}(task.stop)
}

// Stop stops the daily task.
// If the task is not running, this is a no-op.
func (task *DailyTask) Stop() {
	if !task.running {
		return
	}
	close(task.stop)
	task.running = false
}

// untilNextRun computes the duration until the next configured wall-clock time
func (task *DailyTask) untilNextRun() time.Duration {
	now := time.Now().In(task.location)
	next := time.Date(now.Year(), now.Month(), now.Day(), task.hour, task.minute, 0, 0, task.location)
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next.Sub(now)
}
