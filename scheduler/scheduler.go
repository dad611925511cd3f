// scheduler/scheduler.go
package scheduler

import (
	"log"

	"randevuapi/services/ratelimit"

	"github.com/robfig/cron/v3"
)

// StartScheduler prunes expired rate-limit windows on the cron schedule. The caller
// stops the returned cron on shutdown.
func StartScheduler(schedule string, store *ratelimit.MemoryStore) (*cron.Cron, error) {
	c := cron.New(cron.WithSeconds())

	_, err := c.AddFunc(schedule, func() {
		if n := store.Sweep(); n > 0 {
			log.Printf("Rate limit sweep removed %d expired windows", n)
		}
	})
	if err != nil {
		return nil, err
	}

	c.Start()
	log.Println("Scheduler started")
	return c, nil
}
