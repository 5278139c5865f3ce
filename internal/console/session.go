package console

import (
	"context"

	"github.com/google/uuid"
)

const restartPrompt = "\nWould you like to restart? Enter yes or no.\n"

// Run repeats sessions until the restart answer is anything but "yes".
// It returns domain.ErrInputClosed when input ends mid-session, and any
// dataset load error as is.
func (c *Console) Run(ctx context.Context) error {
	for {
		if err := c.Session(ctx); err != nil {
			return err
		}
		again, err := c.askYes(restartPrompt)
		if err != nil {
			return err
		}
		if !again {
			return nil
		}
	}
}

// Session runs one pass: collect the filter, load the view, print the four
// reports and hand the view to the paginator.
func (c *Console) Session(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	log := c.log.With("session_id", uuid.NewString())

	f, err := c.CollectFilter()
	if err != nil {
		return err
	}
	c.rec.SessionStarted()
	log.Info("session started", "city", f.City.Name, "month", f.Month, "day", f.Day)

	d, err := c.datasets.Load(ctx, f)
	if err != nil {
		c.rec.LoadFailed()
		log.Error("load failed", "city", f.City.Name, "error", err)
		return err
	}
	c.rec.DatasetLoaded(f.City.Name, d.Unfiltered, d.Len())
	log.Info("dataset loaded", "city", f.City.Name, "rows", d.Len(), "unfiltered", d.Unfiltered)

	for _, r := range c.reports {
		r.run(c.out, d)
	}

	return c.Paginate(d)
}
