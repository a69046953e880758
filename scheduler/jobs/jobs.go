package jobs

import (
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
	"gorm.io/gorm"
)

// Everything the jobs run against.
// DB may be nil, the reference job is skipped without it.
type Deps struct {
	Versions       VersionRefresher
	DB             *gorm.DB
	VersionRefresh time.Duration
}

// Register adds the jobs to the scheduler, each one also runs once right away.
func Register(s gocron.Scheduler, deps *Deps) error {
	_, err := s.NewJob(
		gocron.DurationJob(deps.VersionRefresh),
		gocron.NewTask(
			RefreshVersions,
			deps.Versions,
		),
		gocron.WithName("ddragon-version-refresh"),
		gocron.WithTags("assets"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.JobOption(gocron.WithStartImmediately()),
	)
	if err != nil {
		return fmt.Errorf("failed to create version job: %w", err)
	}

	if deps.DB == nil {
		return nil
	}

	// Register the reference seeding job - once per day at 4:00 AM.
	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(4, 0, 0),
			),
		),
		gocron.NewTask(
			SeedReferences,
			deps.DB,
		),
		gocron.WithName("rank-reference-seed"),
		gocron.WithTags("references"),
		gocron.JobOption(gocron.WithStartImmediately()),
	)
	if err != nil {
		return fmt.Errorf("failed to create reference job: %w", err)
	}

	return nil
}
