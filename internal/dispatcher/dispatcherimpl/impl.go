package dispatcherimpl

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/jonboulle/clockwork"
	"github.com/orgball2608/post-pilot/internal/dispatcher"
	"github.com/orgball2608/post-pilot/internal/domain"
	"github.com/orgball2608/post-pilot/internal/publisher"
	"github.com/orgball2608/post-pilot/internal/ratelimit"
	"github.com/orgball2608/post-pilot/internal/repositories/integration"
	"github.com/orgball2608/post-pilot/internal/repositories/postgroup"
	"github.com/orgball2608/post-pilot/pkg/config"
	"github.com/orgball2608/post-pilot/pkg/logger"
	"github.com/orgball2608/post-pilot/pkg/retry"
	"github.com/panjf2000/ants/v2"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	GroupRepo       postgroup.Repository
	IntegrationRepo integration.Repository
	Publisher       publisher.Client
	Logger          logger.Logger
	Config          *config.Config
	Clock           clockwork.Clock `optional:"true"`
}

type DispatcherImpl struct {
	GroupRepo       postgroup.Repository
	IntegrationRepo integration.Repository
	Publisher       publisher.Client
	Logger          logger.Logger
	Config          *config.Config
	Clock           clockwork.Clock
	Limiter         ratelimit.Limiter
}

func New(opts Opts) *DispatcherImpl {
	clock := opts.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &DispatcherImpl{
		GroupRepo:       opts.GroupRepo,
		IntegrationRepo: opts.IntegrationRepo,
		Publisher:       opts.Publisher,
		Logger:          opts.Logger.WithComponent("Dispatcher"),
		Config:          opts.Config,
		Clock:           clock,
		Limiter:         ratelimit.NewInMemoryLimiter(opts.Config.Dispatcher.PublishPerMinute, time.Minute, 3),
	}
}

var _ dispatcher.Client = (*DispatcherImpl)(nil)

// ScheduleDispatch sets up the polling job that publishes due groups.
func (d *DispatcherImpl) ScheduleDispatch(ctx context.Context) error {
	scheduler, err := gocron.NewScheduler(gocron.WithLocation(time.UTC))
	if err != nil {
		return fmt.Errorf("failed to create dispatch scheduler: %w", err)
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(time.Duration(d.Config.Dispatcher.PollSeconds)*time.Second),
		gocron.NewTask(func() {
			if ctx.Err() != nil {
				d.Logger.Info("Context cancelled, stopping dispatch job")
				return
			}
			d.dispatchDue(ctx)
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to schedule dispatch: %w", err)
	}

	scheduler.Start()

	go func() {
		<-ctx.Done()
		d.Logger.Info("Stopping dispatch scheduler")
		if err := scheduler.Shutdown(); err != nil {
			d.Logger.Error("Failed to shut down dispatch scheduler", "error", err)
		}
	}()

	return nil
}

func (d *DispatcherImpl) dispatchDue(ctx context.Context) {
	taskCtx, cancel := context.WithTimeout(ctx, 5*time.Minute)
	defer cancel()

	due, err := d.GroupRepo.ListDue(taskCtx, d.Clock.Now().UTC(), d.Config.Dispatcher.BatchSize)
	if err != nil {
		d.Logger.Error("Failed to list due post groups", "error", err)
		return
	}
	if len(due) == 0 {
		return
	}

	d.Logger.Info("Found due post groups", "count", len(due))

	pool, err := ants.NewPool(d.Config.Dispatcher.Workers, ants.WithPreAlloc(true))
	if err != nil {
		d.Logger.Error("Failed to create worker pool", "error", err)
		return
	}
	defer pool.Release()

	var wg sync.WaitGroup
	for _, group := range due {
		group := group
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()
			d.publishGroup(taskCtx, group)
		}); err != nil {
			wg.Done()
			d.Logger.Error("Failed to submit publish job", "group_id", group.GroupID, "error", err)
		}
	}
	wg.Wait()
}

func (d *DispatcherImpl) publishGroup(ctx context.Context, group *domain.PostGroup) {
	integ, err := d.IntegrationRepo.GetByID(ctx, group.OrganizationID, group.IntegrationID)
	if err != nil {
		if errors.Is(err, integration.ErrNotFound) {
			d.Logger.Error("Integration gone, marking group as errored",
				"group_id", group.GroupID,
				"integration_id", group.IntegrationID,
			)
			d.markError(ctx, group)
			return
		}
		d.Logger.Error("Failed to load integration", "group_id", group.GroupID, "error", err)
		return
	}
	if !integ.Available() {
		// leave the group queued until the channel is reconnected
		d.Logger.Warn("Integration unavailable, skipping",
			"group_id", group.GroupID,
			"integration_id", integ.ID,
		)
		return
	}

	if !d.Limiter.Allow(integ.ID) {
		d.Logger.Warn("Publish rate limited, leaving group queued",
			"group_id", group.GroupID,
			"integration_id", integ.ID,
		)
		return
	}

	var releaseURL string
	err = retry.Do(ctx, d.Logger, "publish post group", func() error {
		url, err := d.Publisher.Publish(ctx, group)
		if err != nil {
			return err
		}
		releaseURL = url
		return nil
	}, retry.PublishConfig())
	if err != nil {
		d.Logger.Error("Publishing failed", "group_id", group.GroupID, "error", err)
		d.markError(ctx, group)
		d.Publisher.NotifyOperator(fmt.Sprintf("Publishing post group %s failed: %v", group.GroupID, err))
		return
	}

	if err := d.GroupRepo.MarkPublished(ctx, group.GroupID, releaseURL); err != nil {
		d.Logger.Error("Failed to mark group as published", "group_id", group.GroupID, "error", err)
		return
	}

	d.Logger.Info("Post group published",
		"group_id", group.GroupID,
		"release_url", releaseURL,
	)
}

func (d *DispatcherImpl) markError(ctx context.Context, group *domain.PostGroup) {
	if err := d.GroupRepo.MarkError(ctx, group.GroupID); err != nil {
		d.Logger.Error("Failed to mark group as errored", "group_id", group.GroupID, "error", err)
	}
}
