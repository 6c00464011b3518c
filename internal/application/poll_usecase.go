package application

import (
	"context"
	"time"

	"github.com/davarch/homework-watcher/internal/domain"
	"go.uber.org/zap"
)

type PollConfig struct {
	ChatID string
	// Timeout bounds each fetch and each dispatch. Zero means no extra bound.
	Timeout time.Duration
	// Watermark is the initial from_date.
	Watermark int64
}

// Outcome describes one finished cycle.
type Outcome struct {
	Kind        domain.Kind
	Err         error
	Text        string
	Notified    bool
	DispatchErr error
	Watermark   int64
}

type PollUseCase struct {
	log    *zap.Logger
	src    domain.Fetcher
	out    domain.Dispatcher
	cache  domain.StatusCache
	chatID string
	limit  time.Duration
	now    func() time.Time

	tracker   ChangeTracker
	watermark int64
}

func NewPollUseCase(l *zap.Logger, src domain.Fetcher, out domain.Dispatcher, cache domain.StatusCache, pc PollConfig) *PollUseCase {
	if l == nil {
		l = zap.NewNop()
	}
	return &PollUseCase{
		log: l, src: src, out: out, cache: cache,
		chatID:    pc.ChatID,
		limit:     pc.Timeout,
		now:       time.Now,
		watermark: pc.Watermark,
	}
}

func (uc *PollUseCase) Watermark() int64 { return uc.watermark }

func (uc *PollUseCase) LastNotified() string { return uc.tracker.Last() }

// PollOnce runs fetch, validate, translate, compare and notify. Errors never
// escape: a failed stage becomes a failure notification guarded by the same
// dedup check as status notifications.
func (uc *PollUseCase) PollOnce(ctx context.Context) Outcome {
	text, err := uc.check(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return Outcome{Kind: domain.KindOf(err), Err: err, Watermark: uc.watermark}
		}

		kind := domain.KindOf(err)
		uc.log.Error("poll failed",
			zap.String("kind", string(kind)),
			zap.Int64("from_date", uc.watermark),
			zap.Error(err),
		)

		o := Outcome{Kind: kind, Err: err, Text: domain.FailureNotification(err).Text}
		o.Notified, o.DispatchErr = uc.notify(ctx, o.Text, kind)
		o.Watermark = uc.watermark
		return o
	}

	o := Outcome{Text: text, Watermark: uc.watermark}
	if text != "" {
		o.Notified, o.DispatchErr = uc.notify(ctx, text, domain.KindNone)
	}
	return o
}

func (uc *PollUseCase) check(ctx context.Context) (string, error) {
	fctx, cancel := uc.bounded(ctx)
	payload, err := uc.src.Fetch(fctx, uc.watermark)
	cancel()
	if err != nil {
		return "", err
	}

	batch, err := domain.Validate(payload)
	if err != nil {
		return "", err
	}

	if len(batch.Items) == 0 {
		uc.advance(batch.CurrentDate, batch.HasCurrentDate)
		uc.log.Debug("no status updates", zap.Int64("from_date", uc.watermark))
		return "", nil
	}

	// a failed item leaves the window in place so it is fetched again
	it, err := domain.Extract(batch.Items[0])
	if err != nil {
		return "", err
	}

	n, err := domain.Render(it)
	if err != nil {
		return "", err
	}

	if it.HasObservedAt {
		uc.advance(it.ObservedAt, true)
	} else {
		uc.advance(batch.CurrentDate, batch.HasCurrentDate)
	}
	return n.Text, nil
}

// advance moves the watermark forward; it never goes back.
func (uc *PollUseCase) advance(ts int64, ok bool) {
	if !ok {
		return
	}
	if ts < uc.watermark {
		uc.log.Debug("stale current_date ignored",
			zap.Int64("current_date", ts),
			zap.Int64("watermark", uc.watermark),
		)
		return
	}
	uc.watermark = ts
}

func (uc *PollUseCase) notify(ctx context.Context, text string, kind domain.Kind) (bool, error) {
	if !uc.tracker.HasChanged(text) {
		uc.log.Debug("status unchanged")
		return false, nil
	}

	dctx, cancel := uc.bounded(ctx)
	err := uc.out.Send(dctx, uc.chatID, text)
	cancel()
	uc.tracker.Record(text)

	if err != nil {
		derr := &domain.DispatchError{Err: err}
		uc.log.Error("notification not delivered", zap.String("text", text), zap.Error(derr))
		return true, derr
	}
	uc.log.Info("notification sent", zap.String("text", text))

	if uc.cache != nil {
		snap := domain.Snapshot{
			Text: text, Kind: kind, Watermark: uc.watermark, Retrieved: uc.now().Unix(),
		}
		if err := uc.cache.Write(ctx, snap); err != nil {
			uc.log.Warn("status snapshot not written", zap.Error(err))
		}
	}
	return true, nil
}

func (uc *PollUseCase) bounded(ctx context.Context) (context.Context, context.CancelFunc) {
	if uc.limit <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, uc.limit)
}
