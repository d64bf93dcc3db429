package activity

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/aw-dashboard/dashboard-api/internal/activitywatch"
	"golang.org/x/sync/errgroup"
)

const (
	defaultWindow        = 7 * 24 * time.Hour
	defaultMaxConcurrent = 4
)

var ErrHostNotFound = errors.New("host not found")

// Upstream is the subset of the ActivityWatch API the service reads.
type Upstream interface {
	Buckets(ctx context.Context) (activitywatch.Buckets, error)
	Events(ctx context.Context, bucketID string, start, end time.Time) ([]activitywatch.Event, error)
	Info(ctx context.Context) (activitywatch.ServerInfo, error)
}

type Service struct {
	upstream      Upstream
	classifier    *Classifier
	maxConcurrent int
	now           func() time.Time
}

func NewService(upstream Upstream, classifier *Classifier, maxConcurrentFetches int) *Service {
	if classifier == nil {
		classifier = NewClassifier(nil, nil)
	}
	if maxConcurrentFetches < 1 {
		maxConcurrentFetches = defaultMaxConcurrent
	}
	return &Service{
		upstream:      upstream,
		classifier:    classifier,
		maxConcurrent: maxConcurrentFetches,
		now:           time.Now,
	}
}

// ListHosts returns one host per window-focus bucket, in upstream order.
func (s *Service) ListHosts(ctx context.Context) ([]Host, error) {
	buckets, err := s.windowBuckets(ctx)
	if err != nil {
		return nil, err
	}

	hosts := make([]Host, len(buckets))
	for i, b := range buckets {
		hosts[i] = hostFromBucket(b)
	}
	return hosts, nil
}

func (s *Service) GetHost(ctx context.Context, hostID string) (*Host, error) {
	buckets, err := s.windowBuckets(ctx)
	if err != nil {
		return nil, err
	}

	for _, b := range buckets {
		if b.ID == hostID {
			host := hostFromBucket(b)
			return &host, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrHostNotFound, hostID)
}

// HostMetrics aggregates the events of one host between start and end.
// Only the total and the keyword categories are computed; idle and AFK
// time are reported as zero.
func (s *Service) HostMetrics(ctx context.Context, hostID, start, end string) (*Metrics, error) {
	startTime, endTime, err := parseWindow(start, end)
	if err != nil {
		return nil, err
	}

	events, err := s.upstream.Events(ctx, hostID, startTime, endTime)
	if err != nil {
		return nil, err
	}

	m := &Metrics{
		HostID:       hostID,
		Period:       fmt.Sprintf("%s to %s", start, end),
		WorkingHours: WorkingHoursSeconds,
	}

	for _, e := range events {
		m.TotalTime += e.Duration
		switch s.classifier.Classify(e.DataString("app")) {
		case CategoryProductive:
			m.ProductiveTime += e.Duration
		case CategoryNeutral:
			m.NeutralTime += e.Duration
		default:
			m.DistractingTime += e.Duration
		}
	}

	m.ActiveTime = m.TotalTime
	m.Overtime = max(0, m.TotalTime-WorkingHoursSeconds)
	if m.TotalTime > 0 {
		m.ProductivityScore = m.ProductiveTime / m.TotalTime * 100
	}

	slog.Debug("Computed host metrics",
		"host_id", hostID,
		"events", len(events),
		"total_time", m.TotalTime,
		"productivity_score", m.ProductivityScore)

	return m, nil
}

// ListEvents returns one page of window events, either for a single host or
// for every window-focus bucket concatenated in upstream listing order.
func (s *Service) ListEvents(ctx context.Context, q EventQuery) (*EventPage, error) {
	now := s.now()
	start, end := q.Start, q.End
	if start == "" {
		start = now.Add(-defaultWindow).Format(time.RFC3339Nano)
	}
	if end == "" {
		end = now.Format(time.RFC3339Nano)
	}

	startTime, endTime, err := parseWindow(start, end)
	if err != nil {
		return nil, err
	}

	var events []Event
	if q.HostID != "" {
		events, err = s.hostEvents(ctx, q.HostID, startTime, endTime)
	} else {
		events, err = s.allEvents(ctx, startTime, endTime)
	}
	if err != nil {
		return nil, err
	}

	page, pagination, err := Paginate(events, q.Page, q.Limit)
	if err != nil {
		return nil, err
	}

	return &EventPage{Events: page, Pagination: pagination}, nil
}

// Status reports the upstream server info.
func (s *Service) Status(ctx context.Context) (activitywatch.ServerInfo, error) {
	return s.upstream.Info(ctx)
}

func (s *Service) windowBuckets(ctx context.Context) ([]activitywatch.Bucket, error) {
	buckets, err := s.upstream.Buckets(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]activitywatch.Bucket, 0, len(buckets))
	for _, b := range buckets {
		if b.Type == activitywatch.BucketTypeCurrentWindow {
			result = append(result, b)
		}
	}
	return result, nil
}

func (s *Service) hostEvents(ctx context.Context, hostID string, start, end time.Time) ([]Event, error) {
	raw, err := s.upstream.Events(ctx, hostID, start, end)
	if err != nil {
		return nil, err
	}

	events := make([]Event, len(raw))
	for i, e := range raw {
		events[i] = eventFromUpstream(hostID, e)
	}
	return events, nil
}

func (s *Service) allEvents(ctx context.Context, start, end time.Time) ([]Event, error) {
	buckets, err := s.windowBuckets(ctx)
	if err != nil {
		return nil, err
	}

	perBucket := make([][]Event, len(buckets))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxConcurrent)
	for i, b := range buckets {
		g.Go(func() error {
			events, err := s.hostEvents(gctx, b.ID, start, end)
			if err != nil {
				return err
			}
			perBucket[i] = events
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, events := range perBucket {
		total += len(events)
	}
	all := make([]Event, 0, total)
	for _, events := range perBucket {
		all = append(all, events...)
	}
	return all, nil
}

func hostFromBucket(b activitywatch.Bucket) Host {
	return Host{
		ID:       b.ID,
		Name:     b.Hostname,
		Hostname: b.Hostname,
		Platform: PlatformFromHostname(b.Hostname),
		LastSeen: b.LastUpdated,
		IsOnline: true,
		Version:  HostVersion,
		Timezone: HostTimezone,
	}
}

// Listed events are not classified; every one is reported as productive.
func eventFromUpstream(hostID string, e activitywatch.Event) Event {
	return Event{
		ID:        strconv.FormatInt(e.ID, 10),
		HostID:    hostID,
		Timestamp: e.Timestamp,
		Duration:  e.Duration,
		Type:      EventTypeApp,
		App:       e.DataString("app"),
		Title:     e.DataString("title"),
		Category:  CategoryProductive,
	}
}
