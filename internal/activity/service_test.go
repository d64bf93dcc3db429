package activity

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/aw-dashboard/dashboard-api/internal/activitywatch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type eventsCall struct {
	BucketID string
	Start    time.Time
	End      time.Time
}

type fakeUpstream struct {
	mu         sync.Mutex
	buckets    activitywatch.Buckets
	events     map[string][]activitywatch.Event
	bucketsErr error
	eventsErr  error
	calls      []eventsCall
}

func (f *fakeUpstream) Buckets(ctx context.Context) (activitywatch.Buckets, error) {
	if f.bucketsErr != nil {
		return nil, f.bucketsErr
	}
	return f.buckets, nil
}

func (f *fakeUpstream) Events(ctx context.Context, bucketID string, start, end time.Time) ([]activitywatch.Event, error) {
	f.mu.Lock()
	f.calls = append(f.calls, eventsCall{BucketID: bucketID, Start: start, End: end})
	f.mu.Unlock()
	if f.eventsErr != nil {
		return nil, f.eventsErr
	}
	return f.events[bucketID], nil
}

func (f *fakeUpstream) Info(ctx context.Context) (activitywatch.ServerInfo, error) {
	return activitywatch.ServerInfo{Version: "v0.12.0"}, nil
}

func appEvent(id int64, app string, duration float64) activitywatch.Event {
	return activitywatch.Event{
		ID:        id,
		Timestamp: time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
		Duration:  duration,
		Data:      map[string]any{"app": app, "title": "title " + app},
	}
}

func sampleBuckets() activitywatch.Buckets {
	lastSeen := time.Date(2024, 1, 2, 9, 30, 0, 0, time.UTC)
	return activitywatch.Buckets{
		{ID: "aw-watcher-window_linux-workstation", Type: "currentwindow", Hostname: "linux-workstation", LastUpdated: lastSeen},
		{ID: "aw-watcher-afk_linux-workstation", Type: "afkstatus", Hostname: "linux-workstation", LastUpdated: lastSeen},
		{ID: "aw-watcher-window_workstation", Type: "currentwindow", Hostname: "workstation", LastUpdated: lastSeen},
	}
}

func TestListHostsKeepsOnlyWindowBuckets(t *testing.T) {
	svc := NewService(&fakeUpstream{buckets: sampleBuckets()}, nil, 0)

	hosts, err := svc.ListHosts(context.Background())
	require.NoError(t, err)
	require.Len(t, hosts, 2)

	assert.Equal(t, "aw-watcher-window_linux-workstation", hosts[0].ID)
	assert.Equal(t, "linux-workstation", hosts[0].Name)
	assert.Equal(t, "linux-workstation", hosts[0].Hostname)
	assert.Equal(t, "linux", hosts[0].Platform)
	assert.True(t, hosts[0].IsOnline)
	assert.Equal(t, HostVersion, hosts[0].Version)
	assert.Equal(t, HostTimezone, hosts[0].Timezone)
	assert.Equal(t, time.Date(2024, 1, 2, 9, 30, 0, 0, time.UTC), hosts[0].LastSeen)

	assert.Equal(t, "aw-watcher-window_workstation", hosts[1].ID)
	assert.Equal(t, "unknown", hosts[1].Platform)
}

func TestListHostsUpstreamError(t *testing.T) {
	svc := NewService(&fakeUpstream{bucketsErr: errors.New("connection refused")}, nil, 0)

	_, err := svc.ListHosts(context.Background())
	assert.EqualError(t, err, "connection refused")
}

func TestGetHost(t *testing.T) {
	svc := NewService(&fakeUpstream{buckets: sampleBuckets()}, nil, 0)

	host, err := svc.GetHost(context.Background(), "aw-watcher-window_workstation")
	require.NoError(t, err)
	assert.Equal(t, "workstation", host.Hostname)

	_, err = svc.GetHost(context.Background(), "aw-watcher-afk_linux-workstation")
	assert.ErrorIs(t, err, ErrHostNotFound)
}

func TestHostMetrics(t *testing.T) {
	up := &fakeUpstream{events: map[string][]activitywatch.Event{
		"host-a": {
			appEvent(1, "vscode", 100),
			appEvent(2, "chrome", 200),
			appEvent(3, "unknown.exe", 300),
		},
	}}
	svc := NewService(up, nil, 0)

	m, err := svc.HostMetrics(context.Background(), "host-a", "2024-01-01T00:00:00Z", "2024-01-02T00:00:00Z")
	require.NoError(t, err)

	assert.Equal(t, "host-a", m.HostID)
	assert.Equal(t, "2024-01-01T00:00:00Z to 2024-01-02T00:00:00Z", m.Period)
	assert.Equal(t, 600.0, m.TotalTime)
	assert.Equal(t, 600.0, m.ActiveTime)
	assert.Equal(t, 100.0, m.ProductiveTime)
	assert.Equal(t, 200.0, m.NeutralTime)
	assert.Equal(t, 300.0, m.DistractingTime)
	assert.Zero(t, m.IdleTime)
	assert.Zero(t, m.AFKTime)
	assert.Equal(t, 28800.0, m.WorkingHours)
	assert.Zero(t, m.Overtime)
	assert.InDelta(t, 16.6666, m.ProductivityScore, 0.001)

	require.Len(t, up.calls, 1)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), up.calls[0].Start.UTC())
	assert.Equal(t, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), up.calls[0].End.UTC())
}

func TestHostMetricsNoEvents(t *testing.T) {
	svc := NewService(&fakeUpstream{}, nil, 0)

	m, err := svc.HostMetrics(context.Background(), "host-a", "2024-01-01T00:00:00Z", "2024-01-02T00:00:00Z")
	require.NoError(t, err)
	assert.Zero(t, m.TotalTime)
	assert.Zero(t, m.ProductivityScore)
}

func TestHostMetricsOvertime(t *testing.T) {
	up := &fakeUpstream{events: map[string][]activitywatch.Event{
		"host-a": {appEvent(1, "Terminal", 30000)},
	}}
	svc := NewService(up, nil, 0)

	m, err := svc.HostMetrics(context.Background(), "host-a", "2024-01-01", "2024-01-02")
	require.NoError(t, err)
	assert.Equal(t, 1200.0, m.Overtime)
	assert.Equal(t, 100.0, m.ProductivityScore)
}

func TestHostMetricsInvalidInput(t *testing.T) {
	svc := NewService(&fakeUpstream{}, nil, 0)

	_, err := svc.HostMetrics(context.Background(), "host-a", "yesterday", "2024-01-02T00:00:00Z")
	assert.ErrorContains(t, err, "invalid isoformat string")

	_, err = svc.HostMetrics(context.Background(), "host-a", "", "2024-01-02T00:00:00Z")
	assert.ErrorContains(t, err, "start is required")

	up := &fakeUpstream{eventsErr: errors.New("upstream down")}
	_, err = NewService(up, nil, 0).HostMetrics(context.Background(), "host-a", "2024-01-01", "2024-01-02")
	assert.EqualError(t, err, "upstream down")
}

func TestListEventsDefaultWindow(t *testing.T) {
	up := &fakeUpstream{}
	svc := NewService(up, nil, 0)
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	_, err := svc.ListEvents(context.Background(), EventQuery{HostID: "host-a", Page: 1, Limit: 100})
	require.NoError(t, err)

	require.Len(t, up.calls, 1)
	assert.True(t, now.Add(-7*24*time.Hour).Equal(up.calls[0].Start))
	assert.True(t, now.Equal(up.calls[0].End))
}

func TestListEventsSingleHost(t *testing.T) {
	up := &fakeUpstream{events: map[string][]activitywatch.Event{
		"host-a": {appEvent(42, "unknown.exe", 5)},
	}}
	svc := NewService(up, nil, 0)

	page, err := svc.ListEvents(context.Background(), EventQuery{HostID: "host-a", Page: 1, Limit: 100})
	require.NoError(t, err)
	require.Len(t, page.Events, 1)

	e := page.Events[0]
	assert.Equal(t, "42", e.ID)
	assert.Equal(t, "host-a", e.HostID)
	assert.Equal(t, EventTypeApp, e.Type)
	assert.Equal(t, "unknown.exe", e.App)
	assert.Equal(t, "title unknown.exe", e.Title)
	assert.Equal(t, CategoryProductive, e.Category, "listed events are not classified")
	assert.Equal(t, 1, page.Pagination.Total)
}

func TestListEventsAllHostsInListingOrder(t *testing.T) {
	up := &fakeUpstream{
		buckets: sampleBuckets(),
		events: map[string][]activitywatch.Event{
			"aw-watcher-window_linux-workstation": {appEvent(1, "code", 1), appEvent(2, "code", 1)},
			"aw-watcher-afk_linux-workstation":    {appEvent(99, "afk", 1)},
			"aw-watcher-window_workstation":       {appEvent(3, "code", 1)},
		},
	}
	svc := NewService(up, nil, 1)

	page, err := svc.ListEvents(context.Background(), EventQuery{Page: 1, Limit: 100})
	require.NoError(t, err)

	ids := make([]string, len(page.Events))
	for i, e := range page.Events {
		ids[i] = e.ID
	}
	assert.Equal(t, []string{"1", "2", "3"}, ids)
	assert.Equal(t, "aw-watcher-window_workstation", page.Events[2].HostID)
}

func TestListEventsPagination(t *testing.T) {
	events := make([]activitywatch.Event, 250)
	for i := range events {
		events[i] = appEvent(int64(i), "code", 1)
	}
	up := &fakeUpstream{events: map[string][]activitywatch.Event{"host-a": events}}
	svc := NewService(up, nil, 0)

	page, err := svc.ListEvents(context.Background(), EventQuery{HostID: "host-a", Page: 3, Limit: 100})
	require.NoError(t, err)
	assert.Len(t, page.Events, 50)
	assert.Equal(t, "200", page.Events[0].ID)
	assert.Equal(t, "249", page.Events[49].ID)
	assert.Equal(t, Pagination{Page: 3, Limit: 100, Total: 250, TotalPages: 3}, page.Pagination)
}

func TestListEventsErrors(t *testing.T) {
	up := &fakeUpstream{buckets: sampleBuckets(), eventsErr: fmt.Errorf("list events: %w", errors.New("timeout"))}
	svc := NewService(up, nil, 0)

	_, err := svc.ListEvents(context.Background(), EventQuery{Page: 1, Limit: 100})
	assert.ErrorContains(t, err, "timeout")

	_, err = NewService(&fakeUpstream{}, nil, 0).ListEvents(context.Background(), EventQuery{HostID: "h", Page: 1, Limit: 0})
	assert.ErrorIs(t, err, ErrInvalidLimit)

	_, err = NewService(&fakeUpstream{}, nil, 0).ListEvents(context.Background(), EventQuery{HostID: "h", Start: "not-a-date", Page: 1, Limit: 10})
	assert.ErrorContains(t, err, "invalid isoformat string")
}
