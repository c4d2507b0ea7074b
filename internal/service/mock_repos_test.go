package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/stevehanper/beetime-backend/internal/model"
)

// ── Mock UserRepository ──

type mockUserRepo struct {
	users     map[string]*model.User // key: user_id 与 "email:"+email
	histories []model.LocationUser
	seq       int
	failCreateWithHistory bool // 模拟事务失败
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) put(user *model.User) {
	m.users[user.UserID] = user
	m.users["email:"+user.Email] = user
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	if user.UserID == "" {
		m.seq++
		user.UserID = fmt.Sprintf("user-%d", m.seq)
	}
	m.put(user)
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	if u, ok := m.users["email:"+email]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) CreateWithHistory(ctx context.Context, user *model.User, startDate time.Time) error {
	if m.failCreateWithHistory {
		// 事务整体回滚：用户与历史都不落库
		return gorm.ErrInvalidTransaction
	}
	if err := m.Create(ctx, user); err != nil {
		return err
	}
	m.histories = append(m.histories, model.LocationUser{
		UserID:     user.UserID,
		LocationID: *user.LocationID,
		StartDate:  startDate,
	})
	return nil
}

func (m *mockUserRepo) CompleteProfileWithHistory(_ context.Context, user *model.User, startDate time.Time) error {
	m.put(user)
	m.histories = append(m.histories, model.LocationUser{
		UserID:     user.UserID,
		LocationID: *user.LocationID,
		StartDate:  startDate,
	})
	return nil
}

// ── Mock LocationRepository ──

type mockLocationRepo struct {
	locations map[string]*model.Location
}

func newMockLocationRepo() *mockLocationRepo {
	branch := "Circular Quay"
	return &mockLocationRepo{
		locations: map[string]*model.Location{
			"loc-1": {
				LocationID: "loc-1",
				Name:       "Sorrel Cafe & Bar",
				Company:    "Juncafe Opera Pty Ltd",
				Address:    "1 Bay St. Broadway NSW 2007",
			},
			"loc-2": {
				LocationID: "loc-2",
				Name:       "Baskin Robbins",
				Branch:     &branch,
				Company:    "Ice Opera Pty Ltd",
				Address:    "61-63 Macquarie St. Sydney NSW 2000",
			},
		},
	}
}

func (m *mockLocationRepo) GetByID(_ context.Context, id string) (*model.Location, error) {
	if l, ok := m.locations[id]; ok {
		return l, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockLocationRepo) List(_ context.Context) ([]model.Location, error) {
	var result []model.Location
	for _, l := range m.locations {
		result = append(result, *l)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

// ── Mock TimeRecordRepository ──

type mockTimeRecordRepo struct {
	records map[string]*model.TimeRecord
	breaks  map[string]*model.Break
	recSeq  int
	brSeq   int
}

func newMockTimeRecordRepo() *mockTimeRecordRepo {
	return &mockTimeRecordRepo{
		records: make(map[string]*model.TimeRecord),
		breaks:  make(map[string]*model.Break),
	}
}

func (m *mockTimeRecordRepo) Create(_ context.Context, record *model.TimeRecord) error {
	if record.TimeRecordID == "" {
		m.recSeq++
		record.TimeRecordID = fmt.Sprintf("rec-%d", m.recSeq)
	}
	m.records[record.TimeRecordID] = record
	return nil
}

func (m *mockTimeRecordRepo) withBreaks(record *model.TimeRecord) *model.TimeRecord {
	out := *record
	out.Breaks = nil
	for _, br := range m.breaks {
		if br.TimeRecordID == record.TimeRecordID {
			out.Breaks = append(out.Breaks, *br)
		}
	}
	sort.Slice(out.Breaks, func(i, j int) bool {
		return out.Breaks[i].StartTime.Before(out.Breaks[j].StartTime)
	})
	return &out
}

func (m *mockTimeRecordRepo) ListByUser(_ context.Context, userID string) ([]model.TimeRecord, error) {
	var result []model.TimeRecord
	for _, r := range m.records {
		if r.UserID == userID {
			result = append(result, *m.withBreaks(r))
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date.Before(result[j].Date) })
	return result, nil
}

func (m *mockTimeRecordRepo) GetByIDForUser(_ context.Context, id, userID string) (*model.TimeRecord, error) {
	r, ok := m.records[id]
	if !ok || r.UserID != userID {
		return nil, gorm.ErrRecordNotFound
	}
	return m.withBreaks(r), nil
}

func (m *mockTimeRecordRepo) GetOpenByUser(_ context.Context, userID string) (*model.TimeRecord, error) {
	for _, r := range m.records {
		if r.UserID == userID && r.ClockOut == nil {
			return m.withBreaks(r), nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockTimeRecordRepo) Update(_ context.Context, record *model.TimeRecord) error {
	stored := *record
	stored.Breaks = nil
	m.records[record.TimeRecordID] = &stored
	return nil
}

func (m *mockTimeRecordRepo) CreateBreak(_ context.Context, br *model.Break) error {
	if br.BreakID == "" {
		m.brSeq++
		br.BreakID = fmt.Sprintf("br-%d", m.brSeq)
	}
	m.breaks[br.BreakID] = br
	return nil
}

func (m *mockTimeRecordRepo) UpdateBreak(_ context.Context, br *model.Break) error {
	m.breaks[br.BreakID] = br
	return nil
}

func (m *mockTimeRecordRepo) GetOpenBreak(_ context.Context, timeRecordID string) (*model.Break, error) {
	var latest *model.Break
	for _, br := range m.breaks {
		if br.TimeRecordID == timeRecordID && br.EndTime == nil {
			if latest == nil || br.StartTime.After(latest.StartTime) {
				latest = br
			}
		}
	}
	if latest == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return latest, nil
}

// ── Fake GoogleVerifier ──

type fakeGoogleVerifier struct {
	identity *GoogleIdentity
	err      error
}

func (f *fakeGoogleVerifier) Verify(_ context.Context, _ string) (*GoogleIdentity, error) {
	return f.identity, f.err
}
