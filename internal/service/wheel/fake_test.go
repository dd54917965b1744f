package wheel

import (
	"brand_site/internal/model"
	"context"
	"sync"
)

// fakeProfiles повторяет семантику условного UPDATE ... WHERE signature IS NULL
type fakeProfiles struct {
	mu       sync.Mutex
	profiles map[string]*model.Profile
	counts   []model.AwardCount
	err      error
}

func newFakeProfiles(userIDs ...string) *fakeProfiles {
	f := &fakeProfiles{profiles: make(map[string]*model.Profile)}
	for _, id := range userIDs {
		f.profiles[id] = &model.Profile{UserID: id, Role: model.RoleUser}
	}
	return f
}

func (f *fakeProfiles) CreateProfile(_ context.Context, p *model.Profile) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *p
	f.profiles[p.UserID] = &cp
	return nil
}

func (f *fakeProfiles) GetProfile(_ context.Context, userID string) (*model.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	p, ok := f.profiles[userID]
	if !ok {
		return nil, model.ErrProfileNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProfiles) AwardPrize(_ context.Context, userID, prizeName string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.profiles[userID]
	if !ok {
		return model.ErrProfileNotFound
	}
	if p.Signature != nil {
		return model.ErrAlreadySpun
	}
	name := prizeName
	p.Signature = &name
	return nil
}

func (f *fakeProfiles) CountAwards(context.Context) ([]model.AwardCount, error) {
	return f.counts, f.err
}

func (f *fakeProfiles) signature(userID string) *string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.profiles[userID].Signature
}

type staticCatalog struct {
	prizes   []model.Prize
	min, max int
}

func (c staticCatalog) Prizes() []model.Prize   { return c.prizes }
func (c staticCatalog) ExtraTurns() (int, int) { return c.min, c.max }

func abcd() staticCatalog {
	return staticCatalog{
		prizes: []model.Prize{
			{ID: 1, Name: "A"}, {ID: 2, Name: "B"}, {ID: 3, Name: "C"}, {ID: 4, Name: "D"},
		},
		min: 5,
		max: 9,
	}
}

// fixedIntn возвращает заранее заданные значения по кругу
func fixedIntn(values ...int) func(int) int {
	var (
		mu sync.Mutex
		i  int
	)
	return func(n int) int {
		mu.Lock()
		defer mu.Unlock()
		v := values[i%len(values)]
		i++
		if v >= n {
			v = n - 1
		}
		return v
	}
}
