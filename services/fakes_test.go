package services

import (
	"bytes"
	"context"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/Dosada05/tournament-progression/models"
	"github.com/Dosada05/tournament-progression/repositories"
	"github.com/Dosada05/tournament-progression/storage"
)

// fakeStore is an in-memory stand-in for the postgres schema. Transactions
// snapshot the whole store and restore it when fn fails.
type fakeStore struct {
	mu          sync.Mutex
	nextID      int
	tournaments map[int]models.Tournament
	rosters     map[int][]int
	teams       map[int]models.Team
	groups      map[int]models.Group
	matches     map[int]models.Match
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		tournaments: map[int]models.Tournament{},
		rosters:     map[int][]int{},
		teams:       map[int]models.Team{},
		groups:      map[int]models.Group{},
		matches:     map[int]models.Match{},
	}
}

func (s *fakeStore) id() int {
	s.nextID++
	return s.nextID
}

type fakeSnapshot struct {
	nextID      int
	tournaments map[int]models.Tournament
	rosters     map[int][]int
	teams       map[int]models.Team
	groups      map[int]models.Group
	matches     map[int]models.Match
}

func (s *fakeStore) snapshot() fakeSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := fakeSnapshot{
		nextID:      s.nextID,
		tournaments: map[int]models.Tournament{},
		rosters:     map[int][]int{},
		teams:       map[int]models.Team{},
		groups:      map[int]models.Group{},
		matches:     map[int]models.Match{},
	}
	for k, v := range s.tournaments {
		snap.tournaments[k] = v
	}
	for k, v := range s.rosters {
		snap.rosters[k] = append([]int(nil), v...)
	}
	for k, v := range s.teams {
		snap.teams[k] = v
	}
	for k, v := range s.groups {
		v.Teams = append([]models.GroupMembership(nil), v.Teams...)
		snap.groups[k] = v
	}
	for k, v := range s.matches {
		snap.matches[k] = v
	}
	return snap
}

func (s *fakeStore) restore(snap fakeSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID = snap.nextID
	s.tournaments = snap.tournaments
	s.rosters = snap.rosters
	s.teams = snap.teams
	s.groups = snap.groups
	s.matches = snap.matches
}

type fakeTransactor struct {
	store *fakeStore
	txMu  sync.Mutex
}

func (t *fakeTransactor) WithinTransaction(ctx context.Context, fn func(exec repositories.SQLExecutor) error) error {
	t.txMu.Lock()
	defer t.txMu.Unlock()
	snap := t.store.snapshot()
	if err := fn(nil); err != nil {
		t.store.restore(snap)
		return err
	}
	return nil
}

// --- tournaments ---

type fakeTournamentRepo struct{ s *fakeStore }

func (r fakeTournamentRepo) Create(ctx context.Context, t *models.Tournament) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	t.ID = r.s.id()
	t.CreatedAt = time.Now()
	stored := *t
	stored.Teams = nil
	r.s.tournaments[t.ID] = stored
	return nil
}

func (r fakeTournamentRepo) GetByID(ctx context.Context, exec repositories.SQLExecutor, id int) (*models.Tournament, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	t, ok := r.s.tournaments[id]
	if !ok {
		return nil, repositories.ErrTournamentNotFound
	}
	return &t, nil
}

func (r fakeTournamentRepo) GetByIDForUpdate(ctx context.Context, exec repositories.SQLExecutor, id int) (*models.Tournament, error) {
	return r.GetByID(ctx, exec, id)
}

func (r fakeTournamentRepo) List(ctx context.Context, limit, offset int) ([]*models.Tournament, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	list := make([]*models.Tournament, 0, len(r.s.tournaments))
	for _, t := range r.s.tournaments {
		t := t
		list = append(list, &t)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (r fakeTournamentRepo) UpdateStage(ctx context.Context, exec repositories.SQLExecutor, id int, stage models.TournamentStage) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	t, ok := r.s.tournaments[id]
	if !ok {
		return repositories.ErrTournamentNotFound
	}
	t.Stage = stage
	r.s.tournaments[id] = t
	return nil
}

func (r fakeTournamentRepo) SetTeamAdvances(ctx context.Context, exec repositories.SQLExecutor, id int, teamCount int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	t, ok := r.s.tournaments[id]
	if !ok {
		return repositories.ErrTournamentNotFound
	}
	t.NumberOfTeamAdvances = &teamCount
	r.s.tournaments[id] = t
	return nil
}

func (r fakeTournamentRepo) AddTeam(ctx context.Context, exec repositories.SQLExecutor, tournamentID, teamID int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.tournaments[tournamentID]; !ok {
		return repositories.ErrRegistrationInvalid
	}
	if _, ok := r.s.teams[teamID]; !ok {
		return repositories.ErrRegistrationInvalid
	}
	for _, id := range r.s.rosters[tournamentID] {
		if id == teamID {
			return repositories.ErrTeamAlreadyRegistered
		}
	}
	r.s.rosters[tournamentID] = append(r.s.rosters[tournamentID], teamID)
	return nil
}

func (r fakeTournamentRepo) ListTeamIDs(ctx context.Context, exec repositories.SQLExecutor, tournamentID int) ([]int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return append([]int{}, r.s.rosters[tournamentID]...), nil
}

// --- teams ---

type fakeTeamRepo struct{ s *fakeStore }

func (r fakeTeamRepo) Create(ctx context.Context, team *models.Team) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, t := range r.s.teams {
		if t.Name == team.Name {
			return repositories.ErrTeamNameConflict
		}
	}
	team.ID = r.s.id()
	r.s.teams[team.ID] = *team
	return nil
}

func (r fakeTeamRepo) GetByID(ctx context.Context, id int) (*models.Team, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	t, ok := r.s.teams[id]
	if !ok {
		return nil, repositories.ErrTeamNotFound
	}
	return &t, nil
}

func (r fakeTeamRepo) List(ctx context.Context) ([]*models.Team, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	list := make([]*models.Team, 0, len(r.s.teams))
	for _, t := range r.s.teams {
		t := t
		list = append(list, &t)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}

func (r fakeTeamRepo) ListByIDs(ctx context.Context, exec repositories.SQLExecutor, ids []int) ([]*models.Team, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	list := make([]*models.Team, 0, len(ids))
	for _, id := range ids {
		if t, ok := r.s.teams[id]; ok {
			list = append(list, &t)
		}
	}
	return list, nil
}

func (r fakeTeamRepo) UpdateLogoKey(ctx context.Context, teamID int, logoKey *string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	t, ok := r.s.teams[teamID]
	if !ok {
		return repositories.ErrTeamNotFound
	}
	t.LogoKey = logoKey
	r.s.teams[teamID] = t
	return nil
}

// --- groups ---

type fakeGroupRepo struct{ s *fakeStore }

func copyGroup(g models.Group) *models.Group {
	g.Teams = append([]models.GroupMembership{}, g.Teams...)
	return &g
}

func (r fakeGroupRepo) Create(ctx context.Context, exec repositories.SQLExecutor, g *models.Group) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.groups {
		if existing.TournamentID == g.TournamentID && existing.Name == g.Name {
			return repositories.ErrGroupNameConflict
		}
	}
	g.ID = r.s.id()
	for i := range g.Teams {
		g.Teams[i].ID = r.s.id()
		g.Teams[i].GroupID = g.ID
	}
	r.s.groups[g.ID] = *copyGroup(*g)
	return nil
}

func (r fakeGroupRepo) GetByID(ctx context.Context, exec repositories.SQLExecutor, id int) (*models.Group, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	g, ok := r.s.groups[id]
	if !ok {
		return nil, repositories.ErrGroupNotFound
	}
	return copyGroup(g), nil
}

func (r fakeGroupRepo) GetByIDForUpdate(ctx context.Context, exec repositories.SQLExecutor, id int) (*models.Group, error) {
	return r.GetByID(ctx, exec, id)
}

func (r fakeGroupRepo) ListByTournament(ctx context.Context, exec repositories.SQLExecutor, tournamentID int) ([]*models.Group, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	list := make([]*models.Group, 0)
	for _, g := range r.s.groups {
		if g.TournamentID == tournamentID {
			list = append(list, copyGroup(g))
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (r fakeGroupRepo) GetVersion(ctx context.Context, exec repositories.SQLExecutor, id int) (time.Time, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	g, ok := r.s.groups[id]
	if !ok {
		return time.Time{}, repositories.ErrGroupNotFound
	}
	return g.UpdatedAt, nil
}

func (r fakeGroupRepo) UpdateMemberships(ctx context.Context, exec repositories.SQLExecutor, groupID int, memberships []models.GroupMembership) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	g, ok := r.s.groups[groupID]
	if !ok {
		return repositories.ErrGroupNotFound
	}
	g = *copyGroup(g)
	for _, m := range memberships {
		found := false
		for i := range g.Teams {
			if g.Teams[i].TeamID == m.TeamID {
				id, pos := g.Teams[i].ID, g.Teams[i].Position
				g.Teams[i] = m
				g.Teams[i].ID, g.Teams[i].GroupID, g.Teams[i].Position = id, groupID, pos
				found = true
			}
		}
		if !found {
			return repositories.ErrGroupNotFound
		}
	}
	g.UpdatedAt = g.UpdatedAt.Add(time.Microsecond)
	r.s.groups[groupID] = g
	return nil
}

// --- matches ---

type fakeMatchRepo struct{ s *fakeStore }

func (r fakeMatchRepo) Create(ctx context.Context, exec repositories.SQLExecutor, m *models.Match) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if m.Type == models.MatchTypeKnockout && m.Round != nil && m.RoundIndex != nil {
		for _, existing := range r.s.matches {
			if existing.TournamentID == m.TournamentID && existing.Type == models.MatchTypeKnockout &&
				existing.Round != nil && existing.RoundIndex != nil &&
				*existing.Round == *m.Round && *existing.RoundIndex == *m.RoundIndex {
				return repositories.ErrMatchSlotConflict
			}
		}
	}
	m.ID = r.s.id()
	m.CreatedAt = time.Now()
	r.s.matches[m.ID] = *m
	return nil
}

func (r fakeMatchRepo) GetByID(ctx context.Context, exec repositories.SQLExecutor, id int) (*models.Match, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	m, ok := r.s.matches[id]
	if !ok {
		return nil, repositories.ErrMatchNotFound
	}
	return &m, nil
}

func (r fakeMatchRepo) GetByIDForUpdate(ctx context.Context, exec repositories.SQLExecutor, id int) (*models.Match, error) {
	return r.GetByID(ctx, exec, id)
}

func (r fakeMatchRepo) GetKnockoutSlotForUpdate(ctx context.Context, exec repositories.SQLExecutor, tournamentID, round, index int) (*models.Match, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, m := range r.s.matches {
		if m.TournamentID == tournamentID && m.Type == models.MatchTypeKnockout &&
			m.Round != nil && *m.Round == round && m.RoundIndex != nil && *m.RoundIndex == index {
			return &m, nil
		}
	}
	return nil, repositories.ErrMatchNotFound
}

func (r fakeMatchRepo) Update(ctx context.Context, exec repositories.SQLExecutor, m *models.Match) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.matches[m.ID]; !ok {
		return repositories.ErrMatchNotFound
	}
	r.s.matches[m.ID] = *m
	return nil
}

func (r fakeMatchRepo) sorted(keep func(models.Match) bool) []*models.Match {
	list := make([]*models.Match, 0)
	for _, m := range r.s.matches {
		if keep(m) {
			m := m
			list = append(list, &m)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list
}

func (r fakeMatchRepo) ListByTournament(ctx context.Context, exec repositories.SQLExecutor, tournamentID int, filter repositories.MatchFilter) ([]*models.Match, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.sorted(func(m models.Match) bool {
		if m.TournamentID != tournamentID {
			return false
		}
		if filter.Type != nil && m.Type != *filter.Type {
			return false
		}
		if filter.Round != nil && (m.Round == nil || *m.Round != *filter.Round) {
			return false
		}
		return true
	}), nil
}

func (r fakeMatchRepo) ListByGroup(ctx context.Context, exec repositories.SQLExecutor, groupID int) ([]*models.Match, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.sorted(func(m models.Match) bool {
		return m.GroupID != nil && *m.GroupID == groupID
	}), nil
}

// --- collaborators ---

type publishedEvent struct {
	TournamentID int
	Type         string
	Payload      interface{}
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []publishedEvent
}

func (p *recordingPublisher) Publish(ctx context.Context, tournamentID int, eventType string, payload interface{}) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, publishedEvent{TournamentID: tournamentID, Type: eventType, Payload: payload})
}

func (p *recordingPublisher) count(eventType string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := 0
	for _, e := range p.events {
		if e.Type == eventType {
			n++
		}
	}
	return n
}

type cachedTable struct {
	version   int64
	standings []models.RankedTeam
}

type memoryCache struct {
	mu          sync.Mutex
	data        map[int]cachedTable
	hits        int
	invalidated []int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{data: map[int]cachedTable{}}
}

func (c *memoryCache) GetStandings(ctx context.Context, groupID int, version int64) ([]models.RankedTeam, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.data[groupID]
	if !ok || v.version != version {
		return nil, false, nil
	}
	c.hits++
	return v.standings, true, nil
}

func (c *memoryCache) SetStandings(ctx context.Context, groupID int, version int64, standings []models.RankedTeam) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[groupID] = cachedTable{version: version, standings: standings}
	return nil
}

func (c *memoryCache) InvalidateStandings(ctx context.Context, groupIDs ...int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, id := range groupIDs {
		delete(c.data, id)
		c.invalidated = append(c.invalidated, id)
	}
	return nil
}

type memoryUploader struct {
	mu      sync.Mutex
	objects map[string][]byte
	deleted []string
}

func newMemoryUploader() *memoryUploader {
	return &memoryUploader{objects: map[string][]byte{}}
}

func (u *memoryUploader) Upload(ctx context.Context, key string, contentType string, reader io.Reader) (*storage.UploadResult, error) {
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, reader); err != nil {
		return nil, err
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	u.objects[key] = buf.Bytes()
	return &storage.UploadResult{Key: key, Location: u.GetPublicURL(key)}, nil
}

func (u *memoryUploader) Delete(ctx context.Context, key string) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	delete(u.objects, key)
	u.deleted = append(u.deleted, key)
	return nil
}

func (u *memoryUploader) GetPublicURL(key string) string {
	return "https://cdn.test/" + key
}

// --- fixture ---

type fixture struct {
	store       *fakeStore
	publisher   *recordingPublisher
	cache       *memoryCache
	uploader    *memoryUploader
	tournaments TournamentService
	teams       TeamService
	groups      GroupService
	matches     MatchService
	brackets    BracketService
}

func newFixture() *fixture {
	store := newFakeStore()
	tx := &fakeTransactor{store: store}
	tRepo, teamRepo := fakeTournamentRepo{store}, fakeTeamRepo{store}
	gRepo, mRepo := fakeGroupRepo{store}, fakeMatchRepo{store}
	pub, cache, up := &recordingPublisher{}, newMemoryCache(), newMemoryUploader()

	groups := NewGroupService(tx, tRepo, gRepo, mRepo, pub, cache, nil)
	return &fixture{
		store:       store,
		publisher:   pub,
		cache:       cache,
		uploader:    up,
		tournaments: NewTournamentService(tx, tRepo, teamRepo, mRepo, groups, nil),
		teams:       NewTeamService(teamRepo, up, nil),
		groups:      groups,
		matches:     NewMatchService(tx, tRepo, gRepo, mRepo, pub, cache, nil),
		brackets:    NewBracketService(tx, tRepo, mRepo, up, pub, nil),
	}
}
