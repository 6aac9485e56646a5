package content

import (
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Store owns every content collection and is the only place they change.
//
// Collections are copy-on-write: a mutation installs a freshly allocated
// slice and leaves previously returned snapshots untouched, so callers may
// keep a snapshot and compare it against a later one. Snapshots are shared
// and must be treated as read-only.
type Store struct {
	mu    sync.RWMutex
	log   *zap.Logger
	newID func() string
	now   func() time.Time
	rev   uint64

	articles []Article
	moments  []Moment
	shares   []ShareItem
	projects []Project
	gallery  []GalleryItem

	skills     []Skill
	gameGenres []GameGenre
	routine    []RoutineSlot
	steps      []StepCount
	photoStats []PhotoCount
	movies     []MovieCount
	heroImages []string
}

type Option func(*Store)

func WithLogger(l *zap.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

// WithIDGenerator sets the id source for comments created by the store.
func WithIDGenerator(fn func() string) Option {
	return func(s *Store) {
		if fn != nil {
			s.newID = fn
		}
	}
}

func WithClock(fn func() time.Time) Option {
	return func(s *Store) {
		if fn != nil {
			s.now = fn
		}
	}
}

// NewStore builds a store populated from seed. The seed slices are copied.
func NewStore(seed Seed, opts ...Option) *Store {
	s := &Store{
		log:   zap.NewNop(),
		newID: uuid.NewString,
		now:   time.Now,

		articles: cloneList(seed.Articles),
		moments:  cloneList(seed.Moments),
		shares:   cloneList(seed.Shares),
		projects: cloneList(seed.Projects),
		gallery:  cloneList(seed.Gallery),

		skills:     cloneList(seed.Skills),
		gameGenres: cloneList(seed.GameGenres),
		routine:    cloneList(seed.Routine),
		steps:      cloneList(seed.Steps),
		photoStats: cloneList(seed.PhotoStats),
		movies:     cloneList(seed.Movies),
		heroImages: cloneList(seed.HeroImages),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Revision increases by one on every mutation that changed something.
func (s *Store) Revision() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rev
}

// touch must be called with s.mu held for writing.
func (s *Store) touch(collection, op, id string) {
	s.rev++
	s.log.Debug("content changed",
		zap.String("collection", collection),
		zap.String("op", op),
		zap.String("id", id),
		zap.Uint64("revision", s.rev),
	)
}

type identified interface {
	recordID() string
}

func (a Article) recordID() string     { return a.ID }
func (m Moment) recordID() string      { return m.ID }
func (si ShareItem) recordID() string  { return si.ID }
func (p Project) recordID() string     { return p.ID }
func (g GalleryItem) recordID() string { return g.ID }

func indexOf[T identified](items []T, id string) int {
	return slices.IndexFunc(items, func(r T) bool { return r.recordID() == id })
}

// find looks id up in a snapshot; snapshots never change so no lock is needed.
func find[T identified](items []T, id string) (T, bool) {
	if i := indexOf(items, id); i >= 0 {
		return items[i], true
	}
	var zero T
	return zero, false
}

// The helpers below expect s.mu to be held for writing.

func addRecord[T identified](s *Store, coll *[]T, name string, rec T) error {
	id := rec.recordID()
	if id == "" {
		return fmt.Errorf("%w: %s: empty id", ErrValidation, name)
	}
	if indexOf(*coll, id) >= 0 {
		return duplicateID(name, id)
	}
	next := make([]T, 0, len(*coll)+1)
	next = append(next, rec)
	*coll = append(next, *coll...)
	s.touch(name, "add", id)
	return nil
}

func updateRecord[T identified](s *Store, coll *[]T, name string, rec T) error {
	id := rec.recordID()
	i := indexOf(*coll, id)
	if i < 0 {
		return missingID(name, id)
	}
	next := slices.Clone(*coll)
	next[i] = rec
	*coll = next
	s.touch(name, "update", id)
	return nil
}

func removeRecord[T identified](s *Store, coll *[]T, name, id string) {
	i := indexOf(*coll, id)
	if i < 0 {
		return
	}
	next := make([]T, 0, len(*coll)-1)
	next = append(next, (*coll)[:i]...)
	*coll = append(next, (*coll)[i+1:]...)
	s.touch(name, "remove", id)
}

func modifyRecord[T identified](s *Store, coll *[]T, name, op, id string, fn func(*T)) bool {
	i := indexOf(*coll, id)
	if i < 0 {
		return false
	}
	next := slices.Clone(*coll)
	fn(&next[i])
	*coll = next
	s.touch(name, op, id)
	return true
}

// cloneList copies in and never returns nil.
func cloneList[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}

// Articles

func (s *Store) Articles() []Article {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.articles
}

func (s *Store) Article(id string) (Article, bool) { return find(s.Articles(), id) }

func (s *Store) AddArticle(a Article) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return addRecord(s, &s.articles, "articles", a)
}

func (s *Store) UpdateArticle(a Article) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return updateRecord(s, &s.articles, "articles", a)
}

func (s *Store) RemoveArticle(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	removeRecord(s, &s.articles, "articles", id)
}

// Moments

func (s *Store) Moments() []Moment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.moments
}

func (s *Store) Moment(id string) (Moment, bool) { return find(s.Moments(), id) }

func (s *Store) AddMoment(m Moment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return addRecord(s, &s.moments, "moments", m)
}

func (s *Store) UpdateMoment(m Moment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return updateRecord(s, &s.moments, "moments", m)
}

func (s *Store) RemoveMoment(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	removeRecord(s, &s.moments, "moments", id)
}

// Shares

func (s *Store) Shares() []ShareItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.shares
}

func (s *Store) Share(id string) (ShareItem, bool) { return find(s.Shares(), id) }

// AddShare fills in Domain from URL when it is empty. The domain is fixed
// from then on.
func (s *Store) AddShare(si ShareItem) error {
	if si.Domain == "" {
		si.Domain = DomainOf(si.URL)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return addRecord(s, &s.shares, "shares", si)
}

// UpdateShare keeps the stored domain when si.Domain is empty; it never
// derives a new one from the URL.
func (s *Store) UpdateShare(si ShareItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if si.Domain == "" {
		if i := indexOf(s.shares, si.ID); i >= 0 {
			si.Domain = s.shares[i].Domain
		}
	}
	return updateRecord(s, &s.shares, "shares", si)
}

func (s *Store) RemoveShare(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	removeRecord(s, &s.shares, "shares", id)
}

// Projects

func (s *Store) Projects() []Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.projects
}

func (s *Store) Project(id string) (Project, bool) { return find(s.Projects(), id) }

func (s *Store) AddProject(p Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return addRecord(s, &s.projects, "projects", p)
}

func (s *Store) UpdateProject(p Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return updateRecord(s, &s.projects, "projects", p)
}

func (s *Store) RemoveProject(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	removeRecord(s, &s.projects, "projects", id)
}

// Gallery

func (s *Store) Gallery() []GalleryItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.gallery
}

func (s *Store) GalleryItem(id string) (GalleryItem, bool) { return find(s.Gallery(), id) }

func (s *Store) AddGalleryItem(g GalleryItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return addRecord(s, &s.gallery, "gallery", g)
}

func (s *Store) UpdateGalleryItem(g GalleryItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return updateRecord(s, &s.gallery, "gallery", g)
}

func (s *Store) RemoveGalleryItem(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	removeRecord(s, &s.gallery, "gallery", id)
}
