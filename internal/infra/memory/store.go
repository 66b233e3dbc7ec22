// Package memory is a process-local implementation of every repository,
// used by tests and by STORE_DRIVER=memory.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/BruksfildServices01/agendapro/internal/models"
)

type tables struct {
	seq map[string]uint

	users         map[uint]models.User
	profiles      map[uint]models.CompanyProfile
	services      map[uint]models.Service
	agendas       map[uint]models.Agenda
	appointments  map[uint]models.Appointment
	apServices    map[uint]models.AppointmentService
	notifications map[uint]models.Notification
	ratings       map[uint]models.Rating
	auditLogs     map[uint]models.AuditLog
}

func newTables() *tables {
	return &tables{
		seq:           map[string]uint{},
		users:         map[uint]models.User{},
		profiles:      map[uint]models.CompanyProfile{},
		services:      map[uint]models.Service{},
		agendas:       map[uint]models.Agenda{},
		appointments:  map[uint]models.Appointment{},
		apServices:    map[uint]models.AppointmentService{},
		notifications: map[uint]models.Notification{},
		ratings:       map[uint]models.Rating{},
		auditLogs:     map[uint]models.AuditLog{},
	}
}

func cloneMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func (t *tables) clone() *tables {
	return &tables{
		seq:           cloneMap(t.seq),
		users:         cloneMap(t.users),
		profiles:      cloneMap(t.profiles),
		services:      cloneMap(t.services),
		agendas:       cloneMap(t.agendas),
		appointments:  cloneMap(t.appointments),
		apServices:    cloneMap(t.apServices),
		notifications: cloneMap(t.notifications),
		ratings:       cloneMap(t.ratings),
		auditLogs:     cloneMap(t.auditLogs),
	}
}

func (t *tables) next(table string) uint {
	t.seq[table]++
	return t.seq[table]
}

type txKey struct{}

// Store keeps every table behind one mutex. A transaction holds the mutex for
// its whole duration and restores a snapshot when fn fails.
type Store struct {
	mu  sync.Mutex
	t   *tables
	now func() time.Time
}

func NewStore() *Store {
	return &Store{
		t:   newTables(),
		now: time.Now,
	}
}

// lock acquires the store unless ctx already runs inside one of its
// transactions.
func (s *Store) lock(ctx context.Context) func() {
	if owner, _ := ctx.Value(txKey{}).(*Store); owner == s {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

func (s *Store) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if owner, _ := ctx.Value(txKey{}).(*Store); owner == s {
		return fn(ctx)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.t.clone()
	defer func() {
		if r := recover(); r != nil {
			s.t = snapshot
			panic(r)
		}
	}()

	if err := fn(context.WithValue(ctx, txKey{}, s)); err != nil {
		s.t = snapshot
		return err
	}
	return nil
}

func (s *Store) stamp() time.Time {
	return s.now().UTC()
}
