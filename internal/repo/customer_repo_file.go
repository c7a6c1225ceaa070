package repo

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"voucher-management/internal/domain"
)

// FileCustomerRepo keeps customers in memory and mirrors every change to a
// CSV file. Reads are served from memory only.
type FileCustomerRepo struct {
	*MemoryCustomerRepo
	mu   sync.Mutex // serializes mutate + rewrite
	file *csvFile[domain.Customer]
}

// ErrNoPath is returned by the file repositories when no backing path is configured.
var ErrNoPath = errors.New("backing file path is empty")

// NewFileCustomerRepo loads path into memory. A missing file yields an empty
// repository; unreadable or malformed content is an error.
func NewFileCustomerRepo(path string, l *zap.Logger) (*FileCustomerRepo, error) {
	if path == "" {
		return nil, ErrNoPath
	}
	if l == nil {
		l = zap.NewNop()
	}
	r := &FileCustomerRepo{
		MemoryCustomerRepo: NewMemoryCustomerRepo(),
		file: &csvFile[domain.Customer]{
			path:   path,
			encode: domain.Customer.Record,
			decode: domain.CustomerFromRecord,
			log:    l.With(zap.String("repo", "customer")),
		},
	}
	customers, err := r.file.load()
	if err != nil {
		return nil, err
	}
	for _, c := range customers {
		r.index.Put(c.ID, c)
	}
	return r, nil
}

func (r *FileCustomerRepo) Save(ctx context.Context, c domain.Customer) (domain.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	saved, err := r.MemoryCustomerRepo.Save(ctx, c)
	if err != nil {
		return domain.Customer{}, err
	}
	if err := r.flush(); err != nil {
		r.index.Delete(c.ID)
		return domain.Customer{}, err
	}
	return saved, nil
}

func (r *FileCustomerRepo) Update(ctx context.Context, c domain.Customer) (domain.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	old, ok := r.index.Get(c.ID)
	updated, err := r.MemoryCustomerRepo.Update(ctx, c)
	if err != nil {
		return domain.Customer{}, err
	}
	if err := r.flush(); err != nil {
		if ok {
			r.index.Put(c.ID, old)
		}
		return domain.Customer{}, err
	}
	return updated, nil
}

func (r *FileCustomerRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	old, ok := r.index.Get(id)
	pos, _ := r.index.Pos(id)
	if err := r.MemoryCustomerRepo.Delete(ctx, id); err != nil {
		return err
	}
	if err := r.flush(); err != nil {
		if ok {
			r.index.PutAt(pos, id, old)
		}
		return err
	}
	return nil
}

func (r *FileCustomerRepo) flush() error {
	return r.file.rewrite(r.index.Values())
}

var _ domain.CustomerRepository = (*FileCustomerRepo)(nil)
