package repo

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"voucher-management/internal/domain"
)

// FileVoucherRepo is the voucher counterpart of FileCustomerRepo.
type FileVoucherRepo struct {
	*MemoryVoucherRepo
	mu   sync.Mutex
	file *csvFile[domain.Voucher]
}

func NewFileVoucherRepo(path string, l *zap.Logger) (*FileVoucherRepo, error) {
	if path == "" {
		return nil, ErrNoPath
	}
	if l == nil {
		l = zap.NewNop()
	}
	r := &FileVoucherRepo{
		MemoryVoucherRepo: NewMemoryVoucherRepo(),
		file: &csvFile[domain.Voucher]{
			path:   path,
			encode: domain.VoucherRecord,
			decode: domain.VoucherFromRecord,
			log:    l.With(zap.String("repo", "voucher")),
		},
	}
	vouchers, err := r.file.load()
	if err != nil {
		return nil, err
	}
	for _, v := range vouchers {
		r.index.Put(v.ID(), v)
	}
	return r, nil
}

func (r *FileVoucherRepo) Save(ctx context.Context, v domain.Voucher) (domain.Voucher, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	saved, err := r.MemoryVoucherRepo.Save(ctx, v)
	if err != nil {
		return nil, err
	}
	if err := r.file.rewrite(r.index.Values()); err != nil {
		r.index.Delete(v.ID())
		return nil, err
	}
	return saved, nil
}

var _ domain.VoucherRepository = (*FileVoucherRepo)(nil)
