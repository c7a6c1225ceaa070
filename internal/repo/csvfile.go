package repo

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"voucher-management/internal/domain"
)

var (
	fileRewrites = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "storage_file_rewrites_total", Help: "Full rewrites of backing files"},
		[]string{"file", "result"},
	)
	fileRewriteLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "storage_file_rewrite_seconds",
			Help:    "Latency of backing file rewrites",
			Buckets: prometheus.DefBuckets,
		}, []string{"file"},
	)
)

func init() { prometheus.MustRegister(fileRewrites, fileRewriteLatency) }

// csvFile is a flat comma separated file holding one record per line,
// read once at startup and rewritten in full on every change.
type csvFile[V any] struct {
	path   string
	encode func(V) []string
	decode func([]string) (V, error)
	log    *zap.Logger
}

// maxLineBytes bounds a single record line.
const maxLineBytes = 1 << 20

// load returns nothing and logs a warning when the file does not exist.
// Records never span lines: every physical line is decoded on its own.
func (f *csvFile[V]) load() ([]V, error) {
	fh, err := os.Open(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		f.log.Warn("backing file not found, starting empty", zap.String("path", f.path))
		return nil, nil
	}
	if err != nil {
		f.log.Error("open backing file", zap.String("path", f.path), zap.Error(err))
		return nil, fmt.Errorf("%w: open %s: %w", domain.ErrPersistence, f.path, err)
	}
	defer fh.Close()

	sc := bufio.NewScanner(fh)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	var (
		out    []V
		lineNo int
	)
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		v, err := f.decode(splitRecord(line))
		if err != nil {
			f.log.Error("decode backing file", zap.String("path", f.path), zap.Int("line", lineNo), zap.Error(err))
			return nil, fmt.Errorf("%s:%d: %w", f.path, lineNo, err)
		}
		out = append(out, v)
	}
	if err := sc.Err(); err != nil {
		f.log.Error("read backing file", zap.String("path", f.path), zap.Error(err))
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, fmt.Errorf("%w: %s:%d: %w", domain.ErrMalformedRecord, f.path, lineNo+1, err)
		}
		return nil, fmt.Errorf("%w: read %s: %w", domain.ErrPersistence, f.path, err)
	}
	f.log.Info("backing file loaded", zap.String("path", f.path), zap.Int("records", len(out)))
	return out, nil
}

// rewrite replaces the file with values. Content goes to a temp file in the
// same directory first and is renamed over the target once synced.
func (f *csvFile[V]) rewrite(values []V) (err error) {
	start := time.Now()
	label := filepath.Base(f.path)
	defer func() {
		result := "ok"
		if err != nil {
			result = "error"
			f.log.Error("rewrite backing file", zap.String("path", f.path), zap.Error(err))
			err = fmt.Errorf("%w: rewrite %s: %w", domain.ErrPersistence, f.path, err)
		}
		fileRewrites.WithLabelValues(label, result).Inc()
		fileRewriteLatency.WithLabelValues(label).Observe(time.Since(start).Seconds())
	}()

	perm := fs.FileMode(0o644)
	if st, err := os.Stat(f.path); err == nil {
		perm = st.Mode().Perm()
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, "."+label+".*.tmp")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	w := newRecordWriter(tmp)
	for _, v := range values {
		rec := f.encode(v)
		if err := checkSingleLine(rec); err != nil {
			return err
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	if err := tmp.Chmod(perm); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), f.path)
}

func newRecordWriter(w io.Writer) *csv.Writer {
	return csv.NewWriter(w)
}

// splitRecord parses one physical line. Lines the writer produced parse as
// strict CSV; anything else is split on bare commas, so quotes in names of
// hand-written lines stay literal text.
func splitRecord(line string) []string {
	if strings.Contains(line, `"`) {
		cr := csv.NewReader(strings.NewReader(line))
		cr.FieldsPerRecord = -1
		if rec, err := cr.Read(); err == nil {
			return rec
		}
	}
	return strings.Split(line, ",")
}

func checkSingleLine(rec []string) error {
	for _, field := range rec {
		if strings.ContainsAny(field, "\r\n") {
			return fmt.Errorf("%w: line break in field %q", domain.ErrMalformedRecord, field)
		}
	}
	return nil
}

// EncodeLine renders one record as a single line without terminator.
func EncodeLine(rec []string) (string, error) {
	if err := checkSingleLine(rec); err != nil {
		return "", err
	}
	var b strings.Builder
	w := newRecordWriter(&b)
	if err := w.Write(rec); err != nil {
		return "", err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return strings.TrimSuffix(b.String(), "\n"), nil
}

// DecodeLine is the inverse of EncodeLine.
func DecodeLine(line string) ([]string, error) {
	if strings.ContainsAny(line, "\r\n") {
		return nil, fmt.Errorf("%w: line break in record", domain.ErrMalformedRecord)
	}
	return splitRecord(line), nil
}
