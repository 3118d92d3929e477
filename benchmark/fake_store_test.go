package benchmark

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/volkfox/tigris-speedtest/storage"
)

// fakeStore is an in-memory ObjectStore for driver tests. Keys listed in
// failKeys error on any transfer; keys in corruptKeys download with their
// first byte flipped.
type fakeStore struct {
	mu          sync.Mutex
	objects     map[string][]byte
	failKeys    map[string]bool
	corruptKeys map[string]bool
	lastQuery   string
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		objects:     make(map[string][]byte),
		failKeys:    make(map[string]bool),
		corruptKeys: make(map[string]bool),
	}
}

func (f *fakeStore) Upload(ctx context.Context, key, path string) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failKeys[key] {
		return 0, fmt.Errorf("injected upload failure for %s", key)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	f.objects[key] = append([]byte(nil), data...)
	return int64(len(data)), nil
}

func (f *fakeStore) Download(ctx context.Context, key, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failKeys[key] {
		return fmt.Errorf("injected download failure for %s", key)
	}
	data, ok := f.objects[key]
	if !ok {
		return fmt.Errorf("no such key: %s", key)
	}
	out := append([]byte(nil), data...)
	if f.corruptKeys[key] && len(out) > 0 {
		out[0] ^= 0xff
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, out, 0o644)
}

func (f *fakeStore) List(ctx context.Context, query string) ([]storage.ObjectInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastQuery = query
	keys := make([]string, 0, len(f.objects))
	for k := range f.objects {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	infos := make([]storage.ObjectInfo, 0, len(keys))
	for _, k := range keys {
		infos = append(infos, storage.ObjectInfo{
			Key:          k,
			Size:         int64(len(f.objects[k])),
			ETag:         "etag-" + k,
			LastModified: time.Unix(0, 0),
			ContentType:  "binary/octet-stream",
		})
	}
	return infos, nil
}

func (f *fakeStore) Stat(ctx context.Context, key string) (storage.ObjectInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, ok := f.objects[key]
	if !ok {
		return storage.ObjectInfo{}, fmt.Errorf("no such key: %s", key)
	}
	return storage.ObjectInfo{
		Key:          key,
		Size:         int64(len(data)),
		ETag:         "etag-" + key,
		LastModified: time.Unix(0, 0),
		ContentType:  "binary/octet-stream",
	}, nil
}

func (f *fakeStore) Remove(ctx context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failKeys[key] {
		return fmt.Errorf("injected delete failure for %s", key)
	}
	if _, ok := f.objects[key]; !ok {
		return fmt.Errorf("no such key: %s", key)
	}
	delete(f.objects, key)
	return nil
}

var _ storage.ObjectStore = (*fakeStore)(nil)
