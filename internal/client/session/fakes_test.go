package session

import (
	"context"
	"sync"

	"github.com/ultraupload/ultraupload/internal/client/api"
	"github.com/ultraupload/ultraupload/internal/client/kvstore"
	"github.com/ultraupload/ultraupload/internal/client/models"
)

// fakeClient implements api.Client for unit tests of the Manager.
type fakeClient struct {
	LoginRet    api.Result
	LoginErr    error
	RegisterRet api.Result
	RegisterErr error

	// called while the request is "in flight"
	OnCall func()

	LastEmail    string
	LastPassword string
	LastRegister models.RegistrationRequest
	Calls        int
}

func (f *fakeClient) Login(_ context.Context, email, password string) (api.Result, error) {
	f.Calls++
	f.LastEmail, f.LastPassword = email, password
	if f.OnCall != nil {
		f.OnCall()
	}
	return f.LoginRet, f.LoginErr
}

func (f *fakeClient) Register(_ context.Context, req models.RegistrationRequest) (api.Result, error) {
	f.Calls++
	f.LastRegister = req
	if f.OnCall != nil {
		f.OnCall()
	}
	return f.RegisterRet, f.RegisterErr
}

// fakeStore wraps a MemoryStore with per-operation failures and a write
// counter.
type fakeStore struct {
	*kvstore.MemoryStore

	mu             sync.Mutex
	GetErr         map[string]error
	SetErr         error
	RemoveErr      error
	MultiSetErr    error
	MultiRemoveErr error
	Writes         int

	// runs once, at the start of the next Set
	BeforeSet func()
}

func newFakeStore() *fakeStore {
	return &fakeStore{MemoryStore: kvstore.NewMemoryStore(), GetErr: map[string]error{}}
}

func (f *fakeStore) Get(ctx context.Context, key string) (string, bool, error) {
	if err := f.GetErr[key]; err != nil {
		return "", false, err
	}
	return f.MemoryStore.Get(ctx, key)
}

func (f *fakeStore) Set(ctx context.Context, key, value string) error {
	if hook := f.BeforeSet; hook != nil {
		f.BeforeSet = nil
		hook()
	}
	if f.SetErr != nil {
		return f.SetErr
	}
	f.count()
	return f.MemoryStore.Set(ctx, key, value)
}

func (f *fakeStore) Remove(ctx context.Context, key string) error {
	if f.RemoveErr != nil {
		return f.RemoveErr
	}
	f.count()
	return f.MemoryStore.Remove(ctx, key)
}

func (f *fakeStore) MultiSet(ctx context.Context, pairs map[string]string) error {
	if f.MultiSetErr != nil {
		return f.MultiSetErr
	}
	f.count()
	return f.MemoryStore.MultiSet(ctx, pairs)
}

func (f *fakeStore) MultiRemove(ctx context.Context, keys ...string) error {
	if f.MultiRemoveErr != nil {
		return f.MultiRemoveErr
	}
	f.count()
	return f.MemoryStore.MultiRemove(ctx, keys...)
}

func (f *fakeStore) count() {
	f.mu.Lock()
	f.Writes++
	f.mu.Unlock()
}

func (f *fakeStore) writes() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.Writes
}
