package lock

import (
	"sync"

	"github.com/Tomgit-cyber/sistema-de-bilhetes/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// ActionLockManager serializes mutating controller actions. Each action
// name owns one mutex; TryLock never blocks, so a double-triggered action
// is rejected while the first is still in flight.
type ActionLockManager struct {
	locks  sync.Map // map[string]*sync.Mutex
	logger *logger.Logger
}

func NewActionLockManager(log *logger.Logger) *ActionLockManager {
	return &ActionLockManager{logger: log}
}

// TryLock attempts to acquire the lock for an action without blocking.
func (m *ActionLockManager) TryLock(action string) bool {
	mu := m.getOrCreateMutex(action)
	acquired := mu.TryLock()
	if !acquired {
		m.logger.Debug("action already in flight", zap.String("action", action))
	}
	return acquired
}

// Unlock releases the lock for an action.
func (m *ActionLockManager) Unlock(action string) {
	muInterface, ok := m.locks.Load(action)
	if !ok {
		m.logger.Warn("no lock found during unlock", zap.String("action", action))
		return
	}
	muInterface.(*sync.Mutex).Unlock()
}

func (m *ActionLockManager) getOrCreateMutex(action string) *sync.Mutex {
	mu, ok := m.locks.Load(action)
	if ok {
		return mu.(*sync.Mutex)
	}

	actual, _ := m.locks.LoadOrStore(action, &sync.Mutex{})
	return actual.(*sync.Mutex)
}
