package service

import (
	"fmt"
	"sync"
	"time"
)

// MockSystemdManager is an in-memory SystemdManager for tests.
type MockSystemdManager struct {
	mu       sync.RWMutex
	services map[string]*mockServiceState
}

type mockServiceState struct {
	Config    ServiceConfig
	Status    ServiceStatus
	Enabled   bool
	Logs      []string
	CreatedAt time.Time
}

// NewMockSystemdManager creates an empty mock.
func NewMockSystemdManager() *MockSystemdManager {
	return &MockSystemdManager{services: make(map[string]*mockServiceState)}
}

var _ SystemdManager = (*MockSystemdManager)(nil)

func (m *MockSystemdManager) CreateService(name string, cfg ServiceConfig) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	cfg.Name = name
	m.services[name] = &mockServiceState{
		Config:    cfg,
		Status:    StatusStopped,
		Logs:      []string{},
		CreatedAt: time.Now(),
	}
	m.addLog(name, "Service created")
	return nil
}

func (m *MockSystemdManager) RemoveService(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.services, name)
	return nil
}

func (m *MockSystemdManager) StartService(name string) error {
	return m.setStatus(name, StatusRunning, "Service started")
}

func (m *MockSystemdManager) StopService(name string) error {
	return m.setStatus(name, StatusStopped, "Service stopped")
}

func (m *MockSystemdManager) RestartService(name string) error {
	return m.setStatus(name, StatusRunning, "Service restarted")
}

func (m *MockSystemdManager) EnableService(name string) error {
	return m.setEnabled(name, true, "Service enabled")
}

func (m *MockSystemdManager) DisableService(name string) error {
	return m.setEnabled(name, false, "Service disabled")
}

func (m *MockSystemdManager) IsServiceActive(name string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	svc, exists := m.services[name]
	return exists && svc.Status == StatusRunning
}

func (m *MockSystemdManager) IsServiceEnabled(name string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	svc, exists := m.services[name]
	return exists && svc.Enabled
}

func (m *MockSystemdManager) IsServiceInstalled(name string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, exists := m.services[name]
	return exists
}

func (m *MockSystemdManager) GetServiceStatus(name string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	svc, exists := m.services[name]
	if !exists {
		return "", fmt.Errorf("service %s not found", name)
	}

	return fmt.Sprintf("● %s.service - %s\n   Active: %s\n   Enabled: %v\n",
		name, svc.Config.Description, svc.Status, svc.Enabled), nil
}

func (m *MockSystemdManager) GetServiceLogs(name string, lines int) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	svc, exists := m.services[name]
	if !exists {
		return "", fmt.Errorf("service %s not found", name)
	}

	logs := svc.Logs
	if len(logs) > lines {
		logs = logs[len(logs)-lines:]
	}

	result := ""
	for _, entry := range logs {
		result += entry + "\n"
	}
	return result, nil
}

func (m *MockSystemdManager) DaemonReload() error {
	return nil
}

// SimulateFailure marks a service as failed (for testing failure scenarios).
func (m *MockSystemdManager) SimulateFailure(name string) error {
	return m.setStatus(name, StatusFailed, "Service failed (simulated)")
}

// GetServiceConfig returns the config for a service (for test assertions).
func (m *MockSystemdManager) GetServiceConfig(name string) (ServiceConfig, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	svc, exists := m.services[name]
	if !exists {
		return ServiceConfig{}, false
	}
	return svc.Config, true
}

func (m *MockSystemdManager) setStatus(name string, status ServiceStatus, msg string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	svc, exists := m.services[name]
	if !exists {
		return fmt.Errorf("service %s not found", name)
	}
	svc.Status = status
	m.addLog(name, msg)
	return nil
}

func (m *MockSystemdManager) setEnabled(name string, enabled bool, msg string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	svc, exists := m.services[name]
	if !exists {
		return fmt.Errorf("service %s not found", name)
	}
	svc.Enabled = enabled
	m.addLog(name, msg)
	return nil
}

// addLog must be called with the lock held.
func (m *MockSystemdManager) addLog(name, message string) {
	svc, exists := m.services[name]
	if !exists {
		return
	}
	svc.Logs = append(svc.Logs, fmt.Sprintf("%s %s: %s", time.Now().Format(time.RFC3339), name, message))
}
