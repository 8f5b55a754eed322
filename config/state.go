package config

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"showcase/log"

	"github.com/gofrs/flock"
)

const StateFileName = "state.json"

// AppState handles application-level state
type AppState interface {
	// GetHelpScreensSeen returns the bitmask of seen help screens
	GetHelpScreensSeen() uint32
	// SetHelpScreensSeen updates the bitmask of seen help screens
	SetHelpScreensSeen(seen uint32) error
}

// StateManager combines app state management with its on-disk lifecycle
type StateManager interface {
	AppState

	// RefreshState reloads state from disk to detect changes made by other processes
	RefreshState() error

	// Close releases any resources held by the state manager
	Close() error
}

// State represents the application state that persists between runs. The
// catalog itself is deliberately not persisted; this file only remembers
// which help screens the user has already seen.
type State struct {
	// HelpScreensSeen is a bitmask tracking which help screens have been shown
	HelpScreensSeen uint32 `json:"help_screens_seen"`

	// Lock file for coordinating state access across processes
	lockFile    *flock.Flock  `json:"-"` // Not serialized
	lockTimeout time.Duration `json:"-"` // Not serialized
}

const (
	// DefaultLockTimeout is the default timeout for acquiring locks
	DefaultLockTimeout = 5 * time.Second
	// LockFileName is the name of the lock file
	LockFileName = "state.lock"
)

// DefaultState returns the default state
func DefaultState() *State {
	configDir, err := log.GetConfigDir()
	if err != nil {
		log.ErrorLog.Printf("failed to get config directory: %v", err)
		// Return a minimal state without locking if we can't get the config dir
		return &State{
			HelpScreensSeen: 0,
		}
	}

	// Initialize the lock file
	lockPath := filepath.Join(configDir, LockFileName)
	fileLock := flock.New(lockPath)

	return &State{
		HelpScreensSeen: 0,
		lockFile:        fileLock,
		lockTimeout:     DefaultLockTimeout,
	}
}

// LoadState loads the state from disk with locking. If it cannot be done, we return the default state.
func LoadState() *State {
	// Get the default state which includes locking capabilities
	state := DefaultState()

	// Attempt to load from disk with a shared read lock
	if err := state.loadFromDisk(); err != nil {
		log.WarningLog.Printf("failed to load state from disk: %v", err)
		// We already have the default state, so just continue
	}

	return state
}

// loadFromDisk loads state from disk with a shared read lock
func (s *State) loadFromDisk() error {
	// Skip if we don't have a lock file initialized
	if s.lockFile == nil {
		log.WarningLog.Printf("lock file not initialized, loading state without locking")
		return s.loadFromDiskWithoutLocking()
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.lockTimeout)
	defer cancel()

	// Try to acquire a shared read lock with retries
	locked, err := s.lockFile.TryRLockContext(ctx, 100*time.Millisecond)
	if err != nil {
		return fmt.Errorf("failed to acquire read lock: %w", err)
	}
	if !locked {
		return fmt.Errorf("could not acquire read lock within timeout")
	}
	defer s.lockFile.Unlock()

	// Now that we have a lock, load the state
	return s.loadFromDiskWithoutLocking()
}

// loadFromDiskWithoutLocking loads state from disk without locking
// This is used internally by loadFromDisk after acquiring a lock
func (s *State) loadFromDiskWithoutLocking() error {
	configDir, err := log.GetConfigDir()
	if err != nil {
		return fmt.Errorf("failed to get config directory: %w", err)
	}

	statePath := filepath.Join(configDir, StateFileName)
	data, err := os.ReadFile(statePath)
	if err != nil {
		if os.IsNotExist(err) {
			// File doesn't exist yet - keep the default state
			return nil
		}
		return fmt.Errorf("failed to read state file: %w", err)
	}

	// Parse the state file
	var newState State
	if err := json.Unmarshal(data, &newState); err != nil {
		return fmt.Errorf("failed to parse state file: %w", err)
	}

	// Update our fields but keep the lock file and timeout
	s.HelpScreensSeen = newState.HelpScreensSeen

	return nil
}

// SaveState saves the state to disk with locking
func SaveState(state *State) error {
	return state.saveToDisk()
}

// saveToDisk saves state to disk with an exclusive write lock
func (s *State) saveToDisk() error {
	// Skip locking if lock file isn't initialized
	if s.lockFile == nil {
		log.WarningLog.Printf("lock file not initialized, saving state without locking")
		return s.saveToDiskWithoutLocking()
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.lockTimeout)
	defer cancel()

	// Try to acquire an exclusive write lock with retries
	locked, err := s.lockFile.TryLockContext(ctx, 100*time.Millisecond)
	if err != nil {
		return fmt.Errorf("failed to acquire write lock: %w", err)
	}
	if !locked {
		return fmt.Errorf("could not acquire write lock within timeout")
	}
	defer s.lockFile.Unlock()

	// Now that we have a lock, save the state
	return s.saveToDiskWithoutLocking()
}

// saveToDiskWithoutLocking saves state to disk without locking
// This is used internally by saveToDisk after acquiring a lock
func (s *State) saveToDiskWithoutLocking() error {
	configDir, err := log.GetConfigDir()
	if err != nil {
		return fmt.Errorf("failed to get config directory: %w", err)
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	statePath := filepath.Join(configDir, StateFileName)
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	// Write to a temporary file first to ensure atomicity
	tmpPath := statePath + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write temporary state file: %w", err)
	}

	// Atomically rename the temporary file to the actual file
	if err := os.Rename(tmpPath, statePath); err != nil {
		// Try to clean up the temporary file
		os.Remove(tmpPath)
		return fmt.Errorf("failed to atomically update state file: %w", err)
	}

	return nil
}

// AppState interface implementation

// GetHelpScreensSeen returns the bitmask of seen help screens
func (s *State) GetHelpScreensSeen() uint32 {
	return s.HelpScreensSeen
}

// SetHelpScreensSeen updates the bitmask of seen help screens
func (s *State) SetHelpScreensSeen(seen uint32) error {
	s.HelpScreensSeen = seen
	return SaveState(s)
}

// RefreshState reloads state from disk with locking
func (s *State) RefreshState() error {
	return s.loadFromDisk()
}

// Close releases any locks held by this state
func (s *State) Close() error {
	if s.lockFile != nil {
		return s.lockFile.Unlock()
	}
	return nil
}
