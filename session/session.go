// Package session persists camera state across runs, backed by the
// cross-platform gdata store.
package session

import (
	"encoding/json"
	"fmt"

	"github.com/quasilyte/gdata/v2"

	"github.com/vantage2d/vantage"
)

const stateObject = "camera"

// Store saves and restores camera state snapshots by name. A nil manager
// degrades to a no-op store: saves succeed silently and loads report no
// saved state, so callers need no platform-specific fallback logic.
type Store struct {
	manager *gdata.Manager
}

// Open creates a store under the given application name.
func Open(appName string) (*Store, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("open session store: %w", err)
	}
	return &Store{manager: m}, nil
}

// NewStore wraps an existing gdata manager, which may be nil for a no-op
// store.
func NewStore(manager *gdata.Manager) *Store {
	return &Store{manager: manager}
}

type savedState struct {
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	ZoomLevel float64 `json:"zoomLevel"`
	Rotation  float64 `json:"rotation"`
}

// Save stores a camera state snapshot under name.
func (s *Store) Save(name string, st vantage.State) error {
	if s.manager == nil {
		return nil
	}
	data, err := json.Marshal(savedState{
		X:         st.Position.X,
		Y:         st.Position.Y,
		ZoomLevel: st.ZoomLevel,
		Rotation:  st.Rotation,
	})
	if err != nil {
		return fmt.Errorf("marshal camera state: %w", err)
	}
	if err := s.manager.SaveObjectProp(stateObject, name, data); err != nil {
		return fmt.Errorf("save camera state: %w", err)
	}
	return nil
}

// Load restores the camera state snapshot saved under name. The second
// return value reports whether a snapshot existed.
func (s *Store) Load(name string) (vantage.State, bool, error) {
	if s.manager == nil || !s.manager.ObjectPropExists(stateObject, name) {
		return vantage.State{}, false, nil
	}
	data, err := s.manager.LoadObjectProp(stateObject, name)
	if err != nil {
		return vantage.State{}, false, fmt.Errorf("load camera state: %w", err)
	}
	var saved savedState
	if err := json.Unmarshal(data, &saved); err != nil {
		return vantage.State{}, false, fmt.Errorf("unmarshal camera state: %w", err)
	}
	return vantage.State{
		Position:  vantage.Point{X: saved.X, Y: saved.Y},
		ZoomLevel: saved.ZoomLevel,
		Rotation:  saved.Rotation,
	}, true, nil
}

// Restore loads the snapshot saved under name and applies it to the camera
// through its setters. Missing snapshots leave the camera untouched.
func (s *Store) Restore(name string, cam *vantage.Camera) error {
	st, ok, err := s.Load(name)
	if err != nil || !ok {
		return err
	}
	cam.SetPosition(st.Position)
	cam.SetZoomLevel(st.ZoomLevel)
	cam.SetRotation(st.Rotation)
	return nil
}
