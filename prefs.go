package tilemenu

import (
	"fmt"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// prefsObject is the gdata object that holds one property per menu name.
const prefsObject = "tilemenu"

// Prefs are the per-user settings a host may want to remember between runs.
type Prefs struct {
	RightHanded bool `yaml:"rightHanded"`
	// LastPage is the page the menu was on when it was last dismissed.
	LastPage int `yaml:"lastPage"`
}

// DefaultPrefs matches DefaultConfig.
func DefaultPrefs() Prefs {
	return Prefs{RightHanded: true}
}

// Apply copies the handedness preference into cfg.
func (p Prefs) Apply(cfg *Config) {
	cfg.RightHanded = p.RightHanded
}

// PrefStore persists Prefs per menu name. Without a gdata manager it keeps
// them in memory only.
type PrefStore struct {
	manager *gdata.Manager
	memory  map[string]Prefs
}

// NewPrefStore wraps manager, which may be nil.
func NewPrefStore(manager *gdata.Manager) *PrefStore {
	return &PrefStore{manager: manager, memory: make(map[string]Prefs)}
}

// OpenPrefStore opens the platform data directory for appName.
func OpenPrefStore(appName string) (*PrefStore, error) {
	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("tilemenu: open prefs for %s: %w", appName, err)
	}
	return NewPrefStore(manager), nil
}

// Load returns the stored prefs for name, or DefaultPrefs when none exist.
func (s *PrefStore) Load(name string) (Prefs, error) {
	if s.manager == nil {
		if p, ok := s.memory[name]; ok {
			return p, nil
		}
		return DefaultPrefs(), nil
	}
	if !s.manager.ObjectPropExists(prefsObject, name) {
		return DefaultPrefs(), nil
	}
	data, err := s.manager.LoadObjectProp(prefsObject, name)
	if err != nil {
		return DefaultPrefs(), fmt.Errorf("tilemenu: load prefs %s: %w", name, err)
	}
	p := DefaultPrefs()
	if err := yaml.Unmarshal(data, &p); err != nil {
		return DefaultPrefs(), fmt.Errorf("tilemenu: decode prefs %s: %w", name, err)
	}
	return p, nil
}

// Save stores p under name.
func (s *PrefStore) Save(name string, p Prefs) error {
	if s.manager == nil {
		s.memory[name] = p
		return nil
	}
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("tilemenu: encode prefs %s: %w", name, err)
	}
	if err := s.manager.SaveObjectProp(prefsObject, name, data); err != nil {
		return fmt.Errorf("tilemenu: save prefs %s: %w", name, err)
	}
	debugf("saved prefs %s: %+v", name, p)
	return nil
}

// Track keeps the stored LastPage of name up to date with m: the page is
// recorded every time m is dismissed. Remove the returned handles to stop.
func (s *PrefStore) Track(name string, m *Menu) []Handle {
	var lastPage int
	willDismiss := m.On(EventWillDismiss, func(e Event) {
		lastPage = e.Menu.CurrentPage()
	})
	didDismiss := m.On(EventDidDismiss, func(e Event) {
		p, err := s.Load(name)
		if err != nil {
			debugf("%v", err)
		}
		p.LastPage = lastPage
		p.RightHanded = e.Menu.Config().RightHanded
		if err := s.Save(name, p); err != nil {
			debugf("%v", err)
		}
	})
	return []Handle{willDismiss, didDismiss}
}
