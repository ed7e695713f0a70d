// Package params is the flight controller parameter store.
//
// Values live in a fixed table indexed by ID. Setting a value notifies the
// callbacks registered for that ID synchronously, before the setter returns.
// The table can be saved to and loaded from a YAML file.
package params

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/golang/glog"
	"gopkg.in/yaml.v2"
)

// ChangeFunc is called after a parameter value changes.
type ChangeFunc func(ID)

type value struct {
	i int32
	f float32
}

// Store holds parameter values.
type Store struct {
	// Path is the YAML file used by Read and Write.
	Path string

	values    [Count]value
	callbacks [Count][]ChangeFunc
}

// New creates a Store holding default values.
func New(path string) *Store {
	s := &Store{Path: path}
	s.loadDefaults()
	return s
}

// Count returns the number of parameters.
func (s *Store) Count() int {
	return int(Count)
}

// Lookup resolves a parameter ID by name.
func (s *Store) Lookup(name string) (ID, bool) {
	for id := ID(0); id < Count; id++ {
		if definitions[id].name == name {
			return id, true
		}
	}
	return Count, false
}

// Name returns the name of a parameter.
func (s *Store) Name(id ID) string {
	if !id.valid() {
		return ""
	}
	return definitions[id].name
}

// Type returns the stored type of a parameter.
func (s *Store) Type(id ID) Type {
	if !id.valid() {
		return TypeInvalid
	}
	return definitions[id].typ
}

// Int returns the value of an integer parameter.
func (s *Store) Int(id ID) int32 {
	if !id.valid() {
		return 0
	}
	return s.values[id].i
}

// Float returns the value of a float parameter.
func (s *Store) Float(id ID) float32 {
	if !id.valid() {
		return 0
	}
	return s.values[id].f
}

// SetInt sets an integer parameter. It fails when the ID is out of range
// or the parameter is not an integer.
func (s *Store) SetInt(id ID, v int32) bool {
	if s.Type(id) != TypeInt32 {
		return false
	}
	if s.values[id].i != v {
		s.values[id].i = v
		s.notify(id)
	}
	return true
}

// SetFloat sets a float parameter. It fails when the ID is out of range
// or the parameter is not a float.
func (s *Store) SetFloat(id ID, v float32) bool {
	if s.Type(id) != TypeFloat {
		return false
	}
	if s.values[id].f != v {
		s.values[id].f = v
		s.notify(id)
	}
	return true
}

// AddCallback registers fn to be called when id changes.
func (s *Store) AddCallback(id ID, fn ChangeFunc) {
	if id.valid() {
		s.callbacks[id] = append(s.callbacks[id], fn)
	}
}

// NotifyAll calls the callbacks of every parameter, used once at boot so
// listeners pick up loaded values.
func (s *Store) NotifyAll() {
	for id := ID(0); id < Count; id++ {
		s.notify(id)
	}
}

// SetDefaults restores default values and notifies every listener.
func (s *Store) SetDefaults() {
	s.loadDefaults()
	s.NotifyAll()
}

// Read loads values from Path and notifies every listener.
func (s *Store) Read() bool {
	if err := s.load(); err != nil {
		glog.Errorf("read params error: %v", err)
		return false
	}
	s.NotifyAll()
	return true
}

// Write saves values to Path.
func (s *Store) Write() bool {
	if err := s.save(); err != nil {
		glog.Errorf("write params error: %v", err)
		return false
	}
	return true
}

func (s *Store) loadDefaults() {
	for id, def := range definitions {
		s.values[id] = value{i: def.i, f: def.f}
	}
}

func (s *Store) notify(id ID) {
	for _, fn := range s.callbacks[id] {
		fn(id)
	}
}

func (s *Store) load() error {
	if s.Path == "" {
		return ErrNoPath
	}
	data, err := ioutil.ReadFile(s.Path)
	if err != nil {
		return err
	}
	var raw map[string]interface{}
	if err = yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("parse %s: %v", s.Path, err)
	}
	loaded := s.values
	for name, v := range raw {
		id, ok := s.Lookup(name)
		if !ok {
			glog.Warningf("ignore unknown param %q in %s", name, s.Path)
			continue
		}
		switch definitions[id].typ {
		case TypeInt32:
			n, ok := v.(int)
			if !ok {
				return &ErrBadValue{Name: name, Value: v}
			}
			loaded[id].i = int32(n)
		case TypeFloat:
			switch f := v.(type) {
			case float64:
				loaded[id].f = float32(f)
			case int:
				loaded[id].f = float32(f)
			default:
				return &ErrBadValue{Name: name, Value: v}
			}
		}
	}
	s.values = loaded
	return nil
}

func (s *Store) save() error {
	if s.Path == "" {
		return ErrNoPath
	}
	doc := make(yaml.MapSlice, 0, Count)
	for id := ID(0); id < Count; id++ {
		item := yaml.MapItem{Key: definitions[id].name}
		if definitions[id].typ == TypeFloat {
			item.Value = s.values[id].f
		} else {
			item.Value = s.values[id].i
		}
		doc = append(doc, item)
	}
	data, err := yaml.Marshal(doc)
	if err != nil {
		return err
	}
	tmp, err := ioutil.TempFile(filepath.Dir(s.Path), ".params-")
	if err != nil {
		return err
	}
	if _, err = tmp.Write(data); err == nil {
		err = tmp.Close()
	} else {
		tmp.Close()
	}
	if err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), s.Path)
}

func (id ID) valid() bool {
	return id >= 0 && id < Count
}
