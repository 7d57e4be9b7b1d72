// Package session persists interactive measurement sessions so they can
// be listed, replayed, and re-rendered later. Each session is a
// directory holding metadata.json and measurements.csv.
package session

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/baconshor/internal/code"
	"github.com/san-kum/baconshor/internal/pauli"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type Metadata struct {
	ID          string         `json:"id"`
	Rows        int            `json:"rows"`
	Cols        int            `json:"cols"`
	Timestamp   time.Time      `json:"timestamp"`
	Steps       int            `json:"steps"`
	Stabilizers []string       `json:"stabilizers"`
	Composition map[string]int `json:"composition"`
}

// Save writes the tracker's full session to a new directory and returns
// the session id.
func (s *Store) Save(tr *code.Tracker) (string, error) {
	l := tr.Lattice()
	id := fmt.Sprintf("%dx%d_%d", l.Rows, l.Cols, time.Now().Unix())
	dir := filepath.Join(s.baseDir, id)

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	stabs := tr.Stabilizers()
	meta := Metadata{
		ID:          id,
		Rows:        l.Rows,
		Cols:        l.Cols,
		Timestamp:   time.Now(),
		Steps:       tr.Step(),
		Stabilizers: stabKeys(stabs),
		Composition: Composition(stabs),
	}

	metaFile, err := os.Create(filepath.Join(dir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(dir, "measurements.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"step", "q1", "q2", "basis"}); err != nil {
		return "", err
	}
	for stepIdx, step := range tr.History() {
		for _, m := range step {
			row := []string{
				strconv.Itoa(stepIdx + 1),
				strconv.Itoa(m.Edge.A),
				strconv.Itoa(m.Edge.B),
				m.Basis.String(),
			}
			if err := w.Write(row); err != nil {
				return "", err
			}
		}
	}

	return id, nil
}

func (s *Store) List() ([]Metadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []Metadata{}, nil
		}
		return nil, err
	}

	sessions := make([]Metadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}
		var meta Metadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}
		sessions = append(sessions, meta)
	}

	return sessions, nil
}

func (s *Store) Load(id string) (*Metadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, id, "metadata.json"))
	if err != nil {
		return nil, err
	}
	var meta Metadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadHistory reads back the per-step edge lists. Steps committed with
// no valid measurements come back as empty slices; the step count is
// taken from the metadata so the replay advances time identically.
func (s *Store) LoadHistory(id string) ([][]code.Edge, error) {
	meta, err := s.Load(id)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(filepath.Join(s.baseDir, id, "measurements.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	history := make([][]code.Edge, meta.Steps)
	for i := 1; i < len(records); i++ {
		record := records[i]
		if len(record) < 3 {
			continue
		}
		step, err := strconv.Atoi(record[0])
		if err != nil || step < 1 || step > meta.Steps {
			continue
		}
		q1, err := strconv.Atoi(record[1])
		if err != nil {
			continue
		}
		q2, err := strconv.Atoi(record[2])
		if err != nil {
			continue
		}
		history[step-1] = append(history[step-1], code.NewEdge(q1, q2))
	}

	return history, nil
}

// Composition counts generators by type: uniform X, uniform Z, or mixed.
func Composition(stabs []*pauli.Stabilizer) map[string]int {
	comp := map[string]int{"x": 0, "z": 0, "mixed": 0}
	for _, s := range stabs {
		switch {
		case s.Uniform(pauli.X):
			comp["x"]++
		case s.Uniform(pauli.Z):
			comp["z"]++
		default:
			comp["mixed"]++
		}
	}
	return comp
}

func stabKeys(stabs []*pauli.Stabilizer) []string {
	keys := make([]string, len(stabs))
	for i, s := range stabs {
		keys[i] = s.Key()
	}
	return keys
}
