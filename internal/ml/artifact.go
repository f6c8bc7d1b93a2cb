package ml

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// Artifact file names under the model directory.
const (
	SalaryModelFile   = "salary_model.json"
	CategoryModelFile = "job_classifier.json"

	lockFile = "models.lock"
)

// LoadSalaryModel reads the salary artifact from dir. Called once at
// process start; the loaded model is immutable.
func LoadSalaryModel(dir string) (*SalaryModel, error) {
	var m SalaryModel
	if err := loadJSON(filepath.Join(dir, SalaryModelFile), &m); err != nil {
		return nil, err
	}
	if m.Title == nil || m.Location == nil || m.Company == nil {
		return nil, fmt.Errorf("salary artifact %s: missing feature sections", SalaryModelFile)
	}
	for _, f := range []*Feature{m.Title, m.Location, m.Company} {
		if len(f.Offsets) != len(f.Encoding.Classes) {
			return nil, fmt.Errorf("salary artifact %s: offsets do not match classes", SalaryModelFile)
		}
		f.Encoding.buildIndex()
	}
	return &m, nil
}

// LoadCategoryModel reads the classifier artifact from dir.
func LoadCategoryModel(dir string) (*CategoryModel, error) {
	var m CategoryModel
	if err := loadJSON(filepath.Join(dir, CategoryModelFile), &m); err != nil {
		return nil, err
	}
	if m.Vectorizer == nil || m.Classifier == nil {
		return nil, fmt.Errorf("classifier artifact %s: missing sections", CategoryModelFile)
	}
	if len(m.Vectorizer.IDF) != len(m.Vectorizer.Vocabulary) {
		return nil, fmt.Errorf("classifier artifact %s: idf does not match vocabulary", CategoryModelFile)
	}
	m.Vectorizer.buildIndex()
	return &m, nil
}

// Save writes the salary artifact under dir.
func (m *SalaryModel) Save(dir string) error {
	return saveJSON(dir, SalaryModelFile, m)
}

// Save writes the classifier artifact under dir.
func (m *CategoryModel) Save(dir string) error {
	return saveJSON(dir, CategoryModelFile, m)
}

func loadJSON(path string, v any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read artifact: %w", err)
	}
	if err := json.Unmarshal(b, v); err != nil {
		return fmt.Errorf("parse artifact %s: %w", filepath.Base(path), err)
	}
	return nil
}

// saveJSON writes an artifact atomically (temp file + rename) while
// holding an advisory lock on the model directory, so a training run and
// a serving process never race on the same file.
func saveJSON(dir, name string, v any) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create model dir: %w", err)
	}

	lock := flock.New(filepath.Join(dir, lockFile))
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("lock model dir: %w", err)
	}
	defer lock.Unlock()

	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode artifact %s: %w", name, err)
	}

	tmp := filepath.Join(dir, name+".tmp")
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return fmt.Errorf("write artifact %s: %w", name, err)
	}
	if err := os.Rename(tmp, filepath.Join(dir, name)); err != nil {
		return fmt.Errorf("replace artifact %s: %w", name, err)
	}
	return nil
}
