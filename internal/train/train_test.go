package train

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"jobmarket/internal/domain"
	"jobmarket/internal/ml"
	"jobmarket/internal/store"
)

func seededStore(t *testing.T, jobs []domain.Job) *store.Store {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "train.db"), zap.NewNop())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	if _, err := s.UpsertBatch(context.Background(), jobs); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return s
}

// trainingCorpus generates enough labeled rows for both trainers: half
// Data Scientists at one salary level, half Data Engineers at another.
func trainingCorpus(n int) []domain.Job {
	jobs := make([]domain.Job, 0, n)
	for i := 0; i < n; i++ {
		j := domain.Job{
			ID:       fmt.Sprintf("ds-%d", i),
			Title:    "Data Scientist",
			Company:  "Acme",
			Location: "NY",
			Description: "analyze data and train models in python",
			SalaryMin:   100000,
			SalaryMax:   120000,
			SalaryAvg:   110000,
		}
		if i%2 == 1 {
			j.ID = fmt.Sprintf("de-%d", i)
			j.Title = "Data Engineer"
			j.Company = "Initech"
			j.Location = "SF"
			j.Description = "build spark pipelines and warehouses"
			j.SalaryMin = 80000
			j.SalaryMax = 100000
			j.SalaryAvg = 90000
		}
		jobs = append(jobs, j)
	}
	return jobs
}

func TestSalaryModelTraining(t *testing.T) {
	st := seededStore(t, trainingCorpus(60))
	dir := t.TempDir()

	m, err := SalaryModel(context.Background(), st, dir, zap.NewNop())
	if err != nil {
		t.Fatalf("SalaryModel: %v", err)
	}
	if m.TrainedOn != 60 {
		t.Errorf("trained_on = %d, want 60", m.TrainedOn)
	}

	// All three features fully determine the class here, so the prediction
	// collapses to the class mean.
	pred, err := m.Predict("Data Scientist", "NY", "Acme")
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	if pred.PredictedSalary != 110000 {
		t.Errorf("predicted = %v, want 110000", pred.PredictedSalary)
	}

	pred, err = m.Predict("Data Engineer", "SF", "Initech")
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	if pred.PredictedSalary != 90000 {
		t.Errorf("predicted = %v, want 90000", pred.PredictedSalary)
	}

	// Artifact must be loadable by the serving path.
	loaded, err := ml.LoadSalaryModel(dir)
	if err != nil {
		t.Fatalf("LoadSalaryModel: %v", err)
	}
	if _, err := loaded.Predict("Underwater Basket Weaver", "NY", "Acme"); err == nil {
		t.Error("expected unknown-category error after load")
	}
}

func TestSalaryModelNeedsEnoughRows(t *testing.T) {
	st := seededStore(t, trainingCorpus(10))
	if _, err := SalaryModel(context.Background(), st, t.TempDir(), zap.NewNop()); err == nil {
		t.Error("expected error with too few salary rows")
	}
}

func TestCategoryModelTraining(t *testing.T) {
	st := seededStore(t, trainingCorpus(40))
	dir := t.TempDir()

	m, err := CategoryModel(context.Background(), st, dir, "", zap.NewNop())
	if err != nil {
		t.Fatalf("CategoryModel: %v", err)
	}

	pred := m.Predict("Senior Data Scientist", "python models and analysis")
	if pred.PredictedCategory != "Data Scientist" {
		t.Errorf("category = %q, want Data Scientist (confidence %v)",
			pred.PredictedCategory, pred.Confidence)
	}

	pred = m.Predict("Data Engineer", "spark pipelines")
	if pred.PredictedCategory != "Data Engineer" {
		t.Errorf("category = %q, want Data Engineer", pred.PredictedCategory)
	}

	if _, err := ml.LoadCategoryModel(dir); err != nil {
		t.Fatalf("LoadCategoryModel: %v", err)
	}
}

func TestCategorize(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"Senior Machine Learning Engineer", "ML Engineer"},
		{"Data Scientist II", "Data Scientist"},
		{"Business Analyst", "Data Analyst"},
		{"Staff Data Engineer", "Data Engineer"},
		{"Head Chef", OtherCategory},
	}
	for _, tc := range cases {
		if got := Categorize(DefaultRules, tc.title); got != tc.want {
			t.Errorf("Categorize(%q) = %q, want %q", tc.title, got, tc.want)
		}
	}
}

func TestLoadRulesFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yml")
	data := []byte("- category: Platform Engineer\n  any: [\"platform\", \"sre\"]\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	rules, err := LoadRules(path)
	if err != nil {
		t.Fatalf("LoadRules: %v", err)
	}
	if got := Categorize(rules, "SRE / Platform Engineer"); got != "Platform Engineer" {
		t.Errorf("Categorize = %q", got)
	}
}
