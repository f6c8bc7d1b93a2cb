package ml

import "math"

// Feature is one categorical input of the salary model: its label encoding
// plus a learned salary offset per class.
type Feature struct {
	Encoding *LabelEncoding `json:"encoding"`
	Offsets  []float64      `json:"offsets"`
}

func (f *Feature) offset(name, value string) (float64, error) {
	code, ok := f.Encoding.Encode(value)
	if !ok || code >= len(f.Offsets) {
		return 0, &UnknownCategoryError{Feature: name, Value: value}
	}
	return f.Offsets[code], nil
}

// SalaryModel predicts an average salary from title, location and company.
// It is a target-encoding regressor: each feature carries one learned
// salary offset per class, and the prediction is the global mean plus the
// average of the three offsets, so correlated features do not over-count.
// The artifact is produced offline by the train-salary command and is
// immutable at serve time.
type SalaryModel struct {
	GlobalMean float64  `json:"global_mean"`
	Title      *Feature `json:"title"`
	Location   *Feature `json:"location"`
	Company    *Feature `json:"company"`
	TrainedOn  int      `json:"trained_on"`
}

// SalaryPrediction is a point estimate for one (title, location, company)
// tuple, echoing the inputs.
type SalaryPrediction struct {
	PredictedSalary float64 `json:"predicted_salary"`
	Title           string  `json:"title"`
	Location        string  `json:"location"`
	Company         string  `json:"company"`
}

// Predict returns the point estimate, or an UnknownCategoryError when any
// input value was never seen during training.
func (m *SalaryModel) Predict(title, location, company string) (*SalaryPrediction, error) {
	t, err := m.Title.offset("title", title)
	if err != nil {
		return nil, err
	}
	l, err := m.Location.offset("location", location)
	if err != nil {
		return nil, err
	}
	c, err := m.Company.offset("company", company)
	if err != nil {
		return nil, err
	}

	predicted := m.GlobalMean + (t+l+c)/3
	if predicted < 0 {
		predicted = 0
	}

	return &SalaryPrediction{
		PredictedSalary: math.Round(predicted*100) / 100,
		Title:           title,
		Location:        location,
		Company:         company,
	}, nil
}
