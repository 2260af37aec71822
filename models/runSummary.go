package models

// RunSummary collects the outcome of one generator run. Attempted and
// Succeeded count the size table only; the store icon is reported in Store.
type RunSummary struct {
	Source    SourceInfo     `json:"source"`
	Results   []ResizeResult `json:"results"`
	Attempted int            `json:"attempted"`
	Succeeded int            `json:"succeeded"`
	Store     *ResizeResult  `json:"store,omitempty"`
}

func (s *RunSummary) Add(r ResizeResult) {
	s.Results = append(s.Results, r)
	s.Attempted++
	if r.Ok() {
		s.Succeeded++
	}
}

func (s *RunSummary) Complete() bool {
	return s.Attempted > 0 && s.Succeeded == s.Attempted
}
