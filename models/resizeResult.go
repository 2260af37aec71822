package models

const (
	Success = "success"
	Failure = "failure"
)

type ResizeResult struct {
	Result string `json:"result"`
	Path   string `json:"path"`
	Size   int    `json:"size"`
	Cached bool   `json:"cached"`
	Error  string `json:"error,omitempty"`
}

func (r ResizeResult) Ok() bool {
	return r.Result == Success
}
