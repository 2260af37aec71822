package models

// IconTarget is one output of the generator: a square PNG of Size pixels at Path.
type IconTarget struct {
	Folder string `json:"folder,omitempty"`
	Size   int    `json:"size"`
	Path   string `json:"path"`
}
