package editor

import (
	"github.com/google/uuid"

	"cropguide/internal/guide"
	"cropguide/internal/selection"
)

// Result 应用时交给宿主的最终结果
type Result struct {
	Session     uuid.UUID      `json:"session" yaml:"session"`
	Source      string         `json:"source,omitempty" yaml:"source,omitempty"`
	ImageWidth  int            `json:"imageWidth" yaml:"image_width"`
	ImageHeight int            `json:"imageHeight" yaml:"image_height"`
	Selection   selection.Rect `json:"selection" yaml:"selection"`
	HasCrop     bool           `json:"hasCrop" yaml:"has_crop"`
	CropWidth   int            `json:"cropWidth" yaml:"crop_width"`
	CropHeight  int            `json:"cropHeight" yaml:"crop_height"`
	Guides      []guide.Guide  `json:"guides" yaml:"guides"`
}

func newResult(s *Session) Result {
	r := s.selection.Rect()
	res := Result{
		Session:     s.id,
		Source:      s.source,
		ImageWidth:  s.guides.Width(),
		ImageHeight: s.guides.Height(),
		Selection:   r,
		Guides:      s.guides.Guides(),
	}
	// 宽或高为零视为没有选区
	if !r.Empty() {
		res.HasCrop = true
		res.CropWidth = r.Width()
		res.CropHeight = r.Height()
	}
	return res
}
