//go:build opencv

package main

import (
	"image"

	"github.com/gogpu/brief"
	"github.com/gogpu/brief/internal/cvref"
	"github.com/gogpu/brief/internal/detect"
)

func init() {
	detectors["opencv"] = func(img *image.Gray, _ detect.FASTConfig) ([]brief.Keypoint, error) {
		return cvref.FAST(img)
	}
	references["opencv"] = func(img *image.Gray, kps []brief.Keypoint, cfg config) (*brief.Descriptors, error) {
		return cvref.BRIEF(img, kps, cfg.size, cfg.orientation)
	}
}
