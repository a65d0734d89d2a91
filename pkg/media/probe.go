package media

import (
	"encoding/json"
	"strconv"

	"github.com/pkg/errors"
	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// Probe reads media duration via ffprobe.
type Probe struct{}

func NewProbe() *Probe {
	return &Probe{}
}

// Duration returns the duration of a local media file in seconds.
func (p *Probe) Duration(localPath string) (float64, error) {
	raw, err := ffmpeg.Probe(localPath)
	if err != nil {
		return 0, errors.WithMessage(err, "ffprobe")
	}

	var meta struct {
		Format struct {
			Duration string `json:"duration"`
		} `json:"format"`
	}
	if err := json.Unmarshal([]byte(raw), &meta); err != nil {
		return 0, errors.WithMessage(err, "parse ffprobe output")
	}

	seconds, err := strconv.ParseFloat(meta.Format.Duration, 64)
	if err != nil {
		return 0, errors.WithMessage(err, "parse duration")
	}
	return seconds, nil
}
