package audio

import (
	"fmt"
	"os"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/vorbis"
)

// LoadClip decodes an Ogg Vorbis file fully into memory at the target sample rate
// The returned buffer can be replayed any number of times
func LoadClip(path string, rate beep.SampleRate) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open clip: %w", err)
	}

	stream, format, err := vorbis.Decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("decode clip %s: %w", path, err)
	}
	defer stream.Close()

	var src beep.Streamer = stream
	if format.SampleRate != rate {
		src = beep.Resample(4, format.SampleRate, rate, stream)
	}

	format.SampleRate = rate
	buf := beep.NewBuffer(format)
	buf.Append(src)
	if err := stream.Err(); err != nil {
		return nil, fmt.Errorf("read clip %s: %w", path, err)
	}
	if buf.Len() == 0 {
		return nil, fmt.Errorf("clip %s is empty", path)
	}
	return buf, nil
}
