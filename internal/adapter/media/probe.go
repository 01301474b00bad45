package media

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"salon-ads/internal/config/configs"
	"salon-ads/internal/core/domain"
	"salon-ads/internal/core/port"
)

type runFunc func(ctx context.Context, name string, args ...string) ([]byte, error)

func execRun(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// Prober measures playback duration. Images get a fixed duration; videos
// are read by ffprobe from a temporary copy of the upload.
type Prober struct {
	cfg    configs.Media
	run    runFunc
	logger *slog.Logger
}

// NewProber creates a prober that shells out to cfg.FFProbePath.
func NewProber(cfg configs.Media, logger *slog.Logger) *Prober {
	if cfg.ImageDuration <= 0 {
		cfg.ImageDuration = domain.DefaultImageDuration
	}
	return &Prober{cfg: cfg, run: execRun, logger: logger}
}

// ProbeDuration returns whole seconds, rounded up. The body is left at an
// unspecified offset.
func (p *Prober) ProbeDuration(ctx context.Context, kind domain.MediaKind, body io.ReadSeeker) (int, error) {
	switch kind {
	case domain.MediaImage:
		return int(p.cfg.ImageDuration.Seconds()), nil
	case domain.MediaVideo:
		return p.probeVideo(ctx, body)
	default:
		return 0, fmt.Errorf("%w: unknown media kind %q", domain.ErrInvalidArgument, kind)
	}
}

func (p *Prober) probeVideo(ctx context.Context, body io.ReadSeeker) (int, error) {
	f, err := os.CreateTemp("", "salonads-probe-*")
	if err != nil {
		return 0, fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(f.Name())
	defer f.Close()

	if _, err = body.Seek(0, io.SeekStart); err != nil {
		return 0, fmt.Errorf("rewind upload: %w", err)
	}
	if _, err = io.Copy(f, body); err != nil {
		return 0, fmt.Errorf("copy upload: %w", err)
	}

	if p.cfg.ProbeTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.cfg.ProbeTimeout)
		defer cancel()
	}
	out, err := p.run(ctx, p.cfg.FFProbePath,
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		f.Name(),
	)
	if err != nil {
		return 0, fmt.Errorf("ffprobe: %w", err)
	}
	secs, err := parseDuration(out)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrInvalidArgument, err)
	}
	p.logger.Debug("video probed", slog.Int("duration", secs))
	return secs, nil
}

func parseDuration(out []byte) (int, error) {
	s := strings.TrimSpace(string(out))
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("unreadable video duration %q", s)
	}
	return int(math.Ceil(v)), nil
}

var _ port.MediaProber = (*Prober)(nil)
