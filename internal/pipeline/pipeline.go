// Package pipeline orchestrates loading ROM images and running a command.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/retroenv/ctromutil/internal/detector"
	"github.com/retroenv/ctromutil/internal/loader"
	"github.com/retroenv/ctromutil/internal/offsets"
	"github.com/retroenv/ctromutil/internal/options"
	"github.com/retroenv/ctromutil/internal/report"
	"github.com/retroenv/ctromutil/internal/rom"
	"github.com/retroenv/ctromutil/internal/verification"
	"github.com/retroenv/retrogolib/log"
)

// Pipeline runs a single command.
type Pipeline struct {
	logger   *log.Logger
	detector *detector.Detector
	loader   *loader.Loader
}

// New creates a new command pipeline.
func New(logger *log.Logger) *Pipeline {
	return &Pipeline{
		logger:   logger,
		detector: detector.New(logger),
		loader:   loader.New(),
	}
}

// Execute runs the command of the options and writes its output to writer.
func (p *Pipeline) Execute(ctx context.Context, opts options.Program, writer io.Writer) error {
	switch opts.Command {
	case options.Offsets:
		report.Offsets(writer, offsets.Sorted())
		return nil

	case options.Compare:
		return p.compare(ctx, opts, writer)

	case options.Info, options.Header, options.Checksum, options.Hexdump:
		img, err := p.load(opts.Input)
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		p.ExecuteWithImage(opts, img, writer)
		return nil

	default:
		return fmt.Errorf("unsupported command '%s'", opts.Command)
	}
}

// ExecuteWithImage runs a single image command on a pre-loaded image.
func (p *Pipeline) ExecuteWithImage(opts options.Program, img *rom.Image, writer io.Writer) {
	switch opts.Command {
	case options.Info:
		p.verify(img)
		report.Info(writer, filepath.Base(opts.Input), img)

	case options.Header:
		report.Header(writer, img)

	case options.Checksum:
		p.verify(img)
		report.Checksum(writer, verification.Checksum(img))

	case options.Hexdump:
		p.logger.Debug("Dumping range",
			log.Hex("offset", opts.Offset),
			log.Int("length", opts.Length))
		report.HexDump(writer, img, opts.Offset, opts.Length)
	}
}

func (p *Pipeline) compare(ctx context.Context, opts options.Program, writer io.Writer) error {
	original, modified, err := p.loader.LoadPair(opts.Input, opts.Compare)
	if err != nil {
		return fmt.Errorf("loading ROM files: %w", err)
	}
	p.detector.Check(opts.Input, original)
	p.detector.Check(opts.Compare, modified)

	if err := ctx.Err(); err != nil {
		return err
	}

	diffs := original.Compare(modified)
	p.logger.Debug("Compared ROM files",
		log.String("original", opts.Input),
		log.String("modified", opts.Compare),
		log.Int("differences", len(diffs)))

	report.Compare(writer, diffs, opts.Limit)
	return nil
}

func (p *Pipeline) load(path string) (*rom.Image, error) {
	img, err := p.loader.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading ROM file: %w", err)
	}
	p.detector.Check(path, img)
	return img, nil
}

// verify logs a warning for an inconsistent header checksum. Modified ROMs
// commonly carry a stale checksum, so this is not treated as an error.
func (p *Pipeline) verify(img *rom.Image) {
	if err := verification.VerifyChecksum(p.logger, img); err != nil {
		p.logger.Warn("Checksum verification failed", log.Err(err))
	}
}
