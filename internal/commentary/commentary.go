// Package commentary asks an LLM for a short insight on a simulated seat.
// The upstream is treated as unreliable: every failure degrades to a fixed
// fallback sentence.
package commentary

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/nirvachan/onoe-sim/internal/impact"
)

const Fallback = "AI analysis currently unavailable due to high traffic."

var ErrUpstreamUnavailable = errors.New("commentary upstream unavailable")

// Request is what the dashboard posts after a simulation.
type Request struct {
	SeatName string        `json:"seatName"`
	SeatType string        `json:"seatType"`
	Metrics  impact.Report `json:"metrics"`
}

// Generator turns a prompt into text.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type Options struct {
	Cache   Cache
	TTL     time.Duration
	Timeout time.Duration
	Logger  *zap.Logger
}

type Service struct {
	gen     Generator
	cache   Cache
	ttl     time.Duration
	timeout time.Duration
	log     *zap.Logger
}

// NewService wires gen behind an optional cache. A nil gen always answers
// with Fallback.
func NewService(gen Generator, opts Options) *Service {
	s := &Service{gen: gen, cache: opts.Cache, ttl: opts.TTL, timeout: opts.Timeout, log: opts.Logger}
	if s.log == nil {
		s.log = zap.NewNop()
	}
	if s.timeout <= 0 {
		s.timeout = 15 * time.Second
	}
	return s
}

// Analyze never fails; upstream errors are logged and replaced by Fallback.
func (s *Service) Analyze(ctx context.Context, req Request) string {
	text, err := s.analyze(ctx, req)
	if err != nil {
		s.log.Warn("commentary fallback", zap.String("seat", req.SeatName), zap.Error(err))
		return Fallback
	}
	return text
}

func (s *Service) analyze(ctx context.Context, req Request) (string, error) {
	if s.gen == nil {
		return "", fmt.Errorf("%w: no generator configured", ErrUpstreamUnavailable)
	}
	key := cacheKey(req)
	if s.cache != nil {
		if text, err := s.cache.Get(ctx, key); err == nil {
			return text, nil
		} else if !errors.Is(err, ErrCacheMiss) {
			s.log.Debug("commentary cache read", zap.Error(err))
		}
	}

	cctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	text, err := s.gen.Generate(cctx, Prompt(req))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("%w: empty response", ErrUpstreamUnavailable)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, text, s.ttl); err != nil {
			s.log.Debug("commentary cache write", zap.Error(err))
		}
	}
	return text, nil
}

// Prompt renders the analyst prompt for req.
func Prompt(req Request) string {
	m := req.Metrics
	var b strings.Builder
	fmt.Fprintf(&b, "Act as a political data analyst. Analyze the impact of 'One Nation One Election' on the constituency %q which is a %q area.\n", req.SeatName, req.SeatType)
	b.WriteString("Data:\n")
	fmt.Fprintf(&b, "- MCC Days reduced from %d to %d.\n", m.Gov.MCC.Curr, m.Gov.MCC.ONOE)
	fmt.Fprintf(&b, "- Election Cost reduced from ₹%g Lakhs to ₹%g Lakhs.\n", m.Fin.Cost.Curr, m.Fin.Cost.ONOE)
	fmt.Fprintf(&b, "- Administrative Deployments reduced from %d to %d.\n", m.Admin.Deployments.Curr, m.Admin.Deployments.ONOE)
	b.WriteString("\nWrite a concise, professional 2-sentence insight explaining how this specific reduction benefits this specific type of area. Do not use asterisks.")
	return b.String()
}

func cacheKey(req Request) string {
	buf, _ := json.Marshal(req)
	sum := sha256.Sum256(buf)
	return "onoe:commentary:" + hex.EncodeToString(sum[:16])
}
