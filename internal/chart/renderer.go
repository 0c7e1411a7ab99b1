// Package chart renders the portal's artifact set: the league ranking graph,
// per-team radar/table/record images, team run and Pythagorean charts, the
// per-player chart trio, the player comparison chart and the stadium map.
// Each render writes exactly one artifact at the path the catalog dictates.
package chart

import (
	"fmt"
	"strconv"

	"github.com/fogleman/gg"

	"github.com/wonny/kbostats/internal/artifact"
	"github.com/wonny/kbostats/pkg/logger"
)

// Renderer draws chart artifacts with a probed Korean font.
// 렌더링은 단일 스레드 전제 (요청 핸들러/기동 훅에서만 호출)
type Renderer struct {
	catalog *artifact.Catalog
	log     *logger.Logger

	fontProbed bool
	fontPath   string
}

// New creates a renderer over the catalog.
func New(catalog *artifact.Catalog, log *logger.Logger) *Renderer {
	return &Renderer{catalog: catalog, log: log}
}

// Catalog exposes the path convention to callers that serve artifacts.
func (r *Renderer) Catalog() *artifact.Catalog { return r.catalog }

// applyFont re-applies the Korean font on a fresh context. Called at the top
// of every renderer so correctness never depends on call order. Numeric text
// is always formatted with the ASCII hyphen-minus, so negative values render
// with any face.
func (r *Renderer) applyFont(dc *gg.Context, points float64) {
	if !r.fontProbed {
		r.fontPath = findKoreanFont()
		r.fontProbed = true
		if r.fontPath == "" {
			r.log.Warn("한글 폰트를 찾지 못해 기본 산세리프로 대체")
		} else {
			r.log.WithField("font", r.fontPath).Debug("Korean font selected")
		}
	}
	if r.fontPath == "" {
		return // gg 기본 face 사용
	}
	if err := dc.LoadFontFace(r.fontPath, points); err != nil {
		r.log.WithError(err).Warn("폰트 로드 실패, 기본 face 사용")
	}
}

// save ensures the parent directory and writes the PNG, overwriting any
// previous generation of the same artifact.
func (r *Renderer) save(dc *gg.Context, path string) error {
	if err := r.catalog.Ensure(path); err != nil {
		return err
	}
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// drawTextBold fakes a bold weight by double-striking with a small offset;
// the probed fonts ship as single-weight files.
func drawTextBold(dc *gg.Context, s string, x, y, ax, ay float64) {
	dc.DrawStringAnchored(s, x, y, ax, ay)
	dc.DrawStringAnchored(s, x+0.6, y, ax, ay)
}

// clearTransparent resets the context to a fully transparent background.
func clearTransparent(dc *gg.Context) {
	dc.SetRGBA(0, 0, 0, 0)
	dc.Clear()
}

// clearOpaque resets the context to a white background.
func clearOpaque(dc *gg.Context) {
	dc.SetRGB(1, 1, 1)
	dc.Clear()
}

// teamColor returns the club's signature colour, defaulting to neutral grey.
func teamColor(name string) string {
	if c, ok := TeamColors[name]; ok {
		return c
	}
	return defaultTeamColor
}

// formatNumber renders a float the way the source documents spell plain
// numbers: no exponent, no trailing zeros.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
