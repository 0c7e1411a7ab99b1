package chart

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Shared chart palette. 원본 HTML 팔레트와 동일하게 유지.
const (
	colorMaroon   = "#a50034" // 표 헤더 자주색
	colorRed      = "#d9534f" // 공격/행운 강조
	colorBlue     = "#5b7ece" // 수비/득점 강조
	colorNavy     = "#002561" // 레이더/선 그래프 기본색
	colorPaleBlue = "#e8f0fe"
	colorInk      = "#333333"
	colorGreyText = "#555555"
	colorMuted    = "#888888"
	colorGreyBarA = "#aaaaaa"
	colorGreyBarC = "#cccccc"
	colorRing     = "#e0e0e0"
	colorZebra    = "#f9f9f9"
)

// TeamColors keys each club to its signature colour, matching the HTML
// legend on the ranking page.
var TeamColors = map[string]string{
	"KIA": "#EA0029", "KT": "#000000", "LG": "#C30452", "NC": "#315288",
	"SSG": "#CE0E2D", "두산": "#1A1748", "롯데": "#041E42", "삼성": "#074CA1",
	"키움": "#570514", "한화": "#FC4E00",
}

// defaultTeamColor backs teams missing from the palette.
const defaultTeamColor = "#333333"

// fontDirs are the locations probed for a Korean-capable TTF, mirroring a
// system font list walk across the platforms the portal deploys on.
var fontDirs = []string{
	"/usr/share/fonts",
	"/usr/local/share/fonts",
	"/Library/Fonts",
	"/System/Library/Fonts",
	`C:\Windows\Fonts`,
}

// fontSubstrings is the probe priority: Nanum 계열 > Gothic 계열 > Malgun 계열.
var fontSubstrings = []string{"nanum", "gothic", "malgun"}

// findKoreanFont walks the system font directories and returns the first TTF
// whose name matches the highest-priority substring. Empty string means no
// match; rendering then falls back to the context's generic sans face.
func findKoreanFont() string {
	var dirs []string
	dirs = append(dirs, fontDirs...)
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".fonts"), filepath.Join(home, "Library", "Fonts"))
	}

	candidates := make([]string, 0, 64)
	for _, dir := range dirs {
		_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil // 접근 불가 폴더는 무시
			}
			if d.IsDir() {
				return nil
			}
			ext := strings.ToLower(filepath.Ext(path))
			if ext == ".ttf" || ext == ".otf" {
				candidates = append(candidates, path)
			}
			return nil
		})
	}

	for _, sub := range fontSubstrings {
		for _, path := range candidates {
			if strings.Contains(strings.ToLower(filepath.Base(path)), sub) {
				return path
			}
		}
	}
	return ""
}
