package chart

import (
	"fmt"

	"github.com/fogleman/gg"

	"github.com/wonny/kbostats/internal/dataset"
)

// cell is one styled table cell.
type cell struct {
	text string
	bg   string
	fg   string
	bold bool
}

// drawRow paints one table row: filled cells with white separators.
func (r *Renderer) drawRow(dc *gg.Context, cells []cell, x, y float64, widths []float64, height, points float64) {
	cx := x
	for i, c := range cells {
		w := widths[i]
		if c.bg != "" {
			dc.SetHexColor(c.bg)
			dc.DrawRectangle(cx, y, w, height)
			dc.Fill()
		}
		// 셀 구분은 흰 테두리 (깔끔하게)
		dc.SetRGB(1, 1, 1)
		dc.SetLineWidth(2)
		dc.DrawRectangle(cx, y, w, height)
		dc.Stroke()

		r.applyFont(dc, points)
		dc.SetHexColor(c.fg)
		if c.bold {
			drawTextBold(dc, c.text, cx+w/2, y+height/2, 0.5, 0.5)
		} else {
			dc.DrawStringAnchored(c.text, cx+w/2, y+height/2, 0.5, 0.5)
		}
		cx += w
	}
}

// WAA table cell colouring thresholds.
const (
	waaStrong = 0.5
	waaWeak   = -0.5
)

// WAATable renders a team's five-row WAA breakdown (부문/기록/순위) as an
// image. The value cell is badge-coloured for clearly strong or weak
// categories. Writes static/image/table/table_{team}.png.
func (r *Renderer) WAATable(team dataset.TeamRecord) error {
	const (
		tableW  = 500
		tableH  = 400
		margin  = 20.0
		headerH = 56.0
	)

	dc := gg.NewContext(tableW, tableH)
	clearOpaque(dc)

	innerW := float64(tableW) - 2*margin
	widths := []float64{innerW * 0.34, innerW * 0.33, innerW * 0.33}
	rowH := (float64(tableH) - 2*margin - headerH) / float64(len(radarAxes))

	header := []cell{
		{text: "부문", bg: colorMaroon, fg: "#ffffff", bold: true},
		{text: "기록", bg: colorMaroon, fg: "#ffffff", bold: true},
		{text: "순위", bg: colorMaroon, fg: "#ffffff", bold: true},
	}
	r.drawRow(dc, header, margin, margin, widths, headerH, 18)

	y := margin + headerH
	for i, axis := range radarAxes {
		waa := team.WAA(axis.category)
		rank := team.WAARank(axis.category)

		// 교차 행 배경 (기록 컬럼 제외)
		zebra := ""
		if (i+1)%2 == 0 {
			zebra = colorZebra
		}

		valueCell := cell{text: formatNumber(waa), fg: colorGreyText}
		switch {
		case waa > waaStrong:
			valueCell.bg = colorPaleBlue
			valueCell.fg = colorRed
			valueCell.bold = true
		case waa < waaWeak:
			valueCell.bg = colorPaleBlue
			valueCell.fg = colorBlue
			valueCell.bold = true
		}

		row := []cell{
			{text: axis.label, bg: zebra, fg: colorInk},
			valueCell,
			{text: fmt.Sprintf("%d위", rank), bg: zebra, fg: colorInk},
		}
		r.drawRow(dc, row, margin, y, widths, rowH, 17)
		y += rowH
	}

	return r.save(dc, r.catalog.WAATable(team.Name))
}

// HeadToHeadTable renders the single-row record table for one ordered
// matchup (vs {opponent} | 승 | 무 | 패 | 승률). The PCT cell is badge-red at
// .500 or better, badge-blue below; an unparsable PCT renders "-" and counts
// as 0. Writes static/image/record/record_{team}_vs_{opp}.png.
//
// Callers must skip the sentinel record where opponent equals team.
func (r *Renderer) HeadToHeadTable(team string, rec dataset.HeadToHeadRecord) error {
	const (
		recordW = 600
		recordH = 120
		margin  = 8.0
		headerH = 42.0
	)

	dc := gg.NewContext(recordW, recordH)
	clearOpaque(dc)

	innerW := float64(recordW) - 2*margin
	widths := []float64{innerW * 0.28, innerW * 0.18, innerW * 0.18, innerW * 0.18, innerW * 0.18}
	rowH := float64(recordH) - 2*margin - headerH

	header := make([]cell, 0, 5)
	for _, h := range []string{"대결", "승", "무", "패", "승률"} {
		header = append(header, cell{text: h, bg: colorMaroon, fg: "#ffffff", bold: true})
	}
	r.drawRow(dc, header, margin, margin, widths, headerH, 16)

	pct, err := rec.WinningPCT.Float()
	pctText := "-"
	if err == nil {
		pctText = fmt.Sprintf("%.3f", pct)
	} else {
		pct = 0 // 파싱 실패는 0 취급 (파란 뱃지)
	}
	badge := colorBlue
	if pct >= 0.5 {
		badge = colorRed
	}

	row := []cell{
		{text: "vs " + rec.Opponent, bg: "#ffffff", fg: colorInk},
		{text: rec.W.String(), bg: "#ffffff", fg: colorInk},
		{text: rec.D.String(), bg: "#ffffff", fg: colorInk},
		{text: rec.L.String(), bg: "#ffffff", fg: colorInk},
		{text: pctText, bg: badge, fg: "#ffffff", bold: true},
	}
	r.drawRow(dc, row, margin, margin+headerH, widths, rowH, 17)

	return r.save(dc, r.catalog.HeadToHead(team, rec.Opponent))
}
