package ingesting

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/vfg2006/postwise-api/internal/domain"
	"github.com/vfg2006/postwise-api/pkg/utils"
)

// RowIssue descreve uma linha descartada na validação
type RowIssue struct {
	Line   int    `json:"line"`
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// columnWidths acompanha os VARCHAR de metric_rows
var columnWidths = map[string]int{
	"campaign":  255,
	"ad_group":  255,
	"ad":        255,
	"audience":  255,
	"placement": 255,
	"device":    64,
}

const maxFileNameLength = 255

// InferPlatform identifica a plataforma pelo nome do arquivo
func InferPlatform(fileName string) domain.Platform {
	if strings.Contains(strings.ToLower(fileName), "google") {
		return domain.PlatformGoogle
	}
	return domain.PlatformMeta
}

func buildMetricRow(rec record, platform domain.Platform) (*domain.MetricRow, *RowIssue) {
	invalid := func(field, reason string) *RowIssue {
		return &RowIssue{Line: rec.line, Field: field, Reason: reason}
	}

	rawDate := rec.get("date")
	if rawDate == "" {
		return nil, invalid("date", "required")
	}
	date, err := utils.ParseDate(rawDate)
	if err != nil {
		return nil, invalid("date", err.Error())
	}

	campaign := rec.get("campaign")
	if campaign == "" {
		return nil, invalid("campaign", "required")
	}

	row := &domain.MetricRow{
		Platform:  platform,
		Date:      date,
		Campaign:  campaign,
		AdGroup:   optional(rec, "ad_group"),
		Ad:        optional(rec, "ad"),
		Audience:  optional(rec, "audience"),
		Device:    optional(rec, "device"),
		Placement: optional(rec, "placement"),
	}

	for column, width := range columnWidths {
		if utf8.RuneCountInString(rec.get(column)) > width {
			return nil, invalid(column, "too long")
		}
	}

	base := []struct {
		column string
		target *float64
	}{
		{"impressions", &row.Impressions},
		{"clicks", &row.Clicks},
		{"spend", &row.Spend},
		{"conversions", &row.Conversions},
		{"conv_value", &row.ConvValue},
	}
	for _, f := range base {
		v, err := parseNumber(rec.get(f.column))
		if err != nil {
			return nil, invalid(f.column, err.Error())
		}
		*f.target = v
	}

	derived := []struct {
		column   string
		target   *float64
		fallback float64
	}{
		{"cpc", &row.CPC, utils.Ratio(row.Spend, row.Clicks)},
		{"cpm", &row.CPM, utils.Ratio(row.Spend, row.Impressions) * 1000},
		{"ctr", &row.CTR, utils.Ratio(row.Clicks, row.Impressions)},
		{"cv_rate", &row.CVRate, utils.Ratio(row.Conversions, row.Clicks)},
		{"roas", &row.ROAS, utils.Ratio(row.ConvValue, row.Spend)},
		{"cost_per_conv", &row.CostPerConv, utils.Ratio(row.Spend, row.Conversions)},
	}
	for _, f := range derived {
		v, err := parseNumber(rec.get(f.column))
		if err != nil {
			return nil, invalid(f.column, err.Error())
		}
		// valor informado e diferente de zero tem prioridade sobre o calculado
		if v == 0 {
			v = f.fallback
		}
		*f.target = v
	}

	return row, nil
}

// truncateRunes corta s em no máximo n caracteres sem quebrar sequências UTF-8
func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

func optional(rec record, column string) *string {
	if !rec.has(column) {
		return nil
	}
	v := rec.get(column)
	if v == "" {
		return nil
	}
	return &v
}

func parseNumber(raw string) (float64, error) {
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", raw)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("invalid number %q", raw)
	}
	return v, nil
}
