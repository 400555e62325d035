package catalog

import (
	"encoding/csv"
	"errors"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// AgronomySheet is the preferred sheet name in an agronomy workbook. When it is
// missing the first sheet is read.
const AgronomySheet = "Agronomy"

// LoadFromFiles builds a catalog from a crop CSV and an agronomy XLSX workbook.
// An empty path selects the built-in table for that part.
func LoadFromFiles(cropCSV, agronomyXLSX string) (*Catalog, error) {
	crops := DefaultCrops()
	agro := DefaultAgronomyTable()

	if cropCSV != "" {
		f, err := os.Open(cropCSV)
		if err != nil {
			return nil, eris.Wrap(err, "catalog: open crop csv")
		}
		defer f.Close()
		if crops, err = ReadCropsCSV(f); err != nil {
			return nil, eris.Wrapf(err, "catalog: read %s", cropCSV)
		}
	}
	if agronomyXLSX != "" {
		var err error
		if agro, err = ReadAgronomyXLSX(agronomyXLSX); err != nil {
			return nil, err
		}
	}

	c, err := New(crops, agro)
	if err != nil {
		return nil, err
	}
	zap.L().Info("catalog: loaded",
		zap.Int("crops", c.Len()),
		zap.Int("agronomy_rows", len(agro)),
		zap.String("crop_csv", cropCSV),
		zap.String("agronomy_xlsx", agronomyXLSX),
	)
	return c, nil
}

// normHeader folds a header cell so aliases like "Growth Days" and "growth_days" match.
func normHeader(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "\uFEFF")
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, "_", "")
	return s
}

type columns map[string]int

func headerColumns(head []string) columns {
	m := columns{}
	for i, h := range head {
		m[normHeader(h)] = i
	}
	return m
}

// find returns the index of the first alias present, or -1.
func (m columns) find(keys ...string) int {
	for _, k := range keys {
		if idx, ok := m[normHeader(k)]; ok {
			return idx
		}
	}
	return -1
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, "|") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// ReadCropsCSV parses crop definitions. Required columns: id, name, temp_min, temp_max,
// rain_min, rain_max, ph_min, ph_max, avg_price, demand, trend, growth_days, water_mm.
// Optional: varieties, soil_types, traits, practices (pipe-separated lists).
func ReadCropsCSV(r io.Reader) ([]CropDefinition, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	head, err := cr.Read()
	if err != nil {
		return nil, eris.Wrap(err, "read header")
	}
	h := headerColumns(head)

	cols := map[string]int{
		"id":          h.find("id", "crop_id"),
		"name":        h.find("name", "crop", "crop_name"),
		"temp_min":    h.find("temp_min", "temperature_min"),
		"temp_max":    h.find("temp_max", "temperature_max"),
		"rain_min":    h.find("rain_min", "rainfall_min"),
		"rain_max":    h.find("rain_max", "rainfall_max"),
		"ph_min":      h.find("ph_min"),
		"ph_max":      h.find("ph_max"),
		"avg_price":   h.find("avg_price", "price"),
		"demand":      h.find("demand"),
		"trend":       h.find("trend"),
		"growth_days": h.find("growth_days", "growth_duration", "duration"),
		"water_mm":    h.find("water_mm", "water_requirement", "water"),
	}
	var missing []string
	for _, k := range []string{"id", "name", "temp_min", "temp_max", "rain_min", "rain_max", "ph_min", "ph_max", "avg_price", "demand", "trend", "growth_days", "water_mm"} {
		if cols[k] == -1 {
			missing = append(missing, k)
		}
	}
	if len(missing) > 0 {
		return nil, eris.Errorf("crop csv missing columns %v (found %v)", missing, head)
	}
	cVar := h.find("varieties", "variety")
	cSoil := h.find("soil_types", "soils", "soil")
	cTraits := h.find("traits", "flags")
	cPractices := h.find("practices", "notes")

	var out []CropDefinition
	line := 1
	for {
		rec, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, eris.Wrap(err, "read row")
		}
		line++
		get := func(idx int) string {
			if idx < 0 || idx >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[idx])
		}
		num := func(key string) (float64, error) {
			v, err := strconv.ParseFloat(get(cols[key]), 64)
			if err != nil {
				return 0, eris.Errorf("line %d: %s: %q is not a number", line, key, get(cols[key]))
			}
			return v, nil
		}
		if strings.Join(rec, "") == "" {
			continue
		}

		cd := CropDefinition{
			ID:        get(cols["id"]),
			Name:      get(cols["name"]),
			Varieties: splitList(get(cVar)),
			Practices: splitList(get(cPractices)),
		}
		var vals [9]float64
		for i, k := range []string{"temp_min", "temp_max", "rain_min", "rain_max", "ph_min", "ph_max", "avg_price", "growth_days", "water_mm"} {
			if vals[i], err = num(k); err != nil {
				return nil, err
			}
		}
		for i, k := range []string{"temp", "rain", "ph"} {
			if vals[2*i] > vals[2*i+1] {
				return nil, eris.Errorf("line %d: %s_min %v is above %s_max %v", line, k, vals[2*i], k, vals[2*i+1])
			}
		}
		if vals[7] != math.Trunc(vals[7]) || vals[7] < 0 {
			return nil, eris.Errorf("line %d: growth_days: %q is not a whole number of days", line, get(cols["growth_days"]))
		}
		cd.Optimal.Temperature = Range{Min: vals[0], Max: vals[1]}
		cd.Optimal.Rainfall = Range{Min: vals[2], Max: vals[3]}
		cd.Optimal.PH = Range{Min: vals[4], Max: vals[5]}
		cd.Market.AvgPrice = vals[6]
		cd.GrowthDuration = int(vals[7])
		cd.WaterRequirement = vals[8]

		if cd.Market.Demand, err = ParseDemand(get(cols["demand"])); err != nil {
			return nil, eris.Wrapf(err, "line %d", line)
		}
		if cd.Market.Trend, err = ParseTrend(get(cols["trend"])); err != nil {
			return nil, eris.Wrapf(err, "line %d", line)
		}
		for _, s := range splitList(get(cSoil)) {
			t, err := ParseTexture(s)
			if err != nil {
				return nil, eris.Wrapf(err, "line %d", line)
			}
			cd.Optimal.SoilTypes = append(cd.Optimal.SoilTypes, t)
		}
		for _, t := range splitList(get(cTraits)) {
			switch normHeader(t) {
			case "nitrogenfixing":
				cd.Traits.NitrogenFixing = true
			case "organicmatter", "organicmatterresponsive":
				cd.Traits.OrganicMatterResponsive = true
			case "pestresistant":
				cd.Traits.PestResistant = true
			case "intensive", "intensivemanagement":
				cd.Traits.IntensiveManagement = true
			default:
				return nil, eris.Errorf("line %d: unknown trait %q", line, t)
			}
		}
		out = append(out, cd)
	}
	return out, nil
}

// ReadAgronomyXLSX reads per-crop constants from a workbook. Header aliases follow the
// crop CSV rules; crop_id is required, blank numeric cells take DefaultAgronomy values.
func ReadAgronomyXLSX(path string) (map[string]Agronomy, error) {
	x, err := excelize.OpenFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "catalog: open agronomy xlsx")
	}
	defer x.Close()

	sheet := AgronomySheet
	if idx, _ := x.GetSheetIndex(sheet); idx == -1 {
		list := x.GetSheetList()
		if len(list) == 0 {
			return nil, eris.New("catalog: agronomy workbook has no sheets")
		}
		sheet = list[0]
	}
	rows, err := x.GetRows(sheet)
	if err != nil {
		return nil, eris.Wrapf(err, "catalog: read sheet %s", sheet)
	}
	if len(rows) == 0 {
		return nil, eris.Errorf("catalog: sheet %s is empty", sheet)
	}

	h := headerColumns(rows[0])
	cID := h.find("crop_id", "id", "crop")
	if cID == -1 {
		return nil, eris.Errorf("catalog: sheet %s missing crop_id column (found %v)", sheet, rows[0])
	}
	cYield := h.find("base_yield", "yield", "yield_t_ha")
	cCost := h.find("base_cost", "cost", "cost_per_ha")
	cFert := h.find("base_fertilizer", "fertilizer", "fertilizer_kg_ha")
	cLabor := h.find("base_labor", "labor", "labor_hours_ha")
	cPlant := h.find("planting_window", "planting")
	cHarvest := h.find("harvest_window", "harvest")

	out := map[string]Agronomy{}
	for i, rec := range rows[1:] {
		get := func(idx int) string {
			if idx < 0 || idx >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[idx])
		}
		id := get(cID)
		if id == "" {
			continue
		}
		num := func(idx int, def float64) (float64, error) {
			s := get(idx)
			if s == "" {
				return def, nil
			}
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return 0, eris.Errorf("catalog: sheet %s row %d: %q is not a number", sheet, i+2, s)
			}
			return v, nil
		}
		a := DefaultAgronomy()
		if a.BaseYieldPerHa, err = num(cYield, a.BaseYieldPerHa); err != nil {
			return nil, err
		}
		if a.BaseCostPerHa, err = num(cCost, a.BaseCostPerHa); err != nil {
			return nil, err
		}
		if a.BaseFertilizerPerHa, err = num(cFert, a.BaseFertilizerPerHa); err != nil {
			return nil, err
		}
		if a.BaseLaborPerHa, err = num(cLabor, a.BaseLaborPerHa); err != nil {
			return nil, err
		}
		if v := get(cPlant); v != "" {
			a.PlantingWindow = v
		}
		if v := get(cHarvest); v != "" {
			a.HarvestWindow = v
		}
		out[id] = a
	}
	return out, nil
}

// ParseTexture validates a soil texture tag.
func ParseTexture(s string) (Texture, error) {
	switch t := Texture(strings.ToLower(strings.TrimSpace(s))); t {
	case Sandy, Loamy, Clay:
		return t, nil
	}
	return "", eris.Errorf("unknown soil texture %q", s)
}

// ParseDemand validates a demand level.
func ParseDemand(s string) (Demand, error) {
	switch d := Demand(strings.ToLower(strings.TrimSpace(s))); d {
	case DemandLow, DemandMedium, DemandHigh:
		return d, nil
	}
	return "", eris.Errorf("unknown demand %q", s)
}

// ParseTrend validates a price trend.
func ParseTrend(s string) (Trend, error) {
	switch t := Trend(strings.ToLower(strings.TrimSpace(s))); t {
	case TrendDeclining, TrendStable, TrendGrowing:
		return t, nil
	}
	return "", eris.Errorf("unknown trend %q", s)
}
