package serviceImp

import (
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"gardenplan/entities"
	repo "gardenplan/pkg/seed/repository"
	"gardenplan/pkg/seed/service"
)

type seedSvc struct{ r repo.SeedRepository }

func New(r repo.SeedRepository) service.SeedService { return &seedSvc{r} }

// Header matching is tolerant: case, spaces, dashes and underscores are
// ignored so hand-made spreadsheets keep working.
func norm(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "\uFEFF")
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, "_", "")
	return s
}

func (s *seedSvc) ImportXLSX(uid string, r io.Reader) ([]entities.Seed, error) {
	x, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer x.Close()

	sheets := x.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}
	rows, err := x.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, errors.New("sheet has no data rows")
	}

	hmap := map[string]int{}
	for i, h := range rows[0] {
		hmap[norm(h)] = i
	}
	findAny := func(keys ...string) int {
		for _, k := range keys {
			if idx, ok := hmap[norm(k)]; ok {
				return idx
			}
		}
		return -1
	}

	cName := findAny("name", "seed", "crop")
	cVar := findAny("variety", "cultivar", "sort")
	cType := findAny("sowing_type", "sowing", "method")
	cPre := findAny("presow_weeks", "presow_duration_weeks", "presow")
	cGrow := findAny("grow_weeks", "grow_duration_weeks", "grow")
	cHarv := findAny("harvest_weeks", "harvest_duration_weeks", "harvest")
	cPMon := findAny("planting_months", "sow_months")
	cHMon := findAny("harvest_months")
	cNote := findAny("notes", "note", "remark")

	if cName == -1 {
		return nil, errors.New("missing required column: name")
	}

	var out []entities.Seed
	for _, rec := range rows[1:] {
		get := func(idx int) string {
			if idx < 0 || idx >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[idx])
		}
		name := get(cName)
		if name == "" {
			continue
		}
		sd := entities.Seed{
			UserID:     uid,
			Name:       name,
			Variety:    get(cVar),
			SowingType: parseSowingType(get(cType)),
			Notes:      get(cNote),
		}
		sd.PresowDurationWeeks = parseWeeks(get(cPre))
		sd.GrowDurationWeeks = parseWeeks(get(cGrow))
		sd.HarvestDurationWeeks = parseWeeks(get(cHarv))
		sd.PlantingMonths = parseMonths(get(cPMon))
		sd.HarvestMonths = parseMonths(get(cHMon))
		out = append(out, sd)
	}
	if len(out) == 0 {
		return nil, errors.New("no usable rows")
	}
	if err := s.r.BulkInsert(out); err != nil {
		return nil, err
	}
	return out, nil
}

func parseSowingType(v string) string {
	switch norm(v) {
	case "presow", "transplant", "indoor":
		return "presow"
	default:
		return "direct"
	}
}

func parseWeeks(v string) *int {
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return nil
	}
	return &n
}

func parseMonths(v string) []int {
	if v == "" {
		return nil
	}
	var out []int
	for _, part := range strings.Split(v, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err == nil && n >= 1 && n <= 12 {
			out = append(out, n)
		}
	}
	return out
}
