package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"github.com/dishaportal/disha-backend/internal/app/models"
	"github.com/dishaportal/disha-backend/internal/pkg/apperrors"
	"github.com/dishaportal/disha-backend/internal/pkg/helpers"
)

// AnalyticsService aggregates dashboard figures for the admin views.
type AnalyticsService interface {
	DashboardSummary(ctx context.Context) (*DashboardSummary, error)
	ProgramAnalytics(ctx context.Context) (*ProgramAnalytics, error)
	ToliAnalytics(ctx context.Context, toliID string) (*ToliAnalytics, error)
	ToliPerformance(ctx context.Context) ([]*ToliPerformance, error)
	GrowthTrend(ctx context.Context) ([]MonthCount, error)
	MapData(ctx context.Context) (*MapData, error)
}

// DashboardSummary carries the headline counts shown on the admin dashboard.
type DashboardSummary struct {
	TotalStudents     int64 `json:"total_students"`
	TotalTolis        int64 `json:"total_tolis"`
	PendingTolis      int64 `json:"pending_tolis"`
	ActiveTolis       int64 `json:"active_tolis"`
	TotalPrograms     int64 `json:"total_programs"`
	PendingPrograms   int64 `json:"pending_programs"`
	TotalResources    int64 `json:"total_resources"`
	TotalParticipants int64 `json:"total_participants"`
}

// MonthCount is one point on a month-keyed series.
type MonthCount struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

// GeoCount is a per-state or per-city program tally.
type GeoCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// ProgramAnalytics groups programs by type, month and geography.
type ProgramAnalytics struct {
	TotalPrograms     int            `json:"total_programs"`
	TotalParticipants int            `json:"total_participants"`
	ByType            map[string]int `json:"by_type"`
	ByMonth           []MonthCount   `json:"by_month"`
	ByState           []GeoCount     `json:"by_state"`
	ByCity            []GeoCount     `json:"by_city"`
}

// ToliAnalytics is the per-toli drill-down behind the admin toli view.
type ToliAnalytics struct {
	ToliID            string         `json:"toli_id"`
	TotalPrograms     int            `json:"total_programs"`
	CompletedPrograms int            `json:"completed_programs"`
	OngoingPrograms   int            `json:"ongoing_programs"`
	TotalParticipants int            `json:"total_participants"`
	ByType            map[string]int `json:"by_type"`
	ByMonth           []MonthCount   `json:"by_month"`
}

// MapData is a GeoJSON feature collection of located tolis for the admin map.
type MapData struct {
	Type     string       `json:"type"`
	Features []MapFeature `json:"features"`
}

// MapFeature is one toli pin on the map.
type MapFeature struct {
	Type       string        `json:"type"`
	Properties MapProperties `json:"properties"`
	Geometry   MapGeometry   `json:"geometry"`
}

// MapProperties carries the pin's display fields.
type MapProperties struct {
	Name     string `json:"name"`
	City     string `json:"city"`
	Members  int    `json:"members"`
	Programs int    `json:"programs"`
	Status   string `json:"status"`
}

// MapGeometry is a GeoJSON point, coordinates as [longitude, latitude].
type MapGeometry struct {
	Type        string     `json:"type"`
	Coordinates [2]float64 `json:"coordinates"`
}

// ToliPerformance is one row of the toli leaderboard.
type ToliPerformance struct {
	ToliID            string  `json:"toli_id"`
	ToliNo            string  `json:"toli_no"`
	ToliName          string  `json:"toli_name"`
	Status            string  `json:"status"`
	MemberCount       int     `json:"member_count"`
	ProgramCount      int     `json:"program_count"`
	TotalParticipants int     `json:"total_participants"`
	EngagementScore   float64 `json:"engagement_score"`
}

type analyticsServiceImpl struct {
	userRepo     UserRepo
	toliRepo     ToliRepo
	programRepo  ProgramRepo
	resourceRepo ResourceRepo
	logger       zerolog.Logger
}

// NewAnalyticsService creates a new analytics service instance.
func NewAnalyticsService(userRepo UserRepo, toliRepo ToliRepo, programRepo ProgramRepo, resourceRepo ResourceRepo, logger zerolog.Logger) AnalyticsService {
	return &analyticsServiceImpl{
		userRepo:     userRepo,
		toliRepo:     toliRepo,
		programRepo:  programRepo,
		resourceRepo: resourceRepo,
		logger:       logger,
	}
}

// DashboardSummary returns the headline counts. Counts degrade to zero when
// the database is unreachable.
func (s *analyticsServiceImpl) DashboardSummary(ctx context.Context) (*DashboardSummary, error) {
	summary := &DashboardSummary{
		TotalStudents:   s.userRepo.CountByRole(ctx, models.RoleStudent),
		TotalTolis:      s.toliRepo.Count(ctx),
		PendingTolis:    s.toliRepo.CountByStatus(ctx, models.ToliStatusPending),
		ActiveTolis:     s.toliRepo.CountByStatus(ctx, models.ToliStatusActive),
		TotalPrograms:   s.programRepo.Count(ctx),
		PendingPrograms: s.programRepo.CountByStatus(ctx, models.ProgramStatusPending),
		TotalResources:  s.resourceRepo.Count(ctx),
	}

	programs, err := s.programRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading programs: %w", err)
	}
	for _, p := range programs {
		summary.TotalParticipants += int64(p.TotalPersons)
	}
	return summary, nil
}

// ProgramAnalytics groups all programs by type, by submission month, and by
// state and city.
func (s *analyticsServiceImpl) ProgramAnalytics(ctx context.Context) (*ProgramAnalytics, error) {
	programs, err := s.programRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading programs: %w", err)
	}

	analytics := &ProgramAnalytics{
		TotalPrograms: len(programs),
		ByType:        map[string]int{},
	}
	byMonth := map[string]int{}
	byState := map[string]int{}
	byCity := map[string]int{}
	for _, p := range programs {
		analytics.TotalParticipants += p.TotalPersons
		typ := p.ProgramType
		if typ == "" {
			typ = "other"
		}
		analytics.ByType[typ]++
		byMonth[helpers.MonthKey(p.StartDate)]++
		if p.State != "" {
			byState[p.State]++
		}
		if p.City != "" {
			byCity[p.City]++
		}
	}

	analytics.ByMonth = sortedMonths(byMonth)
	analytics.ByState = sortedGeo(byState)
	analytics.ByCity = sortedGeo(byCity)
	return analytics, nil
}

// ToliAnalytics groups one toli's programs by type and month and tallies its
// lifecycle counts.
func (s *analyticsServiceImpl) ToliAnalytics(ctx context.Context, toliID string) (*ToliAnalytics, error) {
	toli, err := s.toliRepo.GetByID(ctx, toliID)
	if err != nil {
		return nil, fmt.Errorf("error loading toli: %w", err)
	}
	if toli == nil {
		return nil, apperrors.ErrToliNotFound
	}

	programs, err := s.programRepo.ListByToli(ctx, toliID)
	if err != nil {
		return nil, fmt.Errorf("error loading programs for toli %s: %w", toliID, err)
	}

	analytics := &ToliAnalytics{
		ToliID:        toliID,
		TotalPrograms: len(programs),
		ByType:        map[string]int{},
	}
	byMonth := map[string]int{}
	for _, p := range programs {
		analytics.TotalParticipants += p.TotalPersons
		switch p.Status {
		case models.ProgramStatusCompleted:
			analytics.CompletedPrograms++
		case models.ProgramStatusOngoing:
			analytics.OngoingPrograms++
		}
		typ := p.ProgramType
		if typ == "" {
			typ = "other"
		}
		analytics.ByType[typ]++
		byMonth[helpers.MonthKey(p.StartDate)]++
	}
	analytics.ByMonth = sortedMonths(byMonth)
	return analytics, nil
}

// MapData builds the map pins: one point per toli with an assigned city.
func (s *analyticsServiceImpl) MapData(ctx context.Context) (*MapData, error) {
	tolis, err := s.toliRepo.List(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("error loading tolis: %w", err)
	}

	data := &MapData{Type: "FeatureCollection", Features: []MapFeature{}}
	for _, toli := range tolis {
		if toli.Location.City == "" {
			continue
		}
		programs, err := s.programRepo.ListByToli(ctx, toli.ID)
		if err != nil {
			return nil, fmt.Errorf("error loading programs for toli %s: %w", toli.ID, err)
		}
		data.Features = append(data.Features, MapFeature{
			Type: "Feature",
			Properties: MapProperties{
				Name:     toli.Name,
				City:     toli.Location.City,
				Members:  len(toli.Members),
				Programs: len(programs),
				Status:   string(toli.Status),
			},
			Geometry: MapGeometry{Type: "Point", Coordinates: cityCoordinates(toli.Location.City)},
		})
	}
	return data, nil
}

// cityCoordinates maps a city name to [longitude, latitude]. Unknown cities
// fall back to Delhi so every located toli still gets a pin.
func cityCoordinates(city string) [2]float64 {
	coords, ok := knownCityCoordinates[city]
	if !ok {
		return [2]float64{77.2090, 28.6139}
	}
	return coords
}

var knownCityCoordinates = map[string][2]float64{
	"Delhi":     {77.1025, 28.7041},
	"Mumbai":    {72.8777, 19.0760},
	"Bangalore": {77.5946, 12.9716},
	"Chennai":   {80.2707, 13.0827},
	"Kolkata":   {88.3639, 22.5726},
	"Hyderabad": {78.4867, 17.3850},
	"Pune":      {73.8567, 18.5204},
	"Ahmedabad": {72.5714, 23.0225},
	"Jaipur":    {75.7873, 26.9124},
	"Lucknow":   {80.9462, 26.8467},
	"Haridwar":  {78.1642, 29.9457},
	"Rishikesh": {78.2676, 30.0869},
	"Dehradun":  {78.0322, 30.3165},
	"Roorkee":   {77.8888, 29.8543},
}

// ToliPerformance scores every toli by its program output. The score sums a
// programs-per-member term (capped at 40), an average-participants term
// (capped at 30) and a total-programs term (capped at 30), so it always lands
// in [0, 100]. A toli with no members scores zero.
func (s *analyticsServiceImpl) ToliPerformance(ctx context.Context) ([]*ToliPerformance, error) {
	tolis, err := s.toliRepo.List(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("error loading tolis: %w", err)
	}

	rows := make([]*ToliPerformance, 0, len(tolis))
	for _, toli := range tolis {
		programs, err := s.programRepo.ListByToli(ctx, toli.ID)
		if err != nil {
			return nil, fmt.Errorf("error loading programs for toli %s: %w", toli.ID, err)
		}
		row := &ToliPerformance{
			ToliID:       toli.ID,
			ToliNo:       toli.ToliNo,
			ToliName:     toli.Name,
			Status:       string(toli.Status),
			MemberCount:  len(toli.Members),
			ProgramCount: len(programs),
		}
		for _, p := range programs {
			row.TotalParticipants += p.TotalPersons
		}
		row.EngagementScore = engagementScore(row.MemberCount, row.ProgramCount, row.TotalParticipants)
		rows = append(rows, row)
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].EngagementScore != rows[j].EngagementScore {
			return rows[i].EngagementScore > rows[j].EngagementScore
		}
		return rows[i].ToliNo < rows[j].ToliNo
	})
	return rows, nil
}

// GrowthTrend returns toli creation counts keyed by month, oldest first.
func (s *analyticsServiceImpl) GrowthTrend(ctx context.Context) ([]MonthCount, error) {
	tolis, err := s.toliRepo.List(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("error loading tolis: %w", err)
	}
	byMonth := map[string]int{}
	for _, t := range tolis {
		byMonth[helpers.MonthKey(t.CreatedAt)]++
	}
	return sortedMonths(byMonth), nil
}

func engagementScore(members, programs, participants int) float64 {
	if members <= 0 {
		return 0
	}
	perMember := float64(programs) / float64(members) * 10
	if perMember > 40 {
		perMember = 40
	}
	avgParticipants := 0.0
	if programs > 0 {
		avgParticipants = float64(participants) / float64(programs) / 2
	}
	if avgParticipants > 30 {
		avgParticipants = 30
	}
	volume := float64(programs) * 2
	if volume > 30 {
		volume = 30
	}
	score := perMember + avgParticipants + volume
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score
}

func sortedMonths(byMonth map[string]int) []MonthCount {
	out := make([]MonthCount, 0, len(byMonth))
	for month, count := range byMonth {
		out = append(out, MonthCount{Month: month, Count: count})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out
}

func sortedGeo(counts map[string]int) []GeoCount {
	out := make([]GeoCount, 0, len(counts))
	for name, count := range counts {
		out = append(out, GeoCount{Name: name, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	return out
}
