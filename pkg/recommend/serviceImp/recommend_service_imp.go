package serviceImp

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"cropwise/entities"
	"cropwise/pkg/ai"
	"cropwise/pkg/catalog"
	fieldRepo "cropwise/pkg/field/repository"
	measureRepo "cropwise/pkg/measure/repository"
	"cropwise/pkg/recommend/service"
	"cropwise/pkg/suitability"
)

type recommendSvc struct {
	cat      *catalog.Catalog
	fields   fieldRepo.FieldRepository
	measures measureRepo.MeasureRepository
	llm      ai.Client
	limit    int
	now      func() time.Time
}

// NewRecommendService wires the engine to storage. llm may be nil when insights
// are never requested; batchLimit bounds concurrent analyses in RecommendMany.
func NewRecommendService(cat *catalog.Catalog, fields fieldRepo.FieldRepository, measures measureRepo.MeasureRepository, llm ai.Client, batchLimit int) service.RecommendService {
	if batchLimit < 1 {
		batchLimit = 1
	}
	if llm == nil {
		llm = ai.NewMock()
	}
	return &recommendSvc{cat: cat, fields: fields, measures: measures, llm: llm, limit: batchLimit, now: time.Now}
}

func (s *recommendSvc) Crops() []catalog.CropDefinition { return s.cat.Crops() }

func (s *recommendSvc) Recommend(ctx context.Context, req suitability.Request, withInsights bool) (*service.Report, error) {
	if err := req.Normalize(); err != nil {
		return nil, err
	}

	soil, weather, err := suitability.Validate(req)
	if err != nil {
		return nil, err
	}
	results, err := suitability.Analyze(ctx, req, s.cat)
	if err != nil {
		return nil, err
	}

	r := &service.Report{
		AnalysisID:  uuid.NewString(),
		GeneratedAt: s.now().UTC(),
		Field:       req.Field,
		Soil:        soil,
		Weather:     weather,
		Preferences: req.Preferences,
		Results:     results,
	}
	if withInsights {
		r.Insights = s.llm.Summarize(ctx, req.Field, results)
	}

	var best string
	if len(results) > 0 {
		best = results[0].CropID
	}
	zap.L().Info("recommend: analysis complete",
		zap.String("analysis_id", r.AnalysisID),
		zap.String("field_id", req.Field.FieldID),
		zap.Int("crops", len(results)),
		zap.String("best", best),
	)
	return r, nil
}

func (s *recommendSvc) RecommendField(ctx context.Context, uid string, fr service.FieldRequest) (*service.Report, error) {
	f, err := s.fields.FindByID(ctx, fr.FieldID, uid)
	if err != nil {
		return nil, err
	}
	req, err := s.buildRequest(ctx, f, fr)
	if err != nil {
		return nil, err
	}
	return s.Recommend(ctx, req, fr.WithInsights)
}

func (s *recommendSvc) buildRequest(ctx context.Context, f *entities.Field, fr service.FieldRequest) (suitability.Request, error) {
	req := suitability.Request{
		Field: suitability.FieldContext{
			FieldID:     strconv.FormatUint(uint64(f.FieldID), 10),
			Area:        f.AreaHa,
			SoilTexture: catalog.Texture(f.SoilTexture),
		},
	}
	if fr.Preferences != nil {
		req.Preferences = *fr.Preferences
	} else {
		req.Preferences = suitability.DefaultPreferences()
	}

	if fr.Soil != nil {
		req.Soil = *fr.Soil
	} else {
		sample, err := s.measures.LatestSoil(ctx, f.FieldID)
		if err != nil {
			if eris.Is(err, gorm.ErrRecordNotFound) {
				return req, eris.Wrapf(service.ErrMissingProfile, "field %d has no soil sample", f.FieldID)
			}
			return req, err
		}
		req.Soil = SoilFromSample(sample, f)
	}

	if fr.Weather != nil {
		req.Weather = *fr.Weather
	} else {
		summary, err := s.measures.LatestWeather(ctx, f.FieldID)
		if err != nil {
			if eris.Is(err, gorm.ErrRecordNotFound) {
				return req, eris.Wrapf(service.ErrMissingProfile, "field %d has no weather summary", f.FieldID)
			}
			return req, err
		}
		req.Weather = WeatherFromSummary(summary)
	}
	return req, nil
}

func (s *recommendSvc) RecommendMany(ctx context.Context, uid string, reqs []service.FieldRequest) ([]service.BatchItem, error) {
	out := make([]service.BatchItem, len(reqs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.limit)

	for i, fr := range reqs {
		i, fr := i, fr
		g.Go(func() error {
			out[i].FieldID = fr.FieldID
			r, err := s.RecommendField(gctx, uid, fr)
			if err != nil {
				if ctxErr := gctx.Err(); ctxErr != nil {
					return eris.Wrap(ctxErr, "recommend: batch cancelled")
				}
				out[i].Error = err.Error()
				zap.L().Warn("recommend: batch item failed", zap.Uint("field_id", fr.FieldID), zap.Error(err))
				return nil
			}
			out[i].Report = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// SoilFromSample converts a stored sample; texture and drainage fall back to the field's.
func SoilFromSample(m *entities.SoilSample, f *entities.Field) suitability.SoilProfile {
	sp := suitability.SoilProfile{
		PH:            m.PH,
		Nitrogen:      m.Nitrogen,
		Phosphorus:    m.Phosphorus,
		Potassium:     m.Potassium,
		OrganicMatter: m.OrganicMatter,
		Moisture:      m.Moisture,
		Temperature:   m.Temperature,
		Salinity:      m.Salinity,
		Texture:       catalog.Texture(m.Texture),
		Drainage:      suitability.Drainage(m.Drainage),
	}
	if sp.Texture == "" {
		sp.Texture = catalog.Texture(f.SoilTexture)
	}
	if sp.Drainage == "" {
		sp.Drainage = suitability.Drainage(f.Drainage)
	}
	return sp
}

func WeatherFromSummary(w *entities.WeatherSummary) suitability.WeatherProfile {
	return suitability.WeatherProfile{
		AverageTemperature: w.AverageTemperature,
		MinTemperature:     w.MinTemperature,
		MaxTemperature:     w.MaxTemperature,
		Rainfall:           w.Rainfall,
		Humidity:           w.Humidity,
		SunlightHours:      w.SunlightHours,
		WindSpeed:          w.WindSpeed,
		FrostDays:          w.FrostDays,
		GrowingSeason:      w.GrowingSeason,
	}
}
