package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/seenimoa/ndastro/internal/astro"
	"github.com/seenimoa/ndastro/internal/chart"
	"github.com/seenimoa/ndastro/internal/i18n"
	"github.com/seenimoa/ndastro/pkg/models"
)

// chartQuery carries the parsed common parameters of the astro endpoints.
type chartQuery struct {
	Lat      float64
	Lon      float64
	At       time.Time
	Ayanamsa string
	Name     string
	Place    string
	Locale   string
}

// parseChartQuery reads the shared query parameters, falling back to the
// configured chart defaults. The instant accepts RFC 3339 under the
// "dateandtime" key and defaults to now.
func (s *Server) parseChartQuery(r *http.Request) (chartQuery, error) {
	q := r.URL.Query()
	out := chartQuery{
		Lat:      s.cfg.Chart.Latitude,
		Lon:      s.cfg.Chart.Longitude,
		At:       time.Now().UTC(),
		Ayanamsa: s.cfg.Chart.Ayanamsa,
		Name:     s.cfg.Chart.Name,
		Place:    s.cfg.Chart.Place,
		Locale:   s.cfg.Chart.Locale,
	}

	if v := q.Get("lat"); v != "" {
		lat, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return out, errors.New("lat must be a decimal degree value")
		}
		out.Lat = lat
	}
	if v := q.Get("lon"); v != "" {
		lon, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return out, errors.New("lon must be a decimal degree value")
		}
		out.Lon = lon
	}
	if v := q.Get("dateandtime"); v != "" {
		at, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return out, errors.New("dateandtime must be RFC 3339, e.g. 2024-06-21T05:30:00Z")
		}
		out.At = at
	}
	if v := q.Get("ayanamsa"); v != "" {
		out.Ayanamsa = v
	}
	if v := q.Get("name"); v != "" {
		out.Name = v
	}
	if v := q.Get("place"); v != "" {
		out.Place = v
	}
	if v := q.Get("locale"); v != "" {
		out.Locale = v
	} else if al := r.Header.Get("Accept-Language"); al != "" {
		out.Locale = al
	}

	return out, nil
}

// writeComputeError maps engine failures onto HTTP statuses: bad observer
// input and unknown ayanamsa names are the caller's fault, the rest is ours.
func (s *Server) writeComputeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, astro.ErrLatitudeRange),
		errors.Is(err, astro.ErrLongitudeRange),
		errors.Is(err, astro.ErrUnknownAyanamsa):
		s.writeError(w, http.StatusBadRequest, err.Error())
	default:
		s.log.WithError(err).Error("computation failed")
		s.writeError(w, http.StatusInternalServerError, err.Error())
	}
}

func (s *Server) handlePlanets(w http.ResponseWriter, r *http.Request) {
	q, err := s.parseChartQuery(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if !s.acquireCompute(w, r) {
		return
	}
	defer s.sem.Release(1)

	positions, err := s.engine.PlanetPositions(q.Lat, q.Lon, q.At, q.Ayanamsa)
	if err != nil {
		s.writeComputeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: positions})
}

func (s *Server) handleAscendant(w http.ResponseWriter, r *http.Request) {
	q, err := s.parseChartQuery(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if !s.acquireCompute(w, r) {
		return
	}
	defer s.sem.Release(1)

	asc, err := s.engine.Ascendant(q.At, q.Lat, q.Lon, q.Ayanamsa)
	if err != nil {
		s.writeComputeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: asc})
}

func (s *Server) handleLunarNodes(w http.ResponseWriter, r *http.Request) {
	q, err := s.parseChartQuery(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	rahu, kethu := s.engine.LunarNodes(q.At)
	s.writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data: map[string]models.PlanetPosition{
			"rahu":  rahu,
			"kethu": kethu,
		},
	})
}

func (s *Server) handleKattams(w http.ResponseWriter, r *http.Request) {
	q, err := s.parseChartQuery(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if !s.acquireCompute(w, r) {
		return
	}
	defer s.sem.Release(1)

	kattams, err := s.engine.Kattams(q.Lat, q.Lon, q.At, q.Ayanamsa)
	if err != nil {
		s.writeComputeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: kattams})
}

func (s *Server) handleSunriseSunset(w http.ResponseWriter, r *http.Request) {
	q, err := s.parseChartQuery(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if !s.acquireCompute(w, r) {
		return
	}
	defer s.sem.Release(1)

	times, err := s.engine.SunriseSunset(q.Lat, q.Lon, q.At)
	if err != nil {
		s.writeComputeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: times})
}

func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	q, err := s.parseChartQuery(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if !s.acquireCompute(w, r) {
		return
	}
	defer s.sem.Release(1)

	kattams, err := s.engine.Kattams(q.Lat, q.Lon, q.At, q.Ayanamsa)
	if err != nil {
		s.writeComputeError(w, err)
		return
	}

	tr := i18n.For(q.Locale)
	birth := models.BirthDetails{
		Name:  q.Name,
		Date:  q.At.Format("2006-01-02"),
		Time:  q.At.Format("15:04"),
		Place: q.Place,
	}
	svg := chart.SouthIndianSVG(kattams, birth, tr)

	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Content-Language", tr.Tag().String())
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(svg)); err != nil {
		s.log.WithError(err).Error("failed to write SVG response")
	}
}
