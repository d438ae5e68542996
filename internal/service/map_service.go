package service

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/christofschnelle/leaflet-demo/internal/domain"
)

// fetchTimeout bounds each effect goroutine. Sized to the slower provider
// client (Overpass, 35s) plus headroom.
const fetchTimeout = 40 * time.Second

// WeatherFetcher is the weather-provider port.
type WeatherFetcher interface {
	CurrentWeather(ctx context.Context, pos domain.Coordinate) (domain.WeatherSnapshot, error)
}

// TrafficFetcher is the POI-provider port.
type TrafficFetcher interface {
	NearbyPoints(ctx context.Context, pos domain.Coordinate) ([]domain.TrafficPoint, error)
}

// Session holds one map view's state. All fields are guarded by mu; the fetch
// effects run in goroutines and re-check their sequence number under the lock
// before writing back, so a result for a superseded trigger is discarded.
type Session struct {
	ID string

	mu            sync.Mutex
	userPosition  *domain.Coordinate
	clickedPoints []domain.Coordinate
	weather       *domain.WeatherSnapshot
	trafficPoints []domain.TrafficPoint
	showWeather   bool
	showTraffic   bool

	weatherSeq uint64
	trafficSeq uint64
}

// MapService owns all live map sessions and runs their fetch side effects.
type MapService struct {
	weatherSvc WeatherFetcher
	trafficSvc TrafficFetcher

	mu       sync.RWMutex
	sessions map[string]*Session

	wgBg sync.WaitGroup // tracks effect goroutines for graceful shutdown
}

// NewMapService creates a new map service.
func NewMapService(weatherSvc WeatherFetcher, trafficSvc TrafficFetcher) *MapService {
	return &MapService{
		weatherSvc: weatherSvc,
		trafficSvc: trafficSvc,
		sessions:   make(map[string]*Session),
	}
}

// WaitBackground blocks until all in-flight fetch effects complete. Call
// during graceful shutdown.
func (s *MapService) WaitBackground() {
	s.wgBg.Wait()
}

// CreateSession registers a fresh session. Both overlay toggles default to on.
func (s *MapService) CreateSession() *Session {
	sess := &Session{
		ID:          uuid.NewString(),
		showWeather: true,
		showTraffic: true,
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	return sess
}

// Session looks up a live session by id.
func (s *MapService) Session(id string) (*Session, bool) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	return sess, ok
}

// DropSession removes a session. Reports whether it existed.
func (s *MapService) DropSession(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return false
	}
	delete(s.sessions, id)
	return true
}

// HandleMapClick appends a clicked point. Any coordinate is accepted,
// duplicates included; insertion order is preserved.
func (s *MapService) HandleMapClick(sess *Session, pt domain.Coordinate) {
	sess.mu.Lock()
	sess.clickedPoints = append(sess.clickedPoints, pt)
	sess.mu.Unlock()
}

// HandleLocationFound records a geolocation fix and triggers both fetch
// effects. It returns the fly-to command for the map host. The position is
// updated, never cleared, on repeated fixes.
func (s *MapService) HandleLocationFound(sess *Session, pt domain.Coordinate) domain.FlyTo {
	sess.mu.Lock()
	sess.userPosition = &pt
	sess.weatherSeq++
	wseq := sess.weatherSeq
	fetchTraffic := sess.showTraffic
	var tseq uint64
	if fetchTraffic {
		sess.trafficSeq++
		tseq = sess.trafficSeq
	}
	sess.mu.Unlock()

	s.fetchWeather(sess, pt, wseq)
	if fetchTraffic {
		s.fetchTraffic(sess, pt, tseq)
	}

	return domain.FlyTo{Center: pt, Zoom: domain.FlyToZoom}
}

// ClearPoints empties the clicked-point sequence atomically. Idempotent.
func (s *MapService) ClearPoints(sess *Session) {
	sess.mu.Lock()
	sess.clickedPoints = nil
	sess.mu.Unlock()
}

// SetToggles applies the requested flag changes. Turning traffic off only
// hides the markers, it never clears the set or cancels an in-flight fetch;
// turning traffic on with a known position re-triggers the traffic fetch.
func (s *MapService) SetToggles(sess *Session, showWeather, showTraffic *bool) {
	sess.mu.Lock()
	if showWeather != nil {
		sess.showWeather = *showWeather
	}
	var refetch bool
	var pos domain.Coordinate
	var tseq uint64
	if showTraffic != nil && *showTraffic != sess.showTraffic {
		sess.showTraffic = *showTraffic
		if sess.showTraffic && sess.userPosition != nil {
			refetch = true
			pos = *sess.userPosition
			sess.trafficSeq++
			tseq = sess.trafficSeq
		}
	}
	sess.mu.Unlock()

	if refetch {
		s.fetchTraffic(sess, pos, tseq)
	}
}

// Snapshot copies the session state for rendering or direct reads.
func (s *MapService) Snapshot(sess *Session) domain.SessionState {
	sess.mu.Lock()
	defer sess.mu.Unlock()

	st := domain.SessionState{
		ClickedPoints: append([]domain.Coordinate(nil), sess.clickedPoints...),
		TrafficPoints: append([]domain.TrafficPoint(nil), sess.trafficPoints...),
		ShowWeather:   sess.showWeather,
		ShowTraffic:   sess.showTraffic,
	}
	if sess.userPosition != nil {
		pos := *sess.userPosition
		st.UserPosition = &pos
	}
	if sess.weather != nil {
		w := *sess.weather
		st.Weather = &w
	}
	return st
}

// View renders the current session state.
func (s *MapService) View(sess *Session) domain.ViewModel {
	return domain.NewViewModel(s.Snapshot(sess))
}

// fetchWeather runs the weather effect. A failed fetch is logged and leaves
// the previous snapshot unchanged; a stale completion is discarded.
func (s *MapService) fetchWeather(sess *Session, pos domain.Coordinate, seq uint64) {
	s.wgBg.Add(1)
	go func() {
		defer s.wgBg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		snap, err := s.weatherSvc.CurrentWeather(ctx, pos)
		if err != nil {
			log.Printf("Weather fetch failed: %v", err)
			return
		}

		sess.mu.Lock()
		defer sess.mu.Unlock()
		if seq != sess.weatherSeq {
			return // superseded by a newer position
		}
		sess.weather = &snap
	}()
}

// fetchTraffic runs the traffic effect with the same failure and staleness
// semantics as fetchWeather.
func (s *MapService) fetchTraffic(sess *Session, pos domain.Coordinate, seq uint64) {
	s.wgBg.Add(1)
	go func() {
		defer s.wgBg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		points, err := s.trafficSvc.NearbyPoints(ctx, pos)
		if err != nil {
			log.Printf("Traffic fetch failed: %v", err)
			return
		}

		sess.mu.Lock()
		defer sess.mu.Unlock()
		if seq != sess.trafficSeq {
			return
		}
		sess.trafficPoints = points
	}()
}
