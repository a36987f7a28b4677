package summary

import (
	"context"
	"errors"
	"log"
	"math"
	"sync"
	"time"

	"github.com/mkelley412/youth-group-backend/internal/event"
	"github.com/mkelley412/youth-group-backend/internal/registration"
)

var ErrEventNotFound = errors.New("event not found")

// optionalStoreTimeout bounds each optional-store read so a slow or
// down store cannot stall the whole summary.
const optionalStoreTimeout = 2 * time.Second

// EventSource and RegistrationSource are the mandatory relational
// reads; their failures abort the request.
type EventSource interface {
	GetEventByID(ctx context.Context, id uint) (*event.Event, error)
}

type RegistrationSource interface {
	CountsByEvent(ctx context.Context, eventID uint) (*registration.RegistrationCounts, error)
}

// CheckinSource and NotesSource are the optional reads; failures and
// timeouts degrade to zero with an "unavailable" source marker.
type CheckinSource interface {
	Enabled() bool
	Count(ctx context.Context, eventID uint) (int64, error)
}

type NotesSource interface {
	Enabled() bool
	CountEventNotes(ctx context.Context, eventID uint) (int64, error)
}

type Service struct {
	Events        EventSource
	Registrations RegistrationSource
	Checkins      CheckinSource
	Notes         NotesSource
}

func NewService(events EventSource, registrations RegistrationSource, checkins CheckinSource, notes NotesSource) *Service {
	return &Service{
		Events:        events,
		Registrations: registrations,
		Checkins:      checkins,
		Notes:         notes,
	}
}

// GetComprehensiveEventSummary merges one read from each store. The
// three count reads are independent, so they fan out concurrently;
// only the relational reads can fail the request.
func (s *Service) GetComprehensiveEventSummary(ctx context.Context, eventID uint) (*ComprehensiveEventSummary, error) {
	e, err := s.Events.GetEventByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, event.ErrEventNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}

	var (
		wg sync.WaitGroup

		counts    *registration.RegistrationCounts
		countsErr error

		checkins LiveCheckInsSection
		notes    NotesSection
	)

	wg.Add(3)

	go func() {
		defer wg.Done()
		counts, countsErr = s.Registrations.CountsByEvent(ctx, eventID)
	}()

	go func() {
		defer wg.Done()
		checkins = s.readCheckins(ctx, eventID)
	}()

	go func() {
		defer wg.Done()
		notes = s.readNotes(ctx, eventID)
	}()

	wg.Wait()

	if countsErr != nil {
		return nil, countsErr
	}

	return &ComprehensiveEventSummary{
		Event: EventSection{
			ID:       e.ID,
			Name:     e.Name,
			Type:     e.Type,
			DateTime: e.DateTime,
			Location: e.Location,
			Source:   SourcePostgres,
		},
		Registrations: RegistrationsSection{
			Total:      counts.Total,
			Attendees:  counts.Attendees,
			Leaders:    counts.Leaders,
			Volunteers: counts.Volunteers,
			Source:     SourcePostgres,
		},
		LiveCheckIns: checkins,
		Notes:        notes,
		Summary: Totals{
			TotalRegistered: counts.Total,
			TotalCheckedIn:  checkins.Count,
			AttendanceRate:  attendanceRate(checkins.Count, counts.Total),
			NotesCount:      notes.Count,
		},
		DataSources: []string{
			SourcePostgres,
			sourceLabel(SourceRedis, checkins.Source),
			sourceLabel(SourceFirestore, notes.Source),
		},
	}, nil
}

// sourceLabel names an optional store in dataSources, marking it when
// it failed to answer.
func sourceLabel(store, source string) string {
	if source == SourceUnavailable {
		return store + " (unavailable)"
	}
	return store
}

func (s *Service) readCheckins(ctx context.Context, eventID uint) LiveCheckInsSection {
	if !s.Checkins.Enabled() {
		return LiveCheckInsSection{Source: SourceUnavailable}
	}

	ctx, cancel := context.WithTimeout(ctx, optionalStoreTimeout)
	defer cancel()

	count, err := s.Checkins.Count(ctx, eventID)
	if err != nil {
		log.Printf("⚠️ Live check-in count unavailable for event %d: %v", eventID, err)
		return LiveCheckInsSection{Source: SourceUnavailable}
	}
	return LiveCheckInsSection{Count: count, Source: SourceRedis}
}

func (s *Service) readNotes(ctx context.Context, eventID uint) NotesSection {
	if !s.Notes.Enabled() {
		return NotesSection{Source: SourceUnavailable}
	}

	ctx, cancel := context.WithTimeout(ctx, optionalStoreTimeout)
	defer cancel()

	count, err := s.Notes.CountEventNotes(ctx, eventID)
	if err != nil {
		log.Printf("⚠️ Event note count unavailable for event %d: %v", eventID, err)
		return NotesSection{Source: SourceUnavailable}
	}
	return NotesSection{Count: count, Source: SourceFirestore}
}

// attendanceRate is the checked-in share of registrations as a rounded
// percentage, 0 when nobody registered.
func attendanceRate(checkedIn, registered int64) int {
	if registered == 0 {
		return 0
	}
	return int(math.Round(float64(checkedIn) / float64(registered) * 100))
}
