package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/campusmeet/sportsapp/internal/model"
	"github.com/campusmeet/sportsapp/internal/repository"
	"github.com/google/uuid"
)

var (
	ErrDuplicateSlot = errors.New("time slot already posted")
)

// Accepted layouts for slot start times. The second is what an HTML
// datetime-local input submits.
var slotTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
}

// ActiveSlot is the listing shape: only the poster's username, start time
// and duration are exposed. No ids, no owner id, no sport/location echo.
type ActiveSlot struct {
	Username        string    `json:"username"`
	StartTime       time.Time `json:"time"`
	DurationMinutes int       `json:"duration"`
}

type SlotService struct {
	slotRepository repository.TimeSlotRepository

	now func() time.Time
}

func NewSlotService(slotRepository repository.TimeSlotRepository) *SlotService {
	return &SlotService{
		slotRepository: slotRepository,
		now:            time.Now,
	}
}

// AddSlot validates and persists a time slot owned by userID. A slot with
// an identical (user, sport, location, start time) tuple is rejected with
// ErrDuplicateSlot; the storage unique constraint is the authoritative
// guard, the Exists pre-check is an early exit only.
func (s *SlotService) AddSlot(userID, sport, location, timeStr string, durationMinutes int) (*model.TimeSlot, error) {
	sport = strings.TrimSpace(sport)
	location = strings.TrimSpace(location)
	timeStr = strings.TrimSpace(timeStr)

	if sport == "" || location == "" || timeStr == "" {
		return nil, &ValidationError{Reason: "Sport, location and time are required"}
	}

	if durationMinutes <= 0 {
		return nil, &ValidationError{Reason: "Duration must be a positive number of minutes"}
	}

	startTime, err := parseSlotTime(timeStr)
	if err != nil {
		return nil, &ValidationError{Reason: "Time is not a valid timestamp"}
	}

	exists, err := s.slotRepository.Exists(userID, sport, location, startTime)
	if err != nil {
		return nil, fmt.Errorf("failed to check for duplicate slot: %w", err)
	}
	if exists {
		return nil, ErrDuplicateSlot
	}

	slot := &model.TimeSlot{
		ID:              uuid.New().String(),
		UserID:          userID,
		Sport:           sport,
		Location:        location,
		StartTime:       startTime,
		DurationMinutes: durationMinutes,
		CreatedAt:       s.now(),
	}

	err = s.slotRepository.Create(slot)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateSlot) {
			return nil, ErrDuplicateSlot
		}
		return nil, fmt.Errorf("failed to create slot: %w", err)
	}

	return slot, nil
}

// ActiveSlots returns every slot for the sport and location, from any
// owner, that is still active: start + duration > now. Expiry is computed
// here at read time; expired rows stay in storage untouched.
func (s *SlotService) ActiveSlots(sport, location string) ([]ActiveSlot, error) {
	sport = strings.TrimSpace(sport)
	location = strings.TrimSpace(location)

	if sport == "" || location == "" {
		return nil, &ValidationError{Reason: "Sport and location are required"}
	}

	slots, err := s.slotRepository.BySportLocation(sport, location)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch slots: %w", err)
	}

	now := s.now()
	active := []ActiveSlot{}
	for _, slot := range slots {
		if !slot.IsActiveAt(now) {
			continue
		}
		active = append(active, ActiveSlot{
			Username:        slot.Username,
			StartTime:       slot.StartTime,
			DurationMinutes: slot.DurationMinutes,
		})
	}

	return active, nil
}

func parseSlotTime(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range slotTimeLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
