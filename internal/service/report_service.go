package service

import (
	"context"

	"classbook/internal/domain"
	"classbook/internal/models"
)

// ReportService builds the read-only dashboard and history views. No
// caching: every view recomputes from the store.
type ReportService struct {
	store domain.Store
}

func NewReportService(store domain.Store) *ReportService {
	return &ReportService{store: store}
}

type DashboardView struct {
	Username      string               `json:"username"`
	FullName      string               `json:"full_name"`
	Role          string               `json:"role"`
	TotalTeachers int64                `json:"total_teachers"`
	TotalRooms    int64                `json:"total_rooms"`
	ActiveRooms   int64                `json:"active_rooms"`
	BookingCount  int64                `json:"booking_count"`
	Classrooms    []*models.Classroom  `json:"classrooms"`
	History       []BookingHistoryItem `json:"history"`
}

type BookingHistoryItem struct {
	Booker   string `json:"booker"`
	RoomName string `json:"room_name"`
	Time     string `json:"time"`
	Duration string `json:"duration"`
	Status   string `json:"status"`
}

// Dashboard aggregates usage for the landing view. Admins see the
// global booking count; everyone else sees only their own.
func (s *ReportService) Dashboard(ctx context.Context, actor *models.User) (*DashboardView, error) {
	if err := RequireRole(actor); err != nil {
		return nil, err
	}

	classrooms, err := s.store.GetAllRooms(ctx)
	if err != nil {
		return nil, err
	}
	totalTeachers, err := s.store.CountUsersByRole(ctx, models.RoleTeacher)
	if err != nil {
		return nil, err
	}
	activeRooms, err := s.store.CountRoomsByStatus(ctx, models.RoomStatusAvailable)
	if err != nil {
		return nil, err
	}

	var bookingCount int64
	if actor.IsAdmin() {
		bookingCount, err = s.store.CountBookings(ctx)
	} else {
		bookingCount, err = s.store.CountUserBookings(ctx, actor.ID)
	}
	if err != nil {
		return nil, err
	}

	recent, err := s.store.GetRecentBookings(ctx, models.DashboardHistorySize)
	if err != nil {
		return nil, err
	}

	roomNames := roomNameIndex(classrooms)
	history := make([]BookingHistoryItem, 0, len(recent))
	for _, b := range recent {
		history = append(history, BookingHistoryItem{
			Booker:   b.BookerName,
			RoomName: resolveRoomName(roomNames, b.RoomID),
			Time:     b.StartTime,
			Duration: b.Duration,
			Status:   b.Status,
		})
	}

	return &DashboardView{
		Username:      actor.Username,
		FullName:      actor.FullName,
		Role:          actor.Role,
		TotalTeachers: totalTeachers,
		TotalRooms:    int64(len(classrooms)),
		ActiveRooms:   activeRooms,
		BookingCount:  bookingCount,
		Classrooms:    classrooms,
		History:       history,
	}, nil
}

type ProfileHistoryItem struct {
	RoomName  string `json:"room_name"`
	StartTime string `json:"start_time"`
	Duration  string `json:"duration"`
	Status    string `json:"status"`
}

// ProfileHistory lists the caller's own bookings, newest first.
func (s *ReportService) ProfileHistory(ctx context.Context, actor *models.User) ([]ProfileHistoryItem, error) {
	if err := RequireRole(actor); err != nil {
		return nil, err
	}

	bookings, err := s.store.GetUserBookings(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	rooms, err := s.store.GetAllRooms(ctx)
	if err != nil {
		return nil, err
	}

	roomNames := roomNameIndex(rooms)
	history := make([]ProfileHistoryItem, 0, len(bookings))
	for _, b := range bookings {
		history = append(history, ProfileHistoryItem{
			RoomName:  resolveRoomName(roomNames, b.RoomID),
			StartTime: b.StartTime,
			Duration:  b.Duration,
			Status:    b.Status,
		})
	}
	return history, nil
}

func roomNameIndex(rooms []*models.Classroom) map[int64]string {
	idx := make(map[int64]string, len(rooms))
	for _, r := range rooms {
		idx[r.ID] = r.RoomName
	}
	return idx
}

// resolveRoomName falls back to "Unknown" for bookings whose room was
// deleted.
func resolveRoomName(idx map[int64]string, roomID int64) string {
	if name, ok := idx[roomID]; ok {
		return name
	}
	return models.UnknownRoomName
}
