package export

import (
	"fmt"

	"classbook/internal/models"

	"github.com/xuri/excelize/v2"
)

const bookingsSheet = "Bookings"

// BookingsWorkbook builds an Excel sheet with one row per reservation.
// Room names are resolved from the classroom list; bookings whose room
// was deleted keep the "Unknown" placeholder.
func BookingsWorkbook(bookings []*models.Booking, rooms []*models.Classroom) (*excelize.File, error) {
	f := excelize.NewFile()

	index, err := f.NewSheet(bookingsSheet)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("error creating sheet: %v", err)
	}
	f.SetActiveSheet(index)

	headers := []string{"ID", "Room", "Booked by", "Start time", "Duration", "Status", "Created"}
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(bookingsSheet, cell, header)
		_ = f.SetCellStyle(bookingsSheet, cell, cell, headerStyle)
	}

	roomNames := make(map[int64]string, len(rooms))
	for _, r := range rooms {
		roomNames[r.ID] = r.RoomName
	}

	for i, booking := range bookings {
		row := i + 2
		roomName, ok := roomNames[booking.RoomID]
		if !ok {
			roomName = models.UnknownRoomName
		}
		_ = f.SetCellValue(bookingsSheet, fmt.Sprintf("A%d", row), booking.ID)
		_ = f.SetCellValue(bookingsSheet, fmt.Sprintf("B%d", row), roomName)
		_ = f.SetCellValue(bookingsSheet, fmt.Sprintf("C%d", row), booking.BookerName)
		_ = f.SetCellValue(bookingsSheet, fmt.Sprintf("D%d", row), booking.StartTime)
		_ = f.SetCellValue(bookingsSheet, fmt.Sprintf("E%d", row), booking.Duration)
		_ = f.SetCellValue(bookingsSheet, fmt.Sprintf("F%d", row), booking.Status)
		_ = f.SetCellValue(bookingsSheet, fmt.Sprintf("G%d", row), booking.CreatedAt.Format("02.01.2006 15:04"))
	}

	_ = f.SetColWidth(bookingsSheet, "A", "A", 8)
	_ = f.SetColWidth(bookingsSheet, "B", "C", 22)
	_ = f.SetColWidth(bookingsSheet, "D", "G", 18)

	_ = f.DeleteSheet("Sheet1")
	return f, nil
}
