package get_room_overview

import (
	"iter"

	"github.com/m04kA/HLB-AdminService/internal/domain"
)

// FilterRooms возвращает ленивую перезапускаемую последовательность комнат,
// прошедших фильтры. Порядок входного списка сохраняется.
//
// Комната проходит, если её номер содержит searchTerm (без учета регистра)
// И — при todayOnly — дата bookedTo текстуально совпадает с today
// (YYYY-MM-DD). Отсутствующее или некорректное bookedTo просто не совпадает,
// ошибок фильтр не порождает.
func FilterRooms(rooms []domain.Room, searchTerm string, todayOnly bool, today string) iter.Seq[domain.Room] {
	return func(yield func(domain.Room) bool) {
		for _, room := range rooms {
			if !room.MatchesSearch(searchTerm) {
				continue
			}
			if todayOnly && !room.ChecksOutOn(today) {
				continue
			}
			if !yield(room) {
				return
			}
		}
	}
}
