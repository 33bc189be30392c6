package service

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"absenku_backend/internals/constants"
	attendanceModel "absenku_backend/internals/features/attendance/model"
	userModel "absenku_backend/internals/features/users/model"
	"absenku_backend/internals/helpers/dbtime"
)

// AttendanceService — engine kehadiran: resolve slot, buat slot temporary,
// tolak duplikat, koreksi status lama, dan jaga counter stats. Semua mutasi
// log/stats lewat service ini, tidak ada jalur lain.
type AttendanceService struct {
	DB *gorm.DB
}

func NewAttendanceService(db *gorm.DB) *AttendanceService {
	return &AttendanceService{DB: db}
}

// SlotLog — proyeksi gabungan slot + log untuk satu tanggal.
type SlotLog struct {
	Slot attendanceModel.TimetableSlotModel `json:"slot"`
	Log  attendanceModel.AttendanceLogModel `json:"attendance"`
}

// MarkResult — hasil ResolveAndMark.
type MarkResult struct {
	Log         attendanceModel.AttendanceLogModel `json:"attendance_log"`
	TempCreated bool                               `json:"temporary_slot_created"`
}

/* =========================================================
   RESOLVE AND MARK
   ========================================================= */

// ResolveAndMark mencatat kehadiran untuk satu kelas pada satu tanggal.
//
// Perilaku:
//   - Slot dicari persis (user, subject, day, start, end, class_type); kalau
//     tidak ada, dibuat slot temporary dengan field yang sama.
//   - Sudah ada log dengan status SAMA di (slot, tanggal) → 409 duplikat.
//   - Sudah ada log dengan status BEDA → koreksi: kontribusi lama di-reverse
//     dari stats lalu lognya dihapus.
//   - Counter stats diupdate inkremental sesuai status baru.
//
// Semua langkah jalan dalam satu transaksi; gagal di mana pun berarti tidak
// ada tulisan yang tersisa.
func (s *AttendanceService) ResolveAndMark(
	userID uuid.UUID,
	subjectCode string,
	day constants.Day,
	startTime, endTime string,
	classType constants.ClassType,
	status constants.AttendanceStatus,
	date time.Time,
) (*MarkResult, error) {
	subjectCode = strings.TrimSpace(subjectCode)
	if userID == uuid.Nil || subjectCode == "" {
		return nil, fiber.NewError(fiber.StatusBadRequest, "user dan subject_code wajib diisi")
	}
	if !day.Valid() {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Hari tidak valid: "+string(day))
	}
	if !classType.Valid() {
		return nil, fiber.NewError(fiber.StatusBadRequest, "class_type tidak valid: "+string(classType))
	}
	if !status.Valid() {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Status kehadiran tidak valid: "+string(status))
	}
	if date.IsZero() {
		return nil, fiber.NewError(fiber.StatusBadRequest, "date_of_slot wajib diisi")
	}

	startTime, err := dbtime.NormalizeClock(startTime)
	if err != nil {
		return nil, err
	}
	endTime, err = dbtime.NormalizeClock(endTime)
	if err != nil {
		return nil, err
	}
	if endTime <= startTime {
		return nil, fiber.NewError(fiber.StatusBadRequest, "end_time harus setelah start_time")
	}
	date = dbtime.NormalizeDate(date)

	log.Printf("[MARK] user=%s subject=%s day=%s %s-%s type=%s status=%s date=%s",
		userID, subjectCode, day, startTime, endTime, classType, status, date.Format("2006-01-02"))

	var result MarkResult

	if err := s.DB.Transaction(func(tx *gorm.DB) error {
		// subject harus terdaftar (FK slot → subjects)
		var subjectCount int64
		if err := tx.Model(&attendanceModel.SubjectModel{}).
			Where("subject_code = ?", subjectCode).
			Count(&subjectCount).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek subject")
		}
		if subjectCount == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Subject tidak ditemukan: "+subjectCode)
		}

		// 1. cari slot persis
		var slot attendanceModel.TimetableSlotModel
		err := tx.Where(`
				timetable_slot_user_id = ?
				AND timetable_slot_subject_code = ?
				AND timetable_slot_day = ?
				AND timetable_slot_start_time = ?
				AND timetable_slot_end_time = ?
				AND timetable_slot_class_type = ?
			`, userID, subjectCode, day, startTime, endTime, classType).
			First(&slot).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			// 2. tidak ada di timetable reguler → buat slot temporary
			d := date
			slot = attendanceModel.TimetableSlotModel{
				TimetableSlotUserID:      userID,
				TimetableSlotDay:         day,
				TimetableSlotStartTime:   startTime,
				TimetableSlotEndTime:     endTime,
				TimetableSlotClassType:   classType,
				TimetableSlotSubjectCode: subjectCode,
				TimetableSlotIsTemporary: true,
				TimetableSlotDateOfSlot:  &d,
			}
			if err := tx.Create(&slot).Error; err != nil {
				msg := strings.ToLower(err.Error())
				if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
					return fiber.NewError(fiber.StatusConflict, "Sudah ada slot lain di jam itu")
				}
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat slot temporary")
			}
			result.TempCreated = true
		case err != nil:
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil slot")
		}

		// 3. duplikat dengan status sama → tolak tanpa mutasi
		var dup int64
		if err := tx.Model(&attendanceModel.AttendanceLogModel{}).
			Where(`
				attendance_log_slot_id = ?
				AND attendance_log_date = ?
				AND attendance_log_status = ?
			`, slot.TimetableSlotID, date, status).
			Count(&dup).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek duplikasi log")
		}
		if dup > 0 {
			return fiber.NewError(fiber.StatusConflict, "Kehadiran kelas ini sudah tercatat dengan status yang sama")
		}

		// 4. log lama dengan status beda → ini koreksi
		var prior attendanceModel.AttendanceLogModel
		hasPrior := true
		if err := tx.Where(`
				attendance_log_slot_id = ?
				AND attendance_log_date = ?
			`, slot.TimetableSlotID, date).
			First(&prior).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek log sebelumnya")
			}
			hasPrior = false
		}

		// 5. ambil / buat stats untuk user + subject + class type
		var stats attendanceModel.AttendanceStatsModel
		if err := tx.Where(`
				attendance_stats_user_id = ?
				AND attendance_stats_subject_code = ?
				AND attendance_stats_class_type = ?
			`, userID, subjectCode, classType).
			First(&stats).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil stats")
			}
			stats = attendanceModel.AttendanceStatsModel{
				AttendanceStatsUserID:      userID,
				AttendanceStatsSubjectCode: subjectCode,
				AttendanceStatsClassType:   classType,
			}
			if err := tx.Create(&stats).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat stats")
			}
		}

		// reverse kontribusi status lama dulu, baru hapus lognya
		if hasPrior {
			switch prior.AttendanceLogStatus {
			case constants.StatusPresent:
				stats.AttendanceStatsTotalClasses--
				stats.AttendanceStatsAttendedClasses--
			case constants.StatusAbsent:
				stats.AttendanceStatsTotalClasses--
			case constants.StatusCancelled:
				// cancelled tidak pernah masuk counter
			}
			if err := tx.Delete(&prior).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus log lama")
			}
		}

		// 6. tulis log baru
		entry := attendanceModel.AttendanceLogModel{
			AttendanceLogSlotID: slot.TimetableSlotID,
			AttendanceLogStatus: status,
			AttendanceLogDate:   date,
		}
		if err := tx.Create(&entry).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mencatat kehadiran")
		}

		// 7. kontribusi status baru
		switch status {
		case constants.StatusPresent:
			stats.AttendanceStatsTotalClasses++
			stats.AttendanceStatsAttendedClasses++
		case constants.StatusAbsent:
			stats.AttendanceStatsTotalClasses++
		case constants.StatusCancelled:
		}
		if err := tx.Model(&attendanceModel.AttendanceStatsModel{}).
			Where("attendance_stats_id = ?", stats.AttendanceStatsID).
			Updates(map[string]interface{}{
				"attendance_stats_total_classes":    stats.AttendanceStatsTotalClasses,
				"attendance_stats_attended_classes": stats.AttendanceStatsAttendedClasses,
			}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui stats")
		}

		result.Log = entry
		return nil
	}); err != nil {
		return nil, err
	}

	return &result, nil
}

/* =========================================================
   READS
   ========================================================= */

// DailyTimetable mengembalikan slot reguler (non-temporary) user untuk satu
// hari, urut jam mulai. Kosong dianggap 404 — caller yang mau "kosong itu
// valid" harus menangkapnya sendiri.
func (s *AttendanceService) DailyTimetable(userID uuid.UUID, day constants.Day) ([]attendanceModel.TimetableSlotModel, error) {
	if !day.Valid() {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Hari tidak valid: "+string(day))
	}

	var slots []attendanceModel.TimetableSlotModel
	if err := s.DB.
		Where(`
			timetable_slot_user_id = ?
			AND timetable_slot_day = ?
			AND timetable_slot_is_temporary = ?
		`, userID, day, false).
		Order("timetable_slot_start_time ASC").
		Find(&slots).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil timetable")
	}
	if len(slots) == 0 {
		return nil, fiber.NewError(fiber.StatusNotFound, "Tidak ada timetable untuk "+string(day))
	}
	return slots, nil
}

// LogsForDate mengembalikan pasangan (slot, log) milik user pada satu tanggal.
// Kosong = slice kosong, bukan error.
func (s *AttendanceService) LogsForDate(userID uuid.UUID, date time.Time) ([]SlotLog, error) {
	date = dbtime.NormalizeDate(date)

	var logs []attendanceModel.AttendanceLogModel
	if err := s.DB.
		Select("attendance_logs.*").
		Joins("JOIN timetable_slots ON timetable_slots.timetable_slot_id = attendance_logs.attendance_log_slot_id").
		Where("timetable_slots.timetable_slot_user_id = ? AND attendance_logs.attendance_log_date = ?", userID, date).
		Order("timetable_slots.timetable_slot_start_time ASC").
		Find(&logs).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil log kehadiran")
	}

	out := make([]SlotLog, 0, len(logs))
	for _, l := range logs {
		var slot attendanceModel.TimetableSlotModel
		if err := s.DB.First(&slot, "timetable_slot_id = ?", l.AttendanceLogSlotID).Error; err != nil {
			return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil slot untuk log")
		}
		out = append(out, SlotLog{Slot: slot, Log: l})
	}
	return out, nil
}

// StatsFor mengembalikan stats user; kalau subjectCode diisi, hanya kombinasi
// subject + classType itu (404 kalau belum ada barisnya).
func (s *AttendanceService) StatsFor(userID uuid.UUID, subjectCode string, classType constants.ClassType) ([]attendanceModel.AttendanceStatsModel, error) {
	subjectCode = strings.TrimSpace(subjectCode)

	if subjectCode != "" {
		var row attendanceModel.AttendanceStatsModel
		if err := s.DB.Where(`
				attendance_stats_user_id = ?
				AND attendance_stats_subject_code = ?
				AND attendance_stats_class_type = ?
			`, userID, subjectCode, classType).
			First(&row).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fiber.NewError(fiber.StatusNotFound, "Belum ada catatan kehadiran untuk "+subjectCode)
			}
			return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil stats")
		}
		return []attendanceModel.AttendanceStatsModel{row}, nil
	}

	var rows []attendanceModel.AttendanceStatsModel
	if err := s.DB.
		Where("attendance_stats_user_id = ?", userID).
		Order("attendance_stats_subject_code ASC").
		Find(&rows).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil stats")
	}
	if len(rows) == 0 {
		return nil, fiber.NewError(fiber.StatusNotFound, "Belum ada catatan kehadiran untuk user ini")
	}
	return rows, nil
}

/* =========================================================
   SUBJECT CRUD
   ========================================================= */

func (s *AttendanceService) CreateSubject(code, name string) (*attendanceModel.SubjectModel, error) {
	code = strings.TrimSpace(code)
	name = strings.TrimSpace(name)
	if code == "" || name == "" {
		return nil, fiber.NewError(fiber.StatusBadRequest, "subject_code dan subject_name wajib diisi")
	}

	m := attendanceModel.SubjectModel{SubjectCode: code, SubjectName: name}
	if err := s.DB.Transaction(func(tx *gorm.DB) error {
		var cnt int64
		if err := tx.Model(&attendanceModel.SubjectModel{}).
			Where("subject_code = ? OR subject_name = ?", code, name).
			Count(&cnt).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek duplikasi subject")
		}
		if cnt > 0 {
			return fiber.NewError(fiber.StatusConflict, "Subject dengan kode atau nama yang sama sudah ada")
		}
		if err := tx.Create(&m).Error; err != nil {
			msg := strings.ToLower(err.Error())
			if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
				return fiber.NewError(fiber.StatusConflict, "Subject dengan kode atau nama yang sama sudah ada")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat subject")
		}
		return nil
	}); err != nil {
		return nil, err
	}
	return &m, nil
}

// DeleteSubject — hanya admin; slot & stats ikut terhapus (cascade).
func (s *AttendanceService) DeleteSubject(actor *userModel.UserModel, code string) error {
	if actor == nil || !actor.UserIsAdmin {
		return fiber.NewError(fiber.StatusForbidden, "Hanya admin yang boleh menghapus subject")
	}
	code = strings.TrimSpace(code)

	return s.DB.Transaction(func(tx *gorm.DB) error {
		var m attendanceModel.SubjectModel
		if err := tx.First(&m, "subject_code = ?", code).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Subject tidak ditemukan")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil subject")
		}
		if err := tx.Select("Slots", "Stats").Delete(&m).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus subject")
		}
		return nil
	})
}

/* =========================================================
   SLOT CRUD
   ========================================================= */

// AddSlot menambahkan slot reguler; tolak kalau interval [start,end) bentrok
// dengan slot lain user itu di hari yang sama.
func (s *AttendanceService) AddSlot(
	userID uuid.UUID,
	day constants.Day,
	startTime, endTime string,
	subjectCode string,
	classType constants.ClassType,
) (*attendanceModel.TimetableSlotModel, error) {
	if !day.Valid() {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Hari tidak valid: "+string(day))
	}
	if !classType.Valid() {
		return nil, fiber.NewError(fiber.StatusBadRequest, "class_type tidak valid: "+string(classType))
	}
	startTime, err := dbtime.NormalizeClock(startTime)
	if err != nil {
		return nil, err
	}
	endTime, err = dbtime.NormalizeClock(endTime)
	if err != nil {
		return nil, err
	}
	if endTime <= startTime {
		return nil, fiber.NewError(fiber.StatusBadRequest, "end_time harus setelah start_time")
	}

	m := attendanceModel.TimetableSlotModel{
		TimetableSlotUserID:      userID,
		TimetableSlotDay:         day,
		TimetableSlotStartTime:   startTime,
		TimetableSlotEndTime:     endTime,
		TimetableSlotClassType:   classType,
		TimetableSlotSubjectCode: strings.TrimSpace(subjectCode),
	}

	if err := s.DB.Transaction(func(tx *gorm.DB) error {
		var subjectCount int64
		if err := tx.Model(&attendanceModel.SubjectModel{}).
			Where("subject_code = ?", m.TimetableSlotSubjectCode).
			Count(&subjectCount).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek subject")
		}
		if subjectCount == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Subject tidak ditemukan: "+m.TimetableSlotSubjectCode)
		}

		var conflict attendanceModel.TimetableSlotModel
		err := tx.Where(`
				timetable_slot_user_id = ?
				AND timetable_slot_day = ?
				AND timetable_slot_start_time < ?
				AND timetable_slot_end_time > ?
			`, userID, day, endTime, startTime).
			First(&conflict).Error
		if err == nil {
			return fiber.NewError(fiber.StatusConflict,
				"Bentrok dengan slot "+conflict.TimetableSlotSubjectCode+
					" ("+conflict.TimetableSlotStartTime+"-"+conflict.TimetableSlotEndTime+")")
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek bentrok slot")
		}

		if err := tx.Create(&m).Error; err != nil {
			msg := strings.ToLower(err.Error())
			if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
				return fiber.NewError(fiber.StatusConflict, "Slot dengan jam yang sama sudah ada")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menambahkan slot")
		}
		return nil
	}); err != nil {
		return nil, err
	}
	return &m, nil
}

// findSlotByKey — lookup slot pakai composite key lengkap.
func (s *AttendanceService) findSlotByKey(
	tx *gorm.DB,
	userID uuid.UUID,
	day constants.Day,
	startTime, endTime string,
	classType constants.ClassType,
	subjectCode string,
) (*attendanceModel.TimetableSlotModel, error) {
	var m attendanceModel.TimetableSlotModel
	if err := tx.Where(`
			timetable_slot_user_id = ?
			AND timetable_slot_day = ?
			AND timetable_slot_start_time = ?
			AND timetable_slot_end_time = ?
			AND timetable_slot_class_type = ?
			AND timetable_slot_subject_code = ?
		`, userID, day, startTime, endTime, classType, strings.TrimSpace(subjectCode)).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Slot tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil slot")
	}
	return &m, nil
}

// UpdateSlot mencari slot by composite key lalu menerapkan perubahan parsial,
// dengan cek bentrok terhadap nilai barunya (exclude diri sendiri).
func (s *AttendanceService) UpdateSlot(
	userID uuid.UUID,
	day constants.Day,
	startTime, endTime string,
	classType constants.ClassType,
	subjectCode string,
	updated SlotPatch,
) (*attendanceModel.TimetableSlotModel, error) {
	startTime, err := dbtime.NormalizeClock(startTime)
	if err != nil {
		return nil, err
	}
	endTime, err = dbtime.NormalizeClock(endTime)
	if err != nil {
		return nil, err
	}

	var out attendanceModel.TimetableSlotModel
	if err := s.DB.Transaction(func(tx *gorm.DB) error {
		m, err := s.findSlotByKey(tx, userID, day, startTime, endTime, classType, subjectCode)
		if err != nil {
			return err
		}

		// apply parsial
		newDay := m.TimetableSlotDay
		newStart := m.TimetableSlotStartTime
		newEnd := m.TimetableSlotEndTime
		if updated.Day != nil {
			if !updated.Day.Valid() {
				return fiber.NewError(fiber.StatusBadRequest, "Hari tidak valid: "+string(*updated.Day))
			}
			newDay = *updated.Day
		}
		if updated.StartTime != nil {
			v, err := dbtime.NormalizeClock(*updated.StartTime)
			if err != nil {
				return err
			}
			newStart = v
		}
		if updated.EndTime != nil {
			v, err := dbtime.NormalizeClock(*updated.EndTime)
			if err != nil {
				return err
			}
			newEnd = v
		}
		if newEnd <= newStart {
			return fiber.NewError(fiber.StatusBadRequest, "end_time harus setelah start_time")
		}

		// cek bentrok dengan slot lain (bukan dirinya)
		var conflict attendanceModel.TimetableSlotModel
		errConflict := tx.Where(`
				timetable_slot_user_id = ?
				AND timetable_slot_day = ?
				AND timetable_slot_id <> ?
				AND timetable_slot_start_time < ?
				AND timetable_slot_end_time > ?
			`, userID, newDay, m.TimetableSlotID, newEnd, newStart).
			First(&conflict).Error
		if errConflict == nil {
			return fiber.NewError(fiber.StatusConflict, "Perubahan slot bentrok dengan slot lain")
		}
		if !errors.Is(errConflict, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek bentrok slot")
		}

		patch := map[string]interface{}{
			"timetable_slot_day":        newDay,
			"timetable_slot_start_time": newStart,
			"timetable_slot_end_time":   newEnd,
		}
		if updated.SubjectCode != nil {
			patch["timetable_slot_subject_code"] = strings.TrimSpace(*updated.SubjectCode)
		}
		if updated.ClassType != nil {
			if !updated.ClassType.Valid() {
				return fiber.NewError(fiber.StatusBadRequest, "class_type tidak valid: "+string(*updated.ClassType))
			}
			patch["timetable_slot_class_type"] = *updated.ClassType
		}

		if err := tx.Model(&attendanceModel.TimetableSlotModel{}).
			Where("timetable_slot_id = ?", m.TimetableSlotID).
			Updates(patch).Error; err != nil {
			msg := strings.ToLower(err.Error())
			if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
				return fiber.NewError(fiber.StatusConflict, "Slot dengan jam yang sama sudah ada")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui slot")
		}

		if err := tx.First(&out, "timetable_slot_id = ?", m.TimetableSlotID).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil slot")
		}
		return nil
	}); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteSlot menghapus satu slot by composite key; log ikut terhapus.
func (s *AttendanceService) DeleteSlot(
	userID uuid.UUID,
	day constants.Day,
	startTime, endTime string,
	classType constants.ClassType,
	subjectCode string,
) error {
	startTime, err := dbtime.NormalizeClock(startTime)
	if err != nil {
		return err
	}
	endTime, err = dbtime.NormalizeClock(endTime)
	if err != nil {
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		m, err := s.findSlotByKey(tx, userID, day, startTime, endTime, classType, subjectCode)
		if err != nil {
			return err
		}
		if err := tx.Select("Logs").Delete(m).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus slot")
		}
		return nil
	})
}

// SlotPatch — subset field slot yang boleh diubah lewat UpdateSlot.
// Didefinisikan di sini supaya service tidak import paket dto assistant.
type SlotPatch struct {
	Day         *constants.Day
	StartTime   *string
	EndTime     *string
	SubjectCode *string
	ClassType   *constants.ClassType
}
