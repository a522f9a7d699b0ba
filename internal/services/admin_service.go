// internal/services/admin_service.go
package services

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/studyshelf/studyshelf-backend/internal/models"
)

type AdminService struct {
	db *gorm.DB
}

type DashboardStats struct {
	TotalUsers       int64   `json:"total_users"`
	TotalBooks       int64   `json:"total_books"`
	TotalEnrollments int64   `json:"total_enrollments"`
	TotalReviews     int64   `json:"total_reviews"`
	TotalFiles       int64   `json:"total_files"`
	NewUsersThisWeek int64   `json:"new_users_this_week"`
	Revenue          float64 `json:"revenue"`
}

func NewAdminService(db *gorm.DB) *AdminService {
	return &AdminService{db: db}
}

func (s *AdminService) GetDashboardStats() (*DashboardStats, error) {
	stats := &DashboardStats{}

	counts := []struct {
		model interface{}
		dest  *int64
	}{
		{&models.User{}, &stats.TotalUsers},
		{&models.Book{}, &stats.TotalBooks},
		{&models.Enrollment{}, &stats.TotalEnrollments},
		{&models.Review{}, &stats.TotalReviews},
		{&models.File{}, &stats.TotalFiles},
	}

	for _, c := range counts {
		if err := s.db.Model(c.model).Count(c.dest).Error; err != nil {
			return nil, fmt.Errorf("failed to collect stats: %w", err)
		}
	}

	weekAgo := time.Now().AddDate(0, 0, -7)
	if err := s.db.Model(&models.User{}).Where("created_at >= ?", weekAgo).Count(&stats.NewUsersThisWeek).Error; err != nil {
		return nil, fmt.Errorf("failed to collect stats: %w", err)
	}

	var revenue *float64
	row := s.db.Model(&models.Transaction{}).
		Where("status = ?", models.TransactionStatusCompleted).
		Select("SUM(amount)").Row()
	if err := row.Scan(&revenue); err == nil && revenue != nil {
		stats.Revenue = *revenue
	}

	return stats, nil
}
