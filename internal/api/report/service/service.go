package reportService

import (
	"finflow/internal/api/report"
	reportRepository "finflow/internal/api/report/repository"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type IReportService interface {
	GetMonthlyReport(ctx context.Context, userID string, year, month int) (report.ReportResponse, error)
	GetDashboard(ctx context.Context, userID string) (report.DashboardResponse, error)
}

type reportService struct {
	log              *logrus.Logger
	reportRepository reportRepository.Repository
}

func NewReportService(log *logrus.Logger, rr reportRepository.Repository) IReportService {
	return &reportService{
		log:              log,
		reportRepository: rr,
	}
}
