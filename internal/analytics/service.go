package analytics

import (
	"context"
	"net/http"

	"github.com/Marat1506/hadj-admin/pkg/resource"
	"go.uber.org/zap"
)

const Path = "/analytics"

const OpDashboard resource.Op = "fetch dashboard statistics"

//nolint:gochecknoglobals //constant
var Names = resource.Names{Singular: "dashboard", Plural: "dashboards"}

// Dashboard holds the headline numbers of the admin home page. Trend and
// progress are percentages.
type Dashboard struct {
	TotalCustomers int     `json:"totalCustomers"`
	CustomersTrend float64 `json:"customersTrend"`
	TasksProgress  float64 `json:"tasksProgress"`
}

type Service struct {
	transport *resource.Transport[Dashboard]

	logger *zap.Logger
}

func NewService(client *resource.Client, logger *zap.Logger) *Service {
	return &Service{
		transport: resource.NewTransport[Dashboard](client, Path, Names),

		logger: logger,
	}
}

func (s *Service) Dashboard(ctx context.Context) (Dashboard, error) {
	var dashboard Dashboard
	if err := s.transport.Action(ctx, OpDashboard, http.MethodGet, "dashboard", nil, &dashboard); err != nil {
		return Dashboard{}, err
	}

	return dashboard, nil
}

// NewLoader returns a loader for the dashboard.
func (s *Service) NewLoader() *resource.Loader[Dashboard] {
	return resource.NewLoader(s.Dashboard, s.logger)
}
