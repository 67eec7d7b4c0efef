package resource_test

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/Marat1506/hadj-admin/pkg/resource"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	srv := newFakeServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/carousel/404" {
			writeJSON(w, http.StatusNotFound, map[string]string{"message": "missing"})
			return
		}
		writeJSON(w, http.StatusOK, []banner{})
	})

	reg := prometheus.NewRegistry()
	metrics, err := resource.NewMetrics(reg)
	require.NoError(t, err)

	tr := newBannerTransport(t, srv.URL, resource.WithMetrics(metrics))
	ctx := context.Background()

	_, err = tr.GetAll(ctx, resource.Query{})
	require.NoError(t, err)
	_, err = tr.GetAll(ctx, resource.Query{})
	require.NoError(t, err)
	_, err = tr.GetByID(ctx, 404)
	require.ErrorIs(t, err, resource.ErrNotFound)

	expected := `
# HELP hadj_admin_resource_requests_total Requests sent to the CMS backend, by resource, method and status code.
# TYPE hadj_admin_resource_requests_total counter
hadj_admin_resource_requests_total{code="200",method="GET",resource="/carousel"} 2
hadj_admin_resource_requests_total{code="404",method="GET",resource="/carousel"} 1
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "hadj_admin_resource_requests_total"))

	count, err := testutil.GatherAndCount(reg, "hadj_admin_resource_request_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestNewMetrics_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()

	_, err := resource.NewMetrics(reg)
	require.NoError(t, err)

	_, err = resource.NewMetrics(reg)
	assert.Error(t, err)
}
