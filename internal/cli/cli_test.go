package cli_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Marat1506/hadj-admin/internal/auth"
	"github.com/Marat1506/hadj-admin/internal/carousel"
	"github.com/Marat1506/hadj-admin/internal/checklists"
	"github.com/Marat1506/hadj-admin/internal/cli"
	"github.com/Marat1506/hadj-admin/internal/gallery"
	"github.com/Marat1506/hadj-admin/internal/guide"
	"github.com/Marat1506/hadj-admin/internal/twintest"
	"github.com/Marat1506/hadj-admin/pkg/resource"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type result struct {
	stdout string
	stderr string
}

func execute(t *testing.T, args ...string) (result, error) {
	t.Helper()
	t.Setenv("CONFIG_PATH", "")

	cmd := cli.NewRootCommand()

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())

	return result{stdout: stdout.String(), stderr: stderr.String()}, err
}

func decode[T any](t *testing.T, out string) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal([]byte(out), &v), out)
	return v
}

func TestCarousel(t *testing.T) {
	twin := twintest.Start(t)

	photo := filepath.Join(t.TempDir(), "banner.png")
	require.NoError(t, os.WriteFile(photo, []byte("png"), 0o600))

	res, err := execute(t, "--base-url", twin.URL,
		"carousel", "create", "--set", "title=Umrah", "--set", "link=https://example.com", "--file", "photo="+photo)
	require.NoError(t, err)
	created := decode[carousel.Banner](t, res.stdout)
	assert.Equal(t, "Umrah", created.Title)
	assert.True(t, strings.HasPrefix(created.Image, "/media/"))

	res, err = execute(t, "--base-url", twin.URL, "carousel", "update", "1", "--clear", "link")
	require.NoError(t, err)
	assert.Nil(t, decode[carousel.Banner](t, res.stdout).Link)

	res, err = execute(t, "--base-url", twin.URL, "carousel", "list")
	require.NoError(t, err)
	assert.Len(t, decode[[]carousel.Banner](t, res.stdout), 1)

	res, err = execute(t, "--base-url", twin.URL, "carousel", "delete", "1")
	require.NoError(t, err)
	assert.Equal(t, "deleted 1\n", res.stdout)

	_, err = execute(t, "--base-url", twin.URL, "carousel", "get", "1")
	require.ErrorIs(t, err, resource.ErrNotFound)
}

func TestGalleryLargeNumbersWithUpload(t *testing.T) {
	twin := twintest.Start(t)

	photo := filepath.Join(t.TempDir(), "kaaba.jpg")
	require.NoError(t, os.WriteFile(photo, []byte("jpg"), 0o600))

	res, err := execute(t, "--base-url", twin.URL,
		"gallery", "create", "--set-json", "order=1000000", "--file", "photo="+photo)
	require.NoError(t, err)
	created := decode[gallery.Item](t, res.stdout)
	assert.Equal(t, int64(1000000), created.Order)
	assert.True(t, strings.HasPrefix(created.MediaURL, "/media/"))

	res, err = execute(t, "--base-url", twin.URL, "gallery", "update", "1", "--set-json", "order=123456789012")
	require.NoError(t, err)
	assert.Equal(t, int64(123456789012), decode[gallery.Item](t, res.stdout).Order)

	_, err = execute(t, "--base-url", twin.URL, "gallery", "update", "1", "--set-json", "order=1 2")
	require.ErrorIs(t, err, cli.ErrInvalidField)
}

func TestChecklist(t *testing.T) {
	twin := twintest.Start(t)

	for _, title := range []string{"Passport", "Visa"} {
		_, err := execute(t, "--base-url", twin.URL,
			"checklist", "create", "--set", "title="+title, "--set", "category=documents", "--set-json", "userId=3")
		require.NoError(t, err)
	}

	res, err := execute(t, "--base-url", twin.URL, "checklist", "toggle", "1")
	require.NoError(t, err)
	assert.True(t, decode[checklists.Item](t, res.stdout).IsCompleted)

	res, err = execute(t, "--base-url", twin.URL, "checklist", "list", "--include-completed=false")
	require.NoError(t, err)
	pending := decode[[]checklists.Item](t, res.stdout)
	require.Len(t, pending, 1)
	assert.Equal(t, "Visa", pending[0].Title)

	res, err = execute(t, "--base-url", twin.URL, "checklist", "stats")
	require.NoError(t, err)
	stats := decode[checklists.Stats](t, res.stdout)
	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 1, stats.Completed)

	res, err = execute(t, "--base-url", twin.URL, "analytics")
	require.NoError(t, err)
	assert.Contains(t, res.stdout, `"totalCustomers": 1`)
	assert.Contains(t, res.stdout, `"tasksProgress": 50`)
}

func TestGuideSubcategoriesScope(t *testing.T) {
	twin := twintest.Start(t)
	svc := guide.NewService(twin.Client(t, ""), zaptest.NewLogger(t))
	ctx := context.Background()

	first, err := svc.Categories().Create(ctx, guide.CategoryDraft{Title: "Rituals"})
	require.NoError(t, err)
	second, err := svc.Categories().Create(ctx, guide.CategoryDraft{Title: "Travel"})
	require.NoError(t, err)
	for _, id := range []int64{first.ID, second.ID, second.ID} {
		_, err := svc.Subcategories().Create(ctx, guide.SubcategoryDraft{Title: "s", CategoryID: id})
		require.NoError(t, err)
	}

	res, err := execute(t, "--base-url", twin.URL, "guide-subcategories", "list", "--category", "2")
	require.NoError(t, err)
	assert.Len(t, decode[[]guide.Subcategory](t, res.stdout), 2)

	res, err = execute(t, "--base-url", twin.URL, "guide-subcategories", "list")
	require.NoError(t, err)
	assert.Len(t, decode[[]guide.Subcategory](t, res.stdout), 3)
}

func TestArguments(t *testing.T) {
	twin := twintest.Start(t)

	_, err := execute(t, "--base-url", twin.URL, "news", "update", "1")
	require.ErrorIs(t, err, cli.ErrEmptyPayload)

	_, err = execute(t, "--base-url", twin.URL, "news", "get", "first")
	require.ErrorIs(t, err, cli.ErrInvalidID)

	_, err = execute(t, "--base-url", twin.URL, "news", "create", "--set", "title")
	require.ErrorIs(t, err, cli.ErrInvalidField)

	_, err = execute(t, "--base-url", twin.URL, "news", "create", "--set-json", "isPublished=yes")
	require.ErrorIs(t, err, cli.ErrInvalidField)

	_, err = execute(t, "--base-url", twin.URL, "news", "create", "--set", "title=t")
	require.ErrorIs(t, err, resource.ErrInvalidInput)
	assert.Contains(t, err.Error(), "description is required")
}

func TestMetricsAndAuth(t *testing.T) {
	twin := twintest.Start(t, twintest.WithSecret("s3cret"))

	_, err := execute(t, "--base-url", twin.URL, "news", "list")
	require.ErrorIs(t, err, resource.ErrServerError)

	res, err := execute(t, "--base-url", twin.URL, "--token", twin.Token(t), "--metrics", "news", "list")
	require.NoError(t, err)
	assert.Equal(t, "[]\n", res.stdout)
	assert.Contains(t, res.stderr, `hadj_admin_resource_requests_total{code="200",method="GET",resource="/news"} 1`)
}

func TestTwinToken(t *testing.T) {
	res, err := execute(t, "twin", "token", "--secret", "s3cret", "--subject", "ops", "--role", "editor")
	require.NoError(t, err)

	svc := auth.NewService(auth.Config{SecretKey: []byte("s3cret"), Issuer: "hadj-admin"}, zaptest.NewLogger(t))
	claims, err := svc.Validate(strings.TrimSpace(res.stdout))
	require.NoError(t, err)
	assert.Equal(t, "ops", claims.Subject)
	assert.Equal(t, auth.UserRoleEditor, claims.Role)

	_, err = execute(t, "twin", "token")
	require.ErrorIs(t, err, auth.ErrDisabled)
}
