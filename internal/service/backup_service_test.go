package service

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"worklog/internal/backup"
	"worklog/internal/repository"
	"worklog/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBackupFixture(t *testing.T) (BackupService, repository.SessionRepo) {
	t.Helper()
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteSessionRepo(database)
	svc := NewBackupService(repo, testutil.NewTestUoW(database), testutil.DiscardLogger())
	return svc, repo
}

func TestBackupService_ExportImportRoundTrip(t *testing.T) {
	ctx := context.Background()
	source, sourceRepo := newBackupFixture(t)

	require.NoError(t, sourceRepo.Create(ctx, testutil.NewTestSession("2024-03-05", 2.5,
		testutil.WithNotes("pairing"))))
	require.NoError(t, sourceRepo.Create(ctx, testutil.NewTestSession("2024-03-06", 4)))

	var buf bytes.Buffer
	require.NoError(t, source.Export(ctx, &buf))

	target, targetRepo := newBackupFixture(t)
	result, err := target.Import(ctx, &buf)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Imported)
	assert.Equal(t, 0, result.Skipped)

	imported, err := targetRepo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, imported, 2)
	assert.Equal(t, "2024-03-06", imported[0].Date)
	assert.Equal(t, "pairing", imported[1].Notes)
}

func TestBackupService_Import_SkipsDuplicates(t *testing.T) {
	ctx := context.Background()
	svc, repo := newBackupFixture(t)

	createdAt := time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Create(ctx, testutil.NewTestSession("2024-03-05", 2,
		testutil.WithCreatedAt(createdAt))))

	doc := `{
		"version": 1,
		"timestamp": "2024-04-01T00:00:00Z",
		"sessions": [
			{"id": 7, "date": "2024-03-05", "hours": 2, "notes": null, "created_at": "2024-03-05T10:00:00Z"},
			{"id": 8, "date": "2024-03-07", "hours": 3, "notes": "new one", "created_at": "2024-03-07T09:00:00Z"}
		]
	}`
	result, err := svc.Import(ctx, strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, 1, result.Imported)
	assert.Equal(t, 1, result.Skipped)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestBackupService_Import_PreservesCreatedAtAssignsFreshID(t *testing.T) {
	ctx := context.Background()
	svc, repo := newBackupFixture(t)

	require.NoError(t, repo.Create(ctx, testutil.NewTestSession("2024-01-01", 1)))

	doc := `{
		"version": 1,
		"timestamp": "2024-04-01T00:00:00Z",
		"sessions": [
			{"id": 1, "date": "2024-03-07", "hours": 3, "notes": null, "created_at": "2024-03-07T09:00:00Z"}
		]
	}`
	result, err := svc.Import(ctx, strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, 1, result.Imported)

	list, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)

	imported := list[0]
	assert.Equal(t, "2024-03-07", imported.Date)
	assert.NotEqual(t, int64(1), imported.ID, "the exporting store's id is not reused")
	assert.True(t, imported.CreatedAt.Equal(time.Date(2024, 3, 7, 9, 0, 0, 0, time.UTC)),
		"created_at comes from the document, not from the import time")
}

func TestBackupService_Import_Idempotent(t *testing.T) {
	ctx := context.Background()
	source, sourceRepo := newBackupFixture(t)
	require.NoError(t, sourceRepo.Create(ctx, testutil.NewTestSession("2024-03-05", 2)))
	require.NoError(t, sourceRepo.Create(ctx, testutil.NewTestSession("2024-03-06", 3)))

	var buf bytes.Buffer
	require.NoError(t, source.Export(ctx, &buf))
	doc := buf.Bytes()

	target, targetRepo := newBackupFixture(t)

	first, err := target.Import(ctx, bytes.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, 2, first.Imported)

	second, err := target.Import(ctx, bytes.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, 0, second.Imported)
	assert.Equal(t, 2, second.Skipped)

	count, err := targetRepo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestBackupService_Import_MalformedLeavesStoreUntouched(t *testing.T) {
	ctx := context.Background()
	svc, repo := newBackupFixture(t)
	require.NoError(t, repo.Create(ctx, testutil.NewTestSession("2024-03-05", 2)))

	_, err := svc.Import(ctx, strings.NewReader(`{"version": 1, "sessions": [`))
	assert.ErrorIs(t, err, backup.ErrMalformedDocument)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestBackupService_Import_BadRecordRollsBackEverything(t *testing.T) {
	ctx := context.Background()
	svc, repo := newBackupFixture(t)

	// The first record is fine, the second has an unparseable timestamp.
	// Nothing may be written.
	doc := `{
		"version": 1,
		"timestamp": "2024-04-01T00:00:00Z",
		"sessions": [
			{"id": 1, "date": "2024-03-05", "hours": 2, "notes": null, "created_at": "2024-03-05T10:00:00Z"},
			{"id": 2, "date": "2024-03-06", "hours": 3, "notes": null, "created_at": "sometime"}
		]
	}`
	_, err := svc.Import(ctx, strings.NewReader(doc))
	assert.ErrorIs(t, err, backup.ErrInvalidFormat)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestBackupService_ExportToFile(t *testing.T) {
	ctx := context.Background()
	svc, repo := newBackupFixture(t)
	require.NoError(t, repo.Create(ctx, testutil.NewTestSession("2024-03-05", 2)))

	path := filepath.Join(t.TempDir(), "backup.json")
	require.NoError(t, svc.ExportToFile(ctx, path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	doc, err := backup.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, backup.Version, doc.Version)
	require.Len(t, doc.Sessions, 1)
	assert.Equal(t, "2024-03-05", doc.Sessions[0].Date)
}

func TestBackupService_ImportFromFile(t *testing.T) {
	ctx := context.Background()
	source, sourceRepo := newBackupFixture(t)
	require.NoError(t, sourceRepo.Create(ctx, testutil.NewTestSession("2024-03-05", 2)))

	path := filepath.Join(t.TempDir(), "backup.json")
	require.NoError(t, source.ExportToFile(ctx, path))

	target, _ := newBackupFixture(t)
	result, err := target.ImportFromFile(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Imported)
}

func TestBackupService_ImportFromFile_EmptyPathIsCanceled(t *testing.T) {
	svc, _ := newBackupFixture(t)

	_, err := svc.ImportFromFile(context.Background(), "")
	assert.ErrorIs(t, err, backup.ErrCanceled)
}
