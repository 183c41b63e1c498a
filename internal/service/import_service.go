package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/bimbel-hq/rostering-api/internal/dto"
	"github.com/bimbel-hq/rostering-api/internal/importer"
	"github.com/bimbel-hq/rostering-api/internal/models"
	appErrors "github.com/bimbel-hq/rostering-api/pkg/errors"
	"github.com/bimbel-hq/rostering-api/pkg/export"
)

type personFinder interface {
	FindByEmail(ctx context.Context, email string) (*models.Person, error)
}

type snapshotInvalidator interface {
	Invalidate(ctx context.Context, weekID string)
}

type importRosterStore interface {
	personFinder
	busySetWriter
}

// storedPreview holds one parsed import between preview and commit.
type storedPreview struct {
	ID        string
	WeekID    string
	Kind      importer.SheetKind
	Rows      []importer.Row
	CreatedAt time.Time
}

// previewStore keeps parsed imports in memory until they are committed or
// expire. A restart discards pending previews; the operator re-runs the
// preview, which is cheap.
type previewStore struct {
	mu   sync.Mutex
	ttl  time.Duration
	byID map[string]*storedPreview
}

func newPreviewStore(ttl time.Duration) *previewStore {
	return &previewStore{ttl: ttl, byID: make(map[string]*storedPreview)}
}

func (s *previewStore) Put(p *storedPreview) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, existing := range s.byID {
		if time.Since(existing.CreatedAt) > s.ttl {
			delete(s.byID, id)
		}
	}
	s.byID[p.ID] = p
}

func (s *previewStore) Get(id string) (*storedPreview, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.byID[id]
	if !ok {
		return nil, false
	}
	if time.Since(p.CreatedAt) > s.ttl {
		delete(s.byID, id)
		return nil, false
	}
	return p, true
}

func (s *previewStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.byID, id)
}

// ImportService runs the two-phase bulk import: parse raw sheet text into a
// reviewable preview, then commit only the error-free rows.
type ImportService struct {
	roster    importRosterStore
	snapshots snapshotInvalidator
	store     *previewStore
	exporter  *export.CSVExporter
	validator *validator.Validate
	metrics   *MetricsService
	maxRows   int
	logger    *zap.Logger
}

// NewImportService wires the service. maxRows caps a single import; zero
// disables the cap.
func NewImportService(roster importRosterStore, snapshots snapshotInvalidator, v *validator.Validate, metrics *MetricsService, previewTTL time.Duration, maxRows int, logger *zap.Logger) *ImportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ImportService{
		roster:    roster,
		snapshots: snapshots,
		store:     newPreviewStore(previewTTL),
		exporter:  export.NewCSVExporter(),
		validator: v,
		metrics:   metrics,
		maxRows:   maxRows,
		logger:    logger,
	}
}

// Preview parses the submitted sheet text and stores the result for a later
// commit. Parsing never fails; rows with problems come back carrying their
// reasons and are excluded from the writable count.
func (s *ImportService) Preview(ctx context.Context, req *dto.ImportPreviewRequest) (*dto.ImportPreviewResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, err.Error())
	}

	rows := importer.Parse(req.Text, importer.SheetKind(req.Kind))
	if s.maxRows > 0 && len(rows) > s.maxRows {
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("import has %d rows, maximum is %d", len(rows), s.maxRows))
	}

	preview := &storedPreview{
		ID:        uuid.NewString(),
		WeekID:    req.WeekID,
		Kind:      importer.SheetKind(req.Kind),
		Rows:      rows,
		CreatedAt: time.Now(),
	}
	s.store.Put(preview)

	resp := &dto.ImportPreviewResponse{
		PreviewID: preview.ID,
		WeekID:    req.WeekID,
		Kind:      req.Kind,
		Rows:      make([]dto.ImportRowResult, 0, len(rows)),
	}
	for _, row := range rows {
		result := dto.ImportRowResult{
			Email:           row.Email,
			Name:            row.Name,
			BusyScheduleArr: externalSlots(row),
			BusyCount:       len(row.BusySlots),
			Errors:          row.Errors,
		}
		if row.OK() {
			resp.WritableRows++
		}
		resp.Rows = append(resp.Rows, result)
	}
	s.metrics.CountImportRows("ok", resp.WritableRows)
	s.metrics.CountImportRows("error", len(rows)-resp.WritableRows)

	s.logger.Info("import preview created",
		zap.String("preview_id", preview.ID),
		zap.String("week_id", req.WeekID),
		zap.String("kind", req.Kind),
		zap.Int("rows", len(rows)),
		zap.Int("writable", resp.WritableRows))
	return resp, nil
}

// Commit writes every error-free row of a stored preview in one transaction.
// Rows whose email is unknown or resolves to the wrong kind of person are
// skipped and reported, never written.
func (s *ImportService) Commit(ctx context.Context, previewID string) (*dto.ImportCommitResponse, error) {
	preview, ok := s.store.Get(previewID)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrPreviewExpired, "")
	}

	writable := make([]importer.Row, 0, len(preview.Rows))
	for _, row := range preview.Rows {
		if row.OK() {
			writable = append(writable, row)
		}
	}
	if len(writable) == 0 {
		return nil, appErrors.Clone(appErrors.ErrNoWritableRows, "")
	}

	wantKind := models.KindStudent
	if preview.Kind == importer.SheetTeacher {
		wantKind = models.KindTeacher
	}

	tx, err := s.roster.BeginTxx(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to begin import write")
	}

	resp := &dto.ImportCommitResponse{WeekID: preview.WeekID, Skipped: []dto.ImportSkippedRow{}}
	for _, row := range writable {
		person, err := s.roster.FindByEmail(ctx, row.Email)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				resp.Skipped = append(resp.Skipped, dto.ImportSkippedRow{Email: row.Email, Reason: "person not found in roster"})
				s.logger.Warn("skipping import row for unknown person",
					zap.String("week_id", preview.WeekID),
					zap.String("email", row.Email))
				continue
			}
			tx.Rollback()
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to resolve import row")
		}
		if person.Kind != wantKind {
			resp.Skipped = append(resp.Skipped, dto.ImportSkippedRow{
				Email:  row.Email,
				Reason: fmt.Sprintf("roster kind %q does not match a %s import", person.Kind, preview.Kind),
			})
			continue
		}
		if err := s.roster.ReplaceBusySet(ctx, tx, person.ID, preview.WeekID, externalSlots(row)); err != nil {
			tx.Rollback()
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to write busy set")
		}
		resp.Written++
	}
	if err := tx.Commit(); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to commit import write")
	}

	s.store.Delete(previewID)
	if resp.Written > 0 {
		s.snapshots.Invalidate(ctx, preview.WeekID)
	}

	s.logger.Info("import committed",
		zap.String("preview_id", previewID),
		zap.String("week_id", preview.WeekID),
		zap.Int("written", resp.Written),
		zap.Int("skipped", len(resp.Skipped)))
	return resp, nil
}

// Report renders a stored preview as CSV, one line per row with its errors,
// for the operator to fix the sheet offline.
func (s *ImportService) Report(_ context.Context, previewID string) ([]byte, error) {
	preview, ok := s.store.Get(previewID)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrPreviewExpired, "")
	}

	dataset := export.Dataset{
		Headers: []string{"email", "name", "busy_count", "status", "errors"},
		Rows:    make([]map[string]string, 0, len(preview.Rows)),
	}
	for _, row := range preview.Rows {
		status := "ok"
		if !row.OK() {
			status = "error"
		}
		dataset.Rows = append(dataset.Rows, map[string]string{
			"email":      row.Email,
			"name":       row.Name,
			"busy_count": strconv.Itoa(len(row.BusySlots)),
			"status":     status,
			"errors":     strings.Join(row.Errors, "; "),
		})
	}
	return s.exporter.Render(dataset)
}

func externalSlots(row importer.Row) []int64 {
	external := make([]int64, 0, len(row.BusySlots))
	for _, slot := range row.BusySlots {
		external = append(external, int64(slot.External()))
	}
	return external
}
