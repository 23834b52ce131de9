package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"halladmin/internal/errors"
	"halladmin/internal/metrics"
	"halladmin/internal/model"
	"halladmin/internal/repository"
)

// CreateHallRecordInput carries the fields for a new hall data record.
type CreateHallRecordInput struct {
	HallNumber int
	EntryDate  time.Time
	Attendance int
	Revenue    decimal.Decimal
	Notes      string
}

// HallStats summarizes one hall's records for the hall page header.
type HallStats struct {
	TotalRecords int64 `json:"total_records"`
	TodayRecords int64 `json:"today_records"`
}

// HallService exposes scope-checked hall data operations. Every call resolves
// the actor's scope first; acting on a hall outside it fails with
// ErrHallForbidden regardless of what the transport layer allowed through.
type HallService interface {
	CreateRecord(ctx context.Context, actor *model.User, input CreateHallRecordInput) (*model.HallData, error)
	ListRecords(ctx context.Context, actor *model.User, hall int) ([]model.HallData, error)
	Stats(ctx context.Context, actor *model.User, hall int) (*HallStats, error)
}

type hallService struct {
	repo  repository.HallDataRepository
	audit AuditRecorder
	now   func() time.Time
}

// NewHallService builds a HallService. now may be nil, in which case
// time.Now is used.
func NewHallService(repo repository.HallDataRepository, audit AuditRecorder, now func() time.Time) HallService {
	if now == nil {
		now = time.Now
	}
	return &hallService{repo: repo, audit: audit, now: now}
}

func (s *hallService) checkScope(actor *model.User, hall int) error {
	if !ValidHall(hall) {
		return errors.ErrInvalidHall
	}
	scope, err := ScopeForUser(actor)
	if err != nil {
		return err
	}
	if !scope.Allows(hall) {
		return errors.ErrHallForbidden
	}
	return nil
}

func (s *hallService) CreateRecord(ctx context.Context, actor *model.User, input CreateHallRecordInput) (*model.HallData, error) {
	if err := s.checkScope(actor, input.HallNumber); err != nil {
		return nil, err
	}

	record := &model.HallData{
		HallNumber: input.HallNumber,
		EntryDate:  input.EntryDate,
		Attendance: input.Attendance,
		Revenue:    input.Revenue,
		Notes:      input.Notes,
		CreatedBy:  actor.ID,
	}
	if err := s.repo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("create hall record: %w", err)
	}

	s.audit.Record(actor.ID, model.ActionCreateHallRecord,
		fmt.Sprintf("created record for hall %d", record.HallNumber))
	metrics.HallRecordsCreatedTotal.WithLabelValues(strconv.Itoa(record.HallNumber)).Inc()

	return record, nil
}

func (s *hallService) ListRecords(ctx context.Context, actor *model.User, hall int) ([]model.HallData, error) {
	if err := s.checkScope(actor, hall); err != nil {
		return nil, err
	}
	return s.repo.ListByHall(ctx, hall)
}

// Stats returns total and today's record counts for one hall.
func (s *hallService) Stats(ctx context.Context, actor *model.User, hall int) (*HallStats, error) {
	if err := s.checkScope(actor, hall); err != nil {
		return nil, err
	}

	total, err := s.repo.CountByHall(ctx, hall)
	if err != nil {
		return nil, fmt.Errorf("count hall records: %w", err)
	}

	now := s.now().UTC()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	today, err := s.repo.CountByHallSince(ctx, hall, startOfDay)
	if err != nil {
		return nil, fmt.Errorf("count today's records: %w", err)
	}

	return &HallStats{TotalRecords: total, TodayRecords: today}, nil
}
