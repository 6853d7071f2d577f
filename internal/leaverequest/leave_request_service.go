package leaverequest

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"go-leavedesk/internal/employee"
	"go-leavedesk/internal/events"
	leaverequesterrors "go-leavedesk/internal/leaverequest/errors"
	"go-leavedesk/internal/messaging/kafka"
	"go-leavedesk/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

func IsValidStatus(status string) bool {
	switch status {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	default:
		return false
	}
}

//go:generate mockgen -source=leave_request_service.go -destination=mock/leave_request_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req SubmitLeaveRequest) (LeaveRequestResponse, error)
	GetAll(ctx context.Context) ([]LeaveRequestResponse, error)
	GetAllByEmployee(ctx context.Context, employeeID string) ([]LeaveRequestResponse, error)
	GetByID(ctx context.Context, id string) (LeaveRequestResponse, error)
	UpdateStatus(ctx context.Context, id string, req UpdateLeaveStatusRequest) (LeaveRequestResponse, error)
}

type service struct {
	db        *sql.DB
	repo      Repository
	employees employee.Repository
	outbox    kafka.OutboxRepository
	logger    *zap.Logger
}

func NewService(db *sql.DB, repo Repository, employees employee.Repository, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, employees, nil, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	employees employee.Repository,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("leaverequest.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leaverequest.service")
	}
	return &service{
		db:        db,
		repo:      repo,
		employees: employees,
		outbox:    outboxRepo,
		logger:    l,
	}
}

func (s *service) Create(ctx context.Context, req SubmitLeaveRequest) (LeaveRequestResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create leave request requested",
		zap.String("request_id", rid),
		zap.String("employee_id", req.EmployeeID),
		zap.String("start_date", req.StartDate),
		zap.String("end_date", req.EndDate),
	)

	submission, fieldErrs := ValidateSubmission(req, time.Now())
	if fieldErrs != nil {
		s.logger.Warn("create leave request validation failed",
			zap.String("request_id", rid),
			zap.Int("field_count", len(fieldErrs)),
		)
		return LeaveRequestResponse{}, leaverequesterrors.NewValidationError(fieldErrs)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create leave request begin tx failed", zap.Error(err))
		return LeaveRequestResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	qEmployees := s.employees.WithTx(tx)

	// Employee dibuat lazy saat employee_id pertama kali muncul.
	// Submission pertama yang menang; konflik id diabaikan di repo.
	if err := qEmployees.CreateIfAbsent(ctx, &employee.Employee{
		ID:         submission.EmployeeID,
		Name:       submission.EmployeeName,
		Department: submission.Department,
		Position:   submission.Position,
	}); err != nil {
		s.logger.Error("create leave request employee persist failed", zap.Error(err))
		return LeaveRequestResponse{}, err
	}

	totalDays := int(submission.EndDate.Sub(submission.StartDate).Hours()/24) + 1
	lr := &LeaveRequest{
		ID:                 uuid.New(),
		EmployeeID:         submission.EmployeeID,
		EmployeeName:       submission.EmployeeName,
		EmployeeDepartment: submission.Department,
		EmployeePosition:   submission.Position,
		LeaveType:          submission.LeaveType,
		StartDate:          submission.StartDate,
		EndDate:            submission.EndDate,
		TotalDays:          totalDays,
		Reason:             submission.Reason,
		Status:             StatusPending,
	}

	if err := qtx.Create(ctx, lr); err != nil {
		s.logger.Error("create leave request persist failed", zap.Error(err))
		return LeaveRequestResponse{}, mapRepositoryError(err)
	}

	if s.outbox != nil {
		event := events.LeaveRequestCreatedEvent{
			EventType:      events.LeaveRequestCreatedEventType,
			RequestID:      rid,
			LeaveRequestID: lr.ID.String(),
			EmployeeID:     lr.EmployeeID,
			StartDate:      lr.StartDate.Format(dateLayout),
			EndDate:        lr.EndDate.Format(dateLayout),
			OccurredAt:     time.Now().UTC(),
		}
		if err := s.enqueueEvent(ctx, tx, lr, event.EventType, rid, event); err != nil {
			return LeaveRequestResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create leave request commit failed", zap.Error(err))
		return LeaveRequestResponse{}, err
	}
	s.logger.Info("create leave request success",
		zap.String("request_id", rid),
		zap.String("leave_request_id", lr.ID.String()),
		zap.String("employee_id", lr.EmployeeID),
		zap.Int("total_days", lr.TotalDays),
	)

	return mapToResponse(*lr), nil
}

func (s *service) GetAll(ctx context.Context) ([]LeaveRequestResponse, error) {
	requests, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(requests), nil
}

func (s *service) GetAllByEmployee(ctx context.Context, employeeID string) ([]LeaveRequestResponse, error) {
	requests, err := s.repo.FindAllByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(requests), nil
}

func (s *service) GetByID(ctx context.Context, id string) (LeaveRequestResponse, error) {
	// id divalidasi di sini, bukan diteruskan mentah ke kolom uuid:
	// id rusak adalah kesalahan client, bukan kegagalan storage.
	uid, err := uuid.Parse(id)
	if err != nil {
		return LeaveRequestResponse{}, leaverequesterrors.ErrInvalidLeaveRequestID
	}

	lr, err := s.repo.FindByID(ctx, uid.String())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveRequestResponse{}, leaverequesterrors.ErrLeaveRequestNotFound
		}
		return LeaveRequestResponse{}, err
	}
	return mapToResponse(*lr), nil
}

func (s *service) UpdateStatus(ctx context.Context, id string, req UpdateLeaveStatusRequest) (LeaveRequestResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("update leave request status requested",
		zap.String("request_id", rid),
		zap.String("leave_request_id", id),
		zap.String("target_status", req.Status),
	)

	if !IsValidStatus(req.Status) {
		return LeaveRequestResponse{}, leaverequesterrors.ErrInvalidStatus
	}

	uid, err := uuid.Parse(id)
	if err != nil {
		return LeaveRequestResponse{}, leaverequesterrors.ErrInvalidLeaveRequestID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update leave request status begin tx failed", zap.Error(err))
		return LeaveRequestResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	lr, err := qtx.FindByID(ctx, uid.String())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveRequestResponse{}, leaverequesterrors.ErrLeaveRequestNotFound
		}
		return LeaveRequestResponse{}, err
	}

	// Transisi status bebas: keputusan boleh dikoreksi atau dibuka kembali
	// oleh admin, termasuk menulis ulang status yang sama. updated_at tetap
	// di-bump pada no-op write.
	oldStatus := lr.Status
	lr.Status = req.Status
	lr.UpdatedAt = time.Now().UTC()

	if err := qtx.Update(ctx, lr); err != nil {
		s.logger.Error("update leave request status persist failed",
			zap.String("leave_request_id", id),
			zap.Error(err),
		)
		return LeaveRequestResponse{}, mapRepositoryError(err)
	}

	if s.outbox != nil {
		event := events.LeaveRequestStatusChangedEvent{
			EventType:      events.LeaveRequestStatusChangedEventType,
			RequestID:      rid,
			LeaveRequestID: lr.ID.String(),
			EmployeeID:     lr.EmployeeID,
			OldStatus:      oldStatus,
			NewStatus:      lr.Status,
			OccurredAt:     time.Now().UTC(),
		}
		if err := s.enqueueEvent(ctx, tx, lr, event.EventType, rid, event); err != nil {
			return LeaveRequestResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update leave request status commit failed",
			zap.String("leave_request_id", id),
			zap.Error(err),
		)
		return LeaveRequestResponse{}, err
	}
	s.logger.Info("update leave request status success",
		zap.String("leave_request_id", id),
		zap.String("old_status", oldStatus),
		zap.String("status", lr.Status),
	)

	return mapToResponse(*lr), nil
}

func (s *service) enqueueEvent(
	ctx context.Context,
	tx *sql.Tx,
	lr *LeaveRequest,
	eventType, requestID string,
	payload any,
) error {
	body, err := json.Marshal(payload)
	if err != nil {
		s.logger.Error("marshal event failed", zap.String("event_type", eventType), zap.Error(err))
		return err
	}

	outboxRepo := s.outbox.WithTx(tx)
	if err := outboxRepo.Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     requestID,
		AggregateType: "leave_request",
		AggregateID:   lr.ID.String(),
		EventType:     eventType,
		Topic:         events.LeaveRequestLifecycleTopic,
		Payload:       body,
		Status:        kafka.OutboxStatusPending,
	}); err != nil {
		s.logger.Error("outbox persist failed",
			zap.String("leave_request_id", lr.ID.String()),
			zap.String("event_type", eventType),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func mapToResponse(lr LeaveRequest) LeaveRequestResponse {
	return LeaveRequestResponse{
		ID:                 lr.ID.String(),
		EmployeeID:         lr.EmployeeID,
		EmployeeName:       lr.EmployeeName,
		EmployeeDepartment: lr.EmployeeDepartment,
		EmployeePosition:   lr.EmployeePosition,
		LeaveType:          lr.LeaveType,
		StartDate:          lr.StartDate.Format(dateLayout),
		EndDate:            lr.EndDate.Format(dateLayout),
		TotalDays:          lr.TotalDays,
		Reason:             lr.Reason,
		Status:             lr.Status,
		CreatedAt:          lr.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          lr.UpdatedAt.Format(time.RFC3339),
	}
}

func mapToListResponse(requests []LeaveRequest) []LeaveRequestResponse {
	resp := make([]LeaveRequestResponse, len(requests))
	for i, lr := range requests {
		resp[i] = mapToResponse(lr)
	}
	return resp
}
